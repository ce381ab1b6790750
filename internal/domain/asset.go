package domain

// AssetCategory clasifica un activo intercambiable.
type AssetCategory string

const (
	AssetVehicle    AssetCategory = "vehicle"
	AssetMotorcycle AssetCategory = "motorcycle"
	AssetJewelry    AssetCategory = "jewelry"
	AssetOther      AssetCategory = "other"
)

// TradeAsset es un activo del vendedor ya estructurado, listo para entrar
// en un componente AssetTrade. El contrato público del motor acepta esto
// directamente; el parsing del formato libre "<desc> ($<valor>)" es cosa
// del adapter en internal/adapters/assets.
type TradeAsset struct {
	Category    AssetCategory
	Description string
	Value       float64
}

// TotalAssetValue suma el valor de una lista de activos.
func TotalAssetValue(assets []TradeAsset) float64 {
	total := 0.0
	for _, a := range assets {
		total += a.Value
	}
	return total
}
