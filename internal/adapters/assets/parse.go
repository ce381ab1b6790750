// Package assets parsea las descripciones libres de activos del vendedor
// ("2018 Ford F-150 ($28,000)") a la estructura que consume el motor de
// deals. Es un adapter de frontera: la lógica del motor solo ve
// domain.TradeAsset ya estructurados.
package assets

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// descPattern captura "<descripción> ($<valor>)" con separadores de miles.
var descPattern = regexp.MustCompile(`^(.+) \(\$([\d,]+)\)$`)

// Keywords de categoría, en minúsculas. Substring match, no tokenización:
// suficiente para el pool fijo y para entradas razonables del usuario.
var categoryKeywords = []struct {
	category domain.AssetCategory
	words    []string
}{
	{domain.AssetMotorcycle, []string{"harley", "motorcycle", "ducati", "yamaha"}},
	{domain.AssetVehicle, []string{"ford", "chevrolet", "toyota", "truck", "boat", "sea ray"}},
	{domain.AssetJewelry, []string{"jewelry", "jewellery", "gold", "diamond"}},
}

// Parse convierte una descripción libre en un TradeAsset.
// Las entradas que no casan el formato caen a {other, valor 0} en vez de
// fallar: un activo ilegible no debe tumbar la operación entera.
func Parse(raw string) domain.TradeAsset {
	m := descPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return domain.TradeAsset{
			Category:    domain.AssetOther,
			Description: raw,
		}
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		value = 0
	}

	return domain.TradeAsset{
		Category:    categorize(m[1]),
		Description: m[1],
		Value:       value,
	}
}

// ParseAll parsea una lista completa, preservando el orden.
func ParseAll(raw []string) []domain.TradeAsset {
	out := make([]domain.TradeAsset, 0, len(raw))
	for _, r := range raw {
		out = append(out, Parse(r))
	}
	return out
}

func categorize(description string) domain.AssetCategory {
	lower := strings.ToLower(description)
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(lower, w) {
				return ck.category
			}
		}
	}
	return domain.AssetOther
}
