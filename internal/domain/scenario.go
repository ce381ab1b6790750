package domain

import "time"

// Archetype clasifica la situación del vendedor que da origen al escenario.
type Archetype string

const (
	ArchetypePreForeclosure Archetype = "pre-foreclosure"
	ArchetypeRelocation     Archetype = "relocation"
	ArchetypeStuckListing   Archetype = "stuck-listing"
	ArchetypeLowEquity      Archetype = "low-equity"
	ArchetypeHighEquity     Archetype = "high-equity"

	// ArchetypeRandom le pide al generador que elija uno de los cinco.
	ArchetypeRandom Archetype = "random"
)

// AllArchetypes devuelve los cinco arquetipos generables, en orden estable.
func AllArchetypes() []Archetype {
	return []Archetype{
		ArchetypePreForeclosure,
		ArchetypeRelocation,
		ArchetypeStuckListing,
		ArchetypeLowEquity,
		ArchetypeHighEquity,
	}
}

// Condition es el estado físico del inmueble.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionCosmetic  Condition = "cosmetic-repair"
)

// RepairCategory clasifica el coste estimado de reparación.
type RepairCategory string

const (
	RepairMinor RepairCategory = "minor" // < $5,000
	RepairMajor RepairCategory = "major"
)

// Flexibility es la disposición del vendedor a estructuras creativas.
type Flexibility string

const (
	FlexibilityHigh   Flexibility = "high"
	FlexibilityMedium Flexibility = "medium"
	FlexibilityLow    Flexibility = "low"
)

// LoanType es el tipo del préstamo existente.
type LoanType string

const (
	LoanConventional LoanType = "conventional"
	LoanFHA          LoanType = "fha"
	LoanVA           LoanType = "va"
	LoanOther        LoanType = "other"
)

// Property es el inmueble del escenario.
type Property struct {
	Address        string
	FMV            float64 // fair market value
	OwedAmount     float64 // balance de la hipoteca; puede superar FMV
	MonthlyPayment float64 // derivado del owed según arquetipo

	Bedrooms  int
	Bathrooms int
	SqFt      int
	YearBuilt int

	Condition        Condition
	ConditionDetails string
	PropertyTaxes    float64 // impuesto anual estimado
	RepairCosts      float64
	RepairCategory   RepairCategory
	RepairDetails    string
	RentalIncome     float64 // renta mensual de mercado estimada
}

// Seller es el perfil del vendedor.
type Seller struct {
	Name        string
	Age         int
	Situation   string
	Motivation  string
	Timeframe   string
	Flexibility Flexibility

	// AdditionalAssets son activos intercambiables en formato libre
	// "<descripción> ($<valor>)". El parsing a estructura vive en el
	// adapter de assets, no aquí.
	AdditionalAssets []string
}

// Financials es la foto financiera del escenario.
// Equity y LTV se derivan siempre de FMV y OwedAmount, nunca se
// randomizan por separado.
type Financials struct {
	Equity   float64 // FMV − owed; puede ser negativa
	LTV      float64 // owed / FMV × 100; puede superar 100
	LoanType LoanType

	ArrearsAmount  float64 // solo pre-foreclosure
	ArrearsMonths  int
	TaxArrears     float64
	MonthsOnMarket int     // solo stuck-listing
	CarryingCosts  float64 // mensual
}

// Scenario es el snapshot inmutable que produce el generador.
// Lo consumen en modo lectura el motor de estructuración y la capa de análisis.
type Scenario struct {
	ID          string
	Archetype   Archetype
	Title       string
	Property    Property
	Seller      Seller
	Financials  Financials
	GeneratedAt time.Time
}
