// Package scenario genera escenarios de venta internamente consistentes a
// partir de un arquetipo y una fuente de aleatoriedad inyectable.
//
// La generación es total: no existe input aleatorio que produzca un
// escenario inválido. Equity y LTV se derivan siempre del FMV y el owed
// finales, nunca se sortean por separado.
package scenario

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

const (
	fmvMin = 250_000
	fmvMax = 400_000

	propertyTaxRate  = 0.015 // ~1.5% anual en TX
	rentToValueRatio = 0.008 // ~0.8% mensual

	// Ratios sintéticos pago/owed por arquetipo.
	distressedPaymentRate = 0.006
	standardPaymentRate   = 0.005
)

// Generator produce escenarios. Una instancia por sesión; no es seguro
// compartirla entre goroutines porque comparte la fuente de aleatoriedad.
type Generator struct {
	rng domain.Rand
}

// New crea un generador con la fuente de aleatoriedad dada.
func New(rng domain.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produce un escenario del arquetipo pedido.
// Con ArchetypeRandom elige primero uno de los cinco uniformemente.
func (g *Generator) Generate(archetype domain.Archetype) domain.Scenario {
	if archetype == domain.ArchetypeRandom || archetype == "" {
		all := domain.AllArchetypes()
		archetype = all[g.rng.IntN(len(all))]
	}

	s := g.base()
	s.Archetype = archetype

	switch archetype {
	case domain.ArchetypeRelocation:
		g.relocation(&s)
	case domain.ArchetypeStuckListing:
		g.stuckListing(&s)
	case domain.ArchetypeLowEquity:
		g.lowEquity(&s)
	case domain.ArchetypeHighEquity:
		g.highEquity(&s)
	default:
		s.Archetype = domain.ArchetypePreForeclosure
		g.preForeclosure(&s)
	}

	// Invariantes por construcción: equity y LTV salen del owed final.
	s.Financials.Equity = s.Property.FMV - s.Property.OwedAmount
	if s.Property.FMV > 0 {
		s.Financials.LTV = s.Property.OwedAmount / s.Property.FMV * 100
	}

	s.Title = profiles[string(s.Archetype)].title
	return s
}

// base genera los atributos comunes a todos los arquetipos.
func (g *Generator) base() domain.Scenario {
	fmv := math.Floor(domain.Between(g.rng, fmvMin, fmvMax))

	condition := domain.ConditionExcellent
	conditionDetails := conditionExcellentDetails
	repairCosts := math.Floor(domain.Between(g.rng, 1000, 4000))
	if g.rng.Float64() <= 0.3 { // 30% necesita repaso cosmético
		condition = domain.ConditionCosmetic
		conditionDetails = conditionCosmeticDetails
		repairCosts = math.Floor(domain.Between(g.rng, 3000, 11000))
	}

	repairCategory := domain.RepairMinor
	repairDetails := repairMinorDetails
	if repairCosts >= 5000 {
		repairCategory = domain.RepairMajor
		repairDetails = repairMajorDetails
	}

	return domain.Scenario{
		ID: uuid.New().String(),
		Property: domain.Property{
			Address:          addresses[g.rng.IntN(len(addresses))],
			FMV:              fmv,
			Bedrooms:         domain.IntBetween(g.rng, 2, 4),
			Bathrooms:        domain.IntBetween(g.rng, 1, 2),
			SqFt:             domain.IntBetween(g.rng, 1200, 2199),
			YearBuilt:        domain.IntBetween(g.rng, 1990, 2019),
			Condition:        condition,
			ConditionDetails: conditionDetails,
			PropertyTaxes:    math.Floor(fmv * propertyTaxRate),
			RepairCosts:      repairCosts,
			RepairCategory:   repairCategory,
			RepairDetails:    repairDetails,
			RentalIncome:     math.Floor(fmv * rentToValueRatio),
		},
		Seller: domain.Seller{
			Name: sellerNames[g.rng.IntN(len(sellerNames))],
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func (g *Generator) preForeclosure(s *domain.Scenario) {
	ltv := domain.Between(g.rng, 85, 100)
	owed := math.Floor(s.Property.FMV * ltv / 100)
	payment := math.Round(owed * distressedPaymentRate)
	arrearsMonths := domain.IntBetween(g.rng, 3, 8)

	s.Property.OwedAmount = owed
	s.Property.MonthlyPayment = payment

	loanType := domain.LoanConventional
	if g.rng.Float64() > 0.6 {
		loanType = domain.LoanFHA
	}
	s.Financials.LoanType = loanType
	s.Financials.ArrearsMonths = arrearsMonths
	s.Financials.ArrearsAmount = payment * float64(arrearsMonths)
	s.Financials.TaxArrears = math.Floor(domain.Between(g.rng, 2000, 7000))

	g.fillSeller(s, domain.IntBetween(g.rng, 35, 54), domain.FlexibilityHigh)
}

func (g *Generator) relocation(s *domain.Scenario) {
	ltv := domain.Between(g.rng, 60, 85)
	owed := math.Floor(s.Property.FMV * ltv / 100)

	s.Property.OwedAmount = owed
	s.Property.MonthlyPayment = math.Round(owed * standardPaymentRate)

	s.Financials.LoanType = domain.LoanConventional
	s.Financials.CarryingCosts = math.Round(owed*standardPaymentRate) + 800

	g.fillSeller(s, domain.IntBetween(g.rng, 30, 44), domain.FlexibilityHigh)
}

func (g *Generator) stuckListing(s *domain.Scenario) {
	ltv := domain.Between(g.rng, 70, 90)
	owed := math.Floor(s.Property.FMV * ltv / 100)

	s.Property.OwedAmount = owed
	s.Property.MonthlyPayment = math.Round(owed * standardPaymentRate)

	s.Financials.LoanType = domain.LoanConventional
	s.Financials.MonthsOnMarket = domain.IntBetween(g.rng, 6, 14)
	s.Financials.CarryingCosts = math.Round(owed*standardPaymentRate) +
		math.Floor(domain.Between(g.rng, 1800, 3000))

	g.fillSeller(s, domain.IntBetween(g.rng, 40, 59), domain.FlexibilityHigh)
}

func (g *Generator) lowEquity(s *domain.Scenario) {
	ltv := domain.Between(g.rng, 95, 105) // underwater permitido
	owed := math.Floor(s.Property.FMV * ltv / 100)

	s.Property.OwedAmount = owed
	s.Property.MonthlyPayment = math.Round(owed * distressedPaymentRate)

	loanType := domain.LoanConventional
	if g.rng.Float64() > 0.5 {
		loanType = domain.LoanFHA
	}
	s.Financials.LoanType = loanType

	g.fillSeller(s, domain.IntBetween(g.rng, 35, 49), domain.FlexibilityMedium)

	// 1-3 activos intercambiables del pool fijo.
	count := domain.IntBetween(g.rng, 1, 3)
	s.Seller.AdditionalAssets = append([]string(nil), tradeableAssets[:count]...)
}

func (g *Generator) highEquity(s *domain.Scenario) {
	ltv := domain.Between(g.rng, 10, 45)
	owed := math.Floor(s.Property.FMV * ltv / 100)

	s.Property.OwedAmount = owed
	if owed > 0 {
		s.Property.MonthlyPayment = math.Round(domain.Between(g.rng, 400, 1200))
		s.Financials.LoanType = domain.LoanConventional
	} else {
		s.Financials.LoanType = domain.LoanOther
	}

	g.fillSeller(s, domain.IntBetween(g.rng, 65, 79), domain.FlexibilityMedium)
}

// fillSeller completa el perfil del vendedor con los textos del arquetipo.
func (g *Generator) fillSeller(s *domain.Scenario, age int, flex domain.Flexibility) {
	p := profiles[string(s.Archetype)]
	s.Seller.Age = age
	s.Seller.Flexibility = flex
	s.Seller.Situation = p.situation
	s.Seller.Motivation = p.motivation
	s.Seller.Timeframe = p.timeframe
}
