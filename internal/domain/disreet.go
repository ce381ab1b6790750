package domain

import "math"

// DISREETResult es la descomposición de beneficio en cinco factores:
// Discount, rent cashflow (Income), market appreciation, loan paydown
// (Equity) y Tax depreciation. TotalProfit es la suma de los cinco más los
// ingresos extra según tipo de deal.
type DISREETResult struct {
	Discount           float64
	RentCashflow       float64
	MarketAppreciation float64
	LoanPaydown        float64
	TaxDepreciation    float64
	TotalProfit        float64
	AnnualizedReturn   float64 // %, 2 decimales
}

// Constantes fiscales de la depreciación straight-line residencial en EEUU:
// 80% del valor (excluye suelo) sobre 27.5 años, beneficio al tipo del 22%.
const (
	depreciableShare  = 0.8
	depreciationYears = 27.5
	taxBenefitRate    = 0.22
)

// AnalyzeDISREET calcula la descomposición de beneficio sobre el horizonte
// de FinancialData. Requiere las métricas ya calculadas: el cashflow anual
// y la inversión total entran como inputs.
//
// El retorno anualizado se deriva de los cinco componentes base (los
// ingresos extra de asignación/down payments se suman después al total,
// como ganancia puntual fuera de la serie compuesta). Con inversión cero
// devuelve 0, nunca Inf/NaN.
func AnalyzeDISREET(d FinancialData, m CalculatedMetrics) DISREETResult {
	years := d.TimeHorizonYears
	if years <= 0 {
		return DISREETResult{}
	}

	discount := math.Max(0, d.PropertyValue-d.PurchasePrice)

	rentCashflow := m.AnnualCashflow * float64(years)

	futureValue := d.PropertyValue * math.Pow(1+d.AppreciationRate/100, float64(years))
	marketAppreciation := futureValue - d.PropertyValue

	syntheticPayment := d.ExistingMortgage * syntheticPaymentRate
	loanPaydown, _ := AmortizationWalk(d.ExistingMortgage, d.InterestRate, years*12, syntheticPayment)

	annualDepreciation := d.PropertyValue * depreciableShare / depreciationYears
	taxDepreciation := annualDepreciation * float64(years) * taxBenefitRate

	baseProfit := discount + rentCashflow + marketAppreciation + loanPaydown + taxDepreciation

	var annualizedReturn float64
	if m.TotalInvestment > 0 {
		annualizedReturn = (math.Pow(1+baseProfit/m.TotalInvestment, 1/float64(years)) - 1) * 100
		// Con pérdidas mayores que la inversión la base compuesta es
		// negativa y Pow devuelve NaN: reporta 0 en vez de propagarlo.
		if math.IsNaN(annualizedReturn) {
			annualizedReturn = 0
		}
	}

	additionalIncome := d.BuyerDownPayments
	if d.DealType == DealAssignment && d.AssignmentFee > 0 {
		additionalIncome += d.AssignmentFee
	}

	return DISREETResult{
		Discount:           math.Round(discount),
		RentCashflow:       math.Round(rentCashflow),
		MarketAppreciation: math.Round(marketAppreciation),
		LoanPaydown:        math.Round(loanPaydown),
		TaxDepreciation:    math.Round(taxDepreciation),
		TotalProfit:        math.Round(baseProfit + additionalIncome),
		AnnualizedReturn:   round2(annualizedReturn),
	}
}
