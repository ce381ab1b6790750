package domain

import "math"

// DebtClass es la calificación cualitativa de la deuda total.
type DebtClass string

const (
	DebtExcellent  DebtClass = "excellent"
	DebtGood       DebtClass = "good"
	DebtAcceptable DebtClass = "acceptable"
	DebtPoor       DebtClass = "poor"
)

// DebtAnalysis reparte la deuda total en buena y mala, con el ratio de
// cobertura y las razones en orden de evaluación.
// Tras el ajuste final siempre se cumple GoodDebt + BadDebt == TotalDebt.
type DebtAnalysis struct {
	TotalDebt           float64
	GoodDebt            float64
	BadDebt             float64
	DebtServiceCoverage float64
	Classification      DebtClass
	Reasoning           []string
}

// Tasa sintética pago/balance del seller financing en el servicio de deuda.
const sellerFinancingPaymentRate = 0.004

// ClassifyDebt evalúa cuatro predicados sobre el deal y reparte la deuda.
//
// El reparto acumulativo de badDebt de los predicados individuales se
// descarta al final: badDebt queda como el complemento max(0, total − good).
// Es lo que muestra la capa de presentación, así que el reparto final
// siempre cierra exacto contra la deuda total.
func ClassifyDebt(d FinancialData, m CalculatedMetrics) DebtAnalysis {
	totalDebt := d.ExistingMortgage + d.SellerFinancing

	monthlyDebtService := d.ExistingMortgage * syntheticPaymentRate
	if d.SellerFinancing > 0 {
		monthlyDebtService += d.SellerFinancing * sellerFinancingPaymentRate
	}

	monthlyIncome := d.MonthlyRent + d.WrapAroundPayment
	var coverage float64
	if monthlyDebtService > 0 {
		coverage = monthlyIncome / monthlyDebtService
	}

	isServicedByProperty := m.MonthlyCashflow >= 0
	generatesCashflow := m.MonthlyCashflow > 0
	appreciatesOverTime := d.AppreciationRate > 2
	hasPositiveEquity := m.Equity > 0

	var goodDebt, badDebt float64
	reasoning := make([]string, 0, 4)

	if isServicedByProperty {
		goodDebt += totalDebt * 0.8
		reasoning = append(reasoning, "debt is serviced by property income, not out of pocket")
	} else {
		badDebt += totalDebt * 0.3
		reasoning = append(reasoning, "debt requires out-of-pocket contributions")
	}

	if generatesCashflow {
		goodDebt += totalDebt * 0.1
		reasoning = append(reasoning, "deal generates positive monthly cash flow")
	}

	if appreciatesOverTime {
		goodDebt += totalDebt * 0.1
		reasoning = append(reasoning, "asset appreciates faster than inflation")
	} else {
		reasoning = append(reasoning, "low appreciation on the underlying asset")
	}

	if hasPositiveEquity {
		reasoning = append(reasoning, "positive equity acts as a safety cushion")
	} else {
		badDebt += math.Abs(m.Equity)
		reasoning = append(reasoning, "negative equity increases downside risk")
	}

	// Ajuste final: badDebt pasa a ser el complemento de goodDebt.
	badDebt = math.Max(0, totalDebt-goodDebt)

	var class DebtClass
	switch {
	case coverage > 1.5 && isServicedByProperty && generatesCashflow:
		class = DebtExcellent
	case coverage > 1.2 && isServicedByProperty:
		class = DebtGood
	case coverage > 1.0:
		class = DebtAcceptable
	default:
		class = DebtPoor
	}

	// El redondeo de BadDebt se deriva del de los otros dos para que el
	// reparto cierre exacto aunque goodDebt caiga en medio dólar.
	roundedTotal := math.Round(totalDebt)
	roundedGood := math.Round(goodDebt)
	return DebtAnalysis{
		TotalDebt:           roundedTotal,
		GoodDebt:            roundedGood,
		BadDebt:             math.Max(0, roundedTotal-roundedGood),
		DebtServiceCoverage: round2(coverage),
		Classification:      class,
		Reasoning:           reasoning,
	}
}
