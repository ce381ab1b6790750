package domain

import "math"

// DealType etiqueta la estructura de la operación para el análisis financiero.
// No coincide 1:1 con Technique: aquí interesa cómo entra el dinero.
type DealType string

const (
	DealSubjectTo       DealType = "subject-to"
	DealWrapAround      DealType = "wrap-around"
	DealOption          DealType = "option"
	DealAssignment      DealType = "assignment"
	DealTrade           DealType = "trade"
	DealSellerFinancing DealType = "seller-financing"
)

// FinancialData es el input del analizador de rentabilidad y del
// clasificador de deuda. Puede venir de un Scenario cerrado o de cifras
// introducidas a mano por el usuario.
type FinancialData struct {
	PropertyValue    float64
	PurchasePrice    float64
	ExistingMortgage float64
	DownPayment      float64
	SellerFinancing  float64
	MonthlyRent      float64

	RepairCosts     float64
	ClosingCosts    float64
	MonthlyHolding  float64
	AgentCommission float64
	LateFees        float64
	DoublePayments  float64

	DealType         DealType
	AppreciationRate float64 // % anual
	TimeHorizonYears int
	InterestRate     float64 // % anual de la hipoteca existente

	// Campos opcionales según DealType.
	BuyerDownPayments float64
	WrapAroundPayment float64
	OptionPremium     float64
	AssignmentFee     float64
	AssetTradeValue   float64
}

// CalculatedMetrics son las métricas derivadas de FinancialData.
// Nunca se mutan a mano: se recalculan con ComputeMetrics tras cada cambio.
type CalculatedMetrics struct {
	LTV             float64
	Equity          float64
	MonthlyCashflow float64
	AnnualCashflow  float64
	TotalInvestment float64
	ROI             float64 // %
	TotalExpenses   float64
	NetProfit       float64
}

// syntheticPaymentRate es la tasa sintética pago/balance usada en todo el
// análisis para aproximar el pago mensual de la hipoteca existente.
const syntheticPaymentRate = 0.005

// ComputeMetrics deriva las métricas básicas del deal.
//
// Ingreso mensual: renta de mercado, salvo wrap-around (cobras el pago del
// wrap) y option (renta + prima prorrateada). Gasto mensual: holding más el
// pago sintético de la hipoteca existente (balance × 0.005).
func ComputeMetrics(d FinancialData) CalculatedMetrics {
	var ltv float64
	if d.PropertyValue > 0 {
		ltv = d.ExistingMortgage / d.PropertyValue * 100
	}
	equity := d.PropertyValue - d.ExistingMortgage

	monthlyIncome := d.MonthlyRent
	monthlyExpenses := d.MonthlyHolding + d.ExistingMortgage*syntheticPaymentRate

	switch {
	case d.DealType == DealWrapAround && d.WrapAroundPayment > 0:
		monthlyIncome = d.WrapAroundPayment
	case d.DealType == DealOption && d.OptionPremium > 0:
		monthlyIncome += d.OptionPremium / 12
	}

	monthlyCashflow := monthlyIncome - monthlyExpenses
	annualCashflow := monthlyCashflow * 12

	totalExpenses := d.DownPayment + d.ClosingCosts + d.RepairCosts +
		d.LateFees + d.DoublePayments + d.AgentCommission

	totalInvestment := totalExpenses
	if d.DealType == DealAssignment && d.AssignmentFee > 0 {
		// En una asignación el capital en riesgo es el earnest money;
		// el floor evita un ROI infinito con gastos cero.
		totalInvestment = math.Max(1000, totalExpenses)
	}

	netProfit := annualCashflow
	switch {
	case d.DealType == DealAssignment && d.AssignmentFee > 0:
		netProfit = d.AssignmentFee
	case d.DealType == DealTrade && d.AssetTradeValue > 0:
		netProfit += d.AssetTradeValue
	}

	var roi float64
	if totalInvestment > 0 {
		roi = netProfit / totalInvestment * 100
	}

	return CalculatedMetrics{
		LTV:             round2(ltv),
		Equity:          equity,
		MonthlyCashflow: round2(monthlyCashflow),
		AnnualCashflow:  round2(annualCashflow),
		TotalInvestment: totalInvestment,
		ROI:             round2(roi),
		TotalExpenses:   totalExpenses,
		NetProfit:       round2(netProfit),
	}
}

// round2 redondea a 2 decimales.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
