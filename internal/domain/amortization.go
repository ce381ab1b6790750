package domain

import "math"

// MonthlyPayment calcula la cuota mensual fija de un préstamo amortizado.
//
// Fórmula estándar: P·r·(1+r)^n / ((1+r)^n − 1)
//   - r: tasa anual en % / 100 / 12
//   - n: años × 12
//
// Con tasa cero la fórmula divide por cero, así que se degrada a cuota
// lineal principal/n. Resultado redondeado al dólar entero.
func MonthlyPayment(principal, annualRatePct float64, years int) float64 {
	n := float64(years) * 12
	if principal <= 0 || n <= 0 {
		return 0
	}
	r := annualRatePct / 100 / 12
	if r == 0 {
		return math.Round(principal / n)
	}
	growth := math.Pow(1+r, n)
	return math.Round(principal * r * growth / (growth - 1))
}

// AmortizationWalk recorre mes a mes el paydown de un préstamo existente.
// La cuota fija la aporta el caller: así se puede simular un préstamo cuyo
// pago original no conocemos (pagos sintéticos owed×0.005, wraps, etc.)
// sin re-derivarlo por fórmula.
//
// En cada paso: interés = balance × r mensual, principal = max(0, cuota − interés),
// balance decrece con floor en 0. Devuelve el principal total pagado y el
// balance final. Siempre se cumple principalPaid == principal − endingBalance.
func AmortizationWalk(principal, annualRatePct float64, months int, payment float64) (principalPaid, endingBalance float64) {
	monthlyRate := annualRatePct / 100 / 12
	balance := principal
	for i := 0; i < months; i++ {
		interest := balance * monthlyRate
		principalPayment := math.Max(0, payment-interest)
		if principalPayment > balance {
			principalPayment = balance
		}
		principalPaid += principalPayment
		balance -= principalPayment
		if balance <= 0 {
			balance = 0
			break
		}
	}
	return principalPaid, balance
}
