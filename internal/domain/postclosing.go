package domain

import "time"

// BuyerStatus es el estado del comprador/inquilino en la fase post-closing.
type BuyerStatus string

const (
	BuyerCurrent   BuyerStatus = "current"
	BuyerDefaulted BuyerStatus = "defaulted"
	BuyerCompleted BuyerStatus = "completed"
)

// PostClosingProperty es el estado mutable de una propiedad ya cerrada.
// Solo muta avanzando un mes simulado, o por un default explícito.
type PostClosingProperty struct {
	Address        string
	InitialValue   float64
	CurrentValue   float64
	LoanBalance    float64
	MonthlyPayment float64 // lo que te paga el comprador/inquilino
	DealType       Technique
	PurchaseDate   time.Time
	MonthsOwned    int
}

// Equity es el colchón actual: valor menos balance del préstamo.
func (p PostClosingProperty) Equity() float64 {
	return p.CurrentValue - p.LoanBalance
}

// PaymentRecord es una fila del ledger de pagos simulado.
type PaymentRecord struct {
	Month    int
	Amount   float64
	Received bool
	DaysLate int
	Penalty  float64
}

// RefinancingOffer es una oferta de cash-out refinance de un lender fijo.
type RefinancingOffer struct {
	Lender         string
	LoanAmount     float64
	InterestRate   float64
	MonthlyPayment float64
	CashOut        float64
	ClosingCosts   float64
	AppraisedValue float64
}

// SaleType es el arquetipo de comprador en una salida.
type SaleType string

const (
	SaleInvestor    SaleType = "investor"
	SaleTenantBuyer SaleType = "tenant-buyer"
	SaleMarket      SaleType = "market"
)

// SaleOption es una vía de salida de la propiedad con su beneficio neto.
type SaleOption struct {
	Type       SaleType
	Buyer      string
	OfferPrice float64
	Terms      string
	NetProfit  float64
	Timeframe  string
}
