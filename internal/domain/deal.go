package domain

// Technique identifica cada una de las seis técnicas de financiación
// que el usuario puede activar de forma independiente.
type Technique string

const (
	TechniqueSubjectTo       Technique = "subject-to"
	TechniqueSellerFinancing Technique = "seller-financing"
	TechniqueWrapAround      Technique = "wrap-around"
	TechniqueLeaseOption     Technique = "lease-option"
	TechniqueWholesale       Technique = "wholesale"
	TechniqueAssetTrade      Technique = "asset-trade"
)

// SubjectTo: el comprador toma título dejando la hipoteca a nombre del
// vendedor. El down payment es nominal ($1–$1,000).
type SubjectTo struct {
	DownPayment         float64
	ClosingCosts        float64
	MonthlyPayment      float64 // pago existente del escenario, solo lectura
	RemainingBalance    float64 // owed del escenario
	AuthorizationLetter bool    // informativo, sin efecto en los cálculos
}

// SellerFinancing: el vendedor financia parte de su equity como préstamo.
type SellerFinancing struct {
	Amount         float64
	InterestRate   float64 // % anual
	TermYears      int
	MonthlyPayment float64 // siempre MonthlyPayment(Amount, InterestRate, TermYears)
	Securement     bool
}

// WrapAround: préstamo nuevo que envuelve la hipoteca existente.
type WrapAround struct {
	NewLoanAmount     float64
	NewInterestRate   float64
	NewMonthlyPayment float64
	ExistingPayment   float64 // pago del escenario, fijo
	MonthlyProfit     float64 // NewMonthlyPayment − ExistingPayment
	BuyerProfile      string
}

// LeaseOption: alquiler con derecho (no obligación) de compra.
type LeaseOption struct {
	DownPayment      float64
	MonthlyRent      float64
	OptionTermMonths int
	OptionPrice      float64
	RentCredit       float64 // parte de la renta acreditable a la compra
	BuyerMotivation  string
}

// TotalBuyerCredit es el crédito acumulado del tenant-buyer al final del término.
func (l LeaseOption) TotalBuyerCredit() float64 {
	return l.DownPayment + l.RentCredit*float64(l.OptionTermMonths)
}

// Wholesale: contrato asignado a un comprador cash por una fee.
type Wholesale struct {
	ContractPrice float64 // FMV × 0.75, no editable
	AssignmentFee float64
	CashBuyerType string
	MarketingDays int
}

// FinalBuyerPrice es lo que paga el comprador final: contrato + fee.
func (w Wholesale) FinalBuyerPrice() float64 {
	return w.ContractPrice + w.AssignmentFee
}

// AssetTrade: activos del vendedor cuentan como down payment adicional.
type AssetTrade struct {
	Assets            []TradeAsset // máximo 2
	TotalValue        float64
	IntegrationMethod string
}

// TotalStructure es el agregado derivado de los componentes activos.
// Nunca se guarda como fuente de verdad: es siempre función pura del
// conjunto de componentes habilitados en el momento de leerla.
type TotalStructure struct {
	PurchasePrice       float64 // FMV del escenario
	TotalDownPayment    float64
	BuyerMonthlyPayment float64
	SellerMonthlyIncome float64
	UserMonthlyProfit   float64
}

// DocumentType identifica el documento legal asociado a cada técnica.
type DocumentType string

const (
	DocPSA                 DocumentType = "psa"
	DocDeed                DocumentType = "deed"
	DocPromissoryNote      DocumentType = "promissory-note"
	DocAuthorizationLetter DocumentType = "authorization-letter"
	DocWrapAroundNote      DocumentType = "wrap-around-note"
	DocLeaseOption         DocumentType = "lease-option"
	DocAssignmentContract  DocumentType = "assignment-contract"
	DocAssetTransfer       DocumentType = "asset-transfer"
)

// DocumentStatus es el ciclo de vida de un documento: draft → ready → signed.
type DocumentStatus string

const (
	DocStatusDraft  DocumentStatus = "draft"
	DocStatusReady  DocumentStatus = "ready"
	DocStatusSigned DocumentStatus = "signed"
)

// Document es el placeholder legal que acompaña a cada componente activo.
type Document struct {
	ID          string
	Type        DocumentType
	Name        string
	Description string
	Status      DocumentStatus
}
