package projector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// neverDefault keeps every Float64 draw above any sane default probability
// and every IntN at the range midpoint.
type neverDefault struct{}

func (neverDefault) Float64() float64 { return 0.99 }
func (neverDefault) IntN(n int) int   { return (n - 1) / 2 }

// alwaysDefault forces the onset roll to succeed on every replay.
type alwaysDefault struct{}

func (alwaysDefault) Float64() float64 { return 0.0 }
func (alwaysDefault) IntN(n int) int   { return (n - 1) / 2 }

func testProperty() domain.PostClosingProperty {
	return domain.PostClosingProperty{
		Address:        "1247 Oak Valley Drive, Arlington, TX 76013",
		InitialValue:   325_000,
		CurrentValue:   325_000,
		LoanBalance:    280_000,
		MonthlyPayment: 2700,
		DealType:       domain.TechniqueWrapAround,
		PurchaseDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestAdvanceMonth_AppreciatesAndAmortizes(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 18_000)

	p.AdvanceMonth()
	prop := p.Property()

	assert.Equal(t, 1, prop.MonthsOwned)
	assert.Greater(t, prop.CurrentValue, 325_000.0)
	// interés mes 1: 280000×6.5%/12 ≈ 1517 < pago 2100 → el balance baja
	assert.Less(t, prop.LoanBalance, 280_000.0)
	assert.Greater(t, prop.LoanBalance, 279_000.0)
	assert.Len(t, p.Payments(), 1)
}

func TestAdvanceMonth_NoDefaultBeforeMonthFour(t *testing.T) {
	p := New(Config{}, alwaysDefault{}, testProperty(), 0)

	for i := 0; i < 3; i++ {
		p.AdvanceMonth()
		assert.Equal(t, domain.BuyerCurrent, p.Status(), "month %d", i+1)
	}

	// Del mes 4 en adelante el replay ya puede caer en default
	p.AdvanceMonth()
	assert.Equal(t, domain.BuyerDefaulted, p.Status())
	assert.GreaterOrEqual(t, p.DefaultMonth(), 4)
}

func TestLedger_MissedPaymentsCarryPenalties(t *testing.T) {
	p := New(Config{}, alwaysDefault{}, testProperty(), 0)
	for i := 0; i < 8; i++ {
		p.AdvanceMonth()
	}

	require.Equal(t, domain.BuyerDefaulted, p.Status())
	onset := p.DefaultMonth()

	for _, rec := range p.Payments() {
		if rec.Month < onset {
			assert.True(t, rec.Received)
			assert.Zero(t, rec.Penalty)
		} else {
			assert.False(t, rec.Received)
			assert.GreaterOrEqual(t, rec.DaysLate, 5)
			assert.LessOrEqual(t, rec.DaysLate, 34)
			assert.Equal(t, float64(rec.DaysLate)*50, rec.Penalty)
		}
	}
}

func TestTriggerDefault_Deterministic(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 0)
	for i := 0; i < 6; i++ {
		p.AdvanceMonth()
	}
	require.Equal(t, domain.BuyerCurrent, p.Status())

	p.TriggerDefault()

	assert.Equal(t, domain.BuyerDefaulted, p.Status())
	assert.Equal(t, 6, p.DefaultMonth())
	last := p.Payments()[5]
	assert.False(t, last.Received)
	assert.Equal(t, 30, last.DaysLate)
	assert.Equal(t, 1500.0, last.Penalty)
}

func TestRestartDeal_BumpsPaymentAndResumes(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 0)
	for i := 0; i < 5; i++ {
		p.AdvanceMonth()
	}
	p.TriggerDefault()

	valueBefore := p.Property().CurrentValue
	balanceBefore := p.Property().LoanBalance

	p.RestartDeal()

	assert.Equal(t, domain.BuyerCurrent, p.Status())
	assert.Equal(t, 2800.0, p.Property().MonthlyPayment)
	assert.Equal(t, 6, p.Property().MonthsOwned)
	// El mes de recambio de inquilino solo mueve el contador: ni aprecia
	// el valor ni amortiza la hipoteca subyacente.
	assert.Equal(t, valueBefore, p.Property().CurrentValue)
	assert.Equal(t, balanceBefore, p.Property().LoanBalance)
}

func TestRestartDeal_NoopWhenCurrent(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 0)
	p.AdvanceMonth()

	p.RestartDeal()
	assert.Equal(t, 2700.0, p.Property().MonthlyPayment)
	assert.Equal(t, 1, p.Property().MonthsOwned)
}

func TestReceivedCashFlow_SumsOnlyReceived(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 0)
	for i := 0; i < 4; i++ {
		p.AdvanceMonth()
	}
	assert.Equal(t, 4*2700.0, p.ReceivedCashFlow())

	p.TriggerDefault()
	// el mes 4 pasa a impagado
	assert.Equal(t, 3*2700.0, p.ReceivedCashFlow())
}

func TestTotalReturn_NoNaN(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 18_000)
	ret := p.TotalReturn()

	// Mes cero: sin cash flow, el retorno es solo equity − inversión
	assert.Equal(t, 18_000.0, ret.InitialInvestment)
	assert.Equal(t, 0.0, ret.TotalCashFlow)
	assert.Equal(t, 45_000.0, ret.CurrentEquity)
	assert.Equal(t, 0.0, ret.MonthlyROI)
	assert.False(t, ret.TotalReturn != ret.TotalReturn, "NaN total return")
}

func TestNew_FallsBackToBaseInvestment(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 0)
	assert.Equal(t, 15_000.0, p.TotalReturn().InitialInvestment)
}

func TestRefinancingOffers_LenderTerms(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 0)
	offers := p.RefinancingOffers()

	require.Len(t, offers, 3)
	assert.Equal(t, "Wells Fargo", offers[0].Lender)
	assert.Equal(t, "Bank of America", offers[1].Lender)
	assert.Equal(t, "Local Credit Union", offers[2].Lender)

	for _, o := range offers {
		// Tasación dentro de la banda 95%-105% del valor actual
		assert.GreaterOrEqual(t, o.AppraisedValue, 325_000*0.95)
		assert.LessOrEqual(t, o.AppraisedValue, 325_000*1.05)
		assert.Equal(t, o.LoanAmount-280_000, o.CashOut)
		assert.Greater(t, o.MonthlyPayment, 0.0)
	}

	// Caps de LTV por lender sobre la misma tasación
	ap := offers[0].AppraisedValue
	assert.InDelta(t, ap*0.80, offers[0].LoanAmount, 0.5)
	assert.InDelta(t, ap*0.75, offers[1].LoanAmount, 0.5)
	assert.InDelta(t, ap*0.78, offers[2].LoanAmount, 0.5)
}

func TestSaleOptions_NetProfitMath(t *testing.T) {
	p := New(Config{}, neverDefault{}, testProperty(), 15_000)
	for i := 0; i < 6; i++ {
		p.AdvanceMonth()
	}

	cashFlow := p.ReceivedCashFlow()
	prop := p.Property()
	options := p.SaleOptions()
	require.Len(t, options, 3)

	investor := options[0]
	assert.Equal(t, domain.SaleInvestor, investor.Type)
	assert.InDelta(t, prop.CurrentValue*0.85, investor.OfferPrice, 0.5)
	assert.InDelta(t, prop.CurrentValue*0.85-prop.LoanBalance+cashFlow-15_000,
		investor.NetProfit, 1)

	tenant := options[1]
	assert.InDelta(t, prop.CurrentValue*1.05, tenant.OfferPrice, 0.5)

	market := options[2]
	assert.InDelta(t, prop.CurrentValue, market.OfferPrice, 0.5)
	// la comisión del 6% sale del neto, no del precio de oferta
	assert.InDelta(t, prop.CurrentValue*0.94-prop.LoanBalance+cashFlow-15_000,
		market.NetProfit, 1)

	// El tenant-buyer siempre paga más que el inversor
	assert.Greater(t, tenant.NetProfit, investor.NetProfit)
}
