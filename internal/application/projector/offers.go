package projector

import (
	"math"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// Fixed lender book for cash-out refinancing. LTV caps, rates and closing
// costs are per-lender constants; only the appraisal is random.
var lenders = []struct {
	name         string
	ltvCap       float64
	ratePct      float64
	paymentRate  float64 // synthetic payment/balance ratio
	closingCosts float64
}{
	{"Wells Fargo", 0.80, 7.25, 0.0075, 8500},
	{"Bank of America", 0.75, 6.95, 0.0072, 7200},
	{"Local Credit Union", 0.78, 6.85, 0.0070, 6800},
}

// RefinancingOffers produces the three lender offers against a fresh
// appraisal (95%-105% of current value). Not memoized: calling twice
// re-rolls the appraisal, like ordering two appraisals would.
func (p *Projector) RefinancingOffers() []domain.RefinancingOffer {
	appraised := math.Round(p.prop.CurrentValue * domain.Between(p.rng, 0.95, 1.05))

	offers := make([]domain.RefinancingOffer, 0, len(lenders))
	for _, l := range lenders {
		amount := math.Round(appraised * l.ltvCap)
		offers = append(offers, domain.RefinancingOffer{
			Lender:         l.name,
			LoanAmount:     amount,
			InterestRate:   l.ratePct,
			MonthlyPayment: math.Round(amount * l.paymentRate),
			CashOut:        math.Round(amount - p.prop.LoanBalance),
			ClosingCosts:   l.closingCosts,
			AppraisedValue: appraised,
		})
	}
	return offers
}

// Exit pricing constants per buyer archetype.
const (
	investorDiscount   = 0.85
	tenantBuyerPremium = 1.05
	marketSaleCosts    = 0.06 // realtor commission eats into net profit
)

// SaleOptions produces the three exit archetypes with their net profit:
// offer price minus loan balance, plus cash flow received to date, minus
// the initial investment.
func (p *Projector) SaleOptions() []domain.SaleOption {
	cashFlow := p.ReceivedCashFlow()
	value := p.prop.CurrentValue
	balance := p.prop.LoanBalance
	invested := p.initialInvestment

	return []domain.SaleOption{
		{
			Type:       domain.SaleInvestor,
			Buyer:      "Local real estate investor",
			OfferPrice: math.Round(value * investorDiscount),
			Terms:      "Fast close, all cash",
			NetProfit:  math.Round(value*investorDiscount - balance + cashFlow - invested),
			Timeframe:  "15-30 days",
		},
		{
			Type:       domain.SaleTenantBuyer,
			Buyer:      "Current tenant (lease option)",
			OfferPrice: math.Round(value * tenantBuyerPremium),
			Terms:      "Option exercise, buyer brings financing",
			NetProfit:  math.Round(value*tenantBuyerPremium - balance + cashFlow - invested),
			Timeframe:  "30-45 days",
		},
		{
			Type:       domain.SaleMarket,
			Buyer:      "Open market through a realtor",
			OfferPrice: math.Round(value),
			Terms:      "6% realtor commission, conventional financing",
			NetProfit:  math.Round(value*(1-marketSaleCosts) - balance + cashFlow - invested),
			Timeframe:  "60-90 days",
		},
	}
}
