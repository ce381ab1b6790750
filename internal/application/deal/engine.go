// Package deal implements the deal structuring engine: up to six financing
// techniques toggled independently against an immutable scenario, plus the
// legal-document placeholders tied to each active technique.
package deal

import (
	"fmt"
	"math"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// Defaults seeded from the scenario when a technique is enabled.
const (
	subjectToDownPayment    = 10
	subjectToClosingCosts   = 3500
	subjectToDownPaymentMin = 1
	subjectToDownPaymentMax = 1000

	sellerFinancingCap  = 50_000
	sellerFinancingRate = 4.5
	sellerFinancingTerm = 10 // years

	wrapLoanToValue  = 0.85
	wrapInterestRate = 6.5
	wrapPaymentSeed  = 2700

	leaseOptionDown       = 15_000
	leaseOptionRent       = 2500
	leaseOptionTermMonths = 24
	leaseOptionPremium    = 15_000 // over FMV
	leaseOptionRentCredit = 300

	wholesaleDiscount      = 0.75
	wholesaleAssignmentFee = 15_000
	wholesaleMarketingDays = 14

	maxTradeAssets = 2
)

// Engine holds the mutable deal structure for one scenario. Components are
// pointers: nil means disabled. TotalStructure is never stored, it is
// derived from the enabled set on every Total() call.
type Engine struct {
	scenario domain.Scenario

	subjectTo       *domain.SubjectTo
	sellerFinancing *domain.SellerFinancing
	wrapAround      *domain.WrapAround
	leaseOption     *domain.LeaseOption
	wholesale       *domain.Wholesale
	assetTrade      *domain.AssetTrade

	docs *documentSet
}

// New creates an engine for the scenario with the base PSA and Deed
// documents already drafted.
func New(scenario domain.Scenario) *Engine {
	return &Engine{
		scenario: scenario,
		docs:     newDocumentSet(),
	}
}

// Scenario returns the scenario this deal is structured against.
func (e *Engine) Scenario() domain.Scenario { return e.scenario }

// Enable activates a technique with its scenario-seeded defaults and
// registers the associated document. Enabling an already-enabled technique
// is a no-op. Asset trades need structured assets, use EnableAssetTrade.
func (e *Engine) Enable(t domain.Technique) error {
	switch t {
	case domain.TechniqueSubjectTo:
		if e.subjectTo == nil {
			e.subjectTo = &domain.SubjectTo{
				DownPayment:      subjectToDownPayment,
				ClosingCosts:     subjectToClosingCosts,
				MonthlyPayment:   e.scenario.Property.MonthlyPayment,
				RemainingBalance: e.scenario.Property.OwedAmount,
			}
			e.docs.add(domain.DocAuthorizationLetter)
		}
	case domain.TechniqueSellerFinancing:
		if e.sellerFinancing == nil {
			// Never finance more than the seller's available equity.
			amount := math.Min(sellerFinancingCap, e.scenario.Property.FMV-e.scenario.Property.OwedAmount)
			if amount < 0 {
				amount = 0
			}
			e.sellerFinancing = &domain.SellerFinancing{
				Amount:         amount,
				InterestRate:   sellerFinancingRate,
				TermYears:      sellerFinancingTerm,
				MonthlyPayment: domain.MonthlyPayment(amount, sellerFinancingRate, sellerFinancingTerm),
			}
			e.docs.add(domain.DocPromissoryNote)
		}
	case domain.TechniqueWrapAround:
		if e.wrapAround == nil {
			existing := e.scenario.Property.MonthlyPayment
			e.wrapAround = &domain.WrapAround{
				NewLoanAmount:     e.scenario.Property.FMV * wrapLoanToValue,
				NewInterestRate:   wrapInterestRate,
				NewMonthlyPayment: wrapPaymentSeed,
				ExistingPayment:   existing,
				MonthlyProfit:     wrapPaymentSeed - existing,
				BuyerProfile:      "Good income, bruised credit",
			}
			e.docs.add(domain.DocWrapAroundNote)
		}
	case domain.TechniqueLeaseOption:
		if e.leaseOption == nil {
			e.leaseOption = &domain.LeaseOption{
				DownPayment:      leaseOptionDown,
				MonthlyRent:      leaseOptionRent,
				OptionTermMonths: leaseOptionTermMonths,
				OptionPrice:      e.scenario.Property.FMV + leaseOptionPremium,
				RentCredit:       leaseOptionRentCredit,
				BuyerMotivation:  "Cannot qualify yet, expects credit to recover",
			}
			e.docs.add(domain.DocLeaseOption)
		}
	case domain.TechniqueWholesale:
		if e.wholesale == nil {
			e.wholesale = &domain.Wholesale{
				ContractPrice: e.scenario.Property.FMV * wholesaleDiscount,
				AssignmentFee: wholesaleAssignmentFee,
				CashBuyerType: "Local fix-and-flip investor with cash on hand",
				MarketingDays: wholesaleMarketingDays,
			}
			e.docs.add(domain.DocAssignmentContract)
		}
	case domain.TechniqueAssetTrade:
		return fmt.Errorf("deal.Enable: asset trade needs assets, use EnableAssetTrade")
	default:
		return fmt.Errorf("deal.Enable: unknown technique %q", t)
	}
	return nil
}

// EnableAssetTrade activates the asset-trade component with up to two of
// the given structured assets. Enabling twice replaces the selection.
func (e *Engine) EnableAssetTrade(assets []domain.TradeAsset) {
	selected := assets
	if len(selected) > maxTradeAssets {
		selected = selected[:maxTradeAssets]
	}
	e.assetTrade = &domain.AssetTrade{
		Assets:            append([]domain.TradeAsset(nil), selected...),
		TotalValue:        domain.TotalAssetValue(selected),
		IntegrationMethod: "Assets count as additional down payment to cover negative equity",
	}
	e.docs.add(domain.DocAssetTransfer)
}

// Disable removes a component and its associated document. Disabling one
// component never touches the others; its contribution disappears from the
// next Total().
func (e *Engine) Disable(t domain.Technique) {
	switch t {
	case domain.TechniqueSubjectTo:
		e.subjectTo = nil
		e.docs.remove(domain.DocAuthorizationLetter)
	case domain.TechniqueSellerFinancing:
		e.sellerFinancing = nil
		e.docs.remove(domain.DocPromissoryNote)
	case domain.TechniqueWrapAround:
		e.wrapAround = nil
		e.docs.remove(domain.DocWrapAroundNote)
	case domain.TechniqueLeaseOption:
		e.leaseOption = nil
		e.docs.remove(domain.DocLeaseOption)
	case domain.TechniqueWholesale:
		e.wholesale = nil
		e.docs.remove(domain.DocAssignmentContract)
	case domain.TechniqueAssetTrade:
		e.assetTrade = nil
		e.docs.remove(domain.DocAssetTransfer)
	}
}

// Enabled lists the currently active techniques in canonical order.
func (e *Engine) Enabled() []domain.Technique {
	var out []domain.Technique
	if e.subjectTo != nil {
		out = append(out, domain.TechniqueSubjectTo)
	}
	if e.sellerFinancing != nil {
		out = append(out, domain.TechniqueSellerFinancing)
	}
	if e.wrapAround != nil {
		out = append(out, domain.TechniqueWrapAround)
	}
	if e.leaseOption != nil {
		out = append(out, domain.TechniqueLeaseOption)
	}
	if e.wholesale != nil {
		out = append(out, domain.TechniqueWholesale)
	}
	if e.assetTrade != nil {
		out = append(out, domain.TechniqueAssetTrade)
	}
	return out
}

// Component accessors. They return copies; nil means disabled.

func (e *Engine) SubjectTo() *domain.SubjectTo             { return cloned(e.subjectTo) }
func (e *Engine) SellerFinancing() *domain.SellerFinancing { return cloned(e.sellerFinancing) }
func (e *Engine) WrapAround() *domain.WrapAround           { return cloned(e.wrapAround) }
func (e *Engine) LeaseOption() *domain.LeaseOption         { return cloned(e.leaseOption) }
func (e *Engine) Wholesale() *domain.Wholesale             { return cloned(e.wholesale) }
func (e *Engine) AssetTrade() *domain.AssetTrade {
	if e.assetTrade == nil {
		return nil
	}
	c := *e.assetTrade
	c.Assets = append([]domain.TradeAsset(nil), e.assetTrade.Assets...)
	return &c
}

func cloned[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Total aggregates the contributions of the enabled components.
// Pure function of the current component set.
func (e *Engine) Total() domain.TotalStructure {
	t := domain.TotalStructure{PurchasePrice: e.scenario.Property.FMV}

	if st := e.subjectTo; st != nil {
		t.TotalDownPayment += st.DownPayment + st.ClosingCosts
		t.BuyerMonthlyPayment += st.MonthlyPayment
	}
	if sf := e.sellerFinancing; sf != nil {
		t.BuyerMonthlyPayment += sf.MonthlyPayment
		t.SellerMonthlyIncome += sf.MonthlyPayment
	}
	if wa := e.wrapAround; wa != nil {
		t.BuyerMonthlyPayment += wa.NewMonthlyPayment
		t.UserMonthlyProfit += wa.MonthlyProfit
	}
	if lo := e.leaseOption; lo != nil {
		t.TotalDownPayment += lo.DownPayment
		t.BuyerMonthlyPayment += lo.MonthlyRent
		t.UserMonthlyProfit += lo.MonthlyRent - e.scenario.Property.MonthlyPayment
	}
	return t
}
