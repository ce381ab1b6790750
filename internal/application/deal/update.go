package deal

import (
	"fmt"
	"math"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// Typed setters. Each one recomputes the fields that depend on the edited
// value before returning, so a read right after a setter never sees stale
// derived state.

// SetSubjectToDownPayment updates the symbolic down payment, clamped to the
// allowed $1-$1,000 band.
func (e *Engine) SetSubjectToDownPayment(v float64) error {
	if e.subjectTo == nil {
		return errDisabled(domain.TechniqueSubjectTo)
	}
	e.subjectTo.DownPayment = clamp(v, subjectToDownPaymentMin, subjectToDownPaymentMax)
	return nil
}

// SetSubjectToClosingCosts updates the estimated closing costs.
func (e *Engine) SetSubjectToClosingCosts(v float64) error {
	if e.subjectTo == nil {
		return errDisabled(domain.TechniqueSubjectTo)
	}
	e.subjectTo.ClosingCosts = math.Max(0, v)
	return nil
}

// SetSubjectToAuthorizationLetter flips the informational flag.
func (e *Engine) SetSubjectToAuthorizationLetter(v bool) error {
	if e.subjectTo == nil {
		return errDisabled(domain.TechniqueSubjectTo)
	}
	e.subjectTo.AuthorizationLetter = v
	return nil
}

// SetSellerFinancingAmount edits the financed amount and recomputes the
// monthly payment. Amount, rate and term are co-dependent: editing any of
// the three triggers a full payment recompute.
func (e *Engine) SetSellerFinancingAmount(v float64) error {
	if e.sellerFinancing == nil {
		return errDisabled(domain.TechniqueSellerFinancing)
	}
	e.sellerFinancing.Amount = math.Max(0, v)
	e.recomputeSellerFinancing()
	return nil
}

// SetSellerFinancingRate edits the annual rate and recomputes the payment.
func (e *Engine) SetSellerFinancingRate(v float64) error {
	if e.sellerFinancing == nil {
		return errDisabled(domain.TechniqueSellerFinancing)
	}
	e.sellerFinancing.InterestRate = math.Max(0, v)
	e.recomputeSellerFinancing()
	return nil
}

// SetSellerFinancingTerm edits the term in years and recomputes the payment.
func (e *Engine) SetSellerFinancingTerm(years int) error {
	if e.sellerFinancing == nil {
		return errDisabled(domain.TechniqueSellerFinancing)
	}
	if years < 1 {
		years = 1
	}
	e.sellerFinancing.TermYears = years
	e.recomputeSellerFinancing()
	return nil
}

func (e *Engine) recomputeSellerFinancing() {
	sf := e.sellerFinancing
	sf.MonthlyPayment = domain.MonthlyPayment(sf.Amount, sf.InterestRate, sf.TermYears)
}

// SetWrapAroundPayment edits the wrap payment and recomputes the monthly
// profit against the fixed existing payment.
func (e *Engine) SetWrapAroundPayment(v float64) error {
	if e.wrapAround == nil {
		return errDisabled(domain.TechniqueWrapAround)
	}
	e.wrapAround.NewMonthlyPayment = math.Max(0, v)
	e.wrapAround.MonthlyProfit = e.wrapAround.NewMonthlyPayment - e.wrapAround.ExistingPayment
	return nil
}

// SetLeaseOptionDownPayment edits the option consideration.
func (e *Engine) SetLeaseOptionDownPayment(v float64) error {
	if e.leaseOption == nil {
		return errDisabled(domain.TechniqueLeaseOption)
	}
	e.leaseOption.DownPayment = math.Max(0, v)
	return nil
}

// SetLeaseOptionRent edits the monthly rent.
func (e *Engine) SetLeaseOptionRent(v float64) error {
	if e.leaseOption == nil {
		return errDisabled(domain.TechniqueLeaseOption)
	}
	e.leaseOption.MonthlyRent = math.Max(0, v)
	return nil
}

// SetLeaseOptionTerm edits the option term in months.
func (e *Engine) SetLeaseOptionTerm(months int) error {
	if e.leaseOption == nil {
		return errDisabled(domain.TechniqueLeaseOption)
	}
	if months < 1 {
		months = 1
	}
	e.leaseOption.OptionTermMonths = months
	return nil
}

// SetLeaseOptionPrice edits the strike price.
func (e *Engine) SetLeaseOptionPrice(v float64) error {
	if e.leaseOption == nil {
		return errDisabled(domain.TechniqueLeaseOption)
	}
	e.leaseOption.OptionPrice = math.Max(0, v)
	return nil
}

// SetLeaseOptionRentCredit edits the monthly rent credit.
func (e *Engine) SetLeaseOptionRentCredit(v float64) error {
	if e.leaseOption == nil {
		return errDisabled(domain.TechniqueLeaseOption)
	}
	e.leaseOption.RentCredit = math.Max(0, v)
	return nil
}

// SetWholesaleAssignmentFee edits the assignment fee. The contract price
// stays fixed at 75% of FMV.
func (e *Engine) SetWholesaleAssignmentFee(v float64) error {
	if e.wholesale == nil {
		return errDisabled(domain.TechniqueWholesale)
	}
	e.wholesale.AssignmentFee = math.Max(0, v)
	return nil
}

// SetWholesaleMarketingDays edits the marketing window.
func (e *Engine) SetWholesaleMarketingDays(days int) error {
	if e.wholesale == nil {
		return errDisabled(domain.TechniqueWholesale)
	}
	if days < 1 {
		days = 1
	}
	e.wholesale.MarketingDays = days
	return nil
}

func errDisabled(t domain.Technique) error {
	return fmt.Errorf("deal: %s is not enabled", t)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
