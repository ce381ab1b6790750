// Package projector simulates the monthly life of a property after
// closing: payment receipts and defaults, value appreciation, amortization
// of the underlying loan, refinancing offers and exit options.
package projector

import (
	"math"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// Config holds the stochastic-process constants. Zero values fall back to
// the course defaults via New.
type Config struct {
	UnderlyingRatePct  float64 // APY of the underlying mortgage
	UnderlyingPayment  float64 // fixed synthetic payment on the underlying loan
	DefaultProbability float64 // chance the buyer defaults, per ledger replay
	AppreciationMinPct float64 // monthly appreciation band, in percent
	AppreciationMaxPct float64
	PenaltyPerDayLate  float64
	RentBumpOnRestart  float64 // payment increase when re-tenanting after default
	BaseInvestment     float64 // fallback initial investment for net-profit math
}

// DefaultConfig returns the constants the course simulator uses.
func DefaultConfig() Config {
	return Config{
		UnderlyingRatePct:  6.5,
		UnderlyingPayment:  2100,
		DefaultProbability: 0.15,
		AppreciationMinPct: 0.25,
		AppreciationMaxPct: 0.45,
		PenaltyPerDayLate:  50,
		RentBumpOnRestart:  100,
		BaseInvestment:     15_000,
	}
}

// earliestDefaultMonth: a buyer never defaults in the first three months;
// the stochastic onset is drawn from [4, currentMonth].
const earliestDefaultMonth = 4

// Projector owns one property's post-closing state. Confine each instance
// to a single goroutine; all methods mutate without locking.
type Projector struct {
	cfg Config
	rng domain.Rand

	prop         domain.PostClosingProperty
	payments     []domain.PaymentRecord
	status       domain.BuyerStatus
	defaultMonth int // 0 = none
	currentMonth int

	initialInvestment float64
}

// New creates a projector over an already-closed property. monthsOwned on
// the property seeds the ledger horizon; the first ledger is generated
// immediately. initialInvestment of 0 falls back to cfg.BaseInvestment.
func New(cfg Config, rng domain.Rand, prop domain.PostClosingProperty, initialInvestment float64) *Projector {
	def := DefaultConfig()
	if cfg.UnderlyingRatePct <= 0 {
		cfg.UnderlyingRatePct = def.UnderlyingRatePct
	}
	if cfg.UnderlyingPayment <= 0 {
		cfg.UnderlyingPayment = def.UnderlyingPayment
	}
	if cfg.DefaultProbability <= 0 {
		cfg.DefaultProbability = def.DefaultProbability
	}
	if cfg.AppreciationMinPct <= 0 {
		cfg.AppreciationMinPct = def.AppreciationMinPct
	}
	if cfg.AppreciationMaxPct <= 0 {
		cfg.AppreciationMaxPct = def.AppreciationMaxPct
	}
	if cfg.PenaltyPerDayLate <= 0 {
		cfg.PenaltyPerDayLate = def.PenaltyPerDayLate
	}
	if cfg.RentBumpOnRestart <= 0 {
		cfg.RentBumpOnRestart = def.RentBumpOnRestart
	}
	if cfg.BaseInvestment <= 0 {
		cfg.BaseInvestment = def.BaseInvestment
	}
	if initialInvestment <= 0 {
		initialInvestment = cfg.BaseInvestment
	}

	p := &Projector{
		cfg:               cfg,
		rng:               rng,
		prop:              prop,
		status:            domain.BuyerCurrent,
		currentMonth:      prop.MonthsOwned,
		initialInvestment: initialInvestment,
	}
	p.regenerateLedger()
	return p
}

// Property returns the current property snapshot.
func (p *Projector) Property() domain.PostClosingProperty { return p.prop }

// Status returns the buyer status.
func (p *Projector) Status() domain.BuyerStatus { return p.status }

// DefaultMonth returns the default onset month, or 0 if the buyer is current.
func (p *Projector) DefaultMonth() int { return p.defaultMonth }

// Payments returns a copy of the ledger up to the current month.
func (p *Projector) Payments() []domain.PaymentRecord {
	return append([]domain.PaymentRecord(nil), p.payments...)
}

// AdvanceMonth moves the simulation forward one month: the property
// appreciates by a random monthly factor, the underlying loan amortizes
// one step, and the payment ledger is regenerated over the new horizon.
// Never fails, never blocks.
func (p *Projector) AdvanceMonth() {
	p.currentMonth++

	appreciation := domain.Between(p.rng, p.cfg.AppreciationMinPct, p.cfg.AppreciationMaxPct) / 100
	p.prop.CurrentValue = math.Round(p.prop.CurrentValue * (1 + appreciation))

	_, balance := domain.AmortizationWalk(p.prop.LoanBalance, p.cfg.UnderlyingRatePct, 1, p.cfg.UnderlyingPayment)
	p.prop.LoanBalance = balance

	p.prop.MonthsOwned = p.currentMonth

	p.regenerateLedger()
}

// regenerateLedger rebuilds the payment history from month 1 to the
// current month. The default onset is re-drawn on every rebuild, so a
// previously observed month can flip outcome when the horizon grows.
// With a seedable Rand the replay stays reproducible end to end.
func (p *Projector) regenerateLedger() {
	p.payments = p.payments[:0]

	onset := 0
	if p.currentMonth >= earliestDefaultMonth && p.rng.Float64() < p.cfg.DefaultProbability {
		onset = domain.IntBetween(p.rng, earliestDefaultMonth, p.currentMonth)
	}

	for month := 1; month <= p.currentMonth; month++ {
		record := domain.PaymentRecord{
			Month:    month,
			Amount:   p.prop.MonthlyPayment,
			Received: true,
		}
		if onset > 0 && month >= onset {
			record.Received = false
			record.DaysLate = domain.IntBetween(p.rng, 5, 34)
			record.Penalty = float64(record.DaysLate) * p.cfg.PenaltyPerDayLate
		}
		p.payments = append(p.payments, record)
	}

	if onset > 0 {
		p.status = domain.BuyerDefaulted
		p.defaultMonth = onset
	} else {
		p.status = domain.BuyerCurrent
		p.defaultMonth = 0
	}
}

// TriggerDefault forces a default at the current month: every payment from
// this month on becomes missed with a flat 30 days late. Deterministic.
func (p *Projector) TriggerDefault() {
	p.status = domain.BuyerDefaulted
	p.defaultMonth = p.currentMonth

	for i := range p.payments {
		if p.payments[i].Month >= p.currentMonth {
			p.payments[i].Received = false
			p.payments[i].DaysLate = 30
			p.payments[i].Penalty = 30 * p.cfg.PenaltyPerDayLate
		}
	}
}

// RestartDeal re-tenants a defaulted property: one month passes, the
// monthly payment goes up by the configured bump, and the buyer is current
// again. Only the counter moves; the property neither appreciates nor
// amortizes during the turnover month. The new ledger replay may of
// course default again.
func (p *Projector) RestartDeal() {
	if p.status != domain.BuyerDefaulted {
		return
	}
	p.prop.MonthlyPayment += p.cfg.RentBumpOnRestart

	p.currentMonth++
	p.prop.MonthsOwned = p.currentMonth
	p.regenerateLedger()
}

// ReceivedCashFlow sums every payment actually received so far.
func (p *Projector) ReceivedCashFlow() float64 {
	total := 0.0
	for _, pay := range p.payments {
		if pay.Received {
			total += pay.Amount
		}
	}
	return total
}

// Returns summarizes the position to date.
type Returns struct {
	InitialInvestment float64
	TotalCashFlow     float64
	CurrentEquity     float64
	TotalReturn       float64
	MonthlyROI        float64 // annualized %, per month owned
}

// TotalReturn computes the running return on the position. The monthly ROI
// guard keeps zero-month or zero-investment states at 0 instead of NaN.
func (p *Projector) TotalReturn() Returns {
	cashFlow := p.ReceivedCashFlow()
	equity := p.prop.Equity()
	total := cashFlow + equity - p.initialInvestment

	var monthlyROI float64
	if p.initialInvestment > 0 && p.prop.MonthsOwned > 0 {
		monthlyROI = total / p.initialInvestment / float64(p.prop.MonthsOwned) * 12 * 100
	}
	if math.IsInf(monthlyROI, 0) || math.IsNaN(monthlyROI) {
		monthlyROI = 0
	}

	return Returns{
		InitialInvestment: p.initialInvestment,
		TotalCashFlow:     cashFlow,
		CurrentEquity:     equity,
		TotalReturn:       total,
		MonthlyROI:        monthlyROI,
	}
}
