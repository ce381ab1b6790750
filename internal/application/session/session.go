// Package session owns one user's practice run end to end: generate a
// scenario, structure the deal, run the financial analysis and close into
// a post-closing simulation. Each session is confined to one caller; no
// state is shared across sessions.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/alejandrodnm/dealsim/internal/application/deal"
	"github.com/alejandrodnm/dealsim/internal/application/projector"
	"github.com/alejandrodnm/dealsim/internal/dialogue"
	"github.com/alejandrodnm/dealsim/internal/domain"
	"github.com/alejandrodnm/dealsim/internal/ports"
	"github.com/alejandrodnm/dealsim/internal/scenario"
)

// Analysis bundles the three derived views recomputed together.
type Analysis struct {
	Metrics domain.CalculatedMetrics
	DISREET domain.DISREETResult
	Debt    domain.DebtAnalysis
}

// Defaults holds the analysis parameters not tied to the scenario.
type Defaults struct {
	AppreciationRatePct float64
	TimeHorizonYears    int
	InterestRatePct     float64
	ProjectorConfig     projector.Config
}

// Session drives one practice run. Storage is optional: nil disables
// persistence without changing behavior.
type Session struct {
	ID string

	rng      domain.Rand
	gen      *scenario.Generator
	store    ports.Storage
	defaults Defaults

	scenario *domain.Scenario
	deal     *deal.Engine
	dlg      *dialogue.Machine
}

// New creates a session with the given randomness source. One Rand per
// session: the generator and the projector share it so a single seed
// reproduces the whole run.
func New(rng domain.Rand, store ports.Storage, defaults Defaults) *Session {
	if defaults.AppreciationRatePct <= 0 {
		defaults.AppreciationRatePct = 3.5
	}
	if defaults.TimeHorizonYears <= 0 {
		defaults.TimeHorizonYears = 5
	}
	if defaults.InterestRatePct <= 0 {
		defaults.InterestRatePct = 6.5
	}
	return &Session{
		ID:       uuid.New().String(),
		rng:      rng,
		gen:      scenario.New(rng),
		store:    store,
		defaults: defaults,
	}
}

// GenerateScenario produces a fresh scenario and resets the deal engine
// around it. Any previous deal structure is discarded.
func (s *Session) GenerateScenario(ctx context.Context, archetype domain.Archetype) (domain.Scenario, error) {
	sc := s.gen.Generate(archetype)
	s.scenario = &sc
	s.deal = deal.New(sc)
	s.dlg = dialogue.ForScenario(sc)

	slog.Info("scenario generated",
		"archetype", sc.Archetype,
		"fmv", sc.Property.FMV,
		"ltv", sc.Financials.LTV,
		"equity", sc.Financials.Equity,
	)

	if s.store != nil {
		if err := s.store.SaveScenario(ctx, sc); err != nil {
			return sc, fmt.Errorf("session.GenerateScenario: save: %w", err)
		}
	}
	return sc, nil
}

// Scenario returns the current scenario, or nil before the first generate.
func (s *Session) Scenario() *domain.Scenario { return s.scenario }

// Deal returns the deal engine for the current scenario.
func (s *Session) Deal() *deal.Engine { return s.deal }

// Dialogue returns the seller conversation for the current scenario, or
// nil before the first generate.
func (s *Session) Dialogue() *dialogue.Machine { return s.dlg }

// FinancialData projects the scenario plus the enabled deal components
// into the analyzer's input record. User-entered figures can override the
// result before calling Analyze directly.
func (s *Session) FinancialData() (domain.FinancialData, error) {
	if s.scenario == nil || s.deal == nil {
		return domain.FinancialData{}, fmt.Errorf("session.FinancialData: no scenario generated")
	}

	sc := s.scenario
	d := domain.FinancialData{
		PropertyValue:    sc.Property.FMV,
		PurchasePrice:    sc.Property.FMV,
		ExistingMortgage: sc.Property.OwedAmount,
		MonthlyRent:      sc.Property.RentalIncome,
		RepairCosts:      sc.Property.RepairCosts,
		MonthlyHolding:   sc.Financials.CarryingCosts,
		LateFees:         sc.Financials.ArrearsAmount,
		DealType:         domain.DealSubjectTo,
		AppreciationRate: s.defaults.AppreciationRatePct,
		TimeHorizonYears: s.defaults.TimeHorizonYears,
		InterestRate:     s.defaults.InterestRatePct,
	}

	if st := s.deal.SubjectTo(); st != nil {
		d.DownPayment = st.DownPayment
		d.ClosingCosts = st.ClosingCosts
	}
	if sf := s.deal.SellerFinancing(); sf != nil {
		d.SellerFinancing = sf.Amount
		d.DealType = domain.DealSellerFinancing
	}
	if wa := s.deal.WrapAround(); wa != nil {
		d.WrapAroundPayment = wa.NewMonthlyPayment
		d.DealType = domain.DealWrapAround
	}
	if lo := s.deal.LeaseOption(); lo != nil {
		d.OptionPremium = lo.DownPayment
		d.BuyerDownPayments = lo.DownPayment
		d.DealType = domain.DealOption
	}
	if wh := s.deal.Wholesale(); wh != nil {
		d.AssignmentFee = wh.AssignmentFee
		d.PurchasePrice = wh.ContractPrice
		d.DealType = domain.DealAssignment
	}
	if at := s.deal.AssetTrade(); at != nil {
		d.AssetTradeValue = at.TotalValue
		if d.DealType == domain.DealSubjectTo {
			d.DealType = domain.DealTrade
		}
	}
	return d, nil
}

// Analyze recomputes the full derived view from the given inputs.
// Metrics first: DISREET and the debt classifier consume them.
func Analyze(d domain.FinancialData) Analysis {
	m := domain.ComputeMetrics(d)
	return Analysis{
		Metrics: m,
		DISREET: domain.AnalyzeDISREET(d, m),
		Debt:    domain.ClassifyDebt(d, m),
	}
}

// Close turns the structured deal into a post-closing simulation. The
// enabled components seed the property state: the wrap payment or lease
// rent becomes the incoming payment, the scenario's owed amount is the
// underlying balance, and the real total down payment (when there is one)
// replaces the projector's flat initial-investment constant.
func (s *Session) Close(ctx context.Context, purchaseDate time.Time) (*projector.Projector, error) {
	if s.scenario == nil || s.deal == nil {
		return nil, fmt.Errorf("session.Close: no scenario generated")
	}
	enabled := s.deal.Enabled()
	if len(enabled) == 0 {
		return nil, fmt.Errorf("session.Close: no techniques enabled")
	}

	total := s.deal.Total()

	if s.store != nil {
		if err := s.store.SaveDealSnapshot(ctx, s.ID, enabled, total); err != nil {
			return nil, fmt.Errorf("session.Close: save deal: %w", err)
		}
	}

	prop := domain.PostClosingProperty{
		Address:        s.scenario.Property.Address,
		InitialValue:   s.scenario.Property.FMV,
		CurrentValue:   s.scenario.Property.FMV,
		LoanBalance:    s.scenario.Property.OwedAmount,
		MonthlyPayment: s.incomingPayment(),
		DealType:       primaryTechnique(enabled),
		PurchaseDate:   purchaseDate,
		MonthsOwned:    0,
	}

	slog.Info("deal closed",
		"session", s.ID,
		"techniques", len(enabled),
		"down_payment", total.TotalDownPayment,
		"monthly_profit", total.UserMonthlyProfit,
	)

	return projector.New(s.defaults.ProjectorConfig, s.rng, prop, total.TotalDownPayment), nil
}

// incomingPayment is what the new buyer/tenant pays us each month.
func (s *Session) incomingPayment() float64 {
	if wa := s.deal.WrapAround(); wa != nil {
		return wa.NewMonthlyPayment
	}
	if lo := s.deal.LeaseOption(); lo != nil {
		return lo.MonthlyRent
	}
	return s.scenario.Property.RentalIncome
}

// primaryTechnique picks the label for the post-closing deal type: the
// technique that defines where the money comes from wins.
func primaryTechnique(enabled []domain.Technique) domain.Technique {
	priority := []domain.Technique{
		domain.TechniqueWrapAround,
		domain.TechniqueLeaseOption,
		domain.TechniqueSellerFinancing,
		domain.TechniqueSubjectTo,
	}
	for _, p := range priority {
		for _, t := range enabled {
			if t == p {
				return p
			}
		}
	}
	return enabled[0]
}
