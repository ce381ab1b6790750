package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

func openTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleScenario(id string) domain.Scenario {
	return domain.Scenario{
		ID:        id,
		Archetype: domain.ArchetypePreForeclosure,
		Title:     "Pre-Foreclosure Rescue",
		Property: domain.Property{
			Address:        "1247 Oak Valley Drive, Arlington, TX 76013",
			FMV:            325_000,
			OwedAmount:     300_625,
			MonthlyPayment: 1804,
			RentalIncome:   2600,
			RepairCosts:    2500,
		},
		Financials: domain.Financials{
			Equity:   24_375,
			LTV:      92.5,
			LoanType: domain.LoanConventional,
		},
		Seller: domain.Seller{
			Name:        "Michael Torres",
			Flexibility: domain.FlexibilityHigh,
		},
		GeneratedAt: time.Now().UTC(),
	}
}

func TestSaveScenario_RoundTrip(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	want := sampleScenario("scn-1")
	require.NoError(t, s.SaveScenario(ctx, want))

	got, err := s.GetRecentScenarios(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, want.ID, got[0].ID)
	assert.Equal(t, want.Archetype, got[0].Archetype)
	assert.Equal(t, want.Property.FMV, got[0].Property.FMV)
	assert.Equal(t, want.Property.OwedAmount, got[0].Property.OwedAmount)
	assert.Equal(t, want.Financials.LTV, got[0].Financials.LTV)
	assert.Equal(t, want.Seller.Name, got[0].Seller.Name)
	assert.Equal(t, want.Seller.Flexibility, got[0].Seller.Flexibility)
}

func TestSaveScenario_DuplicateIDIgnored(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveScenario(ctx, sampleScenario("scn-1")))
	require.NoError(t, s.SaveScenario(ctx, sampleScenario("scn-1")))

	got, err := s.GetRecentScenarios(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetRecentScenarios_OrderAndLimit(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	for i, id := range []string{"old", "mid", "new"} {
		sc := sampleScenario(id)
		sc.GeneratedAt = time.Now().UTC().Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.SaveScenario(ctx, sc))
	}

	got, err := s.GetRecentScenarios(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
}

func TestSaveDealSnapshot(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	err := s.SaveDealSnapshot(ctx, "session-1",
		[]domain.Technique{domain.TechniqueSubjectTo, domain.TechniqueWrapAround},
		domain.TotalStructure{
			PurchasePrice:     325_000,
			TotalDownPayment:  3510,
			UserMonthlyProfit: 896,
		})
	assert.NoError(t, err)
}

func TestSaveSimulationMonth_UpsertAndOrder(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	prop := domain.PostClosingProperty{
		CurrentValue:   326_000,
		LoanBalance:    279_500,
		MonthlyPayment: 2700,
	}
	require.NoError(t, s.SaveSimulationMonth(ctx, "session-1", 2, prop, domain.BuyerCurrent))
	require.NoError(t, s.SaveSimulationMonth(ctx, "session-1", 1, prop, domain.BuyerCurrent))

	// Reescribir el mismo mes no duplica: el ledger se regenera al avanzar
	prop.CurrentValue = 327_000
	require.NoError(t, s.SaveSimulationMonth(ctx, "session-1", 2, prop, domain.BuyerDefaulted))

	months, err := s.GetSimulationMonths(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, 1, months[0].MonthsOwned)
	assert.Equal(t, 2, months[1].MonthsOwned)
	assert.Equal(t, 327_000.0, months[1].CurrentValue)
}

func TestGetSimulationMonths_IsolatedPerSession(t *testing.T) {
	s := openTestStorage(t)
	ctx := context.Background()

	prop := domain.PostClosingProperty{CurrentValue: 326_000}
	require.NoError(t, s.SaveSimulationMonth(ctx, "a", 1, prop, domain.BuyerCurrent))
	require.NoError(t, s.SaveSimulationMonth(ctx, "b", 1, prop, domain.BuyerCurrent))

	months, err := s.GetSimulationMonths(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, months, 1)
}
