package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

func testTopics() []Topic {
	return []Topic{
		{ID: "hello", Category: CategoryGreeting, Response: "hi", Unlocks: []string{"why"}},
		{ID: "why", Category: CategoryDiscovery, Response: "because", Unlocks: []string{"offer"}},
		{ID: "offer", Category: CategoryOffer, Response: "deal"},
	}
}

func TestAsk_UnlockChain(t *testing.T) {
	m := New(testTopics(), []string{"hello"})

	// Solo el opener está disponible al principio
	require.Len(t, m.Available(), 1)

	resp, err := m.Ask("hello")
	require.NoError(t, err)
	assert.Equal(t, "hi", resp)

	avail := m.Available()
	require.Len(t, avail, 1)
	assert.Equal(t, "why", avail[0].ID)
}

func TestAsk_LockedTopicFails(t *testing.T) {
	m := New(testTopics(), []string{"hello"})
	_, err := m.Ask("offer")
	assert.Error(t, err)
}

func TestAsk_TwiceFails(t *testing.T) {
	m := New(testTopics(), []string{"hello"})
	_, err := m.Ask("hello")
	require.NoError(t, err)
	_, err = m.Ask("hello")
	assert.Error(t, err)
	assert.True(t, m.Asked("hello"))
}

func TestAsk_UnknownTopicFails(t *testing.T) {
	m := New(testTopics(), []string{"hello"})
	_, err := m.Ask("weather")
	assert.Error(t, err)
}

func TestExhausted(t *testing.T) {
	m := New(testTopics(), []string{"hello"})
	assert.False(t, m.Exhausted())

	for _, id := range []string{"hello", "why", "offer"} {
		_, err := m.Ask(id)
		require.NoError(t, err)
	}
	assert.True(t, m.Exhausted())
}

func TestForScenario_FullConversation(t *testing.T) {
	sc := domain.Scenario{
		Archetype: domain.ArchetypePreForeclosure,
		Property: domain.Property{
			OwedAmount:     300_625,
			MonthlyPayment: 1804,
			RepairCosts:    2500,
			Condition:      domain.ConditionExcellent,
		},
		Seller: domain.Seller{
			Name:        "Michael Torres",
			Situation:   "Three months behind after a layoff.",
			Motivation:  "The bank already sent the notice.",
			Timeframe:   "Thirty days, maybe less.",
			Flexibility: domain.FlexibilityHigh,
		},
		Financials: domain.Financials{
			ArrearsMonths: 5,
			ArrearsAmount: 9020,
			LoanType:      domain.LoanConventional,
		},
	}
	m := ForScenario(sc)

	resp, err := m.Ask("greeting")
	require.NoError(t, err)
	assert.Contains(t, resp, "Michael Torres")

	// El hilo financiero revela las cifras reales del escenario
	_, err = m.Ask("why-selling")
	require.NoError(t, err)
	resp, err = m.Ask("owed-amount")
	require.NoError(t, err)
	assert.Contains(t, resp, "300625")

	resp, err = m.Ask("payments-current")
	require.NoError(t, err)
	assert.Contains(t, resp, "5 months behind")

	// La conversación llega siempre a poder presentar una oferta
	_, err = m.Ask("flexible-terms")
	require.NoError(t, err)
	_, err = m.Ask("make-offer")
	require.NoError(t, err)
}

func TestForScenario_AssetsTopicOnlyWhenPresent(t *testing.T) {
	sc := domain.Scenario{
		Seller: domain.Seller{
			Name:             "Lisa Chen",
			AdditionalAssets: []string{"2018 Ford F-150 ($28,000)"},
		},
	}
	m := ForScenario(sc)
	_, err := m.Ask("greeting")
	require.NoError(t, err)
	_, err = m.Ask("why-selling")
	require.NoError(t, err)

	resp, err := m.Ask("owed-amount")
	require.NoError(t, err)
	assert.NotEmpty(t, resp)

	resp, err = m.Ask("other-assets")
	require.NoError(t, err)
	assert.Contains(t, resp, "Ford F-150")

	// Sin activos el topic no existe
	m2 := ForScenario(domain.Scenario{Seller: domain.Seller{Name: "Bob"}})
	_, _ = m2.Ask("greeting")
	_, _ = m2.Ask("why-selling")
	_, _ = m2.Ask("owed-amount")
	_, err = m2.Ask("other-assets")
	assert.Error(t, err)
}
