package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

func sampleScenario() domain.Scenario {
	return domain.Scenario{
		Title: "Pre-Foreclosure Rescue",
		Property: domain.Property{
			Address:        "1247 Oak Valley Drive, Arlington, TX 76013",
			FMV:            325_000,
			OwedAmount:     300_625,
			MonthlyPayment: 1804,
			RentalIncome:   2600,
			Bedrooms:       3,
			Bathrooms:      2,
			SqFt:           1650,
			YearBuilt:      2004,
			Condition:      domain.ConditionExcellent,
		},
		Seller: domain.Seller{
			Name:        "Michael Torres",
			Age:         45,
			Flexibility: domain.FlexibilityHigh,
		},
		Financials: domain.Financials{
			Equity:        24_375,
			LTV:           92.5,
			ArrearsMonths: 5,
			ArrearsAmount: 9020,
		},
	}
}

func TestShowScenario_Compact(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false)

	require.NoError(t, c.ShowScenario(context.Background(), sampleScenario()))

	out := buf.String()
	assert.Contains(t, out, "Pre-Foreclosure Rescue")
	assert.Contains(t, out, "Oak Valley Drive")
	assert.Contains(t, out, "$325000")
	assert.Contains(t, out, "92.5%")
	assert.Contains(t, out, "Michael Torres")
}

func TestShowScenario_TableIncludesArrears(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, true)

	require.NoError(t, c.ShowScenario(context.Background(), sampleScenario()))

	out := buf.String()
	assert.Contains(t, out, "Arrears")
	assert.Contains(t, out, "5 months")
}

func TestShowConversation_PrintsExchange(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, false)

	err := c.ShowConversation(context.Background(), "Ask why they're selling", "I can't keep up with the payments")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "> Ask why they're selling")
	assert.Contains(t, out, "I can't keep up with the payments")
}

func TestShowDeal_RendersTotalsAndDocuments(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, true)

	err := c.ShowDeal(context.Background(),
		[]domain.Technique{domain.TechniqueSubjectTo, domain.TechniqueWrapAround},
		domain.TotalStructure{
			PurchasePrice:     325_000,
			TotalDownPayment:  3510,
			UserMonthlyProfit: 896,
		},
		[]domain.Document{
			{Type: domain.DocPSA, Name: "Purchase and Sale Agreement (PSA)", Status: domain.DocStatusDraft},
		})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "subject-to + wrap-around")
	assert.Contains(t, out, "$3510")
	assert.Contains(t, out, "Purchase and Sale Agreement")
	assert.Contains(t, out, "draft")
}

func TestShowLedger_MarksMissedPayments(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, true)

	prop := domain.PostClosingProperty{
		Address:      "1247 Oak Valley Drive, Arlington, TX 76013",
		CurrentValue: 330_000,
		LoanBalance:  279_000,
		MonthsOwned:  2,
	}
	err := c.ShowLedger(context.Background(), prop, domain.BuyerDefaulted, []domain.PaymentRecord{
		{Month: 1, Amount: 2700, Received: true},
		{Month: 2, Amount: 2700, Received: false, DaysLate: 19, Penalty: 950},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "defaulted")
	assert.Contains(t, out, "MISSED")
	assert.Contains(t, out, "$950")
}

func TestShowOffers_RendersBothTables(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWriter(&buf, true)

	err := c.ShowOffers(context.Background(),
		[]domain.RefinancingOffer{
			{Lender: "Wells Fargo", LoanAmount: 272_740, InterestRate: 7.25, CashOut: 12_740},
		},
		[]domain.SaleOption{
			{Type: domain.SaleInvestor, Buyer: "Local real estate investor", OfferPrice: 280_500, NetProfit: 14_200, Timeframe: "15-30 days"},
		})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Wells Fargo")
	assert.Contains(t, out, "7.25%")
	assert.Contains(t, out, "investor")
	assert.Contains(t, out, "15-30 days")
}
