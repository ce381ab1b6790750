package dialogue

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// ForScenario builds the conversation for a generated scenario. Responses
// quote the scenario's real numbers so the dialogue and the analysis never
// disagree.
func ForScenario(sc domain.Scenario) *Machine {
	s := sc.Seller
	p := sc.Property
	f := sc.Financials

	topics := []Topic{
		{
			ID:       "greeting",
			Category: CategoryGreeting,
			Prompt:   "Introduce yourself and ask how they're doing",
			Response: fmt.Sprintf("Hi, I'm %s. Honestly? It's been a rough stretch. %s", s.Name, s.Situation),
			Unlocks:  []string{"why-selling", "property-condition"},
		},
		{
			ID:       "why-selling",
			Category: CategoryDiscovery,
			Prompt:   "Ask why they're selling",
			Response: s.Motivation,
			Unlocks:  []string{"timeframe", "owed-amount"},
		},
		{
			ID:       "property-condition",
			Category: CategoryDiscovery,
			Prompt:   "Ask about the condition of the house",
			Response: conditionResponse(p),
			Unlocks:  []string{"repairs"},
		},
		{
			ID:       "repairs",
			Category: CategoryDiscovery,
			Prompt:   "Ask what repairs it needs",
			Response: fmt.Sprintf("%s. I'd guess around $%.0f to put it right.", p.RepairDetails, p.RepairCosts),
		},
		{
			ID:       "timeframe",
			Category: CategoryDiscovery,
			Prompt:   "Ask how soon they need to close",
			Response: s.Timeframe,
			Unlocks:  []string{"flexible-terms"},
		},
		{
			ID:       "owed-amount",
			Category: CategoryFinancial,
			Prompt:   "Ask how much is still owed on the mortgage",
			Response: fmt.Sprintf("The payoff is about $%.0f. The payment runs $%.0f a month.", p.OwedAmount, p.MonthlyPayment),
			Unlocks:  []string{"payments-current", "monthly-payment"},
		},
		{
			ID:       "monthly-payment",
			Category: CategoryFinancial,
			Prompt:   "Ask what the loan type is",
			Response: fmt.Sprintf("It's a %s loan.", strings.ToUpper(string(f.LoanType))),
		},
		{
			ID:       "payments-current",
			Category: CategoryFinancial,
			Prompt:   "Ask if the payments are current",
			Response: arrearsResponse(f),
			Unlocks:  []string{"flexible-terms"},
		},
		{
			ID:       "flexible-terms",
			Category: CategoryOffer,
			Prompt:   "Ask if they'd consider creative terms instead of a cash sale",
			Response: flexibilityResponse(s.Flexibility),
			Unlocks:  []string{"make-offer"},
		},
		{
			ID:       "make-offer",
			Category: CategoryOffer,
			Prompt:   "Tell them you'd like to put together an offer",
			Response: "Alright. Show me what you have in mind and I'll hear you out.",
		},
	}

	if len(s.AdditionalAssets) > 0 {
		topics = append(topics, Topic{
			ID:       "other-assets",
			Category: CategoryFinancial,
			Prompt:   "Ask if they own anything else they'd part with",
			Response: fmt.Sprintf("Well, there's the %s. I'd consider letting it go if it helps the deal.", strings.Join(s.AdditionalAssets, ", and the ")),
		})
		// Asset talk opens up once money is on the table.
		for i := range topics {
			if topics[i].ID == "owed-amount" {
				topics[i].Unlocks = append(topics[i].Unlocks, "other-assets")
			}
		}
	}

	return New(topics, []string{"greeting"})
}

func conditionResponse(p domain.Property) string {
	if p.Condition == domain.ConditionExcellent {
		return "It's in great shape, honestly. " + p.ConditionDetails
	}
	return "It needs some cosmetic work, nothing structural. " + p.ConditionDetails
}

func arrearsResponse(f domain.Financials) string {
	if f.ArrearsMonths > 0 {
		return fmt.Sprintf("No... I'm %d months behind. The bank says I owe $%.0f in back payments.", f.ArrearsMonths, f.ArrearsAmount)
	}
	return "Yes, I've never missed a payment."
}

func flexibilityResponse(flex domain.Flexibility) string {
	switch flex {
	case domain.FlexibilityHigh:
		return "At this point I'm open to anything that gets me out from under this."
	case domain.FlexibilityMedium:
		return "Maybe. Walk me through it, but I'm not signing anything strange."
	default:
		return "I'd really rather just sell it and be done."
	}
}
