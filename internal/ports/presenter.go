package ports

import (
	"context"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// Presenter muestra el estado de la sesión al usuario.
// La implementación de consola imprime tablas formateadas.
type Presenter interface {
	ShowScenario(ctx context.Context, s domain.Scenario) error
	ShowConversation(ctx context.Context, prompt, response string) error
	ShowDeal(ctx context.Context, techniques []domain.Technique, total domain.TotalStructure, docs []domain.Document) error
	ShowAnalysis(ctx context.Context, m domain.CalculatedMetrics, disreet domain.DISREETResult, debt domain.DebtAnalysis) error
	ShowLedger(ctx context.Context, prop domain.PostClosingProperty, status domain.BuyerStatus, payments []domain.PaymentRecord) error
	ShowOffers(ctx context.Context, refi []domain.RefinancingOffer, sale []domain.SaleOption) error
}
