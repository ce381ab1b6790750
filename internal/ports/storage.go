package ports

import (
	"context"

	"github.com/alejandrodnm/dealsim/internal/domain"
)

// Storage persiste el histórico de una sesión de práctica: los escenarios
// generados, los snapshots de la estructura del deal y los meses simulados
// post-closing.
type Storage interface {
	SaveScenario(ctx context.Context, s domain.Scenario) error
	GetRecentScenarios(ctx context.Context, limit int) ([]domain.Scenario, error)

	SaveDealSnapshot(ctx context.Context, sessionID string, techniques []domain.Technique, total domain.TotalStructure) error

	SaveSimulationMonth(ctx context.Context, sessionID string, month int, prop domain.PostClosingProperty, status domain.BuyerStatus) error
	GetSimulationMonths(ctx context.Context, sessionID string) ([]domain.PostClosingProperty, error)

	Close() error
}
