package storage

// sqlite.go — histórico de práctica en SQLite puro Go.
//
// Estrategia:
//   - `scenarios`: una fila por escenario generado. Sirve para revisar
//     sesiones pasadas y comparar deals sobre el mismo perfil.
//   - `deal_snapshots`: una fila por cierre (la estructura agregada y las
//     técnicas activas serializadas).
//   - `simulation_months`: UNA fila por (sesión, mes) con UPSERT. El ledger
//     se regenera al avanzar, así que el mismo mes puede reescribirse.
//   - Prune automático al arrancar: escenarios > 90d, meses > 30d.

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alejandrodnm/dealsim/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
-- Escenarios generados, uno por fila
CREATE TABLE IF NOT EXISTS scenarios (
    id              TEXT PRIMARY KEY,
    archetype       TEXT NOT NULL,
    title           TEXT,
    address         TEXT NOT NULL,
    fmv             REAL NOT NULL DEFAULT 0,
    owed_amount     REAL NOT NULL DEFAULT 0,
    monthly_payment REAL NOT NULL DEFAULT 0,
    rental_income   REAL NOT NULL DEFAULT 0,
    repair_costs    REAL NOT NULL DEFAULT 0,
    equity          REAL NOT NULL DEFAULT 0,
    ltv             REAL NOT NULL DEFAULT 0,
    loan_type       TEXT,
    seller_name     TEXT,
    flexibility     TEXT,
    generated_at    DATETIME NOT NULL
);

-- Snapshot de la estructura en el momento del cierre
CREATE TABLE IF NOT EXISTS deal_snapshots (
    id                  INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id          TEXT NOT NULL,
    techniques          TEXT NOT NULL,
    purchase_price      REAL NOT NULL DEFAULT 0,
    total_down_payment  REAL NOT NULL DEFAULT 0,
    buyer_monthly       REAL NOT NULL DEFAULT 0,
    seller_monthly      REAL NOT NULL DEFAULT 0,
    user_monthly_profit REAL NOT NULL DEFAULT 0,
    closed_at           DATETIME NOT NULL
);

-- Una fila por mes simulado, sin duplicados
CREATE TABLE IF NOT EXISTS simulation_months (
    session_id      TEXT    NOT NULL,
    month           INTEGER NOT NULL,
    current_value   REAL    NOT NULL DEFAULT 0,
    loan_balance    REAL    NOT NULL DEFAULT 0,
    monthly_payment REAL    NOT NULL DEFAULT 0,
    buyer_status    TEXT    NOT NULL,
    recorded_at     DATETIME NOT NULL,
    PRIMARY KEY (session_id, month)
);

CREATE INDEX IF NOT EXISTS idx_scenarios_at ON scenarios(generated_at DESC);
CREATE INDEX IF NOT EXISTS idx_snapshots_session ON deal_snapshots(session_id);
CREATE INDEX IF NOT EXISTS idx_months_session ON simulation_months(session_id, month);
`

const (
	retentionScenarios = 90 * 24 * time.Hour // escenarios: 90 días
	retentionMonths    = 30 * 24 * time.Hour // meses simulados: 30 días
)

// SQLiteStorage implementa ports.Storage usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada.
// Aplica el schema y limpia datos antiguos.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	s := &SQLiteStorage{db: db}
	s.pruneOld(context.Background())
	return s, nil
}

// SaveScenario persiste el escenario recién generado.
func (s *SQLiteStorage) SaveScenario(ctx context.Context, sc domain.Scenario) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scenarios
			(id, archetype, title, address, fmv, owed_amount, monthly_payment,
			 rental_income, repair_costs, equity, ltv, loan_type, seller_name,
			 flexibility, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		sc.ID,
		string(sc.Archetype),
		sc.Title,
		sc.Property.Address,
		sc.Property.FMV,
		sc.Property.OwedAmount,
		sc.Property.MonthlyPayment,
		sc.Property.RentalIncome,
		sc.Property.RepairCosts,
		sc.Financials.Equity,
		sc.Financials.LTV,
		string(sc.Financials.LoanType),
		sc.Seller.Name,
		string(sc.Seller.Flexibility),
		sc.GeneratedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage.SaveScenario: insert %s: %w", sc.ID, err)
	}
	return nil
}

// GetRecentScenarios devuelve los últimos escenarios generados, más reciente primero.
// Solo los campos resumen: para el deal hace falta regenerar, no releer.
func (s *SQLiteStorage) GetRecentScenarios(ctx context.Context, limit int) ([]domain.Scenario, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, archetype, title, address, fmv, owed_amount, monthly_payment,
		       rental_income, repair_costs, equity, ltv, loan_type, seller_name,
		       flexibility, generated_at
		FROM scenarios
		ORDER BY generated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage.GetRecentScenarios: query: %w", err)
	}
	defer rows.Close()

	var out []domain.Scenario
	for rows.Next() {
		var sc domain.Scenario
		var archetype, loanType, flexibility, generatedAt string

		if err := rows.Scan(
			&sc.ID,
			&archetype,
			&sc.Title,
			&sc.Property.Address,
			&sc.Property.FMV,
			&sc.Property.OwedAmount,
			&sc.Property.MonthlyPayment,
			&sc.Property.RentalIncome,
			&sc.Property.RepairCosts,
			&sc.Financials.Equity,
			&sc.Financials.LTV,
			&loanType,
			&sc.Seller.Name,
			&flexibility,
			&generatedAt,
		); err != nil {
			return nil, fmt.Errorf("storage.GetRecentScenarios: scan row: %w", err)
		}

		sc.Archetype = domain.Archetype(archetype)
		sc.Financials.LoanType = domain.LoanType(loanType)
		sc.Seller.Flexibility = domain.Flexibility(flexibility)
		sc.GeneratedAt, _ = time.Parse(time.RFC3339, generatedAt)
		out = append(out, sc)
	}
	return out, rows.Err()
}

// SaveDealSnapshot persiste la estructura agregada en el momento del cierre.
func (s *SQLiteStorage) SaveDealSnapshot(ctx context.Context, sessionID string, techniques []domain.Technique, total domain.TotalStructure) error {
	names := make([]string, len(techniques))
	for i, t := range techniques {
		names[i] = string(t)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO deal_snapshots
			(session_id, techniques, purchase_price, total_down_payment,
			 buyer_monthly, seller_monthly, user_monthly_profit, closed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		sessionID,
		strings.Join(names, ","),
		total.PurchasePrice,
		total.TotalDownPayment,
		total.BuyerMonthlyPayment,
		total.SellerMonthlyIncome,
		total.UserMonthlyProfit,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage.SaveDealSnapshot: insert %s: %w", sessionID, err)
	}
	return nil
}

// SaveSimulationMonth hace upsert del estado de un mes simulado. El ledger
// puede regenerarse al avanzar, así que el mismo mes se reescribe sin duplicar.
func (s *SQLiteStorage) SaveSimulationMonth(ctx context.Context, sessionID string, month int, prop domain.PostClosingProperty, status domain.BuyerStatus) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO simulation_months
			(session_id, month, current_value, loan_balance, monthly_payment,
			 buyer_status, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, month) DO UPDATE SET
			current_value   = excluded.current_value,
			loan_balance    = excluded.loan_balance,
			monthly_payment = excluded.monthly_payment,
			buyer_status    = excluded.buyer_status,
			recorded_at     = excluded.recorded_at
	`,
		sessionID,
		month,
		prop.CurrentValue,
		prop.LoanBalance,
		prop.MonthlyPayment,
		string(status),
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage.SaveSimulationMonth: upsert %s/%d: %w", sessionID, month, err)
	}
	return nil
}

// GetSimulationMonths devuelve los meses simulados de una sesión en orden.
func (s *SQLiteStorage) GetSimulationMonths(ctx context.Context, sessionID string) ([]domain.PostClosingProperty, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT month, current_value, loan_balance, monthly_payment
		FROM simulation_months
		WHERE session_id = ?
		ORDER BY month ASC
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("storage.GetSimulationMonths: query: %w", err)
	}
	defer rows.Close()

	var out []domain.PostClosingProperty
	for rows.Next() {
		var p domain.PostClosingProperty
		if err := rows.Scan(&p.MonthsOwned, &p.CurrentValue, &p.LoanBalance, &p.MonthlyPayment); err != nil {
			return nil, fmt.Errorf("storage.GetSimulationMonths: scan row: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// pruneOld elimina datos antiguos para mantener la DB ligera.
func (s *SQLiteStorage) pruneOld(ctx context.Context) {
	cutoffScenarios := time.Now().UTC().Add(-retentionScenarios)
	cutoffMonths := time.Now().UTC().Add(-retentionMonths)
	s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE generated_at < ?`, cutoffScenarios)
	s.db.ExecContext(ctx, `DELETE FROM simulation_months WHERE recorded_at < ?`, cutoffMonths)
	s.db.ExecContext(ctx, `
		DELETE FROM deal_snapshots
		WHERE closed_at < ? AND session_id NOT IN (SELECT session_id FROM simulation_months)
	`, cutoffMonths)
}
