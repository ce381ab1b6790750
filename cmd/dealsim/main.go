package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/alejandrodnm/dealsim/config"
	"github.com/alejandrodnm/dealsim/internal/adapters/assets"
	"github.com/alejandrodnm/dealsim/internal/adapters/notify"
	"github.com/alejandrodnm/dealsim/internal/adapters/storage"
	"github.com/alejandrodnm/dealsim/internal/application/deal"
	"github.com/alejandrodnm/dealsim/internal/application/projector"
	"github.com/alejandrodnm/dealsim/internal/application/session"
	"github.com/alejandrodnm/dealsim/internal/domain"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	archetype := flag.String("archetype", "random", "scenario archetype: pre-foreclosure|relocation|stuck-listing|low-equity|high-equity|random")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	months := flag.Int("months", 12, "months to fast-forward after closing")
	table := flag.Bool("table", true, "print full tables (false: compact one-liners)")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	noStore := flag.Bool("no-store", false, "skip SQLite persistence")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		// Sin archivo de config el simulador sigue funcionando con defaults.
		slog.Warn("config not loaded, using defaults", "err", err, "path", *configPath)
		cfg = config.Default()
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	slog.Info("dealsim starting",
		"config", *configPath,
		"archetype", *archetype,
		"seed", *seed,
		"months", *months,
	)

	var store *storage.SQLiteStorage
	if !*noStore {
		store, err = storage.NewSQLiteStorage(cfg.Storage.DSN)
		if err != nil {
			slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
			os.Exit(1)
		}
		defer store.Close()
	}

	presenter := notify.NewConsole(*table)

	defaults := session.Defaults{
		AppreciationRatePct: cfg.Analysis.AppreciationRatePct,
		TimeHorizonYears:    cfg.Analysis.TimeHorizonYears,
		InterestRatePct:     cfg.Analysis.InterestRatePct,
		ProjectorConfig: projector.Config{
			UnderlyingRatePct:  cfg.Simulator.UnderlyingRatePct,
			UnderlyingPayment:  cfg.Simulator.UnderlyingPayment,
			DefaultProbability: cfg.Simulator.DefaultProbability,
			AppreciationMinPct: cfg.Simulator.AppreciationMinPct,
			AppreciationMaxPct: cfg.Simulator.AppreciationMaxPct,
			PenaltyPerDayLate:  cfg.Simulator.PenaltyPerDayLate,
		},
	}

	var sess *session.Session
	if store != nil {
		sess = session.New(domain.NewRand(*seed), store, defaults)
	} else {
		sess = session.New(domain.NewRand(*seed), nil, defaults)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, sess, store, presenter, domain.Archetype(*archetype), *months); err != nil {
		slog.Error("dealsim exited with error", "err", err)
		os.Exit(1)
	}

	slog.Info("dealsim stopped cleanly")
}

// run drives one full practice session: scenario, deal, analysis, close
// and a paced fast-forward through the post-closing months.
func run(ctx context.Context, cfg *config.Config, sess *session.Session, store *storage.SQLiteStorage, presenter *notify.Console, archetype domain.Archetype, months int) error {
	sc, err := sess.GenerateScenario(ctx, archetype)
	if err != nil {
		return err
	}
	if err := presenter.ShowScenario(ctx, sc); err != nil {
		return err
	}
	if err := playConversation(ctx, sess, presenter); err != nil {
		return err
	}

	if err := structureDeal(sess.Deal(), sc); err != nil {
		return err
	}
	if err := presenter.ShowDeal(ctx, sess.Deal().Enabled(), sess.Deal().Total(), sess.Deal().Documents()); err != nil {
		return err
	}

	data, err := sess.FinancialData()
	if err != nil {
		return err
	}
	analysis := session.Analyze(data)
	if err := presenter.ShowAnalysis(ctx, analysis.Metrics, analysis.DISREET, analysis.Debt); err != nil {
		return err
	}

	proj, err := sess.Close(ctx, time.Now())
	if err != nil {
		return err
	}

	// Fast-forward: un mes simulado por tick, al ritmo configurado.
	limiter := rate.NewLimiter(rate.Limit(cfg.Simulator.MonthsPerSecond), 1)
	for m := 0; m < months; m++ {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
		proj.AdvanceMonth()

		if store != nil {
			prop := proj.Property()
			if err := store.SaveSimulationMonth(ctx, sess.ID, prop.MonthsOwned, prop, proj.Status()); err != nil {
				slog.Warn("failed to persist month", "err", err, "month", prop.MonthsOwned)
			}
		}
	}

	if err := presenter.ShowLedger(ctx, proj.Property(), proj.Status(), proj.Payments()); err != nil {
		return err
	}
	if err := presenter.ShowOffers(ctx, proj.RefinancingOffers(), proj.SaleOptions()); err != nil {
		return err
	}

	ret := proj.TotalReturn()
	slog.Info("position summary",
		"invested", ret.InitialInvestment,
		"cash_flow", ret.TotalCashFlow,
		"equity", ret.CurrentEquity,
		"total_return", ret.TotalReturn,
		"monthly_roi_pct", ret.MonthlyROI,
	)
	return nil
}

// playConversation walks the seller dialogue front to back, asking every
// topic as it unlocks. The demo run plays the whole tree; an interactive
// frontend would let the user pick from Available instead.
func playConversation(ctx context.Context, sess *session.Session, presenter *notify.Console) error {
	dlg := sess.Dialogue()
	for !dlg.Exhausted() {
		for _, topic := range dlg.Available() {
			resp, err := dlg.Ask(topic.ID)
			if err != nil {
				return err
			}
			if err := presenter.ShowConversation(ctx, topic.Prompt, resp); err != nil {
				return err
			}
		}
	}
	return nil
}

// structureDeal enables a sensible default structure for the scenario so
// the demo run exercises the whole pipeline. Negative-equity scenarios
// lean on the seller's tradeable assets; everything else closes subject-to
// with a wrap on top.
func structureDeal(eng *deal.Engine, sc domain.Scenario) error {
	if err := eng.Enable(domain.TechniqueSubjectTo); err != nil {
		return err
	}

	if sc.Financials.Equity < 0 && len(sc.Seller.AdditionalAssets) > 0 {
		eng.EnableAssetTrade(assets.ParseAll(sc.Seller.AdditionalAssets))
		return nil
	}

	if err := eng.Enable(domain.TechniqueWrapAround); err != nil {
		return err
	}
	if sc.Financials.Equity > 50_000 {
		if err := eng.Enable(domain.TechniqueSellerFinancing); err != nil {
			return err
		}
	}
	return nil
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
