package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del simulador.
type Config struct {
	Simulator SimulatorConfig `yaml:"simulator"`
	Analysis  AnalysisConfig  `yaml:"analysis"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
}

// SimulatorConfig controla el comportamiento de la fase post-closing.
type SimulatorConfig struct {
	UnderlyingRatePct  float64 `yaml:"underlying_rate_pct"`  // APY de la hipoteca subyacente
	UnderlyingPayment  float64 `yaml:"underlying_payment"`   // pago mensual sintético de la hipoteca
	DefaultProbability float64 `yaml:"default_probability"`  // prob. de default del comprador por replay
	AppreciationMinPct float64 `yaml:"appreciation_min_pct"` // apreciación mensual mínima (%)
	AppreciationMaxPct float64 `yaml:"appreciation_max_pct"` // apreciación mensual máxima (%)
	PenaltyPerDayLate  float64 `yaml:"penalty_per_day_late"` // multa por día de retraso
	MonthsPerSecond    float64 `yaml:"months_per_second"`    // ritmo del fast-forward en el CLI
}

// AnalysisConfig contiene los defaults del análisis financiero.
type AnalysisConfig struct {
	AppreciationRatePct float64 `yaml:"appreciation_rate_pct"` // apreciación anual de mercado
	TimeHorizonYears    int     `yaml:"time_horizon_years"`
	InterestRatePct     float64 `yaml:"interest_rate_pct"` // tasa de la hipoteca existente
}

// StorageConfig controla dónde se persisten los datos.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del .env sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Default devuelve una configuración con todos los valores por defecto,
// sin tocar disco. Útil para tests y para el modo -no-store.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("DEALSIM_DSN"); v != "" {
		cfg.Storage.DSN = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Simulator.UnderlyingRatePct <= 0 {
		cfg.Simulator.UnderlyingRatePct = 6.5
	}
	if cfg.Simulator.UnderlyingPayment <= 0 {
		cfg.Simulator.UnderlyingPayment = 2100
	}
	if cfg.Simulator.DefaultProbability <= 0 {
		cfg.Simulator.DefaultProbability = 0.15
	}
	if cfg.Simulator.AppreciationMinPct <= 0 {
		cfg.Simulator.AppreciationMinPct = 0.25
	}
	if cfg.Simulator.AppreciationMaxPct <= 0 {
		cfg.Simulator.AppreciationMaxPct = 0.45
	}
	if cfg.Simulator.PenaltyPerDayLate <= 0 {
		cfg.Simulator.PenaltyPerDayLate = 50
	}
	if cfg.Simulator.MonthsPerSecond <= 0 {
		cfg.Simulator.MonthsPerSecond = 12
	}
	if cfg.Analysis.AppreciationRatePct <= 0 {
		cfg.Analysis.AppreciationRatePct = 3.5
	}
	if cfg.Analysis.TimeHorizonYears <= 0 {
		cfg.Analysis.TimeHorizonYears = 5
	}
	if cfg.Analysis.InterestRatePct <= 0 {
		cfg.Analysis.InterestRatePct = 6.5
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "dealsim.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
