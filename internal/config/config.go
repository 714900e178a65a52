// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aerolens/flighteval/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Scoring   ScoringConfig   `yaml:"scoring" mapstructure:"scoring"`
	Dataset   DatasetConfig   `yaml:"dataset" mapstructure:"dataset"`
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Runner    RunnerConfig    `yaml:"runner" mapstructure:"runner"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ScoringConfig is the full comparison and scoring policy: per-field weights,
// duration tolerance tiers, partial-credit grades, review-flag thresholds,
// and the aircraft family table. Policy lives here so threshold changes
// never touch control flow.
type ScoringConfig struct {
	// F1 weights for the overall score. Query-supplied fields carry less
	// weight than fields the provider had to discover.
	QueryFieldWeight      float64 `yaml:"query_field_weight" mapstructure:"query_field_weight"`
	DiscoveredFieldWeight float64 `yaml:"discovered_field_weight" mapstructure:"discovered_field_weight"`

	// Duration tolerance tiers, in minutes of absolute difference.
	// Inclusive bounds: a diff of exactly FullCredit is full credit,
	// exactly PartialCredit is partial credit.
	DurationFullCreditMins    int     `yaml:"duration_full_credit_mins" mapstructure:"duration_full_credit_mins"`
	DurationPartialCreditMins int     `yaml:"duration_partial_credit_mins" mapstructure:"duration_partial_credit_mins"`
	DurationPartialGrade      float64 `yaml:"duration_partial_grade" mapstructure:"duration_partial_grade"`

	// Grade for a family-level (non-exact) aircraft match.
	AircraftFamilyGrade float64 `yaml:"aircraft_family_grade" mapstructure:"aircraft_family_grade"`

	// Minimum count of absent extracted fields that flags a case low_quality.
	LowQualityMissingFields int `yaml:"low_quality_missing_fields" mapstructure:"low_quality_missing_fields"`

	// AircraftFamilies maps a family name to its canonical member names.
	AircraftFamilies map[string][]string `yaml:"aircraft_families" mapstructure:"aircraft_families"`
}

// FieldWeight returns the overall-score weight for a scored field.
func (c ScoringConfig) FieldWeight(f model.Field) float64 {
	switch f {
	case model.FieldAircraftName, model.FieldFlightTime:
		return c.DiscoveredFieldWeight
	default:
		return c.QueryFieldWeight
	}
}

// DatasetConfig locates the ground-truth dataset.
type DatasetConfig struct {
	Path   string `yaml:"path" mapstructure:"path"`
	Format string `yaml:"format" mapstructure:"format"` // yaml or xlsx
}

// AnthropicConfig holds Anthropic API settings for the extraction provider.
type AnthropicConfig struct {
	Key       string  `yaml:"key" mapstructure:"key"`
	Model     string  `yaml:"model" mapstructure:"model"`
	MaxTokens int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	RateRPS   float64 `yaml:"rate_rps" mapstructure:"rate_rps"`
}

// RunnerConfig configures batch evaluation.
type RunnerConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// StoreConfig configures the run store backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"` // sqlite or postgres
	Path        string `yaml:"path" mapstructure:"path"`     // sqlite file
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ServerConfig configures the results HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("FLIGHTEVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("scoring.query_field_weight", 0.5)
	v.SetDefault("scoring.discovered_field_weight", 1.5)
	v.SetDefault("scoring.duration_full_credit_mins", 15)
	v.SetDefault("scoring.duration_partial_credit_mins", 30)
	v.SetDefault("scoring.duration_partial_grade", 0.7)
	v.SetDefault("scoring.aircraft_family_grade", 0.8)
	v.SetDefault("scoring.low_quality_missing_fields", 3)
	v.SetDefault("scoring.aircraft_families", model.DefaultAircraftFamilies())
	v.SetDefault("dataset.path", "testdata/groundtruth.yaml")
	v.SetDefault("dataset.format", "yaml")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.rate_rps", 1.0)
	v.SetDefault("runner.concurrency", 4)
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.path", "flighteval.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
