package config

import (
	"github.com/AndreyAkinshin/dictmatch/internal/compare"
	"github.com/AndreyAkinshin/dictmatch/internal/logger"
)

// Default configuration values.
const (
	DefaultValueComparator = compare.ComparatorNative
	DefaultFloatTolerance  = 1e-9
	DefaultToleranceMode   = compare.ToleranceRelative
	DefaultMaxDepth        = 256
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "console"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyComparisonDefaults(cfg)
	applyLogDefaults(cfg)
}

func applyComparisonDefaults(cfg *Config) {
	if cfg.Comparison == nil {
		cfg.Comparison = &ComparisonConfig{}
	}
	if cfg.Comparison.ValueComparator == "" {
		cfg.Comparison.ValueComparator = DefaultValueComparator
	}
	if cfg.Comparison.FloatTolerance == 0 {
		cfg.Comparison.FloatTolerance = DefaultFloatTolerance
	}
	if cfg.Comparison.ToleranceMode == "" {
		cfg.Comparison.ToleranceMode = DefaultToleranceMode
	}
	if cfg.Comparison.MaxDepth == 0 {
		cfg.Comparison.MaxDepth = DefaultMaxDepth
	}
}

func applyLogDefaults(cfg *Config) {
	if cfg.Log == nil {
		cfg.Log = &logger.Config{}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}
