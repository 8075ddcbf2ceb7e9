package config

import (
	"fmt"
	"sort"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Comparison != nil {
		if err := validateComparison(cfg.Comparison); err != nil {
			return err
		}
	}
	if err := validateWeights(cfg.Weights); err != nil {
		return err
	}
	if cfg.Log != nil {
		if err := validateLog(cfg.Log.Level, cfg.Log.Format); err != nil {
			return err
		}
	}
	return nil
}

func validateComparison(c *ComparisonConfig) error {
	switch c.ValueComparator {
	case "", compare.ComparatorNative, compare.ComparatorStrict, compare.ComparatorStringified, compare.ComparatorTolerance:
	default:
		return &ValidationError{
			Field:   "comparison.value_comparator",
			Message: `must be "native", "strict", "stringified", or "tolerance"`,
		}
	}

	switch c.ToleranceMode {
	case "", compare.ToleranceRelative, compare.ToleranceAbsolute, compare.ToleranceULP:
	default:
		return &ValidationError{
			Field:   "comparison.tolerance_mode",
			Message: `must be "relative", "absolute", or "ulp"`,
		}
	}

	if c.FloatTolerance < 0 {
		return &ValidationError{Field: "comparison.float_tolerance", Message: "must not be negative"}
	}
	if c.MaxDepth < 0 {
		return &ValidationError{Field: "comparison.max_depth", Message: "must not be negative"}
	}
	return nil
}

func validateWeights(weights map[string]int) error {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if weights[k] < 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("weights.%s", k),
				Message: "must not be negative",
			}
		}
	}
	return nil
}

func validateLog(level, format string) error {
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "log.level", Message: `must be "debug", "info", "warn", or "error"`}
	}
	switch format {
	case "", "console", "json":
	default:
		return &ValidationError{Field: "log.format", Message: `must be "console" or "json"`}
	}
	return nil
}
