// Package config provides loading and validation of dictmatch settings files.
package config

import "github.com/AndreyAkinshin/dictmatch/internal/logger"

// Config represents a complete settings file.
type Config struct {
	Comparison *ComparisonConfig `json:"comparison,omitempty"`
	Weights    map[string]int    `json:"weights,omitempty"`
	Log        *logger.Config    `json:"log,omitempty"`
}

// ComparisonConfig defines how values are compared.
type ComparisonConfig struct {
	ValueComparator string  `json:"value_comparator,omitempty"` // "native", "strict", "stringified", or "tolerance"
	FloatTolerance  float64 `json:"float_tolerance,omitempty"`  // Used by the "tolerance" comparator
	ToleranceMode   string  `json:"tolerance_mode,omitempty"`   // "relative", "absolute", or "ulp"
	NaNEqualsNaN    bool    `json:"nan_equals_nan,omitempty"`   // Whether NaN == NaN under "tolerance"
	ReportAll       bool    `json:"report_all,omitempty"`       // Keep ignored keys in results
	MaxDepth        int     `json:"max_depth,omitempty"`        // Recursion limit; 0 uses the default
}
