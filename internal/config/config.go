package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

// Load reads and parses a settings file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, _, err := LoadWithWarnings(path, data)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithDefaults reads a settings file and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

// LoadAndValidate reads a settings file, applies defaults, validates, and returns warnings.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, warnings, err := LoadWithWarnings(path, data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}
	return cfg, warnings, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// ToJSON normalizes settings data to JSON. YAML input is decoded and
// re-encoded so both formats share one parser and one unknown-field check.
func ToJSON(path string, data []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		out, err := json.Marshal(NormalizeYAML(doc))
		if err != nil {
			return nil, fmt.Errorf("YAML document is not representable as JSON: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// Comparator resolves the configured value comparator.
func (c *ComparisonConfig) Comparator() (compare.ValueComparator, error) {
	return compare.LookupComparator(c.ValueComparator, c.ToleranceMode, c.FloatTolerance, c.NaNEqualsNaN)
}

// NormalizeYAML rewrites mappings with non-string keys (e.g. integer tags)
// into string-keyed maps so the document can be encoded as JSON.
func NormalizeYAML(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		for k, e := range x {
			x[k] = NormalizeYAML(e)
		}
		return x
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = NormalizeYAML(e)
		}
		return out
	case []interface{}:
		for i, e := range x {
			x[i] = NormalizeYAML(e)
		}
		return x
	default:
		return v
	}
}
