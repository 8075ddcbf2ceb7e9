package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dictmatch.json", `{
		"comparison": {"value_comparator": "strict", "report_all": true},
		"weights": {"35": 500}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.Comparison.ValueComparator)
	assert.True(t, cfg.Comparison.ReportAll)
	assert.Equal(t, 500, cfg.Weights["35"])
	assert.Nil(t, cfg.Log, "Load does not apply defaults")
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dictmatch.yaml", `
comparison:
  value_comparator: tolerance
  tolerance_mode: absolute
  float_tolerance: 0.01
weights:
  price: 900
log:
  level: debug
`)

	cfg, err := LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, "tolerance", cfg.Comparison.ValueComparator)
	assert.Equal(t, "absolute", cfg.Comparison.ToleranceMode)
	assert.InDelta(t, 0.01, cfg.Comparison.FloatTolerance, 1e-12)
	assert.Equal(t, 900, cfg.Weights["price"])
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)

	cmp, err := cfg.Comparison.Comparator()
	require.NoError(t, err)
	assert.True(t, cmp(1.0, 1.005))
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = Load(writeFile(t, "bad.json", `{`))
	assert.ErrorContains(t, err, "failed to parse config file")

	_, err = Load(writeFile(t, "bad.yaml", "comparison: [unclosed"))
	assert.ErrorContains(t, err, "invalid YAML")
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, compare.ComparatorNative, cfg.Comparison.ValueComparator)
	assert.Equal(t, DefaultFloatTolerance, cfg.Comparison.FloatTolerance)
	assert.Equal(t, DefaultToleranceMode, cfg.Comparison.ToleranceMode)
	assert.Equal(t, DefaultMaxDepth, cfg.Comparison.MaxDepth)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	require.NoError(t, Validate(cfg))
}

func TestLoadAndValidate(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "dictmatch.json", `{"comparison": {"value_comparator": "fuzzy"}, "extra": 1}`)
	_, warnings, err := LoadAndValidate(path)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "comparison.value_comparator", verr.Field)
	assert.Equal(t, []string{`unknown field "extra" at root level (ignored)`}, warnings)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"valid empty", Config{}, ""},
		{"bad tolerance mode", Config{Comparison: &ComparisonConfig{ToleranceMode: "percent"}}, "comparison.tolerance_mode"},
		{"negative tolerance", Config{Comparison: &ComparisonConfig{FloatTolerance: -1}}, "comparison.float_tolerance"},
		{"negative depth", Config{Comparison: &ComparisonConfig{MaxDepth: -1}}, "comparison.max_depth"},
		{"negative weight", Config{Weights: map[string]int{"a": 1, "b": -1}}, "weights.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(&tt.cfg)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}
