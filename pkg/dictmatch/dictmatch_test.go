package dictmatch

import (
	"math"
	"regexp"
	"strings"
	"testing"
)

func TestEqual_Primitives(t *testing.T) {
	t.Parallel()
	opts := DefaultOptions()

	tests := []struct {
		name     string
		expected interface{}
		actual   interface{}
		pass     bool
	}{
		{"equal strings", "hello", "hello", true},
		{"different strings", "hello", "world", false},
		{"equal bools", true, true, true},
		{"different bools", true, false, false},
		{"int vs float", 42, float64(42), true},
		{"bool vs int", true, 1, false},
		{"nil both", nil, nil, true},
		{"nil vs value", nil, "value", false},
		{"absent vs absent", Absent, Absent, true},
		{"absent vs nil", Absent, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if Equal(tt.expected, tt.actual, opts) != tt.pass {
				t.Errorf("Equal() = %v, want %v", !tt.pass, tt.pass)
			}
		})
	}
}

func TestEqual_Floats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     Options
		expected float64
		actual   float64
		pass     bool
	}{
		{"native exact", DefaultOptions(), 1.0, 1.0, true},
		{"native differs", DefaultOptions(), 1.0, 1.0 + 1e-12, false},
		{"relative within", Options{ValueComparator: ComparatorTolerance, FloatTolerance: 1e-9}, 1.0, 1.0 + 1e-10, true},
		{"relative outside", Options{ValueComparator: ComparatorTolerance, FloatTolerance: 1e-9}, 1.0, 1.1, false},
		{"absolute within", Options{ValueComparator: ComparatorTolerance, FloatTolerance: 0.01, ToleranceMode: ToleranceModeAbsolute}, 100.0, 100.005, true},
		{"ulp within", Options{ValueComparator: ComparatorTolerance, FloatTolerance: 1, ToleranceMode: ToleranceModeULP}, 1.0, math.Nextafter(1.0, 2), true},
		{"nan unequal by default", Options{ValueComparator: ComparatorTolerance, FloatTolerance: 1e-9}, math.NaN(), math.NaN(), false},
		{"nan equal when enabled", Options{ValueComparator: ComparatorTolerance, FloatTolerance: 1e-9, NaNEqualsNaN: true}, math.NaN(), math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if Equal(tt.expected, tt.actual, tt.opts) != tt.pass {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.expected, tt.actual, !tt.pass, tt.pass)
			}
		})
	}
}

func TestValidateOptions(t *testing.T) {
	t.Parallel()

	if err := ValidateOptions(Options{}); err != nil {
		t.Errorf("zero Options: %v", err)
	}
	if err := ValidateOptions(Options{ValueComparator: "fuzzy"}); err == nil {
		t.Error("unknown comparator accepted")
	}
	if err := ValidateOptions(Options{ValueComparator: ComparatorTolerance, ToleranceMode: "percent"}); err == nil {
		t.Error("unknown tolerance mode accepted")
	}
	if Equal(1, 1, Options{ValueComparator: "fuzzy"}) {
		t.Error("Equal() with invalid options should not match")
	}
}

func TestCompare_Wildcards(t *testing.T) {
	t.Parallel()

	expected := map[string]interface{}{
		"id":     regexp.MustCompile(`^ord-\d+$`),
		"qty":    Pred("positive", func(v interface{}) bool { n, ok := v.(int); return ok && n > 0 }),
		"cancel": Absent,
	}

	r, err := Compare(expected, map[string]interface{}{"id": "ord-12", "qty": 5}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !r.Passed || r.Score != 0 || r.Diff() != "" {
		t.Errorf("Compare() = %+v, diff %q; want pass", r, r.Diff())
	}

	r, err = Compare(expected, map[string]interface{}{"id": "ord-12", "qty": 5, "cancel": true}, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if r.Passed {
		t.Error("unexpected key should fail an Absent expectation")
	}
}

func TestCompare_IgnoreAndOnly(t *testing.T) {
	t.Parallel()

	expected := map[string]interface{}{"id": 1, "ts": "10:00", "px": 10}
	actual := map[string]interface{}{"id": 1, "ts": "10:01", "px": 11}

	opts := DefaultOptions()
	opts.IgnoreKeys = []any{"ts", "px"}
	if !Equal(expected, actual, opts) {
		t.Error("ignored keys should not fail the comparison")
	}

	opts = DefaultOptions()
	opts.OnlyKeys = []any{"id"}
	if !Equal(expected, actual, opts) {
		t.Error("keys outside OnlyKeys should not fail the comparison")
	}

	opts.ReportAll = true
	r, _ := Compare(expected, actual, opts)
	if got := len(r.Tree.Children()); got != 3 {
		t.Errorf("ReportAll kept %d children, want 3", got)
	}
}

func TestResult_Diff(t *testing.T) {
	t.Parallel()

	expected := map[string]interface{}{"id": 1, "legs": []interface{}{map[string]interface{}{"px": 10}, map[string]interface{}{"px": 20}}}
	actual := map[string]interface{}{"id": 1, "legs": []interface{}{map[string]interface{}{"px": 10}, map[string]interface{}{"px": 21}}}

	r, err := Compare(expected, actual, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if r.Passed {
		t.Fatal("Compare() passed, want failure")
	}
	want := "$.legs[1].px: expected 20 (int), got 21 (int)"
	if got := r.Diff(); got != want {
		t.Errorf("Diff() = %q, want %q", got, want)
	}
	if r.Score != 3333 {
		t.Errorf("Score = %d, want 3333", r.Score)
	}
	if rows := r.Rows(); len(rows) != 7 {
		t.Errorf("len(Rows()) = %d, want 7", len(rows))
	}
}

func TestMatchAll(t *testing.T) {
	t.Parallel()

	values := []interface{}{
		NewMap(Pair{Key: "sym", Value: "MSFT"}, Pair{Key: "qty", Value: 100}),
		NewMap(Pair{Key: "sym", Value: "AAPL"}, Pair{Key: "qty", Value: 50}),
		NewMap(Pair{Key: "sym", Value: "TSLA"}, Pair{Key: "qty", Value: 1}),
	}
	expected := []Expected{
		{Value: map[string]interface{}{"sym": "AAPL", "qty": 50}},
		{Value: map[string]interface{}{"sym": "MSFT", "qty": 999}, IgnoreKeys: nil},
	}

	records, result, err := MatchAll(values, expected, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if result.Passed {
		t.Error("MatchAll() passed, want failure")
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	wantLevels := []MatchLevel{LevelMismatch, LevelMatch, LevelLhsNone}
	for i, l := range result.Levels {
		if l.Level != wantLevels[i] {
			t.Errorf("Levels[%d] = %v, want %v", i, l.Level, wantLevels[i])
		}
	}
	if !strings.HasPrefix(records[2].Description, "Absent vs values[2]") {
		t.Errorf("records[2].Description = %q", records[2].Description)
	}

	_, _, err = MatchAll(make([]interface{}, MaxItems+1), nil, DefaultOptions())
	if err == nil {
		t.Error("MatchAll() accepted more than MaxItems values")
	}
}
