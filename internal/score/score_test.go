package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

func TestScore_PassIsZero(t *testing.T) {
	t.Parallel()

	n := compare.Compare(map[string]any{"a": 1}, map[string]any{"a": 1})
	assert.Equal(t, Perfect, Score(n, nil))
	assert.Equal(t, Perfect, Score(n, Weights{"a": 5000}))
	assert.Equal(t, Perfect, Score(nil, nil))
}

func TestScore_AbsentSideIsMissing(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Missing, Score(compare.Compare(compare.Absent, map[string]any{"a": 1}), nil))
	assert.Equal(t, Missing, Score(compare.Compare(map[string]any{"a": 1}, compare.Absent), nil))
}

func TestScore_WeightedPenalty(t *testing.T) {
	t.Parallel()

	expected := map[string]any{"a": 1, "b": 2, "c": 3, "d": 4}

	tests := []struct {
		name    string
		actual  map[string]any
		weights Weights
		want    int
	}{
		{"one of four", map[string]any{"a": 1, "b": 2, "c": 3, "d": 0}, nil, 2500},
		{"all wrong", map[string]any{"a": 0, "b": 0, "c": 0, "d": 0}, nil, MaxMismatch},
		{"heavy key wrong", map[string]any{"a": 0, "b": 2, "c": 3, "d": 4}, Weights{"a": 700}, 7000},
		{"heavy key right", map[string]any{"a": 1, "b": 2, "c": 3, "d": 0}, Weights{"a": 700}, 1000},
		{"rounded", map[string]any{"a": 0, "b": 2, "c": 3, "d": 4}, Weights{"b": 200, "c": 200, "d": 200}, 1429},
		{"zero weight mismatch", map[string]any{"a": 1, "b": 2, "c": 3, "d": 0}, Weights{"d": 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n := compare.Compare(expected, tt.actual)
			assert.Equal(t, tt.want, Score(n, tt.weights))
		})
	}
}

func TestScore_NestedLeavesCount(t *testing.T) {
	t.Parallel()

	n := compare.Compare(
		map[string]any{"id": 1, "legs": []any{map[string]any{"px": 10}, map[string]any{"px": 20}}},
		map[string]any{"id": 1, "legs": []any{map[string]any{"px": 10}, map[string]any{"px": 21}}},
	)
	// Leaves: id, px, px. One px failed.
	assert.Equal(t, 3333, Score(n, nil))
	// Both px leaves weigh 400: 400 / (100 + 800).
	assert.Equal(t, 4444, Score(n, Weights{"px": 400}))
}

func TestScore_IgnoredEntriesCountTowardsTotal(t *testing.T) {
	t.Parallel()

	filter := compare.Filter{IgnoreKeys: compare.NewKeySet("ts"), ReportAll: true}
	n := compare.ComparePair(nil,
		map[string]any{"id": 1, "ts": 1},
		map[string]any{"id": 2, "ts": 2},
		filter, nil)
	assert.Equal(t, 5000, Score(n, nil))
}

func TestScore_StaysWithinBounds(t *testing.T) {
	t.Parallel()

	n := compare.Compare(map[string]any{"a": 1, "b": 2}, map[string]any{"a": 2, "b": 2})
	got := Score(n, Weights{"a": -50})
	assert.GreaterOrEqual(t, got, 0)
	assert.LessOrEqual(t, got, MaxMismatch)
}

func TestWeights_NonStringKeys(t *testing.T) {
	t.Parallel()

	w := Weights{"35": 900}
	assert.Equal(t, 900, w.Weight(35))
	assert.Equal(t, 900, w.Weight("35"))
	assert.Equal(t, DefaultWeight, w.Weight(36))
	assert.Equal(t, DefaultWeight, w.Weight(nil))

	var none Weights
	assert.Equal(t, DefaultWeight, none.Weight("a"))
}

func TestScore_IntegerTaggedMessage(t *testing.T) {
	t.Parallel()

	expected := compare.NewMap(compare.Pair{Key: 35, Value: "D"}, compare.Pair{Key: 55, Value: "MSFT"})
	actual := compare.NewMap(compare.Pair{Key: 35, Value: "D"}, compare.Pair{Key: 55, Value: "AAPL"})
	n := compare.Compare(expected, actual)

	assert.Equal(t, 5000, Score(n, nil))
	assert.Equal(t, 9000, Score(n, Weights{"55": 900}))
}
