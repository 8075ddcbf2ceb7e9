// Package dictmatch compares expected structures against actual ones and
// reports the outcome field by field.
//
// Expected values may hold wildcards: a *regexp.Regexp (or any Pattern) matches
// the string form of the actual value, and a Predicate or func(any) bool is
// called with it. Use Absent to assert that a key is missing. MatchAll pairs
// lists of items regardless of their order.
package dictmatch

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
	"github.com/AndreyAkinshin/dictmatch/internal/output"
	"github.com/AndreyAkinshin/dictmatch/internal/score"
	"github.com/AndreyAkinshin/dictmatch/internal/unordered"
)

type (
	// Node is one node of a comparison tree.
	Node = compare.Node
	// Row is one line of a flattened comparison tree.
	Row = compare.Row
	// Match is the three-valued outcome of a comparison.
	Match = compare.Match
	// Map is a mapping that keeps insertion order and accepts any comparable key.
	Map = compare.Map
	// Pair is a key/value entry used to build a Map.
	Pair = compare.Pair
	// Pattern is a compiled text pattern such as *regexp.Regexp.
	Pattern = compare.Pattern
	// Predicate is a named check applied to an actual value.
	Predicate = compare.Predicate
	// Weights adjusts how much each key contributes to a mismatch score.
	Weights = score.Weights
	// Expected is one expected item of MatchAll with its own key filters.
	Expected = unordered.Expected
	// Record is the outcome of one pairing made by MatchAll.
	Record = unordered.Record
	// MatchAllResult is the aggregate outcome of MatchAll.
	MatchAllResult = unordered.MatchAllResult
	// MatchLevel classifies a pairing made by MatchAll.
	MatchLevel = unordered.MatchLevel
)

// Comparison outcomes.
const (
	Ignored = compare.Ignored
	Pass    = compare.Pass
	Fail    = compare.Fail
)

// MatchAll pairing levels.
const (
	LevelMatch    = unordered.LevelMatch
	LevelMismatch = unordered.LevelMismatch
	LevelLhsNone  = unordered.LevelLhsNone
	LevelRhsNone  = unordered.LevelRhsNone
)

// Comparator and tolerance names accepted by Options.
const (
	ComparatorNative      = compare.ComparatorNative
	ComparatorStrict      = compare.ComparatorStrict
	ComparatorStringified = compare.ComparatorStringified
	ComparatorTolerance   = compare.ComparatorTolerance

	ToleranceModeRelative = compare.ToleranceRelative
	ToleranceModeAbsolute = compare.ToleranceAbsolute
	ToleranceModeULP      = compare.ToleranceULP
)

// MaxItems is the largest number of values or expected items MatchAll accepts.
const MaxItems = unordered.MaxCardinality

// Absent stands for a missing value. In an expected mapping it asserts that
// the key is not present in the actual mapping.
var Absent = compare.Absent

// IsAbsent reports whether v is Absent.
func IsAbsent(v any) bool {
	return compare.IsAbsent(v)
}

// Pred wraps a boolean function as a named Predicate.
func Pred(name string, fn func(v any) bool) *Predicate {
	return compare.Pred(name, fn)
}

// NewMap builds an ordered Map.
func NewMap(pairs ...Pair) *Map {
	return compare.NewMap(pairs...)
}

// Options configures a comparison.
type Options struct {
	// IgnoreKeys are never compared, at any depth.
	IgnoreKeys []any
	// OnlyKeys, when non-empty, restricts comparison to these keys.
	OnlyKeys []any
	// ReportAll keeps ignored keys in the result as Ignored nodes.
	ReportAll bool

	// Weights adjusts key importance when scoring.
	Weights Weights

	// ValueComparator compares scalar values: "native" (default), "strict",
	// "stringified", or "tolerance".
	ValueComparator string
	// FloatTolerance is the threshold used by the "tolerance" comparator.
	// For "ulp" mode it is truncated to a whole number of ULPs.
	FloatTolerance float64
	// ToleranceMode is "relative" (default), "absolute", or "ulp".
	ToleranceMode string
	// NaNEqualsNaN treats NaN values as equal under "tolerance".
	NaNEqualsNaN bool

	// MaxDepth bounds recursion. Zero means unlimited.
	MaxDepth int
}

// DefaultOptions returns the default comparison options.
func DefaultOptions() Options {
	return Options{
		ValueComparator: ComparatorNative,
		FloatTolerance:  1e-9,
		ToleranceMode:   ToleranceModeRelative,
		MaxDepth:        256,
	}
}

// ValidateOptions validates that Options has valid enum values.
func ValidateOptions(opts Options) error {
	_, err := opts.values()
	return err
}

func (o Options) values() (compare.ValueComparator, error) {
	name := o.ValueComparator
	if name == "" {
		name = ComparatorNative
	}
	mode := o.ToleranceMode
	if mode == "" {
		mode = ToleranceModeRelative
	}
	return compare.LookupComparator(name, mode, o.FloatTolerance, o.NaNEqualsNaN)
}

func (o Options) filter() compare.Filter {
	f := compare.Filter{ReportAll: o.ReportAll}
	if len(o.IgnoreKeys) > 0 {
		f.IgnoreKeys = compare.NewKeySet(o.IgnoreKeys...)
	}
	if len(o.OnlyKeys) > 0 {
		f.OnlyKeys = compare.NewKeySet(o.OnlyKeys...)
	}
	return f
}

// Result is the outcome of Compare.
type Result struct {
	// Passed is true unless some compared field failed.
	Passed bool
	// Score is the weighted mismatch score: 0 for a pass, up to 10000 for a
	// mismatch, and 100000 when one side is Absent.
	Score int
	// Tree is the full comparison tree.
	Tree *Node
}

// Rows returns the flattened comparison tree.
func (r *Result) Rows() []Row {
	return compare.Flatten(r.Tree)
}

// Diff describes every failed field, one per line, e.g.
// "$.legs[1].px: expected 20 (int), got 21 (int)". It is empty for a pass.
func (r *Result) Diff() string {
	rows := r.Rows()
	paths := output.RowPaths(rows)

	var lines []string
	for i, row := range rows {
		if row.Match != Fail || row.Lhs.Kind == compare.RenderMapping || row.Lhs.Kind == compare.RenderSequence {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: expected %s, got %s",
			paths[i], output.CellText(row.Lhs), output.CellText(row.Rhs)))
	}
	return strings.Join(lines, "\n")
}

// Compare compares expected against actual.
func Compare(expected, actual any, opts Options) (*Result, error) {
	values, err := opts.values()
	if err != nil {
		return nil, err
	}
	c := compare.Comparer{Filter: opts.filter(), Values: values, MaxDepth: opts.MaxDepth}
	tree := c.Compare(nil, expected, actual)
	return &Result{
		Passed: tree.Passed(),
		Score:  score.Score(tree, opts.Weights),
		Tree:   tree,
	}, nil
}

// Equal reports whether expected matches actual under opts. Invalid options
// never match.
func Equal(expected, actual any, opts Options) bool {
	r, err := Compare(expected, actual, opts)
	return err == nil && r.Passed
}

// MatchAll pairs values with expected items regardless of order, choosing the
// pairing with the lowest total mismatch score. Key filters come from each
// Expected; IgnoreKeys and OnlyKeys in opts are not used.
func MatchAll(values []any, expected []Expected, opts Options) ([]Record, MatchAllResult, error) {
	cmp, err := opts.values()
	if err != nil {
		return nil, MatchAllResult{}, err
	}
	m := unordered.Matcher{
		Weights:   opts.Weights,
		Values:    cmp,
		ReportAll: opts.ReportAll,
		MaxDepth:  opts.MaxDepth,
	}
	return m.Compare(values, expected)
}
