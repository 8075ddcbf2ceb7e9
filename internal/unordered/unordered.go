// Package unordered pairs candidate values with expected structures when
// their order is not significant.
//
// Every value is compared with every expected item, each comparison is scored
// (see package score), and the pairing with the lowest total score is chosen
// (see package assign). Shorter inputs are padded with Absent so surplus values
// and unmatched expectations are reported instead of silently dropped.
package unordered

import (
	"fmt"

	"github.com/AndreyAkinshin/dictmatch/internal/assign"
	"github.com/AndreyAkinshin/dictmatch/internal/compare"
	"github.com/AndreyAkinshin/dictmatch/internal/errors"
	"github.com/AndreyAkinshin/dictmatch/internal/score"
)

// Matcher holds the policy of an unordered comparison.
type Matcher struct {
	// Weights adjusts the importance of individual keys when scoring.
	Weights score.Weights
	// Values compares Value-category operands. Nil means native equality.
	Values compare.ValueComparator
	// ReportAll keeps ignored keys in the comparison trees.
	ReportAll bool
	// MaxDepth bounds comparison recursion. Zero means unlimited.
	MaxDepth int
}

// Compare pairs values with expected using native equality.
func Compare(values []any, expected []Expected, weights score.Weights) ([]Record, MatchAllResult, error) {
	return Matcher{Weights: weights}.Compare(values, expected)
}

// Compare pairs values with expected and returns one record per padded row
// plus the aggregate result. It fails only when either input has more than
// MaxCardinality items.
func (m Matcher) Compare(values []any, expected []Expected) ([]Record, MatchAllResult, error) {
	if len(values) > MaxCardinality || len(expected) > MaxCardinality {
		return nil, MatchAllResult{}, errors.Cardinality(len(values), len(expected), MaxCardinality)
	}

	numValues, numExpected := len(values), len(expected)
	n := numValues
	if numExpected > n {
		n = numExpected
	}
	if n == 0 {
		return nil, MatchAllResult{Passed: true}, nil
	}

	paddedValues := make([]any, n)
	copy(paddedValues, values)
	for i := numValues; i < n; i++ {
		paddedValues[i] = compare.Absent
	}
	paddedExpected := make([]Expected, n)
	copy(paddedExpected, expected)
	for j := numExpected; j < n; j++ {
		paddedExpected[j] = Expected{Value: compare.Absent}
	}

	trees := make([][]*compare.Node, n)
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		trees[i] = make([]*compare.Node, n)
		rows[i] = make([]int, n)
		for j := 0; j < n; j++ {
			exp := paddedExpected[j]
			cmp := compare.Comparer{
				Filter: compare.Filter{
					IgnoreKeys: exp.IgnoreKeys,
					OnlyKeys:   exp.OnlyKeys,
					ReportAll:  m.ReportAll,
				},
				Values:   m.Values,
				MaxDepth: m.MaxDepth,
			}
			tree := cmp.Compare(nil, exp.Value, paddedValues[i])
			trees[i][j] = tree
			rows[i][j] = score.Score(tree, m.Weights)
		}
	}

	matrix, err := assign.NewCostMatrix(rows)
	if err != nil {
		// Dimensions and costs are guaranteed valid above.
		panic(fmt.Sprintf("unordered: invalid cost matrix: %v", err))
	}
	best := assign.BestAssignment(matrix)

	records := make([]Record, n)
	result := MatchAllResult{Passed: true, Levels: make([]Level, n), Perm: best.Perm, Cost: best.Cost}
	for i, j := range best.Perm {
		tree := trees[i][j]
		rec := Record{
			Description:   describe(i, j, numValues, numExpected),
			Comparison:    tree,
			Passed:        tree.Match == compare.Pass,
			ValueIndex:    i,
			ExpectedIndex: j,
			Cost:          matrix.At(i, j),
		}
		records[i] = rec
		result.Passed = result.Passed && rec.Passed
		result.Levels[i] = Level{Index: i, Level: classify(rec.Passed, i, j, numValues, numExpected)}
	}
	return records, result, nil
}

func describe(i, j, numValues, numExpected int) string {
	switch {
	case i >= numValues:
		return fmt.Sprintf("expected[%d] vs Absent", j)
	case j >= numExpected:
		return fmt.Sprintf("Absent vs values[%d]", i)
	default:
		return fmt.Sprintf("expected[%d] vs values[%d]", j, i)
	}
}

func classify(passed bool, i, j, numValues, numExpected int) MatchLevel {
	switch {
	case passed:
		return LevelMatch
	case j >= numExpected:
		return LevelLhsNone
	case i >= numValues:
		return LevelRhsNone
	default:
		return LevelMismatch
	}
}
