// Package cases loads case files and runs them through the comparison engine.
package cases

import (
	"time"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
	"github.com/AndreyAkinshin/dictmatch/internal/score"
	"github.com/AndreyAkinshin/dictmatch/internal/unordered"
)

// Kind selects the assertion a case performs.
type Kind string

const (
	KindMatch    Kind = "match"     // Expected document vs actual document
	KindMatchAll Kind = "match_all" // Expected items vs actual items, order-insensitive
)

// Case is a single named comparison loaded from a case file.
type Case struct {
	Name string // Case name
	File string // Path of the case file it was loaded from
	Kind Kind

	// Expected and Actual are the documents of a match case. For match_all,
	// Actual holds the items and Items the per-item expectations.
	Expected any
	Actual   any
	Items    []unordered.Expected

	IgnoreKeys      compare.KeySet
	OnlyKeys        compare.KeySet
	Weights         score.Weights
	ReportAll       bool
	ValueComparator string // Overrides the configured comparator when set
}

// Result is the outcome of running one case.
type Result struct {
	Case     *Case
	Passed   bool
	Score    int                       // match: weighted mismatch score; match_all: optimal total cost
	Rows     []compare.Row             // match: flattened comparison tree
	Records  []unordered.Record        // match_all: one record per paired item
	MatchAll *unordered.MatchAllResult // match_all: per-item levels
	Err      error                     // Set when the case could not be evaluated
	Duration time.Duration
}

// Summary counts results by outcome.
type Summary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Errored++
		case r.Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// OK reports whether every case passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}
