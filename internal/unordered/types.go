package unordered

import (
	"fmt"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

// MaxCardinality is the largest number of values or expected items accepted
// by Compare.
const MaxCardinality = 16

// Expected is one expected structure together with its key filters.
type Expected struct {
	Value      any
	IgnoreKeys compare.KeySet
	OnlyKeys   compare.KeySet
}

// MatchLevel classifies one pairing of the final assignment.
type MatchLevel int

const (
	// LevelMatch means the pair compared equal.
	LevelMatch MatchLevel = iota
	// LevelMismatch means both sides were real and differed.
	LevelMismatch
	// LevelLhsNone means the value had no expected counterpart.
	LevelLhsNone
	// LevelRhsNone means the expected item had no value counterpart.
	LevelRhsNone
)

func (l MatchLevel) String() string {
	switch l {
	case LevelMatch:
		return "match"
	case LevelMismatch:
		return "mismatch"
	case LevelLhsNone:
		return "lhs none"
	case LevelRhsNone:
		return "rhs none"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// MarshalText encodes the level as its name.
func (l MatchLevel) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Record is the outcome for one value after assignment.
type Record struct {
	Description string
	Comparison  *compare.Node
	Passed      bool
	// ValueIndex is the index of the value (row); it may refer to padding.
	ValueIndex int
	// ExpectedIndex is the index of the expected item matched to the value;
	// it may refer to padding.
	ExpectedIndex int
	// Cost is the score the optimizer used for this pairing.
	Cost int
}

// Level is the classification of one record.
type Level struct {
	Index int        `json:"index"`
	Level MatchLevel `json:"level"`
}

// MatchAllResult is the aggregate verdict of an unordered comparison.
type MatchAllResult struct {
	Passed bool
	Levels []Level
	// Perm maps value i to expected Perm[i].
	Perm []int
	// Cost is the total cost of the chosen assignment.
	Cost int
}
