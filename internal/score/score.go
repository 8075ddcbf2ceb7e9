// Package score reduces a comparison tree to a bounded distance used as the
// cost of pairing an expected value with a candidate.
package score

import (
	"fmt"
	"math"

	"github.com/AndreyAkinshin/dictmatch/internal/compare"
)

const (
	// Perfect is the score of a passing comparison.
	Perfect = 0
	// MaxMismatch is the worst score of two present values that differ.
	MaxMismatch = 10000
	// Missing is reserved for comparisons where one whole side is absent.
	// It is larger than any mismatch so a partial match always beats no match.
	Missing = 100000
	// DefaultWeight applies to every key without an explicit weight.
	DefaultWeight = 100
)

// Weights maps the string form of a key to its weight.
type Weights map[string]int

// Weight returns the weight of key. Non-string keys are looked up by their
// fmt %v form, so the integer tag 35 and the string "35" share a weight.
func (w Weights) Weight(key any) int {
	if w != nil {
		if v, ok := w[keyString(key)]; ok {
			return v
		}
	}
	return DefaultWeight
}

func keyString(key any) string {
	switch k := key.(type) {
	case nil:
		return ""
	case string:
		return k
	default:
		return fmt.Sprint(k)
	}
}

// Score returns the distance of a comparison tree:
//   - 0 when the tree passed
//   - Missing when either top-level side is the Absent sentinel
//   - otherwise round(failed weight * 10000 / total weight) over every leaf
//
// A failing tree without weighable leaves scores 0, like a passing one.
func Score(root *compare.Node, weights Weights) int {
	if root == nil || root.Match == compare.Pass {
		return Perfect
	}
	if root.Lhs.IsAbsent() || root.Rhs.IsAbsent() {
		return Missing
	}

	var worst, penalty int
	accumulate(root, weights, &worst, &penalty)
	if worst == 0 {
		return Perfect
	}
	return int(math.Round(float64(penalty) * MaxMismatch / float64(worst)))
}

func accumulate(n *compare.Node, weights Weights, worst, penalty *int) {
	children := n.Children()
	if children == nil && isLeaf(n) {
		w := weights.Weight(n.Key)
		if w < 0 {
			w = 0
		}
		*worst += w
		if n.Match == compare.Fail {
			*penalty += w
		}
		return
	}
	for _, child := range children {
		accumulate(child, weights, worst, penalty)
	}
}

func isLeaf(n *compare.Node) bool {
	k := n.Lhs.Kind
	return k != compare.RenderSequence && k != compare.RenderMapping
}
