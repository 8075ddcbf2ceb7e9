package assign

import "errors"

// MaxDimension is the largest matrix the optimizer accepts. The search is
// exponential in the dimension, so callers must batch larger inputs.
const MaxDimension = 16

var (
	// ErrEmptyMatrix is returned when the matrix has no rows.
	ErrEmptyMatrix = errors.New("assign: empty matrix")
	// ErrNotSquare is returned when a row length differs from the row count.
	ErrNotSquare = errors.New("assign: matrix is not square")
	// ErrNegativeCost is returned when a cell is negative.
	ErrNegativeCost = errors.New("assign: negative cost")
	// ErrTooLarge is returned when the dimension exceeds MaxDimension.
	ErrTooLarge = errors.New("assign: matrix dimension exceeds limit")
)

// Result is the outcome of BestAssignment.
type Result struct {
	// Perm maps each row i to its column Perm[i].
	Perm []int
	// Cost is the sum of cost[i][Perm[i]].
	Cost int
}
