package assign

import "fmt"

// CostMatrix is an immutable square matrix of non-negative costs.
type CostMatrix struct {
	n     int
	cells []int // row-major
}

// NewCostMatrix validates rows and copies them into a CostMatrix.
func NewCostMatrix(rows [][]int) (*CostMatrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	if n > MaxDimension {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxDimension)
	}
	cells := make([]int, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d length %d, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: cost[%d][%d]=%d", ErrNegativeCost, i, j, c)
			}
		}
		cells = append(cells, row...)
	}
	return &CostMatrix{n: n, cells: cells}, nil
}

// Dim returns the number of rows (and columns).
func (m *CostMatrix) Dim() int { return m.n }

// At returns cost[i][j].
func (m *CostMatrix) At(i, j int) int { return m.cells[i*m.n+j] }

// Rows returns a copy of the matrix as nested slices.
func (m *CostMatrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := range out {
		out[i] = make([]int, m.n)
		copy(out[i], m.cells[i*m.n:(i+1)*m.n])
	}
	return out
}
