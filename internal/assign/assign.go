// Package assign finds a minimum-cost one-to-one pairing of rows to columns.
//
// BestAssignment runs a memoized depth-first search over the set of columns
// still unassigned. Row i is always the i-th row assigned, so the remaining
// column set alone identifies a subproblem and is memoized as a bitmask:
//
//	best(mask) = min over j in mask of cost[n-|mask|][j] + best(mask without j)
//
// Time complexity:  O(n · 2ⁿ) subproblems visited, O(n) work each
// Memory complexity: O(2ⁿ)
//
// Ties are broken deterministically: each row tries its columns in ascending
// (cost, column index) order and keeps the first column that reaches the
// minimum, so identical inputs always yield the same permutation.
package assign

import (
	"math/bits"
	"sort"
)

// BestAssignment returns the permutation minimizing Σ cost[i][perm[i]].
// The memo table lives only for the duration of the call.
func BestAssignment(m *CostMatrix) Result {
	n := m.n
	full := uint32(1)<<n - 1

	// Column visiting order per row: ascending cost, then ascending index.
	order := make([][]int, n)
	for i := range order {
		cols := make([]int, n)
		for j := range cols {
			cols[j] = j
		}
		sort.SliceStable(cols, func(a, b int) bool {
			return m.At(i, cols[a]) < m.At(i, cols[b])
		})
		order[i] = cols
	}

	s := &search{
		m:      m,
		order:  order,
		best:   make([]int, full+1),
		choice: make([]int8, full+1),
		done:   make([]bool, full+1),
	}
	total := s.solve(full)

	perm := make([]int, n)
	mask := full
	for i := 0; i < n; i++ {
		j := int(s.choice[mask])
		perm[i] = j
		mask &^= 1 << j
	}
	return Result{Perm: perm, Cost: total}
}

type search struct {
	m      *CostMatrix
	order  [][]int
	best   []int  // best[mask] = min cost of assigning the remaining rows to mask
	choice []int8 // choice[mask] = column taken by the current row
	done   []bool
}

func (s *search) solve(mask uint32) int {
	if mask == 0 {
		return 0
	}
	if s.done[mask] {
		return s.best[mask]
	}

	row := s.m.n - bits.OnesCount32(mask)
	bestCost, bestCol := -1, -1
	for _, j := range s.order[row] {
		bit := uint32(1) << j
		if mask&bit == 0 {
			continue
		}
		c := s.m.At(row, j)
		if bestCost >= 0 && c >= bestCost {
			// Costs are non-negative and columns are visited by ascending
			// cost, so no later column can improve on bestCost.
			break
		}
		total := c + s.solve(mask&^bit)
		if bestCost < 0 || total < bestCost {
			bestCost, bestCol = total, j
		}
	}

	s.best[mask] = bestCost
	s.choice[mask] = int8(bestCol)
	s.done[mask] = true
	return bestCost
}
