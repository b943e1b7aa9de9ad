// SPDX-License-Identifier: MIT

// Package sparse_test: shared helpers for the conversion test suites.
// Helpers fail fast through require so individual tests stay focused on
// the property under test.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsix/sparse"
	"github.com/stretchr/testify/require"
)

// triple is a flattened (row, col, value) entry used for multiset
// comparisons where entry order is unspecified.
type triple struct {
	Row, Col int
	Val      float64
}

// mustDense builds a Dense matrix from row slices.
func mustDense(t *testing.T, cells [][]float64, opts ...sparse.Option) *sparse.Dense[float64] {
	t.Helper()

	rows := len(cells)
	cols := 0
	if rows > 0 {
		cols = len(cells[0])
	}
	m, err := sparse.NewDense[float64](rows, cols, opts...)
	require.NoError(t, err)

	for i, row := range cells {
		require.Len(t, row, cols) // ragged input is a test bug
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// mustCOO builds a COO matrix from explicit triplets (duplicates allowed).
func mustCOO(t *testing.T, rows, cols int, entries []triple) *sparse.COO[int, float64] {
	t.Helper()

	m, err := sparse.NewCOO[int, float64](rows, cols, len(entries))
	require.NoError(t, err)

	for n, e := range entries {
		require.NoError(t, m.SetEntry(n, e.Row, e.Col, e.Val))
	}

	return m
}

// mustCSR builds a CSR matrix by pruning a dense row-slice description.
func mustCSR(t *testing.T, cells [][]float64) *sparse.CSR[int, float64] {
	t.Helper()

	var csr sparse.CSR[int, float64]
	require.NoError(t, sparse.DenseToCSR(&csr, mustDense(t, cells)))

	return &csr
}

// triplesOf collects a matrix's logical entries through the COO pivot.
func triplesOf(t *testing.T, m sparse.Matrix[int, float64]) []triple {
	t.Helper()

	var coo sparse.COO[int, float64]
	require.NoError(t, m.ToCOO(&coo))

	out := make([]triple, 0, coo.NumEntries())
	for n := 0; n < coo.NumEntries(); n++ {
		r, c, v, err := coo.Entry(n)
		require.NoError(t, err)
		out = append(out, triple{Row: r, Col: c, Val: v})
	}

	return out
}

// denseCells reads a Dense matrix back into row slices.
func denseCells(t *testing.T, m *sparse.Dense[float64]) [][]float64 {
	t.Helper()

	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// csrOffsets reads RowOffsets as plain ints for assertion readability.
func csrOffsets(m *sparse.CSR[int, float64]) []int {
	out := make([]int, len(m.RowOffsets))
	for i, o := range m.RowOffsets {
		out[i] = o
	}

	return out
}
