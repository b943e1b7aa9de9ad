// SPDX-License-Identifier: MIT

// Package sparse_test: COO conversion kernels.
package sparse_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsix/sparse"
	"github.com/stretchr/testify/require"
)

// TestCOOToCSRBasic checks offsets, columns and values for a small matrix.
func TestCOOToCSRBasic(t *testing.T) {
	// Entries deliberately out of row order to exercise the counting sort.
	coo := mustCOO(t, 3, 4, []triple{
		{2, 3, 7}, {0, 1, 1}, {1, 0, 5}, {0, 3, 2}, {2, 0, 6},
	})

	var csr sparse.CSR[int, float64]
	require.NoError(t, sparse.COOToCSR(&csr, coo))

	require.Equal(t, 3, csr.Rows())
	require.Equal(t, 4, csr.Cols())
	require.Equal(t, 5, csr.NumEntries())

	// Offsets delimit rows of size 2, 1, 2.
	require.Equal(t, []int{0, 2, 3, 5}, csrOffsets(&csr))

	// Same-row order is unspecified; compare row contents as multisets.
	require.ElementsMatch(t, []triple{{0, 1, 1}, {0, 3, 2}}, triplesOf(t, &csr)[0:2])
	require.Equal(t, triple{1, 0, 5}, triplesOf(t, &csr)[2])
	require.ElementsMatch(t, []triple{{2, 3, 7}, {2, 0, 6}}, triplesOf(t, &csr)[3:5])
}

// TestCOOToCSROffsetsInvariant verifies the entry count invariant after the
// in-place cursor shuffle: RowOffsets must be fully restored.
func TestCOOToCSROffsetsInvariant(t *testing.T) {
	coo := mustCOO(t, 4, 4, []triple{
		{3, 0, 1}, {3, 1, 2}, {3, 2, 3}, {0, 0, 4},
	})

	var csr sparse.CSR[int, float64]
	require.NoError(t, sparse.COOToCSR(&csr, coo))

	require.Equal(t, 0, int(csr.RowOffsets[0]))                // exclusive scan base
	require.Equal(t, coo.NumEntries(), int(csr.RowOffsets[4])) // closing offset
	for i := 0; i < 4; i++ {                                   // monotone non-decreasing
		require.LessOrEqual(t, csr.RowOffsets[i], csr.RowOffsets[i+1])
	}
}

// TestDuplicateSemantics pins the documented duplicate asymmetry:
// COOToCSR keeps duplicates as separate entries, COOToDense sums them.
func TestDuplicateSemantics(t *testing.T) {
	coo := mustCOO(t, 1, 1, []triple{{0, 0, 1}, {0, 0, 2}})

	var csr sparse.CSR[int, float64]
	require.NoError(t, sparse.COOToCSR(&csr, coo))
	require.Equal(t, 2, csr.NumEntries()) // both entries retained
	require.ElementsMatch(t, []triple{{0, 0, 1}, {0, 0, 2}}, triplesOf(t, &csr))

	var dense sparse.Dense[float64]
	require.NoError(t, sparse.COOToDense(&dense, coo))
	v, err := dense.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v) // summed

	// CSR carrying duplicates also sums on the way to dense.
	var dense2 sparse.Dense[float64]
	require.NoError(t, sparse.CSRToDense(&dense2, &csr))
	v, err = dense2.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v)
}

// TestCOOToDenseOrientation checks that both dense layouts receive the
// same logical content.
func TestCOOToDenseOrientation(t *testing.T) {
	coo := mustCOO(t, 2, 3, []triple{{0, 2, 4}, {1, 0, -1}})

	rm, err := sparse.NewDense[float64](0, 0)
	require.NoError(t, err)
	cm, err := sparse.NewDense[float64](0, 0, sparse.WithColumnMajor())
	require.NoError(t, err)

	require.NoError(t, sparse.COOToDense(rm, coo))
	require.NoError(t, sparse.COOToDense(cm, coo))

	require.Equal(t, denseCells(t, rm), denseCells(t, cm))
	require.Equal(t, [][]float64{{0, 0, 4}, {-1, 0, 0}}, denseCells(t, rm))
}

// TestCOOToCSRNil ensures nil handles are rejected with the sentinel.
func TestCOOToCSRNil(t *testing.T) {
	var csr sparse.CSR[int, float64]
	require.ErrorIs(t, sparse.COOToCSR[int, float64](&csr, nil), sparse.ErrNilMatrix)
	require.ErrorIs(t, sparse.COOToCSR(nil, mustCOO(t, 1, 1, nil)), sparse.ErrNilMatrix)
}

// TestIndexWidthOverflow ensures a too-narrow index type fails loudly
// before any storage is touched.
func TestIndexWidthOverflow(t *testing.T) {
	// rows+cols exceeds int32; entry count is zero so no allocation is at stake.
	_, err := sparse.NewCOO[int32, float64](math.MaxInt32, 1, 0)
	require.ErrorIs(t, err, sparse.ErrCapacityOverflow)

	// Comfortably representable shapes pass.
	_, err = sparse.NewCOO[int32, float64](1<<20, 1<<20, 0)
	require.NoError(t, err)
}

// TestEmptyMatrixRoundTrip checks the zero-entry and zero-dimension edges.
func TestEmptyMatrixRoundTrip(t *testing.T) {
	coo := mustCOO(t, 3, 3, nil) // no entries

	var csr sparse.CSR[int, float64]
	require.NoError(t, sparse.COOToCSR(&csr, coo))
	require.Equal(t, []int{0, 0, 0, 0}, csrOffsets(&csr))

	empty := mustCOO(t, 0, 0, nil) // no shape at all
	var csr2 sparse.CSR[int, float64]
	require.NoError(t, sparse.COOToCSR(&csr2, empty))
	require.Equal(t, 0, csr2.NumEntries())
}
