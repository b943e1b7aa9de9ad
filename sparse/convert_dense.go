// SPDX-License-Identifier: MIT

// Package sparse - conversions out of Dense.
//
// Dense sources are walked in logical row-major order regardless of their
// storage orientation, so row-major and column-major instances of the same
// matrix produce byte-identical sparse results.

package sparse

const (
	opDenseToCOO = "DenseToCOO"
	opDenseToCSR = "DenseToCSR"
)

// DenseToCOO extracts the nonzero cells of a dense array as coordinate
// triplets. A counting pass sizes the destination; a second identical pass
// emits (row, col, value) for every cell whose value is exactly nonzero.
// Zero means the value type's additive identity; no epsilon tolerance.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows*cols).
func DenseToCOO[I Index, V Value](dst *COO[I, V], src *Dense[V]) error {
	if dst == nil || src == nil {
		return convErrorf(opDenseToCOO, ErrNilMatrix)
	}

	if err := dst.Resize(src.rows, src.cols, countNonzero(src)); err != nil {
		return convErrorf(opDenseToCOO, err)
	}

	nnz := 0
	var i, j int
	var v V
	for i = 0; i < src.rows; i++ {
		for j = 0; j < src.cols; j++ {
			if v = src.data[src.offset(i, j)]; v != 0 {
				dst.RowIndices[nnz] = I(i)
				dst.ColIndices[nnz] = I(j)
				dst.Values[nnz] = v
				nnz++
			}
		}
	}

	return nil
}

// DenseToCSR extracts the nonzero cells of a dense array as compressed
// rows, with the same exact-zero pruning as DenseToCOO. Row-local column
// order is ascending by construction of the scan.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows*cols).
func DenseToCSR[I Index, V Value](dst *CSR[I, V], src *Dense[V]) error {
	if dst == nil || src == nil {
		return convErrorf(opDenseToCSR, ErrNilMatrix)
	}

	if err := dst.Resize(src.rows, src.cols, countNonzero(src)); err != nil {
		return convErrorf(opDenseToCSR, err)
	}

	numEntries := 0
	var i, j int
	var v V
	for i = 0; i < src.rows; i++ {
		dst.RowOffsets[i] = I(numEntries)

		for j = 0; j < src.cols; j++ {
			if v = src.data[src.offset(i, j)]; v != 0 {
				dst.ColIndices[numEntries] = I(j)
				dst.Values[numEntries] = v
				numEntries++
			}
		}
	}

	dst.RowOffsets[src.rows] = I(numEntries)

	return nil
}

// countNonzero reports the number of cells with a value != 0.
// Shared sizing pass for the dense pruning kernels. Complexity: O(rows*cols).
func countNonzero[V Value](src *Dense[V]) int {
	nnz := 0
	for _, v := range src.data {
		if v != 0 {
			nnz++
		}
	}

	return nnz
}
