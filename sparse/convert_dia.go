// SPDX-License-Identifier: MIT

// Package sparse - conversions out of DIA.

package sparse

const opDIAToCSR = "DIAToCSR"

// DIAToCSR converts diagonal strips back into compressed rows.
//
// Implementation (count, then emit):
//   - Stage 1: for each diagonal with offset k, walk the valid row range
//     (rows max(0,−k) onward, columns max(0,k) onward, clipped to the
//     shape) and count values != 0; structural zeros stored in the DIA
//     padding must not become explicit CSR entries.
//   - Stage 2: re-scan row by row, emitting surviving values in ascending
//     diagonal-offset order. Per-row column order is therefore determined
//     by the diagonal enumeration (left-most offset first), not sorted by
//     column; it is deterministic.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(diagonals*rows).
func DIAToCSR[I Index, V Value](dst *CSR[I, V], src *DIA[I, V]) error {
	if dst == nil || src == nil {
		return convErrorf(opDIAToCSR, ErrNilMatrix)
	}

	// Stage 1: count surviving entries across all diagonals.
	numEntries := 0

	var n, k, iStart, jStart, base, span, m int
	for n = 0; n < src.NumDiagonals(); n++ {
		k = int(src.DiagonalOffsets[n]) // diagonal offset (col - row)

		iStart = max(0, -k)
		jStart = max(0, k)

		base = n*src.stride + iStart

		// Number of in-shape positions on this diagonal.
		span = min(src.rows-iStart, src.cols-jStart)

		for m = 0; m < span; m++ {
			if src.Values[base+m] != 0 {
				numEntries++
			}
		}
	}

	if err := dst.Resize(src.rows, src.cols, numEntries); err != nil {
		return convErrorf(opDIAToCSR, err)
	}

	// Stage 2: emit per row, diagonals in stored (ascending offset) order.
	numEntries = 0
	dst.RowOffsets[0] = 0

	var i, j int
	var value V
	for i = 0; i < src.rows; i++ {
		for n = 0; n < src.NumDiagonals(); n++ {
			j = i + int(src.DiagonalOffsets[n])

			if j >= 0 && j < src.cols {
				value = src.Values[n*src.stride+i]

				if value != 0 {
					dst.ColIndices[numEntries] = I(j)
					dst.Values[numEntries] = value
					numEntries++
				}
			}
		}

		dst.RowOffsets[i+1] = I(numEntries)
	}

	return nil
}
