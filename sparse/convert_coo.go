// SPDX-License-Identifier: MIT

// Package sparse - conversions out of COO.
//
// COOToCSR is the leaf pivot every composite pipeline leans on; it is a
// counting sort over row indices with the offsets array doubling as the
// scatter cursor. COOToDense accumulates, turning duplicate coordinates
// into summed contributions.

package sparse

// ---------- kernel context tags ----------

const (
	opCOOToCSR   = "COOToCSR"
	opCOOToDense = "COOToDense"
)

// COOToCSR converts a coordinate matrix into compressed rows.
//
// Implementation (counting sort, four passes):
//   - Stage 1: count entries per row into RowOffsets[0..rows-1].
//   - Stage 2: exclusive prefix-sum the counts into start offsets and pin
//     RowOffsets[rows] = NumEntries().
//   - Stage 3: scatter each entry to the slot named by its row's cursor,
//     advancing the cursor in place.
//   - Stage 4: shift the advanced cursors back by one row, restoring the
//     original start offsets.
//
// Behavior highlights:
//   - Duplicate (row,col) pairs are preserved as separate CSR entries, not
//     merged. This is a documented limitation of the format contract.
//   - Relative order of same-row entries is NOT guaranteed.
//   - Source entry indices must lie inside the shape (caller obligation).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
//
// Complexity: O(rows + entries) time, O(1) extra space.
func COOToCSR[I Index, V Value](dst *CSR[I, V], src *COO[I, V]) error {
	if dst == nil || src == nil {
		return convErrorf(opCOOToCSR, ErrNilMatrix)
	}
	if err := dst.Resize(src.rows, src.cols, src.nnz); err != nil {
		return convErrorf(opCOOToCSR, err)
	}

	// Stage 1: number of entries per row.
	for i := range dst.RowOffsets {
		dst.RowOffsets[i] = 0
	}
	for n := 0; n < src.nnz; n++ {
		dst.RowOffsets[src.RowIndices[n]]++
	}

	// Stage 2: exclusive prefix sum yields per-row start offsets.
	var cumsum, temp I
	for i := 0; i < src.rows; i++ {
		temp = dst.RowOffsets[i]
		dst.RowOffsets[i] = cumsum
		cumsum += temp
	}
	dst.RowOffsets[src.rows] = I(src.nnz)

	// Stage 3: scatter entries, advancing each row's cursor in place.
	var row, dest I
	for n := 0; n < src.nnz; n++ {
		row = src.RowIndices[n]
		dest = dst.RowOffsets[row]

		dst.ColIndices[dest] = src.ColIndices[n]
		dst.Values[dest] = src.Values[n]

		dst.RowOffsets[row]++
	}

	// Stage 4: cursors are now shifted forward one row; shift them back.
	var last I
	for i := 0; i <= src.rows; i++ {
		temp = dst.RowOffsets[i]
		dst.RowOffsets[i] = last
		last = temp
	}

	// dst may contain duplicates; see package doc.
	return nil
}

// COOToDense converts a coordinate matrix into a dense array.
//
// The destination is zero-filled, then every source entry is ADDED into
// its cell: duplicate coordinates sum, which is mathematically the same as
// treating duplicates as additive contributions to one matrix entry.
// Orientation only affects the destination's indexing formula.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions.
//
// Complexity: O(rows*cols + entries).
func COOToDense[I Index, V Value](dst *Dense[V], src *COO[I, V]) error {
	if dst == nil || src == nil {
		return convErrorf(opCOOToDense, ErrNilMatrix)
	}
	if err := dst.Resize(src.rows, src.cols); err != nil {
		return convErrorf(opCOOToDense, err)
	}

	clear(dst.data) // every cell starts at the additive identity

	for n := 0; n < src.nnz; n++ {
		dst.data[dst.offset(int(src.RowIndices[n]), int(src.ColIndices[n]))] += src.Values[n] // sum duplicates
	}

	return nil
}
