// SPDX-License-Identifier: MIT

// Package sparse - conversions out of CSR.
//
// CSR fans out to every other format: row expansion back to COO,
// accumulation into Dense, diagonal discovery into DIA, and the
// capacity-split into ELL/HYB. All kernels size the destination from a
// counting pass before the first write.

package sparse

// ---------- kernel context tags ----------

const (
	opCSRToCOO   = "CSRToCOO"
	opCSRToDense = "CSRToDense"
	opCSRToDIA   = "CSRToDIA"
	opCSRToELL   = "CSRToELL"
	opCSRToHYB   = "CSRToHYB"
)

// CSRToCOO converts compressed rows into coordinate triplets.
// Row indices are expanded from the offsets; column indices and values are
// copied verbatim, so entry order and duplicates survive unchanged.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows + entries).
func CSRToCOO[I Index, V Value](dst *COO[I, V], src *CSR[I, V]) error {
	if dst == nil || src == nil {
		return convErrorf(opCSRToCOO, ErrNilMatrix)
	}
	if err := dst.Resize(src.rows, src.cols, src.nnz); err != nil {
		return convErrorf(opCSRToCOO, err)
	}

	// Expand each row's span into explicit row indices.
	var i, jj int
	for i = 0; i < src.rows; i++ {
		for jj = int(src.RowOffsets[i]); jj < int(src.RowOffsets[i+1]); jj++ {
			dst.RowIndices[jj] = I(i)
		}
	}
	copy(dst.ColIndices, src.ColIndices)
	copy(dst.Values, src.Values)

	return nil
}

// CSRToDense converts compressed rows into a dense array.
// Like COOToDense, entries are ADDED into zero-filled cells, so in-row
// duplicates sum. Orientation only affects the indexing formula.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(rows*cols + entries).
func CSRToDense[I Index, V Value](dst *Dense[V], src *CSR[I, V]) error {
	if dst == nil || src == nil {
		return convErrorf(opCSRToDense, ErrNilMatrix)
	}
	if err := dst.Resize(src.rows, src.cols); err != nil {
		return convErrorf(opCSRToDense, err)
	}

	clear(dst.data)

	var i, jj int
	for i = 0; i < src.rows; i++ {
		for jj = int(src.RowOffsets[i]); jj < int(src.RowOffsets[i+1]); jj++ {
			dst.data[dst.offset(i, int(src.ColIndices[jj]))] += src.Values[jj] // sum duplicates
		}
	}

	return nil
}

// CSRToDIA converts compressed rows into diagonal strips.
//
// Implementation (two-pass diagonal discovery):
//   - Stage 1: mark-and-count distinct diagonal ids col−row+rows, which
//     range over [0, rows+cols); the count sizes the destination.
//   - Stage 2: assign each marked id a dense diagonal slot in ascending id
//     order, recording the true (unshifted) offset col−row.
//   - Stage 3: zero-fill Values and write each entry at slot*stride+row.
//
// The stride is the row count rounded up to the alignment (WithAlignment,
// default 16). Padding slots remain structural zeros; DIAToCSR prunes them.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows + cols + entries + diagonals*stride).
func CSRToDIA[I Index, V Value](dst *DIA[I, V], src *CSR[I, V], opts ...Option) error {
	if dst == nil || src == nil {
		return convErrorf(opCSRToDIA, ErrNilMatrix)
	}
	o := gatherOptions(opts...)

	// Stage 1: mark occupied diagonals; the id shift by +rows keeps the
	// map domain non-negative.
	numDiagonals := 0
	diagMap := make([]I, src.rows+src.cols)

	var i, jj, mapIndex int
	for i = 0; i < src.rows; i++ {
		for jj = int(src.RowOffsets[i]); jj < int(src.RowOffsets[i+1]); jj++ {
			mapIndex = (src.rows - i) + int(src.ColIndices[jj]) // offset shifted by +rows
			if diagMap[mapIndex] == 0 {
				diagMap[mapIndex] = 1
				numDiagonals++
			}
		}
	}

	// Diagonal length in memory, rounded up to the alignment unit.
	stride := alignStride(src.rows, o.alignment)

	if err := dst.Resize(src.rows, src.cols, src.nnz, numDiagonals, stride); err != nil {
		return convErrorf(opCSRToDIA, err)
	}

	// Stage 2: dense slot per marked id, ascending; record true offsets.
	var n, diag int
	for n = 0; n < src.rows+src.cols; n++ {
		if diagMap[n] == 1 {
			diagMap[n] = I(diag)
			dst.DiagonalOffsets[diag] = I(n - src.rows)
			diag++
		}
	}

	// Stage 3: zero-fill, then scatter values into diagonal slices.
	clear(dst.Values)

	for i = 0; i < src.rows; i++ {
		for jj = int(src.RowOffsets[i]); jj < int(src.RowOffsets[i+1]); jj++ {
			mapIndex = (src.rows - i) + int(src.ColIndices[jj])
			dst.Values[int(diagMap[mapIndex])*stride+i] = src.Values[jj]
		}
	}

	return nil
}

// CSRToHYB splits compressed rows into an ELL part and a COO overflow.
//
// Each row contributes up to entriesPerRow of its leading entries (in
// original CSR order) to the ELL block at slot*stride+row; slots past a
// row's entry count get the InvalidIndex sentinel and a zero value. Any
// entries beyond the capacity overflow, in original order, into the COO
// part tagged with their row. entriesPerRow == 0 is legal and sends
// everything to COO; no error is raised for overflowing rows.
//
// Errors: ErrNilMatrix, ErrInvalidCapacity, ErrInvalidDimensions,
// ErrCapacityOverflow.
// Complexity: O(rows + entries + entriesPerRow*stride).
func CSRToHYB[I Index, V Value](dst *HYB[I, V], src *CSR[I, V], entriesPerRow int, opts ...Option) error {
	if dst == nil || src == nil {
		return convErrorf(opCSRToHYB, ErrNilMatrix)
	}
	if entriesPerRow < 0 {
		return convErrorf(opCSRToHYB, ErrInvalidCapacity)
	}
	o := gatherOptions(opts...)

	stride := alignStride(src.rows, o.alignment)

	// Counting pass: entries kept by the ELL block per row.
	numELLEntries := 0
	var i, rowLen int
	for i = 0; i < src.rows; i++ {
		rowLen = int(src.RowOffsets[i+1] - src.RowOffsets[i])
		numELLEntries += min(entriesPerRow, rowLen)
	}
	numCOOEntries := src.nnz - numELLEntries

	if err := dst.Resize(src.rows, src.cols, numELLEntries, numCOOEntries, entriesPerRow, stride); err != nil {
		return convErrorf(opCSRToHYB, err)
	}

	ell := &dst.ELL
	coo := &dst.COO

	// Pad the ELL block: sentinel columns, zero values.
	for p := range ell.ColIndices {
		ell.ColIndices[p] = I(InvalidIndex)
	}
	clear(ell.Values)

	// Fill pass: leading entries into ELL slots, remainder into COO.
	var jj, end, slot, cooNNZ int
	for i = 0; i < src.rows; i++ {
		jj = int(src.RowOffsets[i])
		end = int(src.RowOffsets[i+1])

		// Copy up to entriesPerRow values of row i into the ELL block.
		for slot = 0; jj < end && slot < entriesPerRow; slot, jj = slot+1, jj+1 {
			ell.ColIndices[slot*stride+i] = src.ColIndices[jj]
			ell.Values[slot*stride+i] = src.Values[jj]
		}

		// Copy any remaining values of row i into the COO overflow.
		for ; jj < end; jj, cooNNZ = jj+1, cooNNZ+1 {
			coo.RowIndices[cooNNZ] = I(i)
			coo.ColIndices[cooNNZ] = src.ColIndices[jj]
			coo.Values[cooNNZ] = src.Values[jj]
		}
	}

	return nil
}

// CSRToELL converts compressed rows into a fixed-width block holding the
// first entriesPerRow entries of each row. Implemented via CSRToHYB with
// the COO remainder discarded, so the split semantics match exactly.
//
// Errors: as CSRToHYB.
// Complexity: as CSRToHYB.
func CSRToELL[I Index, V Value](dst *ELL[I, V], src *CSR[I, V], entriesPerRow int, opts ...Option) error {
	if dst == nil || src == nil {
		return convErrorf(opCSRToELL, ErrNilMatrix)
	}

	var hyb HYB[I, V]
	if err := CSRToHYB(&hyb, src, entriesPerRow, opts...); err != nil {
		return convErrorf(opCSRToELL, err)
	}

	// Detach the ELL part; the overflow COO is dropped.
	*dst = hyb.ELL

	return nil
}
