// SPDX-License-Identifier: MIT

// Package sparse - conversions out of ELL and HYB.

package sparse

const (
	opELLToCSR = "ELLToCSR"
	opHYBToCSR = "HYBToCSR"
)

// ELLToCSR converts a fixed-width block back into compressed rows.
//
// Per row, all EntriesPerRow() slots are scanned in slot order; slots
// marked with InvalidIndex are skipped, the rest are emitted. Row-local
// order is therefore ELL slot order, which matches the leading-entry
// order CSRToELL placed. A counting pass sizes the destination first, so
// hand-built ELL blocks with a stale entry count still convert safely.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows*entriesPerRow).
func ELLToCSR[I Index, V Value](dst *CSR[I, V], src *ELL[I, V]) error {
	if dst == nil || src == nil {
		return convErrorf(opELLToCSR, ErrNilMatrix)
	}

	// Counting pass: occupied (non-sentinel) slots.
	numEntries := 0
	var i, slot int
	for i = 0; i < src.rows; i++ {
		for slot = 0; slot < src.entriesPerRow; slot++ {
			if src.ColIndices[slot*src.stride+i] != I(InvalidIndex) {
				numEntries++
			}
		}
	}

	if err := dst.Resize(src.rows, src.cols, numEntries); err != nil {
		return convErrorf(opELLToCSR, err)
	}

	// Emit pass: slot order defines row-local order.
	numEntries = 0
	dst.RowOffsets[0] = 0

	var j I
	for i = 0; i < src.rows; i++ {
		for slot = 0; slot < src.entriesPerRow; slot++ {
			j = src.ColIndices[slot*src.stride+i]
			if j != I(InvalidIndex) {
				dst.ColIndices[numEntries] = j
				dst.Values[numEntries] = src.Values[slot*src.stride+i]
				numEntries++
			}
		}

		dst.RowOffsets[i+1] = I(numEntries)
	}

	return nil
}

// HYBToCSR converts a hybrid matrix back into compressed rows.
//
// Both parts are converted to CSR independently, then merged row by row:
// ELL-part entries first, COO-part entries after, each in their stored
// order. This ELL-before-COO merge order is the defined one and is
// preserved exactly.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, ErrCapacityOverflow.
// Complexity: O(rows*entriesPerRow + cooEntries).
func HYBToCSR[I Index, V Value](dst *CSR[I, V], src *HYB[I, V]) error {
	if dst == nil || src == nil {
		return convErrorf(opHYBToCSR, ErrNilMatrix)
	}

	var ellPart, cooPart CSR[I, V]
	if err := ELLToCSR(&ellPart, &src.ELL); err != nil {
		return convErrorf(opHYBToCSR, err)
	}
	if err := COOToCSR(&cooPart, &src.COO); err != nil {
		return convErrorf(opHYBToCSR, err)
	}

	if err := dst.Resize(src.rows, src.cols, ellPart.nnz+cooPart.nnz); err != nil {
		return convErrorf(opHYBToCSR, err)
	}

	// Merge the two CSR parts row by row: ELL entries before COO entries.
	numEntries := 0
	dst.RowOffsets[0] = 0

	var i, jj int
	for i = 0; i < src.rows; i++ {
		for jj = int(ellPart.RowOffsets[i]); jj < int(ellPart.RowOffsets[i+1]); jj++ {
			dst.ColIndices[numEntries] = ellPart.ColIndices[jj]
			dst.Values[numEntries] = ellPart.Values[jj]
			numEntries++
		}

		for jj = int(cooPart.RowOffsets[i]); jj < int(cooPart.RowOffsets[i+1]); jj++ {
			dst.ColIndices[numEntries] = cooPart.ColIndices[jj]
			dst.Values[numEntries] = cooPart.Values[jj]
			numEntries++
		}

		dst.RowOffsets[i+1] = I(numEntries)
	}

	return nil
}
