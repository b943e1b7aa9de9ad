// SPDX-License-Identifier: MIT

// Package sparse - the Matrix interface and the COO pivot.
//
// The five sparse formats form a closed family unified by dimensions, an
// entry count, and conversion to/from COO. Any pair of formats is
// reachable through the pivot, which lets callers (and tests) write
// format-agnostic pipelines without naming concrete kernels.

package sparse

import "fmt"

// Matrix is the capability shared by every sparse format: shape, entry
// count, and lossless conversion through the coordinate pivot. Dense is
// intentionally outside the family (it is not sparse and carries no index
// type); use DenseToCOO/COOToDense to cross that boundary.
//
// FromCOO chooses deterministic defaults for format-specific parameters
// (documented per implementation); call the direct kernels to control
// alignment or the ELL width explicitly.
type Matrix[I Index, V Value] interface {
	// Rows returns the row count. Complexity: O(1).
	Rows() int

	// Cols returns the column count. Complexity: O(1).
	Cols() int

	// NumEntries returns the logical entry count, excluding structural
	// zeros and sentinel padding. Complexity: O(1).
	NumEntries() int

	// ToCOO overwrites dst with this matrix's entries.
	ToCOO(dst *COO[I, V]) error

	// FromCOO overwrites this matrix with src's entries.
	FromCOO(src *COO[I, V]) error
}

// Compile-time assertions: the closed family.
var (
	_ Matrix[int, float64] = (*COO[int, float64])(nil)
	_ Matrix[int, float64] = (*CSR[int, float64])(nil)
	_ Matrix[int, float64] = (*DIA[int, float64])(nil)
	_ Matrix[int, float64] = (*ELL[int, float64])(nil)
	_ Matrix[int, float64] = (*HYB[int, float64])(nil)
)

// ---------- COO ----------

// ToCOO deep-copies the triplets into dst. Complexity: O(entries).
func (m *COO[I, V]) ToCOO(dst *COO[I, V]) error {
	if dst == nil {
		return fmt.Errorf("COO.ToCOO: %w", ErrNilMatrix)
	}
	if err := dst.Resize(m.rows, m.cols, m.nnz); err != nil {
		return fmt.Errorf("COO.ToCOO: %w", err)
	}
	copy(dst.RowIndices, m.RowIndices)
	copy(dst.ColIndices, m.ColIndices)
	copy(dst.Values, m.Values)

	return nil
}

// FromCOO deep-copies the triplets from src. Complexity: O(entries).
func (m *COO[I, V]) FromCOO(src *COO[I, V]) error {
	if src == nil {
		return fmt.Errorf("COO.FromCOO: %w", ErrNilMatrix)
	}

	return src.ToCOO(m)
}

// ---------- CSR ----------

// ToCOO expands the rows into triplets via CSRToCOO.
func (m *CSR[I, V]) ToCOO(dst *COO[I, V]) error { return CSRToCOO(dst, m) }

// FromCOO rebuilds the rows via the COOToCSR counting sort.
// Duplicates in src are preserved as separate entries.
func (m *CSR[I, V]) FromCOO(src *COO[I, V]) error { return COOToCSR(m, src) }

// ---------- DIA ----------

// ToCOO routes through CSR: DIAToCSR prunes structural zeros, CSRToCOO
// expands. Complexity: O(diagonals*rows + entries).
func (m *DIA[I, V]) ToCOO(dst *COO[I, V]) error {
	var csr CSR[I, V]
	if err := DIAToCSR(&csr, m); err != nil {
		return fmt.Errorf("DIA.ToCOO: %w", err)
	}

	return CSRToCOO(dst, &csr)
}

// FromCOO routes through CSR with the default alignment.
// Use CSRToDIA directly to control the stride rounding.
func (m *DIA[I, V]) FromCOO(src *COO[I, V]) error {
	var csr CSR[I, V]
	if err := COOToCSR(&csr, src); err != nil {
		return fmt.Errorf("DIA.FromCOO: %w", err)
	}

	return CSRToDIA(m, &csr)
}

// ---------- ELL ----------

// ToCOO routes through CSR, skipping sentinel slots.
func (m *ELL[I, V]) ToCOO(dst *COO[I, V]) error {
	var csr CSR[I, V]
	if err := ELLToCSR(&csr, m); err != nil {
		return fmt.Errorf("ELL.ToCOO: %w", err)
	}

	return CSRToCOO(dst, &csr)
}

// FromCOO routes through CSR with the width set to the maximum row
// occupancy, so no entry overflows and the conversion is lossless.
// Use CSRToELL directly to choose a tighter width.
func (m *ELL[I, V]) FromCOO(src *COO[I, V]) error {
	var csr CSR[I, V]
	if err := COOToCSR(&csr, src); err != nil {
		return fmt.Errorf("ELL.FromCOO: %w", err)
	}

	return CSRToELL(m, &csr, maxRowEntries(&csr))
}

// ---------- HYB ----------

// ToCOO routes through CSR via the row-merging HYBToCSR.
func (m *HYB[I, V]) ToCOO(dst *COO[I, V]) error {
	var csr CSR[I, V]
	if err := HYBToCSR(&csr, m); err != nil {
		return fmt.Errorf("HYB.ToCOO: %w", err)
	}

	return CSRToCOO(dst, &csr)
}

// FromCOO routes through CSR with the width set to the mean row occupancy
// rounded up: typical rows land in the ELL block, irregular tails
// overflow into COO. Use CSRToHYB directly to choose the split.
func (m *HYB[I, V]) FromCOO(src *COO[I, V]) error {
	var csr CSR[I, V]
	if err := COOToCSR(&csr, src); err != nil {
		return fmt.Errorf("HYB.FromCOO: %w", err)
	}

	width := 0
	if csr.rows > 0 {
		width = (csr.nnz + csr.rows - 1) / csr.rows // ceil(nnz/rows)
	}

	return CSRToHYB(m, &csr, width)
}

// maxRowEntries returns the largest per-row entry count of a CSR matrix.
// Complexity: O(rows).
func maxRowEntries[I Index, V Value](m *CSR[I, V]) int {
	widest := 0
	for i := 0; i < m.rows; i++ {
		widest = max(widest, int(m.RowOffsets[i+1]-m.RowOffsets[i]))
	}

	return widest
}
