// SPDX-License-Identifier: MIT

// Package mmio - Matrix Market writer.
//
// Output is always the general form: symmetric compression on write is a
// space optimization the reader side never requires, so the writer keeps
// the simpler layout. Values use the shortest round-trippable decimal
// rendering.

package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/sparsix/sparse"
)

// formatValue renders v with enough digits to round-trip through ParseFloat.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteCOO emits m as "matrix coordinate real general": one triplet per
// line, indices converted to the format's 1-based convention. Entry order
// follows storage order; duplicates, if present, are written as-is.
//
// Errors: sparse.ErrNilMatrix on a nil handle, otherwise the underlying
// writer's error.
func WriteCOO(w io.Writer, m *sparse.COO[int, float64]) error {
	if m == nil {
		return fmt.Errorf("mmio.WriteCOO: %w", sparse.ErrNilMatrix)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%%%%MatrixMarket matrix coordinate real general\n")
	fmt.Fprintf(bw, "%d %d %d\n", m.Rows(), m.Cols(), m.NumEntries())

	for n := 0; n < m.NumEntries(); n++ {
		row, col, v, err := m.Entry(n)
		if err != nil {
			return fmt.Errorf("mmio.WriteCOO: %w", err)
		}
		fmt.Fprintf(bw, "%d %d %s\n", row+1, col+1, formatValue(v))
	}

	return bw.Flush()
}

// WriteDense emits m as "matrix array real general": every cell, zeros
// included, one value per line in the format's column-major order
// regardless of m's storage orientation.
//
// Errors: sparse.ErrNilMatrix on a nil handle, otherwise the underlying
// writer's error.
func WriteDense(w io.Writer, m *sparse.Dense[float64]) error {
	if m == nil {
		return fmt.Errorf("mmio.WriteDense: %w", sparse.ErrNilMatrix)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%%%%MatrixMarket matrix array real general\n")
	fmt.Fprintf(bw, "%d %d\n", m.Rows(), m.Cols())

	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("mmio.WriteDense: %w", err)
			}
			fmt.Fprintf(bw, "%s\n", formatValue(v))
		}
	}

	return bw.Flush()
}
