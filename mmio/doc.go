// SPDX-License-Identifier: MIT

// Package mmio reads and writes the Matrix Market exchange format
// (https://math.nist.gov/MatrixMarket/formats.html), the lingua franca of
// sparse matrix test collections.
//
// Supported on input:
//   - matrix coordinate real|integer|pattern general|symmetric
//   - matrix array      real|integer              general
//
// Symmetric input mirrors every off-diagonal entry; pattern entries take
// the value 1. Indices are 1-based on disk and 0-based in memory. Array
// input is pruned: only nonzero cells become entries.
//
// Output is always the general form: WriteCOO emits coordinate, WriteDense
// emits array (column-major, as the format prescribes).
//
// The package works on the float64/int instantiation of the sparse
// containers; integer fields parse losslessly up to 2^53.
package mmio
