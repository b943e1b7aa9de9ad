// Package sparse implements the classic sparse matrix storage formats
// (COO, CSR, DIA, ELL, HYB) plus an orientation-aware dense container,
// together with every pairwise conversion between them.
//
// The sparse package provides:
//
//   - Format containers parameterized by a signed index type and a numeric
//     value type, each with an exact-sizing Resize contract.
//   - Conversion kernels (COOToCSR, CSRToDIA, CSRToHYB, ...) that size the
//     destination in one counting pass and fill it in a second pass, with
//     fixed loop orders and no hidden allocation.
//   - A Matrix interface unifying the five sparse formats through COO as a
//     universal pivot, enabling format-agnostic pipelines and tests.
//
// Duplicate coordinates are a documented asymmetry inherited from the
// conversion contracts: COOToCSR preserves duplicate (row,col) entries as
// separate CSR entries, while conversions into Dense accumulate them.
// Downstream code may rely on either behavior; neither is normalized.
//
// All kernels are synchronous and touch no shared state; distinct matrices
// may be converted concurrently by the caller.
//
// See the examples in this package for usage patterns.
package sparse
