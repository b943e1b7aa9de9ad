// Package sparsix is an in-memory toolkit for sparse matrix storage
// formats and the conversions between them.
//
// 🚀 What is sparsix?
//
//	A small, deterministic library that brings together the classic
//	sparse storage layouts used by numerical code:
//		• COO   — coordinate triplets, the universal pivot format
//		• CSR   — compressed rows for solvers and row-wise kernels
//		• DIA   — diagonal strips for banded matrices
//		• ELL   — fixed-width rows for regular sparsity
//		• HYB   — ELL regular part + COO overflow part
//		• Dense — row-major or column-major flat arrays
//
// ✨ Why choose sparsix?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, exact sizing, fixed loop orders
//   - Generic – any signed index type, any integer or float value type
//   - Pure Go core – no cgo, no hidden deps in the kernels
//
// Everything is organized under three packages:
//
//	sparse/ — format containers and every pairwise conversion kernel
//	mmio/   — Matrix Market file reading and writing
//	cmd/    — the sparsix command-line converter
//
// Quick sketch:
//
//	COO ⇄ CSR ⇄ {DIA, ELL, HYB}
//	 ⇕     ⇕
//	   Dense
//
// Dive into the sparse package documentation for the conversion
// contracts and runnable examples.
//
//	go get github.com/katalvlaran/sparsix
package sparsix
