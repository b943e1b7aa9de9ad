// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating dimension/width checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package sparse

import "fmt"

// convErrorf wraps an underlying error with a uniform kernel context.
// Keeps tags grep-able and consistent ("sparse.<op>: <sentinel>").
// Complexity: O(1).
func convErrorf(op string, err error) error {
	return fmt.Errorf("sparse.%s: %w", op, err)
}

// validateDims ensures the requested shape and entry count are non-negative.
// Zero rows/cols are legal (empty matrices round-trip cleanly).
//
// Returns ErrInvalidDimensions on violation. Complexity: O(1).
func validateDims(rows, cols, entries int) error {
	if rows < 0 || cols < 0 || entries < 0 {
		return ErrInvalidDimensions
	}

	return nil
}

// validateIndexWidth ensures the instantiated Index type can represent both
// rows+cols (the DIA diagonal-id domain) and the entry count. The check is
// a round-trip through I: a narrowing conversion that loses bits cannot
// reproduce the original int.
//
// Returns ErrCapacityOverflow on violation. Complexity: O(1).
func validateIndexWidth[I Index](rows, cols, entries int) error {
	if int(I(rows+cols)) != rows+cols {
		return ErrCapacityOverflow
	}
	if int(I(entries)) != entries {
		return ErrCapacityOverflow
	}

	return nil
}

// grow returns a slice of length n, reusing s's backing array when its
// capacity suffices. Contents are unspecified after growth: every kernel
// either zero-fills or fully overwrites per the count-then-fill contract.
// Complexity: O(1) on reuse, O(n) on reallocation.
func grow[E any](s []E, n int) []E {
	if cap(s) >= n {
		return s[:n]
	}

	return make([]E, n)
}
