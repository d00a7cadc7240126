// SPDX-License-Identifier: MIT
// Package: matexpr
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep constructors/kernels minimal by delegating nil/shape checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Every validator is O(1): only shapes are inspected, never elements.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
//   - Constructors MUST run these before building a node, so that no
//     invalid expression ever exists (shape errors cannot be deferred to
//     evaluation time).

package matexpr

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateExpr ensures the expression reference is non-nil.
//
// Inputs: Expr interface value.
// Returns ErrNilExpr if e == nil.
// Complexity: O(1).
func ValidateExpr[T Num](e Expr[T]) error {
	// If the expression is nil, fail with the unified sentinel.
	if e == nil {
		return validatorErrorf("ValidateExpr", ErrNilExpr)
	}

	return nil
}

// ValidateSameShape ensures expressions a and b have equal dimensions.
// Used by Add/Sub; assumes a and b are not nil (caller must ensure).
//
// Inputs: two Expr values.
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Num](a, b Expr[T]) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures the shared dimension of a matrix
// product exists: a.Cols() == b.Rows(). Assumes non-nil operands.
//
// Inputs: left and right Expr values.
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible[T Num](a, b Expr[T]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
