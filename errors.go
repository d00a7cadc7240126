// SPDX-License-Identifier: MIT
// Package matexpr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// package. All constructors and kernels MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for nonsensical
// option values (programmer errors, see options.go).

package matexpr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matexpr: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers will
// still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil expression -> shape/dimension violations -> index violations ->
// content violations (ragged literal, empty matrix).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative. Constructors must validate shape before allocation.
	ErrInvalidDimensions = errors.New("matexpr: dimensions must be non-negative")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands or buffers: Add/Sub with different shapes, Mul where
	// a.Cols != b.Rows, or a flat data slice whose length is not
	// rows*cols. Checked at construction time, never at evaluation time.
	ErrDimensionMismatch = errors.New("matexpr: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside
	// valid bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matexpr: index out of range")

	// ErrRaggedRows indicates a nested row literal whose inner rows do
	// not all share the same length.
	ErrRaggedRows = errors.New("matexpr: ragged row literal")

	// ErrEmptyMatrix signals an operation that requires at least one
	// element (Max) was invoked on a 0-element matrix.
	ErrEmptyMatrix = errors.New("matexpr: empty matrix")

	// ErrNilExpr indicates that a nil expression operand was passed to a
	// constructor or to Eval/Fprint.
	ErrNilExpr = errors.New("matexpr: nil expression")
)
