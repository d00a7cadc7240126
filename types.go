// SPDX-License-Identifier: MIT

// Package matexpr: domain types: the element constraint and the
// expression capability. Errors live in errors.go, options in
// options.go, validation in validators.go per the package conventions.
package matexpr

import "golang.org/x/exp/constraints"

// Num is the element constraint shared by Dense and every operator
// node. Any integer or floating-point type (including defined types
// over them) qualifies. The accumulator used by Mul is exactly the
// element type; widening never happens behind the caller's back.
type Num interface {
	constraints.Integer | constraints.Float
}

// Expr is the expression capability: anything exposing a fixed logical
// shape plus on-demand element access participates in the lazy
// arithmetic. *Dense[T] satisfies it as the leaf; Add/Sub/Mul/Scale
// return nodes that satisfy it, so trees compose to arbitrary depth
// with no intermediate materialization.
//
// Contract:
//   - Rows/Cols are fixed at construction and O(1).
//   - At recomputes its value on every query (no caching); querying the
//     same cell N times costs N evaluations. The primary consumer
//     (Eval) queries each cell exactly once.
//   - At returns ErrOutOfRange (possibly wrapped) for indices outside
//     [0,Rows)×[0,Cols); nodes propagate errors from their operands.
type Expr[T Num] interface {
	// Rows returns the logical row count. Complexity: O(1).
	Rows() int

	// Cols returns the logical column count. Complexity: O(1).
	Cols() int

	// At computes the element at (i, j).
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (T, error)
}
