// SPDX-License-Identifier: MIT
// Package matexpr: elementwise binary expression nodes (Sum/Difference)
// and their validating constructors.
//
// Purpose:
//   - Build arithmetic trees without computing anything: a node stores
//     references to its operands plus the shape computed eagerly at
//     construction, nothing else.
//   - Fail at construction: an ill-shaped pair never yields a node, so
//     no invalid expression can reach evaluation.
//
// Determinism & Performance:
//   - At recomputes lhs ∘ rhs per query. Querying a cell N times costs
//     N evaluations of the whole subtree; Eval queries each cell once.

package matexpr

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opScale   = "Scale"
	opScaleBy = "ScaleBy"
	opEval    = "Eval"
	opFprint  = "Fprint"
)

// exprErrorf wraps err with an operation tag, preserving the original
// error via %w. Use only when err != nil. Complexity: O(1).
func exprErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// sumExpr is the lazy elementwise sum of two same-shaped expressions.
// It borrows its operands and owns no storage.
type sumExpr[T Num] struct {
	lhs, rhs Expr[T]
	r, c     int // shape, fixed at construction
}

// Rows returns the common operand row count. Complexity: O(1).
func (e *sumExpr[T]) Rows() int { return e.r }

// Cols returns the common operand column count. Complexity: O(1).
func (e *sumExpr[T]) Cols() int { return e.c }

// At computes lhs(i,j) + rhs(i,j) on demand.
// Bounds are enforced by the leaves; operand errors propagate unchanged.
func (e *sumExpr[T]) At(i, j int) (T, error) {
	var zero T
	av, err := e.lhs.At(i, j)
	if err != nil {
		return zero, err
	}
	bv, err := e.rhs.At(i, j)
	if err != nil {
		return zero, err
	}

	return av + bv, nil
}

// diffExpr is the lazy elementwise difference of two same-shaped
// expressions. Mirrors sumExpr with subtraction.
type diffExpr[T Num] struct {
	lhs, rhs Expr[T]
	r, c     int
}

// Rows returns the common operand row count. Complexity: O(1).
func (e *diffExpr[T]) Rows() int { return e.r }

// Cols returns the common operand column count. Complexity: O(1).
func (e *diffExpr[T]) Cols() int { return e.c }

// At computes lhs(i,j) - rhs(i,j) on demand.
func (e *diffExpr[T]) At(i, j int) (T, error) {
	var zero T
	av, err := e.lhs.At(i, j)
	if err != nil {
		return zero, err
	}
	bv, err := e.rhs.At(i, j)
	if err != nil {
		return zero, err
	}

	return av - bv, nil
}

// Add builds the lazy elementwise sum a + b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and identical shapes.
//   - Stage 2: capture operands plus the common shape; compute nothing.
//
// Behavior highlights:
//   - Construction-time validation: no element is ever read before the
//     shapes are known to match.
//   - Operands are never mutated and may themselves be lazy nodes, so
//     trees like Add(Sub(a,b), Mul(c,d)) compose freely.
//
// Errors:
//   - ErrNilExpr (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity: O(1); evaluation cost is deferred to At/Eval.
func Add[T Num](a, b Expr[T]) (Expr[T], error) {
	if err := ValidateExpr(a); err != nil {
		return nil, exprErrorf(opAdd, err)
	}
	if err := ValidateExpr(b); err != nil {
		return nil, exprErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, exprErrorf(opAdd, err)
	}

	return &sumExpr[T]{lhs: a, rhs: b, r: a.Rows(), c: a.Cols()}, nil
}

// Sub builds the lazy elementwise difference a - b.
// Validation and laziness are identical to Add.
//
// Errors:
//   - ErrNilExpr (nil operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity: O(1); evaluation cost is deferred to At/Eval.
func Sub[T Num](a, b Expr[T]) (Expr[T], error) {
	if err := ValidateExpr(a); err != nil {
		return nil, exprErrorf(opSub, err)
	}
	if err := ValidateExpr(b); err != nil {
		return nil, exprErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, exprErrorf(opSub, err)
	}

	return &diffExpr[T]{lhs: a, rhs: b, r: a.Rows(), c: a.Cols()}, nil
}
