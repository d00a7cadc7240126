// SPDX-License-Identifier: MIT
// Package matexpr: product expression nodes.
//
// Purpose:
//   - Provide the three-way product split, explicit and exhaustive:
//     matrix×matrix (Mul), scalar×matrix (Scale), matrix×scalar
//     (ScaleBy). Go has no operator overloading, so the split lives in
//     three constructors instead of type-level dispatch.
//   - A 1×1 matrix is never treated as a scalar: it always goes through
//     Mul and the shared-dimension check.
//
// Determinism & Performance:
//   - matProdExpr.At recomputes the full dot product over the shared
//     dimension on every query: O(shared) per cell, O(r*c*shared) for a
//     single Eval. No partial sums are memoized across cells.

package matexpr

import "fmt"

// matProdExpr is the lazy matrix×matrix product. shared is the inner
// dimension (lhs columns == rhs rows), captured once at construction.
type matProdExpr[T Num] struct {
	lhs, rhs Expr[T]
	r, c     int // result shape: lhs.Rows() × rhs.Cols()
	shared   int // dot-product length
}

// Rows returns the left operand's row count. Complexity: O(1).
func (e *matProdExpr[T]) Rows() int { return e.r }

// Cols returns the right operand's column count. Complexity: O(1).
func (e *matProdExpr[T]) Cols() int { return e.c }

// At computes the dot product sum over k of lhs(i,k)*rhs(k,j).
// The accumulator is the element type T itself: the tree is monomorphic
// in T, so no silent widening or truncation can occur. Fixed k order;
// operand errors propagate unchanged. Complexity: O(shared).
func (e *matProdExpr[T]) At(i, j int) (T, error) {
	var acc, av, bv T
	// Bounds are enforced here, not via the operands: with a 0-length
	// shared dimension the k-loop never queries a leaf, yet invalid
	// indices must still fail.
	if i < 0 || i >= e.r || j < 0 || j >= e.c {
		return acc, exprErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange))
	}
	var err error
	for k := 0; k < e.shared; k++ {
		av, err = e.lhs.At(i, k)
		if err != nil {
			return acc, err
		}
		bv, err = e.rhs.At(k, j)
		if err != nil {
			return acc, err
		}
		acc += av * bv
	}

	return acc, nil
}

// scaleExpr is the lazy scalar product s·E. It serves both the
// scalar×matrix and matrix×scalar entry points; multiplication over Num
// commutes, so the right-scalar form is commuted into s*v internally.
type scaleExpr[T Num] struct {
	s     T
	inner Expr[T]
}

// Rows returns the wrapped expression's row count. Complexity: O(1).
func (e *scaleExpr[T]) Rows() int { return e.inner.Rows() }

// Cols returns the wrapped expression's column count. Complexity: O(1).
func (e *scaleExpr[T]) Cols() int { return e.inner.Cols() }

// At computes s * inner(i,j) on demand.
func (e *scaleExpr[T]) At(i, j int) (T, error) {
	v, err := e.inner.At(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return e.s * v, nil
}

// Mul builds the lazy matrix product a × b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: capture operands, result shape (a.Rows() × b.Cols()) and
//     the shared dimension; compute nothing.
//
// Behavior highlights:
//   - Intentionally the naive O(r*c*shared) schoolbook product when
//     evaluated; there is no blocking or memoization.
//   - Operands may be lazy nodes themselves; beware that each output
//     cell then re-evaluates its operand cells shared-many times.
//     Materialize hot operands with Eval first if that matters.
//
// Errors:
//   - ErrNilExpr (nil operand), ErrDimensionMismatch (inner mismatch).
//
// Complexity: O(1); evaluation cost is deferred to At/Eval.
func Mul[T Num](a, b Expr[T]) (Expr[T], error) {
	if err := ValidateExpr(a); err != nil {
		return nil, exprErrorf(opMul, err)
	}
	if err := ValidateExpr(b); err != nil {
		return nil, exprErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, exprErrorf(opMul, err)
	}

	return &matProdExpr[T]{
		lhs:    a,
		rhs:    b,
		r:      a.Rows(),
		c:      b.Cols(),
		shared: a.Cols(),
	}, nil
}

// Scale builds the lazy scalar product s × e (scalar on the left).
// Result shape equals e's shape; every element is s*e(i,j).
//
// Errors:
//   - ErrNilExpr (nil expression).
//
// Complexity: O(1); evaluation cost is deferred to At/Eval.
func Scale[T Num](s T, e Expr[T]) (Expr[T], error) {
	if err := ValidateExpr(e); err != nil {
		return nil, exprErrorf(opScale, err)
	}

	return &scaleExpr[T]{s: s, inner: e}, nil
}

// ScaleBy builds the lazy scalar product e × s (scalar on the right).
// Commuted internally to s*element; mathematically equivalent to Scale
// for every Num element type.
//
// Errors:
//   - ErrNilExpr (nil expression).
//
// Complexity: O(1); evaluation cost is deferred to At/Eval.
func ScaleBy[T Num](e Expr[T], s T) (Expr[T], error) {
	if err := ValidateExpr(e); err != nil {
		return nil, exprErrorf(opScaleBy, err)
	}

	return &scaleExpr[T]{s: s, inner: e}, nil
}
