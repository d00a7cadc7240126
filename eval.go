// SPDX-License-Identifier: MIT
// Package matexpr: the Evaluator, the single point where a lazy tree
// becomes a concrete Dense.
//
// Purpose:
//   - Walk an expression's logical shape and materialize every element
//     into a fresh buffer exactly once (each cell visited once, each
//     cell queried once).
//   - Use dual-path kernels: concrete-leaf fast paths on flat slices,
//     with a generic interface walk as the reference fallback.
//
// Determinism & Performance:
//   - Sequential path fills in row-major order (flat 0..n-1 in the fast
//     paths; i→j in the generic walk).
//   - float64 elementwise/scale fills route through algo-vecmath block
//     kernels; all other element types use plain flat loops.
//   - WithWorkers(n) splits rows across n goroutines; rows are disjoint
//     and cells independent, so no cross-cell synchronization exists.

package matexpr

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// Eval materializes any expression into a freshly allocated Dense.
//
// Implementation:
//   - Stage 1: validate the root, read the shape once, allocate r*c.
//   - Stage 2: try a concrete-leaf fast path (unless disabled).
//   - Stage 3: otherwise run the generic walk, sequential or
//     row-parallel per options.
//
// Behavior highlights:
//   - Every output cell is written exactly once and queried exactly
//     once; evaluation order across cells is row-major sequentially and
//     unspecified across workers, but the full domain is always covered.
//   - 0-row or 0-col expressions evaluate to a legal empty Dense.
//   - The result owns its buffer; operands are never mutated.
//
// Errors:
//   - ErrNilExpr for a nil root; element-level errors propagate wrapped
//     with the failing coordinates (not expected for well-formed trees,
//     since shape validity is enforced at construction).
//
// Complexity: O(r*c) cells; each cell costs the subtree's At (O(shared)
// for a matrix product at the root).
func Eval[T Num](e Expr[T], opts ...EvalOption) (*Dense[T], error) {
	o := gatherEvalOptions(opts...)
	if err := ValidateExpr(e); err != nil {
		return nil, exprErrorf(opEval, err)
	}

	// Read the shape once; it is fixed for the lifetime of the node.
	r, c := e.Rows(), e.Cols()
	out := &Dense[T]{r: r, c: c, data: make([]T, r*c)}
	if r == 0 || c == 0 {
		return out, nil // empty domain: nothing to fill
	}

	// Concrete-leaf fast paths (flat slices, vecmath for float64).
	if o.fastPath && evalFast(e, out) {
		return out, nil
	}

	// Generic interface walk.
	if o.workers > 1 {
		if err := evalRowsParallel(e, out, o.workers); err != nil {
			return nil, err
		}

		return out, nil
	}
	if err := evalRows(e, out, 0, r); err != nil {
		return nil, err
	}

	return out, nil
}

// evalFast fills out directly from flat buffers when the root node's
// operands are concrete *Dense leaves. Returns false when no fast path
// applies; the caller then falls back to the generic walk. The fast
// paths produce the same values as the generic walk for the same
// inputs (same operation order per cell).
func evalFast[T Num](e Expr[T], out *Dense[T]) bool {
	switch n := e.(type) {
	case *Dense[T]:
		// Leaf root: plain buffer copy.
		copy(out.data, n.data)

		return true

	case *sumExpr[T]:
		ld, okL := n.lhs.(*Dense[T])
		rd, okR := n.rhs.(*Dense[T])
		if !okL || !okR {
			return false
		}
		// float64: copy lhs, then block-add rhs in place.
		if dst, ok := any(out.data).([]float64); ok {
			copy(dst, any(ld.data).([]float64))
			vecmath.AddBlockInPlace(dst, any(rd.data).([]float64))

			return true
		}
		for idx := range out.data { // deterministic 0..n-1
			out.data[idx] = ld.data[idx] + rd.data[idx]
		}

		return true

	case *diffExpr[T]:
		ld, okL := n.lhs.(*Dense[T])
		rd, okR := n.rhs.(*Dense[T])
		if !okL || !okR {
			return false
		}
		// float64: dst = (-1)*rhs, then block-add lhs in place.
		if dst, ok := any(out.data).([]float64); ok {
			vecmath.ScaleBlock(dst, any(rd.data).([]float64), -1)
			vecmath.AddBlockInPlace(dst, any(ld.data).([]float64))

			return true
		}
		for idx := range out.data {
			out.data[idx] = ld.data[idx] - rd.data[idx]
		}

		return true

	case *scaleExpr[T]:
		d, ok := n.inner.(*Dense[T])
		if !ok {
			return false
		}
		// float64: single block scale.
		if dst, okF := any(out.data).([]float64); okF {
			vecmath.ScaleBlock(dst, any(d.data).([]float64), any(n.s).(float64))

			return true
		}
		for idx := range out.data {
			out.data[idx] = n.s * d.data[idx]
		}

		return true

	case *matProdExpr[T]:
		ld, okL := n.lhs.(*Dense[T])
		rd, okR := n.rhs.(*Dense[T])
		if !okL || !okR {
			return false
		}
		// Row-major triple loop i→k→j over the flat buffers.
		// ld.data layout: i*shared + k; rd.data layout: k*out.c + j.
		// Every term is accumulated, in the same ascending-k order as
		// the lazy dot product: zero terms must not be skipped, or
		// 0*Inf would materialize as 0 instead of NaN.
		var av T
		var rowA, rowB, rowOut int
		for i := 0; i < out.r; i++ {
			rowA = i * n.shared
			rowOut = i * out.c
			for k := 0; k < n.shared; k++ {
				av = ld.data[rowA+k]
				rowB = k * out.c
				for j := 0; j < out.c; j++ {
					out.data[rowOut+j] += av * rd.data[rowB+j]
				}
			}
		}

		return true
	}

	return false
}

// evalRows fills rows [lo,hi) of out by querying e once per cell in
// fixed i→j order. Shared by the sequential and parallel paths; ranges
// never overlap, so concurrent calls touch disjoint cells.
func evalRows[T Num](e Expr[T], out *Dense[T], lo, hi int) error {
	var v T
	var err error
	var i, j, base int
	for i = lo; i < hi; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			v, err = e.At(i, j) // exactly one query per cell
			if err != nil {
				return exprErrorf(opEval, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[base+j] = v
		}
	}

	return nil
}

// evalRowsParallel splits the row range across up to `workers`
// goroutines. Each worker owns a contiguous disjoint row chunk; Wait
// returns the first error after all workers finish.
func evalRowsParallel[T Num](e Expr[T], out *Dense[T], workers int) error {
	if workers > out.r {
		workers = out.r // never spawn more workers than rows
	}
	chunk := (out.r + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < out.r; lo += chunk {
		hi := lo + chunk
		if hi > out.r {
			hi = out.r
		}
		lo, hi := lo, hi // capture per-iteration bounds
		g.Go(func() error {
			return evalRows(e, out, lo, hi)
		})
	}

	return g.Wait()
}
