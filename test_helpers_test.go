// SPDX-License-Identifier: MIT
// Package matexpr_test: shared helpers for the test suite.
// Helpers fail the calling test/benchmark via testing.TB so call sites
// stay single-line.
package matexpr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matexpr"
)

// mustDense builds a rows×cols zero Dense[float64] or aborts the test.
func mustDense(tb testing.TB, rows, cols int) *matexpr.Dense[float64] {
	tb.Helper()
	m, err := matexpr.Zeros[float64](rows, cols)
	if err != nil {
		tb.Fatalf("Zeros(%d,%d): %v", rows, cols, err)
	}

	return m
}

// fillDenseRand fills m with deterministic pseudo-random values in
// [-1, 1) from the given seed.
func fillDenseRand(tb testing.TB, m *matexpr.Dense[float64], seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed)) // deterministic stream
	m.Apply(func(_, _ int, _ float64) float64 {
		return 2*rng.Float64() - 1
	})
}

// cellsOf queries every cell of e through At in row-major order and
// returns the values flat. Used by round-trip checks against Eval.
func cellsOf[T matexpr.Num](tb testing.TB, e matexpr.Expr[T]) []T {
	tb.Helper()
	r, c := e.Rows(), e.Cols()
	out := make([]T, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := e.At(i, j)
			if err != nil {
				tb.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out = append(out, v)
		}
	}

	return out
}

// denseCells reads every cell of a concrete Dense via At.
func denseCells[T matexpr.Num](tb testing.TB, m *matexpr.Dense[T]) []T {
	tb.Helper()

	return cellsOf[T](tb, m)
}
