// SPDX-License-Identifier: MIT
// Package matexpr: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid any logic duplication: each facade delegates to the
//     canonical implementation.
//   - Keep function names explicit and intention-revealing.

package matexpr

// Zeros returns a new zero-initialized rows×cols Dense. It is a thin
// alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func Zeros[T Num](rows, cols int) (*Dense[T], error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense[T](rows, cols, nil)
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere). Fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Num](n int) (*Dense[T], error) {
	I, err := NewDense[T](n, n, nil)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	var one T = 1
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		_ = I.Set(i, i, one) // bounds-safe after shape validation
	}

	return I, nil
}

// ZerosLike returns a new zero Dense with the same shape as e. Handy to
// preallocate staging buffers. Complexity: O(r*c) zeroing.
func ZerosLike[T Num](e Expr[T]) (*Dense[T], error) {
	if err := ValidateExpr(e); err != nil {
		return nil, err
	}

	// Read shape once and delegate to the strict constructor.
	return NewDense[T](e.Rows(), e.Cols(), nil)
}

// MustEval is Eval for call sites where the expression is known to be
// well-formed (demos, tests, literals). Panics on error.
func MustEval[T Num](e Expr[T], opts ...EvalOption) *Dense[T] {
	m, err := Eval(e, opts...)
	if err != nil {
		panic(err)
	}

	return m
}
