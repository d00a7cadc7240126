// Package matexpr provides dense, rectangular matrices over a generic
// numeric element type together with lazy, composable arithmetic.
//
// The matexpr package provides:
//
//   - Dense[T]: a concrete row-major matrix that owns a contiguous flat
//     buffer (element (r,c) lives at offset r*cols+c).
//   - Expr[T]: the expression capability (Rows/Cols/At) satisfied by
//     Dense and by every operator node, so trees compose arbitrarily
//     deep without materializing intermediates.
//   - Add, Sub, Mul, Scale, ScaleBy: constructors that validate shapes
//     eagerly and compute elements on demand.
//   - Eval: the single point where a lazy tree becomes a concrete
//     Dense, visiting each output cell exactly once.
//   - Fprint/Render: row-per-line textual rendering of any expression.
//
// Operator nodes never own storage and never mutate their operands;
// every evaluated result is a freshly allocated Dense. All shape
// violations surface as sentinel errors at construction time, before a
// single element is read.
//
// Multiplication is the straightforward triple loop. There is no
// pivoting, blocking, or sparse representation here on purpose: the
// package is about the lazy-evaluation engine, not optimized kernels.
//
// See the examples in this package and examples/ for usage patterns.
package matexpr
