// SPDX-License-Identifier: MIT
// Package matexpr: textual rendering of expressions.
//
// Any expression renders as Rows() lines, each holding Cols()
// space-separated natural element representations with a single
// trailing space before the newline. A 0-row expression renders as
// zero lines. This works on lazy trees directly: rendering queries each
// cell once without materializing a Dense.

package matexpr

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes the rendering of e to w.
//
// Errors:
//   - ErrNilExpr for a nil expression; element-query and writer errors
//     propagate wrapped with the operation tag.
//
// Complexity: O(r*c) element queries (each cell exactly once).
func Fprint[T Num](w io.Writer, e Expr[T]) error {
	if err := ValidateExpr(e); err != nil {
		return exprErrorf(opFprint, err)
	}

	r, c := e.Rows(), e.Cols()
	var v T
	var err error
	for i := 0; i < r; i++ { // one line per row, in row order
		for j := 0; j < c; j++ {
			v, err = e.At(i, j)
			if err != nil {
				return exprErrorf(opFprint, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			// Natural representation, always followed by one space.
			if _, err = fmt.Fprintf(w, "%v ", v); err != nil {
				return exprErrorf(opFprint, err)
			}
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return exprErrorf(opFprint, err)
		}
	}

	return nil
}

// Render returns the rendering of e as a string. Thin wrapper over
// Fprint; the empty matrix yields "". Complexity: O(r*c).
func Render[T Num](e Expr[T]) (string, error) {
	var b strings.Builder
	if err := Fprint(&b, e); err != nil {
		return "", err
	}

	return b.String(), nil
}
