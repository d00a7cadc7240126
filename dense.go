// SPDX-License-Identifier: MIT

// Package matexpr - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Serve as the only storage-owning leaf of the expression system:
//     a Dense exclusively owns its flat buffer, and no algebraic
//     operation ever mutates one in place.
//
// Complexity quicksheet:
//   - NewDense/FromRows: O(r*c); At/Set: O(1); Clone: O(r*c); Max/Do/Apply: O(r*c).

package matexpr

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "NewDense" // ctor tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag used in error wrappers
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxMax      = "Max"      // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix and the storage-owning leaf of
// the expression system.
//   - r,c hold dimensions (rows, cols), immutable after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is a valid 0×0 empty matrix.
type Dense[T Num] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for capability & fmt.Stringer conformance.
var (
	_ Expr[float64] = (*Dense[float64])(nil)
	_ Expr[int]     = (*Dense[int])(nil)
	_ fmt.Stringer  = (*Dense[float64])(nil)
)

// NewDense creates an r×c matrix from explicit dimensions plus flat
// row-major data.
//
// Implementation:
//   - Stage 1 (Validate): rows and cols must be non-negative; when data
//     is non-nil its length must equal rows*cols.
//   - Stage 2 (Prepare): copy data into a fresh owned buffer (nil data
//     yields a zero-filled buffer).
//   - Stage 3 (Finalize): return the new Dense.
//
// Behavior highlights:
//   - The buffer is always copied: the Dense exclusively owns its
//     storage and later writes through the caller's slice never alias.
//   - rows==0 or cols==0 is legal and produces an empty matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrDimensionMismatch (len(data) != rows*cols).
//
// Complexity: O(r*c) time and memory.
func NewDense[T Num](rows, cols int, data []T) (*Dense[T], error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNew, rows, cols, ErrInvalidDimensions)
	}
	n := rows * cols
	if data != nil && len(data) != n {
		return nil, fmt.Errorf("%s(%d,%d): data length %d: %w", ctxNew, rows, cols, len(data), ErrDimensionMismatch)
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]T, n)
	copy(buf, data) // no-op when data is nil

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a matrix from a nested row literal, inferring the
// shape:
//
//	m, err := matexpr.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//
// Implementation:
//   - Stage 1: infer rows = len(rows), cols = len(rows[0]); an empty
//     literal yields a legal 0×0 matrix.
//   - Stage 2: validate every inner row has exactly cols elements.
//   - Stage 3: copy rows into a fresh flat row-major buffer.
//
// Errors:
//   - ErrRaggedRows when inner rows differ in length.
//
// Complexity: O(r*c) time and memory.
func FromRows[T Num](rows [][]T) (*Dense[T], error) {
	r := len(rows)
	if r == 0 {
		// Empty literal: legal 0×0 matrix.
		return &Dense[T]{}, nil
	}
	c := len(rows[0])

	buf := make([]T, r*c)
	var i int
	for i = 0; i < r; i++ { // fixed row order
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFromRows, i, len(rows[i]), c, ErrRaggedRows)
		}
		copy(buf[i*c:(i+1)*c], rows[i])
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the plain sentinel; public methods (At/Set) wrap it with
// coordinates and method context. Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range access; Dense is the leaf that enforces
// the bounds contract for the whole expression system (nodes simply
// propagate). Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// This is the only mutating entry point besides Apply; algebraic
// operations always produce fresh values. Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Max returns the maximum element under T's ordering.
//
// Implementation:
//   - Stage 1: reject 0-element matrices (ErrEmptyMatrix).
//   - Stage 2: single deterministic flat scan 0..n-1.
//
// Complexity: O(r*c) time, O(1) space.
func (m *Dense[T]) Max() (T, error) {
	if len(m.data) == 0 {
		var zero T
		return zero, fmt.Errorf("Dense.%s: %w", ctxMax, ErrEmptyMatrix)
	}

	best := m.data[0]
	for _, v := range m.data[1:] { // flat scan, fixed order
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Clone returns a deep copy (new buffer, same shape).
// Mutations of the clone never affect the original. Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data)) // allocate same length
	copy(cp, m.data)             // deep copy elements

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only visitor; stops early when f returns false. Deterministic
// i→j order, no allocations. Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Deterministic row-major order; no extra allocations. Keep transforms
// pure; avoid capturing external mutable state. Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate columns
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// String provides a readable bracketed row-wise dump for diagnostics.
// Not for hot paths; for the plain space-separated rendering contract
// see Fprint/Render. Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
