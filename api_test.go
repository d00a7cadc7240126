// Package matexpr_test: unit tests for the thin API facades.
package matexpr_test

import (
	"testing"

	"github.com/katalvlaran/matexpr"
	"github.com/stretchr/testify/require"
)

// TestZeros verifies the zero-filled constructor facade.
func TestZeros(t *testing.T) {
	m, err := matexpr.Zeros[int](2, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0}, denseCells(t, m))
}

// TestIdentity verifies ones on the diagonal, zeros elsewhere.
func TestIdentity(t *testing.T) {
	I, err := matexpr.Identity[float64](3)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, denseCells(t, I))
}

// TestIdentityIsMulNeutral checks A·I == A through the lazy product.
func TestIdentityIsMulNeutral(t *testing.T) {
	a, err := matexpr.FromRows([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	I, err := matexpr.Identity[int](2)
	require.NoError(t, err)

	prod, err := matexpr.Mul[int](a, I)
	require.NoError(t, err)
	m, err := matexpr.Eval(prod)
	require.NoError(t, err)
	require.Equal(t, denseCells(t, a), denseCells(t, m))
}

// TestZerosLike verifies shape copying from any expression.
func TestZerosLike(t *testing.T) {
	a, err := matexpr.Zeros[int](2, 3)
	require.NoError(t, err)
	b, err := matexpr.Zeros[int](2, 3)
	require.NoError(t, err)
	sum, err := matexpr.Add[int](a, b)
	require.NoError(t, err)

	z, err := matexpr.ZerosLike(sum) // shape comes from a lazy node
	require.NoError(t, err)
	require.Equal(t, 2, z.Rows())
	require.Equal(t, 3, z.Cols())

	_, err = matexpr.ZerosLike[int](nil)
	require.ErrorIs(t, err, matexpr.ErrNilExpr)
}
