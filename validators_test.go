// Package matexpr_test: unit tests for the centralized validators.
package matexpr_test

import (
	"testing"

	"github.com/katalvlaran/matexpr"
	"github.com/stretchr/testify/require"
)

// TestValidateExpr covers the nil / non-nil split.
func TestValidateExpr(t *testing.T) {
	require.ErrorIs(t, matexpr.ValidateExpr[int](nil), matexpr.ErrNilExpr)

	m, err := matexpr.Zeros[int](1, 1)
	require.NoError(t, err)
	require.NoError(t, matexpr.ValidateExpr[int](m))
}

// TestValidateSameShape covers row and column mismatches separately.
func TestValidateSameShape(t *testing.T) {
	a, err := matexpr.Zeros[int](2, 3)
	require.NoError(t, err)
	b, err := matexpr.Zeros[int](2, 3)
	require.NoError(t, err)
	rowsOff, err := matexpr.Zeros[int](3, 3)
	require.NoError(t, err)
	colsOff, err := matexpr.Zeros[int](2, 4)
	require.NoError(t, err)

	require.NoError(t, matexpr.ValidateSameShape[int](a, b))
	require.ErrorIs(t, matexpr.ValidateSameShape[int](a, rowsOff), matexpr.ErrDimensionMismatch)
	require.ErrorIs(t, matexpr.ValidateSameShape[int](a, colsOff), matexpr.ErrDimensionMismatch)
}

// TestValidateMulCompatible covers the shared-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	a, err := matexpr.Zeros[int](2, 3)
	require.NoError(t, err)
	good, err := matexpr.Zeros[int](3, 5)
	require.NoError(t, err)
	bad, err := matexpr.Zeros[int](2, 5)
	require.NoError(t, err)

	require.NoError(t, matexpr.ValidateMulCompatible[int](a, good))
	require.ErrorIs(t, matexpr.ValidateMulCompatible[int](a, bad), matexpr.ErrDimensionMismatch)
}
