// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// TestIsPowerOfTwo covers the bit predicate at and around the boundaries.
func TestIsPowerOfTwo(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 1024, 1 << 30} {
		require.True(t, matrix.IsPowerOfTwo(n), "n=%d", n)
	}
	for _, n := range []int{-8, -1, 0, 3, 5, 6, 7, 12, 1000} {
		require.False(t, matrix.IsPowerOfTwo(n), "n=%d", n)
	}
}

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidatePowerOfTwo covers the Strassen entry precondition.
func TestValidatePowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"8x8", MustDense(t, 8, 8), nil},
		{"6x6", MustDense(t, 6, 6), matrix.ErrNotPowerOfTwo},
		{"2x4", MustDense(t, 2, 4), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidatePowerOfTwo(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, matrix.ErrInvalidArgument)
		})
	}
}

// TestValidateEvenSquare covers the Split precondition.
func TestValidateEvenSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateEvenSquare(MustDense(t, 2, 2)))
	require.NoError(t, matrix.ValidateEvenSquare(MustDense(t, 6, 6)))
	require.ErrorIs(t, matrix.ValidateEvenSquare(MustDense(t, 1, 1)), matrix.ErrOddDimension)
	require.ErrorIs(t, matrix.ValidateEvenSquare(MustDense(t, 5, 5)), matrix.ErrOddDimension)
	require.ErrorIs(t, matrix.ValidateEvenSquare(MustDense(t, 4, 2)), matrix.ErrNonSquare)
}
