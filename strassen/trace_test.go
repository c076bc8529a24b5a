// SPDX-License-Identifier: MIT
package strassen_test

import (
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
	"github.com/stretchr/testify/require"
)

func TestMultiplyWithTrace_2x2(t *testing.T) {
	t.Parallel()

	A := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	B := fromRows(t, [][]float64{{5, 6}, {7, 8}})

	C, tr, err := strassen.MultiplyWithTrace(A, B)
	require.NoError(t, err)
	require.NotNil(t, tr)
	requireRows(t, [][]float64{{19, 22}, {43, 50}}, C)

	// M1 = (1+4)(5+8), M2 = (3+4)5, M3 = 1(6-8), M4 = 4(7-5),
	// M5 = (1+2)8, M6 = (3-1)(5+6), M7 = (2-4)(7+8).
	wantM := []float64{65, 35, -2, 8, 24, 22, -30}
	for k, want := range wantM {
		m, err := tr.Product(k + 1)
		require.NoError(t, err)
		requireRows(t, [][]float64{{want}}, m)
		require.Same(t, tr.M[k], m)
	}
	requireRows(t, [][]float64{{19}}, tr.C11)
	requireRows(t, [][]float64{{22}}, tr.C12)
	requireRows(t, [][]float64{{43}}, tr.C21)
	requireRows(t, [][]float64{{50}}, tr.C22)

	_, err = tr.Product(0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = tr.Product(8)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestMultiplyWithTrace_QuadrantsJoinToResult(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 16} {
		A := digits(t, n, int64(3*n))
		B := digits(t, n, int64(3*n+1))

		plain, err := strassen.Multiply(A, B)
		require.NoError(t, err)

		C, tr, err := strassen.MultiplyWithTrace(A, B, strassen.WithParallelDepth(1))
		require.NoError(t, err)
		requireSame(t, plain, C)

		for k := range tr.M {
			require.Equal(t, n/2, tr.M[k].Size(), "M%d", k+1)
		}
		joined, err := tr.Quadrants().Join()
		require.NoError(t, err)
		requireSame(t, C, joined)
	}
}

func TestMultiplyWithTrace_BaseCaseHasNoTrace(t *testing.T) {
	t.Parallel()

	C, tr, err := strassen.MultiplyWithTrace(fromRows(t, [][]float64{{6}}), fromRows(t, [][]float64{{7}}))
	require.NoError(t, err)
	require.Nil(t, tr)
	requireRows(t, [][]float64{{42}}, C)
}

func TestMultiplyWithTrace_ThresholdStillSplitsTop(t *testing.T) {
	t.Parallel()

	var st strassen.Stats
	A := digits(t, 4, 5)
	B := digits(t, 4, 6)
	C, tr, err := strassen.MultiplyWithTrace(A, B, strassen.WithThreshold(64), strassen.WithStats(&st))
	require.NoError(t, err)
	require.NotNil(t, tr)
	require.EqualValues(t, 1, st.Levels())
	require.EqualValues(t, 7, st.StandardCalls())

	want, err := matrix.MultiplyStandard(A, B)
	require.NoError(t, err)
	requireSame(t, want, C)
}
