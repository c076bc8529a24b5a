// SPDX-License-Identifier: MIT
package strassen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/stretchr/testify/require"
)

// hide forces the At-based entry copy by hiding the concrete *Dense.
type hide struct{ matrix.Matrix }

func fromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// digits returns a deterministic n×n matrix of integers in [0, 9].
func digits(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.Create(n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, float64(rng.Intn(10))))
		}
	}

	return m
}

func requireSame(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.Equal(want, got)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%v\ngot:\n%v", want, got)
}

func requireRows(t testing.TB, want [][]float64, got *matrix.Dense) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, want, got.ToRows())
}
