// SPDX-License-Identifier: MIT
package bench_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/strassen/bench"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	require.Equal(t, []int{2, 4, 8, 16, 32}, cfg.Sizes)
	require.Equal(t, bench.DefaultRepeats, cfg.Repeats)

	cfg.Sizes[0] = 64
	require.Equal(t, 2, bench.DefaultSizes[0], "DefaultConfig must copy DefaultSizes")
}

func TestRun(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	cfg := bench.Config{
		Sizes:   []int{1, 2, 4, 8},
		Seed:    7,
		Repeats: 2,
		Options: []strassen.Option{strassen.WithParallelDepth(1)},
	}
	timings, err := bench.Run(context.Background(), cfg, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Len(t, timings, 4)

	for i, tm := range timings {
		assert.Equal(t, cfg.Sizes[i], tm.N)
		assert.True(t, tm.Match, "n=%d", tm.N)
		assert.GreaterOrEqual(t, tm.Standard, time.Duration(0))
		assert.GreaterOrEqual(t, tm.Strassen, time.Duration(0))
	}
	assert.Contains(t, logs.String(), "size n = 8")
	assert.NotContains(t, logs.String(), "WARNING")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	_, err := bench.Run(context.Background(), bench.Config{}, nil)
	require.ErrorIs(t, err, bench.ErrNoSizes)

	_, err = bench.Run(context.Background(), bench.Config{Sizes: []int{2, 6}}, nil)
	require.ErrorIs(t, err, matrix.ErrNotPowerOfTwo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	timings, err := bench.Run(ctx, bench.DefaultConfig(), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, timings)
}

func TestMeasure(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	d, c, err := bench.Measure(matrix.MultiplyStandard, a, a)
	require.NoError(t, err)
	require.GreaterOrEqual(t, d, time.Duration(0))
	require.Equal(t, [][]float64{{7, 10}, {15, 22}}, c.ToRows())

	boom := errors.New("boom")
	_, _, err = bench.Measure(func(_, _ matrix.Matrix) (*matrix.Dense, error) { return nil, boom }, a, a)
	require.ErrorIs(t, err, boom)
}

func TestTiming_Speedup(t *testing.T) {
	assert.Equal(t, 2.0, bench.Timing{Standard: 4 * time.Millisecond, Strassen: 2 * time.Millisecond}.Speedup())
	assert.Zero(t, bench.Timing{Standard: time.Millisecond}.Speedup())
}

func TestCSV_RoundTrip(t *testing.T) {
	t.Parallel()

	in := []bench.Timing{
		{N: 2, Standard: 1500 * time.Microsecond, Strassen: 3 * time.Millisecond},
		{N: 4, Standard: 250 * time.Microsecond, Strassen: 1250 * time.Microsecond},
		{N: 8, Standard: 0, Strassen: 2 * time.Second},
	}
	var buf bytes.Buffer
	require.NoError(t, bench.WriteCSV(&buf, in))
	require.Equal(t, "n,standard_ms,strassen_ms\n2,1.5,3\n4,0.25,1.25\n8,0,2000\n", buf.String())

	out, err := bench.ReadCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestReadCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input string
		want        error
	}{
		{"empty", "", bench.ErrBadHeader},
		{"wrong header", "size,std,str\n", bench.ErrBadHeader},
		{"bad n", "n,standard_ms,strassen_ms\nx,1,2\n", bench.ErrBadRecord},
		{"bad ms", "n,standard_ms,strassen_ms\n2,abc,2\n", bench.ErrBadRecord},
		{"negative", "n,standard_ms,strassen_ms\n2,-1,2\n", bench.ErrBadRecord},
		{"short record", "n,standard_ms,strassen_ms\n2,1\n", bench.ErrBadRecord},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := bench.ReadCSV(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)
		})
	}

	timings, err := bench.ReadCSV(strings.NewReader("n,standard_ms,strassen_ms\n"))
	require.NoError(t, err)
	require.Empty(t, timings)
}
