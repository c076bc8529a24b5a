// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/katalvlaran/strassen/fill"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

// DefaultSizes are the matrix sizes timed when Config.Sizes is empty.
var DefaultSizes = []int{2, 4, 8, 16, 32}

const (
	DefaultSeed    int64 = 1
	DefaultRepeats       = 1
)

// ErrNoSizes is returned when there is nothing to measure.
var ErrNoSizes = errors.New("bench: no sizes to measure")

// Func is a square-matrix multiplier under test.
type Func func(a, b matrix.Matrix) (*matrix.Dense, error)

// Timing is the measurement for one size.
type Timing struct {
	N        int
	Standard time.Duration
	Strassen time.Duration
	Match    bool // both products were identical; not persisted in CSV
}

// Speedup returns Standard/Strassen; above 1 Strassen was faster.
// A zero Strassen duration yields 0.
func (t Timing) Speedup() float64 {
	if t.Strassen <= 0 {
		return 0
	}

	return float64(t.Standard) / float64(t.Strassen)
}

// Config controls a benchmark run.
type Config struct {
	Sizes   []int
	Seed    int64
	Repeats int
	Options []strassen.Option // forwarded to strassen.Multiply
}

// DefaultConfig returns the default benchmark configuration.
func DefaultConfig() Config {
	sizes := make([]int, len(DefaultSizes))
	copy(sizes, DefaultSizes)

	return Config{
		Sizes:   sizes,
		Seed:    DefaultSeed,
		Repeats: DefaultRepeats,
	}
}

// Run measures every size in cfg.Sizes in order. All sizes are validated
// before any work starts. Cancellation is checked between sizes; the timings
// gathered so far are returned together with ctx.Err().
// logger may be nil.
func Run(ctx context.Context, cfg Config, logger *log.Logger) ([]Timing, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}
	for _, n := range cfg.Sizes {
		if !matrix.IsPowerOfTwo(n) {
			return nil, fmt.Errorf("bench: size %d: %w", n, matrix.ErrNotPowerOfTwo)
		}
	}
	repeats := cfg.Repeats
	if repeats < 1 {
		repeats = DefaultRepeats
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	strassenFn := func(a, b matrix.Matrix) (*matrix.Dense, error) {
		return strassen.Multiply(a, b, cfg.Options...)
	}

	timings := make([]Timing, 0, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return timings, err
		}
		logger.Printf("size n = %d", n)

		a, err := fill.RandomSquare(n, rng)
		if err != nil {
			return timings, err
		}
		b, err := fill.RandomSquare(n, rng)
		if err != nil {
			return timings, err
		}

		tm, err := measurePair(n, repeats, a, b, strassenFn)
		if err != nil {
			return timings, err
		}
		logger.Printf("  standard: %v", tm.Standard)
		logger.Printf("  strassen: %v", tm.Strassen)
		if !tm.Match {
			logger.Printf("  WARNING: results differ for n = %d", n)
		}
		timings = append(timings, tm)
	}

	return timings, nil
}

func measurePair(n, repeats int, a, b *matrix.Dense, strassenFn Func) (Timing, error) {
	tm := Timing{N: n}
	var (
		std, fast *matrix.Dense
		d         time.Duration
		err       error
	)
	for r := 0; r < repeats; r++ {
		if d, std, err = Measure(matrix.MultiplyStandard, a, b); err != nil {
			return tm, fmt.Errorf("bench: standard n=%d: %w", n, err)
		}
		tm.Standard += d
		if d, fast, err = Measure(strassenFn, a, b); err != nil {
			return tm, fmt.Errorf("bench: strassen n=%d: %w", n, err)
		}
		tm.Strassen += d
	}
	tm.Standard /= time.Duration(repeats)
	tm.Strassen /= time.Duration(repeats)

	if tm.Match, err = matrix.Equal(std, fast); err != nil {
		return tm, fmt.Errorf("bench: compare n=%d: %w", n, err)
	}

	return tm, nil
}

// Measure runs fn(a, b) once and returns its wall-clock duration and result.
func Measure(fn Func, a, b matrix.Matrix) (time.Duration, *matrix.Dense, error) {
	start := time.Now()
	c, err := fn(a, b)
	elapsed := time.Since(start)

	return elapsed, c, err
}
