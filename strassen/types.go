// Package strassen defines the diagnostic trace and the recursion counters.
package strassen

import (
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/strassen/matrix"
)

// ProductCount is the number of block products per Strassen level.
const ProductCount = 7

// Trace is the top-level snapshot of one Strassen step.
//
// Fields:
//   - M   — the seven intermediate products; M[0] is M1, …, M[6] is M7.
//   - C11, C12, C21, C22 — the result quadrants assembled from M.
//
// Only the outermost level is captured; deeper levels run through the plain
// recursion. Joining the quadrants yields exactly the returned product.
type Trace struct {
	M   [ProductCount]*matrix.Dense
	C11 *matrix.Dense
	C12 *matrix.Dense
	C21 *matrix.Dense
	C22 *matrix.Dense
}

// Product returns Mk for k in 1..7 (1-based, as in the formulas).
func (t *Trace) Product(k int) (*matrix.Dense, error) {
	if k < 1 || k > ProductCount {
		return nil, fmt.Errorf("strassen: Trace.Product(%d): %w", k, matrix.ErrOutOfRange)
	}

	return t.M[k-1], nil
}

// Quadrants returns C11..C22 as a matrix.Quadrants value (A11 holds C11, …).
func (t *Trace) Quadrants() matrix.Quadrants {
	return matrix.Quadrants{A11: t.C11, A12: t.C12, A21: t.C21, A22: t.C22}
}

// Stats accumulates recursion counters. The zero value is ready to use.
// Stats must not be copied after first use.
type Stats struct {
	levels        atomic.Int64
	standardCalls atomic.Int64
	scalarMults   atomic.Int64
}

// Levels returns the number of Strassen steps taken (split → 7 products → join).
func (s *Stats) Levels() int64 { return s.levels.Load() }

// StandardCalls returns how many blocks were handed to the triple loop.
func (s *Stats) StandardCalls() int64 { return s.standardCalls.Load() }

// ScalarMultiplications returns the scalar products performed by those calls.
func (s *Stats) ScalarMultiplications() int64 { return s.scalarMults.Load() }

// Reset zeroes every counter.
func (s *Stats) Reset() {
	s.levels.Store(0)
	s.standardCalls.Store(0)
	s.scalarMults.Store(0)
}

func (s *Stats) level() {
	if s != nil {
		s.levels.Add(1)
	}
}

func (s *Stats) standard(n int) {
	if s != nil {
		s.standardCalls.Add(1)
		s.scalarMults.Add(int64(n) * int64(n) * int64(n))
	}
}

// ScalarMultiplications returns the number of scalar products Multiply
// performs for an n×n input when blocks of size <= threshold use the triple
// loop: 7^L · t³, where L is the number of halvings until n <= threshold and
// t the block size reached. n must be a power of two; n < 1 yields 0.
//
// With threshold 1 this is 7^log2(n) = n^log2(7), versus n³ for the triple loop.
func ScalarMultiplications(n, threshold int) int64 {
	if n < 1 {
		return 0
	}
	if threshold < 1 {
		threshold = 1
	}
	var count int64 = 1
	for n > threshold && n > 1 {
		count *= ProductCount
		n /= 2
	}
	cube := int64(n) * int64(n) * int64(n)

	return count * cube
}
