// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/strassen/matrix"
)

const (
	opMultiply  = "Multiply"
	opTrace     = "MultiplyWithTrace"
	opTraceJoin = "MultiplyWithTrace.Join"
)

// strassenErrorf wraps err with the public operation name.
func strassenErrorf(tag string, err error) error {
	return fmt.Errorf("strassen.%s: %w", tag, err)
}

// Multiply returns A×B computed by Strassen's recursion.
//
// Preconditions (checked once, here):
//   - a and b non-nil, square, of equal size n;
//   - n a power of two (1, 2, 4, …).
//
// Blocks of size <= threshold (DefaultThreshold = 1) go to
// matrix.MultiplyStandard. For integer-valued inputs whose products and sums
// stay exactly representable the result equals matrix.MultiplyStandard(a, b)
// element for element. For general floating-point data the two differ by
// rounding only.
//
// Operands are never modified; *Dense operands are read in place, any other
// Matrix is copied once.
//
// Complexity: O(n^log2(7)) time, O(n²) extra memory.
func Multiply(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	da, db, err := prepare(a, b)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}
	s := solver{opts: gatherOptions(opts...)}

	c, err := s.multiply(da, db, 0)
	if err != nil {
		return nil, strassenErrorf(opMultiply, err)
	}

	return c, nil
}

// MultiplyWithTrace is Multiply that also returns the top-level Trace.
//
// For n >= 2 the outermost level is always a Strassen step, whatever the
// threshold, so the seven products are available; deeper levels follow the
// options as usual. For n = 1 no split happens and the trace is nil.
//
// Joining the trace quadrants reproduces the returned product exactly.
func MultiplyWithTrace(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, *Trace, error) {
	da, db, err := prepare(a, b)
	if err != nil {
		return nil, nil, strassenErrorf(opTrace, err)
	}
	s := solver{opts: gatherOptions(opts...)}

	if da.Size() < 2 {
		c, err := s.standard(da, db)
		if err != nil {
			return nil, nil, strassenErrorf(opTrace, err)
		}
		return c, nil, nil
	}

	tr, err := s.step(da, db, 0)
	if err != nil {
		return nil, nil, strassenErrorf(opTrace, err)
	}
	c, err := tr.Quadrants().Join()
	if err != nil {
		return nil, nil, strassenErrorf(opTraceJoin, err)
	}

	return c, tr, nil
}

// prepare validates the entry preconditions and unwraps both operands to *Dense.
func prepare(a, b matrix.Matrix) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateBinarySquare(a, b); err != nil {
		return nil, nil, err
	}
	if err := matrix.ValidatePowerOfTwo(a); err != nil {
		return nil, nil, err
	}
	da, err := matrix.AsDense(a)
	if err != nil {
		return nil, nil, err
	}
	db, err := matrix.AsDense(b)
	if err != nil {
		return nil, nil, err
	}

	return da, db, nil
}

// solver carries the options through one top-level call.
type solver struct {
	opts Options
}

// multiply is the recursion proper. depth is 0 at the top level.
func (s *solver) multiply(a, b *matrix.Dense, depth int) (*matrix.Dense, error) {
	if a.Size() <= s.opts.threshold {
		return s.standard(a, b)
	}
	tr, err := s.step(a, b, depth)
	if err != nil {
		return nil, err
	}

	return tr.Quadrants().Join()
}

func (s *solver) standard(a, b *matrix.Dense) (*matrix.Dense, error) {
	s.opts.stats.standard(a.Size())

	return matrix.MultiplyStandard(a, b)
}

// step performs one Strassen level: split, seven products, combine.
func (s *solver) step(a, b *matrix.Dense, depth int) (*Trace, error) {
	qa, err := matrix.Split(a)
	if err != nil {
		return nil, err
	}
	qb, err := matrix.Split(b)
	if err != nil {
		return nil, err
	}
	ops, err := operands(qa, qb)
	if err != nil {
		return nil, err
	}
	s.opts.stats.level()

	tr := &Trace{}
	if depth < s.opts.parallelDepth {
		err = s.productsParallel(&tr.M, ops, depth+1)
	} else {
		err = s.products(&tr.M, ops, depth+1)
	}
	if err != nil {
		return nil, err
	}

	tr.C11, tr.C12, tr.C21, tr.C22, err = combine(tr.M)
	if err != nil {
		return nil, err
	}

	return tr, nil
}

// products evaluates M1..M7 one after another; it stops at the first error.
func (s *solver) products(dst *[ProductCount]*matrix.Dense, ops [ProductCount]operand, depth int) error {
	var err error
	for k := range ops {
		if dst[k], err = s.multiply(ops[k].left, ops[k].right, depth); err != nil {
			return fmt.Errorf("M%d: %w", k+1, err)
		}
	}

	return nil
}

// productsParallel evaluates M1..M7 on separate goroutines. Each goroutine
// writes only its own slot. On failure the error of the lowest k is returned.
func (s *solver) productsParallel(dst *[ProductCount]*matrix.Dense, ops [ProductCount]operand, depth int) error {
	var (
		wg   sync.WaitGroup
		errs [ProductCount]error
	)
	for k := range ops {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			dst[k], errs[k] = s.multiply(ops[k].left, ops[k].right, depth)
		}(k)
	}
	wg.Wait()

	for k, err := range errs {
		if err != nil {
			return fmt.Errorf("M%d: %w", k+1, err)
		}
	}

	return nil
}
