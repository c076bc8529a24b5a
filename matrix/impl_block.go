// SPDX-License-Identifier: MIT
// Package matrix: block algebra.
//
// Purpose:
//   - Element-wise Add/Sub of equally shaped operands.
//   - Split of an even square matrix into its four quadrants and the inverse Join.
//
// Every kernel validates through validators.go, allocates exactly one fresh
// result per output block and never mutates its operands. *Dense operands take
// a flat-slice fast path; any other Matrix goes through At with a fixed i→j order.
// Both paths produce bit-identical results.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opSplit    = "Split"
	opJoin     = "Join"
	opMultiply = "MultiplyStandard"
	opEqual    = "Equal"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation, allocation and the fast path.
// sign=-1 is exact: a + (-1*b) and a - b round identically.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res := newLike(a, rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, err)
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
// Sub(Add(A, B), B) == A holds exactly for integer-valued inputs.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Split partitions an even-sized square matrix into four (n/2)×(n/2) quadrants.
//
// Implementation:
//   - Stage 1: ValidateEvenSquare(a).
//   - Stage 2: allocate the four blocks; copy row segments (fast path) or
//     read through At (fallback).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrOddDimension (n odd or n < 2).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Split(a Matrix) (Quadrants, error) {
	if err := ValidateEvenSquare(a); err != nil {
		return Quadrants{}, matrixErrorf(opSplit, err)
	}
	k := a.Rows() / 2
	q := Quadrants{
		A11: newLike(a, k, k),
		A12: newLike(a, k, k),
		A21: newLike(a, k, k),
		A22: newLike(a, k, k),
	}

	var i, j int
	if d, ok := a.(*Dense); ok {
		n := d.c
		for i = 0; i < k; i++ {
			top := d.data[i*n : (i+1)*n]
			bottom := d.data[(i+k)*n : (i+k+1)*n]
			copy(q.A11.data[i*k:(i+1)*k], top[:k])
			copy(q.A12.data[i*k:(i+1)*k], top[k:])
			copy(q.A21.data[i*k:(i+1)*k], bottom[:k])
			copy(q.A22.data[i*k:(i+1)*k], bottom[k:])
		}

		return q, nil
	}

	blocks := [4]struct {
		dst    *Dense
		r0, c0 int
	}{
		{q.A11, 0, 0},
		{q.A12, 0, k},
		{q.A21, k, 0},
		{q.A22, k, k},
	}
	var (
		v   float64
		err error
	)
	for _, blk := range blocks {
		for i = 0; i < k; i++ {
			for j = 0; j < k; j++ {
				if v, err = a.At(blk.r0+i, blk.c0+j); err != nil {
					return Quadrants{}, matrixErrorf(opSplit, err)
				}
				blk.dst.data[i*k+j] = v
			}
		}
	}

	return q, nil
}

// Join assembles four equally sized square blocks into one (2k)×(2k) matrix:
//
//	| c11 | c12 |
//	| c21 | c22 |
//
// The result carries the numeric policy of c11.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (any block), ErrDimensionMismatch (unequal k).
//
// Complexity:
//   - Time O(k²), Space O(k²).
func Join(c11, c12, c21, c22 Matrix) (*Dense, error) {
	parts := [4]Matrix{c11, c12, c21, c22}
	for idx, p := range parts {
		if err := ValidateSquare(p); err != nil {
			return nil, matrixErrorf(opJoin, fmt.Errorf("block %d: %w", idx, err))
		}
	}
	k := c11.Rows()
	for idx, p := range parts[1:] {
		if p.Rows() != k {
			return nil, matrixErrorf(opJoin, fmt.Errorf("block %d is %d×%d, want %d×%d: %w",
				idx+1, p.Rows(), p.Cols(), k, k, ErrDimensionMismatch))
		}
	}

	n := 2 * k
	res := newLike(c11, n, n)
	offsets := [4][2]int{{0, 0}, {0, k}, {k, 0}, {k, k}}

	var (
		i, j int
		v    float64
		err  error
	)
	for idx, p := range parts {
		r0, c0 := offsets[idx][0], offsets[idx][1]
		if d, ok := p.(*Dense); ok {
			for i = 0; i < k; i++ {
				copy(res.data[(r0+i)*n+c0:(r0+i)*n+c0+k], d.data[i*k:(i+1)*k])
			}
			continue
		}
		for i = 0; i < k; i++ {
			for j = 0; j < k; j++ {
				if v, err = p.At(i, j); err != nil {
					return nil, matrixErrorf(opJoin, err)
				}
				res.data[(r0+i)*n+c0+j] = v
			}
		}
	}

	return res, nil
}
