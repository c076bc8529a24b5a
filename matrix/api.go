// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Avoid any logic duplication — each facade delegates to the kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// Sum is an alias for Add: element-wise a + b. Complexity: O(n²).
func Sum(a, b Matrix) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(n²).
func Diff(a, b Matrix) (*Dense, error) { return Sub(a, b) }

// Product is an alias for MultiplyStandard. Complexity: O(n³).
func Product(a, b Matrix) (*Dense, error) { return MultiplyStandard(a, b) }

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	id, err := Create(n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ZerosLike returns a new zero matrix with the same shape (and policy) as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newLike(m, m.Rows(), m.Cols()), nil
}

// AsDense returns m itself when it already is a *Dense, otherwise a *Dense
// copy read through At. The copy keeps the default numeric policy but is
// filled directly, so non-finite values coming from m are preserved.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	rows, cols := m.Rows(), m.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("AsDense", ErrInvalidDimensions)
	}
	out := newLike(m, rows, cols)

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("AsDense", err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
