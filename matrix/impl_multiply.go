// SPDX-License-Identifier: MIT

package matrix

// ZeroSum is the initial accumulator of every dot product.
const ZeroSum = 0.0

// MultiplyStandard computes C = A × B with the classical triple loop.
//
//	C[i][j] = Σ_k A[i][k] * B[k][j],  i, j, k ∈ [0, n)
//
// Implementation:
//   - Stage 1: ValidateBinarySquare(a, b).
//   - Stage 2: for each (i, j) accumulate from ZeroSum over k in ascending order.
//     *Dense operands use flat row/column strides; other Matrix values use At.
//
// Behavior highlights:
//   - The accumulation order is fixed (i→j→k, sum starting at 0.0) so that the
//     fast path, the fallback and the Strassen base case round identically.
//   - No zero-skipping: 0·Inf must still yield NaN.
//   - At n == 1 this is a single scalar product, which is the Strassen base case.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func MultiplyStandard(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySquare(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	n := a.Rows()
	res := newLike(a, n, n)
	var (
		i, j, k int
		sum     float64
	)

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA []float64
			for i = 0; i < n; i++ {
				rowA = da.data[i*n : (i+1)*n]
				for j = 0; j < n; j++ {
					sum = ZeroSum
					for k = 0; k < n; k++ {
						sum += rowA[k] * db.data[k*n+j]
					}
					res.data[i*n+j] = sum
				}
			}

			return res, nil
		}
	}

	var (
		av, bv float64
		err    error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = ZeroSum
			for k = 0; k < n; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMultiply, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMultiply, err)
				}
				sum += av * bv
			}
			res.data[i*n+j] = sum
		}
	}

	return res, nil
}

// Equal reports whether a and b have identical shapes and exactly equal
// elements. There is no tolerance: this is the check used to compare the
// standard and Strassen products. NaN is never equal to anything.
//
// Errors:
//   - ErrNilMatrix for nil operands. A shape difference is (false, nil).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, nil
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx, v := range da.data {
				if v != db.data[idx] {
					return false, nil
				}
			}

			return true, nil
		}
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opEqual, err)
			}
			if av != bv {
				return false, nil
			}
		}
	}

	return true, nil
}
