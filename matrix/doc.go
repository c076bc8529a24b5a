// Package matrix provides the dense square-matrix value type and the block
// algebra that Strassen's method is built from.
//
// The matrix package provides:
//
//   - Dense: a row-major n×n (or r×c) grid of float64 with safe At/Set.
//   - Block algebra: Add, Sub, Split (four quadrants) and Join (inverse of Split).
//   - MultiplyStandard: the classical O(n³) triple loop, also the base case of
//     the recursive multiplier in package strassen.
//   - IsPowerOfTwo and validators encoding the structural preconditions.
//   - Equal: exact element-wise comparison (no tolerance).
//
// Every operation treats its operands as immutable values and returns a
// freshly allocated *Dense. Precondition violations are reported as sentinel
// errors that all match ErrInvalidArgument via errors.Is.
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.MultiplyStandard(a, b) // [[19, 22], [43, 50]]
//
// See the examples in this package and in package strassen for usage patterns.
package matrix
