// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
package matrix

// Matrix represents a two-dimensional array of float64 values.
//
// The kernels in this package treat every Matrix as an immutable value: they
// read operands through this interface and always allocate a fresh *Dense for
// the result.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Quadrants is the four-way partition of an even-sized square matrix:
//
//	| A11 | A12 |
//	|-----+-----|
//	| A21 | A22 |
//
// Every block is (n/2)×(n/2). Split and Join convert between a matrix and
// its Quadrants and are exact inverses of each other.
type Quadrants struct {
	A11 *Dense // top-left
	A12 *Dense // top-right
	A21 *Dense // bottom-left
	A22 *Dense // bottom-right
}

// Join reassembles the quadrants into a single matrix.
// See the package-level Join for the contract.
func (q Quadrants) Join() (*Dense, error) {
	return Join(q.A11, q.A12, q.A21, q.A22)
}
