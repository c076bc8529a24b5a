// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the strassen entry points. Algorithms MUST return these
// sentinels (optionally wrapped with an op tag) and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Every
// precondition sentinel wraps ErrInvalidArgument, so callers that only care
// about "the caller passed something unusable" match that single root:
//
//	errors.Is(err, matrix.ErrInvalidArgument)
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (square) -> dimension mismatch -> parity/power-of-two.

var (
	// ErrInvalidArgument is the root of the precondition taxonomy.
	ErrInvalidArgument = errors.New("matrix: invalid argument")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = argError("dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add/Sub on different shapes, Join on unequal quadrants, or
	// MultiplyStandard on different sizes. Never silently padded or truncated.
	ErrDimensionMismatch = argError("dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = argError("matrix is not square")

	// ErrOddDimension signals a Split request on an odd (or unit) dimension.
	ErrOddDimension = argError("dimension is not even")

	// ErrNotPowerOfTwo signals that the Strassen path got a size that cannot
	// be halved down to 1.
	ErrNotPowerOfTwo = argError("dimension is not a power of two")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = argError("nil matrix")
)

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was written while the numeric
	// policy requires finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// argError builds a precondition sentinel that still matches ErrInvalidArgument.
func argError(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
