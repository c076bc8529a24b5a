// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for precondition checks.
//  - Keep kernels minimal by delegating nil/shape/parity checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their op tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → Size → Parity).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateBinarySquare – Composite: Square(a) → Square(b) → same size.
// This is the operand contract of both multipliers.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func ValidateBinarySquare(a, b Matrix) error {
	if err := ValidateSquare(a); err != nil {
		return validatorErrorf("ValidateBinarySquare", err)
	}
	if err := ValidateSquare(b); err != nil {
		return validatorErrorf("ValidateBinarySquare", err)
	}
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateBinarySquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateEvenSquare – Composite: Square → even dimension n >= 2.
// This is the Split contract.
func ValidateEvenSquare(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateEvenSquare", err)
	}
	if n := m.Rows(); n < 2 || n%2 != 0 {
		return validatorErrorf("ValidateEvenSquare", ErrOddDimension)
	}

	return nil
}

// ValidatePowerOfTwo – Composite: Square → IsPowerOfTwo(n).
// Strassen entry points call it once; the recursion relies on the fact that
// halving a power of two stays a power of two down to 1.
func ValidatePowerOfTwo(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidatePowerOfTwo", err)
	}
	if !IsPowerOfTwo(m.Rows()) {
		return validatorErrorf("ValidatePowerOfTwo", fmt.Errorf("n=%d: %w", m.Rows(), ErrNotPowerOfTwo))
	}

	return nil
}

// IsPowerOfTwo reports whether n > 0 and n has exactly one set bit.
// 1 is a power of two (2⁰); 0 and negatives are not.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
