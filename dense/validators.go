// SPDX-License-Identifier: MIT
// Package: dense
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels and facades minimal by delegating nil/shape checks here.
//  - Tag every failure with the validator name so wrapped errors read as a
//    call chain, while errors.Is still matches the underlying sentinel.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package dense

import "fmt"

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil matrix pointer.
//
// Returns ErrNilMatrix (wrapped) when m is nil, nil otherwise.
func ValidateNotNil[T Numeric](m *Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSameShape rejects operands whose shapes differ.
// Both operands must be non-nil; compose with ValidateNotNil or use
// ValidateBinarySameShape for the combined check.
//
// Returns ErrIncompatibleSizesAdd (wrapped) on the first differing dimension.
func ValidateSameShape[T Numeric](a, b *Matrix[T]) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrIncompatibleSizesAdd)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrIncompatibleSizesAdd)
	}

	return nil
}

// ValidateBinarySameShape is the canonical guard for element-wise binary
// kernels: both operands non-nil and of identical shape.
//
// Returns ErrNilMatrix or ErrIncompatibleSizesAdd (wrapped) on failure.
func ValidateBinarySameShape[T Numeric](a, b *Matrix[T]) error {
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

// ValidateMulCompatible is the canonical guard for matrix multiplication:
// both operands non-nil and the inner dimensions aligned (a.Cols == b.Rows).
//
// Returns ErrNilMatrix or ErrIncompatibleSizesMultiply (wrapped) on failure.
func ValidateMulCompatible[T Numeric](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrIncompatibleSizesMultiply)
	}

	return nil
}
