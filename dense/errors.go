// SPDX-License-Identifier: MIT
// Package dense: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dense
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (Element misuse, bad option values).

package dense

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dense: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when declaring
// new errors; call sites that need context wrap them exactly once via
// fmt.Errorf("ctx: %w", ErrX) (validators and kernels already do).

var (
	// ErrZeroSize reports a requested shape with non-positive rows or columns.
	ErrZeroSize = errors.New("dense: rows and cols must be positive")

	// ErrSizeMismatch reports a flat element slice whose length differs from rows*cols.
	ErrSizeMismatch = errors.New("dense: element count does not match rows*cols")

	// ErrIncompatibleSizesAdd reports addition or subtraction operands of different shapes.
	ErrIncompatibleSizesAdd = errors.New("dense: addition requires operands of equal shape")

	// ErrIncompatibleSizesMultiply reports multiplication operands where left cols differ from right rows.
	ErrIncompatibleSizesMultiply = errors.New("dense: multiplication requires left cols equal to right rows")

	// ErrIndexOutOfRange reports a row or column index outside the matrix bounds.
	ErrIndexOutOfRange = errors.New("dense: index out of range")

	// ErrNonRectangular reports row slices of unequal length.
	ErrNonRectangular = errors.New("dense: all rows must have the same length")

	// ErrNilMatrix reports a nil *Matrix operand.
	ErrNilMatrix = errors.New("dense: nil matrix")
)
