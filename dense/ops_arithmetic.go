// SPDX-License-Identifier: MIT
// Package dense: canonical arithmetic kernels over Matrix values, covering
// element-wise addition and subtraction, negation, scalar scaling and matrix
// multiplication. All kernels perform strict fail-fast validation and return
// clear errors on shape mismatches.
//
// Purpose:
//   - Declare the operation tags and the single error-wrapping helper shared
//     by every kernel, so failures read as "Op: Validator: dense: ...".
//   - Keep loop orders fixed (row-major, i then k then j for Mul) so results
//     and performance stay deterministic across runs.
//
// Notes:
//   - Kernels allocate exactly one result matrix and never mutate operands;
//     the compound forms (AddInPlace, SubInPlace) live in methods.go.
//   - All kernels use the central validators and wrap via denseErrorf.

package dense

import "fmt"

// Operation tags used as the outermost error-wrapping context.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opNeg        = "Neg"
	opMul        = "Mul"
	opScale      = "Scale"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opCopyFrom   = "CopyFrom"
	opMoveFrom   = "MoveFrom"
	opFprint     = "Fprint"
	opZerosLike  = "ZerosLike"
)

// denseErrorf wraps an underlying error with the operation tag.
func denseErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// addSub is the shared element-wise kernel behind Add and Sub. The subtract
// flag is hoisted out of the loop so the hot path stays branch-free.
func addSub[T Numeric](a, b *Matrix[T], subtract bool, op string) (*Matrix[T], error) {
	// Validate both operands once, at the kernel boundary.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, denseErrorf(op, err)
	}

	// Allocate the result; an empty (0-by-0) pair fails here with ErrZeroSize.
	res, err := New[T](a.rows, a.cols)
	if err != nil {
		return nil, denseErrorf(op, err)
	}

	var idx int
	n := len(a.data)
	if subtract {
		for idx = 0; idx < n; idx++ {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
		return res, nil
	}
	for idx = 0; idx < n; idx++ {
		res.data[idx] = a.data[idx] + b.data[idx]
	}

	return res, nil
}

// Add returns the element-wise sum a + b as a fresh matrix.
//
// Returns ErrNilMatrix or ErrIncompatibleSizesAdd (wrapped) when the operands
// are nil or their shapes differ.
// Complexity: O(rows*cols).
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub returns the element-wise difference a - b as a fresh matrix.
//
// Returns ErrNilMatrix or ErrIncompatibleSizesAdd (wrapped) when the operands
// are nil or their shapes differ.
// Complexity: O(rows*cols).
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, true, opSub)
}

// Neg returns the element-wise negation -m as a fresh matrix. For unsigned
// element types the result follows Go's modular negation.
//
// Returns ErrNilMatrix (wrapped) when m is nil.
// Complexity: O(rows*cols).
func Neg[T Numeric](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opNeg, err)
	}
	res, err := New[T](m.rows, m.cols)
	if err != nil {
		return nil, denseErrorf(opNeg, err)
	}
	for idx := range m.data {
		res.data[idx] = -m.data[idx]
	}

	return res, nil
}

// Scale returns s * m, the matrix with every element multiplied by the
// scalar s, as a fresh matrix.
//
// Returns ErrNilMatrix (wrapped) when m is nil.
// Complexity: O(rows*cols).
func Scale[T Numeric](s T, m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opScale, err)
	}
	res, err := New[T](m.rows, m.cols)
	if err != nil {
		return nil, denseErrorf(opScale, err)
	}
	for idx := range m.data {
		res.data[idx] = s * m.data[idx]
	}

	return res, nil
}

// ScaleBy returns m * s. Scalar multiplication commutes over every Numeric
// type, so this delegates to Scale with the operands swapped.
func ScaleBy[T Numeric](m *Matrix[T], s T) (*Matrix[T], error) {
	return Scale(s, m)
}

// Mul returns the matrix product a x b as a fresh a.Rows-by-b.Cols matrix.
//
// The kernel walks i (rows of a), then k (the shared dimension), then j
// (columns of b), streaming both operands row-major. Every a(i,k)*b(k,j)
// term joins the sum, zero factors included, so NaN and infinities in
// either operand propagate into the product.
//
// Returns ErrNilMatrix or ErrIncompatibleSizesMultiply (wrapped) when the
// operands are nil or a.Cols differs from b.Rows.
// Complexity: O(a.Rows * a.Cols * b.Cols).
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, denseErrorf(opMul, err)
	}
	res, err := New[T](a.rows, b.cols)
	if err != nil {
		return nil, denseErrorf(opMul, err)
	}

	var (
		i, j, k          int // loop indices, predeclared for the hot path
		offA, offB, offR int // row offsets into the flat buffers
		av               T   // pinned a(i,k) while streaming row k of b
	)
	aRows, aCols, bCols := a.rows, a.cols, b.cols
	for i = 0; i < aRows; i++ {
		offA = i * aCols
		offR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[offA+k]
			offB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[offR+j] += av * b.data[offB+j]
			}
		}
	}

	return res, nil
}
