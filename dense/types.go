// SPDX-License-Identifier: MIT

// Package dense: core container types.
// This file declares the Numeric constraint and the Matrix storage layout,
// plus the cheap shape queries. Errors, options and kernels live in dedicated
// files (errors.go, options.go, ops_arithmetic.go) per the package conventions.

package dense

// Numeric enumerates the built-in numeric kinds a Matrix can carry.
// Every member supports +, -, unary -, *, comparison with the untyped
// constant 0 and conversion from small integer constants, which is all
// the kernels rely on.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Matrix is a dense rows-by-cols container storing elements of T in one flat
// row-major buffer: element (r,c) lives at data[r*cols+c].
//
// The zero Matrix value and a source drained by Take or MoveFrom are both the
// empty state: zero rows, zero cols, nil buffer. Operations treat that state
// as a regular 0-by-0 matrix and never dereference the nil buffer.
type Matrix[T Numeric] struct {
	rows int // row count; 0 only in the empty state
	cols int // column count; 0 only in the empty state
	data []T // flat row-major buffer holding rows*cols elements
}

// Rows reports the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols reports the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// IsEmpty reports whether m is in the empty state (no rows and no columns),
// the state a source is left in after Take or MoveFrom.
func (m *Matrix[T]) IsEmpty() bool { return m.rows == 0 && m.cols == 0 }
