// Package dense element access and ownership transfer.
// At/Set are the checked accessors and report ErrIndexOutOfRange instead of
// panicking; Element is the single unchecked escape hatch. Clone/CopyFrom
// deep-copy, Take/MoveFrom hand the buffer over and drain the source.

package dense

import "fmt"

// Method tags used when wrapping element-access errors with coordinates.
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// accessErrorf wraps err with the failing method and the offending coordinates.
func accessErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// indexOf maps (row, col) onto the flat buffer offset, bounds-checked.
// Returns the plain ErrIndexOutOfRange sentinel; callers add context.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfRange
	}

	return row*m.cols + col, nil
}

// At returns the element at (row, col).
//
// Returns the zero value of T and ErrIndexOutOfRange (wrapped with the
// coordinates) when the index lies outside the matrix.
func (m *Matrix[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, accessErrorf(ctxAt, row, col, err)
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
//
// Returns ErrIndexOutOfRange (wrapped with the coordinates) when the index
// lies outside the matrix; the matrix is left untouched in that case.
func (m *Matrix[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return accessErrorf(ctxSet, row, col, err)
	}
	m.data[idx] = v

	return nil
}

// Element returns a pointer to the element at (row, col) without any bounds
// checking, suitable for hot loops that already guarantee their indices:
//
//	*m.Element(r, c) = v  // write
//	v := *m.Element(r, c) // read
//
// Out-of-contract indices either alias a different element (the flat offset
// still lands inside the buffer) or make the runtime panic. Use At/Set when
// the indices are not locally provable.
func (m *Matrix[T]) Element(row, col int) *T {
	return &m.data[row*m.cols+col]
}

// Clone returns a deep copy of m. The copy owns a fresh buffer, so later
// writes to either matrix never show through the other.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{rows: m.rows, cols: m.cols}
	if len(m.data) > 0 {
		c.data = make([]T, len(m.data))
		copy(c.data, m.data)
	}

	return c
}

// CopyFrom replaces m's contents with a deep copy of src, releasing m's old
// buffer. Copying a matrix into itself is a no-op. Copying from an empty
// source leaves m empty.
//
// Returns ErrNilMatrix (wrapped) when src is nil; m is left untouched then.
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return denseErrorf(opCopyFrom, err)
	}
	if m == src {
		return nil
	}
	if src.IsEmpty() {
		m.rows, m.cols, m.data = 0, 0, nil
		return nil
	}

	buf := make([]T, len(src.data))
	copy(buf, src.data)
	m.rows, m.cols, m.data = src.rows, src.cols, buf

	return nil
}

// Take transfers ownership of m's buffer to a fresh matrix and returns it,
// leaving m empty (IsEmpty reports true afterwards). No elements are copied.
// Taking from an already empty matrix yields another empty matrix.
func (m *Matrix[T]) Take() *Matrix[T] {
	t := &Matrix[T]{rows: m.rows, cols: m.cols, data: m.data}
	m.rows, m.cols, m.data = 0, 0, nil

	return t
}

// MoveFrom transfers src's buffer into m without copying elements, releasing
// m's old buffer and leaving src empty. Moving a matrix into itself is a
// no-op and keeps its contents.
//
// Returns ErrNilMatrix (wrapped) when src is nil; m is left untouched then.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) error {
	if err := ValidateNotNil(src); err != nil {
		return denseErrorf(opMoveFrom, err)
	}
	if m == src {
		return nil
	}
	m.rows, m.cols, m.data = src.rows, src.cols, src.data
	src.rows, src.cols, src.data = 0, 0, nil

	return nil
}

// AddInPlace sets m to the element-wise sum m + b, keeping b untouched.
//
// Returns ErrNilMatrix or ErrIncompatibleSizesAdd (wrapped) on invalid
// operands; m is left untouched then.
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	res, err := Add(m, b)
	if err != nil {
		return denseErrorf(opAddInPlace, err)
	}
	*m = *res // install the freshly computed sum; res never aliases b

	return nil
}

// SubInPlace sets m to the element-wise difference m - b, keeping b untouched.
//
// Returns ErrNilMatrix or ErrIncompatibleSizesAdd (wrapped) on invalid
// operands; m is left untouched then.
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) error {
	res, err := Sub(m, b)
	if err != nil {
		return denseErrorf(opSubInPlace, err)
	}
	*m = *res

	return nil
}
