// Package dense construction forms. Every constructor allocates exactly one
// flat row-major buffer and copies caller-supplied data, so the returned
// matrix never aliases its inputs.

package dense

// New creates a rows-by-cols matrix with every element set to the zero value
// of T.
//
// Returns ErrZeroSize if rows or cols is not positive.
// Complexity: O(rows*cols) for the zeroed allocation.
func New[T Numeric](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrZeroSize
	}

	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// NewFilled creates a rows-by-cols matrix with every element set to fill.
//
// Returns ErrZeroSize if rows or cols is not positive.
func NewFilled[T Numeric](rows, cols int, fill T) (*Matrix[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = fill
	}

	return m, nil
}

// NewDiagonal creates a square len(diag)-by-len(diag) matrix carrying diag on
// the main diagonal and zeros everywhere else.
//
// Returns ErrZeroSize if diag is empty.
func NewDiagonal[T Numeric](diag []T) (*Matrix[T], error) {
	n := len(diag)
	m, err := New[T](n, n) // n == 0 fails shape validation
	if err != nil {
		return nil, err
	}
	for i, v := range diag {
		m.data[i*n+i] = v
	}

	return m, nil
}

// NewFromSlice creates a rows-by-cols matrix initialized from elems, read in
// row-major order. The slice is copied; the matrix never aliases it.
//
// Returns ErrZeroSize if rows or cols is not positive, and ErrSizeMismatch
// if len(elems) differs from rows*cols.
func NewFromSlice[T Numeric](rows, cols int, elems []T) (*Matrix[T], error) {
	// 1) Validate the shape before looking at the payload.
	if rows <= 0 || cols <= 0 {
		return nil, ErrZeroSize
	}
	// 2) The payload must cover the shape exactly, no truncation or padding.
	if len(elems) != rows*cols {
		return nil, ErrSizeMismatch
	}
	// 3) Allocate and copy.
	m := &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
	copy(m.data, elems)

	return m, nil
}

// NewFromRows creates a matrix from a slice of row slices. Each inner slice
// becomes one row; all rows are copied.
//
// Returns ErrZeroSize if rows is empty or its first row is empty, and
// ErrNonRectangular if the rows have differing lengths.
func NewFromRows[T Numeric](rows [][]T) (*Matrix[T], error) {
	// 1) The shape is derived from the outer length and the first row.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrZeroSize
	}
	r, c := len(rows), len(rows[0])
	// 2) Every remaining row must match the first one.
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, ErrNonRectangular
		}
	}
	// 3) Allocate once and copy row by row.
	m := &Matrix[T]{rows: r, cols: c, data: make([]T, r*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}
