// SPDX-License-Identifier: MIT
// Package dense: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or validation of the underlying kernels.
//   - Validation happens in the kernels; facades only compose or forward.

package dense

// NewZeros creates a rows-by-cols matrix of zero values. It is New under an
// intention-revealing name for call sites that pair it with NewIdentity.
func NewZeros[T Numeric](rows, cols int) (*Matrix[T], error) {
	return New[T](rows, cols)
}

// NewIdentity creates the n-by-n identity matrix: ones on the main diagonal,
// zeros elsewhere.
//
// Returns ErrZeroSize if n is not positive.
func NewIdentity[T Numeric](n int) (*Matrix[T], error) {
	m, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// ZerosLike creates a zero matrix with the same shape as m, convenient for
// preallocating results and accumulators.
//
// Returns ErrNilMatrix (wrapped) when m is nil and ErrZeroSize when m is
// empty.
func ZerosLike[T Numeric](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, denseErrorf(opZerosLike, err)
	}

	return New[T](m.rows, m.cols)
}

// Sum is an alias of Add for call sites that read better with noun naming.
func Sum[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias of Sub for call sites that read better with noun naming.
func Diff[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias of Mul for call sites that read better with noun naming.
func Product[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }
