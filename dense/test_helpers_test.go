// SPDX-License-Identifier: MIT
// Package dense_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and assertions shared across the
//     dense tests, keeping construction noise out of the scenarios.
//   - Helpers fail the calling test immediately on unexpected errors, so the
//     scenarios only assert the behavior under test.

package dense_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmatrix/dense"
)

// MustNew builds a zero-filled rows-by-cols matrix or fails the test.
func MustNew[T dense.Numeric](t *testing.T, rows, cols int) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.New[T](rows, cols)
	require.NoError(t, err)

	return m
}

// MustFilled builds a rows-by-cols matrix filled with v or fails the test.
func MustFilled[T dense.Numeric](t *testing.T, rows, cols int, v T) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.NewFilled(rows, cols, v)
	require.NoError(t, err)

	return m
}

// MustDiagonal builds a square matrix carrying diag or fails the test.
func MustDiagonal[T dense.Numeric](t *testing.T, diag []T) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.NewDiagonal(diag)
	require.NoError(t, err)

	return m
}

// MustFromSlice builds a rows-by-cols matrix from a row-major slice or fails
// the test.
func MustFromSlice[T dense.Numeric](t *testing.T, rows, cols int, elems []T) *dense.Matrix[T] {
	t.Helper()
	m, err := dense.NewFromSlice(rows, cols, elems)
	require.NoError(t, err)

	return m
}

// MustAt reads one element through the checked accessor or fails the test.
func MustAt[T dense.Numeric](t *testing.T, m *dense.Matrix[T], row, col int) T {
	t.Helper()
	v, err := m.At(row, col)
	require.NoError(t, err)

	return v
}

// CompareExact asserts got matches want in shape and in every element under
// the == operator. All fixtures use exactly representable values, so exact
// comparison is intended even for floating-point elements.
func CompareExact[T dense.Numeric](t *testing.T, want, got *dense.Matrix[T]) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "column count")
	for r := 0; r < want.Rows(); r++ {
		for c := 0; c < want.Cols(); c++ {
			require.Equal(t, MustAt(t, want, r, c), MustAt(t, got, r, c), "element (%d,%d)", r, c)
		}
	}
}

// ExpectPanic runs fn and asserts it panics with exactly wantMsg.
func ExpectPanic(t *testing.T, wantMsg string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		require.Equal(t, wantMsg, r)
	}()
	fn()
}

// errSink is the error every errWriter write reports.
var errSink = errors.New("sink closed")

// errWriter fails every Write, exercising the writer error path of Fprint.
type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errSink }
