// Package dense implements a dynamically sized, dense matrix container over
// the built-in numeric types, stored row-major in a single flat buffer.
//
// The dense package provides:
//
//   - Matrix[T], a generic container where element (r,c) lives at the flat
//     offset r*cols+c, giving O(1) access and cache-friendly row scans.
//
//   - Construction forms for the common shapes: New (zero-filled), NewFilled,
//     NewDiagonal, NewFromSlice (row-major copy), NewFromRows, plus the
//     NewZeros, NewIdentity and ZerosLike facades.
//
//   - Explicit ownership transfer: Clone and CopyFrom deep-copy the buffer;
//     Take and MoveFrom hand it over without copying and leave the source
//     empty (a regular 0-by-0 matrix, safe to keep using).
//
//   - Arithmetic kernels as pure functions producing fresh results: Add, Sub,
//     Neg, Mul, Scale, ScaleBy and the Sum/Diff/Product aliases, with
//     AddInPlace and SubInPlace as the compound assignment forms.
//
//   - Textual rendering through Fprint and String: every row prints as
//     "( a b c )" with elements right-justified to a configurable width
//     (WithOutputWidth per call, SetOutputWidth package-wide), and a blank
//     line separates consecutive matrices on a stream.
//
// Failure modes are sentinel errors: ErrZeroSize, ErrSizeMismatch,
// ErrIncompatibleSizesAdd, ErrIncompatibleSizesMultiply, ErrIndexOutOfRange,
// ErrNonRectangular and ErrNilMatrix. Operations wrap them with call context,
// so match with errors.Is rather than string comparison. The single unchecked
// accessor is Element; it skips bounds validation, so out-of-contract indices
// either alias another element or panic at the slice access.
//
// Concurrency: a Matrix carries no synchronization. Any number of goroutines
// may read one concurrently; a writer requires external locking. The
// package-wide output width is plain state too, meant to be set once during
// process setup.
//
// Complexity: element access is O(1); Add, Sub, Neg, Scale run in O(rows*cols);
// Mul runs in O(a.Rows * a.Cols * b.Cols) with a fixed row-major loop order.
package dense
