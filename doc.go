// Package dmatrix is your in-memory playground for dense, generic,
// dynamically-sized matrices: construction, element access and the full
// arithmetic operator set, with explicit value-type ownership.
//
// 🚀 What is dmatrix/dense?
//
//	A compact, pure-Go container library that brings together:
//		• Generic elements: Matrix[T] over every builtin numeric type
//		• Six construction forms: zeroed, filled, diagonal, flattened,
//		  nested rows, plus deep copy & buffer transfer
//		• Access two ways: checked At/Set with sentinel errors, and an
//		  unchecked Element fast path for hot loops
//		• Arithmetic: Add, Sub, Neg, Mul, scalar Scale as pure kernels,
//		  plus delegating in-place forms
//		• Formatting: right-justified diagnostic rendering with a
//		  configurable element width
//
// ✨ Why choose dmatrix?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Rock-solid guarantees: exclusive buffer ownership, no hidden aliasing
//   - Pure Go: no cgo, no hidden deps
//   - Explicit errors: one sentinel per failure kind, matched via errors.Is
//
// Everything lives in one subpackage:
//
//	dense/ - the Matrix[T] container: constructors, access, arithmetic,
//	        formatting, validators and options
//
// Quick ASCII example:
//
//	(     1     0     0 )
//	(     0     2     0 )
//	(     0     0     3 )
//
//	is NewDiagonal([]int{1, 2, 3}) rendered at the default element width.
//
// Next up: strided views, element-type converters and beyond. Dive into
// DESIGN.md for the rationale behind the ownership and error models.
//
//	go get github.com/katalvlaran/dmatrix/dense
package dmatrix
