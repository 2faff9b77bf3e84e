// SPDX-License-Identifier: MIT

// Package dense: functional configuration for textual rendering. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithOutputWidth with strong validation (panic on nonsensical values),
//   - the package-wide default width (SetOutputWidth / OutputWidth),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: the only mutable state is the default width,
//     and it is read exactly once per Fprint call.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); rendering itself never fails on matrix contents.

package dense

const (
	// DefaultOutputWidth is the minimum character width every element is
	// right-justified to when no explicit width is configured.
	DefaultOutputWidth = 5

	// MinOutputWidth is the smallest accepted width. Width 0 disables
	// padding entirely and prints each element in its natural width.
	MinOutputWidth = 0
)

// panicOutputWidthNegative is raised by WithOutputWidth and SetOutputWidth
// on a negative width. Stable text, asserted by tests.
const panicOutputWidthNegative = "dense: output width must be non-negative"

// outputWidth is the package-wide default element width used by Fprint and
// String when no WithOutputWidth option is supplied. It is intentionally not
// synchronized: set it during process setup, before rendering concurrently.
var outputWidth = DefaultOutputWidth

// Options holds the resolved rendering configuration.
// Zero value is not meaningful; always build via gatherOptions.
type Options struct {
	width int // minimum element width, >= MinOutputWidth
}

// Option mutates Options during resolution; build them via WithX constructors.
type Option func(*Options)

// WithOutputWidth overrides the element width for a single rendering call,
// leaving the package-wide default untouched.
//
// Panics with a stable message if w is negative.
func WithOutputWidth(w int) Option {
	if w < MinOutputWidth {
		panic(panicOutputWidthNegative)
	}

	return func(o *Options) { o.width = w }
}

// SetOutputWidth replaces the package-wide default element width used by all
// subsequent Fprint and String calls that carry no explicit option.
//
// Panics with a stable message if w is negative.
func SetOutputWidth(w int) {
	if w < MinOutputWidth {
		panic(panicOutputWidthNegative)
	}
	outputWidth = w
}

// OutputWidth reports the current package-wide default element width.
func OutputWidth() int { return outputWidth }

// gatherOptions seeds Options from the package-wide defaults, then applies
// the caller's options in order (last writer wins).
func gatherOptions(opts ...Option) Options {
	o := Options{width: outputWidth}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
