// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for array constructors that take
// existing storage. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - No global state; each call resolves its own Options.
//   - Panic only on invalid parameters (programmer error); runtime data
//     problems are reported as errors by the constructor itself.
package ndarray

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCopy controls whether Wrap copies the buffer it is given.
	// false ⇒ the array takes ownership and the caller must not touch buf again.
	DefaultCopy = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicShapeNegative = "ndarray: WithShape: dimensions must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	shape    Shape // explicit shape; nil means 1-D [len(buf)]
	hasShape bool  // distinguishes WithShape() (scalar) from no option
	copyBuf  bool  // DefaultCopy
}

// WithShape makes Wrap interpret the buffer with the given dimensions.
// Implementation:
//   - Stage 1: reject negative dims (panic, programmer error).
//   - Stage 2: store a private copy of dims.
//
// Behavior highlights:
//   - The product of dims must equal len(buf); Wrap reports
//     ErrInvalidShapeForSize otherwise.
//   - WithShape() with no dims describes a 0-d array over a 1-element buffer.
//
// Complexity:
//   - Time O(len(dims)), Space O(len(dims)).
func WithShape(dims ...int) Option {
	for _, d := range dims {
		if d < 0 {
			panic(panicShapeNegative)
		}
	}
	shape := Shape(dims).Clone()

	return func(o *Options) {
		o.shape = shape
		o.hasShape = true
	}
}

// WithCopy makes Wrap allocate a private buffer and copy into it, so the
// caller keeps using its slice without aliasing the array.
func WithCopy() Option {
	return func(o *Options) { o.copyBuf = true }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{copyBuf: DefaultCopy}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
