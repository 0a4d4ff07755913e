// SPDX-License-Identifier: MIT
// Package ndarray: sentinel and typed error set.
// All shape, axis and index failures are returned as values, never as panics.
// Sentinels are matched with errors.Is; the typed errors below carry the
// offending inputs and are matched with errors.As. Every typed error unwraps
// to exactly one sentinel.

package ndarray

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." so it can be grepped across
// logs. Methods wrap with their own tag, e.g. "Array.Reshape: %w".

var (
	// ErrInvalidShapeForSize is returned when a requested shape's element
	// count does not match the array's element count.
	ErrInvalidShapeForSize = errors.New("ndarray: invalid shape for size")

	// ErrTooManyUnknownDimensions is returned when more than one -1
	// placeholder is supplied to Reshape.
	ErrTooManyUnknownDimensions = errors.New("ndarray: too many unknown dimensions")

	// ErrInvalidAxis is returned when an axis outside [0, NDim) is used.
	ErrInvalidAxis = errors.New("ndarray: invalid axis")

	// ErrIndexOutOfBounds is returned when a flat index or coordinate falls
	// outside the array. Public indexers MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("ndarray: index out of bounds")

	// ErrNegativeDimension is returned by constructors given a negative dimension.
	ErrNegativeDimension = errors.New("ndarray: negative dimension")

	// ErrShapeOverflow is returned by constructors whose dimension product
	// does not fit in an int.
	ErrShapeOverflow = errors.New("ndarray: shape size overflows int")

	// ErrDimensionMismatch signals a coordinate list whose length differs from NDim.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrNilArray indicates that a nil *Array was passed where a value is required.
	ErrNilArray = errors.New("ndarray: nil array")
)

// ShapeError reports a shape whose element count cannot describe Size elements.
type ShapeError struct {
	Shape []int // requested shape, as given or after -1 substitution
	Size  int   // element count of the array
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("ndarray: cannot reshape array of size %d into shape %v", e.Size, e.Shape)
}

// Unwrap exposes ErrInvalidShapeForSize to errors.Is.
func (e *ShapeError) Unwrap() error { return ErrInvalidShapeForSize }

// UnknownDimensionsError reports how many -1 placeholders were supplied.
type UnknownDimensionsError struct {
	Count int
}

func (e *UnknownDimensionsError) Error() string {
	return fmt.Sprintf("ndarray: can only specify one unknown dimension, got %d", e.Count)
}

// Unwrap exposes ErrTooManyUnknownDimensions to errors.Is.
func (e *UnknownDimensionsError) Unwrap() error { return ErrTooManyUnknownDimensions }

// AxisError reports an axis that does not exist in an array of NDims dimensions.
type AxisError struct {
	Axis  int
	NDims int
}

func (e *AxisError) Error() string {
	return fmt.Sprintf("ndarray: axis %d is out of bounds for array of dimension %d", e.Axis, e.NDims)
}

// Unwrap exposes ErrInvalidAxis to errors.Is.
func (e *AxisError) Unwrap() error { return ErrInvalidAxis }

// IndexError reports an index outside [0, Size).
// For coordinate access Size is the length of the offending axis.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("ndarray: index %d is out of bounds for size %d", e.Index, e.Size)
}

// Unwrap exposes ErrIndexOutOfBounds to errors.Is.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// arrayErrorf wraps err with the Array method tag.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}
