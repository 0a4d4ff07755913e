// SPDX-License-Identifier: MIT

// Package ndarray - owned contiguous storage with shape and stride metadata.
//
// Purpose:
//   - Hold a flat, exclusively owned buffer of T in row-major order.
//   - Describe it with a shape (per-dimension sizes) and byte strides that are
//     recomputed every time the shape changes.
//   - Guarantee safety at the public surface: indexers and shape operations
//     return errors instead of panicking, and failed calls never mutate.
//
// Invariant: len(data) == shape.Size() at all times.
//
// Complexity quicksheet:
//   - New/Full/FromSlice: O(n); Wrap: O(1) (O(n) WithCopy); accessors: O(1)
//     except Shape/Strides which copy O(ndim).

package ndarray

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"      // ctor tag for New
	ctxFull     = "Full"     // ctor tag for Full
	ctxWrap     = "Wrap"     // ctor tag for Wrap
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxCoords   = "FlatIndex"
	ctxReshape  = "Reshape"
	ctxSwapAxes = "SwapAxes"
)

// Array is a strided N-dimensional array over a flat row-major buffer.
//   - data is owned by the array; no other Array shares it.
//   - shape and strides always have the same length (NDim).
//   - itemSize is the byte size of T and never changes.
//
// An *Array is not safe for concurrent mutation.
type Array[T Numeric] struct {
	data     []T     // contiguous row-major storage (len == shape.Size())
	shape    Shape   // per-dimension sizes (>= 0)
	strides  Strides // byte steps per dimension, derived from shape
	itemSize int     // bytes per element
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Array[float64])(nil)

// newArray builds an Array over data with an already validated shape.
func newArray[T Numeric](data []T, shape Shape) *Array[T] {
	itemSize := sizeOf[T]()

	return &Array[T]{
		data:     data,
		shape:    shape,
		strides:  ContiguousStrides(shape, itemSize),
		itemSize: itemSize,
	}
}

// New allocates an array with the given shape.
// MAIN DESCRIPTION:
//   - Public constructor for an array whose contents the caller will write.
//
// Implementation:
//   - Stage 1: validate dims (no negatives).
//   - Stage 2: allocate product(shape) elements.
//   - Stage 3: compute strides.
//
// Behavior highlights:
//   - Element values are unspecified by contract; callers must write before
//     they read. (The runtime happens to zero the memory; do not rely on it.)
//   - New() with no dims yields a 0-d array holding a single element.
//
// Errors:
//   - ErrNegativeDimension when any dim < 0.
//   - ErrShapeOverflow when product(shape) does not fit in an int.
//
// Complexity:
//   - Time O(n), Space O(n) with n = product(shape).
func New[T Numeric](shape ...int) (*Array[T], error) {
	if err := ValidateDims(shape); err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	s := Shape(shape).Clone()

	return newArray(make([]T, s.Size()), s), nil
}

// Full allocates an array with the given shape and every element set to value.
// Errors: ErrNegativeDimension when any dim < 0, ErrShapeOverflow when
// product(shape) does not fit in an int.
// Complexity: O(n).
func Full[T Numeric](shape []int, value T) (*Array[T], error) {
	if err := ValidateDims(shape); err != nil {
		return nil, arrayErrorf(ctxFull, err)
	}
	s := Shape(shape).Clone()
	data := make([]T, s.Size())
	for i := range data {
		data[i] = value
	}

	return newArray(data, s), nil
}

// Wrap builds an array over an existing flat buffer.
// MAIN DESCRIPTION:
//   - Takes ownership of buf without copying and treats it as 1-D
//     [len(buf)] unless WithShape is given.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: check product(shape) == len(buf).
//   - Stage 3: copy the buffer only when WithCopy was requested.
//
// Behavior highlights:
//   - Without WithCopy the caller hands buf over and must not read or write
//     it afterwards; the array is then its sole owner.
//   - A nil buf is an empty 1-D array.
//
// Errors:
//   - *ShapeError (ErrInvalidShapeForSize) when WithShape does not match
//     len(buf), including shapes whose product overflows an int.
//
// Complexity:
//   - Time O(ndim), or O(n) WithCopy.
func Wrap[T Numeric](buf []T, opts ...Option) (*Array[T], error) {
	o := gatherOptions(opts...)

	shape := Shape{len(buf)}
	if o.hasShape {
		shape = o.shape.Clone()
		if n, ok := checkedSize(shape); !ok || n != len(buf) {
			return nil, arrayErrorf(ctxWrap, &ShapeError{Shape: shape.Clone(), Size: len(buf)})
		}
	}

	data := buf
	if o.copyBuf {
		data = make([]T, len(buf))
		copy(data, buf)
	}
	if data == nil {
		data = []T{}
	}

	return newArray(data, shape), nil
}

// FromSlice copies values into a new 1-D array of length len(values).
// The array never aliases values.
// Complexity: O(n).
func FromSlice[T Numeric](values []T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)

	return newArray(data, Shape{len(values)})
}

// Of is the literal form of FromSlice: ndarray.Of(1, 2, 3).
func Of[T Numeric](values ...T) *Array[T] {
	return FromSlice(values)
}

// Shape returns a copy of the dimensions.
func (a *Array[T]) Shape() Shape { return a.shape.Clone() }

// Strides returns a copy of the byte strides.
func (a *Array[T]) Strides() Strides { return a.strides.Clone() }

// NDim returns the number of dimensions.
func (a *Array[T]) NDim() int { return len(a.shape) }

// Size returns the number of elements.
func (a *Array[T]) Size() int { return len(a.data) }

// Len is an alias of Size for collection-style callers.
func (a *Array[T]) Len() int { return len(a.data) }

// ItemSize returns the byte size of one element.
func (a *Array[T]) ItemSize() int { return a.itemSize }

// Clone returns a deep copy with its own buffer.
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)

	return &Array[T]{
		data:     data,
		shape:    a.shape.Clone(),
		strides:  a.strides.Clone(),
		itemSize: a.itemSize,
	}
}

// String renders shape and flat data for diagnostics, e.g.
// "Array(shape=[2 3], data=[1 2 3 4 5 6])".
// Not for hot paths.
func (a *Array[T]) String() string {
	var b strings.Builder
	b.WriteString("Array(shape=")
	b.WriteString(fmt.Sprint([]int(a.shape)))
	b.WriteString(", data=")
	b.WriteString(fmt.Sprint(a.data))
	b.WriteString(")")

	return b.String()
}
