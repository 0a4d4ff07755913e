// SPDX-License-Identifier: MIT

// Package ndarray: domain types shared by the array, its options and its
// validators. This file holds ONLY the element constraint and the shape and
// stride value types together with their pure helpers.
package ndarray

import (
	"math"
	"unsafe"
)

// Numeric is the set of element types an Array can hold.
// The only capabilities the package relies on are the additive identity T(0),
// the multiplicative identity T(1) and a fixed byte size.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Shape is the ordered list of per-dimension sizes.
type Shape []int

// Strides holds the byte step per dimension in row-major layout.
type Strides []int

// Size returns the product of all dimensions. The empty shape has size 1.
// The product is not overflow-checked; shapes held by an Array always fit.
// Complexity: O(len(s)).
func (s Shape) Size() int {
	n := 1
	for _, d := range s {
		n *= d
	}

	return n
}

// NDim returns the number of dimensions.
func (s Shape) NDim() int { return len(s) }

// Equal reports whether s and other have the same dimensions in the same order.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of s.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	copy(out, s)

	return out
}

// ContiguousStrides computes row-major strides for shape and itemSize.
// MAIN DESCRIPTION:
//   - strides[i] is the number of bytes to advance in the flat buffer to
//     move one step along dimension i.
//
// Implementation:
//   - Stage 1: strides[last] = itemSize.
//   - Stage 2: walk right to left, strides[i] = strides[i+1] * shape[i+1].
//
// Behavior highlights:
//   - Equal to product(shape)/shape[i]/product(shape[:i])*itemSize for
//     non-zero dims, but stays defined when a dimension is zero.
//   - Empty shape yields empty strides.
//
// Complexity:
//   - Time O(len(shape)), Space O(len(shape)).
func ContiguousStrides(shape Shape, itemSize int) Strides {
	strides := make(Strides, len(shape))
	if len(shape) == 0 {
		return strides
	}
	strides[len(shape)-1] = itemSize
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}

	return strides
}

// Clone returns an independent copy of s.
func (s Strides) Clone() Strides {
	out := make(Strides, len(s))
	copy(out, s)

	return out
}

// checkedSize returns the product of non-negative dims, or ok=false when
// the product does not fit in an int. A zero dimension wins over overflow.
func checkedSize(dims []int) (n int, ok bool) {
	for _, d := range dims {
		if d == 0 {
			return 0, true
		}
	}
	n = 1
	for _, d := range dims {
		if n > math.MaxInt/d {
			return 0, false
		}
		n *= d
	}

	return n, true
}

// sizeOf returns the byte size of one element of T.
func sizeOf[T Numeric]() int {
	var zero T

	return int(unsafe.Sizeof(zero))
}
