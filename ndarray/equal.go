// SPDX-License-Identifier: MIT

package ndarray

// Equal reports whether a and b have the same shape and the same elements
// in flat order. Strides and item size are derived and not compared.
// Two nil arrays are equal; nil never equals a non-nil array.
// Complexity: O(n).
func Equal[T Numeric](a, b *Array[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.shape.Equal(b.shape) && elementsEqual(a.data, b.data)
}

// Equal is the method form of the package-level Equal.
func (a *Array[T]) Equal(other *Array[T]) bool {
	return Equal(a, other)
}

// elementsEqual compares two flat buffers element-wise.
// NaN never equals NaN, matching ==.
func elementsEqual[T Numeric](x, y []T) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}

	return true
}
