// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Keep the guard logic shared by constructors, indexers and shape
//    operations in one place.
//  - Return typed errors unwrapping to the package sentinels; callers add
//    their method tag.
//
// All checks are pure and allocate only on failure.

package ndarray

import "fmt"

// ValidateDims ensures every dimension is non-negative and that their
// product fits in an int.
//
// Returns: nil, an error wrapping ErrNegativeDimension that names the axis,
// or an error wrapping ErrShapeOverflow.
// Complexity: O(len(dims)).
func ValidateDims(dims []int) error {
	for axis, d := range dims {
		if d < 0 {
			return fmt.Errorf("axis %d has size %d: %w", axis, d, ErrNegativeDimension)
		}
	}
	if _, ok := checkedSize(dims); !ok {
		return fmt.Errorf("shape %v: %w", dims, ErrShapeOverflow)
	}

	return nil
}

// checkIndex verifies 0 <= index < size.
func checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return &IndexError{Index: index, Size: size}
	}

	return nil
}

// checkAxis verifies 0 <= axis < nDims.
func checkAxis(axis, nDims int) error {
	if axis < 0 || axis >= nDims {
		return &AxisError{Axis: axis, NDims: nDims}
	}

	return nil
}
