// SPDX-License-Identifier: MIT

// Package ndarray - element access.
//
// Flat indexing addresses the logical row-major sequence independent of
// NDim. Coordinate access converts per-axis indices into a flat index using
// the current strides, so it stays correct after SwapAxes or Reshape.
// Every public accessor is bounds-checked and returns ErrIndexOutOfBounds
// instead of panicking.

package ndarray

// At returns the element at the flat row-major position index.
// MAIN DESCRIPTION:
//   - Safe element read.
//
// Errors:
//   - *IndexError (ErrIndexOutOfBounds) when index is outside [0, Size).
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array[T]) At(index int) (T, error) {
	if err := checkIndex(index, len(a.data)); err != nil {
		var zero T

		return zero, arrayErrorf(ctxAt, err)
	}

	return a.data[index], nil
}

// Set replaces the element at the flat position index with v.
// On error the array is unchanged.
// Complexity: O(1).
func (a *Array[T]) Set(index int, v T) error {
	if err := checkIndex(index, len(a.data)); err != nil {
		return arrayErrorf(ctxSet, err)
	}
	a.data[index] = v

	return nil
}

// FlatIndex converts per-axis coordinates into a flat element index.
// MAIN DESCRIPTION:
//   - Walk the coordinates with the array's strides (bytes) and divide by
//     itemSize to get the element position.
//
// Implementation:
//   - Stage 1: require len(coords) == NDim.
//   - Stage 2: bounds-check each coordinate against its axis.
//   - Stage 3: accumulate coords[i]*strides[i] and scale by itemSize.
//
// Errors:
//   - ErrDimensionMismatch when the coordinate count differs from NDim.
//   - *IndexError (ErrIndexOutOfBounds) when a coordinate is out of range;
//     its Size field is the length of that axis.
//
// Complexity:
//   - Time O(ndim), Space O(1).
func (a *Array[T]) FlatIndex(coords ...int) (int, error) {
	if len(coords) != len(a.shape) {
		return 0, arrayErrorf(ctxCoords, ErrDimensionMismatch)
	}
	var offset int
	for axis, c := range coords {
		if err := checkIndex(c, a.shape[axis]); err != nil {
			return 0, arrayErrorf(ctxCoords, err)
		}
		offset += c * a.strides[axis]
	}
	if a.itemSize == 0 {
		return 0, nil
	}

	return offset / a.itemSize, nil
}

// AtCoords returns the element at the given per-axis coordinates.
func (a *Array[T]) AtCoords(coords ...int) (T, error) {
	idx, err := a.FlatIndex(coords...)
	if err != nil {
		var zero T

		return zero, err
	}

	return a.data[idx], nil
}

// SetCoords replaces the element at the given per-axis coordinates.
func (a *Array[T]) SetCoords(v T, coords ...int) error {
	idx, err := a.FlatIndex(coords...)
	if err != nil {
		return err
	}
	a.data[idx] = v

	return nil
}

// Values returns a copy of the flat data in row-major order.
// Complexity: O(n).
func (a *Array[T]) Values() []T {
	out := make([]T, len(a.data))
	copy(out, a.data)

	return out
}

// Do visits each element in flat order and calls f(i, v).
// Stops early when f returns false. No allocations.
func (a *Array[T]) Do(f func(i int, v T) bool) {
	for i, v := range a.data {
		if !f(i, v) {
			return
		}
	}
}

// AllSatisfy reports whether pred holds for every element.
// An empty array satisfies any predicate.
func (a *Array[T]) AllSatisfy(pred func(v T) bool) bool {
	ok := true
	a.Do(func(_ int, v T) bool {
		ok = pred(v)

		return ok
	})

	return ok
}

// ElementsEqual reports whether the flat data equals values element-wise,
// ignoring shape.
func (a *Array[T]) ElementsEqual(values []T) bool {
	return elementsEqual(a.data, values)
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Apply replaces each element with f(i, v) in flat order.
// Keep f pure; the array is updated in place.
func (a *Array[T]) Apply(f func(i int, v T) T) {
	for i, v := range a.data {
		a.data[i] = f(i, v)
	}
}
