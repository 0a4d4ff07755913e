// SPDX-License-Identifier: MIT

// Package ndarray - shape-changing operations.
//
// Purpose:
//   - Reinterpret the flat buffer with new dimension boundaries (Reshape)
//     or exchange two dimensions of the metadata (SwapAxes).
//   - Never move, copy or reorder the underlying data.
//   - Be transactional: on error shape, strides and data are exactly as
//     before the call.

package ndarray

// unknownDim is the Reshape placeholder meaning "infer this dimension".
const unknownDim = -1

// ResolveShape validates newShape against size and substitutes a single -1.
// MAIN DESCRIPTION:
//   - Pure resolution step behind Reshape; exported so callers can check a
//     shape before committing to it.
//
// Implementation:
//   - Stage 1: count -1 entries; more than one → *UnknownDimensionsError.
//   - Stage 2: any other negative entry → *ShapeError(newShape, size).
//   - Stage 3: with one -1, known = product of the other entries; known
//     overflowing an int, known == 0 or size % known != 0 →
//     *ShapeError(newShape, size); otherwise the placeholder becomes size/known.
//   - Stage 4: product(resolved) overflowing an int or != size →
//     *ShapeError(resolved, size).
//
// Behavior highlights:
//   - The unknown-count check runs before any divisibility check.
//   - The known product is computed from the non-placeholder entries
//     directly, so the result does not depend on the placeholder's sign.
//   - newShape is never modified; the result is a fresh slice.
//
// Errors:
//   - ErrTooManyUnknownDimensions, ErrInvalidShapeForSize (typed, see errors.go).
//
// Complexity:
//   - Time O(len(newShape)), Space O(len(newShape)).
func ResolveShape(newShape []int, size int) (Shape, error) {
	unknownAt := -1
	var unknowns int
	for i, d := range newShape {
		if d == unknownDim {
			unknowns++
			unknownAt = i
		}
	}
	if unknowns > 1 {
		return nil, &UnknownDimensionsError{Count: unknowns}
	}

	resolved := Shape(newShape).Clone()
	for i, d := range resolved {
		if d < 0 && i != unknownAt {
			return nil, &ShapeError{Shape: Shape(newShape).Clone(), Size: size}
		}
	}

	if unknownAt >= 0 {
		resolved[unknownAt] = 1
		known, ok := checkedSize(resolved)
		if !ok || known == 0 || size%known != 0 {
			return nil, &ShapeError{Shape: Shape(newShape).Clone(), Size: size}
		}
		resolved[unknownAt] = size / known
	}

	if n, ok := checkedSize(resolved); !ok || n != size {
		return nil, &ShapeError{Shape: resolved, Size: size}
	}

	return resolved, nil
}

// Reshape changes the array's shape in place, keeping the flat data order.
// MAIN DESCRIPTION:
//   - Commit a new shape with the same element count and recompute strides.
//
// Implementation:
//   - Stage 1: ResolveShape(newShape, Size()).
//   - Stage 2: on success swap in the resolved shape and its strides.
//
// Behavior highlights:
//   - At most one dimension may be -1; it is inferred from the others.
//   - Element i in flat order is the same before and after.
//   - On error nothing changes.
//
// Errors:
//   - ErrTooManyUnknownDimensions, ErrInvalidShapeForSize.
//
// Complexity:
//   - Time O(ndim), no data movement.
func (a *Array[T]) Reshape(newShape ...int) error {
	resolved, err := ResolveShape(newShape, len(a.data))
	if err != nil {
		return arrayErrorf(ctxReshape, err)
	}
	a.shape = resolved
	a.strides = ContiguousStrides(resolved, a.itemSize)

	return nil
}

// Reshaped returns a reshaped deep copy and leaves a untouched.
func (a *Array[T]) Reshaped(newShape ...int) (*Array[T], error) {
	resolved, err := ResolveShape(newShape, len(a.data))
	if err != nil {
		return nil, arrayErrorf(ctxReshape, err)
	}
	out := a.Clone()
	out.shape = resolved
	out.strides = ContiguousStrides(resolved, out.itemSize)

	return out, nil
}

// SwapAxes exchanges two entries of the shape and recomputes strides.
// MAIN DESCRIPTION:
//   - Metadata-only transpose of two dimensions.
//
// Behavior highlights:
//   - The buffer is not physically transposed; walk the result with
//     Strides/FlatIndex rather than assuming the pre-swap layout.
//   - axis1 == axis2 is a valid no-op.
//
// Errors:
//   - *AxisError (ErrInvalidAxis) for the first axis outside [0, NDim).
//
// Complexity:
//   - Time O(ndim).
func (a *Array[T]) SwapAxes(axis1, axis2 int) error {
	n := len(a.shape)
	if err := checkAxis(axis1, n); err != nil {
		return arrayErrorf(ctxSwapAxes, err)
	}
	if err := checkAxis(axis2, n); err != nil {
		return arrayErrorf(ctxSwapAxes, err)
	}
	shape := a.shape.Clone()
	shape[axis1], shape[axis2] = shape[axis2], shape[axis1]
	a.shape = shape
	a.strides = ContiguousStrides(shape, a.itemSize)

	return nil
}
