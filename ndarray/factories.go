// SPDX-License-Identifier: MIT

package ndarray

// Zeros returns a new array of the given shape filled with T(0).
// Errors: ErrNegativeDimension when any dim < 0.
func Zeros[T Numeric](shape ...int) (*Array[T], error) {
	return Full[T](shape, T(0))
}

// Ones returns a new array of the given shape filled with T(1).
// Errors: ErrNegativeDimension when any dim < 0.
func Ones[T Numeric](shape ...int) (*Array[T], error) {
	return Full[T](shape, T(1))
}

// ZerosLike returns a zero-filled array with the same shape as like.
// Contents of like are ignored.
// Errors: ErrNilArray when like is nil.
func ZerosLike[T Numeric](like *Array[T]) (*Array[T], error) {
	return fullLike(like, T(0))
}

// OnesLike returns a one-filled array with the same shape as like.
// Errors: ErrNilArray when like is nil.
func OnesLike[T Numeric](like *Array[T]) (*Array[T], error) {
	return fullLike(like, T(1))
}

// fullLike shares the shape of like; the shape is already valid, so the only
// failure is a nil argument.
func fullLike[T Numeric](like *Array[T], value T) (*Array[T], error) {
	if like == nil {
		return nil, ErrNilArray
	}

	return Full[T](like.shape, value)
}
