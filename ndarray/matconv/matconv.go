// SPDX-License-Identifier: MIT

// Package matconv copies ndarray arrays to and from gonum matrices.
//
// What & Why:
//
//	ndarray keeps element arithmetic out of scope. Callers that need linear
//	algebra convert a 2-D array into a *mat.Dense (or a 1-D array into a
//	*mat.VecDense), work in gonum, and convert the result back.
//
// Every conversion copies; gonum never aliases an Array's buffer and the
// returned Array never aliases gonum storage.
//
// Complexity:
//
//	All conversions are O(n) time and memory.
package matconv

import (
	"errors"
	"fmt"
	"reflect"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/scientifics/ndarray"
)

var (
	// ErrNotMatrix is returned when an array is not 2-D with non-zero dims.
	ErrNotMatrix = errors.New("matconv: array is not a non-empty 2-D matrix")

	// ErrNotVector is returned when an array is not 1-D with at least one element.
	ErrNotVector = errors.New("matconv: array is not a non-empty 1-D vector")
)

// ToDense copies a 2-D array into a new *mat.Dense, converting elements to float64.
// Implementation:
//   - Stage 1: require a non-nil array of shape [r, c] with r, c > 0
//     (gonum rejects zero-length matrices).
//   - Stage 2: walk coordinates through FlatIndex so the copy honours the
//     array's current strides.
//
// Errors:
//   - ndarray.ErrNilArray, ErrNotMatrix.
func ToDense[T ndarray.Numeric](a *ndarray.Array[T]) (*mat.Dense, error) {
	if a == nil {
		return nil, fmt.Errorf("ToDense: %w", ndarray.ErrNilArray)
	}
	shape := a.Shape()
	if len(shape) != 2 || shape[0] == 0 || shape[1] == 0 {
		return nil, fmt.Errorf("ToDense: shape %v: %w", []int(shape), ErrNotMatrix)
	}

	r, c := shape[0], shape[1]
	data := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v, err := a.AtCoords(i, j)
			if err != nil {
				return nil, fmt.Errorf("ToDense: %w", err)
			}
			data[i*c+j] = float64(v)
		}
	}

	return mat.NewDense(r, c, data), nil
}

// ToVecDense copies a 1-D array into a new *mat.VecDense.
// Errors: ndarray.ErrNilArray, ErrNotVector.
func ToVecDense[T ndarray.Numeric](a *ndarray.Array[T]) (*mat.VecDense, error) {
	if a == nil {
		return nil, fmt.Errorf("ToVecDense: %w", ndarray.ErrNilArray)
	}
	if a.NDim() != 1 || a.Size() == 0 {
		return nil, fmt.Errorf("ToVecDense: shape %v: %w", []int(a.Shape()), ErrNotVector)
	}

	data := make([]float64, a.Size())
	a.Do(func(i int, v T) bool {
		data[i] = float64(v)

		return true
	})

	return mat.NewVecDense(len(data), data), nil
}

// FromMatrix copies any gonum matrix into a new [rows, cols] float64 array.
// Errors: ndarray.ErrNilArray when m is nil or a nil pointer such as
// (*mat.Dense)(nil). Wrappers holding a nil matrix, like mat.Transpose{},
// are not detected and panic inside gonum.
func FromMatrix(m mat.Matrix) (*ndarray.Array[float64], error) {
	if isNil(m) {
		return nil, fmt.Errorf("FromMatrix: %w", ndarray.ErrNilArray)
	}
	r, c := m.Dims()
	buf := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			buf[i*c+j] = m.At(i, j)
		}
	}

	return ndarray.Wrap(buf, ndarray.WithShape(r, c))
}

// FromVector copies a gonum vector into a new 1-D float64 array.
// Errors: ndarray.ErrNilArray when v is nil or a nil pointer such as
// (*mat.VecDense)(nil).
func FromVector(v mat.Vector) (*ndarray.Array[float64], error) {
	if isNil(v) {
		return nil, fmt.Errorf("FromVector: %w", ndarray.ErrNilArray)
	}
	n := v.Len()
	buf := make([]float64, n)
	for i := 0; i < n; i++ {
		buf[i] = v.AtVec(i)
	}

	return ndarray.Wrap(buf)
}

// isNil reports whether x is nil or an interface holding a nil pointer.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)

	return v.Kind() == reflect.Pointer && v.IsNil()
}
