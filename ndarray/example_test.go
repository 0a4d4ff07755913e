package ndarray_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scientifics/ndarray"
)

// ExampleArray_Reshape infers one dimension from the element count.
func ExampleArray_Reshape() {
	a, _ := ndarray.Zeros[float32](2, 3, 4)

	_ = a.Reshape(-1, 2)
	fmt.Println(a.Shape(), a.Strides())

	_ = a.Reshape(2, 3, 2, -1)
	fmt.Println(a.Shape(), a.Strides())

	// Output:
	// [12 2] [8 4]
	// [2 3 2 2] [48 16 8 4]
}

// ExampleArray_Reshape_errors shows the typed errors carrying their inputs.
func ExampleArray_Reshape_errors() {
	a, _ := ndarray.Zeros[int32](2, 3, 4)

	err := a.Reshape(-1, 5)
	var se *ndarray.ShapeError
	if errors.As(err, &se) {
		fmt.Println(se.Shape, se.Size)
	}

	err = a.Reshape(2, 3, -1, -1)
	fmt.Println(errors.Is(err, ndarray.ErrTooManyUnknownDimensions))
	fmt.Println(err)

	// Output:
	// [-1 5] 24
	// true
	// Array.Reshape: ndarray: can only specify one unknown dimension, got 2
}

// ExampleArray_SwapAxes swaps metadata only; walk with coordinates afterwards.
func ExampleArray_SwapAxes() {
	a, _ := ndarray.Wrap([]int{1, 2, 3, 4, 5, 6}, ndarray.WithShape(2, 3))
	_ = a.SwapAxes(0, 1)

	v, _ := a.AtCoords(2, 1)
	fmt.Println(a.Shape(), v)

	// Output:
	// [3 2] 6
}

// ExampleOf builds a 1-D array from literal values.
func ExampleOf() {
	a := ndarray.Of(1.5, 2.5, 3.5)
	fmt.Println(a)

	// Output:
	// Array(shape=[3], data=[1.5 2.5 3.5])
}
