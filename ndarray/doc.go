// Package ndarray provides a generic strided N-dimensional array.
//
// An Array owns a flat, contiguous buffer of numeric elements stored in
// row-major order and describes it with a shape (per-dimension sizes) and
// byte strides. Shape-changing operations only rewrite that metadata:
//
//   - Reshape reinterprets the buffer with new dimension boundaries; one
//     dimension may be given as -1 and is inferred from the element count.
//   - SwapAxes exchanges two dimensions without moving data.
//
// Construction:
//
//	a, err := ndarray.New[float64](2, 3, 4)          // unspecified contents
//	b, err := ndarray.Full([]int{5}, 1.5)            // filled
//	c, err := ndarray.Wrap(buf, ndarray.WithShape(2, 3)) // takes ownership of buf
//	d := ndarray.Of(1, 2, 3)                          // copied from values
//	z, err := ndarray.Zeros[int](3, 3)
//
// Errors are values: every failure is a sentinel (errors.Is) wrapped in a
// typed error that carries the offending inputs (errors.As), e.g.
//
//	var se *ndarray.ShapeError
//	if errors.As(a.Reshape(-1, 5), &se) { ... se.Shape, se.Size ... }
//
// Element arithmetic and broadcasting are intentionally absent.
//
// See the examples in this package for usage patterns.
package ndarray
