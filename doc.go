// Package scientifics is a small numeric-computing toolkit for Go, built
// around a generic strided N-dimensional array.
//
// 🚀 What is inside?
//
//   - ndarray/          — Array[T]: owned flat storage, shape & byte strides,
//     bounds-checked flat and coordinate access, equality, Reshape with a
//     -1 placeholder, SwapAxes, Zeros/Ones factories.
//   - ndarray/matconv/  — copy arrays to and from gonum matrices and vectors.
//   - cluster/          — DBSCAN parameter object and result shape.
//
// ✨ Guarantees:
//
//   - Errors are values: sentinels for errors.Is, typed errors carrying the
//     offending inputs for errors.As. Public calls never panic on data.
//   - Failed shape operations leave the array untouched.
//   - Shape changes never move data.
//
// Quick example:
//
//	a, _ := ndarray.Zeros[float32](2, 3, 4) // strides [48 16 4]
//	_ = a.Reshape(-1, 2)                    // shape [12 2]
//
//	go get github.com/katalvlaran/scientifics/ndarray
package scientifics
