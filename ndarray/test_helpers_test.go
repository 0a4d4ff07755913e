// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and shape ops.

package ndarray_test

import (
	"testing"

	"github.com/katalvlaran/scientifics/ndarray"
)

// iota24 returns the values 0..23 as float32, a 4-byte element type.
func iota24() []float32 {
	out := make([]float32, 24)
	for i := range out {
		out[i] = float32(i)
	}

	return out
}

// mustWrap wraps vals with the given shape or fails the test.
func mustWrap[T ndarray.Numeric](tb testing.TB, vals []T, shape ...int) *ndarray.Array[T] {
	tb.Helper()
	a, err := ndarray.Wrap(vals, ndarray.WithShape(shape...), ndarray.WithCopy())
	if err != nil {
		tb.Fatalf("Wrap(%v): %v", shape, err)
	}

	return a
}

// cube234 builds the [2,3,4] float32 fixture holding 0..23.
func cube234(tb testing.TB) *ndarray.Array[float32] {
	tb.Helper()

	return mustWrap(tb, iota24(), 2, 3, 4)
}
