// Package ndarray_test contains unit tests for flat and coordinate access.
package ndarray_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/scientifics/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	a, err := ndarray.New[float64](2, 3)
	require.NoError(t, err)

	require.NoError(t, a.Set(5, 7.89))

	v, err := a.At(5)
	require.NoError(t, err)
	require.Equal(t, 7.89, v)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	a := cube234(t)

	_, err := a.At(-1)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)

	_, err = a.At(24)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
	var ie *ndarray.IndexError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 24, ie.Index)
	require.Equal(t, 24, ie.Size)

	err = a.Set(100, 1)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
	require.True(t, a.ElementsEqual(iota24())) // nothing written

	empty, err := ndarray.New[int](0)
	require.NoError(t, err)
	_, err = empty.At(0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
}

// TestFlatIndex checks coordinate to flat-index conversion before and after SwapAxes.
func TestFlatIndex(t *testing.T) {
	a := cube234(t)

	idx, err := a.FlatIndex(1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 23, idx)

	v, err := a.AtCoords(1, 0, 2)
	require.NoError(t, err)
	require.Equal(t, float32(14), v)

	require.NoError(t, a.SwapAxes(0, 2)) // shape [4,3,2], strides [24,8,4]
	idx, err = a.FlatIndex(3, 2, 1)
	require.NoError(t, err)
	require.Equal(t, 23, idx)
}

// TestFlatIndexErrors covers wrong arity and out-of-range coordinates.
func TestFlatIndexErrors(t *testing.T) {
	a := cube234(t)

	_, err := a.FlatIndex(1, 2)
	require.ErrorIs(t, err, ndarray.ErrDimensionMismatch)

	_, err = a.FlatIndex(0, 3, 0)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
	var ie *ndarray.IndexError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 3, ie.Index)
	require.Equal(t, 3, ie.Size) // length of axis 1

	err = a.SetCoords(1, 0, 0, -1)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
}

// TestSetCoords writes through coordinates and reads back by flat index.
func TestSetCoords(t *testing.T) {
	a, err := ndarray.Zeros[int](3, 3)
	require.NoError(t, err)

	require.NoError(t, a.SetCoords(9, 2, 1))
	v, err := a.At(7)
	require.NoError(t, err)
	require.Equal(t, 9, v)
}

// TestDoEarlyStop ensures the visitor stops when the callback returns false.
func TestDoEarlyStop(t *testing.T) {
	a := ndarray.Of(1, 2, 3, 4, 5)

	var seen []int
	a.Do(func(i, v int) bool {
		seen = append(seen, v)
		return i < 2
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestCollectionHelpers covers Values, AllSatisfy, Fill and Apply.
func TestCollectionHelpers(t *testing.T) {
	a := ndarray.Of(1, 2, 3)

	vals := a.Values()
	vals[0] = 100
	assert.True(t, a.ElementsEqual([]int{1, 2, 3}), "Values must return a copy")
	assert.False(t, a.ElementsEqual([]int{1, 2}), "length mismatch")

	assert.True(t, a.AllSatisfy(func(v int) bool { return v > 0 }))
	assert.False(t, a.AllSatisfy(func(v int) bool { return v > 1 }))

	a.Apply(func(i, v int) int { return v * 10 })
	assert.True(t, a.ElementsEqual([]int{10, 20, 30}))

	a.Fill(-1)
	assert.True(t, a.AllSatisfy(func(v int) bool { return v == -1 }))

	empty, err := ndarray.New[int](0)
	require.NoError(t, err)
	assert.True(t, empty.AllSatisfy(func(int) bool { return false }))
}
