// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"

	"github.com/katalvlaran/scientifics/ndarray"
)

// DBSCAN holds the parameters of a density-based clustering run over
// [nSamples, nFeatures] arrays of T.
type DBSCAN[T ndarray.Numeric] struct {
	// Epsilon is the neighbourhood radius. Always finite and >= 0.
	Epsilon float64

	// MinSamples is the neighbourhood size, point included, that makes a
	// point a core point. Always > 0.
	MinSamples int
}

// Result pairs the clustered points with the outliers of a Fit.
type Result[T ndarray.Numeric] struct {
	Clusters *ndarray.Array[T]
	Outliers *ndarray.Array[T]
}

// NewDBSCAN resolves opts over the defaults (DefaultEpsilon, DefaultMinSamples).
// Invalid values panic inside the WithX constructors, so a returned DBSCAN
// is always valid.
func NewDBSCAN[T ndarray.Numeric](opts ...Option) *DBSCAN[T] {
	o := gatherOptions(opts...)

	return &DBSCAN[T]{
		Epsilon:    o.epsilon,
		MinSamples: o.minSamples,
	}
}

// Fit clusters data, one sample per row.
// MAIN DESCRIPTION:
//   - Validate the input layout, then run the clustering.
//
// Errors (in order):
//   - ErrNilData when data is nil.
//   - ErrDataNotMatrix when data is not 2-D.
//   - ErrNotImplemented for every valid input: the clustering step is not built.
func (d *DBSCAN[T]) Fit(data *ndarray.Array[T]) (*Result[T], error) {
	if data == nil {
		return nil, fmt.Errorf("DBSCAN.Fit: %w", ErrNilData)
	}
	if data.NDim() != 2 {
		return nil, fmt.Errorf("DBSCAN.Fit: shape %v: %w", []int(data.Shape()), ErrDataNotMatrix)
	}

	// TODO: implement region queries and cluster expansion over the rows of data.
	return nil, fmt.Errorf("DBSCAN.Fit: %w", ErrNotImplemented)
}
