// SPDX-License-Identifier: MIT

package cluster

import "errors"

var (
	// ErrNilData is returned when Fit receives a nil array.
	ErrNilData = errors.New("cluster: data is nil")

	// ErrDataNotMatrix is returned when Fit data is not [nSamples, nFeatures].
	ErrDataNotMatrix = errors.New("cluster: data must be a 2-D array")

	// ErrNotImplemented marks the clustering step that has not been built yet.
	ErrNotImplemented = errors.New("cluster: operation not implemented")
)
