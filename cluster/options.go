// SPDX-License-Identifier: MIT

// Package cluster: functional configuration for DBSCAN.
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that resolves the effective settings.
package cluster

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the neighbourhood radius used when WithEpsilon is absent.
	DefaultEpsilon = 0.5

	// DefaultMinSamples is the core-point threshold used when WithMinSamples is absent.
	DefaultMinSamples = 5
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "cluster: WithEpsilon: epsilon must be finite and non-negative"
	panicMinSamplesInvalid = "cluster: WithMinSamples: minSamples must be greater than 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective DBSCAN configuration.
type Options struct {
	epsilon    float64 // >= 0; DefaultEpsilon
	minSamples int     // > 0; DefaultMinSamples
}

// WithEpsilon sets the maximum distance between two samples for one to be
// considered in the neighbourhood of the other.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0, panic otherwise.
//   - Stage 2: return a setter that writes eps into Options.
//
// Notes:
//   - This is not an upper bound on distances within a cluster. It is the
//     most important parameter to choose for a data set and distance.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithMinSamples sets how many samples a neighbourhood needs, the point
// itself included, for the point to be a core point. Panics when n <= 0.
func WithMinSamples(n int) Option {
	if n <= 0 {
		panic(panicMinSamplesInvalid)
	}

	return func(o *Options) { o.minSamples = n }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		epsilon:    DefaultEpsilon,
		minSamples: DefaultMinSamples,
	}
}

// gatherOptions applies opts over the defaults in order; nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
