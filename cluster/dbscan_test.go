package cluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scientifics/cluster"
	"github.com/katalvlaran/scientifics/ndarray"
)

func TestDBSCANDefaults(t *testing.T) {
	db := cluster.NewDBSCAN[float64]()

	require.Equal(t, cluster.DefaultEpsilon, db.Epsilon)
	require.Equal(t, cluster.DefaultMinSamples, db.MinSamples)
}

func TestDBSCANOptions(t *testing.T) {
	db := cluster.NewDBSCAN[float64](cluster.WithEpsilon(0.75), cluster.WithMinSamples(10))

	require.Equal(t, 0.75, db.Epsilon)
	require.Equal(t, 10, db.MinSamples)

	db = cluster.NewDBSCAN[float64](nil, cluster.WithEpsilon(0))
	require.Equal(t, 0.0, db.Epsilon)
}

func TestDBSCANOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
		want string
	}{
		{"zero min samples", func() { cluster.WithMinSamples(0) }, "cluster: WithMinSamples: minSamples must be greater than 0"},
		{"negative min samples", func() { cluster.WithMinSamples(-3) }, "cluster: WithMinSamples: minSamples must be greater than 0"},
		{"negative epsilon", func() { cluster.WithEpsilon(-0.1) }, "cluster: WithEpsilon: epsilon must be finite and non-negative"},
		{"nan epsilon", func() { cluster.WithEpsilon(math.NaN()) }, "cluster: WithEpsilon: epsilon must be finite and non-negative"},
		{"inf epsilon", func() { cluster.WithEpsilon(math.Inf(1)) }, "cluster: WithEpsilon: epsilon must be finite and non-negative"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.PanicsWithValue(t, tc.want, tc.fn)
		})
	}
}

func TestDBSCANFit(t *testing.T) {
	db := cluster.NewDBSCAN[float64]()

	_, err := db.Fit(nil)
	require.ErrorIs(t, err, cluster.ErrNilData)

	flat := ndarray.Of(1.0, 2.0, 3.0)
	_, err = db.Fit(flat)
	require.ErrorIs(t, err, cluster.ErrDataNotMatrix)

	points, err := ndarray.Zeros[float64](10, 2)
	require.NoError(t, err)
	res, err := db.Fit(points)
	require.ErrorIs(t, err, cluster.ErrNotImplemented)
	require.Nil(t, res)
}
