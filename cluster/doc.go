// Package cluster holds density-based clustering components for ndarray data.
//
// 🚧 Status:
//
//	DBSCAN is available as a validated parameter object (epsilon, minSamples)
//	and a Result shape pairing clustered points with outliers. Fit validates
//	its input and then reports ErrNotImplemented; the clustering itself
//	(region queries within epsilon, core points via minSamples, cluster
//	expansion) is not part of this package yet.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scientifics/cluster"
//
//	db := cluster.NewDBSCAN[float64](
//	  cluster.WithEpsilon(0.75), // neighbourhood radius
//	  cluster.WithMinSamples(10), // core-point threshold, point itself included
//	)
//	res, err := db.Fit(data) // data: [nSamples, nFeatures]
//
// Configuration errors (negative epsilon, non-positive minSamples) are
// programmer errors and panic in the option constructors.
package cluster
