// 2D natural neighbor interpolation for Go.
//
// This package estimates a value at an arbitrary query point as a weighted
// blend of nearby sample sites, where each weight is the site's Sibson
// coordinate: the share of Voronoi-cell area the query point would steal
// from that site if it were inserted into the sites' Delaunay
// triangulation. Natural neighbor interpolation is smooth inside the
// sites' convex hull and reproduces affine fields exactly.
package interpolate

import "github.com/osuushi/interpolate/advanced"

type Point = advanced.Point
type Weight = advanced.Weight
type Interpolator = advanced.Interpolator
type TooManyNeighborsError = advanced.TooManyNeighborsError

// ErrMismatchedLengths is returned when a value slice does not have one
// entry per site.
var ErrMismatchedLengths = advanced.ErrMismatchedLengths

// ErrDegenerateNeighborhood is returned when a query lands so close to
// collinear with two of its natural neighbors that its weights cannot be
// computed reliably. The Interpolator remains valid for other queries.
var ErrDegenerateNeighborhood = advanced.ErrDegenerateNeighborhood

// New builds a reusable Interpolator over the sample sites. Construction
// fails if the sites cannot be triangulated (fewer than three points, or
// all collinear). The Interpolator is immutable and safe for concurrent
// queries. See the advanced package for generic value types, explicit
// weight queries, and neighbor-limit overrides.
func New(points []Point) (*Interpolator, error) {
	return advanced.NewInterpolator(points)
}

// Interpolate is a one-shot convenience: build an Interpolator and query a
// single point. The boolean is false when the target is outside the sites'
// convex hull. If you have more than one query, build the Interpolator
// once with New and reuse it.
func Interpolate(points []Point, values []float64, target Point) (float64, bool, error) {
	in, err := advanced.NewInterpolator(points)
	if err != nil {
		return 0, false, err
	}
	return in.Interpolate(values, target)
}
