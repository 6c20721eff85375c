// Package advanced implements natural neighbor (Sibson) interpolation
// over a scattered set of 2D sample sites. An Interpolator is built once
// from the sites and is then safe for any number of concurrent read-only
// queries: every query runs entirely on stack-local state.
package advanced

// Every internal traversal (the envelope walk, its advance loop, and the
// per-neighbor fan walk) is bounded by the neighbor limit. The default is
// generous: a site in a healthy Delaunay triangulation has six neighbors
// on average, so hitting 30 means the input is degenerate, not large.
const DefaultMaxNeighbors = 30

type Interpolator struct {
	tri          *Triangulation
	idx          *triangleIndex
	maxNeighbors int
}

// NewInterpolator builds an Interpolator over the given sample sites. It
// fails if the sites cannot be triangulated: fewer than three points, or
// all points collinear.
func NewInterpolator(points []Point) (*Interpolator, error) {
	return NewInterpolatorWithLimit(points, DefaultMaxNeighbors)
}

// NewInterpolatorWithLimit is NewInterpolator with an overridden neighbor
// limit. Raising the limit is the recovery path when queries against
// near-degenerate site sets fail with TooManyNeighborsError.
func NewInterpolatorWithLimit(points []Point, maxNeighbors int) (*Interpolator, error) {
	tri, err := newTriangulation(points)
	if err != nil {
		return nil, err
	}
	return &Interpolator{
		tri:          tri,
		idx:          newTriangleIndex(tri),
		maxNeighbors: maxNeighbors,
	}, nil
}

// NewInterpolatorFromTriangulation wraps an adjacency model produced by
// an external triangulation builder instead of the built-in one. The
// triangulation is validated eagerly and must not be mutated afterward.
func NewInterpolatorFromTriangulation(tri *Triangulation, maxNeighbors int) (*Interpolator, error) {
	if err := tri.Validate(); err != nil {
		return nil, err
	}
	return &Interpolator{
		tri:          tri,
		idx:          newTriangleIndex(tri),
		maxNeighbors: maxNeighbors,
	}, nil
}

// Triangulation exposes the adjacency model the Interpolator was built
// over. It must be treated as read-only.
func (in *Interpolator) Triangulation() *Triangulation {
	return in.tri
}

// visitNeighbors runs the full query pipeline: locate, walk the envelope,
// and report each natural neighbor with its unnormalized weight and the
// running weight sum. It reports nothing for a point outside the hull.
// The two public query shapes are just different folds over this stream.
func (in *Interpolator) visitNeighbors(target Point, apply func(site int, weight, weightSum float64)) {
	loc, ok := in.locate(target, true)
	if !ok {
		return
	}
	if loc.site >= 0 {
		apply(loc.site, 1, 1)
		return
	}

	sum := 0.0
	in.walkEnvelope(loc.start, target, func(w envelopeWindow) {
		weight := in.weightArea(target, w)
		sum += weight
		apply(in.tri.Triangles[w.Base], weight, sum)
	})
}

// Interpolate blends the values of target's natural neighbors by their
// Sibson coordinates. One value per site, in site order. The boolean is
// false when target is outside the triangulation's convex hull (which is
// a valid outcome, not an error).
func (in *Interpolator) Interpolate(values []float64, target Point) (value float64, ok bool, err error) {
	if len(values) != len(in.tri.Points) {
		return 0, false, ErrMismatchedLengths
	}
	defer func() {
		if recoveredErr := handleInterpolatePanicRecover(recover()); recoveredErr != nil {
			value, ok, err = 0, false, recoveredErr
		}
	}()

	in.visitNeighbors(target, func(site int, weight, weightSum float64) {
		if !ok {
			value, ok = values[site], true
			return
		}
		t := weight / weightSum
		value = value*(1-t) + values[site]*t
	})
	return value, ok, nil
}

// Interpolate is the generic query shape, for any value type with a linear
// blend. It folds neighbors into a running blend online, so it needs no
// per-query allocation regardless of the value type.
func Interpolate[V Lerpable[V]](in *Interpolator, values []V, target Point) (value V, ok bool, err error) {
	if len(values) != len(in.tri.Points) {
		return value, false, ErrMismatchedLengths
	}
	defer func() {
		if recoveredErr := handleInterpolatePanicRecover(recover()); recoveredErr != nil {
			var zero V
			value, ok, err = zero, false, recoveredErr
		}
	}()

	in.visitNeighbors(target, func(site int, weight, weightSum float64) {
		if !ok {
			value, ok = values[site], true
			return
		}
		value = value.Lerp(values[site], weight/weightSum)
	})
	return value, ok, nil
}

// Weights returns target's natural neighbors with their normalized Sibson
// coordinates, which sum to 1. A nil slice means no result: the point is
// outside the hull, or the envelope degenerated to zero total area.
//
// Folding the returned weights over a value slice agrees with Interpolate
// to within floating point tolerance.
func (in *Interpolator) Weights(target Point) (weights []Weight, err error) {
	defer func() {
		if recoveredErr := handleInterpolatePanicRecover(recover()); recoveredErr != nil {
			weights, err = nil, recoveredErr
		}
	}()

	sum := 0.0
	in.visitNeighbors(target, func(site int, weight, _ float64) {
		sum += weight
		weights = append(weights, Weight{Site: site, Weight: weight})
	})

	if sum == 0 {
		return nil, nil
	}
	for i := range weights {
		weights[i].Weight /= sum
	}
	return weights, nil
}
