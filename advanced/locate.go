package advanced

// How far the locator nudges an ambiguous query before retrying. Well
// below Epsilon, so the perturbation can never move a point across a
// feature the rest of the math would notice, and well above f64 noise at
// ordinary coordinate scales.
const probeDelta = 1e-9

var probeOffsets = [4]Point{
	{probeDelta, probeDelta},
	{probeDelta, -probeDelta},
	{-probeDelta, probeDelta},
	{-probeDelta, -probeDelta},
}

// location resolves a query point to its starting position in the
// triangulation: either a half-edge of the single triangle containing it,
// or (for a query exactly on a site) the site itself, which short-circuits
// the whole walk with weight 1.
type location struct {
	start int // a half-edge of the containing triangle, or noEdge
	site  int // exactly-hit site index, or -1
}

// locate finds where target sits in the triangulation. The second return
// is false when the point is outside the convex hull (including exactly on
// it) or on a shared edge that no perturbation probe can disambiguate;
// both mean "no interpolation", not an error.
//
// The probe flag allows one level of perturbed retry and no more: a query
// on a shared interior edge makes the exact containment test ambiguous
// (several triangles claim the point), so we retry at four diagonally
// nudged positions until exactly one triangle claims it, strictly. Only
// the locate step uses the nudged point; all area math downstream runs on
// the original query.
func (in *Interpolator) locate(target Point, probe bool) (location, bool) {
	var hits []int
	for _, it := range in.idx.candidates(target) {
		a, b, c := in.tri.triangleCorners(it)
		if pointInTriangle(a, b, c, target) {
			hits = append(hits, it)
		}
	}

	if len(hits) == 0 {
		return location{}, false
	}

	// Exact-hit fast path. This must run before the ambiguity handling:
	// a query on a site is the one case the area formula cannot handle
	// (the circumcircle through two coincident points is undefined), and
	// it can show up with any number of candidates, including a single
	// one at a convex hull corner.
	for _, it := range hits {
		for corner := 0; corner < 3; corner++ {
			site := in.tri.Triangles[it*3+corner]
			if in.tri.Points[site] == target {
				return location{start: noEdge, site: site}, true
			}
		}
	}

	if len(hits) == 1 {
		it := hits[0]
		if e := in.exactBoundaryEdge(it, target); e != noEdge {
			if in.tri.Halfedges[e] == noEdge {
				// Exactly on the hull boundary. Under the strict
				// convention this point is outside; the area formula
				// would degenerate on the collinear site pair anyway.
				return location{}, false
			}
			// On an interior edge even though only one triangle claimed
			// the point: same ambiguity as a multi-hit, so fall through
			// to the probe.
		} else {
			return location{start: it * 3, site: -1}, true
		}
	}

	if !probe {
		return location{}, false
	}
	for _, offset := range probeOffsets {
		nudged := Point{X: target.X + offset.X, Y: target.Y + offset.Y}
		if loc, ok := in.locate(nudged, false); ok {
			return loc, true
		}
	}
	return location{}, false
}

// exactBoundaryEdge reports the half-edge of triangle it whose supporting
// line target sits on exactly, or noEdge when target is not exactly on the
// triangle's boundary. Corners never reach this: they are caught by the
// exact-hit fast path first.
func (in *Interpolator) exactBoundaryEdge(it int, p Point) int {
	a, b, c := in.tri.triangleCorners(it)
	area2 := -b.Y*c.X + a.Y*(-b.X+c.X) + a.X*(b.Y-c.Y) + b.X*c.Y

	s := (a.Y*c.X - a.X*c.Y + (c.Y-a.Y)*p.X + (a.X-c.X)*p.Y) / area2
	t := (a.X*b.Y - a.Y*b.X + (a.Y-b.Y)*p.X + (b.X-a.X)*p.Y) / area2

	// s, t and 1-s-t are the barycentric weights of corners b, c and a.
	// A zero weight puts the point on the edge joining the other two.
	switch {
	case t == 0: // on a-b
		return it * 3
	case 1-s-t == 0: // on b-c
		return it*3 + 1
	case s == 0: // on c-a
		return it*3 + 2
	}
	return noEdge
}
