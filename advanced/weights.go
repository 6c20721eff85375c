package advanced

// weightArea computes the unnormalized Sibson weight of the natural
// neighbor at the origin of w.Base: the area the query point would steal
// from that site's Voronoi cell if it were inserted into the
// triangulation.
//
// Both areas involved are accumulated with a signed shoelace sum, term by
// term in traversal order, so the whole computation stays O(1) per fan
// triangle with no intermediate polygon buffers:
//
//   - "pre" walks the fan of cavity triangles between w.Prev and w.Base,
//     threading through their circumcenters from the prev edge midpoint to
//     the next edge midpoint. That is the wedge of the site's original
//     Voronoi cell spanned by its two envelope neighbors.
//   - "post" is the quadrilateral through the two midpoints and the two
//     circumcenters the inserted query would create. That is what remains
//     of the wedge after insertion.
//
// The signs match the triangulation's winding order, so pre - post is
// non-negative for interior queries.
func (in *Interpolator) weightArea(target Point, w envelopeWindow) float64 {
	pointPrev := in.tri.edgeOrigin(w.Prev)
	pointBase := in.tri.edgeOrigin(w.Base)
	pointNext := in.tri.edgeOrigin(w.Next)

	mPrev := midpoint(pointBase, pointPrev)
	mNext := midpoint(pointBase, pointNext)

	pre := 0.0
	last := mPrev
	ce := w.Prev
	for steps := 0; ; steps++ {
		if steps > in.maxNeighbors {
			throw(TooManyNeighborsError{Limit: in.maxNeighbors})
		}
		c := in.idx.centers[ce/3]
		pre += (last.X - c.X) * (last.Y + c.Y)
		last = c

		next := nextHalfedge(ce)
		if next == w.Base {
			break
		}
		ce = in.tri.Halfedges[next]
		if ce == noEdge {
			// The fan left the cavity, which cannot happen for a valid
			// locate on a well-formed triangulation. Treat it as the same
			// degeneracy the limit guards against.
			throw(TooManyNeighborsError{Limit: in.maxNeighbors})
		}
	}
	pre += (last.X-mNext.X)*(last.Y+mNext.Y) + (mNext.X-mPrev.X)*(mNext.Y+mPrev.Y)

	gPrev := stolenCircumcenter(target, pointBase, pointPrev)
	gNext := stolenCircumcenter(target, pointBase, pointNext)

	post := (mPrev.X-gPrev.X)*(mPrev.Y+gPrev.Y) +
		(gPrev.X-gNext.X)*(gPrev.Y+gNext.Y) +
		(gNext.X-mNext.X)*(gNext.Y+mNext.Y) +
		(mNext.X-mPrev.X)*(mNext.Y+mPrev.Y)

	return pre - post
}

// stolenCircumcenter is the circumcenter of the query with a consecutive
// pair of envelope sites: a corner of the Voronoi cell the inserted query
// would own. The three points are never collinear for a well-conditioned
// query (an invalidated interior edge leaves the envelope), but a sliver
// triangle whose circumcircle is too large for the strict containment test
// to resolve can keep a collinear pair on the envelope. Then the
// circumcenter determinant vanishes and the area terms blow up, so the
// query is refused before that happens. The test is relative: the cross
// product against the product of the leg lengths, which is the sine of the
// angle the pair subtends at the query.
func stolenCircumcenter(target, base, other Point) Point {
	ux, uy := base.X-target.X, base.Y-target.Y
	vx, vy := other.X-target.X, other.Y-target.Y
	cross := ux*vy - uy*vx
	if cross*cross <= Epsilon*Epsilon*(ux*ux+uy*uy)*(vx*vx+vy*vy) {
		throw(ErrDegenerateNeighborhood)
	}
	return circumcenter(target, base, other)
}
