package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/interpolate/dbg"
)

// The envelope walker streams the boundary of the Bowyer-Watson cavity:
// the closed polygon of half-edges around the triangles whose circumcircle
// the query point invalidates. The origin sites of those edges are exactly
// the query's natural neighbors.
//
// The walk keeps a rotating window of three consecutive envelope edges.
// A window is only meaningful once all three slots hold real edges, so the
// first two iterations are warm-up: they extend the window without
// visiting. Symmetrically, the last two windows of the loop wrap around to
// the first edges, which is why the first materialized pair is recorded
// and substituted when the walk closes.
type envelopeWindow struct {
	Prev, Base, Next int
}

func (w envelopeWindow) String() string {
	return fmt.Sprintf("Window { %s, %s, %s }",
		w.edgeName(w.Prev), w.edgeName(w.Base), w.edgeName(w.Next))
}

func (w envelopeWindow) edgeName(e int) string {
	if e == noEdge {
		return aurora.Cyan(dbg.Name(nil)).String()
	}
	return aurora.Green(fmt.Sprintf("%s#%d", dbg.Name(e), e)).String()
}

// walkEnvelope traverses the cavity boundary starting from an arbitrary
// half-edge of the triangle containing target, calling visit once per
// closed window. Every loop here is bounded by the Interpolator's neighbor
// limit; exceeding it throws TooManyNeighborsError rather than spinning on
// numerically degenerate input.
func (in *Interpolator) walkEnvelope(start int, target Point, visit func(w envelopeWindow)) {
	w := envelopeWindow{Prev: noEdge, Base: noEdge, Next: start}
	first := envelopeWindow{Prev: noEdge, Base: noEdge}

	for count := 0; ; count++ {
		if count > in.maxNeighbors {
			throw(TooManyNeighborsError{Limit: in.maxNeighbors})
		}

		// Advance Next across the cavity: as long as the triangle on the
		// other side of the edge also has the query inside its
		// circumcircle, the edge is interior to the cavity, and the
		// boundary continues in the opposite triangle. A hull edge or a
		// non-invalidated triangle means Next is the true boundary here.
		for steps := 0; ; steps++ {
			if steps > in.maxNeighbors {
				throw(TooManyNeighborsError{Limit: in.maxNeighbors})
			}
			opposite := in.tri.Halfedges[w.Next]
			if opposite == noEdge {
				break
			}
			if !in.idx.circumcircleContains(opposite/3, target) {
				break
			}
			w.Next = nextHalfedge(opposite)
		}

		// Skip the warm-up iterations where Prev hasn't materialized yet.
		if w.Prev != noEdge {
			if first.Prev == noEdge {
				first.Prev, first.Base = w.Prev, w.Base
			}
			visit(w)
		}

		w = envelopeWindow{Prev: w.Base, Base: w.Next, Next: nextHalfedge(w.Next)}

		// The walk has returned to the starting site: close the loop. The
		// trailing windows' Next legs wrap around to the first recorded
		// pair.
		if in.tri.Triangles[w.Next] == in.tri.Triangles[start] {
			visit(envelopeWindow{Prev: w.Prev, Base: w.Base, Next: first.Prev})
			visit(envelopeWindow{Prev: w.Base, Base: first.Prev, Next: first.Base})
			return
		}
	}
}
