package advanced

import (
	"github.com/fogleman/delaunay"
	"github.com/pkg/errors"
)

// The boundary sentinel in the halfedge list: an edge on the outer hull of
// the triangulation has no opposite. This matches the convention of the
// delaunay package. It doubles as the "not yet materialized" marker in the
// envelope walker's warm-up.
const noEdge = -1

// Triangulation is the immutable adjacency model every query reads from.
// It is built once, by an external Delaunay implementation, and never
// repaired or updated afterward.
//
// Triangles holds three site indices per triangle, all in the same winding
// order. Halfedges[e] is the opposite half-edge of e in the adjacent
// triangle, or noEdge when e lies on the hull. Edge e belongs to triangle
// e/3 and originates at site Triangles[e].
type Triangulation struct {
	Points    []Point
	Triangles []int
	Halfedges []int
}

func newTriangulation(points []Point) (*Triangulation, error) {
	if len(points) < 3 {
		return nil, errors.Errorf("interpolation requires at least 3 points, got %d", len(points))
	}

	dpoints := make([]delaunay.Point, len(points))
	for i, p := range points {
		dpoints[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	dt, err := delaunay.Triangulate(dpoints)
	if err != nil {
		return nil, errors.Wrap(err, "delaunay triangulation failed")
	}
	if len(dt.Triangles) == 0 {
		// All points collinear. There is no interior to interpolate over.
		return nil, errors.New("points are collinear, triangulation is empty")
	}

	return &Triangulation{
		Points:    points,
		Triangles: dt.Triangles,
		Halfedges: dt.Halfedges,
	}, nil
}

// Site coordinates at the origin of half-edge e.
func (t *Triangulation) edgeOrigin(e int) Point {
	return t.Points[t.Triangles[e]]
}

// Corner coordinates of triangle it.
func (t *Triangulation) triangleCorners(it int) (a, b, c Point) {
	return t.Points[t.Triangles[it*3]],
		t.Points[t.Triangles[it*3+1]],
		t.Points[t.Triangles[it*3+2]]
}

// Validate checks the half-edge reciprocity invariant: for every interior
// edge e, Halfedges[Halfedges[e]] == e. You normally shouldn't need to
// call this, but it is useful when feeding the Interpolator a
// triangulation from a source other than the built-in one.
func (t *Triangulation) Validate() error {
	if len(t.Triangles)%3 != 0 {
		return errors.Errorf("triangle list length %d is not divisible by 3", len(t.Triangles))
	}
	if len(t.Halfedges) != len(t.Triangles) {
		return errors.Errorf(
			"halfedge list length %d does not match triangle list length %d",
			len(t.Halfedges), len(t.Triangles))
	}
	for e, opposite := range t.Halfedges {
		if opposite == noEdge {
			continue
		}
		if opposite < 0 || opposite >= len(t.Halfedges) {
			return errors.Errorf("halfedge %d points at invalid edge %d", e, opposite)
		}
		if t.Halfedges[opposite] != e {
			return errors.Errorf("halfedge %d is not reciprocal with %d", e, opposite)
		}
	}
	return nil
}
