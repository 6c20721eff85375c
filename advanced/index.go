package advanced

import (
	"math"

	"github.com/tidwall/rtree"
)

// The spatial index maps a query point to the triangles that might contain
// it. Each triangle is indexed by the bounding box of its circumcircle,
// which we need anyway for the in-cavity test during the envelope walk.
// The index is a coarse filter, never authoritative: every candidate it
// returns is re-checked with the exact barycentric test below.

type triangleIndex struct {
	tree rtree.RTreeG[int]
	// circumcircle of each triangle, precomputed once
	centers []Point
	radius2 []float64
}

func newTriangleIndex(t *Triangulation) *triangleIndex {
	n := len(t.Triangles) / 3
	idx := &triangleIndex{
		centers: make([]Point, n),
		radius2: make([]float64, n),
	}
	for it := 0; it < n; it++ {
		a, b, c := t.triangleCorners(it)
		center, r2 := circumcircle(a, b, c)
		idx.centers[it] = center
		idx.radius2[it] = r2

		r := math.Sqrt(r2)
		idx.tree.Insert(
			[2]float64{center.X - r, center.Y - r},
			[2]float64{center.X + r, center.Y + r},
			it,
		)
	}
	return idx
}

// candidates returns the triangles whose indexed region contains p, in no
// particular order.
func (idx *triangleIndex) candidates(p Point) []int {
	var out []int
	q := [2]float64{p.X, p.Y}
	idx.tree.Search(q, q, func(_, _ [2]float64, it int) bool {
		out = append(out, it)
		return true
	})
	return out
}

// Strict point-in-circumcircle test for triangle it. Strictness matters:
// a query exactly on a circumcircle does not invalidate the triangle, so
// cocircular ties consistently fall outside the cavity.
func (idx *triangleIndex) circumcircleContains(it int, p Point) bool {
	c := idx.centers[it]
	dx := c.X - p.X
	dy := c.Y - p.Y
	return dx*dx+dy*dy < idx.radius2[it]
}

// Exact, sign-based point-in-triangle test by barycentric coordinates.
// Non-strict, so points on an edge or corner count as contained by every
// triangle that shares it; the locator resolves those ties.
func pointInTriangle(a, b, c, p Point) bool {
	area2 := -b.Y*c.X + a.Y*(-b.X+c.X) + a.X*(b.Y-c.Y) + b.X*c.Y

	s := (a.Y*c.X - a.X*c.Y + (c.Y-a.Y)*p.X + (a.X-c.X)*p.Y) / area2
	t := (a.X*b.Y - a.Y*b.X + (a.Y-b.Y)*p.X + (b.X-a.X)*p.Y) / area2

	return s >= 0 && t >= 0 && 1-s-t >= 0
}
