package advanced

import "math"

const Epsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If
// we don't account for this, hairline area contributions from nearly
// degenerate triangles get treated as meaningful.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Half-edges are indexed 3*triangle + corner, so stepping to the next edge
// of the same triangle wraps within the block of three.
func nextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Circumcenter of the triangle a, b, c: the point equidistant from all
// three corners. The caller is responsible for not passing a degenerate
// (collinear) triangle; the determinant d would be zero.
func circumcenter(a, b, c Point) Point {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	return Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
}

// Circumcircle of the triangle a, b, c as center plus squared radius.
// The squared form avoids a sqrt in the inner walk loop, where this feeds
// the point-in-circumcircle test.
func circumcircle(a, b, c Point) (center Point, radius2 float64) {
	center = circumcenter(a, b, c)
	dx := center.X - a.X
	dy := center.Y - a.Y
	return center, dx*dx + dy*dy
}
