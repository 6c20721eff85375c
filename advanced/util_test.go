package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1))
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1+Epsilon*2))
	assert.False(t, Equal(0, 1))
}

func TestNextHalfedge(t *testing.T) {
	// Each triangle's three edges cycle within their block
	expected := []int{1, 2, 0, 4, 5, 3, 7, 8, 6}
	for e := 0; e < 9; e++ {
		assert.Equal(t, expected[e], nextHalfedge(e))
	}
}

func TestMidpoint(t *testing.T) {
	m := midpoint(Point{0, 0}, Point{2, 4})
	assert.InDelta(t, 1, m.X, Epsilon)
	assert.InDelta(t, 2, m.Y, Epsilon)
}

func TestCircumcircle(t *testing.T) {
	t.Run("right triangle", func(t *testing.T) {
		// The circumcenter of a right triangle is the midpoint of its
		// hypotenuse
		center, r2 := circumcircle(Point{0, 0}, Point{1, 0}, Point{0, 1})
		assert.InDelta(t, 0.5, center.X, Epsilon)
		assert.InDelta(t, 0.5, center.Y, Epsilon)
		assert.InDelta(t, 0.5, r2, Epsilon)
	})

	t.Run("equilateral-ish triangle", func(t *testing.T) {
		a := Point{0, 0}
		b := Point{4, 0}
		c := Point{2, 3}
		center, r2 := circumcircle(a, b, c)
		// All three corners are equidistant from the center
		for _, p := range []Point{a, b, c} {
			dx := center.X - p.X
			dy := center.Y - p.Y
			assert.InDelta(t, r2, dx*dx+dy*dy, Epsilon)
		}
	})

	t.Run("winding independence", func(t *testing.T) {
		c1 := circumcenter(Point{0, 0}, Point{1, 0}, Point{0, 1})
		c2 := circumcenter(Point{0, 1}, Point{1, 0}, Point{0, 0})
		assert.InDelta(t, c1.X, c2.X, Epsilon)
		assert.InDelta(t, c1.Y, c2.Y, Epsilon)
	})
}

func TestPointInTriangle(t *testing.T) {
	a := Point{0, 0}
	b := Point{2, 0}
	c := Point{0, 2}

	assert.True(t, pointInTriangle(a, b, c, Point{0.5, 0.5}))
	assert.False(t, pointInTriangle(a, b, c, Point{2, 2}))
	assert.False(t, pointInTriangle(a, b, c, Point{-0.1, 0.5}))

	// The test is non-strict: corners and edge points are contained
	assert.True(t, pointInTriangle(a, b, c, a))
	assert.True(t, pointInTriangle(a, b, c, Point{1, 0}))
	assert.True(t, pointInTriangle(a, b, c, Point{1, 1}))

	// Winding should not matter
	assert.True(t, pointInTriangle(a, c, b, Point{0.5, 0.5}))
	assert.False(t, pointInTriangle(a, c, b, Point{2, 2}))
}
