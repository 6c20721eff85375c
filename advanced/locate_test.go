package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	in, err := NewInterpolator(gridPoints(4, 4))
	require.NoError(t, err)

	t.Run("outside hull", func(t *testing.T) {
		_, ok := in.locate(Point{X: -5, Y: -5}, true)
		assert.False(t, ok)
		_, ok = in.locate(Point{X: 100, Y: 1.5}, true)
		assert.False(t, ok)
	})

	t.Run("strictly inside a triangle", func(t *testing.T) {
		loc, ok := in.locate(Point{X: 1.3, Y: 1.2}, true)
		require.True(t, ok)
		assert.Equal(t, -1, loc.site)
		// The start edge's triangle must actually contain the point
		a, b, c := in.tri.triangleCorners(loc.start / 3)
		assert.True(t, pointInTriangle(a, b, c, Point{X: 1.3, Y: 1.2}))
	})

	t.Run("exactly on a site", func(t *testing.T) {
		loc, ok := in.locate(Point{X: 2, Y: 1}, true)
		require.True(t, ok)
		require.GreaterOrEqual(t, loc.site, 0)
		assert.Equal(t, Point{X: 2, Y: 1}, in.tri.Points[loc.site])
	})

	t.Run("exactly on a hull corner site", func(t *testing.T) {
		// A hull corner may belong to a single triangle, so the fast path
		// must not depend on multiple candidates
		loc, ok := in.locate(Point{X: 0, Y: 0}, true)
		require.True(t, ok)
		require.GreaterOrEqual(t, loc.site, 0)
		assert.Equal(t, Point{X: 0, Y: 0}, in.tri.Points[loc.site])
	})

	t.Run("exactly on the hull boundary", func(t *testing.T) {
		// The strict convention: a point on the hull itself is outside
		_, ok := in.locate(Point{X: 0.5, Y: 0}, true)
		assert.False(t, ok)
		_, ok = in.locate(Point{X: 3, Y: 1.5}, true)
		assert.False(t, ok)
	})

	t.Run("on a shared edge", func(t *testing.T) {
		// Midway between two lattice neighbors, so the point is on an edge
		// of the triangulation and several triangles claim it
		target := Point{X: 1.5, Y: 1}
		loc, ok := in.locate(target, true)
		require.True(t, ok)
		assert.Equal(t, -1, loc.site)

		// Without the perturbation probe the same point is unresolvable
		_, ok = in.locate(target, false)
		assert.False(t, ok)
	})
}
