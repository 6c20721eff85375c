package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestInterpolate(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
	values := []float64{1, 0, 1, 0}

	value, ok, err := Interpolate(points, values, Point{X: 0.5, Y: 0.5})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.5, value, 1e-6)
}

func TestInterpolateOutsideHull(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}
	values := []float64{1, 2, 3}

	_, ok, err := Interpolate(points, values, Point{X: 100, Y: 100})
	assert.NoError(t, err)
	assert.False(t, ok)
}
