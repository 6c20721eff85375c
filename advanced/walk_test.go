package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkEnvelope(t *testing.T) {
	in, err := NewInterpolator([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	require.NoError(t, err)

	// Strictly inside one triangle, but inside both triangles'
	// circumcircles, so the cavity covers the whole square and the
	// envelope visits all four corners.
	target := Point{X: 0.3, Y: 0.2}
	loc, ok := in.locate(target, true)
	require.True(t, ok)
	require.Equal(t, -1, loc.site)

	var sites []int
	in.walkEnvelope(loc.start, target, func(w envelopeWindow) {
		// Every closed window has three materialized edges
		assert.NotEqual(t, noEdge, w.Prev)
		assert.NotEqual(t, noEdge, w.Base)
		assert.NotEqual(t, noEdge, w.Next)
		// Interior queries only ever produce positive area contributions
		assert.Greater(t, in.weightArea(target, w), 0.0)
		sites = append(sites, in.tri.Triangles[w.Base])
	})

	require.Len(t, sites, 4)
	seen := map[int]bool{}
	for _, site := range sites {
		seen[site] = true
	}
	assert.Len(t, seen, 4, "envelope must visit each natural neighbor exactly once")
}

func TestEnvelopeWindowString(t *testing.T) {
	// Smoke test for the debug format; names are nondeterministic
	w := envelopeWindow{Prev: noEdge, Base: 0, Next: 1}
	s := w.String()
	assert.Contains(t, s, "Window")
	assert.Contains(t, s, "#0")
	assert.Contains(t, s, "#1")
}
