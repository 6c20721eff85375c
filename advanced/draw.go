package advanced

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

const dbgDrawPadding = 20

// dbgDraw renders the triangulation, the insertion envelope around target,
// and the target itself, then cats the image to the terminal. Handy when a
// walk misbehaves on a new site configuration.
func (in *Interpolator) dbgDraw(target Point, scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range in.tri.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Triangulation wireframe
	c.SetLineWidth(1)
	c.SetRGB(0, 0.5, 0)
	for e := 0; e < len(in.tri.Triangles); e++ {
		// Draw each undirected edge once
		if in.tri.Halfedges[e] != noEdge && in.tri.Halfedges[e] < e {
			continue
		}
		from := in.tri.edgeOrigin(e)
		to := in.tri.edgeOrigin(nextHalfedge(e))
		c.DrawLine(from.X, from.Y, to.X, to.Y)
	}
	c.Stroke()

	// The envelope polygon, if the target is inside the hull
	if loc, ok := in.locate(target, true); ok && loc.site < 0 {
		c.SetLineWidth(2)
		c.SetRGB(0, 1, 1)
		started := false
		in.walkEnvelope(loc.start, target, func(w envelopeWindow) {
			p := in.tri.edgeOrigin(w.Base)
			if !started {
				c.MoveTo(p.X, p.Y)
				started = true
			} else {
				c.LineTo(p.X, p.Y)
			}
		})
		c.ClosePath()
		c.Stroke()
	}

	// The query point
	c.SetRGB(1, 0, 0)
	c.DrawCircle(target.X, target.Y, 3/scale)
	c.Fill()

	c.SavePNG("/tmp/interpolator.png")
	imgcat.CatFile("/tmp/interpolator.png", os.Stdout)
}
