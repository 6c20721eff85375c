package main

import (
	"bufio"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/interpolate/advanced"
)

// Demo of natural neighbor interpolation by rendering the interpolated
// field over a set of sample sites as a grayscale PNG. Input on stdin
// should be newline separated samples in the form "x y value", with value
// in [0, 1]. With no input, random sites are generated instead.
//
// Points outside the convex hull of the sites are left black.

var (
	width  = kingpin.Flag("width", "Output image width in pixels.").Default("800").Int()
	height = kingpin.Flag("height", "Output image height in pixels.").Default("800").Int()
	out    = kingpin.Flag("out", "Output PNG path.").Default("field.png").String()
	limit  = kingpin.Flag("limit", "Neighbor limit per query.").Default("30").Int()
	random = kingpin.Flag("random", "Number of random sites to generate when stdin is empty.").Default("32").Int()
	seed   = kingpin.Flag("seed", "Seed for random site generation.").Default("1").Int64()
)

func main() {
	kingpin.Parse()

	points, values := readSamples(os.Stdin)
	if len(points) == 0 {
		points, values = randomSamples(*random, *seed)
	}
	fmt.Printf("Read %d sites\n", len(points))

	in, err := advanced.NewInterpolatorWithLimit(points, *limit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not build interpolator:", err)
		os.Exit(1)
	}

	render(in, values, *out)
}

func readSamples(f *os.File) (points []advanced.Point, values []float64) {
	stat, err := f.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		// Interactive terminal; don't block waiting for input
		return nil, nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 3 {
			fmt.Fprintf(os.Stderr, "skipping malformed line %q\n", line)
			continue
		}
		x, _ := strconv.ParseFloat(parts[0], 64)
		y, _ := strconv.ParseFloat(parts[1], 64)
		v, _ := strconv.ParseFloat(parts[2], 64)
		points = append(points, advanced.Point{X: x, Y: y})
		values = append(values, v)
	}
	return points, values
}

func randomSamples(n int, seed int64) (points []advanced.Point, values []float64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		points = append(points, advanced.Point{
			X: rng.Float64(),
			Y: rng.Float64(),
		})
		values = append(values, rng.Float64())
	}
	return points, values
}

func render(in *advanced.Interpolator, values []float64, path string) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range in.Triangulation().Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	c := gg.NewContext(*width, *height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	for py := 0; py < *height; py++ {
		for px := 0; px < *width; px++ {
			target := advanced.Point{
				X: minX + (maxX-minX)*float64(px)/float64(*width-1),
				Y: minY + (maxY-minY)*float64(py)/float64(*height-1),
			}
			v, ok, err := in.Interpolate(values, target)
			if err != nil {
				fmt.Fprintf(os.Stderr, "query at (%g, %g) failed: %v\n", target.X, target.Y, err)
				os.Exit(1)
			}
			if !ok {
				continue
			}
			c.SetRGB(v, v, v)
			// Flip y so the origin is at the bottom left
			c.SetPixel(px, *height-1-py)
		}
	}

	if err := c.SavePNG(path); err != nil {
		fmt.Fprintln(os.Stderr, "could not save image:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote", path)
}
