package advanced

// A 2D sample site or query location. Points are plain values with no
// identity; exact coordinate equality is only ever used to detect a query
// landing precisely on a site.
type Point struct {
	X float64
	Y float64
}

// A single natural neighbor's contribution to a query: the index of the
// site in the point list the Interpolator was built from, and its Sibson
// coordinate. Weights returned from the public API are normalized so that
// they sum to 1 for any in-hull query.
type Weight struct {
	Site   int
	Weight float64
}

// Lerpable is the one capability the interpolation core needs from a
// value type: a linear blend. Lerp must return
//
//	(1-weight)*self + weight*other
//
// for weight in [0, 1]. The core folds neighbors into a running blend one
// at a time, so it never inspects the value's structure beyond this.
type Lerpable[V any] interface {
	Lerp(other V, weight float64) V
}

// Float64 is the default Lerpable instance for plain real values. The
// Interpolator's Interpolate method accepts []float64 directly; Float64
// exists for callers who want the generic entry point with scalars.
type Float64 float64

func (f Float64) Lerp(other Float64, weight float64) Float64 {
	return f*Float64(1-weight) + other*Float64(weight)
}
