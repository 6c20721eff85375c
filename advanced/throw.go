package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading error returns through every level of the envelope walk and the
// per-neighbor fan walks would clutter all of the traversal code for a
// condition that almost never fires. Instead, the guards panic with a
// wrapped error, and the public API recovers at the boundary to convert it
// back into an ordinary error.

// ErrMismatchedLengths is returned when the value slice handed to an
// interpolation query does not have one value per site. It is detected
// before any traversal starts.
var ErrMismatchedLengths = errors.New("number of values does not match number of sites")

// ErrDegenerateNeighborhood is returned when a query point is collinear,
// within tolerance, with two consecutive sites of its insertion envelope.
// The stolen-area circumcenters for such a pair sit arbitrarily far away
// and their contributions cancel to garbage, so the query is refused
// instead of returning a wrong value. The Interpolator remains valid for
// other queries.
//
// On a well-formed Delaunay triangulation a point on (or near) an interior
// edge always invalidates both adjacent circumcircles, so this only fires
// when a sliver triangle's circumcircle is too large for the strict
// containment test to resolve.
var ErrDegenerateNeighborhood = errors.New("query point is degenerate with its natural neighbors")

// TooManyNeighborsError reports that an envelope or fan walk exceeded the
// Interpolator's configured neighbor limit. This indicates a numerically
// degenerate site configuration (near-duplicate or cocircular clusters).
// The query is abandoned, but the Interpolator remains valid; callers can
// retry with a larger limit via NewInterpolatorWithLimit.
type TooManyNeighborsError struct {
	Limit int
}

func (e TooManyNeighborsError) Error() string {
	return fmt.Sprintf("envelope walk exceeded the neighbor limit (%d)", e.Limit)
}

// thrownError marks panics raised by our own guards, so that the recover
// handler never swallows a genuine runtime panic.
type thrownError struct {
	err error
}

func throw(err error) {
	panic(thrownError{err: errors.WithStack(err)})
}

func handleInterpolatePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if thrown, ok := r.(thrownError); ok {
		return thrown.err
	}
	panic(r)
}
