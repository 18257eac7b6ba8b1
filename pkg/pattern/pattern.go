// Package pattern provides the point-cloud shape generators for the
// particle field and the normalizer that maps their output into a
// fixed rendering scale.
//
// Each generator is a pure function from a target point count to a
// fresh point set. Generators keep their own internal recurrence state
// per call and never depend on external state, so repeated calls with
// the same count produce the same shape (up to the random resampling
// used to pad under-producing generators).
package pattern

// Point is a single 3-D coordinate in a generated point set.
type Point struct {
	X, Y, Z float32
}

// Generator produces exactly count points of one shape family.
// Implementations must return exactly count points with finite
// coordinates for any count >= 1, and must not panic.
type Generator func(count int) []Point

// Pattern pairs a generator with its display name.
type Pattern struct {
	Name     string    // Human-readable shape name shown in the HUD
	Generate Generator // Shape generator function
}

// Patterns returns the fixed pattern cycle in morph order.
// The morph controller advances through this list with wraparound.
func Patterns() []Pattern {
	return []Pattern{
		{Name: "Torus Knot", Generate: TorusKnot},
		{Name: "Lorenz Flow", Generate: LorenzFlow},
		{Name: "Dual Helix", Generate: DualHelix},
		{Name: "Clifford Map", Generate: CliffordMap},
	}
}
