package pattern

import (
	"github.com/chewxy/math32"
)

// Torus knot parameters. The (p, q) pair controls how many times the
// curve winds around the torus axis and through its hole; the tube
// radius lifts the curve off the torus surface so the cloud reads as
// a ribbon rather than a flat loop.
const (
	knotSamples = 2048 // distinct samples along the closed curve
	knotP       = 2
	knotQ       = 5
	knotRadius  = 1.0
	knotTube    = 0.35
)

// TorusKnot samples a dense (p, q) torus-knot curve and assigns output
// points by cycling through the sample array with wraparound. When
// count exceeds knotSamples the output contains duplicates, which is
// fine: duplicated points morph independently and diverge on the next
// transition.
func TorusKnot(count int) []Point {
	samples := make([]Point, knotSamples)
	for i := range samples {
		t := float32(i) / knotSamples * 2 * math32.Pi
		r := knotRadius + knotTube*math32.Cos(knotQ*t)
		samples[i] = Point{
			X: r * math32.Cos(knotP*t),
			Y: knotTube * math32.Sin(knotQ*t),
			Z: r * math32.Sin(knotP*t),
		}
	}

	points := make([]Point, count)
	for i := range points {
		points[i] = samples[i%knotSamples]
	}
	return points
}
