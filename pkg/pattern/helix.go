package pattern

import (
	"github.com/chewxy/math32"
)

// Dual helix parameters: two strands share the same axis and pitch,
// offset radially by +/- helixDelta.
const (
	helixTurns  = 6
	helixHeight = 2.6
	helixRadius = 0.9
	helixDelta  = 0.22
)

// DualHelix sweeps two interleaved helices over a fixed number of
// turns and height. Even indices go to the outer strand, odd indices
// to the inner one. Closed form, exact count, no padding needed.
func DualHelix(count int) []Point {
	points := make([]Point, count)
	for i := range points {
		u := float32(i) / float32(count)
		angle := u * helixTurns * 2 * math32.Pi

		r := float32(helixRadius + helixDelta)
		if i%2 == 1 {
			r = helixRadius - helixDelta
			angle += math32.Pi // opposite strand
		}

		points[i] = Point{
			X: r * math32.Cos(angle),
			Y: (u - 0.5) * helixHeight,
			Z: r * math32.Sin(angle),
		}
	}
	return points
}
