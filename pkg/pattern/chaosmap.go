package pattern

import (
	"github.com/chewxy/math32"
)

// Clifford map coefficients. This parameter set stays bounded (the map
// contracts into roughly [-2, 2] on both axes) and produces a dense,
// filament-like distribution.
const (
	cliffordA = -1.4
	cliffordB = 1.6
	cliffordC = 1.0
	cliffordD = 0.7

	cliffordZFreq = 1.5
	cliffordZAmp  = 0.6
)

// CliffordMap iterates the 2-D Clifford attractor map count times from
// a fixed seed state. Each iterate's (x, y) becomes a 3-D point with a
// z derived smoothly from the product x*y, which folds the flat map
// into a gentle saddle. Deterministic, exact count.
func CliffordMap(count int) []Point {
	points := make([]Point, count)
	x, y := float32(0.1), float32(0.0)
	for i := range points {
		nx := math32.Sin(cliffordA*y) + cliffordC*math32.Cos(cliffordA*x)
		ny := math32.Sin(cliffordB*x) + cliffordD*math32.Cos(cliffordB*y)
		x, y = nx, ny
		points[i] = Point{
			X: x,
			Y: y,
			Z: cliffordZAmp * math32.Sin(cliffordZFreq*x*y),
		}
	}
	return points
}
