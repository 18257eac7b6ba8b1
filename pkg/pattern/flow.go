package pattern

import (
	"math/rand"
)

// Lorenz system parameters (classic sigma/rho/beta values) and the
// integration schedule. Derivatives are evaluated first and all three
// variables step together; changing that order changes the trajectory.
const (
	lorenzSigma = 10.0
	lorenzRho   = 28.0
	lorenzBeta  = 8.0 / 3.0
	lorenzDt    = 0.004

	lorenzWarmup = 200    // integration steps discarded before sampling
	lorenzStride = 3      // keep every lorenzStride-th step
	lorenzBudget = 400000 // hard cap on integration steps
)

// LorenzFlow integrates the Lorenz attractor forward from fixed initial
// conditions with a fixed step size, discards a warm-up prefix, and
// subsamples the trajectory until count points are collected or the
// iteration budget runs out. If the budget is exhausted first the
// output is padded by random resampling of already-collected points.
func LorenzFlow(count int) []Point {
	points := make([]Point, 0, count)
	x, y, z := float32(0.1), float32(0.0), float32(0.0)

	for step := 0; step < lorenzBudget && len(points) < count; step++ {
		dx := lorenzSigma * (y - x)
		dy := x*(lorenzRho-z) - y
		dz := x*y - lorenzBeta*z
		x += dx * lorenzDt
		y += dy * lorenzDt
		z += dz * lorenzDt

		if step < lorenzWarmup || step%lorenzStride != 0 {
			continue
		}
		points = append(points, Point{X: x, Y: y, Z: z})
	}

	return padToCount(points, count)
}

// padToCount extends points to exactly count entries by randomly
// resampling already-collected points. An empty input is seeded with
// the origin so there is always at least one point to pad from.
func padToCount(points []Point, count int) []Point {
	if len(points) == 0 {
		points = append(points, Point{})
	}
	collected := len(points)
	for len(points) < count {
		points = append(points, points[rand.Intn(collected)])
	}
	return points[:count]
}
