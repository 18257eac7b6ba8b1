package pattern

// Normalize returns a copy of points translated so the axis-aligned
// bounding box is centered at the origin, then uniformly scaled so the
// largest box dimension equals size. The transform is a pure translate
// plus uniform scale, so shape topology is preserved and the output is
// independent of the generator's native coordinate range.
//
// A degenerate input whose bounding box has zero extent (for example a
// single point repeated) falls back to a divisor of 1, which collapses
// the set to the origin instead of dividing by zero.
func Normalize(points []Point, size float32) []Point {
	out := make([]Point, len(points))
	if len(points) == 0 {
		return out
	}

	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}

	center := Point{
		X: (min.X + max.X) / 2,
		Y: (min.Y + max.Y) / 2,
		Z: (min.Z + max.Z) / 2,
	}

	extent := max.X - min.X
	if e := max.Y - min.Y; e > extent {
		extent = e
	}
	if e := max.Z - min.Z; e > extent {
		extent = e
	}
	if extent == 0 {
		extent = 1
	}

	scale := size / extent
	for i, p := range points {
		out[i] = Point{
			X: (p.X - center.X) * scale,
			Y: (p.Y - center.Y) * scale,
			Z: (p.Z - center.Z) * scale,
		}
	}
	return out
}
