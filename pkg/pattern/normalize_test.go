package pattern

import (
	"testing"

	"github.com/chewxy/math32"
)

const normTolerance = 1e-4

func boundingExtent(points []Point) float32 {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.X = math32.Min(min.X, p.X)
		min.Y = math32.Min(min.Y, p.Y)
		min.Z = math32.Min(min.Z, p.Z)
		max.X = math32.Max(max.X, p.X)
		max.Y = math32.Max(max.Y, p.Y)
		max.Z = math32.Max(max.Z, p.Z)
	}
	extent := max.X - min.X
	extent = math32.Max(extent, max.Y-min.Y)
	extent = math32.Max(extent, max.Z-min.Z)
	return extent
}

// TestNormalizeBoundingBox tests that the largest bounding-box
// dimension of the output equals the requested size for every
// generator, regardless of the generator's native coordinate range.
func TestNormalizeBoundingBox(t *testing.T) {
	const size = 12.0
	for _, pat := range Patterns() {
		points := Normalize(pat.Generate(400), size)
		extent := boundingExtent(points)
		if math32.Abs(extent-size) > normTolerance*size {
			t.Errorf("%s: normalized extent %v, want %v", pat.Name, extent, size)
		}
	}
}

// TestNormalizeScaleInvariance tests that pre-scaling and offsetting
// the input does not change the normalized output.
func TestNormalizeScaleInvariance(t *testing.T) {
	base := DualHelix(64)
	shifted := make([]Point, len(base))
	for i, p := range base {
		shifted[i] = Point{X: p.X*37 + 100, Y: p.Y*37 - 5, Z: p.Z*37 + 0.25}
	}

	a := Normalize(base, 8)
	b := Normalize(shifted, 8)
	for i := range a {
		if math32.Abs(a[i].X-b[i].X) > normTolerance ||
			math32.Abs(a[i].Y-b[i].Y) > normTolerance ||
			math32.Abs(a[i].Z-b[i].Z) > normTolerance {
			t.Fatalf("point %d differs after scale/offset: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// TestNormalizeIdempotent tests that normalizing an already-normalized
// set is a fixed point up to floating-point noise.
func TestNormalizeIdempotent(t *testing.T) {
	once := Normalize(CliffordMap(200), 10)
	twice := Normalize(once, 10)
	for i := range once {
		if math32.Abs(once[i].X-twice[i].X) > normTolerance ||
			math32.Abs(once[i].Y-twice[i].Y) > normTolerance ||
			math32.Abs(once[i].Z-twice[i].Z) > normTolerance {
			t.Fatalf("point %d moved on second normalize: %+v vs %+v", i, once[i], twice[i])
		}
	}
}

// TestNormalizeDegenerateInput tests the zero-extent fallback: a single
// repeated point collapses to the origin without dividing by zero.
func TestNormalizeDegenerateInput(t *testing.T) {
	same := []Point{{X: 3, Y: -7, Z: 42}, {X: 3, Y: -7, Z: 42}, {X: 3, Y: -7, Z: 42}}
	out := Normalize(same, 10)
	if len(out) != len(same) {
		t.Fatalf("got %d points, want %d", len(out), len(same))
	}
	for i, p := range out {
		if p != (Point{}) {
			t.Errorf("point %d: got %+v, want origin", i, p)
		}
	}
}

// TestNormalizeEmptyInput tests that an empty set normalizes to an
// empty set rather than panicking.
func TestNormalizeEmptyInput(t *testing.T) {
	out := Normalize(nil, 10)
	if len(out) != 0 {
		t.Errorf("got %d points, want 0", len(out))
	}
}
