package field

import (
	"testing"

	"github.com/gonewx/morphfield/pkg/pattern"
)

// TestNewStoreValidation tests that invalid buffer capacities are
// rejected at construction.
func TestNewStoreValidation(t *testing.T) {
	cases := []struct {
		name                     string
		particles, sparks, stars int
	}{
		{"zero particles", 0, 0, 10},
		{"negative particles", -1, 0, 10},
		{"sparks exceed particles", 10, 11, 10},
		{"negative sparks", 10, -1, 10},
		{"negative stars", 10, 5, -1},
	}
	for _, tc := range cases {
		if _, err := NewStore(tc.particles, tc.sparks, tc.stars, 10); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

// TestNewStoreCapacities tests that buffer lengths match the requested
// counts and star attributes are populated.
func TestNewStoreCapacities(t *testing.T) {
	s, err := NewStore(100, 25, 40, 10)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	if len(s.Main) != 300 || len(s.Sparks) != 75 || len(s.Stars) != 120 {
		t.Errorf("buffer lengths: main=%d sparks=%d stars=%d", len(s.Main), len(s.Sparks), len(s.Stars))
	}
	if len(s.Phases) != 100 || len(s.Sizes) != 100 || len(s.Brightness) != 40 {
		t.Errorf("attribute lengths: phases=%d sizes=%d brightness=%d",
			len(s.Phases), len(s.Sizes), len(s.Brightness))
	}
	for i, b := range s.Brightness {
		if b < starMinBright || b > starMaxBright {
			t.Errorf("star %d brightness %v out of range", i, b)
		}
	}
}

// TestFillMainLengthMismatch tests that a wrong-sized point set is
// rejected instead of silently truncated.
func TestFillMainLengthMismatch(t *testing.T) {
	s, err := NewStore(10, 2, 0, 10)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	if err := s.FillMain(make([]pattern.Point, 9)); err == nil {
		t.Error("expected error for short point set, got nil")
	}
}

// TestMirrorSparks tests that the sparkle buffer tracks the main
// buffer's prefix after fills and lerps.
func TestMirrorSparks(t *testing.T) {
	s, err := NewStore(4, 2, 0, 10)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	points := []pattern.Point{{X: 1}, {Y: 2}, {Z: 3}, {X: 4, Y: 4}}
	if err := s.FillMain(points); err != nil {
		t.Fatalf("FillMain() error: %v", err)
	}
	for i := range s.Sparks {
		if s.Sparks[i] != s.Main[i] {
			t.Fatalf("spark coord %d: got %v, want %v", i, s.Sparks[i], s.Main[i])
		}
	}

	from := s.SnapshotMain()
	to := make([]float32, len(from))
	for i := range to {
		to[i] = 100
	}
	s.Lerp(from, to, 0.5)
	s.MirrorSparks()
	for i := range s.Sparks {
		if s.Sparks[i] != s.Main[i] {
			t.Fatalf("spark coord %d after lerp: got %v, want %v", i, s.Sparks[i], s.Main[i])
		}
	}
}

// TestLerpEndpoints tests exact endpoint behavior at t=0 and t=1.
func TestLerpEndpoints(t *testing.T) {
	s, err := NewStore(3, 0, 0, 10)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	from := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	to := []float32{-1, -2, -3, -4, -5, -6, -7, -8, -9}

	s.Lerp(from, to, 0)
	for i := range s.Main {
		if s.Main[i] != from[i] {
			t.Fatalf("t=0 coord %d: got %v, want %v", i, s.Main[i], from[i])
		}
	}
	s.Lerp(from, to, 1)
	for i := range s.Main {
		if s.Main[i] != to[i] {
			t.Fatalf("t=1 coord %d: got %v, want %v", i, s.Main[i], to[i])
		}
	}
}

// TestStarsUntouched tests that fills and lerps never modify the
// starfield.
func TestStarsUntouched(t *testing.T) {
	s, err := NewStore(10, 5, 30, 10)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	before := make([]float32, len(s.Stars))
	copy(before, s.Stars)

	s.FillMain(make([]pattern.Point, 10))
	s.Lerp(s.SnapshotMain(), make([]float32, 30), 0.7)
	s.MirrorSparks()

	for i := range s.Stars {
		if s.Stars[i] != before[i] {
			t.Fatalf("star coord %d changed: %v -> %v", i, before[i], s.Stars[i])
		}
	}
}

// TestDirtyFlags tests the dirty bookkeeping the renderer relies on.
func TestDirtyFlags(t *testing.T) {
	s, err := NewStore(4, 2, 0, 10)
	if err != nil {
		t.Fatalf("NewStore() error: %v", err)
	}
	s.ClearDirty()
	if s.MainDirty() || s.SparkDirty() {
		t.Fatal("flags should be clear after ClearDirty")
	}
	s.Lerp(s.SnapshotMain(), make([]float32, 12), 0.5)
	if !s.MainDirty() {
		t.Error("Lerp should mark main dirty")
	}
	s.MirrorSparks()
	if !s.SparkDirty() {
		t.Error("MirrorSparks should mark sparks dirty")
	}
}
