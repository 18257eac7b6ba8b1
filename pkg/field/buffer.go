// Package field owns the live particle buffers: the static background
// starfield, the main morphing particle cloud, and the sparkle overlay
// that mirrors a prefix of the main cloud.
//
// The store is the single writer for all three buffers. All mutation
// happens synchronously inside the host render loop's tick callback;
// there is no concurrent access by construction.
package field

import (
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/gonewx/morphfield/pkg/pattern"
)

// Star scatter and attribute ranges. Stars live in a cube a few times
// larger than the particle field so they read as a distant backdrop.
const (
	starSpread    = 4.0 // cube half-extent as a multiple of field size
	starMinBright = 0.25
	starMaxBright = 1.0
	sizeMin       = 1.0
	sizeMax       = 2.4
)

// Store holds the position arrays for the three point clouds and the
// per-point visual attributes of the main cloud. Positions are packed
// as x,y,z triplets; buffer lengths are fixed at construction and only
// contents mutate afterwards.
type Store struct {
	ParticleCount int // points in the main cloud
	SparkCount    int // points in the sparkle overlay (prefix of main)
	StarCount     int // points in the background starfield

	Stars  []float32 // len StarCount*3, static after init
	Main   []float32 // len ParticleCount*3
	Sparks []float32 // len SparkCount*3, mirrors Main's prefix

	Brightness []float32 // per-star brightness, len StarCount
	Phases     []float32 // per-particle twinkle phase offset, len ParticleCount
	Sizes      []float32 // per-particle base size, len ParticleCount

	mainDirty  bool
	sparkDirty bool
}

// NewStore allocates the three buffers and scatters the starfield.
// sparkCount must not exceed particleCount since the sparkle overlay
// mirrors the first sparkCount points of the main buffer.
func NewStore(particleCount, sparkCount, starCount int, fieldSize float32) (*Store, error) {
	if particleCount <= 0 {
		return nil, fmt.Errorf("particle count must be positive, got %d", particleCount)
	}
	if sparkCount < 0 || sparkCount > particleCount {
		return nil, fmt.Errorf("spark count %d must be in [0, %d]", sparkCount, particleCount)
	}
	if starCount < 0 {
		return nil, fmt.Errorf("star count must not be negative, got %d", starCount)
	}

	s := &Store{
		ParticleCount: particleCount,
		SparkCount:    sparkCount,
		StarCount:     starCount,
		Stars:         make([]float32, starCount*3),
		Main:          make([]float32, particleCount*3),
		Sparks:        make([]float32, sparkCount*3),
		Brightness:    make([]float32, starCount),
		Phases:        make([]float32, particleCount),
		Sizes:         make([]float32, particleCount),
	}

	spread := fieldSize * starSpread
	for i := 0; i < starCount; i++ {
		s.Stars[i*3+0] = (rand.Float32()*2 - 1) * spread
		s.Stars[i*3+1] = (rand.Float32()*2 - 1) * spread
		s.Stars[i*3+2] = (rand.Float32()*2 - 1) * spread
		s.Brightness[i] = starMinBright + rand.Float32()*(starMaxBright-starMinBright)
	}
	for i := 0; i < particleCount; i++ {
		s.Phases[i] = rand.Float32() * 2 * math32.Pi
		s.Sizes[i] = sizeMin + rand.Float32()*(sizeMax-sizeMin)
	}
	return s, nil
}

// Flatten packs a point set into an x,y,z coordinate array.
func Flatten(points []pattern.Point) []float32 {
	coords := make([]float32, len(points)*3)
	for i, p := range points {
		coords[i*3+0] = p.X
		coords[i*3+1] = p.Y
		coords[i*3+2] = p.Z
	}
	return coords
}

// FillMain copies a point set into the main buffer and syncs the
// sparkle overlay. Used for the initial fill; morphs go through Lerp.
func (s *Store) FillMain(points []pattern.Point) error {
	if len(points) != s.ParticleCount {
		return fmt.Errorf("point set length %d does not match particle count %d",
			len(points), s.ParticleCount)
	}
	copy(s.Main, Flatten(points))
	s.mainDirty = true
	s.MirrorSparks()
	return nil
}

// SnapshotMain returns a copy of the current main positions.
func (s *Store) SnapshotMain() []float32 {
	snap := make([]float32, len(s.Main))
	copy(snap, s.Main)
	return snap
}

// Lerp writes from + (to-from)*t into the main buffer for every
// coordinate index. from and to must both have the main buffer's
// length; anything else is a caller bug.
func (s *Store) Lerp(from, to []float32, t float32) {
	for i := range s.Main {
		s.Main[i] = from[i] + (to[i]-from[i])*t
	}
	s.mainDirty = true
}

// SetMain copies a coordinate array into the main buffer verbatim.
// Used on the morph completion tick so the buffer lands on the target
// exactly, without float residue from the lerp arithmetic.
func (s *Store) SetMain(coords []float32) {
	copy(s.Main, coords)
	s.mainDirty = true
}

// MirrorSparks copies the first SparkCount*3 coordinates of the main
// buffer into the sparkle buffer. Runs every tick, morphing or not.
func (s *Store) MirrorSparks() {
	copy(s.Sparks, s.Main[:len(s.Sparks)])
	s.sparkDirty = true
}

// MainDirty reports whether the main buffer changed since the last
// ClearDirty. The renderer uses this to decide what to re-upload.
func (s *Store) MainDirty() bool { return s.mainDirty }

// SparkDirty reports whether the sparkle buffer changed since the last
// ClearDirty.
func (s *Store) SparkDirty() bool { return s.sparkDirty }

// ClearDirty marks both mutable buffers as uploaded.
func (s *Store) ClearDirty() {
	s.mainDirty = false
	s.sparkDirty = false
}
