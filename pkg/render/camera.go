// Package render projects the field buffers to screen space and draws
// them. It is the boundary to the display pipeline: it reads buffers,
// never writes them, and clears the store's dirty flags after a draw
// the way a GPU upload would.
package render

import (
	"github.com/chewxy/math32"
)

// Camera tilt around X, fixed. A slight downward tilt keeps the cloud
// from reading as a flat disc when the rotation axis aligns with view.
const cameraTilt = 0.35

// nearClip rejects points at or behind the eye plane.
const nearClip = 0.1

// Camera applies the continuous cloud rotation and a perspective
// projection. Rotation advances once per tick, independent of morph
// state; only the main and sparkle clouds rotate, the starfield is
// projected without it.
type Camera struct {
	Distance float32 // eye offset along the view axis
	angle    float32 // accumulated rotation around Y
}

// NewCamera returns a camera at the given distance with zero rotation.
func NewCamera(distance float32) *Camera {
	return &Camera{Distance: distance}
}

// Advance rotates the cloud transform by speed radians, wrapping to
// keep the accumulator small.
func (c *Camera) Advance(speed float32) {
	c.angle += speed
	if c.angle > 2*math32.Pi {
		c.angle -= 2 * math32.Pi
	}
	if c.angle < -2*math32.Pi {
		c.angle += 2 * math32.Pi
	}
}

// Angle returns the accumulated cloud rotation in radians.
func (c *Camera) Angle() float32 { return c.angle }

// Project maps a rotated field coordinate to screen space. ok is false
// when the point falls at or behind the near plane. scale is the
// perspective factor callers multiply point sizes by.
func (c *Camera) Project(x, y, z float32, width, height int) (sx, sy, scale float32, ok bool) {
	return c.project(x, y, z, c.angle, width, height)
}

// ProjectStatic maps a field coordinate without the cloud rotation.
// Used for the starfield, which stays fixed while the clouds turn.
func (c *Camera) ProjectStatic(x, y, z float32, width, height int) (sx, sy, scale float32, ok bool) {
	return c.project(x, y, z, 0, width, height)
}

func (c *Camera) project(x, y, z, angle float32, width, height int) (float32, float32, float32, bool) {
	// Rotate around Y, then apply the fixed tilt around X.
	sinA, cosA := math32.Sin(angle), math32.Cos(angle)
	rx := x*cosA + z*sinA
	rz := -x*sinA + z*cosA

	sinT, cosT := math32.Sin(cameraTilt), math32.Cos(cameraTilt)
	ry := y*cosT - rz*sinT
	rz = y*sinT + rz*cosT

	depth := c.Distance + rz
	if depth < nearClip {
		return 0, 0, 0, false
	}

	focal := float32(height)
	s := focal / depth
	return float32(width)/2 + rx*s, float32(height)/2 - ry*s, s, true
}
