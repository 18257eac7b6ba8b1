package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/chewxy/math32"

	"github.com/gonewx/morphfield/pkg/config"
	"github.com/gonewx/morphfield/pkg/field"
)

// Twinkle modulation: size and alpha oscillate between 0.5 and 1.0 per
// point, offset by the point's phase.
const (
	twinkleSpeed = 2.0
	twinkleBase  = 0.75
	twinkleDepth = 0.25

	starRadius  = 1.0
	sparkScale  = 0.45 // sparkle radius relative to its particle
	particleRad = 1.2  // world-to-pixel radius factor before perspective
)

// Renderer draws the starfield, main cloud, and sparkle overlay.
type Renderer struct {
	cam     *Camera
	palette config.PaletteConfig
}

// NewRenderer binds a camera and palette.
func NewRenderer(cam *Camera, palette config.PaletteConfig) *Renderer {
	return &Renderer{cam: cam, palette: palette}
}

// Draw renders the three clouds back to front: stars (static), main
// particles (hue-rotated, twinkling), sparkles (bright prefix echo).
// Clears the store's dirty flags afterwards, standing in for the
// buffer upload a GPU backend would perform.
func (r *Renderer) Draw(screen *ebiten.Image, store *field.Store, elapsed float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	for i := 0; i < store.StarCount; i++ {
		x, y, z := store.Stars[i*3], store.Stars[i*3+1], store.Stars[i*3+2]
		sx, sy, _, ok := r.cam.ProjectStatic(x, y, z, w, h)
		if !ok {
			continue
		}
		v := store.Brightness[i]
		c := color.RGBA{
			R: uint8(v * 255),
			G: uint8(v * 255),
			B: uint8(v * 255 * 0.9),
			A: 255,
		}
		vector.DrawFilledCircle(screen, sx, sy, starRadius, c, false)
	}

	for i := 0; i < store.ParticleCount; i++ {
		x, y, z := store.Main[i*3], store.Main[i*3+1], store.Main[i*3+2]
		sx, sy, scale, ok := r.cam.Project(x, y, z, w, h)
		if !ok {
			continue
		}
		tw := twinkleBase + twinkleDepth*math32.Sin(float32(elapsed)*twinkleSpeed+store.Phases[i])
		radius := store.Sizes[i] * particleRad * scale * tw / 10
		if radius < 0.5 {
			radius = 0.5
		}
		vector.DrawFilledCircle(screen, sx, sy, radius, r.particleColor(i, store.ParticleCount, elapsed, tw), true)
	}

	for i := 0; i < store.SparkCount; i++ {
		x, y, z := store.Sparks[i*3], store.Sparks[i*3+1], store.Sparks[i*3+2]
		sx, sy, scale, ok := r.cam.Project(x, y, z, w, h)
		if !ok {
			continue
		}
		tw := twinkleBase + twinkleDepth*math32.Sin(float32(elapsed)*twinkleSpeed*1.7+store.Phases[i])
		radius := store.Sizes[i] * particleRad * scale * sparkScale * tw / 10
		if radius < 0.4 {
			radius = 0.4
		}
		a := uint8(200 * tw)
		vector.DrawFilledCircle(screen, sx, sy, radius, color.RGBA{R: a, G: a, B: a, A: a}, true)
	}

	store.ClearDirty()
}

// particleColor computes the hue-rotated shade of point i. The hue
// drifts with elapsed time and spreads across the cloud by index.
func (r *Renderer) particleColor(i, count int, elapsed float64, twinkle float32) color.Color {
	p := r.palette
	hue := p.HueBase + p.HueSpeed*elapsed + p.HueRange*float64(i)/float64(count)
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	cr, cg, cb := colorful.Hsv(hue, p.Saturation, p.Value*float64(twinkle)).RGB255()
	return color.RGBA{R: cr, G: cg, B: cb, A: 255}
}
