// Package scenes contains the frame driver: the ebiten-facing scene
// that advances the particle subsystem once per displayed frame.
package scenes

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/morphfield/pkg/config"
	"github.com/gonewx/morphfield/pkg/field"
	"github.com/gonewx/morphfield/pkg/gallery"
	"github.com/gonewx/morphfield/pkg/game"
	"github.com/gonewx/morphfield/pkg/morph"
	"github.com/gonewx/morphfield/pkg/pattern"
	"github.com/gonewx/morphfield/pkg/render"
)

// FieldScene owns the particle subsystem and routes input to it. Each
// Update tick it advances the shared elapsed-time value, polls input,
// steps the morph controller, and rotates the cloud transform; Draw
// hands the buffers to the renderer and stacks the gallery on top.
type FieldScene struct {
	cfg      *config.FieldConfig
	settings *game.SettingsManager

	store      *field.Store
	controller *morph.Controller
	camera     *render.Camera
	renderer   *render.Renderer
	gallery    *gallery.Gallery

	elapsed   float64 // shared time uniform for shading
	autoTimer float64 // seconds until the next auto-morph trigger
}

// NewFieldScene builds the buffer store, fills it with the first
// pattern, and wires the controller, camera, renderer, and gallery.
func NewFieldScene(cfg *config.FieldConfig, settings *game.SettingsManager) (*FieldScene, error) {
	store, err := field.NewStore(cfg.ParticleCount, cfg.SparkCount, cfg.StarCount, cfg.FieldSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create buffer store: %w", err)
	}

	patterns := pattern.Patterns()
	initial := pattern.Normalize(patterns[0].Generate(cfg.ParticleCount), cfg.FieldSize)
	if err := store.FillMain(initial); err != nil {
		return nil, fmt.Errorf("failed to fill initial pattern: %w", err)
	}

	controller, err := morph.NewController(store, patterns, cfg.FieldSize, cfg.MorphStep)
	if err != nil {
		return nil, fmt.Errorf("failed to create morph controller: %w", err)
	}

	camera := render.NewCamera(cfg.CameraDistance)
	return &FieldScene{
		cfg:        cfg,
		settings:   settings,
		store:      store,
		controller: controller,
		camera:     camera,
		renderer:   render.NewRenderer(camera, cfg.Palette),
		gallery:    gallery.New(cfg.Gallery.ThumbnailSize),
		autoTimer:  settings.GetSettings().AutoMorphInterval,
	}, nil
}

// MorphNow is the external trigger surface: fire-and-forget, ignored
// while a transition is in flight.
func (s *FieldScene) MorphNow() {
	s.controller.Trigger()
}

// Update runs once per ebiten tick. Ordering matters: input may start
// a morph in the same tick the controller then advances, which is how
// the original behaves (the trigger's generation cost lands inside
// this tick as a bounded hitch).
func (s *FieldScene) Update() error {
	dt := 1.0 / float64(ebiten.TPS())
	s.elapsed += dt

	if files := ebiten.DroppedFiles(); files != nil {
		if err := s.gallery.IngestDropped(files); err != nil {
			log.Printf("[FieldScene] Dropped file ingest failed: %v", err)
		}
	}

	if s.gallery.IsOpen() {
		s.updateLightboxInput()
	} else {
		s.updateFieldInput(dt)
	}

	// Rotation and the controller tick run every frame regardless of
	// morph state or lightbox focus.
	s.camera.Advance(s.cfg.RotationSpeed)
	s.controller.Tick()
	return nil
}

// updateLightboxInput handles keys while the lightbox holds focus.
// Field input is suppressed: the overlay acts as a scroll lock.
func (s *FieldScene) updateLightboxInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyG):
		s.gallery.Close()
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		s.gallery.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		s.gallery.Prev()
	}
}

// updateFieldInput handles the normal controls and the auto-morph
// timer.
func (s *FieldScene) updateFieldInput(dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.MorphNow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		enabled := !s.settings.GetSettings().AutoMorph
		s.settings.SetAutoMorph(enabled)
		if err := s.settings.Save(); err != nil {
			log.Printf("[FieldScene] Failed to save settings: %v", err)
		}
		s.autoTimer = s.settings.GetSettings().AutoMorphInterval
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		s.settings.SetFullscreen(full)
		if err := s.settings.Save(); err != nil {
			log.Printf("[FieldScene] Failed to save settings: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && s.gallery.HasPhotos() {
		s.gallery.Open(0)
	}

	if s.settings.GetSettings().AutoMorph {
		s.autoTimer -= dt
		if s.autoTimer <= 0 {
			s.MorphNow()
			s.autoTimer = s.settings.GetSettings().AutoMorphInterval
		}
	}
}

// Draw renders the field and the gallery overlay, plus a small HUD.
func (s *FieldScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.store, s.elapsed)
	s.gallery.Draw(screen)
	s.drawHUD(screen)
}

func (s *FieldScene) drawHUD(screen *ebiten.Image) {
	status := fmt.Sprintf("Pattern: %s", s.controller.CurrentName())
	if s.controller.State() == morph.StateTransitioning {
		status = fmt.Sprintf("%s  (morphing %.0f%%)", status, s.controller.Progress()*100)
	}
	if s.settings.GetSettings().AutoMorph {
		status += "  [auto]"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)

	help := "Space/Click: morph  Tab: auto  F: fullscreen"
	if s.gallery.HasPhotos() {
		help += "  G: lightbox"
	} else {
		help += "  (drop photos onto the window)"
	}
	ebitenutil.DebugPrintAt(screen, help, 8, 24)
}
