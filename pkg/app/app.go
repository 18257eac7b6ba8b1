// Package app wraps application startup so the entry point stays
// small: it loads config and settings, builds the field scene, and
// implements the ebiten.Game interface the host loop drives.
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/morphfield/pkg/config"
	"github.com/gonewx/morphfield/pkg/game"
	"github.com/gonewx/morphfield/pkg/scenes"
)

// Config is the application startup configuration.
type Config struct {
	// Verbose enables log output; quiet by default.
	Verbose bool
	// ConfigPath points at the field tuning file. When the file is
	// missing the built-in defaults apply.
	ConfigPath string
}

// App implements ebiten.Game and delegates each tick to the field
// scene. The host render loop provides the pacing; the app does none
// of its own.
type App struct {
	scene    *scenes.FieldScene
	settings *game.SettingsManager

	width, height int
}

// New loads configuration and settings and builds the scene.
func New(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	fieldCfg, err := config.LoadFieldConfig(cfg.ConfigPath)
	if err != nil {
		// A present-but-broken config file is worth failing on; a
		// missing one just means defaults.
		if _, statErr := os.Stat(cfg.ConfigPath); statErr == nil {
			return nil, fmt.Errorf("field config: %w", err)
		}
		log.Printf("[App] No field config at %s, using defaults", cfg.ConfigPath)
		fieldCfg = config.DefaultFieldConfig()
	}

	// Settings storage is best-effort: a failed open degrades to
	// in-memory settings rather than refusing to start.
	gdataManager, err := gdata.Open(gdata.Config{AppName: "morphfield"})
	if err != nil {
		log.Printf("[App] Warning: settings storage unavailable: %v", err)
		gdataManager = nil
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	scene, err := scenes.NewFieldScene(fieldCfg, settings)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := settings.GetSettings()
	return &App{
		scene:    scene,
		settings: settings,
		width:    s.WindowWidth,
		height:   s.WindowHeight,
	}, nil
}

// Settings exposes the settings manager for window setup in main.
func (a *App) Settings() *game.SettingsManager { return a.settings }

// Update advances the scene by one tick.
func (a *App) Update() error {
	return a.scene.Update()
}

// Draw renders the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout reports the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}
