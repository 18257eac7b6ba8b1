// Package game holds application-level state that outlives a single
// frame: the persisted user settings.
package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the global user settings. They are not bound to a
// particular field configuration; morph state is deliberately not
// persisted across sessions.
type Settings struct {
	// Display settings
	WindowWidth  int  `yaml:"windowWidth"`  // Initial window width in pixels
	WindowHeight int  `yaml:"windowHeight"` // Initial window height in pixels
	Fullscreen   bool `yaml:"fullscreen"`   // Start in fullscreen

	// Field behavior
	AutoMorph         bool    `yaml:"autoMorph"`         // Trigger morphs on a timer
	AutoMorphInterval float64 `yaml:"autoMorphInterval"` // Seconds between auto triggers
}

// DefaultSettings returns the settings used on first run.
func DefaultSettings() *Settings {
	return &Settings{
		WindowWidth:       1024,
		WindowHeight:      768,
		Fullscreen:        false,
		AutoMorph:         false,
		AutoMorphInterval: 8.0,
	}
}

// SettingsManager loads, saves, and holds the current settings.
// With a nil gdata manager it runs in a degraded in-memory mode:
// settings work for the session but are not persisted.
type SettingsManager struct {
	gdataManager *gdata.Manager
	settings     *Settings
}

// Storage location inside the gdata container.
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager creates a settings manager and attempts to load
// previously saved settings. A load failure is not fatal; defaults are
// used and a warning is logged.
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: failed to load settings: %v (using defaults)", err)
	}
	return sm, nil
}

// Load reads settings from gdata. Missing storage or a missing file
// falls back to defaults without error; a corrupt file falls back to
// defaults and reports the error.
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loaded
	return nil
}

// Save writes the current settings to gdata. In degraded mode this is
// a silent no-op.
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings returns the current in-memory settings.
func (sm *SettingsManager) GetSettings() *Settings {
	return sm.settings
}

// SetWindowSize records the window size. Memory only; call Save to
// persist.
func (sm *SettingsManager) SetWindowSize(width, height int) {
	if width > 0 && height > 0 {
		sm.settings.WindowWidth = width
		sm.settings.WindowHeight = height
	}
}

// SetFullscreen records the fullscreen preference. Memory only; call
// Save to persist.
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetAutoMorph records the auto-morph toggle. Memory only; call Save
// to persist.
func (sm *SettingsManager) SetAutoMorph(enabled bool) {
	sm.settings.AutoMorph = enabled
}

// SetAutoMorphInterval records the auto-morph period in seconds,
// clamped to a 1 second minimum so the timer cannot spin.
func (sm *SettingsManager) SetAutoMorphInterval(seconds float64) {
	if seconds < 1 {
		seconds = 1
	}
	sm.settings.AutoMorphInterval = seconds
}
