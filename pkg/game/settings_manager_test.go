package game

import (
	"os"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// TestDefaultSettings tests the first-run values.
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.WindowWidth != 1024 || s.WindowHeight != 768 {
		t.Errorf("window size: got %dx%d, want 1024x768", s.WindowWidth, s.WindowHeight)
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if s.AutoMorph {
		t.Error("AutoMorph: got true, want false")
	}
	if s.AutoMorphInterval != 8.0 {
		t.Errorf("AutoMorphInterval: got %v, want 8.0", s.AutoMorphInterval)
	}
}

// newTestGdata creates a gdata manager rooted in a temp directory.
func newTestGdata(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	m, err := gdata.Open(gdata.Config{
		AppName: "test_morphfield",
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

// TestSettingsManagerRoundTrip tests that modified settings survive a
// save and reload through gdata.
func TestSettingsManagerRoundTrip(t *testing.T) {
	manager := newTestGdata(t)

	sm, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	sm.SetWindowSize(1280, 720)
	sm.SetAutoMorph(true)
	sm.SetAutoMorphInterval(4.5)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(manager)
	if err != nil {
		t.Fatalf("NewSettingsManager() reload error: %v", err)
	}
	got := sm2.GetSettings()
	if got.WindowWidth != 1280 || got.WindowHeight != 720 {
		t.Errorf("window size: got %dx%d, want 1280x720", got.WindowWidth, got.WindowHeight)
	}
	if !got.AutoMorph {
		t.Error("AutoMorph: got false, want true")
	}
	if got.AutoMorphInterval != 4.5 {
		t.Errorf("AutoMorphInterval: got %v, want 4.5", got.AutoMorphInterval)
	}
}

// TestSettingsManagerNilGdata tests the degraded in-memory mode.
func TestSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should be a no-op, got error: %v", err)
	}
	if !sm.GetSettings().Fullscreen {
		t.Error("in-memory setting lost")
	}
}

// TestSetAutoMorphIntervalClamp tests the 1 second floor.
func TestSetAutoMorphIntervalClamp(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	sm.SetAutoMorphInterval(0.01)
	if got := sm.GetSettings().AutoMorphInterval; got != 1 {
		t.Errorf("AutoMorphInterval: got %v, want clamped 1", got)
	}
}

// TestSetWindowSizeRejectsNonPositive tests that bogus sizes are
// ignored.
func TestSetWindowSizeRejectsNonPositive(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	sm.SetWindowSize(0, 600)
	s := sm.GetSettings()
	if s.WindowWidth != 1024 || s.WindowHeight != 768 {
		t.Errorf("window size changed to %dx%d, want defaults kept", s.WindowWidth, s.WindowHeight)
	}
}
