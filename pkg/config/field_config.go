// Package config loads the field tuning file. It defines the structure
// of assets/config/field.yaml and validates the values the particle
// subsystem depends on.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldConfig is the top-level tuning configuration for the particle
// field, loaded from YAML.
//
// Structure:
//
//	particleCount: 6000
//	sparkCount: 400
//	starCount: 1200
//	fieldSize: 10.0
//	morphStep: 0.03
//	...
//	palette:
//	  hueBase: 210
//	  hueRange: 120
type FieldConfig struct {
	ParticleCount int `yaml:"particleCount"` // Main cloud point count
	SparkCount    int `yaml:"sparkCount"`    // Sparkle overlay point count (prefix of main)
	StarCount     int `yaml:"starCount"`     // Background starfield point count

	FieldSize      float32 `yaml:"fieldSize"`      // Normalization target size
	MorphStep      float32 `yaml:"morphStep"`      // Per-tick progress increment, in (0, 1]
	RotationSpeed  float32 `yaml:"rotationSpeed"`  // Cloud rotation, radians per tick
	CameraDistance float32 `yaml:"cameraDistance"` // Camera offset along the view axis

	Palette PaletteConfig `yaml:"palette"` // Particle coloring
	Gallery GalleryConfig `yaml:"gallery"` // Photo overlay sizing
}

// PaletteConfig controls the hue-rotation shading of the main cloud.
type PaletteConfig struct {
	HueBase    float64 `yaml:"hueBase"`    // Starting hue in degrees
	HueRange   float64 `yaml:"hueRange"`   // Hue spread across the cloud in degrees
	HueSpeed   float64 `yaml:"hueSpeed"`   // Hue drift in degrees per second of elapsed time
	Saturation float64 `yaml:"saturation"` // HSV saturation, 0..1
	Value      float64 `yaml:"value"`      // HSV value, 0..1
}

// GalleryConfig controls the photo strip and lightbox.
type GalleryConfig struct {
	ThumbnailSize int `yaml:"thumbnailSize"` // Thumbnail edge length in pixels
}

// DefaultFieldConfig returns the tuning used when no config file is
// present.
func DefaultFieldConfig() *FieldConfig {
	return &FieldConfig{
		ParticleCount:  6000,
		SparkCount:     400,
		StarCount:      1200,
		FieldSize:      10.0,
		MorphStep:      0.03,
		RotationSpeed:  0.002,
		CameraDistance: 24.0,
		Palette: PaletteConfig{
			HueBase:    210,
			HueRange:   120,
			HueSpeed:   12,
			Saturation: 0.75,
			Value:      1.0,
		},
		Gallery: GalleryConfig{
			ThumbnailSize: 96,
		},
	}
}

// LoadFieldConfig reads and validates a field configuration file.
func LoadFieldConfig(path string) (*FieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field config %s: %w", path, err)
	}

	cfg := DefaultFieldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse field config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the invariants the buffer store and morph controller
// rely on.
func (c *FieldConfig) Validate() error {
	if c.ParticleCount <= 0 {
		return fmt.Errorf("particleCount must be positive, got %d", c.ParticleCount)
	}
	if c.SparkCount < 0 || c.SparkCount > c.ParticleCount {
		return fmt.Errorf("sparkCount %d must be in [0, %d]", c.SparkCount, c.ParticleCount)
	}
	if c.StarCount < 0 {
		return fmt.Errorf("starCount must not be negative, got %d", c.StarCount)
	}
	if c.FieldSize <= 0 {
		return fmt.Errorf("fieldSize must be positive, got %v", c.FieldSize)
	}
	if c.MorphStep <= 0 || c.MorphStep > 1 {
		return fmt.Errorf("morphStep must be in (0, 1], got %v", c.MorphStep)
	}
	if c.CameraDistance <= c.FieldSize {
		return fmt.Errorf("cameraDistance %v must exceed fieldSize %v", c.CameraDistance, c.FieldSize)
	}
	if c.Palette.Saturation < 0 || c.Palette.Saturation > 1 {
		return fmt.Errorf("palette saturation must be in [0, 1], got %v", c.Palette.Saturation)
	}
	if c.Palette.Value < 0 || c.Palette.Value > 1 {
		return fmt.Errorf("palette value must be in [0, 1], got %v", c.Palette.Value)
	}
	if c.Gallery.ThumbnailSize <= 0 {
		return fmt.Errorf("gallery thumbnailSize must be positive, got %d", c.Gallery.ThumbnailSize)
	}
	return nil
}
