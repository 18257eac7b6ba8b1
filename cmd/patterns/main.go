// Package main renders one PNG snapshot per pattern generator for
// visual inspection, without opening a window.
//
// Usage:
//
//	go run cmd/patterns/main.go [flags]
//
// Flags:
//
//	--count <n>    Points per pattern (default 6000)
//	--size <px>    Output image edge length (default 512)
//	--out <dir>    Output directory (default "pattern_snapshots")
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonewx/morphfield/pkg/pattern"
)

var (
	countFlag = flag.Int("count", 6000, "Points per pattern")
	sizeFlag  = flag.Int("size", 512, "Output image edge length in pixels")
	outFlag   = flag.String("out", "pattern_snapshots", "Output directory")
)

const fieldSize = 10.0

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outFlag, 0o755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	for _, pat := range pattern.Patterns() {
		points := pattern.Normalize(pat.Generate(*countFlag), fieldSize)
		img := plot(points, *sizeFlag)

		name := strings.ToLower(strings.ReplaceAll(pat.Name, " ", "_")) + ".png"
		path := filepath.Join(*outFlag, name)
		if err := writePNG(path, img); err != nil {
			log.Fatalf("%s: %v", pat.Name, err)
		}
		fmt.Printf("wrote %s (%d points)\n", path, len(points))
	}
}

// plot projects the normalized point set orthographically onto the XY
// plane and accumulates brightness per pixel so dense regions glow.
func plot(points []pattern.Point, size int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, size, size))
	scale := float32(size) / (fieldSize * 1.2)
	half := float32(size) / 2

	for _, p := range points {
		x := int(half + p.X*scale)
		y := int(half - p.Y*scale)
		if x < 0 || x >= size || y < 0 || y >= size {
			continue
		}
		v := img.GrayAt(x, y).Y
		if v <= 255-48 {
			v += 48
		} else {
			v = 255
		}
		img.SetGray(x, y, color.Gray{Y: v})
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
