// Package gallery is the photo-viewing collaborator that rides
// alongside the particle field: it ingests images dropped onto the
// window, shows a thumbnail strip, and opens a lightbox overlay. The
// particle core never reads gallery data; pattern generation is fully
// independent of the photos.
package gallery

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"log"
	"path"

	// Decoders for the formats we accept via drag and drop.
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Photo is one ingested image.
type Photo struct {
	Name  string
	Image *ebiten.Image
}

// Gallery holds the ingested photos and the lightbox state. While the
// lightbox is open the scene treats input as locked to the overlay.
type Gallery struct {
	photos    []*Photo
	thumbSize int

	open  bool
	index int
}

// New returns an empty gallery with the given thumbnail edge length.
func New(thumbSize int) *Gallery {
	return &Gallery{thumbSize: thumbSize}
}

// HasPhotos reports whether any photos are present. Drives the UI
// affordances (thumbnail strip, lightbox key hint).
func (g *Gallery) HasPhotos() bool { return len(g.photos) > 0 }

// Count returns the number of ingested photos.
func (g *Gallery) Count() int { return len(g.photos) }

// AddPhoto decodes nothing; it accepts an already-decoded image and
// wraps it for display.
func (g *Gallery) AddPhoto(img image.Image, name string) {
	g.photos = append(g.photos, &Photo{
		Name:  name,
		Image: ebiten.NewImageFromImage(img),
	})
}

// IngestDropped decodes every regular file in the dropped-files
// filesystem and adds the ones that parse as images. Undecodable
// files are logged and skipped; one bad file never blocks the rest.
func (g *Gallery) IngestDropped(files fs.FS) error {
	return fs.WalkDir(files, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		f, err := files.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open dropped file %s: %w", p, err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			log.Printf("[Gallery] Skipping %s: %v", p, err)
			return nil
		}
		g.AddPhoto(img, path.Base(p))
		log.Printf("[Gallery] Added photo %s (%d total)", path.Base(p), len(g.photos))
		return nil
	})
}

// IsOpen reports whether the lightbox overlay is showing. The scene
// uses this as a scroll lock: field input is suppressed while open.
func (g *Gallery) IsOpen() bool { return g.open }

// Open shows the lightbox at the given photo index. No-op when the
// gallery is empty; the index clamps into range.
func (g *Gallery) Open(index int) {
	if len(g.photos) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= len(g.photos) {
		index = len(g.photos) - 1
	}
	g.index = index
	g.open = true
}

// Close hides the lightbox.
func (g *Gallery) Close() { g.open = false }

// Next advances to the next photo with wraparound.
func (g *Gallery) Next() {
	if len(g.photos) > 0 {
		g.index = (g.index + 1) % len(g.photos)
	}
}

// Prev steps to the previous photo with wraparound.
func (g *Gallery) Prev() {
	if len(g.photos) > 0 {
		g.index = (g.index - 1 + len(g.photos)) % len(g.photos)
	}
}

// Current returns the photo the lightbox shows, or nil when empty.
func (g *Gallery) Current() *Photo {
	if len(g.photos) == 0 {
		return nil
	}
	return g.photos[g.index]
}

// Index returns the lightbox position.
func (g *Gallery) Index() int { return g.index }

// Draw renders the thumbnail strip along the bottom edge and, when
// open, the lightbox overlay on top of everything.
func (g *Gallery) Draw(screen *ebiten.Image) {
	if !g.HasPhotos() {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	margin := 8
	x := margin
	for _, p := range g.photos {
		g.drawFitted(screen, p.Image, float64(x), float64(h-g.thumbSize-margin),
			float64(g.thumbSize), float64(g.thumbSize))
		x += g.thumbSize + margin
		if x+g.thumbSize > w {
			break // strip is full, remaining thumbnails are elided
		}
	}

	if !g.open {
		return
	}

	// Dim the field, then center the photo at up to 90% of the screen.
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
		color.RGBA{A: 208}, false)
	p := g.photos[g.index]
	maxW, maxH := float64(w)*0.9, float64(h)*0.9
	g.drawFitted(screen, p.Image, (float64(w)-maxW)/2, (float64(h)-maxH)/2, maxW, maxH)
}

// drawFitted draws img scaled to fit inside the box, preserving aspect
// ratio and centering within it.
func (g *Gallery) drawFitted(screen, img *ebiten.Image, x, y, boxW, boxH float64) {
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	scale := boxW / iw
	if s := boxH / ih; s < scale {
		scale = s
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(boxW-iw*scale)/2, y+(boxH-ih*scale)/2)
	screen.DrawImage(img, op)
}
