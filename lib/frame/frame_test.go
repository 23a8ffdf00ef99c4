// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// solid returns a size x size image filled with the given color.
func solid(size int, fill color.Color) image.Image {
	rendered := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			rendered.Set(x, y, fill)
		}
	}
	return rendered
}

func TestComposeGeometry(t *testing.T) {
	fingerprint := solid(128, color.Black)
	codes := []image.Image{solid(256, color.Black), solid(256, color.Black)}

	frames := Compose(fingerprint, codes)
	if len(frames) != 2 {
		t.Fatalf("Compose produced %d frames, want 2", len(frames))
	}

	// Column width is the max of the two image widths (256), so:
	// width = 2*10 + 256, height = 3*10 + 128 + 256.
	wantWidth := 2*Margin + 256
	wantHeight := 3*Margin + 128 + 256
	for index, composed := range frames {
		bounds := composed.Bounds()
		if bounds.Dx() != wantWidth || bounds.Dy() != wantHeight {
			t.Errorf("frame %d bounds = %v, want %dx%d", index, bounds, wantWidth, wantHeight)
		}
	}
}

func TestComposeUsesWidestImage(t *testing.T) {
	// Fingerprint wider than the QR code: it dictates the column.
	fingerprint := solid(300, color.Black)
	frames := Compose(fingerprint, []image.Image{solid(100, color.Black)})
	if got, want := frames[0].Bounds().Dx(), 2*Margin+300; got != want {
		t.Errorf("canvas width = %d, want %d", got, want)
	}
}

func TestComposePlacement(t *testing.T) {
	fingerprint := solid(4, color.NRGBA{R: 0xFF, A: 0xFF})
	code := solid(8, color.NRGBA{B: 0xFF, A: 0xFF})
	composed := Compose(fingerprint, []image.Image{code})[0]

	// Corners of the canvas stay white.
	assertPixel(t, composed, 0, 0, 0xFF, 0xFF, 0xFF)

	// Fingerprint band: centered horizontally, top edge at Margin.
	// Canvas width is 2*Margin + 8 = 28, so the 4px fingerprint spans
	// x = 12..15 at y = Margin.
	assertPixel(t, composed, 12, Margin, 0xFF, 0x00, 0x00)
	assertPixel(t, composed, 11, Margin, 0xFF, 0xFF, 0xFF)

	// QR band: top edge at 2*Margin + fingerprint height, spanning
	// the full column width.
	assertPixel(t, composed, Margin, 2*Margin+4, 0x00, 0x00, 0xFF)
}

func assertPixel(t *testing.T, rendered image.Image, x, y int, wantRed, wantGreen, wantBlue uint8) {
	t.Helper()
	red, green, blue, _ := rendered.At(x, y).RGBA()
	if uint8(red>>8) != wantRed || uint8(green>>8) != wantGreen || uint8(blue>>8) != wantBlue {
		t.Errorf("pixel (%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
			x, y, red>>8, green>>8, blue>>8, wantRed, wantGreen, wantBlue)
	}
}

func TestExportPNG(t *testing.T) {
	directory := filepath.Join(t.TempDir(), "frames")
	frames := Compose(solid(8, color.Black), []image.Image{
		solid(16, color.Black),
		solid(16, color.White),
		solid(16, color.Black),
	})

	paths, err := ExportPNG(directory, frames)
	if err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("ExportPNG returned %d paths, want 3", len(paths))
	}
	for index, path := range paths {
		wantName := fmt.Sprintf("frame_%04d.png", index+1)
		if filepath.Base(path) != wantName {
			t.Errorf("path %d = %q, want base %q", index, path, wantName)
		}
		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("opening %s: %v", path, err)
		}
		decoded, err := png.Decode(file)
		file.Close()
		if err != nil {
			t.Fatalf("decoding %s: %v", path, err)
		}
		if decoded.Bounds() != frames[index].Bounds() {
			t.Errorf("%s bounds = %v, want %v", path, decoded.Bounds(), frames[index].Bounds())
		}
	}
}

func TestExportPNGCreatesDirectory(t *testing.T) {
	directory := filepath.Join(t.TempDir(), "a", "b", "frames")
	if _, err := ExportPNG(directory, Compose(solid(4, color.Black), []image.Image{solid(4, color.Black)})); err != nil {
		t.Fatalf("ExportPNG into missing directory: %v", err)
	}
	info, err := os.Stat(directory)
	if err != nil || !info.IsDir() {
		t.Fatalf("export directory not created: %v", err)
	}
}
