// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package frame

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// Margin is the white border, in pixels, around and between the
// composited images.
const Margin = 10

// Compose builds one frame per QR image: a white canvas with the
// fingerprint centered in the top band and the QR code centered
// below. All frames share the same canvas size, computed from the
// widest image.
func Compose(fingerprint image.Image, codes []image.Image) []image.Image {
	width := fingerprint.Bounds().Dx()
	for _, code := range codes {
		width = max(width, code.Bounds().Dx())
	}
	fingerprintHeight := fingerprint.Bounds().Dy()

	canvasWidth := 2*Margin + width
	canvasHeight := 3*Margin + fingerprintHeight + width

	frames := make([]image.Image, 0, len(codes))
	for _, code := range codes {
		canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
		draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

		pasteCentered(canvas, fingerprint, Margin)
		pasteCentered(canvas, code, 2*Margin+fingerprintHeight)

		frames = append(frames, canvas)
	}
	return frames
}

// pasteCentered draws source onto canvas horizontally centered with
// its top edge at y.
func pasteCentered(canvas *image.RGBA, source image.Image, y int) {
	x := (canvas.Bounds().Dx() - source.Bounds().Dx()) / 2
	target := image.Rect(x, y, x+source.Bounds().Dx(), y+source.Bounds().Dy())
	draw.Draw(canvas, target, source, source.Bounds().Min, draw.Src)
}

// ExportPNG writes the frames into directory as frame_0001.png,
// frame_0002.png, and so on, creating the directory if needed. It
// returns the written paths in frame order.
func ExportPNG(directory string, frames []image.Image) ([]string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("frame: creating export directory: %w", err)
	}
	paths := make([]string, 0, len(frames))
	for index, rendered := range frames {
		path := filepath.Join(directory, fmt.Sprintf("frame_%04d.png", index+1))
		if err := writePNG(path, rendered); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, rendered image.Image) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("frame: creating %s: %w", path, err)
	}
	if err := png.Encode(file, rendered); err != nil {
		file.Close()
		return fmt.Errorf("frame: encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("frame: closing %s: %w", path, err)
	}
	return nil
}
