// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package qrcode

import (
	"fmt"
	"image"
	"image/color"

	qr "github.com/skip2/go-qrcode"
)

// Code is an encoded QR symbol: the square module matrix, quiet zone
// included.
type Code struct {
	// Matrix is the module grid, row major. True is a dark module.
	Matrix [][]bool

	// Modules is the matrix edge length, including the quiet zone.
	Modules int
}

// Encode builds the QR symbol for the given text at recovery level
// Low. Empty text is rejected; text beyond the QR byte capacity
// surfaces the underlying library's error.
func Encode(text string) (Code, error) {
	if text == "" {
		return Code{}, fmt.Errorf("qrcode: empty text")
	}
	symbol, err := qr.New(text, qr.Low)
	if err != nil {
		return Code{}, fmt.Errorf("qrcode: encoding %d characters: %w", len(text), err)
	}
	matrix := symbol.Bitmap()
	return Code{Matrix: matrix, Modules: len(matrix)}, nil
}

// Image renders the code as an opaque black-on-white image of
// sizePx x sizePx pixels, nearest-neighbor scaled so module edges
// stay crisp. Size must be positive.
func (code Code) Image(sizePx int) (image.Image, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("qrcode: image size %d, want > 0", sizePx)
	}
	black := color.Gray{Y: 0x00}
	white := color.Gray{Y: 0xFF}
	rendered := image.NewGray(image.Rect(0, 0, sizePx, sizePx))
	for y := 0; y < sizePx; y++ {
		row := y * code.Modules / sizePx
		for x := 0; x < sizePx; x++ {
			column := x * code.Modules / sizePx
			if code.Matrix[row][column] {
				rendered.SetGray(x, y, black)
			} else {
				rendered.SetGray(x, y, white)
			}
		}
	}
	return rendered, nil
}
