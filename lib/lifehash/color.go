// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lifehash

import (
	"image/color"
	"math"
)

// gradient is a two-stop color ramp: cells interpolate from the dark
// stop (intensity 0) to the bright stop (intensity 1).
type gradient struct {
	dark   color.NRGBA
	bright color.NRGBA
}

// chooseGradient derives a gradient from digest entropy. The last
// digest bytes pick a hue (the leading bytes already determined the
// seed grid, so the tail keeps the color decorrelated from the
// pattern); the dark stop is a deep shade of the same hue, which
// keeps low-intensity texture visible without washing out the image.
func chooseGradient(digest [digestLen]byte) gradient {
	hue := float64(uint16(digest[digestLen-2])<<8|uint16(digest[digestLen-1])) / 65536.0
	return gradient{
		dark:   hsbToColor(hue, 0.8, 0.25),
		bright: hsbToColor(hue, 0.6, 1.0),
	}
}

// at interpolates the gradient at intensity t in [0, 1].
func (ramp gradient) at(t float64) color.NRGBA {
	lerp := func(low, high uint8) uint8 {
		return uint8(math.Round(float64(low) + t*(float64(high)-float64(low))))
	}
	return color.NRGBA{
		R: lerp(ramp.dark.R, ramp.bright.R),
		G: lerp(ramp.dark.G, ramp.bright.G),
		B: lerp(ramp.dark.B, ramp.bright.B),
		A: 0xFF,
	}
}

// hsbToColor converts hue/saturation/brightness (each in [0, 1]) to
// an opaque color.
func hsbToColor(hue, saturation, brightness float64) color.NRGBA {
	sector := math.Mod(hue, 1) * 6
	chroma := brightness * saturation
	secondary := chroma * (1 - math.Abs(math.Mod(sector, 2)-1))
	base := brightness - chroma

	var red, green, blue float64
	switch int(sector) % 6 {
	case 0:
		red, green, blue = chroma, secondary, 0
	case 1:
		red, green, blue = secondary, chroma, 0
	case 2:
		red, green, blue = 0, chroma, secondary
	case 3:
		red, green, blue = 0, secondary, chroma
	case 4:
		red, green, blue = secondary, 0, chroma
	default:
		red, green, blue = chroma, 0, secondary
	}

	return color.NRGBA{
		R: uint8(math.Round((red + base) * 255)),
		G: uint8(math.Round((green + base) * 255)),
		B: uint8(math.Round((blue + base) * 255)),
		A: 0xFF,
	}
}
