// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package showui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/qur/lib/lifehash"
	"github.com/bureau-foundation/qur/lib/qrcode"
)

// View renders the current frame: fingerprint on top, QR code below,
// status line at the bottom, centered in the terminal.
func (model Model) View() string {
	code := model.codes[model.index]

	if model.width > 0 && !model.fits(code) {
		notice := fmt.Sprintf("Terminal too small: need %d x %d cells for this QR part, have %d x %d.\n\nResize the window, or press q to quit.",
			model.neededWidth(code), model.neededHeight(code), model.width, model.height)
		return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(model.theme.NormalText).Width(48).Render(notice))
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		renderFingerprint(model.fingerprint),
		renderCode(code),
		"",
		model.statusLine(),
	)
	if model.width == 0 {
		return content
	}
	return lipgloss.Place(model.width, model.height, lipgloss.Center, lipgloss.Center, content)
}

func (model Model) neededWidth(code qrcode.Code) int {
	return max(code.Modules, lifehash.GridSize)
}

func (model Model) neededHeight(code qrcode.Code) int {
	// Two image rows per text row, plus the blank spacer and the
	// status line.
	return (code.Modules+1)/2 + lifehash.GridSize/2 + 2
}

func (model Model) fits(code qrcode.Code) bool {
	return model.width >= model.neededWidth(code) && model.height >= model.neededHeight(code)
}

// statusLine summarizes playback state and key help, truncated to the
// terminal width.
func (model Model) statusLine() string {
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	accent := lipgloss.NewStyle().Foreground(model.theme.Accent)

	var sections []string
	if model.animates() {
		sections = append(sections,
			accent.Render(fmt.Sprintf("part %d/%d", model.index+1, len(model.codes))),
			faint.Render(fmt.Sprintf("%d fps", model.fps)))
		if !model.playing {
			sections = append(sections,
				lipgloss.NewStyle().Foreground(model.theme.PausedAccent).Render("paused"))
		}
	} else {
		sections = append(sections, accent.Render("single part"))
	}
	sections = append(sections, faint.Render("ref "+model.fingerprint.Ref()))

	help := "q quit"
	if model.animates() {
		help = "space pause · ←/→ step · " + help
	}
	sections = append(sections, faint.Render(help))

	line := strings.Join(sections, faint.Render(" · "))
	if model.width > 0 && ansi.StringWidth(line) > model.width {
		line = ansi.Truncate(line, model.width, "…")
	}
	return line
}

// renderCode draws the QR matrix with half-block glyphs, two module
// rows per text row. Modules are always black on white regardless of
// theme; scanners need the contrast.
func renderCode(code qrcode.Code) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#ffffff"))

	var lines []string
	for row := 0; row < code.Modules; row += 2 {
		var builder strings.Builder
		for column := 0; column < code.Modules; column++ {
			upper := code.Matrix[row][column]
			lower := row+1 < code.Modules && code.Matrix[row+1][column]
			switch {
			case upper && lower:
				builder.WriteRune('█')
			case upper:
				builder.WriteRune('▀')
			case lower:
				builder.WriteRune('▄')
			default:
				builder.WriteRune(' ')
			}
		}
		lines = append(lines, style.Render(builder.String()))
	}
	return strings.Join(lines, "\n")
}

// renderFingerprint draws the fingerprint grid with half-block
// glyphs, one cell per column and two cell rows per text row. On
// monochrome terminals the colors carry no information, so the cells
// fall back to density glyphs keyed on luminance.
func renderFingerprint(fingerprint lifehash.Fingerprint) string {
	if termenv.ColorProfile() == termenv.Ascii {
		return renderFingerprintMono(fingerprint)
	}

	var lines []string
	for row := 0; row < lifehash.GridSize; row += 2 {
		var builder strings.Builder
		for column := 0; column < lifehash.GridSize; column++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(fingerprint.Grid[row][column]))).
				Background(lipgloss.Color(hexColor(fingerprint.Grid[row+1][column])))
			builder.WriteString(style.Render("▀"))
		}
		lines = append(lines, builder.String())
	}
	return strings.Join(lines, "\n")
}

func renderFingerprintMono(fingerprint lifehash.Fingerprint) string {
	glyphs := []rune(" .:-=+*#%@")
	var lines []string
	for row := 0; row < lifehash.GridSize; row += 2 {
		var builder strings.Builder
		for column := 0; column < lifehash.GridSize; column++ {
			// Average the two cells sharing this text row.
			level := (luminance(fingerprint.Grid[row][column]) +
				luminance(fingerprint.Grid[row+1][column])) / 2
			builder.WriteRune(glyphs[level*(len(glyphs)-1)/255])
		}
		lines = append(lines, builder.String())
	}
	return strings.Join(lines, "\n")
}

// luminance approximates perceived brightness in [0, 255].
func luminance(pixel color.NRGBA) int {
	return (299*int(pixel.R) + 587*int(pixel.G) + 114*int(pixel.B)) / 1000
}

func hexColor(pixel color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", pixel.R, pixel.G, pixel.B)
}
