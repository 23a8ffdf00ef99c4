// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package showui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the viewer chrome. The QR
// modules themselves are always black on white — scanners expect
// maximum contrast — and the fingerprint cells carry their own
// colors, so the theme only covers text and accents.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Accent highlights the current part number in the status line.
	Accent lipgloss.Color

	// PausedAccent colors the pause indicator.
	PausedAccent lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme, using ANSI
// 256-color codes for broad terminal compatibility.
var DefaultTheme = Theme{
	NormalText:   lipgloss.Color("252"),
	FaintText:    lipgloss.Color("245"),
	Accent:       lipgloss.Color("75"),  // blue
	PausedAccent: lipgloss.Color("220"), // amber
}
