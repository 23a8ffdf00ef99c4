// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package showui is the interactive terminal presentation: a
// bubbletea model that shows the message fingerprint above the
// cycling QR parts.
//
// Rendering works in module space rather than pixel space. Each QR
// module occupies one terminal cell column, with two image rows per
// text row via half-block glyphs, so a part fits on screen at any
// terminal font size. The fingerprint grid renders the same way in
// 24-bit color, degraded automatically to the terminal's color
// profile.
//
// Everything shown is precomputed before the program starts; the
// event loop only cycles through the part list at the configured
// frame rate and reacts to keys.
package showui
