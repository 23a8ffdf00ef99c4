// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package showui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the viewer.
type KeyMap struct {
	Quit        key.Binding
	PauseToggle key.Binding
	StepBack    key.Binding // One part back; only while paused.
	StepForward key.Binding // One part forward; only while paused.
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	PauseToggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause"),
	),
	StepBack: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "previous part"),
	),
	StepForward: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next part"),
	),
}
