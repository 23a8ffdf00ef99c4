// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package showui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/qur/lib/lifehash"
	"github.com/bureau-foundation/qur/lib/qrcode"
)

// tickMsg advances the part cycle. Each tick reschedules the next one
// while the animation is playing, giving a steady frame rate without
// a background ticker.
type tickMsg struct{}

// Model is the bubbletea model for the viewer. Construct with
// NewModel; the zero value is not usable.
type Model struct {
	theme Theme
	keys  KeyMap

	fingerprint lifehash.Fingerprint
	codes       []qrcode.Code
	fps         int

	index   int
	playing bool

	// Terminal dimensions from the last WindowSizeMsg. Zero until
	// the first one arrives.
	width  int
	height int
}

// NewModel creates a viewer over the precomputed QR codes. fps must
// be positive. A single code means nothing animates and ticks are
// never scheduled.
func NewModel(fingerprint lifehash.Fingerprint, codes []qrcode.Code, fps int) Model {
	return Model{
		theme:       DefaultTheme,
		keys:        DefaultKeyMap,
		fingerprint: fingerprint,
		codes:       codes,
		fps:         fps,
		playing:     true,
	}
}

// Init schedules the first animation tick when there is anything to
// animate.
func (model Model) Init() tea.Cmd {
	if model.animates() {
		return model.tick()
	}
	return nil
}

// Update handles ticks, keys, and resizes.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tickMsg:
		if !model.playing || !model.animates() {
			// A stale tick that raced a pause keypress; do not
			// reschedule, resume will.
			return model, nil
		}
		model.index = (model.index + 1) % len(model.codes)
		return model, model.tick()

	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		return model, nil
	}
	return model, nil
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.PauseToggle):
		model.playing = !model.playing
		if model.playing && model.animates() {
			return model, model.tick()
		}
		return model, nil

	case key.Matches(message, model.keys.StepBack):
		if !model.playing {
			model.index = (model.index + len(model.codes) - 1) % len(model.codes)
		}
		return model, nil

	case key.Matches(message, model.keys.StepForward):
		if !model.playing {
			model.index = (model.index + 1) % len(model.codes)
		}
		return model, nil
	}
	return model, nil
}

// animates reports whether there is more than one part to cycle.
func (model Model) animates() bool {
	return len(model.codes) > 1
}

func (model Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(model.fps), func(time.Time) tea.Msg {
		return tickMsg{}
	})
}
