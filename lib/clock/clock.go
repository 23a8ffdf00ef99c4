// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts wall-clock reads for testability.
// Production code injects [Real]; tests inject [Fake] and control the
// reported time.
//
// This tool only ever asks "what time is it" (to derive the default
// message seed); the animation timing belongs to the TUI event loop,
// which schedules its own ticks. The interface is therefore a single
// method.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Fake returns a Clock frozen at the given instant. Calls to Set move
// it; nothing else does.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock for tests. It is not safe for
// concurrent use; the code under test here is single-threaded.
type FakeClock struct {
	current time.Time
}

// Now returns the frozen time.
func (clock *FakeClock) Now() time.Time { return clock.current }

// Set moves the clock to the given instant.
func (clock *FakeClock) Set(instant time.Time) { clock.current = instant }
