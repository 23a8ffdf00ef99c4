// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"strconv"

	"github.com/bureau-foundation/qur/lib/clock"
	"github.com/bureau-foundation/qur/lib/xoshiro"
)

// generateMessage produces the demo message: length bytes drawn from
// a generator seeded with the given string, or with the current Unix
// time when no seed is given. A fixed seed reproduces the exact same
// message, parts, and frames on every run.
func generateMessage(clk clock.Clock, seed string, length int) []byte {
	if seed == "" {
		seed = strconv.FormatInt(clk.Now().Unix(), 10)
	}
	return xoshiro.NewString(seed).NextData(length)
}
