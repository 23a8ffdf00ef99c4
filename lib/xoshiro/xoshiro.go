// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package xoshiro

import (
	"crypto/sha256"
	"encoding/binary"
)

// Generator is a Xoshiro256** pseudo-random generator. The zero value
// is not usable; construct one with New or NewString.
type Generator struct {
	state [4]uint64
}

// New creates a generator seeded from the given bytes. The seed is
// expanded with SHA-256 and the digest read as four big-endian uint64
// state words, matching the UR reference seeding.
func New(seed []byte) *Generator {
	digest := sha256.Sum256(seed)
	var generator Generator
	for word := 0; word < 4; word++ {
		generator.state[word] = binary.BigEndian.Uint64(digest[word*8 : word*8+8])
	}
	return &generator
}

// NewString creates a generator seeded from the UTF-8 bytes of seed.
func NewString(seed string) *Generator {
	return New([]byte(seed))
}

func rotl(value uint64, bits uint) uint64 {
	return (value << bits) | (value >> (64 - bits))
}

// NextUint64 returns the next value of the Xoshiro256** sequence.
func (generator *Generator) NextUint64() uint64 {
	result := rotl(generator.state[1]*5, 7) * 9

	t := generator.state[1] << 17
	generator.state[2] ^= generator.state[0]
	generator.state[3] ^= generator.state[1]
	generator.state[1] ^= generator.state[2]
	generator.state[0] ^= generator.state[3]
	generator.state[2] ^= t
	generator.state[3] = rotl(generator.state[3], 45)

	return result
}

// NextDouble returns a value in [0, 1) with the reference scaling:
// the raw 64-bit draw divided by 2^64.
func (generator *Generator) NextDouble() float64 {
	return float64(generator.NextUint64()) / (1 << 64)
}

// NextIntInRange returns a value in [low, high], both inclusive.
func (generator *Generator) NextIntInRange(low, high int) int {
	return int(generator.NextDouble()*float64(high-low+1)) + low
}

// NextByte returns the next value reduced to a single byte.
func (generator *Generator) NextByte() byte {
	return byte(generator.NextIntInRange(0, 255))
}

// NextData returns length bytes drawn one at a time via NextByte.
func (generator *Generator) NextData(length int) []byte {
	data := make([]byte, length)
	for position := range data {
		data[position] = generator.NextByte()
	}
	return data
}

// Shuffle returns a new slice containing the items in randomized
// order, drawn without replacement: each draw removes a uniformly
// chosen remaining item. The input slice is not modified. This exact
// draw order is part of the fountain-part wire behavior.
func Shuffle[T any](generator *Generator, items []T) []T {
	remaining := make([]T, len(items))
	copy(remaining, items)
	result := make([]T, 0, len(items))
	for len(remaining) > 0 {
		index := generator.NextIntInRange(0, len(remaining)-1)
		result = append(result, remaining[index])
		remaining = append(remaining[:index], remaining[index+1:]...)
	}
	return result
}
