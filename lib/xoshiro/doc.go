// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package xoshiro implements the Xoshiro256** generator with the seed
// expansion and sampling helpers the UR fountain encoding prescribes.
//
// This is not a general-purpose RNG: the SHA-256 seed expansion, the
// draw-without-replacement shuffle, and the alias-method weighted
// sampler are all part of the UR wire behavior. Two conforming
// implementations seeded with the same bytes must draw identical
// sequences, otherwise fountain parts produced by one cannot be
// reconstructed by the other.
package xoshiro
