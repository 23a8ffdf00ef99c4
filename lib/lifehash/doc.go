// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package lifehash computes a deterministic visual fingerprint of a
// byte string: a colored pixel grid a human can compare at a glance.
//
// A keyed BLAKE3 digest of the input seeds a 16x16 toroidal Game of
// Life. The grid evolves a bounded number of generations (stopping
// early if it falls into a cycle) and each cell's liveness is averaged
// over the history into a fractional intensity, so short-lived
// structure still leaves a trace in the image. Digest entropy picks a
// two-stop color gradient, and the colored grid is mirrored into a
// symmetric 32x32 image — symmetry is what makes two fingerprints easy
// to tell apart at small sizes.
//
// The mapping is pure: the same input always produces identical
// pixels, on every platform.
package lifehash
