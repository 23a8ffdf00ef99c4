// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytewords implements the bytewords text encoding used by
// Uniform Resources (UR): each byte maps to one of 256 four-letter
// English words, and a CRC-32 checksum of the payload travels inside
// the encoded text.
//
// Two styles are supported. The minimal style abbreviates each word to
// its first and last letter and is what UR strings embed after the
// type component. The standard style spells the full words,
// hyphen-separated, and exists for debugging output where a human
// reads the encoding aloud.
//
// The word list has the property that no two words share both their
// first and last letter, so the minimal style decodes without
// ambiguity.
package bytewords
