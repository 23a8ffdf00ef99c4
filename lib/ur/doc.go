// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ur implements the Uniform Resource (UR) encoding: a typed
// CBOR payload rendered as QR-friendly text, either as a single
// string or as a sequence of fountain-coded part strings.
//
// A single-part UR has the form
//
//	ur:<type>/<bytewords>
//
// where the bytewords component is the minimal-style encoding of the
// CBOR payload. A multi-part UR splits the payload into fragments and
// emits parts of the form
//
//	ur:<type>/<seqNum>-<seqLen>/<bytewords>
//
// where the bytewords component carries a CBOR envelope describing
// the part. Parts with seqNum beyond seqLen are fountain-coded XOR
// mixtures of pseudo-randomly chosen fragments, so a receiver can
// reconstruct the message from any sufficiently large subset of
// parts, in any order.
//
// [Encoder] produces parts; [Decoder] consumes them. The decoder also
// serves as the round-trip check for this tool: an encoding that
// cannot be decoded is not worth displaying.
package ur
