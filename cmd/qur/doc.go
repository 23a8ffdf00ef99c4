// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Qur is a demonstration harness for UR (Uniform Resource) encoding:
// it generates a random byte message, encodes it as a single-part UR
// or as fountain-coded multi-part UR strings, renders each part as a
// QR code, and cycles the parts in the terminal next to a lifehash
// fingerprint of the message. With --export it writes composited PNG
// frames to a directory instead of opening the interactive viewer.
//
// Every encoding is verified by decoding it back before anything is
// shown: a part sequence the decoder cannot reconstruct is a bug, not
// a demo.
//
// Exit codes:
//
//	0  success (including --help and --version)
//	1  runtime failure (I/O, encoding, terminal errors)
//	2  invalid usage (bad flag values, impossible combinations)
package main
