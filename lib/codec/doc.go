// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the standard CBOR encoding configuration
// shared by everything in this tool that touches CBOR: the UR message
// payload and the fountain part envelopes.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Determinism is not a nicety here — the same message must
// produce identical part bytes, and therefore identical bytewords,
// checksums, and QR frames, on every run and every platform.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// The only other serialization format in this tool is YAML, which is
// confined to the optional config file (lib/config); CBOR never
// crosses that boundary.
package codec
