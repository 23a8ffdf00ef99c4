// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package qrcode renders text as QR module matrices, delegating
// symbol construction to github.com/skip2/go-qrcode.
//
// Recovery level Low is fixed: UR part strings carry their own CRC-32
// checksum, and lower recovery keeps the symbol (and therefore each
// animation frame) as small as possible.
package qrcode
