// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package frame composites the fingerprint and QR images into the
// display frames and exports them as PNG files for headless runs.
//
// Every frame shares one canvas geometry so the fingerprint does not
// jump between animation frames: the content column is as wide as the
// widest image, the fingerprint sits centered in the top band, and
// the QR code sits centered below it, all inside a fixed margin on a
// white background.
package frame
