// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bureau-foundation/qur/lib/bytewords"
	"github.com/bureau-foundation/qur/lib/codec"
)

// UR is a typed CBOR payload: the unit the encoders and decoders in
// this package operate on.
type UR struct {
	urType  string
	payload []byte
}

// ErrInvalidType means a UR type contains characters outside the
// allowed set (lowercase letters, digits, dashes).
var ErrInvalidType = errors.New("ur: invalid type")

// New creates a UR from a type tag and a CBOR payload. The type must
// be non-empty and consist of lowercase letters, digits, and dashes.
func New(urType string, payload []byte) (UR, error) {
	if !isValidType(urType) {
		return UR{}, fmt.Errorf("%w: %q", ErrInvalidType, urType)
	}
	return UR{urType: urType, payload: payload}, nil
}

// NewBytes wraps raw bytes as a UR of type "bytes" whose payload is
// the deterministic CBOR encoding of the byte string.
func NewBytes(data []byte) (UR, error) {
	payload, err := codec.Marshal(data)
	if err != nil {
		return UR{}, fmt.Errorf("ur: encoding message payload: %w", err)
	}
	return UR{urType: "bytes", payload: payload}, nil
}

// Type returns the UR type tag.
func (u UR) Type() string { return u.urType }

// Payload returns the CBOR payload bytes.
func (u UR) Payload() []byte { return u.payload }

// Bytes decodes the payload as a CBOR byte string. It fails for UR
// types whose payload is not a plain byte string.
func (u UR) Bytes() ([]byte, error) {
	var data []byte
	if err := codec.Unmarshal(u.payload, &data); err != nil {
		return nil, fmt.Errorf("ur: payload of type %q is not a byte string: %w", u.urType, err)
	}
	return data, nil
}

func isValidType(urType string) bool {
	if urType == "" {
		return false
	}
	for _, letter := range urType {
		switch {
		case letter >= 'a' && letter <= 'z':
		case letter >= '0' && letter <= '9':
		case letter == '-':
		default:
			return false
		}
	}
	return true
}

// Encode renders the UR as a single-part string.
func Encode(u UR) string {
	return "ur:" + u.urType + "/" + bytewords.Encode(bytewords.Minimal, u.payload)
}

// Parse decodes a single-part UR string. Multi-part part strings
// (three components) are rejected; feed those to a [Decoder].
func Parse(text string) (UR, error) {
	components, err := splitUR(text)
	if err != nil {
		return UR{}, err
	}
	if len(components) != 2 {
		return UR{}, fmt.Errorf("ur: %d path components in %q, want 2 for a single-part UR", len(components), text)
	}
	urType := components[0]
	if !isValidType(urType) {
		return UR{}, fmt.Errorf("%w: %q", ErrInvalidType, urType)
	}
	payload, err := bytewords.Decode(bytewords.Minimal, components[1])
	if err != nil {
		return UR{}, fmt.Errorf("ur: decoding body of %q: %w", text, err)
	}
	return UR{urType: urType, payload: payload}, nil
}

// splitUR validates the "ur:" scheme and splits the remainder on "/".
func splitUR(text string) ([]string, error) {
	lowered := strings.ToLower(text)
	rest, found := strings.CutPrefix(lowered, "ur:")
	if !found {
		return nil, fmt.Errorf("ur: %q does not start with the ur: scheme", text)
	}
	components := strings.Split(rest, "/")
	if len(components) < 2 {
		return nil, fmt.Errorf("ur: %q has no body component", text)
	}
	return components, nil
}
