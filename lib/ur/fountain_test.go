// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bureau-foundation/qur/lib/bytewords"
	"github.com/bureau-foundation/qur/lib/codec"
)

func encoderFor(t *testing.T, message []byte, maxFragmentLength int) *Encoder {
	t.Helper()
	wrapped, err := NewBytes(message)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	encoder, err := NewEncoder(wrapped, maxFragmentLength)
	if err != nil {
		t.Fatalf("NewEncoder: %v", err)
	}
	return encoder
}

// decodeEnvelope parses a part string back into its CBOR envelope.
func decodeEnvelope(t *testing.T, part string) partEnvelope {
	t.Helper()
	components := strings.Split(strings.TrimPrefix(part, "ur:"), "/")
	if len(components) != 3 {
		t.Fatalf("part %q has %d components, want 3", part, len(components))
	}
	data, err := bytewords.Decode(bytewords.Minimal, components[2])
	if err != nil {
		t.Fatalf("decoding part body: %v", err)
	}
	var envelope partEnvelope
	if err := codec.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("decoding part envelope: %v", err)
	}
	return envelope
}

func TestPartStringShape(t *testing.T) {
	encoder := encoderFor(t, testMessage(t, 256), 30)
	part, err := encoder.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	wantPrefix := fmt.Sprintf("ur:bytes/1-%d/", encoder.SeqLen())
	if !strings.HasPrefix(part, wantPrefix) {
		t.Errorf("part = %q, want prefix %q", part, wantPrefix)
	}
}

func TestShortMessageIsSinglePart(t *testing.T) {
	encoder := encoderFor(t, testMessage(t, 20), 100)
	if !encoder.IsSinglePart() {
		t.Errorf("SeqLen = %d for a message below the fragment length, want 1", encoder.SeqLen())
	}
}

func TestPurePartsCarryFragments(t *testing.T) {
	message := testMessage(t, 250)
	encoder := encoderFor(t, message, 30)

	wrapped, err := NewBytes(message)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	fragmentLength, err := findNominalFragmentLength(len(wrapped.Payload()), 30)
	if err != nil {
		t.Fatalf("findNominalFragmentLength: %v", err)
	}
	fragments := partitionMessage(wrapped.Payload(), fragmentLength)

	for index := 0; index < encoder.SeqLen(); index++ {
		part, err := encoder.NextPart()
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		envelope := decodeEnvelope(t, part)
		if !bytes.Equal(envelope.Data, fragments[index]) {
			t.Errorf("part %d data != fragment %d", index+1, index)
		}
	}
}

func TestMixedPartIsXOROfChosenFragments(t *testing.T) {
	message := testMessage(t, 250)
	encoder := encoderFor(t, message, 30)

	// Skip the pure parts.
	for index := 0; index < encoder.SeqLen(); index++ {
		if _, err := encoder.NextPart(); err != nil {
			t.Fatalf("NextPart: %v", err)
		}
	}
	part, err := encoder.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	envelope := decodeEnvelope(t, part)

	indexes := chooseFragments(envelope.SeqNum, encoder.SeqLen(), encoder.checksum)
	want := make([]byte, len(encoder.fragments[0]))
	copy(want, encoder.fragments[indexes[0]])
	for _, index := range indexes[1:] {
		xorInto(want, encoder.fragments[index])
	}
	if !bytes.Equal(envelope.Data, want) {
		t.Errorf("mixed part data != XOR of fragments %v", indexes)
	}
}

func TestRoundTripInOrder(t *testing.T) {
	for _, config := range []struct {
		length, fragment, extra int
	}{
		{100, 100, 0},
		{100, 30, 2},
		{300, 100, 0},
		{1000, 90, 5},
	} {
		message := testMessage(t, config.length)
		encoder := encoderFor(t, message, config.fragment)
		parts, err := encoder.Parts(encoder.SeqLen() + config.extra)
		if err != nil {
			t.Fatalf("Parts: %v", err)
		}

		decoder := NewDecoder()
		for _, part := range parts {
			if err := decoder.Receive(part); err != nil {
				t.Fatalf("config %+v: Receive(%q): %v", config, part, err)
			}
		}
		if !decoder.Done() {
			t.Fatalf("config %+v: decoder not done after all parts", config)
		}
		assertDecoded(t, decoder, message)
	}
}

func TestRoundTripReverseOrder(t *testing.T) {
	message := testMessage(t, 600)
	encoder := encoderFor(t, message, 50)
	parts, err := encoder.Parts(encoder.SeqLen() * 3)
	if err != nil {
		t.Fatalf("Parts: %v", err)
	}

	decoder := NewDecoder()
	for position := len(parts) - 1; position >= 0 && !decoder.Done(); position-- {
		if err := decoder.Receive(parts[position]); err != nil {
			t.Fatalf("Receive: %v", err)
		}
	}
	if !decoder.Done() {
		t.Fatal("decoder not done after receiving three sequences of parts in reverse")
	}
	assertDecoded(t, decoder, message)
}

func TestRoundTripWithLosses(t *testing.T) {
	message := testMessage(t, 500)
	encoder := encoderFor(t, message, 40)

	// Drop every third part, simulating missed QR frames. The
	// encoder never runs out of parts, so the decoder must still
	// converge; the cap only bounds a broken implementation.
	decoder := NewDecoder()
	for position := 0; position < 400 && !decoder.Done(); position++ {
		part, err := encoder.NextPart()
		if err != nil {
			t.Fatalf("NextPart: %v", err)
		}
		if position%3 == 2 {
			continue
		}
		if err := decoder.Receive(part); err != nil {
			t.Fatalf("Receive: %v", err)
		}
	}
	if !decoder.Done() {
		t.Fatal("decoder did not converge within 400 parts at one-third loss")
	}
	assertDecoded(t, decoder, message)
}

func TestDecoderProgress(t *testing.T) {
	message := testMessage(t, 300)
	encoder := encoderFor(t, message, 30)
	parts, err := encoder.Parts(encoder.SeqLen())
	if err != nil {
		t.Fatalf("Parts: %v", err)
	}

	decoder := NewDecoder()
	if decoder.Progress() != 0 {
		t.Errorf("initial Progress = %v, want 0", decoder.Progress())
	}
	previous := 0.0
	for _, part := range parts {
		if err := decoder.Receive(part); err != nil {
			t.Fatalf("Receive: %v", err)
		}
		current := decoder.Progress()
		if current < previous {
			t.Fatalf("Progress went backward: %v -> %v", previous, current)
		}
		previous = current
	}
	if previous != 1.0 {
		t.Errorf("final Progress = %v, want 1.0", previous)
	}
}

func TestDecoderRejectsCrossMessageParts(t *testing.T) {
	first := encoderFor(t, testMessage(t, 300), 30)
	second := encoderFor(t, bytes.Repeat([]byte{0x77}, 300), 30)

	firstPart, err := first.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}
	secondPart, err := second.NextPart()
	if err != nil {
		t.Fatalf("NextPart: %v", err)
	}

	decoder := NewDecoder()
	if err := decoder.Receive(firstPart); err != nil {
		t.Fatalf("Receive(first): %v", err)
	}
	if err := decoder.Receive(secondPart); !errors.Is(err, ErrPartMismatch) {
		t.Errorf("Receive(cross-message part) = %v, want ErrPartMismatch", err)
	}
}

func TestDecoderAcceptsSinglePartUR(t *testing.T) {
	message := testMessage(t, 80)
	wrapped, err := NewBytes(message)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}

	decoder := NewDecoder()
	if err := decoder.Receive(Encode(wrapped)); err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if !decoder.Done() {
		t.Fatal("decoder not done after a single-part UR")
	}
	assertDecoded(t, decoder, message)
}

func TestDecoderResultBeforeDone(t *testing.T) {
	decoder := NewDecoder()
	if _, err := decoder.Result(); err == nil {
		t.Error("Result on an empty decoder succeeded, want error")
	}
}

func assertDecoded(t *testing.T, decoder *Decoder, message []byte) {
	t.Helper()
	result, err := decoder.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	decoded, err := result.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if !bytes.Equal(decoded, message) {
		t.Errorf("decoded message != original (%d vs %d bytes)", len(decoded), len(message))
	}
}

func BenchmarkEncoderNextPart(b *testing.B) {
	wrapped, err := NewBytes(bytes.Repeat([]byte{0x3C}, 1000))
	if err != nil {
		b.Fatalf("NewBytes: %v", err)
	}
	encoder, err := NewEncoder(wrapped, 100)
	if err != nil {
		b.Fatalf("NewEncoder: %v", err)
	}
	for b.Loop() {
		if _, err := encoder.NextPart(); err != nil {
			b.Fatal(err)
		}
	}
}
