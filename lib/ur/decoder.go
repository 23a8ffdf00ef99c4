// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"errors"
	"fmt"
	"hash/crc32"
	"slices"
	"strconv"
	"strings"

	"github.com/bureau-foundation/qur/lib/bytewords"
	"github.com/bureau-foundation/qur/lib/codec"
)

// ErrPartMismatch means a received part disagrees with earlier parts
// about the message it belongs to (type, length, checksum, or part
// geometry). Parts from different messages cannot be mixed.
var ErrPartMismatch = errors.New("ur: part belongs to a different message")

// receivedPart is a part after envelope decoding: the fragment
// indexes it mixes and the XOR of those fragments.
type receivedPart struct {
	indexes []int
	data    []byte
}

// degree returns the number of fragments mixed into the part.
func (part receivedPart) degree() int { return len(part.indexes) }

// Decoder reconstructs a UR from part strings received in any order.
// It accepts both single-part URs and fountain parts.
type Decoder struct {
	urType string

	// Expected message geometry, locked in by the first fountain
	// part received.
	seqLen      int
	messageLen  int
	fragmentLen int
	checksum    uint32

	simple map[int][]byte
	mixed  []receivedPart

	result *UR
}

// NewDecoder creates an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{simple: make(map[int][]byte)}
}

// Receive consumes one UR string (single-part or fountain part).
// Parts received after the message is complete are ignored.
func (decoder *Decoder) Receive(text string) error {
	if decoder.result != nil {
		return nil
	}

	components, err := splitUR(text)
	if err != nil {
		return err
	}
	urType := components[0]
	if !isValidType(urType) {
		return fmt.Errorf("%w: %q", ErrInvalidType, urType)
	}
	if decoder.urType == "" {
		decoder.urType = urType
	} else if decoder.urType != urType {
		return fmt.Errorf("%w: type %q, expected %q", ErrPartMismatch, urType, decoder.urType)
	}

	switch len(components) {
	case 2:
		parsed, err := Parse(text)
		if err != nil {
			return err
		}
		decoder.result = &parsed
		return nil
	case 3:
		return decoder.receiveFountainPart(components[1], components[2])
	default:
		return fmt.Errorf("ur: %d path components in %q, want 2 or 3", len(components), text)
	}
}

// Done reports whether the full message has been reconstructed.
func (decoder *Decoder) Done() bool { return decoder.result != nil }

// Progress returns the fraction of pure fragments recovered so far,
// reaching 1.0 when the message is complete.
func (decoder *Decoder) Progress() float64 {
	if decoder.result != nil {
		return 1.0
	}
	if decoder.seqLen == 0 {
		return 0.0
	}
	return float64(len(decoder.simple)) / float64(decoder.seqLen)
}

// Result returns the reconstructed UR. It fails until Done reports
// true.
func (decoder *Decoder) Result() (UR, error) {
	if decoder.result == nil {
		return UR{}, fmt.Errorf("ur: message incomplete, %d of %d fragments recovered",
			len(decoder.simple), decoder.seqLen)
	}
	return *decoder.result, nil
}

// receiveFountainPart parses the "<seqNum>-<seqLen>" sequence
// component and the bytewords body, validates consistency with the
// parts seen so far, and folds the part into the reconstruction.
func (decoder *Decoder) receiveFountainPart(sequence, body string) error {
	seqNum, seqLen, err := parseSequence(sequence)
	if err != nil {
		return err
	}

	envelopeData, err := bytewords.Decode(bytewords.Minimal, body)
	if err != nil {
		return fmt.Errorf("ur: decoding part %s body: %w", sequence, err)
	}
	var envelope partEnvelope
	if err := codec.Unmarshal(envelopeData, &envelope); err != nil {
		return fmt.Errorf("ur: decoding part %s envelope: %w", sequence, err)
	}
	if envelope.SeqNum != seqNum || envelope.SeqLen != uint64(seqLen) {
		return fmt.Errorf("ur: part sequence %s disagrees with envelope %d-%d",
			sequence, envelope.SeqNum, envelope.SeqLen)
	}

	if decoder.seqLen == 0 {
		// First fountain part locks in the message geometry.
		decoder.seqLen = seqLen
		decoder.messageLen = int(envelope.MessageLen)
		decoder.fragmentLen = len(envelope.Data)
		decoder.checksum = envelope.Checksum
	} else if seqLen != decoder.seqLen ||
		int(envelope.MessageLen) != decoder.messageLen ||
		len(envelope.Data) != decoder.fragmentLen ||
		envelope.Checksum != decoder.checksum {
		return fmt.Errorf("%w: part %s geometry [seqLen %d, messageLen %d, fragmentLen %d, checksum %08x], expected [%d, %d, %d, %08x]",
			ErrPartMismatch, sequence, seqLen, envelope.MessageLen, len(envelope.Data), envelope.Checksum,
			decoder.seqLen, decoder.messageLen, decoder.fragmentLen, decoder.checksum)
	}

	part := receivedPart{
		indexes: chooseFragments(envelope.SeqNum, decoder.seqLen, decoder.checksum),
		data:    envelope.Data,
	}
	decoder.fold(part)
	return nil
}

// fold reduces the part against recovered fragments and integrates
// whatever remains. Mixed parts that collapse to a single fragment
// are promoted, which can cascade through the stored mixed parts.
func (decoder *Decoder) fold(part receivedPart) {
	queue := []receivedPart{part}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		next = decoder.reduceBySimple(next)
		if next.degree() == 0 {
			// Every mixed fragment was already recovered; the part
			// carries no new information.
			continue
		}
		if next.degree() > 1 {
			if !decoder.hasMixed(next) {
				decoder.mixed = append(decoder.mixed, next)
			}
			continue
		}

		fragmentIndex := next.indexes[0]
		if _, known := decoder.simple[fragmentIndex]; known {
			continue
		}
		decoder.simple[fragmentIndex] = next.data

		// The new fragment may collapse stored mixed parts.
		remaining := decoder.mixed[:0]
		for _, stored := range decoder.mixed {
			reduced := decoder.reduceBySimple(stored)
			if reduced.degree() == 1 {
				queue = append(queue, reduced)
			} else {
				remaining = append(remaining, reduced)
			}
		}
		decoder.mixed = remaining

		if len(decoder.simple) == decoder.seqLen {
			decoder.assemble()
			return
		}
	}
}

// reduceBySimple removes every already-recovered fragment from the
// part by XOR, returning a part with a fresh data slice when any
// reduction applied.
func (decoder *Decoder) reduceBySimple(part receivedPart) receivedPart {
	remaining := make([]int, 0, len(part.indexes))
	var toRemove [][]byte
	for _, index := range part.indexes {
		if fragment, known := decoder.simple[index]; known && len(part.indexes) > 1 {
			toRemove = append(toRemove, fragment)
		} else {
			remaining = append(remaining, index)
		}
	}
	if len(remaining) == 0 {
		return receivedPart{}
	}
	if len(toRemove) == 0 {
		return part
	}
	data := make([]byte, len(part.data))
	copy(data, part.data)
	for _, fragment := range toRemove {
		xorInto(data, fragment)
	}
	return receivedPart{indexes: remaining, data: data}
}

// hasMixed reports whether a part mixing the same fragment set is
// already stored.
func (decoder *Decoder) hasMixed(part receivedPart) bool {
	for _, stored := range decoder.mixed {
		if slices.Equal(stored.indexes, part.indexes) {
			return true
		}
	}
	return false
}

// assemble joins the recovered fragments, strips the padding, and
// verifies the checksum. A checksum failure leaves the decoder
// incomplete; the parts were self-consistent but corrupt.
func (decoder *Decoder) assemble() {
	fragments := make([][]byte, decoder.seqLen)
	for index := range fragments {
		fragments[index] = decoder.simple[index]
	}
	message := joinFragments(fragments, decoder.messageLen)
	if crc32.ChecksumIEEE(message) != decoder.checksum {
		return
	}
	decoder.result = &UR{urType: decoder.urType, payload: message}
}

func parseSequence(sequence string) (uint32, int, error) {
	numText, lenText, found := strings.Cut(sequence, "-")
	if !found {
		return 0, 0, fmt.Errorf("ur: sequence component %q, want <seqNum>-<seqLen>", sequence)
	}
	seqNum, err := strconv.ParseUint(numText, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("ur: sequence number %q: %w", numText, err)
	}
	seqLen, err := strconv.Atoi(lenText)
	if err != nil || seqLen <= 0 {
		return 0, 0, fmt.Errorf("ur: sequence length %q, want a positive integer", lenText)
	}
	return uint32(seqNum), seqLen, nil
}
