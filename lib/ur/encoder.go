// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/bureau-foundation/qur/lib/bytewords"
	"github.com/bureau-foundation/qur/lib/codec"
)

// partEnvelope is the CBOR wire form of one fountain part: a fixed
// five-element array, not a map, to keep parts compact.
type partEnvelope struct {
	_          struct{} `cbor:",toarray"`
	SeqNum     uint32
	SeqLen     uint64
	MessageLen uint64
	Checksum   uint32
	Data       []byte
}

// Encoder produces the part strings of a multi-part UR. Each call to
// NextPart advances the sequence number; parts beyond SeqLen are
// fountain-coded mixtures, so an Encoder never runs out of parts.
type Encoder struct {
	ur         UR
	fragments  [][]byte
	messageLen int
	checksum   uint32
	seqNum     uint32
}

// NewEncoder creates a multi-part encoder for the UR, splitting its
// payload into fragments of at most maxFragmentLength bytes.
func NewEncoder(u UR, maxFragmentLength int) (*Encoder, error) {
	fragmentLength, err := findNominalFragmentLength(len(u.payload), maxFragmentLength)
	if err != nil {
		return nil, err
	}
	return &Encoder{
		ur:         u,
		fragments:  partitionMessage(u.payload, fragmentLength),
		messageLen: len(u.payload),
		checksum:   crc32.ChecksumIEEE(u.payload),
	}, nil
}

// SeqLen returns the number of pure fragments: the minimum number of
// parts a receiver needs in the best case.
func (encoder *Encoder) SeqLen() int { return len(encoder.fragments) }

// IsSinglePart reports whether the message fit in one fragment, in
// which case a single-part UR string would be the better encoding.
func (encoder *Encoder) IsSinglePart() bool { return len(encoder.fragments) == 1 }

// NextPart returns the next part string in the sequence. The sequence
// number wraps around at 2^32.
func (encoder *Encoder) NextPart() (string, error) {
	if encoder.seqNum == math.MaxUint32 {
		encoder.seqNum = 0
	}
	encoder.seqNum++

	indexes := chooseFragments(encoder.seqNum, len(encoder.fragments), encoder.checksum)
	mixed := make([]byte, len(encoder.fragments[0]))
	copy(mixed, encoder.fragments[indexes[0]])
	for _, index := range indexes[1:] {
		xorInto(mixed, encoder.fragments[index])
	}

	envelope, err := codec.Marshal(partEnvelope{
		SeqNum:     encoder.seqNum,
		SeqLen:     uint64(len(encoder.fragments)),
		MessageLen: uint64(encoder.messageLen),
		Checksum:   encoder.checksum,
		Data:       mixed,
	})
	if err != nil {
		return "", fmt.Errorf("ur: encoding part %d envelope: %w", encoder.seqNum, err)
	}

	return fmt.Sprintf("ur:%s/%d-%d/%s", encoder.ur.urType, encoder.seqNum,
		len(encoder.fragments), bytewords.Encode(bytewords.Minimal, envelope)), nil
}

// Parts returns the first count part strings. The demo uses this to
// precompute its frame list (SeqLen parts plus any extras).
func (encoder *Encoder) Parts(count int) ([]string, error) {
	parts := make([]string, 0, count)
	for len(parts) < count {
		part, err := encoder.NextPart()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}
