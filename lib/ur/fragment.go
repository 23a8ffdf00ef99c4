// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ur

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/bureau-foundation/qur/lib/xoshiro"
)

// minFragmentLength is the smallest fragment the nominal-length
// search will produce. Fragments below this waste part overhead on
// tiny payloads.
const minFragmentLength = 10

// findNominalFragmentLength picks the fragment length for a message:
// the largest count of equal-sized fragments (each at least
// minFragmentLength bytes) whose fragment length stays within
// maxFragmentLength. A message shorter than minFragmentLength yields
// a single fragment.
func findNominalFragmentLength(messageLength, maxFragmentLength int) (int, error) {
	if messageLength <= 0 {
		return 0, fmt.Errorf("ur: message length %d, want > 0", messageLength)
	}
	if maxFragmentLength < minFragmentLength {
		return 0, fmt.Errorf("ur: max fragment length %d, want >= %d", maxFragmentLength, minFragmentLength)
	}
	maxFragmentCount := max(messageLength/minFragmentLength, 1)
	fragmentLength := 0
	for fragmentCount := 1; fragmentCount <= maxFragmentCount; fragmentCount++ {
		fragmentLength = (messageLength + fragmentCount - 1) / fragmentCount
		if fragmentLength <= maxFragmentLength {
			break
		}
	}
	return fragmentLength, nil
}

// partitionMessage splits the message into equal-length fragments,
// zero-padding the last one. The receiver strips the padding using
// the message length carried in every part envelope.
func partitionMessage(message []byte, fragmentLength int) [][]byte {
	fragmentCount := (len(message) + fragmentLength - 1) / fragmentLength
	fragments := make([][]byte, 0, fragmentCount)
	for start := 0; start < fragmentCount*fragmentLength; start += fragmentLength {
		fragment := make([]byte, fragmentLength)
		if start < len(message) {
			copy(fragment, message[start:min(start+fragmentLength, len(message))])
		}
		fragments = append(fragments, fragment)
	}
	return fragments
}

// joinFragments reassembles the message from in-order fragments,
// stripping the zero padding beyond messageLength.
func joinFragments(fragments [][]byte, messageLength int) []byte {
	message := make([]byte, 0, messageLength)
	for _, fragment := range fragments {
		message = append(message, fragment...)
	}
	return message[:messageLength]
}

// chooseFragments returns the sorted fragment indexes mixed into the
// part with the given sequence number. The first seqLen parts are the
// pure fragments in order. Beyond that, the part's degree and fragment
// subset are drawn from a generator seeded with the sequence number
// and the message checksum, so encoder and decoder agree on every
// part's contents without transmitting the index list.
func chooseFragments(seqNum uint32, seqLen int, checksum uint32) []int {
	if seqNum <= uint32(seqLen) {
		return []int{int(seqNum - 1)}
	}

	seed := make([]byte, 8)
	binary.BigEndian.PutUint32(seed[0:4], seqNum)
	binary.BigEndian.PutUint32(seed[4:8], checksum)
	generator := xoshiro.New(seed)

	degree := chooseDegree(seqLen, generator)
	indexes := make([]int, seqLen)
	for index := range indexes {
		indexes[index] = index
	}
	chosen := xoshiro.Shuffle(generator, indexes)[:degree]
	sort.Ints(chosen)
	return chosen
}

// chooseDegree draws a part degree in [1, seqLen] with probability
// proportional to 1/degree, favoring low-degree parts that decode
// quickly.
func chooseDegree(seqLen int, generator *xoshiro.Generator) int {
	weights := make([]float64, seqLen)
	for index := range weights {
		weights[index] = 1 / float64(index+1)
	}
	return xoshiro.NewSampler(weights).Next(generator) + 1
}

// xorInto XORs source into target in place. Both slices must have the
// same length.
func xorInto(target, source []byte) {
	for index := range target {
		target[index] ^= source[index]
	}
}
