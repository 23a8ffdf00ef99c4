// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytewords

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"strings"
)

// Style selects how encoded bytes are spelled.
type Style int

const (
	// Standard spells full four-letter words, hyphen-separated.
	Standard Style = iota
	// Minimal abbreviates each word to its first and last letter,
	// with no separator. UR strings use this style.
	Minimal
)

// words is the 256-word bytewords alphabet in byte-value order. Every
// word is exactly four letters and the (first, last) letter pair is
// unique across the list.
const words = "ableacidalsoapexaquaarchatomaunt" +
	"awayaxisbackbaldbarnbeltbetabias" +
	"bluebodybragbrewbulbbuzzcalmcash" +
	"catschefcityclawcodecolacookcost" +
	"cruxcurlcuspcyandarkdatadaysdeli" +
	"dicedietdoordowndrawdropdrumdull" +
	"dutyeacheasyechoedgeepicevenexam" +
	"exiteyesfactfairfernfigsfilmfish" +
	"fizzflapflewfluxfoxyfreefrogfuel" +
	"fundgalagamegeargemsgiftgirlglow" +
	"goodgraygrimgurugushgyrohalfhang" +
	"hardhawkheathelphighhillholyhope" +
	"hornhutsicedideaidleinchinkyinto" +
	"irisironitemjadejazzjoinjoltjowl" +
	"judojugsjumpjunkjurykeepkenokept" +
	"keyskickkilnkingkitekiwiknoblamb" +
	"lavalazyleaflegsliarlimplionlist" +
	"logoloudloveluaulucklungmainmany" +
	"mathmazememomenumeowmildmintmiss" +
	"monknailnavyneednewsnextnoonnote" +
	"numbobeyoboeomitonyxopenovalowls" +
	"paidpartpeckplaypluspoempoolpose" +
	"puffpumapurrquadquizracerampreal" +
	"redorichroadrockroofrubyruinruns" +
	"rustsafesagascarsetssilkskewslot" +
	"soapsolosongstubsurfswantacotask" +
	"taxitenttiedtimetinytoiltombtoys" +
	"triptunatwinuglyundouniturgeuser" +
	"vastveryvetovialvibeviewvisavoid" +
	"vowswallwandwarmwaspwavewaxywebs" +
	"whatwhenwhizwolfworkyankyawnyell" +
	"yogayurtzapszerozestzinczonezoom"

// Decoding errors. Callers distinguish malformed text from a payload
// that arrived damaged.
var (
	// ErrUnknownWord means the text contains a word (or minimal
	// letter pair) outside the bytewords alphabet.
	ErrUnknownWord = errors.New("bytewords: unknown word")

	// ErrTruncated means the text is too short to hold a checksum or
	// is not a whole number of words.
	ErrTruncated = errors.New("bytewords: truncated input")

	// ErrChecksum means the words decoded but the trailing CRC-32
	// does not match the payload.
	ErrChecksum = errors.New("bytewords: checksum mismatch")
)

// minimalIndex maps a (first letter, last letter) pair to the byte
// value plus one. Zero means the pair is not in the alphabet.
var minimalIndex [26 * 26]int16

// wordIndex maps a full word to its byte value.
var wordIndex = make(map[string]byte, 256)

func init() {
	for value := 0; value < 256; value++ {
		word := words[value*4 : value*4+4]
		wordIndex[word] = byte(value)
		pair := int(word[0]-'a')*26 + int(word[3]-'a')
		minimalIndex[pair] = int16(value) + 1
	}
}

// Encode renders data in the given style. A 4-byte big-endian CRC-32
// (IEEE) of data is appended before word mapping, so even an empty
// payload produces output.
func Encode(style Style, data []byte) string {
	checksummed := appendChecksum(data)

	var builder strings.Builder
	switch style {
	case Minimal:
		builder.Grow(len(checksummed) * 2)
		for _, value := range checksummed {
			word := words[int(value)*4 : int(value)*4+4]
			builder.WriteByte(word[0])
			builder.WriteByte(word[3])
		}
	default:
		builder.Grow(len(checksummed) * 5)
		for position, value := range checksummed {
			if position > 0 {
				builder.WriteByte('-')
			}
			builder.WriteString(words[int(value)*4 : int(value)*4+4])
		}
	}
	return builder.String()
}

// Decode parses text in the given style, validates the trailing
// checksum, and returns the payload with the checksum stripped.
func Decode(style Style, text string) ([]byte, error) {
	var decoded []byte
	switch style {
	case Minimal:
		if len(text)%2 != 0 {
			return nil, fmt.Errorf("%w: odd length %d", ErrTruncated, len(text))
		}
		decoded = make([]byte, 0, len(text)/2)
		for position := 0; position < len(text); position += 2 {
			first, last := text[position], text[position+1]
			if first < 'a' || first > 'z' || last < 'a' || last > 'z' {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownWord, text[position:position+2], position)
			}
			entry := minimalIndex[int(first-'a')*26+int(last-'a')]
			if entry == 0 {
				return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownWord, text[position:position+2], position)
			}
			decoded = append(decoded, byte(entry-1))
		}
	default:
		if text == "" {
			return nil, fmt.Errorf("%w: empty input", ErrTruncated)
		}
		parts := strings.Split(text, "-")
		decoded = make([]byte, 0, len(parts))
		for _, word := range parts {
			value, ok := wordIndex[word]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownWord, word)
			}
			decoded = append(decoded, value)
		}
	}
	return stripChecksum(decoded)
}

// appendChecksum returns data with its big-endian CRC-32 appended.
func appendChecksum(data []byte) []byte {
	checksummed := make([]byte, len(data)+4)
	copy(checksummed, data)
	binary.BigEndian.PutUint32(checksummed[len(data):], crc32.ChecksumIEEE(data))
	return checksummed
}

// stripChecksum validates and removes the trailing CRC-32.
func stripChecksum(decoded []byte) ([]byte, error) {
	if len(decoded) < 4 {
		return nil, fmt.Errorf("%w: %d bytes, need at least 4 for the checksum", ErrTruncated, len(decoded))
	}
	payload := decoded[:len(decoded)-4]
	want := binary.BigEndian.Uint32(decoded[len(decoded)-4:])
	if got := crc32.ChecksumIEEE(payload); got != want {
		return nil, fmt.Errorf("%w: computed %08x, encoded %08x", ErrChecksum, got, want)
	}
	return payload, nil
}
