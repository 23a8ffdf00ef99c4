// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lifehash

import (
	"encoding/hex"
	"fmt"
	"image"
	"image/color"

	"github.com/zeebo/blake3"
)

// Grid geometry. The 32-byte digest provides exactly one bit per cell
// of the 16x16 automaton grid; mirroring doubles it to 32x32 pixels.
const (
	cellSize  = 16
	GridSize  = 2 * cellSize
	digestLen = 32
)

// maxGenerations bounds the Game of Life evolution. Most seeds cycle
// or stabilize well before this.
const maxGenerations = 32

// fingerprintKey is the BLAKE3 keyed-hash domain for fingerprints.
// The byte values are the ASCII encoding of the domain name,
// zero-padded to 32 bytes, so the key is inspectable in hex dumps.
var fingerprintKey = [32]byte{
	'q', 'u', 'r', '.', 'l', 'i', 'f', 'e', 'h', 'a', 's', 'h',
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint is the computed visual fingerprint: the digest that
// seeded it and the fully colored, mirrored pixel grid.
type Fingerprint struct {
	// Digest is the keyed BLAKE3 digest of the input.
	Digest [digestLen]byte

	// Grid is the GridSize x GridSize pixel colors, row major.
	Grid [GridSize][GridSize]color.NRGBA
}

// Make computes the fingerprint of data.
func Make(data []byte) Fingerprint {
	fingerprint := Fingerprint{Digest: keyedDigest(data)}

	cells := seedCells(fingerprint.Digest)
	intensities := evolve(cells)
	gradient := chooseGradient(fingerprint.Digest)

	// Color the automaton grid, then mirror it across both axes so
	// the image is 4-fold symmetric.
	for row := 0; row < cellSize; row++ {
		for column := 0; column < cellSize; column++ {
			pixel := gradient.at(intensities[row][column])
			fingerprint.Grid[row][column] = pixel
			fingerprint.Grid[row][GridSize-1-column] = pixel
			fingerprint.Grid[GridSize-1-row][column] = pixel
			fingerprint.Grid[GridSize-1-row][GridSize-1-column] = pixel
		}
	}
	return fingerprint
}

// Ref returns a short hex reference for status lines: the first four
// digest bytes.
func (fingerprint Fingerprint) Ref() string {
	return hex.EncodeToString(fingerprint.Digest[:4])
}

// Image renders the fingerprint as a size x size image using
// nearest-neighbor scaling. Size must be positive.
func (fingerprint Fingerprint) Image(size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("lifehash: image size %d, want > 0", size)
	}
	rendered := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		row := y * GridSize / size
		for x := 0; x < size; x++ {
			column := x * GridSize / size
			rendered.SetNRGBA(x, y, fingerprint.Grid[row][column])
		}
	}
	return rendered, nil
}

func keyedDigest(data []byte) [digestLen]byte {
	// NewKeyed requires exactly 32 bytes, which the fixed-size key
	// guarantees; the error path is unreachable.
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("lifehash: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var digest [digestLen]byte
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// cellGrid is one generation of the automaton. Bit-per-cell packing
// is not worth it at 256 cells.
type cellGrid [cellSize][cellSize]bool

// seedCells unpacks the digest into the initial generation, one bit
// per cell in row-major order.
func seedCells(digest [digestLen]byte) cellGrid {
	var cells cellGrid
	for bit := 0; bit < cellSize*cellSize; bit++ {
		if digest[bit/8]&(1<<(7-bit%8)) != 0 {
			cells[bit/cellSize][bit%cellSize] = true
		}
	}
	return cells
}

// evolve runs the toroidal Game of Life from the seed generation and
// returns each cell's liveness averaged over the generations actually
// produced. Evolution stops early when a generation repeats one seen
// before (the automaton has entered a cycle and further generations
// would only re-weight the same states).
func evolve(cells cellGrid) [cellSize][cellSize]float64 {
	var liveCounts [cellSize][cellSize]int
	seen := make(map[cellGrid]bool, maxGenerations)

	generations := 0
	for ; generations < maxGenerations; generations++ {
		if seen[cells] {
			break
		}
		seen[cells] = true
		for row := 0; row < cellSize; row++ {
			for column := 0; column < cellSize; column++ {
				if cells[row][column] {
					liveCounts[row][column]++
				}
			}
		}
		cells = nextGeneration(cells)
	}

	var intensities [cellSize][cellSize]float64
	for row := 0; row < cellSize; row++ {
		for column := 0; column < cellSize; column++ {
			intensities[row][column] = float64(liveCounts[row][column]) / float64(generations)
		}
	}
	return intensities
}

// nextGeneration applies the Conway rules on a torus: a live cell
// survives with 2 or 3 live neighbors, a dead cell is born with
// exactly 3.
func nextGeneration(cells cellGrid) cellGrid {
	var next cellGrid
	for row := 0; row < cellSize; row++ {
		for column := 0; column < cellSize; column++ {
			neighbors := 0
			for deltaRow := -1; deltaRow <= 1; deltaRow++ {
				for deltaColumn := -1; deltaColumn <= 1; deltaColumn++ {
					if deltaRow == 0 && deltaColumn == 0 {
						continue
					}
					wrappedRow := (row + deltaRow + cellSize) % cellSize
					wrappedColumn := (column + deltaColumn + cellSize) % cellSize
					if cells[wrappedRow][wrappedColumn] {
						neighbors++
					}
				}
			}
			next[row][column] = neighbors == 3 || (cells[row][column] && neighbors == 2)
		}
	}
	return next
}
