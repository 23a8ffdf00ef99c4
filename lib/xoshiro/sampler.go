// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package xoshiro

// Sampler draws indexes with probability proportional to the weights
// it was built from, using Walker's alias method: setup is O(n), each
// draw costs two uniform values. The table layout (and therefore the
// draw sequence for a given generator state) matches the UR reference
// implementation, which the fountain degree selection depends on.
type Sampler struct {
	probabilities []float64
	aliases       []int
}

// NewSampler builds a sampler over the given non-negative weights.
// Weights need not sum to one; they are normalized. Panics if weights
// is empty or contains a negative entry, which is a programmer error.
func NewSampler(weights []float64) *Sampler {
	if len(weights) == 0 {
		panic("xoshiro: sampler needs at least one weight")
	}

	var sum float64
	for _, weight := range weights {
		if weight < 0 {
			panic("xoshiro: negative sampler weight")
		}
		sum += weight
	}

	count := len(weights)
	scaled := make([]float64, count)
	for index, weight := range weights {
		scaled[index] = weight * float64(count) / sum
	}

	// Partition indexes by whether their scaled probability overflows
	// or underflows an even share. The reference walks the list in
	// reverse, and the resulting stack order is wire-relevant.
	var small, large []int
	for index := count - 1; index >= 0; index-- {
		if scaled[index] < 1 {
			small = append(small, index)
		} else {
			large = append(large, index)
		}
	}

	sampler := &Sampler{
		probabilities: make([]float64, count),
		aliases:       make([]int, count),
	}
	for len(small) > 0 && len(large) > 0 {
		underfull := small[len(small)-1]
		small = small[:len(small)-1]
		overfull := large[len(large)-1]
		large = large[:len(large)-1]

		sampler.probabilities[underfull] = scaled[underfull]
		sampler.aliases[underfull] = overfull
		scaled[overfull] += scaled[underfull] - 1
		if scaled[overfull] < 1 {
			small = append(small, overfull)
		} else {
			large = append(large, overfull)
		}
	}
	for len(large) > 0 {
		sampler.probabilities[large[len(large)-1]] = 1
		large = large[:len(large)-1]
	}
	for len(small) > 0 {
		sampler.probabilities[small[len(small)-1]] = 1
		small = small[:len(small)-1]
	}
	return sampler
}

// Next draws one index using two uniform values from the generator:
// the first picks a column, the second decides between the column's
// own index and its alias.
func (sampler *Sampler) Next(generator *Generator) int {
	column := int(generator.NextDouble() * float64(len(sampler.probabilities)))
	if generator.NextDouble() < sampler.probabilities[column] {
		return column
	}
	return sampler.aliases[column]
}
