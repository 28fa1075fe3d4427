package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-raspir/coverage/reads"
)

// SeparatedOrganism builds an organism with one read of the given depth at
// each position.
func SeparatedOrganism(name string, genomeLength, depth int, positions ...int) reads.Organism {
	rs := make([]reads.Read, len(positions))
	for i, p := range positions {
		rs[i] = reads.Read{Position: p, Depth: depth}
	}

	return reads.Organism{Name: name, GenomeLength: genomeLength, Reads: rs}
}

// UniformOrganism spreads n read starts of readLen consecutive bases evenly
// over the genome. Every read covers readLen positions, so deduplication
// recovers exactly n starts as long as the spacing exceeds readLen.
func UniformOrganism(name string, genomeLength, n, readLen, depth int) reads.Organism {
	spacing := genomeLength / n
	rs := make([]reads.Read, 0, n*readLen)

	for i := range n {
		start := 1 + i*spacing
		for j := range readLen {
			rs = append(rs, reads.Read{Position: start + j, Depth: depth})
		}
	}

	return reads.Organism{Name: name, GenomeLength: genomeLength, Reads: rs}
}

// ClusteredOrganism places n read starts, separated by gap bases, inside a
// single window starting at offset. Depths are drawn deterministically from
// [1, maxDepth] with the given seed.
func ClusteredOrganism(name string, genomeLength, n, offset, gap, maxDepth int, seed int64) reads.Organism {
	rng := rand.New(rand.NewSource(seed))
	rs := make([]reads.Read, n)

	for i := range rs {
		rs[i] = reads.Read{Position: offset + i*gap, Depth: 1 + rng.Intn(maxDepth)}
	}

	return reads.Organism{Name: name, GenomeLength: genomeLength, Reads: rs}
}
