package reads

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// DefaultMinReads is the smallest number of read starts an organism needs
// to be analyzed.
const DefaultMinReads = 4

// Errors returned by the aggregator. Both are filtering outcomes, not faults.
var (
	ErrTooFewReads         = errors.New("reads: too few read starts")
	ErrInvalidGenomeLength = errors.New("reads: genome length must be positive")
)

// Read is one mapped position and the coverage depth at that position.
type Read struct {
	Position int // 1-based offset into the reference genome
	Depth    int
}

// Organism groups all reads mapped to one reference genome.
//
// Reads are expected in non-decreasing position order. The order is not
// verified; unsorted input changes the deduplication result.
type Organism struct {
	Name         string
	GenomeLength int
	Reads        []Read
}

// ReadSet holds the read starts of an organism after deduplication.
type ReadSet struct {
	Organism  Organism
	Starts    []Read
	ReadCount int
}

// MeanDepth returns the integer (truncated) mean depth over the read starts.
func (rs ReadSet) MeanDepth() int {
	if len(rs.Starts) == 0 {
		return 0
	}

	depths := make(stats.Float64Data, len(rs.Starts))
	for i, r := range rs.Starts {
		depths[i] = float64(r.Depth)
	}

	mean, err := stats.Mean(depths)
	if err != nil {
		return 0
	}

	return int(mean)
}

// Deduplicate collapses every maximal run of positions that each lie exactly
// one base after their predecessor into the first read of the run.
//
// The first read always opens a run. Position deltas are absolute, so a
// descending step of one base also continues a run.
func Deduplicate(in []Read) []Read {
	if len(in) == 0 {
		return nil
	}

	out := make([]Read, 0, len(in))
	out = append(out, in[0])

	for i := 1; i < len(in); i++ {
		delta := in[i].Position - in[i-1].Position
		if delta < 0 {
			delta = -delta
		}

		if delta != 1 {
			out = append(out, in[i])
		}
	}

	return out
}

// Aggregate deduplicates the reads of org and enforces the minimum read
// count. A minReads <= 0 selects [DefaultMinReads].
func Aggregate(org Organism, minReads int) (ReadSet, error) {
	if minReads <= 0 {
		minReads = DefaultMinReads
	}

	if org.GenomeLength <= 0 {
		return ReadSet{}, fmt.Errorf("%w: %s has %d", ErrInvalidGenomeLength, org.Name, org.GenomeLength)
	}

	starts := Deduplicate(org.Reads)
	if len(starts) < minReads {
		return ReadSet{}, fmt.Errorf("%w: %s has %d, need %d", ErrTooFewReads, org.Name, len(starts), minReads)
	}

	return ReadSet{
		Organism:  org,
		Starts:    starts,
		ReadCount: len(starts),
	}, nil
}
