package position

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-raspir/coverage/reads"
)

// ErrEmptySet is returned when a read set without read starts is normalized.
var ErrEmptySet = errors.New("position: read set is empty")

// Set holds the transformed positions of one organism.
//
// Real and Reference always have the same length, the read count of the
// organism.
type Set struct {
	Real      []float64
	Reference []float64
}

// Fold maps a genomic position onto its distance from the nearer genome end,
// treating the genome as circular around its midpoint.
//
//	fold(p) = L - p   if p > L/2
//	fold(p) = p       otherwise
func Fold(p, genomeLength int) int {
	if float64(p) > float64(genomeLength)/2 {
		return genomeLength - p
	}

	return p
}

// Real returns sqrt(fold(p)) * depth for every read start.
func Real(starts []reads.Read, genomeLength int) []float64 {
	out := make([]float64, len(starts))
	for i, r := range starts {
		out[i] = math.Sqrt(float64(Fold(r.Position, genomeLength))) * float64(r.Depth)
	}

	return out
}

// ReferencePositions returns n evenly spaced positions starting at 1 with
// step (genomeLength+n)/n, truncated to integers.
//
// The positions are accumulated by repeated addition of the step, and every
// value stays below genomeLength+n.
func ReferencePositions(genomeLength, n int) []int {
	if n <= 0 {
		return nil
	}

	stop := float64(genomeLength + n)
	step := stop / float64(n)

	out := make([]int, n)
	x := 1.0

	for i := range out {
		if x >= stop {
			x = math.Nextafter(stop, 0)
		}

		out[i] = int(x)
		x += step
	}

	return out
}

// Reference returns the folded synthetic positions scaled by meanDepth.
//
// The synthetic reads are uniform by construction, so they carry the mean
// depth instead of a per-read depth. Folded reference positions are not
// square-rooted.
func Reference(genomeLength, n, meanDepth int) []float64 {
	positions := ReferencePositions(genomeLength, n)

	out := make([]float64, len(positions))
	for i, p := range positions {
		out[i] = float64(Fold(p, genomeLength) * meanDepth)
	}

	return out
}

// Normalize computes the real and synthetic reference positions of rs.
func Normalize(rs reads.ReadSet) (Set, error) {
	if rs.ReadCount <= 0 || len(rs.Starts) == 0 {
		return Set{}, fmt.Errorf("%w: %s", ErrEmptySet, rs.Organism.Name)
	}

	genomeLength := rs.Organism.GenomeLength

	return Set{
		Real:      Real(rs.Starts, genomeLength),
		Reference: Reference(genomeLength, rs.ReadCount, rs.MeanDepth()),
	}, nil
}
