package distance

import (
	"errors"
	"fmt"
	"slices"

	"github.com/cwbudde/algo-raspir/coverage/position"
)

// Subsampling defaults.
const (
	DefaultThreshold  = 1000
	DefaultSampleSize = 400
)

// Errors returned by Build.
var (
	ErrLengthMismatch = errors.New("distance: real and reference sets differ in length")
	ErrInvalidConfig  = errors.New("distance: invalid subsampling config")
)

// Config controls subsampling of large position sets.
type Config struct {
	// Threshold is the largest set size used whole. Larger sets are
	// subsampled to SampleSize positions.
	Threshold  int
	SampleSize int
	Seed       uint64
}

// DefaultConfig returns the default subsampling parameters.
func DefaultConfig() Config {
	return Config{
		Threshold:  DefaultThreshold,
		SampleSize: DefaultSampleSize,
		Seed:       DefaultSeed,
	}
}

// Validate reports whether cfg can be used by [Build].
func (cfg Config) Validate() error {
	if cfg.Threshold < 2 {
		return fmt.Errorf("%w: threshold %d < 2", ErrInvalidConfig, cfg.Threshold)
	}
	if cfg.SampleSize < 2 || cfg.SampleSize > cfg.Threshold {
		return fmt.Errorf("%w: sample size %d not in [2, %d]", ErrInvalidConfig, cfg.SampleSize, cfg.Threshold)
	}
	return nil
}

// Distributions holds the sorted pairwise-distance signals of one organism.
type Distributions struct {
	Label     string
	Real      []float64
	Reference []float64
}

// Len returns the number of elements in each distribution.
func (d Distributions) Len() int { return len(d.Real) }

// Pairs returns the number of unordered pairs of n elements.
func Pairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// Pairwise returns |a-b| for every unordered pair of positions, sorted in
// ascending order.
func Pairwise(positions []float64) []float64 {
	n := len(positions)
	out := make([]float64, 0, Pairs(n))

	for i := range n {
		for j := i + 1; j < n; j++ {
			d := positions[i] - positions[j]
			if d < 0 {
				d = -d
			}
			out = append(out, d)
		}
	}

	slices.Sort(out)
	return out
}

// Build converts a normalized position set into its two distance
// distributions.
//
// Both sets are sorted first. Sets larger than cfg.Threshold are subsampled
// to cfg.SampleSize positions: the real set first, then the reference set,
// both from one generator seeded with cfg.Seed. The subsets are drawn
// independently and are not index paired.
func Build(label string, set position.Set, cfg Config) (Distributions, error) {
	if err := cfg.Validate(); err != nil {
		return Distributions{}, err
	}

	if len(set.Real) != len(set.Reference) {
		return Distributions{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(set.Real), len(set.Reference))
	}

	sample := slices.Clone(set.Real)
	ref := slices.Clone(set.Reference)
	slices.Sort(sample)
	slices.Sort(ref)

	if len(sample) > cfg.Threshold {
		s := NewSampler(cfg.Seed)
		sample = s.Sample(sample, cfg.SampleSize)
		ref = s.Sample(ref, cfg.SampleSize)
	}

	return Distributions{
		Label:     label,
		Real:      Pairwise(sample),
		Reference: Pairwise(ref),
	}, nil
}
