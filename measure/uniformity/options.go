package uniformity

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-raspir/coverage/distance"
	"github.com/cwbudde/algo-raspir/coverage/reads"
	"github.com/cwbudde/algo-raspir/coverage/species"
	"github.com/cwbudde/algo-raspir/dsp/spectrum"
)

// Config holds every parameter of the per-organism pipeline.
type Config struct {
	MinReads   int
	Subsample  distance.Config
	Spectrum   spectrum.Config
	Thresholds Thresholds
	Parser     species.Parser
}

// MinReadsFloor is the smallest usable MinReads: three read starts give the
// three distance bins a correlation needs.
const MinReadsFloor = 3

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("uniformity: invalid config")

// Validate reports whether cfg can classify an organism.
func (cfg Config) Validate() error {
	if cfg.MinReads < MinReadsFloor {
		return fmt.Errorf("%w: min reads %d < %d", ErrInvalidConfig, cfg.MinReads, MinReadsFloor)
	}

	if err := cfg.Subsample.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if cfg.Subsample.SampleSize < MinReadsFloor {
		return fmt.Errorf("%w: sample size %d < %d", ErrInvalidConfig, cfg.Subsample.SampleSize, MinReadsFloor)
	}

	if s := cfg.Spectrum.Scale; s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: magnitude scale %v", ErrInvalidConfig, s)
	}

	return nil
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default pipeline parameters.
func DefaultConfig() Config {
	return Config{
		MinReads:   reads.DefaultMinReads,
		Subsample:  distance.DefaultConfig(),
		Spectrum:   spectrum.DefaultConfig(),
		Thresholds: DefaultThresholds(),
		Parser:     species.DefaultFieldParser(),
	}
}

// WithMinReads sets the minimum number of read starts per organism.
func WithMinReads(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinReads = n
		}
	}
}

// WithSubsampling sets the set size above which positions are subsampled
// and the size of the subsample.
func WithSubsampling(threshold, size int) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.Subsample.Threshold = threshold
		}
		if size > 0 {
			cfg.Subsample.SampleSize = size
		}
	}
}

// WithSeed sets the subsampling seed.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Subsample.Seed = seed
	}
}

// WithThresholds replaces the classification thresholds.
func WithThresholds(th Thresholds) Option {
	return func(cfg *Config) {
		cfg.Thresholds = th
	}
}

// WithParser sets the species-label parser.
func WithParser(p species.Parser) Option {
	return func(cfg *Config) {
		if p != nil {
			cfg.Parser = p
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
