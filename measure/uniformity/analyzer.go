package uniformity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-raspir/coverage/distance"
	"github.com/cwbudde/algo-raspir/coverage/position"
	"github.com/cwbudde/algo-raspir/coverage/reads"
	"github.com/cwbudde/algo-raspir/coverage/species"
	"github.com/cwbudde/algo-raspir/dsp/spectrum"
	"github.com/cwbudde/algo-raspir/stats/similarity"
)

// Skip reasons, re-exported so callers need only this package.
var (
	ErrTooFewReads         = reads.ErrTooFewReads
	ErrInvalidGenomeLength = reads.ErrInvalidGenomeLength
	ErrDegenerateSpectrum  = similarity.ErrDegenerateSpectrum
	ErrConstantProfile     = similarity.ErrConstantProfile
	ErrMalformedName       = species.ErrMalformedName
)

// IsSkip reports whether err is a filtering outcome: the organism is
// dropped and the rest of the dataset is processed as usual.
func IsSkip(err error) bool {
	return errors.Is(err, ErrTooFewReads) ||
		errors.Is(err, ErrInvalidGenomeLength) ||
		errors.Is(err, ErrDegenerateSpectrum) ||
		errors.Is(err, ErrConstantProfile) ||
		errors.Is(err, ErrMalformedName)
}

// Spectra holds the two magnitude profiles of an organism and the frequency
// coordinate of each bin.
type Spectra struct {
	Label       string
	Real        []float64
	Reference   []float64
	Frequencies []float64
}

// Result is the outcome of analyzing one organism.
type Result struct {
	Record    Record
	Score     similarity.Score
	ReadCount int
	Spectra   Spectra
}

// Analyzer runs the per-organism pipeline. It holds no mutable state and is
// safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer from the default config and opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	return NewAnalyzerFromConfig(ApplyOptions(opts...))
}

// NewAnalyzerFromConfig creates an analyzer from a complete config. A nil
// parser selects the default field parser. The config is checked by
// [Analyzer.Analyze]; call [Config.Validate] to reject it up front.
func NewAnalyzerFromConfig(cfg Config) *Analyzer {
	if cfg.Parser == nil {
		cfg.Parser = species.DefaultFieldParser()
	}
	return &Analyzer{cfg: cfg}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze is a one-shot analysis of a single organism.
func Analyze(org reads.Organism, opts ...Option) (Result, error) {
	return NewAnalyzer(opts...).Analyze(org)
}

// Analyze classifies one organism.
//
// The returned error wraps one of the skip reasons (see [IsSkip]) when the
// organism is filtered out, or describes an invalid configuration. An
// organism skipped for a degenerate or constant profile still carries its
// Spectra and ReadCount.
func (a *Analyzer) Analyze(org reads.Organism) (Result, error) {
	if err := a.cfg.Validate(); err != nil {
		return Result{}, err
	}

	rs, err := reads.Aggregate(org, a.cfg.MinReads)
	if err != nil {
		return Result{}, err
	}

	label, err := a.cfg.Parser.Parse(org.Name)
	if err != nil {
		return Result{}, err
	}

	set, err := position.Normalize(rs)
	if err != nil {
		return Result{}, err
	}

	dists, err := distance.Build(label, set, a.cfg.Subsample)
	if err != nil {
		return Result{}, fmt.Errorf("uniformity: %s: %w", org.Name, err)
	}

	refProfile, err := spectrum.Profile(dists.Reference, a.cfg.Spectrum)
	if err != nil {
		return Result{}, fmt.Errorf("uniformity: %s reference: %w", org.Name, err)
	}

	realProfile, err := spectrum.Profile(dists.Real, a.cfg.Spectrum)
	if err != nil {
		return Result{}, fmt.Errorf("uniformity: %s real: %w", org.Name, err)
	}

	spectra := Spectra{
		Label:       label,
		Real:        realProfile,
		Reference:   refProfile,
		Frequencies: spectrum.FrequencyIndex(len(refProfile)),
	}

	score, err := similarity.Compare(refProfile, realProfile)
	if err != nil {
		// Degenerate profiles are still returned for plotting.
		return Result{ReadCount: rs.ReadCount, Spectra: spectra}, fmt.Errorf("uniformity: %s: %w", org.Name, err)
	}

	euclidean := EuclideanScore(score.Distance)

	return Result{
		Record: Record{
			Organism:     org.Name,
			Species:      label,
			R:            score.R,
			P:            score.P,
			StdErr:       score.StdErr,
			Euclidean:    euclidean,
			Distribution: a.cfg.Thresholds.Classify(score.R, score.P, score.StdErr, euclidean),
			Slope:        score.Slope,
			Intercept:    score.Intercept,
			Bins:         score.Bins,
			ReadCount:    rs.ReadCount,
		},
		Score:     score,
		ReadCount: rs.ReadCount,
		Spectra:   spectra,
	}, nil
}
