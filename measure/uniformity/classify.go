package uniformity

import (
	"math"

	"github.com/cwbudde/algo-raspir/internal/rounding"
)

// Distribution is the classification label of an organism.
type Distribution string

// Classification labels.
const (
	Uniform    Distribution = "uniform"
	Nonuniform Distribution = "nonuniform"
)

// EuclideanDecimals is the reporting precision of [EuclideanScore].
const EuclideanDecimals = 3

// Thresholds are the decision limits of the classifier.
type Thresholds struct {
	Alpha        float64 // p must be below
	MinR         float64 // r must be above
	MaxStdErr    float64 // slope standard error must be below
	MaxEuclidean float64 // Euclidean score must be below
}

// DefaultThresholds returns alpha 0.05, r > 0.5, se < 0.01, score < 0.6.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Alpha:        0.05,
		MinR:         0.5,
		MaxStdErr:    0.01,
		MaxEuclidean: 0.6,
	}
}

// EuclideanScore maps a profile distance d to round(1000/d, 3). Larger
// scores mean more similar profiles. d == 0 yields +Inf.
func EuclideanScore(d float64) float64 {
	if d == 0 {
		return math.Inf(1)
	}
	return rounding.HalfEven((1/d)*1000, EuclideanDecimals)
}

// Classify labels an organism uniform when all four conditions hold. NaN in
// any statistic classifies nonuniform.
func (th Thresholds) Classify(r, p, stdErr, euclidean float64) Distribution {
	if p < th.Alpha && r > th.MinR && stdErr < th.MaxStdErr && euclidean < th.MaxEuclidean {
		return Uniform
	}
	return Nonuniform
}

// Record is one row of the classification table.
//
// Slope, Intercept, Bins and ReadCount are not part of the classification;
// they are carried for the detailed table formats.
type Record struct {
	Organism     string
	Species      string
	R            float64
	P            float64
	StdErr       float64
	Euclidean    float64
	Distribution Distribution

	Slope     float64
	Intercept float64
	Bins      int
	ReadCount int
}

// IsUniform reports whether the record is labeled uniform.
func (r Record) IsUniform() bool { return r.Distribution == Uniform }

// UniformRecords returns the records labeled uniform, in input order.
func UniformRecords(records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.IsUniform() {
			out = append(out, r)
		}
	}
	return out
}
