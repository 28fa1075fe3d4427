package similarity

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-raspir/internal/rounding"
)

// Reporting precision of each statistic.
const (
	RDecimals        = 4
	PDecimals        = 10
	StdErrDecimals   = 5
	DistanceDecimals = 1
)

// Errors returned by [Compare].
var (
	ErrLengthMismatch     = errors.New("similarity: profiles differ in length")
	ErrTooFewBins         = errors.New("similarity: need at least 3 bins")
	ErrDegenerateSpectrum = errors.New("similarity: profile magnitude sum is not positive")
	ErrConstantProfile    = errors.New("similarity: profile has zero variance")
)

// Score holds the similarity statistics of two profiles.
type Score struct {
	R        float64
	P        float64
	StdErr   float64
	Distance float64

	// Slope and Intercept of real = Intercept + Slope*reference, unrounded.
	Slope     float64
	Intercept float64
	Bins      int
}

// Compare computes the similarity statistics of real against reference.
//
// Statistics are only computed when both profiles have a positive sum and a
// non-zero variance.
func Compare(reference, real []float64) (Score, error) {
	n := len(reference)
	if n != len(real) {
		return Score{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, n, len(real))
	}

	if n < 3 {
		return Score{}, fmt.Errorf("%w: got %d", ErrTooFewBins, n)
	}

	if floats.Sum(reference) <= 0 || floats.Sum(real) <= 0 {
		return Score{}, ErrDegenerateSpectrum
	}

	if stat.Variance(reference, nil) == 0 || stat.Variance(real, nil) == 0 {
		return Score{}, ErrConstantProfile
	}

	r := clamp(stat.Correlation(reference, real, nil), -1, 1)
	intercept, slope := stat.LinearRegression(reference, real, nil, false)

	d, err := stats.EuclideanDistance(reference, real)
	if err != nil {
		return Score{}, fmt.Errorf("similarity: %w", err)
	}

	return Score{
		R:         rounding.HalfEven(r, RDecimals),
		P:         rounding.HalfEven(PValue(r, n), PDecimals),
		StdErr:    rounding.HalfEven(SlopeStdErr(reference, real, r), StdErrDecimals),
		Distance:  rounding.HalfEven(d, DistanceDecimals),
		Slope:     slope,
		Intercept: intercept,
		Bins:      n,
	}, nil
}

// PValue returns the two-sided p-value of a Pearson correlation r over n
// samples.
func PValue(r float64, n int) float64 {
	df := float64(n - 2)
	if df <= 0 || math.IsNaN(r) {
		return math.NaN()
	}

	ar := math.Abs(r)
	if ar >= 1 {
		return 0
	}

	t := ar * math.Sqrt(df/((1-ar)*(1+ar)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}

	return math.Min(1, 2*dist.Survival(t))
}

// SlopeStdErr returns the standard error of the least-squares slope of y on
// x, given their correlation r:
//
//	se = sqrt((1 - r^2) * var(y) / var(x) / (n - 2))
func SlopeStdErr(x, y []float64, r float64) float64 {
	df := float64(len(x) - 2)
	if df <= 0 {
		return math.NaN()
	}

	vx := stat.Variance(x, nil)
	if vx == 0 {
		return math.NaN()
	}

	vy := stat.Variance(y, nil)
	resid := math.Max(0, 1-r*r)

	return math.Sqrt(resid * vy / vx / df)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
