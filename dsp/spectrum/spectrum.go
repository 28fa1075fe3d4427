package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-raspir/dsp/transform"
	"github.com/cwbudde/algo-raspir/internal/rounding"
)

// Profile defaults.
const (
	DefaultScale    = 1e-6
	DefaultDecimals = 2
)

// ErrEmptyProfile is returned when a profile is requested for an empty signal.
var ErrEmptyProfile = errors.New("spectrum: signal is empty")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// RoundedMagnitude returns |X[k]| after rounding the real and imaginary part
// of each bin to the nearest integer (ties to even).
//
// Uses the SIMD kernels of algo-vecmath when available. Scratch buffers are
// pooled, so in steady state this allocates only the output slice.
func RoundedMagnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = math.RoundToEven(real(c))
		im[i] = math.RoundToEven(imag(c))
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Config controls magnitude scaling of a profile.
type Config struct {
	Scale    float64
	Decimals int
}

// DefaultConfig scales magnitudes by 1e-6 and keeps two decimals.
func DefaultConfig() Config {
	return Config{Scale: DefaultScale, Decimals: DefaultDecimals}
}

// Profile computes the spectral profile of a time-domain signal: DFT,
// integer-rounded bins, magnitude, times cfg.Scale, rounded to cfg.Decimals.
func Profile(signal []float64, cfg Config) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyProfile
	}

	if cfg.Scale <= 0 || math.IsNaN(cfg.Scale) || math.IsInf(cfg.Scale, 0) {
		return nil, fmt.Errorf("spectrum: scale must be finite and > 0: %v", cfg.Scale)
	}

	bins, err := transform.Forward(signal)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	mag := RoundedMagnitude(bins)
	for i := range mag {
		mag[i] *= cfg.Scale
	}
	rounding.SliceHalfEven(mag, cfg.Decimals)

	return mag, nil
}

// FrequencyIndex returns the frequency of each of n DFT bins in cycles per
// sample:
//
//	[0, 1, ..., ceil(n/2)-1, -floor(n/2), ..., -1] / n
func FrequencyIndex(n int) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n)
	positive := (n-1)/2 + 1
	inv := 1 / float64(n)

	for i := range positive {
		out[i] = float64(i) * inv
	}
	for i := positive; i < n; i++ {
		out[i] = float64(i-n) * inv
	}

	return out
}
