package transform

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrEmptySignal is returned for zero-length input.
var ErrEmptySignal = errors.New("transform: signal is empty")

// Forward returns the DFT of a real-valued signal of any length.
func Forward(signal []float64) ([]complex128, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}

	in := make([]complex128, len(signal))
	for i, v := range signal {
		in[i] = complex(v, 0)
	}

	return ForwardComplex(in)
}

// ForwardComplex returns the DFT of a complex signal of any length. The
// input is not modified.
func ForwardComplex(in []complex128) ([]complex128, error) {
	n := len(in)
	switch {
	case n == 0:
		return nil, ErrEmptySignal
	case n == 1:
		return []complex128{in[0]}, nil
	case isPowerOf2(n):
		return direct(in)
	}

	if out, err := direct(in); err == nil {
		return out, nil
	}

	return bluestein(in)
}

func direct(in []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(in))
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, len(in))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}

	return out, nil
}

func bluestein(in []complex128) ([]complex128, error) {
	n := len(in)
	m := nextPowerOf2(2*n - 1)

	plan, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	w := chirp(n)

	a := make([]complex128, m)
	for i, x := range in {
		a[i] = x * w[i]
	}

	b := make([]complex128, m)
	b[0] = cmplx.Conj(w[0])
	for k := 1; k < n; k++ {
		c := cmplx.Conj(w[k])
		b[k] = c
		b[m-k] = c
	}

	fa := make([]complex128, m)
	if err := plan.Forward(fa, a); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}

	fb := make([]complex128, m)
	if err := plan.Forward(fb, b); err != nil {
		return nil, fmt.Errorf("transform: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("transform: inverse FFT failed: %w", err)
	}

	out := make([]complex128, n)
	for k := range out {
		out[k] = fa[k] * w[k]
	}

	return out, nil
}

// chirp returns w[k] = exp(-i*pi*k^2/n). k^2 is reduced modulo 2n before
// the angle is formed so large k keep full phase precision.
func chirp(n int) []complex128 {
	w := make([]complex128, n)
	period := int64(2 * n)

	for k := range w {
		kk := int64(k) * int64(k) % period
		phi := -math.Pi * float64(kk) / float64(n)
		w[k] = complex(math.Cos(phi), math.Sin(phi))
	}

	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}
