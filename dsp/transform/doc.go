// Package transform computes discrete Fourier transforms of arbitrary length.
//
// Power-of-two sizes, and any other size the algo-fft planner accepts, are
// transformed by a single FFT plan. Sizes the planner rejects are computed
// with Bluestein's chirp-z algorithm, which expresses the DFT as a circular
// convolution of power-of-two length:
//
//	X[k] = w[k] * sum_n (x[n] w[n]) conj(w[k-n]),  w[k] = exp(-i*pi*k^2/N)
//
// All transforms are unnormalized in the forward direction.
package transform
