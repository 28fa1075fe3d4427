package transform

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-raspir/internal/testutil"
)

// naiveDFT is the O(n^2) reference transform.
func naiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			phi := -2 * math.Pi * float64(k*j%n) / float64(n)
			sum += v * complex(math.Cos(phi), math.Sin(phi))
		}
		out[k] = sum
	}
	return out
}

func realSignal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64((i*37)%11) + 0.25*float64(i)
	}
	return out
}

func requireComplexNear(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := cmplx.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("bin %d: got %v, want %v (diff %g)", i, got[i], want[i], d)
		}
	}
}

func TestForwardMatchesNaive(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 6, 7, 8, 15, 28, 64, 100, 231} {
		sig := realSignal(n)
		in := make([]complex128, n)
		for i, v := range sig {
			in[i] = complex(v, 0)
		}

		got, err := Forward(sig)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		requireComplexNear(t, got, naiveDFT(in), 1e-8*float64(n))
	}
}

func TestBluesteinMatchesNaive(t *testing.T) {
	for _, n := range []int{2, 3, 6, 10, 45, 79, 190} {
		in := make([]complex128, n)
		for i := range in {
			in[i] = complex(float64(i%7), float64(i%3)-1)
		}

		got, err := bluestein(in)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		requireComplexNear(t, got, naiveDFT(in), 1e-8*float64(n))
	}
}

func TestForwardDC(t *testing.T) {
	sig := testutil.Constant(3, 21)

	got, err := Forward(sig)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(real(got[0])-63) > 1e-9 || math.Abs(imag(got[0])) > 1e-9 {
		t.Fatalf("DC bin = %v, want 63", got[0])
	}

	for k := 1; k < len(got); k++ {
		if cmplx.Abs(got[k]) > 1e-9 {
			t.Fatalf("bin %d = %v, want 0", k, got[k])
		}
	}
}

func TestForwardDoesNotModifyInput(t *testing.T) {
	in := []complex128{1, 2i, 3, 4i, 5}
	orig := append([]complex128(nil), in...)

	if _, err := ForwardComplex(in); err != nil {
		t.Fatal(err)
	}

	requireComplexNear(t, in, orig, 0)
}

func TestForwardEmpty(t *testing.T) {
	if _, err := Forward(nil); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
}
