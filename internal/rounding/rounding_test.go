package rounding

import (
	"math"
	"testing"
)

func TestHalfEven(t *testing.T) {
	tests := []struct {
		x        float64
		decimals int
		want     float64
	}{
		{0.5, 0, 0},
		{1.5, 0, 2},
		{2.5, 0, 2},
		{-2.5, 0, -2},
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{1234.56, 1, 1234.6},
		{3.33333, 3, 3.333},
		{-0.000049, 4, -0},
	}

	for _, tc := range tests {
		if got := HalfEven(tc.x, tc.decimals); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("HalfEven(%v, %d) = %v, want %v", tc.x, tc.decimals, got, tc.want)
		}
	}
}

func TestHalfEvenNonFinite(t *testing.T) {
	if got := HalfEven(math.Inf(1), 3); !math.IsInf(got, 1) {
		t.Fatalf("HalfEven(+Inf) = %v", got)
	}
	if got := HalfEven(math.NaN(), 3); !math.IsNaN(got) {
		t.Fatalf("HalfEven(NaN) = %v", got)
	}
}

func TestSliceHalfEven(t *testing.T) {
	x := []float64{0.004, 0.25, 0.75, 1.999}
	SliceHalfEven(x, 1)

	want := []float64{0, 0.2, 0.8, 2}
	for i := range want {
		if math.Abs(x[i]-want[i]) > 1e-12 {
			t.Fatalf("x = %v, want %v", x, want)
		}
	}
}
