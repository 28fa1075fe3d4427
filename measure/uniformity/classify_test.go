package uniformity

import (
	"math"
	"testing"
)

func TestClassifyConjunction(t *testing.T) {
	th := DefaultThresholds()

	if got := th.Classify(0.9, 0.001, 0.001, 0.3); got != Uniform {
		t.Fatalf("baseline = %s, want uniform", got)
	}

	tests := []struct {
		name                string
		r, p, se, euclidean float64
	}{
		{"low r", 0.4, 0.001, 0.001, 0.3},
		{"r at limit", 0.5, 0.001, 0.001, 0.3},
		{"p at alpha", 0.9, 0.05, 0.001, 0.3},
		{"large se", 0.9, 0.001, 0.01, 0.3},
		{"large score", 0.9, 0.001, 0.001, 0.6},
		{"nan r", math.NaN(), 0.001, 0.001, 0.3},
		{"nan p", 0.9, math.NaN(), 0.001, 0.3},
		{"inf score", 0.9, 0.001, 0.001, math.Inf(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := th.Classify(tc.r, tc.p, tc.se, tc.euclidean); got != Nonuniform {
				t.Fatalf("got %s, want nonuniform", got)
			}
		})
	}
}

func TestEuclideanScore(t *testing.T) {
	tests := []struct {
		d, want float64
	}{
		{17.2, 58.14},
		{1000, 1},
		{3000, 0.333},
		{228742, 0.004},
	}

	for _, tc := range tests {
		if got := EuclideanScore(tc.d); got != tc.want {
			t.Errorf("EuclideanScore(%v) = %v, want %v", tc.d, got, tc.want)
		}
	}

	if got := EuclideanScore(0); !math.IsInf(got, 1) {
		t.Fatalf("EuclideanScore(0) = %v, want +Inf", got)
	}
}

func TestEuclideanScoreMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for d := 0.1; d < 1e6; d *= 1.7 {
		got := EuclideanScore(d)
		if got > prev {
			t.Fatalf("EuclideanScore(%v) = %v > previous %v", d, got, prev)
		}
		prev = got
	}
}

func TestUniformRecords(t *testing.T) {
	records := []Record{
		{Species: "a", Distribution: Uniform},
		{Species: "b", Distribution: Nonuniform},
		{Species: "c", Distribution: Uniform},
	}

	got := UniformRecords(records)
	if len(got) != 2 || got[0].Species != "a" || got[1].Species != "c" {
		t.Fatalf("UniformRecords = %+v", got)
	}

	if got := UniformRecords(nil); len(got) != 0 {
		t.Fatalf("UniformRecords(nil) = %+v", got)
	}
}
