package testutil

import (
	"math"
	"testing"
)

func TestTimeAxis(t *testing.T) {
	axis := TimeAxis(4, 0.5)
	want := []float64{0, 0.5, 1, 1.5}
	RequireSliceEqual(t, axis, want)
}

func TestDC(t *testing.T) {
	for _, v := range DC(3.5, 8) {
		if v != 3.5 {
			t.Fatalf("DC sample = %v, want 3.5", v)
		}
	}
}

func TestGaussianPulsePeak(t *testing.T) {
	times := TimeAxis(11, 1)
	p := GaussianPulse(times, 2, 5, 7)
	if p[5] != 7 {
		t.Fatalf("peak = %v, want 7", p[5])
	}
	want := 7 * math.Exp(-0.5)
	if !NearlyEqual(p[7], want, 1e-12) {
		t.Fatalf("one width from center = %v, want %v", p[7], want)
	}
}

func TestSinePeriodicity(t *testing.T) {
	s := Sine(1, 8, 1, 9)
	if !NearlyEqual(s[0], s[8], 1e-12) {
		t.Fatalf("sine not periodic: %v vs %v", s[0], s[8])
	}
}
