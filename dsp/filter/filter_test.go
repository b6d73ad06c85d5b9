package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/opticalab/flowsim/internal/testutil"
)

func TestButterworthDCGain(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 6, 8} {
		signal := testutil.DC(3.5, 128)
		if err := ButterworthLowPass(signal, 1, 0.1, order, 1); err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		testutil.RequireSliceNearlyEqual(t, signal, testutil.DC(3.5, 128), 1e-9)
	}
}

func TestBesselDCGain(t *testing.T) {
	for order := 1; order <= 4; order++ {
		signal := testutil.DC(2.0, 128)
		if err := BesselLowPass(signal, 1, 0.1, order, 1); err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		testutil.RequireSliceNearlyEqual(t, signal, testutil.DC(2.0, 128), 1e-9)
	}
}

func TestButterworthConstantOnes(t *testing.T) {
	// Order 2, cutoff 0.1, rate 1, gain 1 on 64 ones reproduces the ones.
	signal := testutil.DC(1, 64)
	if err := ButterworthLowPass(signal, 1, 0.1, 2, 1); err != nil {
		t.Fatalf("ButterworthLowPass: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, signal, testutil.DC(1, 64), 1e-9)
}

func TestButterworthGainScalesOutput(t *testing.T) {
	signal := testutil.DC(1, 64)
	if err := ButterworthLowPass(signal, 1, 0.1, 2, 2.5); err != nil {
		t.Fatalf("ButterworthLowPass: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, signal, testutil.DC(2.5, 64), 1e-9)
}

func TestButterworthAttenuatesStopband(t *testing.T) {
	// A sine exactly on bin 64 of 256 samples (f = 0.25) against a cutoff
	// of 0.05: f/fc = 5, so order 2 leaves |H| = 1/26 ~ 0.038.
	signal := testutil.Sine(0.25, 1, 1, 256)
	if err := ButterworthLowPass(signal, 1, 0.05, 2, 1); err != nil {
		t.Fatalf("ButterworthLowPass: %v", err)
	}

	maxAbs := 0.0
	for _, v := range signal {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}
	if maxAbs > 0.05 {
		t.Fatalf("stopband peak = %v, want < 0.05", maxAbs)
	}
	if maxAbs < 0.02 {
		t.Fatalf("stopband peak = %v, want ~0.038 (mask, not erasure)", maxAbs)
	}
}

func TestHigherOrderAttenuatesMore(t *testing.T) {
	peak := func(order int, apply func([]float64, float64, float64, int, float64) error) float64 {
		signal := testutil.Sine(0.25, 1, 1, 256)
		if err := apply(signal, 1, 0.05, order, 1); err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		maxAbs := 0.0
		for _, v := range signal {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		return maxAbs
	}

	prev := math.Inf(1)
	for _, order := range []int{1, 2, 3, 4} {
		p := peak(order, ButterworthLowPass)
		if p >= prev {
			t.Fatalf("butterworth order %d peak %v not below previous %v", order, p, prev)
		}
		prev = p
	}
}

func TestBesselStopbandMagnitudes(t *testing.T) {
	// |H(5j)| of the normalized Bessel polynomials. The delay-normalized
	// polynomials are not -3 dB aligned, so the values are not monotone
	// in order; they are pinned here to guard the transfer functions.
	want := map[int]float64{
		1: 0.19612,
		2: 0.11266,
		3: 0.10420,
		4: 0.12718,
	}
	for order := 1; order <= 4; order++ {
		signal := testutil.Sine(0.25, 1, 1, 256)
		if err := BesselLowPass(signal, 1, 0.05, order, 1); err != nil {
			t.Fatalf("order %d: %v", order, err)
		}
		maxAbs := 0.0
		for _, v := range signal {
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		if !testutil.NearlyEqual(maxAbs, want[order], 1e-3) {
			t.Fatalf("order %d: stopband peak = %v, want ~%v", order, maxAbs, want[order])
		}
	}
}

func TestZeroPhaseSymmetry(t *testing.T) {
	// A symmetric input stays symmetric: the mask shifts no phase.
	n := 128
	times := testutil.TimeAxis(n, 1)
	signal := testutil.GaussianPulse(times, 4, float64(n)/2, 1)
	if err := ButterworthLowPass(signal, 1, 0.1, 2, 1); err != nil {
		t.Fatalf("ButterworthLowPass: %v", err)
	}
	for i := 1; i < n/2; i++ {
		if !testutil.NearlyEqual(signal[n/2-i], signal[n/2+i], 1e-9) {
			t.Fatalf("asymmetry at offset %d: %v vs %v", i, signal[n/2-i], signal[n/2+i])
		}
	}
}

func TestBesselUnsupportedOrder(t *testing.T) {
	for _, order := range []int{0, -1, 5, 10} {
		signal := testutil.DC(1, 64)
		err := BesselLowPass(signal, 1, 0.1, order, 1)
		if !errors.Is(err, ErrUnsupportedOrder) {
			t.Fatalf("order %d: expected ErrUnsupportedOrder, got %v", order, err)
		}
	}
}

func TestButterworthInvalidOrder(t *testing.T) {
	signal := testutil.DC(1, 64)
	if err := ButterworthLowPass(signal, 1, 0.1, 0, 1); !errors.Is(err, ErrUnsupportedOrder) {
		t.Fatalf("expected ErrUnsupportedOrder, got %v", err)
	}
}

func TestInvalidCutoff(t *testing.T) {
	cases := []struct {
		rate, cutoff float64
	}{
		{1, 0.5},  // at Nyquist
		{1, 0.7},  // above Nyquist
		{1, 0},    // zero
		{1, -0.1}, // negative
	}
	for _, c := range cases {
		signal := testutil.DC(1, 64)
		if err := ButterworthLowPass(signal, c.rate, c.cutoff, 2, 1); !errors.Is(err, ErrInvalidCutoff) {
			t.Fatalf("rate %v cutoff %v: expected ErrInvalidCutoff, got %v", c.rate, c.cutoff, err)
		}
		signal = testutil.DC(1, 64)
		if err := BesselLowPass(signal, c.rate, c.cutoff, 2, 1); !errors.Is(err, ErrInvalidCutoff) {
			t.Fatalf("bessel rate %v cutoff %v: expected ErrInvalidCutoff, got %v", c.rate, c.cutoff, err)
		}
	}
}

func TestEmptySignal(t *testing.T) {
	if err := ButterworthLowPass(nil, 1, 0.1, 2, 1); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	if err := BesselLowPass(nil, 1, 0.1, 2, 1); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
}

func TestInvalidSampleRate(t *testing.T) {
	signal := testutil.DC(1, 64)
	if err := ButterworthLowPass(signal, 0, 0.1, 2, 1); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestOddLengthSignal(t *testing.T) {
	// Arbitrary (non power of two) lengths must round-trip exactly.
	signal := testutil.DC(4, 113)
	if err := ButterworthLowPass(signal, 1, 0.1, 2, 1); err != nil {
		t.Fatalf("ButterworthLowPass: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, signal, testutil.DC(4, 113), 1e-9)
}
