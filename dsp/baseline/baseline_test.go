package baseline

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/opticalab/flowsim/internal/testutil"
)

func TestRestoreRollingKnownVector(t *testing.T) {
	signal := []float64{3, 5, 2, 4, 1, 6}
	if err := Restore(signal, 2); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// Window over [max(0, i-2), i] of the original samples:
	// i=1: min(3,5)=3 -> 2; i=2: min(3,5,2)=2 -> 0; i=3: min(5,2,4)=2 -> 2;
	// i=4: min(2,4,1)=1 -> 0; i=5: min(4,1,6)=1 -> 5.
	want := []float64{0, 2, 0, 2, 0, 5}
	testutil.RequireSliceEqual(t, signal, want)
}

func TestRestoreExpandingKnownVector(t *testing.T) {
	signal := []float64{3, 5, 2, 4, 1, 6}
	if err := Restore(signal, ExpandingWindow); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// Running minimum including the current sample: 3,3,2,2,1,1.
	want := []float64{0, 2, 0, 2, 0, 5}
	testutil.RequireSliceEqual(t, signal, want)
}

func TestRestoreFirstSampleAlwaysZero(t *testing.T) {
	for _, ws := range []int{1, 3, ExpandingWindow} {
		signal := []float64{-7, 1, 2}
		if err := Restore(signal, ws); err != nil {
			t.Fatalf("Restore(ws=%d): %v", ws, err)
		}
		if signal[0] != 0 {
			t.Fatalf("ws=%d: first sample = %v, want 0", ws, signal[0])
		}
	}
}

func TestRestoreNonNegativeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, ws := range []int{1, 5, 50, ExpandingWindow} {
		signal := make([]float64, 500)
		for i := range signal {
			signal[i] = rng.NormFloat64() * 10
		}
		if err := Restore(signal, ws); err != nil {
			t.Fatalf("Restore(ws=%d): %v", ws, err)
		}
		for i, v := range signal {
			if v < 0 {
				t.Fatalf("ws=%d: sample %d = %v, want >= 0", ws, i, v)
			}
		}
	}
}

func TestRestoreWindowIncludesCurrentSample(t *testing.T) {
	// With the current sample inside the window, a new global minimum
	// restores to exactly 0 rather than going negative.
	signal := []float64{5, 4, -3}
	if err := Restore(signal, 1); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if signal[2] != 0 {
		t.Fatalf("sample 2 = %v, want 0 (window must include current sample)", signal[2])
	}
}

func TestRestoreSingleSample(t *testing.T) {
	signal := []float64{math.Pi}
	if err := Restore(signal, 10); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if signal[0] != 0 {
		t.Fatalf("single sample = %v, want 0", signal[0])
	}
}

func TestRestoreErrors(t *testing.T) {
	if err := Restore(nil, 3); !errors.Is(err, ErrEmptySignal) {
		t.Fatalf("expected ErrEmptySignal, got %v", err)
	}
	for _, ws := range []int{0, -2} {
		if err := Restore([]float64{1, 2}, ws); err == nil {
			t.Fatalf("expected error for window size %d", ws)
		}
	}
}
