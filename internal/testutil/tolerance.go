package testutil

import (
	"math"
	"testing"

	"github.com/opticalab/flowsim/dsp/core"
)

// NearlyEqual reports whether a and b agree within eps (absolute, or
// relative for large magnitudes).
func NearlyEqual(a, b, eps float64) bool {
	return core.NearlyEqual(a, b, eps)
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceEqual fails t if got and want differ anywhere.
func RequireSliceEqual(t *testing.T, got, want []float64) {
	t.Helper()
	RequireSliceNearlyEqual(t, got, want, 0)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
