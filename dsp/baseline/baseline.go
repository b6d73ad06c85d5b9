// Package baseline removes slow signal drift by subtracting a windowed
// minimum from each sample.
package baseline

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ExpandingWindow selects an expanding (from-start) minimum window.
const ExpandingWindow = -1

// ErrEmptySignal is returned for empty input.
var ErrEmptySignal = errors.New("baseline: empty signal")

// Restore subtracts a rolling-window minimum from the signal in place.
//
// The minimum at index i is taken over the original samples in
// [max(0, i-windowSize), i], inclusive of i itself, so every restored
// sample from index 1 on is >= 0. The first sample is always set to 0.
// windowSize must be >= 1, or ExpandingWindow for a from-start window.
func Restore(signal []float64, windowSize int) error {
	if len(signal) == 0 {
		return ErrEmptySignal
	}
	if windowSize < 1 && windowSize != ExpandingWindow {
		return fmt.Errorf("baseline: window size must be >= 1 or %d: %d", ExpandingWindow, windowSize)
	}

	// Work on a copy so already-restored values never feed the minimum.
	orig := make([]float64, len(signal))
	copy(orig, signal)

	signal[0] = 0

	if windowSize == ExpandingWindow {
		runningMin := orig[0]
		for i := 1; i < len(signal); i++ {
			if orig[i] < runningMin {
				runningMin = orig[i]
			}
			signal[i] = orig[i] - runningMin
		}
		return nil
	}

	for i := 1; i < len(signal); i++ {
		lo := i - windowSize
		if lo < 0 {
			lo = 0
		}
		signal[i] = orig[i] - floats.Min(orig[lo:i+1])
	}
	return nil
}
