package trigger

import (
	"math"

	"github.com/opticalab/flowsim/dsp/core"
)

// DoubleThreshold extends DynamicWindow with debounce rejection of short
// spikes and a lower re-arm threshold. After the signal leaves the upper
// threshold the window keeps extending while it stays above
// LowerThreshold, so chatter around the trigger level does not split an
// event (hysteresis).
type DoubleThreshold struct {
	Threshold float64

	// LowerThreshold re-arms the trigger. Both 0 and NaN mean "same as
	// Threshold", so a zero-value literal behaves like NewDoubleThreshold.
	LowerThreshold float64

	// Debounce, together with MinWindowDuration != -1, rejects crossings
	// whose above-threshold run is shorter than MinWindowDuration samples.
	Debounce          bool
	MinWindowDuration int

	Config
}

// NewDoubleThreshold returns a detector with the lower threshold unset
// (equal to threshold) and debounce disabled.
func NewDoubleThreshold(threshold float64, cfg Config) DoubleThreshold {
	return DoubleThreshold{
		Threshold:         threshold,
		LowerThreshold:    math.NaN(),
		MinWindowDuration: -1,
		Config:            cfg,
	}
}

// Detect returns the accepted windows in scan order.
func (d DoubleThreshold) Detect(signal []float64) ([]Window, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if err := d.Config.validate(); err != nil {
		return nil, err
	}

	lower := d.LowerThreshold
	if lower == 0 || math.IsNaN(lower) {
		lower = d.Threshold
	}

	n := len(signal)
	debounce := d.Debounce && d.MinWindowDuration != -1

	var windows []Window
	lastEnd := -1
	for i := 1; i < n; i++ {
		if !risingEdge(signal, i, d.Threshold) {
			continue
		}

		j := i
		if debounce {
			count := 0
			for j < n && signal[j] > d.Threshold {
				count++
				j++
				if count >= d.MinWindowDuration {
					break
				}
			}
			if count < d.MinWindowDuration {
				// Too short: reject as noise, resume after the run.
				i = j
				continue
			}
		} else {
			for j < n && signal[j] > d.Threshold {
				j++
			}
		}

		start := core.ClampIndex(i-d.PreBuffer, n)

		// Hysteresis: extend while the signal stays above the re-arm level.
		k := j
		for k < n && signal[k] > lower {
			k++
		}
		end := core.ClampIndex(k-1+d.PostBuffer, n)

		if start > lastEnd {
			windows = append(windows, Window{Start: start, End: end})
			lastEnd = end
		}
		if d.full(len(windows)) {
			break
		}

		i = k
	}

	return windows, nil
}
