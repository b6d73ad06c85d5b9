package trigger

import "github.com/opticalab/flowsim/dsp/core"

// DynamicWindow sizes each window by following the signal from the rising
// edge until it falls back to the threshold. Boundary windows are clamped,
// never rejected.
type DynamicWindow struct {
	Threshold float64
	Config
}

// Detect returns the accepted windows in scan order.
func (d DynamicWindow) Detect(signal []float64) ([]Window, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if err := d.Config.validate(); err != nil {
		return nil, err
	}

	n := len(signal)

	var windows []Window
	lastEnd := -1
	for i := 1; i < n; i++ {
		if !risingEdge(signal, i, d.Threshold) {
			continue
		}

		start := core.ClampIndex(i-d.PreBuffer, n)

		j := i
		for j < n && signal[j] > d.Threshold {
			j++
		}
		end := core.ClampIndex(j-1+d.PostBuffer, n)

		if start > lastEnd {
			windows = append(windows, Window{Start: start, End: end})
			lastEnd = end
		}
		if d.full(len(windows)) {
			break
		}

		// Skip the consumed region; scanning resumes after the falling edge.
		i = j
	}

	return windows, nil
}
