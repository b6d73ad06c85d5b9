package trigger

// FixedWindow emits a constant-size window around every rising edge.
// Windows that would be truncated at either signal boundary are rejected
// entirely rather than clamped.
type FixedWindow struct {
	Threshold float64
	Config
}

// Detect returns the accepted windows in scan order.
func (d FixedWindow) Detect(signal []float64) ([]Window, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if err := d.Config.validate(); err != nil {
		return nil, err
	}

	n := len(signal)

	var edges []int
	for i := 1; i < n; i++ {
		if risingEdge(signal, i, d.Threshold) {
			edges = append(edges, i-1)
		}
	}

	var windows []Window
	lastEnd := -1
	for _, idx := range edges {
		start := idx - d.PreBuffer - 1
		end := idx + d.PostBuffer
		if start < 0 || end >= n {
			continue
		}
		if start > lastEnd {
			windows = append(windows, Window{Start: start, End: end})
			lastEnd = end
		}
		if d.full(len(windows)) {
			break
		}
	}

	return windows, nil
}
