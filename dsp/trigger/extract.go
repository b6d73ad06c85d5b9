package trigger

import (
	"github.com/opticalab/flowsim/dsp/channel"
)

// Segments holds the concatenated per-window slices of one channel.
// Values, Times and SegmentIDs are parallel; grouping by segment id
// reconstructs the individual events.
type Segments struct {
	Times      []float64
	Values     []float64
	SegmentIDs []int
}

// Extract slices every registered channel (and the shared time axis) by
// the given windows. Segment ids are dense integers assigned in window
// order and shared across channels. A window reaching past a channel's
// own length contributes only the samples that exist.
func Extract(store *channel.Store, windows []Window) (map[string]Segments, error) {
	times, err := store.TimeAxis()
	if err != nil {
		return nil, err
	}

	out := make(map[string]Segments, len(store.Names()))
	for _, name := range store.Names() {
		ch, err := store.Get(name)
		if err != nil {
			return nil, err
		}

		values := ch.Samples()
		var seg Segments
		for id, w := range windows {
			for i := w.Start; i <= w.End; i++ {
				if i >= len(values) || i >= len(times) {
					break
				}
				seg.Values = append(seg.Values, values[i])
				seg.Times = append(seg.Times, times[i])
				seg.SegmentIDs = append(seg.SegmentIDs, id)
			}
		}
		out[name] = seg
	}

	return out, nil
}

// Result is one completed trigger run: the accepted windows and the
// extracted segments of every channel.
type Result struct {
	Windows  []Window
	segments map[string]Segments
}

// Run scans the named trigger channel with the detector and extracts
// segments from all channels of the store.
func Run(store *channel.Store, triggerChannel string, d Detector) (*Result, error) {
	ch, err := store.Get(triggerChannel)
	if err != nil {
		return nil, err
	}

	windows, err := d.Detect(ch.Samples())
	if err != nil {
		return nil, err
	}

	segments, err := Extract(store, windows)
	if err != nil {
		return nil, err
	}

	return &Result{Windows: windows, segments: segments}, nil
}

// Signals returns the concatenated segment values of a channel.
func (r *Result) Signals(name string) ([]float64, error) {
	seg, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return seg.Values, nil
}

// Times returns the concatenated segment time stamps of a channel.
func (r *Result) Times(name string) ([]float64, error) {
	seg, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return seg.Times, nil
}

// SegmentIDs returns the per-sample segment ids of a channel.
func (r *Result) SegmentIDs(name string) ([]int, error) {
	seg, err := r.get(name)
	if err != nil {
		return nil, err
	}
	return seg.SegmentIDs, nil
}

func (r *Result) get(name string) (Segments, error) {
	seg, ok := r.segments[name]
	if !ok {
		return Segments{}, channel.ErrUnknownChannel
	}
	return seg, nil
}
