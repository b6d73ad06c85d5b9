package trigger

import (
	"errors"
	"fmt"
)

// Unlimited disables the trigger-count cap.
const Unlimited = -1

// ErrEmptySignal is returned when a detector runs on an empty signal.
var ErrEmptySignal = errors.New("trigger: empty signal")

// Window is an inclusive index pair into the scanned signal.
type Window struct {
	Start, End int
}

// Config holds the window bookkeeping shared by all detectors.
type Config struct {
	// PreBuffer and PostBuffer extend each window before the crossing and
	// after the detector-specific end point.
	PreBuffer  int
	PostBuffer int

	// MaxTriggers caps the number of accepted windows per run.
	// Values <= 0 mean unlimited; the documented sentinel is Unlimited.
	MaxTriggers int
}

func (c Config) validate() error {
	if c.PreBuffer < 0 {
		return fmt.Errorf("trigger: pre buffer must be >= 0: %d", c.PreBuffer)
	}
	if c.PostBuffer < 0 {
		return fmt.Errorf("trigger: post buffer must be >= 0: %d", c.PostBuffer)
	}
	return nil
}

// full reports whether the accepted-window cap is reached.
func (c Config) full(accepted int) bool {
	return c.MaxTriggers > 0 && accepted >= c.MaxTriggers
}

// Detector finds event windows in one scan over a signal.
type Detector interface {
	Detect(signal []float64) ([]Window, error)
}

// risingEdge reports a crossing from at-or-below to above threshold
// between samples i-1 and i.
func risingEdge(signal []float64, i int, threshold float64) bool {
	return signal[i-1] <= threshold && signal[i] > threshold
}
