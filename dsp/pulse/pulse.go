// Package pulse synthesizes detector signals as a sum of Gaussian
// particle-crossing pulses over a shared background level.
package pulse

import (
	"errors"
	"fmt"
	"math"

	"github.com/opticalab/flowsim/dsp/channel"
)

// Errors returned by pulse synthesis.
var (
	ErrLengthMismatch  = errors.New("pulse: widths, centers and amplitudes must have equal length")
	ErrMissingTimeAxis = errors.New("pulse: time axis not set")
)

// Generate writes background plus one Gaussian per pulse into the named
// channel. Every pulse contributes to every sample; there is no distance
// cutoff, so the accumulation is O(pulses * samples).
//
// widths, centers and amplitudes must have equal length; the store's time
// axis must be set.
func Generate(store *channel.Store, name string, widths, centers, amplitudes []float64, background float64) error {
	if len(widths) != len(centers) || len(widths) != len(amplitudes) {
		return fmt.Errorf("%w: %d widths, %d centers, %d amplitudes",
			ErrLengthMismatch, len(widths), len(centers), len(amplitudes))
	}

	times, err := store.TimeAxis()
	if err != nil {
		return ErrMissingTimeAxis
	}

	ch, err := store.Get(name)
	if err != nil {
		return err
	}
	if ch.Len() != len(times) {
		return ErrMissingTimeAxis
	}

	ch.Fill(background)
	samples := ch.Samples()

	// Sequential over pulses, so that accumulation into each output sample
	// needs no coordination.
	for k := range widths {
		invDenom := 1 / (2 * widths[k] * widths[k])
		c := centers[k]
		a := amplitudes[k]
		for i, t := range times {
			d := t - c
			samples[i] += a * math.Exp(-d*d*invDenom)
		}
	}

	return nil
}
