// Package testutil provides deterministic fixtures and tolerance helpers
// shared by the simulation's package tests.
package testutil

import "math"

// TimeAxis returns n uniformly spaced time stamps starting at 0 with
// spacing dt.
func TimeAxis(n int, dt float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// DC returns a constant-valued signal.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Sine returns a sine wave sampled at sampleRate.
func Sine(freqHz, sampleRate, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// GaussianPulse evaluates a single Gaussian pulse over the given time
// stamps.
func GaussianPulse(times []float64, width, center, amplitude float64) []float64 {
	out := make([]float64, len(times))
	invDenom := 1 / (2 * width * width)
	for i, t := range times {
		d := t - center
		out[i] = amplitude * math.Exp(-d*d*invDenom)
	}
	return out
}
