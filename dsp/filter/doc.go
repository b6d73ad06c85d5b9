// Package filter applies low-pass magnitude masks to detector signals in
// the frequency domain.
//
// Each call computes a forward real FFT, scales every bin by a real-valued
// transfer magnitude H(f), inverts the transform and normalizes. Because
// H(f) is real and applied identically to both parts of each bin, the
// result is a zero-phase, non-causal magnitude mask. It intentionally does
// not reproduce the phase response of an analog Butterworth or Bessel
// filter; the simulated electronics are modeled by attenuation only.
package filter
