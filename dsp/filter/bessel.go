package filter

import (
	"fmt"
	"math/cmplx"
)

// besselMagnitude evaluates the normalized Bessel transfer magnitude at
// s = j*(f/fc) for the supported orders.
func besselMagnitude(ratio float64, order int) float64 {
	s := complex(0, ratio)

	var h complex128
	switch order {
	case 1:
		h = 1 / (s + 1)
	case 2:
		h = 3 / (s*s + 3*s + 3)
	case 3:
		h = 15 / (s*s*s + 6*s*s + 15*s + 15)
	case 4:
		h = 105 / (s*s*s*s + 10*s*s*s + 45*s*s + 105*s + 105)
	}
	return cmplx.Abs(h)
}

// BesselLowPass applies a Bessel magnitude mask in place, built from the
// normalized Bessel polynomials for orders 1 through 4.
func BesselLowPass(signal []float64, sampleRate, cutoff float64, order int, gain float64) error {
	if err := validate(signal, sampleRate, cutoff); err != nil {
		return err
	}
	if order < 1 || order > 4 {
		return fmt.Errorf("%w: bessel order must be 1-4: %d", ErrUnsupportedOrder, order)
	}

	applyMask(signal, sampleRate, gain, func(f float64) float64 {
		return besselMagnitude(f/cutoff, order)
	})
	return nil
}
