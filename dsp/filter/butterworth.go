package filter

import (
	"fmt"
	"math"
)

// ButterworthLowPass applies an order-n Butterworth magnitude mask in
// place: H(f) = (1/sqrt(1+(f/fc)^2))^order. Any order >= 1 is valid.
func ButterworthLowPass(signal []float64, sampleRate, cutoff float64, order int, gain float64) error {
	if err := validate(signal, sampleRate, cutoff); err != nil {
		return err
	}
	if order < 1 {
		return fmt.Errorf("%w: butterworth order must be >= 1: %d", ErrUnsupportedOrder, order)
	}

	applyMask(signal, sampleRate, gain, func(f float64) float64 {
		single := 1 / math.Sqrt(1+(f/cutoff)*(f/cutoff))
		return math.Pow(single, float64(order))
	})
	return nil
}
