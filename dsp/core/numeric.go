package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampIndex limits an index to the inclusive range [0, n-1].
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}

	if i >= n {
		return n - 1
	}

	return i
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NextPow2 returns the smallest power of two >= n. Returns 1 for n <= 1.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

// Nyquist returns half the sampling rate, the upper validity bound for
// frequency-domain masks.
func Nyquist(sampleRate float64) float64 {
	return sampleRate / 2
}
