package filter

import (
	"errors"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/opticalab/flowsim/dsp/buffer"
	"github.com/opticalab/flowsim/dsp/core"
)

// Errors returned by filter application.
var (
	ErrEmptySignal      = errors.New("filter: empty signal")
	ErrInvalidCutoff    = errors.New("filter: cutoff must be positive and below the Nyquist frequency")
	ErrUnsupportedOrder = errors.New("filter: unsupported filter order")
)

// scratch pools: one for the time-domain output, one for complex bins.
// Both are released on every exit path of a filter call.
var (
	timePool = buffer.NewPool()
	binPool  = sync.Pool{
		New: func() any { return new(binBuf) },
	}
)

type binBuf struct {
	bins []complex128
}

func getBins(n int) *binBuf {
	b := binPool.Get().(*binBuf)
	if cap(b.bins) < n {
		b.bins = make([]complex128, n)
	} else {
		b.bins = b.bins[:n]
	}
	return b
}

func putBins(b *binBuf) {
	binPool.Put(b)
}

// validate checks the shared preconditions of both filter families.
func validate(signal []float64, sampleRate, cutoff float64) error {
	if len(signal) == 0 {
		return ErrEmptySignal
	}
	if sampleRate <= 0 {
		return fmt.Errorf("filter: sample rate must be > 0: %f", sampleRate)
	}
	if cutoff <= 0 || cutoff >= core.Nyquist(sampleRate) {
		return fmt.Errorf("%w: cutoff %f Hz, Nyquist %f Hz",
			ErrInvalidCutoff, cutoff, core.Nyquist(sampleRate))
	}
	return nil
}

// applyMask filters the signal in place: forward real FFT, multiply bin k
// (frequency k*sampleRate/n) by mask(f), inverse FFT, divide by n, scale
// by gain.
func applyMask(signal []float64, sampleRate, gain float64, mask func(f float64) float64) {
	n := len(signal)
	fft := fourier.NewFFT(n)

	bins := getBins(n/2 + 1)
	defer putBins(bins)

	fft.Coefficients(bins.bins, signal)

	df := sampleRate / float64(n)
	for k := range bins.bins {
		h := mask(float64(k) * df)
		bins.bins[k] *= complex(h, 0)
	}

	out := timePool.Get(n)
	defer timePool.Put(out)

	// The inverse transform is unnormalized; the round trip scales by n.
	fft.Sequence(out.Samples(), bins.bins)

	scale := gain / float64(n)
	for i, v := range out.Samples() {
		signal[i] = v * scale
	}
}
