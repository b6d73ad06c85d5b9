// Package spectrum computes magnitude spectra of detector channels.
// It is a diagnostic surface: filter roll-off checks and the demo
// command use it to inspect what the frequency-domain masks did.
package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/opticalab/flowsim/dsp/core"
)

// ErrEmptySignal is returned for empty input.
var ErrEmptySignal = errors.New("spectrum: empty signal")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Analysis holds a one-sided magnitude spectrum. Freqs and Magnitudes are
// parallel slices over bins 0..N/2 of the padded transform.
type Analysis struct {
	Freqs      []float64
	Magnitudes []float64
}

// Analyze returns the one-sided magnitude spectrum of signal. The input
// is zero-padded to the next power of two before the transform; bin k
// sits at k*sampleRate/N of the padded size N.
func Analyze(signal []float64, sampleRate float64) (Analysis, error) {
	if len(signal) == 0 {
		return Analysis{}, ErrEmptySignal
	}
	if sampleRate <= 0 {
		return Analysis{}, fmt.Errorf("spectrum: sample rate must be > 0: %f", sampleRate)
	}

	size := core.NextPow2(len(signal))
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Analysis{}, fmt.Errorf("spectrum: create fft plan: %w", err)
	}

	in := make([]complex128, size)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Analysis{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := size/2 + 1
	re, im, buf := getScratch(bins)
	for k := 0; k < bins; k++ {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mags := make([]float64, bins)
	vecmath.Magnitude(mags, re, im)
	putScratch(buf)

	freqs := make([]float64, bins)
	df := sampleRate / float64(size)
	for k := range freqs {
		freqs[k] = float64(k) * df
	}

	return Analysis{Freqs: freqs, Magnitudes: mags}, nil
}

// Peak returns the frequency and magnitude of the strongest bin.
func (a Analysis) Peak() (freqHz, magnitude float64) {
	for k, m := range a.Magnitudes {
		if m > magnitude {
			magnitude = m
			freqHz = a.Freqs[k]
		}
	}
	return freqHz, magnitude
}
