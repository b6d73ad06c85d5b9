// Package noise degrades detector signals with additive Gaussian noise
// and Poisson shot noise. One Injector owns one seedable generator for
// its whole lifetime, so a fixed seed reproduces a full acquisition.
package noise

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Errors returned by noise injection.
var (
	ErrEmptySignal   = errors.New("noise: empty signal")
	ErrNegativeValue = errors.New("noise: poisson noise requires non-negative samples")
)

// Above this mean the Poisson draw switches to a rounded Normal
// approximation, which is numerically stable and agrees in distribution.
const largeMeanThreshold = 1e6

// Injector draws all noise for one session from a single seeded source.
// It is not safe for concurrent use; serialize calls to keep the draw
// stream reproducible.
type Injector struct {
	src rand.Source
}

// NewInjector returns an Injector seeded once for its lifetime.
func NewInjector(seed uint64) *Injector {
	return &Injector{src: rand.NewSource(seed)}
}

// AddGaussian adds one independent Normal(mean, stddev) draw per sample.
func (in *Injector) AddGaussian(samples []float64, mean, stddev float64) error {
	if len(samples) == 0 {
		return ErrEmptySignal
	}
	if stddev < 0 {
		return fmt.Errorf("noise: standard deviation must be >= 0: %f", stddev)
	}

	dist := distuv.Normal{Mu: mean, Sigma: stddev, Src: in.src}
	for i := range samples {
		samples[i] += dist.Rand()
	}
	return nil
}

// AddPoisson replaces each sample value v with a Poisson(v) draw, or with
// round(Normal(v, sqrt(v))) for very large means. The signal is validated
// up front and left untouched when any sample is negative.
func (in *Injector) AddPoisson(samples []float64) error {
	if len(samples) == 0 {
		return ErrEmptySignal
	}
	for i, v := range samples {
		if v < 0 {
			return fmt.Errorf("%w: sample %d = %f", ErrNegativeValue, i, v)
		}
	}

	for i, v := range samples {
		samples[i] = in.shotDraw(v)
	}
	return nil
}

func (in *Injector) shotDraw(mean float64) float64 {
	if mean == 0 {
		return 0
	}
	if mean < largeMeanThreshold {
		return distuv.Poisson{Lambda: mean, Src: in.src}.Rand()
	}

	dist := distuv.Normal{Mu: mean, Sigma: math.Sqrt(mean), Src: in.src}
	return math.Round(dist.Rand())
}
