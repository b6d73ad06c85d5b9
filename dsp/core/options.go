package core

// AcquisitionConfig defines shared acquisition settings for one simulated
// detector session.
type AcquisitionConfig struct {
	SampleRate float64
	Seed       uint64
}

// AcquisitionOption mutates an AcquisitionConfig.
type AcquisitionOption func(*AcquisitionConfig)

// DefaultAcquisitionConfig returns defaults suitable for small simulations.
func DefaultAcquisitionConfig() AcquisitionConfig {
	return AcquisitionConfig{
		SampleRate: 1e6,
		Seed:       1,
	}
}

// WithSampleRate sets the acquisition sampling rate in Hz.
func WithSampleRate(sampleRate float64) AcquisitionOption {
	return func(cfg *AcquisitionConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithSeed sets the seed for the session's noise generator.
func WithSeed(seed uint64) AcquisitionOption {
	return func(cfg *AcquisitionConfig) {
		cfg.Seed = seed
	}
}

// ApplyAcquisitionOptions applies zero or more options to the default config.
func ApplyAcquisitionOptions(opts ...AcquisitionOption) AcquisitionConfig {
	cfg := DefaultAcquisitionConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
