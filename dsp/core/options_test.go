package core

import "testing"

func TestDefaultAcquisitionConfig(t *testing.T) {
	cfg := DefaultAcquisitionConfig()
	if cfg.SampleRate <= 0 {
		t.Fatalf("default sample rate must be positive, got %v", cfg.SampleRate)
	}
}

func TestApplyAcquisitionOptions(t *testing.T) {
	cfg := ApplyAcquisitionOptions(WithSampleRate(2e6), WithSeed(42))
	if cfg.SampleRate != 2e6 {
		t.Fatalf("sample rate = %v, want 2e6", cfg.SampleRate)
	}
	if cfg.Seed != 42 {
		t.Fatalf("seed = %v, want 42", cfg.Seed)
	}
}

func TestApplyAcquisitionOptionsIgnoresInvalid(t *testing.T) {
	def := DefaultAcquisitionConfig()
	cfg := ApplyAcquisitionOptions(WithSampleRate(-1), nil)
	if cfg.SampleRate != def.SampleRate {
		t.Fatalf("negative sample rate must be ignored, got %v", cfg.SampleRate)
	}
}
