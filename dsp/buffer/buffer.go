// Package buffer provides a reusable float64 sample buffer and pool.
// Channel storage and filter scratch both draw on it to keep allocation
// out of per-acquisition hot paths.
package buffer

// Buffer wraps a float64 sample slice with reuse-friendly semantics.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice returns a Buffer holding a copy of s. The buffer owns its
// samples; later mutations of s are not visible through it.
func FromSlice(s []float64) *Buffer {
	cp := make([]float64, len(s))
	copy(cp, s)
	return &Buffer{samples: cp}
}

// Samples returns the underlying slice. Mutations are visible through
// the Buffer.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}

	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}

	// The backing array may hold stale samples from a previous use.
	for i := oldLen; i < n; i++ {
		b.samples[i] = 0
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// Fill sets every sample to v.
func (b *Buffer) Fill(v float64) {
	for i := range b.samples {
		b.samples[i] = v
	}
}
