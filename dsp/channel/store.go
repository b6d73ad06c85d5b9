package channel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/opticalab/flowsim/dsp/buffer"
)

// TimeAxis is the reserved channel name that holds the shared time axis.
const TimeAxis = "Time"

// Errors returned by store operations.
var (
	ErrDuplicateChannel = errors.New("channel: duplicate channel name")
	ErrUnknownChannel   = errors.New("channel: unknown channel")
	ErrLengthMismatch   = errors.New("channel: signal length mismatch")
	ErrMissingTimeAxis  = errors.New("channel: time axis not set")
	ErrEmptySignal      = errors.New("channel: empty signal")
)

// Channel is a typed handle to one named signal. Existence is checked once
// when the handle is obtained; sample access does not re-validate.
type Channel struct {
	name string
	buf  *buffer.Buffer
}

// Name returns the channel name.
func (c *Channel) Name() string { return c.name }

// Samples returns the channel's sample slice. Mutations write through to
// the store.
func (c *Channel) Samples() []float64 { return c.buf.Samples() }

// Len returns the channel's sample count.
func (c *Channel) Len() int { return c.buf.Len() }

// Fill sets every sample of the channel to v.
func (c *Channel) Fill(v float64) { c.buf.Fill(v) }

// Store is a named collection of equal-length signals sharing one time
// axis. The sample count is fixed at construction.
type Store struct {
	n      int
	order  []string
	byName map[string]*Channel
}

// NewStore creates a store for signals of n samples.
func NewStore(n int) (*Store, error) {
	if n <= 0 {
		return nil, fmt.Errorf("channel: sample count must be > 0: %d", n)
	}
	return &Store{
		n:      n,
		byName: make(map[string]*Channel),
	}, nil
}

// Len returns the fixed sample count.
func (s *Store) Len() int { return s.n }

// SetTimeAxis registers the shared time axis. The axis length must equal
// the store's sample count and may be set only once.
func (s *Store) SetTimeAxis(data []float64) error {
	_, err := s.Add(TimeAxis, data)
	return err
}

// TimeAxis returns the shared time axis samples.
func (s *Store) TimeAxis() ([]float64, error) {
	ch, ok := s.byName[TimeAxis]
	if !ok {
		return nil, ErrMissingTimeAxis
	}
	return ch.Samples(), nil
}

// CreateZero adds a zero-filled channel under name and returns its handle.
func (s *Store) CreateZero(name string) (*Channel, error) {
	if _, ok := s.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateChannel, name)
	}

	ch := &Channel{name: name, buf: buffer.New(s.n)}
	s.byName[name] = ch
	s.order = append(s.order, name)
	return ch, nil
}

// Add registers a copy of data under name and returns its handle.
// The data length must equal the store's sample count.
func (s *Store) Add(name string, data []float64) (*Channel, error) {
	if _, ok := s.byName[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateChannel, name)
	}
	if len(data) != s.n {
		return nil, fmt.Errorf("%w: %q has %d samples, store holds %d",
			ErrLengthMismatch, name, len(data), s.n)
	}

	ch := &Channel{name: name, buf: buffer.FromSlice(data)}
	s.byName[name] = ch
	s.order = append(s.order, name)
	return ch, nil
}

// Get returns the handle of a registered channel.
func (s *Store) Get(name string) (*Channel, error) {
	ch, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
	}
	return ch, nil
}

// Names returns the registered channel names in insertion order,
// excluding the time axis.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.order))
	for _, name := range s.order {
		if name == TimeAxis {
			continue
		}
		names = append(names, name)
	}
	return names
}

// AddConstant adds c to every sample of the named channel.
func (s *Store) AddConstant(name string, c float64) error {
	ch, err := s.Get(name)
	if err != nil {
		return err
	}
	floats.AddConst(c, ch.Samples())
	return nil
}

// Multiply scales every sample of the named channel by f.
func (s *Store) Multiply(name string, f float64) error {
	ch, err := s.Get(name)
	if err != nil {
		return err
	}
	floats.Scale(f, ch.Samples())
	return nil
}

// Round rounds every sample of the named channel to the nearest integer.
func (s *Store) Round(name string) error {
	ch, err := s.Get(name)
	if err != nil {
		return err
	}
	samples := ch.Samples()
	for i, v := range samples {
		samples[i] = math.Round(v)
	}
	return nil
}

// AddConstantAll adds c to every channel except the time axis.
func (s *Store) AddConstantAll(c float64) {
	for _, name := range s.Names() {
		floats.AddConst(c, s.byName[name].Samples())
	}
}

// MultiplyAll scales every channel except the time axis by f.
func (s *Store) MultiplyAll(f float64) {
	for _, name := range s.Names() {
		floats.Scale(f, s.byName[name].Samples())
	}
}

// RoundAll rounds every channel except the time axis.
func (s *Store) RoundAll() {
	for _, name := range s.Names() {
		samples := s.byName[name].Samples()
		for i, v := range samples {
			samples[i] = math.Round(v)
		}
	}
}
