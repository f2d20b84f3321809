// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"fmt"
)

// Defaults match the original FastForward test program.
const (
	DefaultCount    = 10_000_000
	DefaultCapacity = 1024
)

var (
	ErrInvalidCount    = errors.New("bench: count must be a positive integer")
	ErrInvalidCapacity = errors.New("bench: capacity must be >= 1")
	ErrUnknownVariant  = errors.New("bench: unknown ring variant")
	ErrUnknownRetry    = errors.New("bench: unknown retry policy")
	ErrOutOfOrder      = errors.New("bench: value out of order")
)

// Variant selects the ring flavour under test.
type Variant string

const (
	VariantIndirect Variant = "indirect" // ffq.RingIndirect, Free sentinel
	VariantPtr      Variant = "ptr"      // ffq.RingPtr, explicit slot state
	VariantGeneric  Variant = "generic"  // ffq.Ring[uint64], explicit slot state
)

// ParseVariant converts a flag value to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantIndirect, VariantPtr, VariantGeneric:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Retry selects what a role does after observing a full or empty ring.
type Retry string

const (
	RetrySpin    Retry = "spin"    // retry immediately
	RetryPause   Retry = "pause"   // spin.Wait
	RetryBackoff Retry = "backoff" // iox.Backoff
)

// ParseRetry converts a flag value to a Retry.
func ParseRetry(s string) (Retry, error) {
	switch r := Retry(s); r {
	case RetrySpin, RetryPause, RetryBackoff:
		return r, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRetry, s)
}

// Config describes one benchmark run.
type Config struct {
	// Count values 1..Count are pushed by the producer.
	Count uint64
	// Capacity of the ring, exact.
	Capacity int
	Variant  Variant
	Retry    Retry

	// Busy-wait after each successful operation, in pace cycles.
	ProducerDelay uint64
	ConsumerDelay uint64

	// Verbose prints every dequeued value.
	Verbose bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Count:    DefaultCount,
		Capacity: DefaultCapacity,
		Variant:  VariantIndirect,
		Retry:    RetrySpin,
	}
}

// Validate checks c and returns the first problem found.
func (c Config) Validate() error {
	if c.Count == 0 || c.Count > uint64(^uintptr(0)) {
		return fmt.Errorf("%w: %d", ErrInvalidCount, c.Count)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, c.Capacity)
	}
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if _, err := ParseRetry(string(c.Retry)); err != nil {
		return err
	}
	return nil
}
