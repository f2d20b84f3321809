// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ffq

// Options configures ring creation.
type Options struct {
	// Capacity (exact, not rounded)
	capacity int

	// Detect a second producer or consumer at runtime
	guarded bool
}

// Builder creates rings with fluent configuration.
//
// Example:
//
//	// Generic ring
//	q := ffq.Build[Event](ffq.New(1024))
//
//	// Indirect ring with the misuse guard enabled
//	q := ffq.New(1024).Guarded().BuildIndirect()
type Builder struct {
	opts Options
}

// New creates a ring builder with the given capacity.
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	checkCapacity(capacity)
	return &Builder{opts: Options{capacity: capacity}}
}

// Guarded enables the single-producer single-consumer misuse guard.
//
// A guarded ring claims a per-role flag with CAS on every Enqueue and
// Dequeue, and panics if a second goroutine enters the same role
// concurrently. Intended for tests and debug builds.
func (b *Builder) Guarded() *Builder {
	b.opts.guarded = true
	return b
}

// Build creates a Ring[T] from the builder configuration.
func Build[T any](b *Builder) *Ring[T] {
	q := NewRing[T](b.opts.capacity)
	q.guard = b.opts.newGuard()
	return q
}

// BuildPtr creates a RingPtr from the builder configuration.
func (b *Builder) BuildPtr() *RingPtr {
	q := NewRingPtr(b.opts.capacity)
	q.guard = b.opts.newGuard()
	return q
}

// BuildIndirect creates a RingIndirect from the builder configuration.
func (b *Builder) BuildIndirect() *RingIndirect {
	q := NewRingIndirect(b.opts.capacity)
	q.guard = b.opts.newGuard()
	return q
}

func (o *Options) newGuard() *roleGuard {
	if !o.guarded {
		return nil
	}
	return &roleGuard{}
}

func checkCapacity(capacity int) {
	if capacity < 1 {
		panic("ffq: capacity must be >= 1")
	}
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
