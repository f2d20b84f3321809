// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ffq provides a bounded single-producer single-consumer ring queue
// in the FastForward style.
//
// Unlike a Lamport ring, producer and consumer never read each other's
// index. Every slot carries its own occupancy state: the producer may write
// a slot only when it observes it empty, and the consumer may read a slot
// only when it observes it occupied. The slot itself is the only memory the
// two sides share.
//
// # Quick Start
//
//	q := ffq.NewRing[Event](1024)
//	q := ffq.NewRingPtr(1024)
//	q := ffq.NewRingIndirect(1024)
//
// Builder API:
//
//	q := ffq.Build[Event](ffq.New(1024))
//	q := ffq.New(1024).Guarded().BuildIndirect()
//
// # Basic Usage
//
//	q := ffq.NewRing[int](1024)
//
//	// Enqueue (non-blocking)
//	value := 42
//	err := q.Enqueue(&value)
//	if ffq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	// Dequeue (non-blocking)
//	elem, err := q.Dequeue()
//	if ffq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// Pipeline stage:
//
//	q := ffq.NewRingIndirect(1024)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for idx := range input {
//	        for q.Enqueue(idx) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer
//	    backoff := iox.Backoff{}
//	    for {
//	        idx, err := q.Dequeue()
//	        if err != nil {
//	            backoff.Wait()
//	            continue
//	        }
//	        backoff.Reset()
//	        process(idx)
//	    }
//	}()
//
// # Queue Variants
//
//	Ring[T]      - any payload, explicit per-slot state (zero value allowed)
//	RingPtr      - unsafe.Pointer payload, explicit per-slot state
//	RingIndirect - uintptr payload, the slot word is the state; Free (0) is reserved
//
// RingIndirect is the classic FastForward layout: 8 bytes per slot, the empty
// marker shares the value space. Enqueueing [Free] is a programming error and
// panics. Use Ring[uintptr] when zero must be a legal payload.
//
// # Capacity
//
// Capacity is exact; it is not rounded to a power of 2:
//
//	q := ffq.NewRingIndirect(3)    // Cap() == 3
//	q := ffq.NewRingIndirect(1000) // Cap() == 1000
//
// Minimum capacity is 1. Panic if capacity < 1.
//
// Length is not provided. Occupancy lives in the slots only; a shared count
// would reintroduce the cross-core traffic the design avoids.
//
// # Error Handling
//
// Full and Empty are both reported as [ErrWouldBlock], sourced from
// [code.hybscloud.com/iox]. They are control flow signals: retry with the
// policy of your choice (tight spin, [code.hybscloud.com/spin] pause,
// iox.Backoff). The queue itself never blocks, sleeps or yields.
//
// Contract violations panic:
//   - capacity < 1
//   - RingIndirect.Enqueue(Free)
//   - concurrent Enqueue or concurrent Dequeue on a guarded ring
//
// # Thread Safety
//
// One producer goroutine and one consumer goroutine. They may be the same
// goroutine. A second producer or consumer breaks the single-writer
// ownership of head/tail and corrupts the queue; build with Guarded() to
// detect it at the cost of one CAS per operation.
//
// # Race Detection
//
// Payload fields of Ring[T] and RingPtr are plain memory protected by the
// acquire/release ordering of the slot state. Tests that depend on this are
// skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering.
package ffq
