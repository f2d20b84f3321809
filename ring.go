// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ffq

import "code.hybscloud.com/atomix"

// Ring is a single-producer single-consumer bounded queue of T.
//
// FastForward layout: head is private to the producer and tail is private
// to the consumer. Each slot carries an explicit occupancy flag, so any
// value of T (including the zero value) may be enqueued.
//
// The producer writes data, then release-stores full=true. The consumer
// acquire-loads full, reads data, clears it, then release-stores
// full=false. A slot alternates strictly between the two states.
//
// Memory: O(capacity), one flag per slot
type Ring[T any] struct {
	_     pad
	head  uint64 // Producer: next slot to write
	_     padShort
	tail  uint64 // Consumer: next slot to read
	_     padShort
	slots []ringSlot[T]
	n     uint64
	guard *roleGuard
}

type ringSlot[T any] struct {
	full atomix.Bool
	data T
}

// NewRing creates a new ring holding at most capacity elements.
// Capacity is exact. Panics if capacity < 1.
func NewRing[T any](capacity int) *Ring[T] {
	checkCapacity(capacity)
	return &Ring[T]{
		slots: make([]ringSlot[T], capacity),
		n:     uint64(capacity),
	}
}

// Enqueue adds an element to the ring (producer only).
// Returns ErrWouldBlock if the ring is full.
func (q *Ring[T]) Enqueue(elem *T) error {
	if q.guard != nil {
		q.guard.enterProducer()
		defer q.guard.exitProducer()
	}

	head := q.head
	slot := &q.slots[head]
	if slot.full.LoadAcquire() {
		return ErrWouldBlock
	}

	slot.data = *elem
	slot.full.StoreRelease(true)
	q.head = wrap(head+1, q.n)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the ring is empty.
func (q *Ring[T]) Dequeue() (T, error) {
	if q.guard != nil {
		q.guard.enterConsumer()
		defer q.guard.exitConsumer()
	}

	tail := q.tail
	slot := &q.slots[tail]
	var zero T
	if !slot.full.LoadAcquire() {
		return zero, ErrWouldBlock
	}

	elem := slot.data
	slot.data = zero
	slot.full.StoreRelease(false)
	q.tail = wrap(tail+1, q.n)
	return elem, nil
}

// Cap returns the ring capacity.
func (q *Ring[T]) Cap() int {
	return int(q.n)
}

// wrap reduces an index that is at most n back into [0, n).
func wrap(i, n uint64) uint64 {
	if i == n {
		return 0
	}
	return i
}
