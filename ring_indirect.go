// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ffq

import "code.hybscloud.com/atomix"

// Free marks an empty RingIndirect slot. It is never a valid payload.
const Free uintptr = 0

// RingIndirect is a single-producer single-consumer ring for uintptr values.
//
// The slot word is both payload and occupancy: Free means empty, anything
// else is a live value. This is the original FastForward layout with 8
// bytes per slot. The producer release-stores the value into a slot it has
// acquire-loaded as Free; the consumer acquire-loads a non-Free value and
// release-stores Free back.
//
// Memory: 8 bytes per slot
type RingIndirect struct {
	_     pad
	head  uint64
	_     padShort
	tail  uint64
	_     padShort
	slots []atomix.Uintptr
	n     uint64
	guard *roleGuard
}

// NewRingIndirect creates a new ring for uintptr values.
// Capacity is exact. Panics if capacity < 1.
func NewRingIndirect(capacity int) *RingIndirect {
	checkCapacity(capacity)
	return &RingIndirect{
		slots: make([]atomix.Uintptr, capacity),
		n:     uint64(capacity),
	}
}

// Enqueue adds an element (producer only).
//
// Panics if elem == Free: a Free payload would be indistinguishable from an
// empty slot and the consumer would never see it.
func (q *RingIndirect) Enqueue(elem uintptr) error {
	if elem == Free {
		panic("ffq: enqueue of Free sentinel")
	}
	if q.guard != nil {
		q.guard.enterProducer()
		defer q.guard.exitProducer()
	}

	head := q.head
	if q.slots[head].LoadAcquire() != Free {
		return ErrWouldBlock
	}

	q.slots[head].StoreRelease(elem)
	q.head = wrap(head+1, q.n)
	return nil
}

// Dequeue removes and returns an element (consumer only).
func (q *RingIndirect) Dequeue() (uintptr, error) {
	if q.guard != nil {
		q.guard.enterConsumer()
		defer q.guard.exitConsumer()
	}

	tail := q.tail
	elem := q.slots[tail].LoadAcquire()
	if elem == Free {
		return Free, ErrWouldBlock
	}

	q.slots[tail].StoreRelease(Free)
	q.tail = wrap(tail+1, q.n)
	return elem, nil
}

// Cap returns the ring capacity.
func (q *RingIndirect) Cap() int {
	return int(q.n)
}
