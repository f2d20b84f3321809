// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ffq

import (
	"unsafe"

	"code.hybscloud.com/atomix"
)

// RingPtr is a single-producer single-consumer ring for unsafe.Pointer values.
// Useful for zero-copy pointer passing between goroutines.
//
// Occupancy is an explicit per-slot flag, so nil is an ordinary payload.
type RingPtr struct {
	_     pad
	head  uint64
	_     padShort
	tail  uint64
	_     padShort
	slots []ptrSlot
	n     uint64
	guard *roleGuard
}

type ptrSlot struct {
	full atomix.Bool
	ptr  unsafe.Pointer
}

// NewRingPtr creates a new ring for unsafe.Pointer values.
// Capacity is exact. Panics if capacity < 1.
func NewRingPtr(capacity int) *RingPtr {
	checkCapacity(capacity)
	return &RingPtr{
		slots: make([]ptrSlot, capacity),
		n:     uint64(capacity),
	}
}

// Enqueue adds an element (producer only).
func (q *RingPtr) Enqueue(elem unsafe.Pointer) error {
	if q.guard != nil {
		q.guard.enterProducer()
		defer q.guard.exitProducer()
	}

	head := q.head
	slot := &q.slots[head]
	if slot.full.LoadAcquire() {
		return ErrWouldBlock
	}

	slot.ptr = elem
	slot.full.StoreRelease(true)
	q.head = wrap(head+1, q.n)
	return nil
}

// Dequeue removes and returns an element (consumer only).
func (q *RingPtr) Dequeue() (unsafe.Pointer, error) {
	if q.guard != nil {
		q.guard.enterConsumer()
		defer q.guard.exitConsumer()
	}

	tail := q.tail
	slot := &q.slots[tail]
	if !slot.full.LoadAcquire() {
		return nil, ErrWouldBlock
	}

	elem := slot.ptr
	slot.ptr = nil
	slot.full.StoreRelease(false)
	q.tail = wrap(tail+1, q.n)
	return elem, nil
}

// Cap returns the ring capacity.
func (q *RingPtr) Cap() int {
	return int(q.n)
}
