// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ffq

import "unsafe"

// Queue is the combined producer-consumer interface for a ring of T.
//
// Both operations are non-blocking and return ErrWouldBlock when they cannot
// proceed. There is no length: occupancy is only known slot by slot.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Cap() int
}

// Producer is the enqueue side of a Queue.
//
// The element is passed by pointer to avoid copying large structs. The ring
// stores a copy, so the original may be modified after Enqueue returns.
type Producer[T any] interface {
	// Enqueue copies elem into the slot at head (non-blocking).
	// Returns nil on success, ErrWouldBlock if the slot is still occupied.
	// Only one goroutine may call Enqueue.
	Enqueue(elem *T) error
}

// Consumer is the dequeue side of a Queue.
//
// The slot is cleared on dequeue so the ring does not keep referenced
// objects alive.
type Consumer[T any] interface {
	// Dequeue removes and returns the element at tail (non-blocking).
	// Returns (zero-value, ErrWouldBlock) if the slot is empty.
	// Only one goroutine may call Dequeue.
	Dequeue() (T, error)
}

// QueueIndirect is the combined interface for uintptr rings.
//
// Values are indices or handles. Zero is reserved as the empty marker:
//
//	pool := make([][]byte, 1024)
//	q := ffq.NewRingIndirect(1024)
//
//	// Producer hands out buffer i as i+1
//	q.Enqueue(uintptr(i) + 1)
//
//	// Consumer
//	h, _ := q.Dequeue()
//	buf := pool[h-1]
type QueueIndirect interface {
	ProducerIndirect
	ConsumerIndirect
	Cap() int
}

// ProducerIndirect enqueues uintptr values (non-blocking).
type ProducerIndirect interface {
	// Enqueue adds elem to the ring.
	// Returns ErrWouldBlock immediately if the ring is full.
	// Panics if elem == Free.
	Enqueue(elem uintptr) error
}

// ConsumerIndirect dequeues uintptr values (non-blocking).
type ConsumerIndirect interface {
	// Dequeue removes and returns an element from the ring.
	// Returns (Free, ErrWouldBlock) immediately if the ring is empty.
	Dequeue() (uintptr, error)
}

// QueuePtr is the combined interface for unsafe.Pointer rings.
//
// Ownership semantics: the producer transfers the object to the consumer.
// After enqueueing, the producer should not access the object.
//
//	q := ffq.NewRingPtr(1024)
//
//	// Producer
//	msg := &Message{Data: payload}
//	q.Enqueue(unsafe.Pointer(msg))
//
//	// Consumer
//	ptr, _ := q.Dequeue()
//	msg := (*Message)(ptr)
type QueuePtr interface {
	ProducerPtr
	ConsumerPtr
	Cap() int
}

// ProducerPtr enqueues unsafe.Pointer values (non-blocking).
type ProducerPtr interface {
	// Enqueue adds elem to the ring.
	// Returns ErrWouldBlock immediately if the ring is full.
	Enqueue(elem unsafe.Pointer) error
}

// ConsumerPtr dequeues unsafe.Pointer values (non-blocking).
type ConsumerPtr interface {
	// Dequeue removes and returns an element from the ring.
	// Returns (nil, ErrWouldBlock) immediately if the ring is empty.
	Dequeue() (unsafe.Pointer, error)
}

var (
	_ Queue[int]    = (*Ring[int])(nil)
	_ QueuePtr      = (*RingPtr)(nil)
	_ QueueIndirect = (*RingIndirect)(nil)
)
