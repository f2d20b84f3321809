// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"runtime"
	"unsafe"

	"code.hybscloud.com/ffq"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// lane adapts one ring flavour to the uint64 sequence the harness pushes.
// push is called by the producer only, pop by the consumer only.
type lane interface {
	push(v uint64) error
	pop() (uint64, error)
}

func newLane(v Variant, capacity int) lane {
	switch v {
	case VariantPtr:
		return newPtrLane(capacity)
	case VariantGeneric:
		return &genericLane{q: ffq.NewRing[uint64](capacity)}
	default:
		return &indirectLane{q: ffq.NewRingIndirect(capacity)}
	}
}

type indirectLane struct {
	q *ffq.RingIndirect
}

func (l *indirectLane) push(v uint64) error {
	return l.q.Enqueue(uintptr(v))
}

func (l *indirectLane) pop() (uint64, error) {
	v, err := l.q.Dequeue()
	return uint64(v), err
}

type genericLane struct {
	q *ffq.Ring[uint64]
}

func (l *genericLane) push(v uint64) error {
	return l.q.Enqueue(&v)
}

func (l *genericLane) pop() (uint64, error) {
	return l.q.Dequeue()
}

// ptrLane passes pointers into a pool owned by the producer.
//
// A pool entry is rewritten only after the producer has pushed len(pool)
// newer values. With len(pool) >= capacity+2 the consumer has finished
// reading the old value by then.
type ptrLane struct {
	q    *ffq.RingPtr
	pool []uint64
	next int
}

func newPtrLane(capacity int) *ptrLane {
	return &ptrLane{
		q:    ffq.NewRingPtr(capacity),
		pool: make([]uint64, 2*capacity+2),
	}
}

func (l *ptrLane) push(v uint64) error {
	p := &l.pool[l.next]
	*p = v
	if err := l.q.Enqueue(unsafe.Pointer(p)); err != nil {
		return err
	}
	l.next++
	if l.next == len(l.pool) {
		l.next = 0
	}
	return nil
}

func (l *ptrLane) pop() (uint64, error) {
	p, err := l.q.Dequeue()
	if err != nil {
		return 0, err
	}
	return *(*uint64)(p), nil
}

// waiter is a caller-side retry policy.
type waiter interface {
	wait()
	reset()
}

func newWaiter(r Retry) waiter {
	switch r {
	case RetryPause:
		return &pauseWaiter{}
	case RetryBackoff:
		return &backoffWaiter{}
	default:
		return spinWaiter{yield: runtime.GOMAXPROCS(0) == 1}
	}
}

// spinWaiter retries immediately. With a single P the other role cannot
// run until this one gives up the processor, so it yields instead.
type spinWaiter struct {
	yield bool
}

func (w spinWaiter) wait() {
	if w.yield {
		runtime.Gosched()
	}
}

func (spinWaiter) reset() {}

type pauseWaiter struct {
	sw spin.Wait
}

func (w *pauseWaiter) wait()  { w.sw.Once() }
func (w *pauseWaiter) reset() { w.sw = spin.Wait{} }

type backoffWaiter struct {
	b iox.Backoff
}

func (w *backoffWaiter) wait()  { w.b.Wait() }
func (w *backoffWaiter) reset() { w.b.Reset() }
