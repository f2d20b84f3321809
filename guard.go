// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ffq

import "code.hybscloud.com/atomix"

// roleGuard detects a second producer or consumer entering a ring.
//
// Each role owns a flag that is 1 while an operation is in progress. Two
// goroutines in the same role overlap sooner or later under load, and the
// loser of the CAS panics. Sequential use from different goroutines is
// allowed.
type roleGuard struct {
	_        pad
	producer atomix.Uint64
	_        pad
	consumer atomix.Uint64
	_        pad
}

func (g *roleGuard) enterProducer() {
	if !g.producer.CompareAndSwapAcqRel(0, 1) {
		panic("ffq: concurrent Enqueue on SPSC ring")
	}
}

func (g *roleGuard) exitProducer() {
	g.producer.StoreRelease(0)
}

func (g *roleGuard) enterConsumer() {
	if !g.consumer.CompareAndSwapAcqRel(0, 1) {
		panic("ffq: concurrent Dequeue on SPSC ring")
	}
}

func (g *roleGuard) exitConsumer() {
	g.consumer.StoreRelease(0)
}
