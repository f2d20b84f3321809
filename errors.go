// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ffq

import "code.hybscloud.com/iox"

// ErrWouldBlock is the only error a ring returns.
//
// Enqueue returns it when the slot at head is still occupied: the consumer
// has not yet read the value written Cap() enqueues ago. Dequeue returns it
// when the slot at tail is empty. In both cases nothing was changed and the
// same call may be repeated; the ring never waits on the caller's behalf.
//
// It is [iox.ErrWouldBlock], so code that already classifies iox errors
// treats a full or empty ring as backpressure rather than a failure.
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err is, or wraps, ErrWouldBlock: a ring was
// full on Enqueue or empty on Dequeue.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal in the iox sense.
// Every non-nil error returned by a ring is one.
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err leaves nothing to handle besides retry.
// For ring operations that is nil (the value moved) or ErrWouldBlock (ring
// full or empty). Misuse is never an error value: it panics.
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
