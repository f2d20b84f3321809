// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ffq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests for Ring[T] and RingPtr, whose
// plain payload fields are ordered by the atomix slot flag.
const RaceEnabled = true
