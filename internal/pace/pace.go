// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pace provides a cycle counter and a busy-wait delay for
// synthetic pacing in benchmarks.
//
// On amd64 the counter is the CPU Time Stamp Counter. Elsewhere it falls
// back to monotonic nanoseconds, so one "cycle" is one nanosecond.
//
// The counter is approximate: TSC frequency, frequency scaling and
// migrations between cores all affect it. Use it for pacing and coarse
// per-operation costs, not for wall-clock time.
package pace

import "time"

// Delay busy-waits until at least n cycles have elapsed.
// Delay(0) returns immediately. It never sleeps or yields.
func Delay(n uint64) {
	if n == 0 {
		return
	}
	start := Cycles()
	for Cycles()-start < n {
	}
}

// Calibrate measures counter cycles per nanosecond over d.
//
// This blocks for d. Returns 0 if d <= 0.
func Calibrate(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	// Warm up the counter path
	Cycles()
	Cycles()

	start := Cycles()
	t1 := time.Now()
	time.Sleep(d)
	end := Cycles()
	t2 := time.Now()

	nanos := float64(t2.Sub(t1).Nanoseconds())
	if nanos <= 0 {
		return 0
	}
	return float64(end-start) / nanos
}
