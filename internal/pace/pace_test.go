// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pace_test

import (
	"testing"
	"time"

	"code.hybscloud.com/ffq/internal/pace"
)

func TestCyclesMonotonic(t *testing.T) {
	prev := pace.Cycles()
	for i := range 1000 {
		now := pace.Cycles()
		if now < prev {
			t.Fatalf("iteration %d: counter went backwards: %d < %d", i, now, prev)
		}
		prev = now
	}
}

func TestCyclesAdvance(t *testing.T) {
	start := pace.Cycles()
	time.Sleep(time.Millisecond)
	if end := pace.Cycles(); end <= start {
		t.Fatalf("counter did not advance: start=%d end=%d", start, end)
	}
}

func TestDelay(t *testing.T) {
	tests := []struct {
		name   string
		cycles uint64
	}{
		{"Zero", 0},
		{"Small", 100},
		{"Medium", 100_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := pace.Cycles()
			pace.Delay(tt.cycles)
			if got := pace.Cycles() - start; got < tt.cycles {
				t.Fatalf("Delay(%d): elapsed %d cycles", tt.cycles, got)
			}
		})
	}
}

func TestCalibrate(t *testing.T) {
	if got := pace.Calibrate(0); got != 0 {
		t.Fatalf("Calibrate(0): got %f, want 0", got)
	}

	ratio := pace.Calibrate(5 * time.Millisecond)
	if ratio <= 0 {
		t.Fatalf("Calibrate: got %f, want > 0", ratio)
	}
	if !pace.Hardware && (ratio < 0.5 || ratio > 2) {
		t.Fatalf("Calibrate without hardware counter: got %f, want ~1", ratio)
	}
}

func BenchmarkCycles(b *testing.B) {
	var sink uint64
	for range b.N {
		sink += pace.Cycles()
	}
	_ = sink
}
