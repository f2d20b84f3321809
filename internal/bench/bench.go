// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bench drives an ffq ring with one producer and one consumer
// under sustained load and reports how often each side was blocked.
//
// The producer pushes 1..Count. The consumer checks that every value is the
// next one expected, so a run doubles as a FIFO stress test. Each role runs
// on its own goroutine locked to an OS thread.
package bench

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/ffq/internal/pace"
)

// stopCheckMask controls how often a role that never blocks polls the
// stop flag.
const stopCheckMask = 1<<12 - 1

// calibrationWindow is how long Run measures the cycle counter rate before
// starting the roles.
const calibrationWindow = 10 * time.Millisecond

// Result holds the counters of one run.
type Result struct {
	Config Config

	Produced uint64
	Consumed uint64

	// Number of Enqueue calls that returned ErrWouldBlock (ring full).
	ProducerBlocks uint64
	// Number of Dequeue calls that returned ErrWouldBlock (ring empty).
	ConsumerBlocks uint64

	Elapsed time.Duration
	Cycles  uint64
	// Counter cycles per nanosecond, measured before the run.
	CyclesPerNs float64
}

type runner struct {
	cfg  Config
	lane lane
	stop atomix.Bool

	// Producer-owned
	produced       uint64
	producerBlocks uint64

	// Consumer-owned
	consumed       uint64
	consumerBlocks uint64
	err            error
	out            *bufio.Writer
}

// Run executes one benchmark. Values are written to out when cfg.Verbose
// is set; out may be nil otherwise.
//
// Cancelling ctx stops both roles at their next poll. Run then returns the
// partial Result and an error wrapping ctx.Err().
func Run(ctx context.Context, cfg Config, out io.Writer) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{Config: cfg}, err
	}

	r := &runner{cfg: cfg, lane: newLane(cfg.Variant, cfg.Capacity)}
	if cfg.Verbose && out != nil {
		r.out = bufio.NewWriter(out)
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			r.stop.StoreRelease(true)
		case <-done:
		}
	}()

	cyclesPerNs := pace.Calibrate(calibrationWindow)

	var wg sync.WaitGroup
	startCycles := pace.Cycles()
	start := time.Now()

	wg.Add(2)
	go func() {
		defer wg.Done()
		r.produce()
	}()
	go func() {
		defer wg.Done()
		r.consume()
	}()
	wg.Wait()

	elapsed := time.Since(start)
	cycles := pace.Cycles() - startCycles
	close(done)

	res := Result{
		Config:         cfg,
		Produced:       r.produced,
		Consumed:       r.consumed,
		ProducerBlocks: r.producerBlocks,
		ConsumerBlocks: r.consumerBlocks,
		Elapsed:        elapsed,
		Cycles:         cycles,
		CyclesPerNs:    cyclesPerNs,
	}

	if r.out != nil {
		if err := r.out.Flush(); err != nil && r.err == nil {
			r.err = fmt.Errorf("bench: write values: %w", err)
		}
	}
	if r.err != nil {
		return res, r.err
	}
	if res.Consumed != cfg.Count {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("bench: stopped after %d/%d values: %w", res.Consumed, cfg.Count, err)
		}
	}
	return res, nil
}

func (r *runner) produce() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w := newWaiter(r.cfg.Retry)
	for v := uint64(1); v <= r.cfg.Count; v++ {
		for r.lane.push(v) != nil {
			r.producerBlocks++
			if r.stop.LoadAcquire() {
				return
			}
			w.wait()
		}
		w.reset()
		r.produced++
		pace.Delay(r.cfg.ProducerDelay)
		if v&stopCheckMask == 0 && r.stop.LoadAcquire() {
			return
		}
	}
}

func (r *runner) consume() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w := newWaiter(r.cfg.Retry)
	expected := uint64(1)
	for expected <= r.cfg.Count {
		v, err := r.lane.pop()
		if err != nil {
			r.consumerBlocks++
			if r.stop.LoadAcquire() {
				return
			}
			w.wait()
			continue
		}
		w.reset()
		if v != expected {
			r.err = fmt.Errorf("%w: got %d, want %d", ErrOutOfOrder, v, expected)
			r.stop.StoreRelease(true)
			return
		}
		if r.out != nil {
			fmt.Fprintf(r.out, "data = %d\n", v)
		}
		r.consumed++
		pace.Delay(r.cfg.ConsumerDelay)
		if expected&stopCheckMask == 0 && r.stop.LoadAcquire() {
			return
		}
		expected++
	}
}

// Report writes the contention metrics: producer blocks to stderr,
// consumer blocks and the throughput summary to stdout.
func (res Result) Report(stdout, stderr io.Writer) {
	fmt.Fprintf(stderr, "producer: %d values, %d blocks\n", res.Produced, res.ProducerBlocks)
	fmt.Fprintf(stdout, "consumer: %d values, %d blocks\n", res.Consumed, res.ConsumerBlocks)

	if res.Consumed == 0 || res.Elapsed <= 0 {
		return
	}
	n := float64(res.Consumed)
	perOp := float64(res.Elapsed.Nanoseconds()) / n
	fmt.Fprintf(stdout, "%s ring (size %d, retry %s): %v, %.2f ns/op, %.2f M ops/sec, %.1f cycles/op (%.2f cycles/ns)\n",
		res.Config.Variant, res.Config.Capacity, res.Config.Retry,
		res.Elapsed, perOp, n/res.Elapsed.Seconds()/1e6, float64(res.Cycles)/n, res.CyclesPerNs)
}
