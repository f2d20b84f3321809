// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench_test

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"code.hybscloud.com/ffq"
	"code.hybscloud.com/ffq/internal/bench"
)

// =============================================================================
// Config
// =============================================================================

func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	if cfg.Count != bench.DefaultCount {
		t.Fatalf("Count: got %d, want %d", cfg.Count, bench.DefaultCount)
	}
	if cfg.Capacity != bench.DefaultCapacity {
		t.Fatalf("Capacity: got %d, want %d", cfg.Capacity, bench.DefaultCapacity)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*bench.Config)
		want   error
	}{
		{"ZeroCount", func(c *bench.Config) { c.Count = 0 }, bench.ErrInvalidCount},
		{"ZeroCapacity", func(c *bench.Config) { c.Capacity = 0 }, bench.ErrInvalidCapacity},
		{"NegativeCapacity", func(c *bench.Config) { c.Capacity = -3 }, bench.ErrInvalidCapacity},
		{"UnknownVariant", func(c *bench.Config) { c.Variant = "mpmc" }, bench.ErrUnknownVariant},
		{"UnknownRetry", func(c *bench.Config) { c.Retry = "sleep" }, bench.ErrUnknownRetry},
		{"SingleSlot", func(c *bench.Config) { c.Capacity = 1 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := bench.DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"indirect", "ptr", "generic"} {
		v, err := bench.ParseVariant(s)
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", s, err)
		}
		if string(v) != s {
			t.Fatalf("ParseVariant(%q): got %q", s, v)
		}
	}
	if _, err := bench.ParseVariant("lamport"); !errors.Is(err, bench.ErrUnknownVariant) {
		t.Fatalf("ParseVariant(lamport): got %v, want ErrUnknownVariant", err)
	}
}

func TestParseRetry(t *testing.T) {
	for _, s := range []string{"spin", "pause", "backoff"} {
		if _, err := bench.ParseRetry(s); err != nil {
			t.Fatalf("ParseRetry(%q): %v", s, err)
		}
	}
	if _, err := bench.ParseRetry(""); !errors.Is(err, bench.ErrUnknownRetry) {
		t.Fatalf("ParseRetry(empty): got %v, want ErrUnknownRetry", err)
	}
}

// =============================================================================
// Run
// =============================================================================

func TestRunInvalidConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Count = 0
	if _, err := bench.Run(context.Background(), cfg, nil); !errors.Is(err, bench.ErrInvalidCount) {
		t.Fatalf("Run: got %v, want ErrInvalidCount", err)
	}
}

// TestRunMatrix runs every variant with every retry policy on a small ring,
// so both sides block often.
func TestRunMatrix(t *testing.T) {
	if ffq.RaceEnabled {
		t.Skip("skip: ring payloads are ordered by atomix slot flags")
	}
	if runtime.GOMAXPROCS(0) < 2 {
		t.Skip("skip: producer and consumer need to run in parallel")
	}

	variants := []bench.Variant{bench.VariantIndirect, bench.VariantPtr, bench.VariantGeneric}
	retries := []bench.Retry{bench.RetrySpin, bench.RetryPause, bench.RetryBackoff}

	for _, v := range variants {
		for _, r := range retries {
			t.Run(string(v)+"/"+string(r), func(t *testing.T) {
				cfg := bench.Config{
					Count:    50_000,
					Capacity: 4,
					Variant:  v,
					Retry:    r,
				}
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				res, err := bench.Run(ctx, cfg, nil)
				if err != nil {
					t.Fatalf("Run: %v", err)
				}
				if res.Produced != cfg.Count {
					t.Fatalf("Produced: got %d, want %d", res.Produced, cfg.Count)
				}
				if res.Consumed != cfg.Count {
					t.Fatalf("Consumed: got %d, want %d", res.Consumed, cfg.Count)
				}
			})
		}
	}
}

func TestRunSingleSlot(t *testing.T) {
	if ffq.RaceEnabled {
		t.Skip("skip: ring payloads are ordered by atomix slot flags")
	}

	cfg := bench.Config{Count: 10_000, Capacity: 1, Variant: bench.VariantIndirect, Retry: bench.RetrySpin}
	res, err := bench.Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Consumed != cfg.Count {
		t.Fatalf("Consumed: got %d, want %d", res.Consumed, cfg.Count)
	}
}

// TestRunSingleProcessorSpin runs the default spin policy with one P. Both
// roles must hand the processor over when blocked or the run stalls until
// the context deadline.
func TestRunSingleProcessorSpin(t *testing.T) {
	if ffq.RaceEnabled {
		t.Skip("skip: ring payloads are ordered by atomix slot flags")
	}
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(1))

	for _, v := range []bench.Variant{bench.VariantIndirect, bench.VariantPtr, bench.VariantGeneric} {
		t.Run(string(v), func(t *testing.T) {
			cfg := bench.Config{Count: 50_000, Capacity: 4, Variant: v, Retry: bench.RetrySpin}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			res, err := bench.Run(ctx, cfg, nil)
			if err != nil {
				t.Fatalf("Run: %v (consumed %d/%d)", err, res.Consumed, cfg.Count)
			}
			if res.Consumed != cfg.Count {
				t.Fatalf("Consumed: got %d, want %d", res.Consumed, cfg.Count)
			}
		})
	}
}

func TestRunWithDelay(t *testing.T) {
	if ffq.RaceEnabled {
		t.Skip("skip: ring payloads are ordered by atomix slot flags")
	}

	cfg := bench.Config{
		Count:         2_000,
		Capacity:      8,
		Variant:       bench.VariantGeneric,
		Retry:         bench.RetryBackoff,
		ConsumerDelay: 1_000,
	}
	res, err := bench.Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Consumed != cfg.Count {
		t.Fatalf("Consumed: got %d, want %d", res.Consumed, cfg.Count)
	}
	if res.Cycles == 0 {
		t.Fatal("Cycles: got 0")
	}
	if res.CyclesPerNs <= 0 {
		t.Fatalf("CyclesPerNs: got %f, want > 0", res.CyclesPerNs)
	}
}

func TestRunVerbose(t *testing.T) {
	if ffq.RaceEnabled {
		t.Skip("skip: ring payloads are ordered by atomix slot flags")
	}

	cfg := bench.Config{Count: 3, Capacity: 2, Variant: bench.VariantIndirect, Retry: bench.RetrySpin, Verbose: true}
	var out bytes.Buffer
	if _, err := bench.Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "data = 1\ndata = 2\ndata = 3\n"
	if got := out.String(); got != want {
		t.Fatalf("output: got %q, want %q", got, want)
	}
}

func TestRunCancelled(t *testing.T) {
	if ffq.RaceEnabled {
		t.Skip("skip: ring payloads are ordered by atomix slot flags")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := bench.DefaultConfig()
	cfg.Count = 1 << 31
	cfg.ProducerDelay = 10_000

	res, err := bench.Run(ctx, cfg, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run: got %v, want context.Canceled", err)
	}
	if res.Consumed >= cfg.Count {
		t.Fatalf("Consumed: got %d, want < %d", res.Consumed, cfg.Count)
	}
}

// =============================================================================
// Report
// =============================================================================

func TestReport(t *testing.T) {
	res := bench.Result{
		Config:         bench.Config{Count: 1000, Capacity: 16, Variant: bench.VariantPtr, Retry: bench.RetryPause},
		Produced:       1000,
		Consumed:       1000,
		ProducerBlocks: 7,
		ConsumerBlocks: 42,
		Elapsed:        time.Millisecond,
		Cycles:         3_000_000,
		CyclesPerNs:    3,
	}

	var stdout, stderr bytes.Buffer
	res.Report(&stdout, &stderr)

	if got := stderr.String(); got != "producer: 1000 values, 7 blocks\n" {
		t.Fatalf("stderr: got %q", got)
	}
	out := stdout.String()
	for _, want := range []string{
		"consumer: 1000 values, 42 blocks\n",
		"ptr ring (size 16, retry pause)",
		"1000.00 ns/op",
		"3000.0 cycles/op (3.00 cycles/ns)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("stdout %q: missing %q", out, want)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	var stdout, stderr bytes.Buffer
	bench.Result{}.Report(&stdout, &stderr)
	if strings.Contains(stdout.String(), "ns/op") {
		t.Fatalf("stdout: unexpected summary %q", stdout.String())
	}
}
