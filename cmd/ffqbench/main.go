// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ffqbench drives an ffq ring with one producer and one consumer
// thread and reports how often each side found the ring full or empty.
//
// Usage:
//
//	go run ./cmd/ffqbench -n 10000000 -size 1024
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"code.hybscloud.com/ffq/internal/bench"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		return 1
	}

	res, err := bench.Run(ctx, cfg, stdout)
	res.Report(stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "ffqbench: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs returns the run configuration, or an error after printing usage
// to stderr.
func parseArgs(args []string, stderr io.Writer) (bench.Config, error) {
	def := bench.DefaultConfig()

	fs := flag.NewFlagSet("ffqbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: ffqbench [-n count] [-size slots] [-variant indirect|ptr|generic]")
		fmt.Fprintln(stderr, "                [-retry spin|pause|backoff] [-pdelay cycles] [-cdelay cycles] [-v]")
		fs.PrintDefaults()
	}

	count := def.Count
	fs.Func("n", fmt.Sprintf("number of values the producer pushes, decimal (default %d)", def.Count), func(s string) error {
		n, err := parsePositive(s)
		if err != nil {
			return err
		}
		count = n
		return nil
	})
	size := fs.Int("size", def.Capacity, "ring capacity in slots")
	variant := fs.String("variant", string(def.Variant), "ring variant: indirect, ptr or generic")
	retry := fs.String("retry", string(def.Retry), "retry policy on full/empty: spin, pause or backoff")
	pdelay := fs.Uint64("pdelay", 0, "producer busy-wait per value, in cycles")
	cdelay := fs.Uint64("cdelay", 0, "consumer busy-wait per value, in cycles")
	verbose := fs.Bool("v", false, "print every dequeued value")

	if err := fs.Parse(args); err != nil {
		return def, err
	}
	if fs.NArg() > 0 {
		return def, usageError(fs, stderr, fmt.Sprintf("unexpected argument %q", fs.Arg(0)))
	}
	v, err := bench.ParseVariant(*variant)
	if err != nil {
		return def, usageError(fs, stderr, err.Error())
	}
	r, err := bench.ParseRetry(*retry)
	if err != nil {
		return def, usageError(fs, stderr, err.Error())
	}

	cfg := bench.Config{
		Count:         count,
		Capacity:      *size,
		Variant:       v,
		Retry:         r,
		ProducerDelay: *pdelay,
		ConsumerDelay: *cdelay,
		Verbose:       *verbose,
	}
	if err := cfg.Validate(); err != nil {
		return def, usageError(fs, stderr, err.Error())
	}
	return cfg, nil
}

var (
	errUsage       = errors.New("usage")
	errNotPositive = errors.New("must be a positive decimal integer")
)

// parsePositive accepts only decimal digits: no sign, no 0x/0o/0b prefix.
func parsePositive(s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n == 0 {
		return 0, errNotPositive
	}
	return n, nil
}

func usageError(fs *flag.FlagSet, stderr io.Writer, msg string) error {
	fmt.Fprintf(stderr, "ffqbench: %s\n", msg)
	fs.Usage()
	return errUsage
}
