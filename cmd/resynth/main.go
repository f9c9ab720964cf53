// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Command resynth is the resynthesis benchmark runner: given -dir, it
// reads AIGER networks from it, runs driver.Driver to a fixed point over
// each, and reports the gate-count delta and a post-run equivalence
// check against the original. A single positional argument selects one
// benchmark file to run instead of everything -dir finds.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/irifrance/resynth/driver"
	"github.com/irifrance/resynth/harness"
)

var dir = flag.String("dir", "", "run every *.aag file found in this directory")
var workers = flag.Int("workers", runtime.GOMAXPROCS(0), "number of concurrent benchmark workers")

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, usage, p, p, p)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	bs, err := benchmarks()
	if err != nil {
		fmt.Fprintf(os.Stderr, "resynth: %s\n", err)
		os.Exit(1)
	}
	if len(bs) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	table := harness.RunAll(bs, *workers, driver.DefaultConfig(), nil)
	ok := true
	for _, r := range table.Rows() {
		fmt.Println(r.String())
		if r.Err != nil || !r.Equivalent {
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// benchmarks returns the single benchmark named by the positional
// argument if one was given, otherwise every *.aag file under -dir.
func benchmarks() ([]harness.Benchmark, error) {
	if flag.NArg() == 1 {
		arg := flag.Arg(0)
		return []harness.Benchmark{{Name: filepath.Base(arg), Path: arg}}, nil
	}
	if *dir == "" {
		return nil, nil
	}
	bs, err := harness.Discover(*dir)
	if err != nil {
		return nil, fmt.Errorf("scanning -dir %s: %w", *dir, err)
	}
	return bs, nil
}
