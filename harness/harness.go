// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package harness runs the resynthesis driver over a set of AIGER
// benchmarks and reports per-benchmark outcomes: a shared atomic
// counter hands out benchmark indices to a fixed pool of workers, each
// of which owns a private network.Host, network.DivisorStore and
// driver.Driver, and appends its result to one mutex-guarded table.
// This is deliberately much lighter than gini's bench.Run/Suite/InstRun
// campaign model (see DESIGN.md): this package is a one-shot, in-process
// run over a fixed benchmark list, not a resumable, filesystem-persisted,
// cross-invocation benchmark history.
package harness

import (
	"fmt"
	"time"
)

// Benchmark names one AIGER input file to resynthesize.
type Benchmark struct {
	Name string // short display name, usually the file's base name
	Path string // path to an AIGER ASCII file
}

// Result reports the outcome of running the driver over one Benchmark.
type Result struct {
	Name        string
	GatesBefore int
	GatesAfter  int
	Accepted    int
	Equivalent  bool
	Duration    time.Duration
	Err         error
}

// String renders a one-line summary suitable for a benchmark CLI's
// stdout, in the spirit of gini's own "done instance ... in ...: ..."
// log lines.
func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%-24s FAILED  %s", r.Name, r.Err)
	}
	status := "OK"
	if !r.Equivalent {
		status = "MISMATCH"
	}
	return fmt.Sprintf("%-24s %-8s gates %d -> %d (accepted %d) in %s",
		r.Name, status, r.GatesBefore, r.GatesAfter, r.Accepted, r.Duration)
}
