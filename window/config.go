// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package window implements the window manager (component E): for a node
// in a host network, it gathers divisors, simulates them, calls the
// resynthesis engine, validates the candidate, and splices it in.
package window

import "github.com/irifrance/resynth/resynth"

// Config holds the window manager's tunable knobs, named 1:1 after the
// spec's configuration-option table.
type Config struct {
	MaxInserts   int // extra gates tolerated over the current MFFC size
	MaxPIs       int // k-cut leaf cap
	MaxDivisors  int
	MaxBinates   int
	OdcLevels    int // observability-don't-care expansion depth (statistical, see Manager.validateODC)
	ConflictLimit int // retained for documentation parity with spec's SAT-oracle knob; unused, no SAT solver in this tree
	MaxClauses    int // same
	RetryBound    int // per-node validation-failure retries before giving up (spec §7.2)
	Seed          int64
	CutSampler    CutSampler
	ResynthConfig resynth.Config
}

// DefaultConfig returns the window manager's defaults.
func DefaultConfig() Config {
	return Config{
		MaxInserts:    3,
		MaxPIs:        8,
		MaxDivisors:   1000,
		MaxBinates:    50,
		OdcLevels:     3,
		ConflictLimit: 1000000,
		MaxClauses:    100000,
		RetryBound:    3,
		Seed:          1,
		ResynthConfig: resynth.DefaultConfig(),
	}
}
