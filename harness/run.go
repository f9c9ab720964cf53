// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package harness

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/irifrance/resynth/aiger"
	"github.com/irifrance/resynth/driver"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/oracle"
	"github.com/irifrance/resynth/tt"
)

// exhaustiveLimit is the largest primary-input count for which
// tt.ExhaustivePatterns is practical (2^20 bits per pattern word); above
// it RunOne falls back to tt.RandomPatterns as a partial simulator.
const exhaustiveLimit = 20

// randomWords and randomSeed fix the partial-simulator's sample size and
// seed so that two runs of the same benchmark produce the same patterns.
const randomWords = 64
const randomSeed = 1

func countLiveGates(h *network.Host) int {
	n := 0
	for id := 1; id < h.Len(); id++ {
		nid := network.NodeID(id)
		if h.Kind(nid) != network.KindInput && !h.IsDead(nid) {
			n++
		}
	}
	return n
}

func patternsFor(numPIs int) []tt.T {
	if numPIs <= exhaustiveLimit {
		return tt.ExhaustivePatterns(numPIs)
	}
	return tt.RandomPatterns(numPIs, randomWords, randomSeed)
}

// patternWidth returns the simulation-vector width patternsFor(numPIs)
// would use, without requiring a non-empty pattern slice to read it off
// of (a zero-input network yields no patterns at all).
func patternWidth(numPIs int) int {
	if numPIs <= exhaustiveLimit {
		return 1 << uint(numPIs)
	}
	return randomWords * 64
}

// RunOne reads b's AIGER file, runs a driver.Driver configured by cfg
// over it to a fixed point, writes the resynthesized network to a
// temporary AIGER file, and checks it against the original via checker
// (oracle.Default() if nil). GatesBefore is set once the file is read,
// GatesAfter once the driver has run, and Duration only when the whole
// run, including the oracle call, completes; Err is set only on a failure
// to read, run, write, or invoke the oracle, distinct from Equivalent
// being false (a successful but unsound run).
func RunOne(b Benchmark, cfg driver.Config, checker *oracle.Checker) Result {
	if checker == nil {
		checker = oracle.Default()
	}
	r := Result{Name: b.Name}
	start := time.Now()

	h, outs, err := aiger.Read(b.Path)
	if err != nil {
		r.Err = fmt.Errorf("harness: read %s: %w", b.Path, err)
		return r
	}
	r.GatesBefore = countLiveGates(h)

	numPIs := len(h.Inputs())
	pats := patternsFor(numPIs)
	store := network.NewDivisorStore(patternWidth(numPIs))
	d := driver.NewDriver(h, store, cfg)

	st, err := d.Run(pats)
	if err != nil {
		r.Err = fmt.Errorf("harness: run %s: %w", b.Path, err)
		return r
	}
	r.Accepted = st.Accepted
	r.GatesAfter = countLiveGates(h)

	tmp, err := os.CreateTemp("", "resynth-*.aag")
	if err != nil {
		r.Err = fmt.Errorf("harness: tempfile for %s: %w", b.Path, err)
		return r
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := aiger.Write(h, outs, tmpPath); err != nil {
		r.Err = fmt.Errorf("harness: write resynthesized %s: %w", b.Path, err)
		return r
	}

	eq, err := checker.Check(b.Path, tmpPath)
	if err != nil {
		r.Err = fmt.Errorf("harness: equivalence check %s: %w", b.Path, err)
		return r
	}
	r.Equivalent = eq
	r.Duration = time.Since(start)
	return r
}

// Table collects Results from concurrent workers behind one mutex, the
// shared mutex-protected result table concurrent benchmark runs append to.
type Table struct {
	mu   sync.Mutex
	rows []Result
}

// Add appends r to the table.
func (t *Table) Add(r Result) {
	t.mu.Lock()
	t.rows = append(t.rows, r)
	t.mu.Unlock()
}

// Rows returns a copy of the table's accumulated results.
func (t *Table) Rows() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Result, len(t.rows))
	copy(out, t.rows)
	return out
}

// RunAll runs every benchmark in bs using nworkers goroutines: a single
// atomic counter hands out the next benchmark index to whichever worker
// asks for it, and each worker runs driver.Driver single-threaded over
// its own benchmark, so no state is shared between concurrently-running
// benchmarks except the result Table itself. checker is passed through
// to RunOne unchanged (nil selects oracle.Default()).
func RunAll(bs []Benchmark, nworkers int, cfg driver.Config, checker *oracle.Checker) *Table {
	if nworkers < 1 {
		nworkers = 1
	}
	table := &Table{}
	var next atomic.Int64
	var wg sync.WaitGroup

	for w := 0; w < nworkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := next.Add(1) - 1
				if i >= int64(len(bs)) {
					return
				}
				table.Add(RunOne(bs[i], cfg, checker))
			}
		}()
	}
	wg.Wait()
	return table
}
