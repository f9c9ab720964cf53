// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package window

import (
	"fmt"

	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/resynth"
	"github.com/irifrance/resynth/tt"
)

// Manager runs the window-manager contract of spec §4.2 against one host
// network: collect divisors for a node, call the resynthesis engine,
// validate, splice.
type Manager struct {
	Host  *network.Host
	Store *network.DivisorStore
	Cfg   Config

	retries map[network.NodeID]int
}

// NewManager creates a window manager operating on h, recording divisor
// truth tables into store as it goes.
func NewManager(h *network.Host, store *network.DivisorStore, cfg Config) *Manager {
	return &Manager{Host: h, Store: store, Cfg: cfg, retries: make(map[network.NodeID]int)}
}

// Result reports the outcome of one Optimize call, for callers (package
// driver) that want to log or count outcomes without re-deriving them.
type Result struct {
	Accepted  bool
	GateCount int
	Reason    string // set when !Accepted: "not-applicable", "retry-bound", "no-divisors", "budget", "no-improvement", "validation"
}

// Optimize runs the window-manager contract for root: collect divisors,
// simulate, call the resynthesis engine with size_budget =
// mffc_size(root)+max_inserts-1, validate the candidate, and splice it in
// on success.
func (m *Manager) Optimize(root network.NodeID, pats []tt.T) (Result, error) {
	if m.Host.IsDead(root) || m.Host.Kind(root) == network.KindInput {
		return Result{Reason: "not-applicable"}, nil
	}
	if m.retries[root] >= m.Cfg.RetryBound {
		return Result{Reason: "retry-bound"}, nil
	}

	ids := collectDivisors(m.Host, root, m.Cfg.MaxPIs, m.Cfg.MaxDivisors, m.Cfg.CutSampler)
	if len(ids) == 0 {
		return Result{Reason: "no-divisors"}, nil
	}
	divs := simulateDivisors(m.Host, ids, pats)
	vals := m.Host.Simulate(pats)
	target := vals[root]
	n := target.Len()
	care := tt.Const(n, true)

	mffc := m.Host.MFFCSize(root)
	budget := mffc + m.Cfg.MaxInserts - 1
	if budget < 0 {
		budget = 0
	}

	rcfg := m.Cfg.ResynthConfig
	rcfg.MaxBinates = m.Cfg.MaxBinates
	all := append([]network.Divisor{{Node: 0, TT: tt.Const(n, false)}}, divs...)
	l, ok := resynth.Resynthesize(target, care, all, budget, rcfg)
	if !ok {
		return Result{Reason: "budget"}, nil
	}
	if l.GateCount() >= mffc {
		return Result{Reason: "no-improvement"}, nil
	}

	divTables := make([]tt.T, len(divs))
	for i, d := range divs {
		divTables[i] = d.TT
	}
	if !validate(l, divTables, target, care) {
		m.retries[root]++
		return Result{Reason: "validation"}, nil
	}
	if !m.validateODC(root, ids, l) {
		m.retries[root]++
		return Result{Reason: "validation"}, nil
	}

	newLit, err := spliceLit(m.Host, ids, l)
	if err != nil {
		return Result{}, fmt.Errorf("window: splice root %d: %w", root, err)
	}
	m.Host.Substitute(root, newLit)
	delete(m.retries, root)
	return Result{Accepted: true, GateCount: l.GateCount()}, nil
}

// validateODC strengthens the single-pattern-set validation with
// OdcLevels rounds of fresh random patterns over root's real primary
// inputs, re-deriving target and every divisor's table from the host
// itself (rather than re-using the original pattern set) and re-checking
// agreement. This is a statistical stand-in for observability-don't-care
// propagation through root's fanout cone -- the exact form needs a
// SAT-capable oracle, which this tree does not carry (see DESIGN.md) --
// so it raises confidence without being a soundness proof.
func (m *Manager) validateODC(root network.NodeID, ids []network.NodeID, l *ilist.List) bool {
	for round := 0; round < m.Cfg.OdcLevels; round++ {
		words := 1
		pats := tt.RandomPatterns(len(m.Host.Inputs()), words, m.Cfg.Seed+int64(round)+1)
		vals := m.Host.Simulate(pats)
		rTarget := vals[root]
		rDivs := make([]tt.T, len(ids))
		for i, id := range ids {
			rDivs[i] = vals[id]
		}
		rCare := tt.Const(rTarget.Len(), true)
		if !validate(l, rDivs, rTarget, rCare) {
			return false
		}
	}
	return true
}
