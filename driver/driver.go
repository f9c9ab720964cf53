// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package driver

import (
	"fmt"

	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/window"
)

// Config holds the driver's tunable knobs.
type Config struct {
	MaxOuterPasses int // hard cap on fixed-point rounds, for pathological non-convergence
	MaxReentry     int // bound on how many times a newly introduced node may be re-queued
	Perturb        bool
	WindowConfig   window.Config
}

// DefaultConfig returns the driver's defaults.
func DefaultConfig() Config {
	return Config{
		MaxOuterPasses: 1000,
		MaxReentry:     3,
		Perturb:        false,
		WindowConfig:   window.DefaultConfig(),
	}
}

// Driver runs the outer fixed-point loop of spec §4.3 against one host
// network: balancing/rewriting passes, then a window-manager sweep over
// every gate, until a round yields no net gate reduction.
type Driver struct {
	Host    *network.Host
	Store   *network.DivisorStore
	Passes  []Pass // run in order, before each window sweep
	Perturb Pass   // optional evolutionary-escape step, run between rounds when Cfg.Perturb
	Cfg     Config

	win *window.Manager
}

// NewDriver creates a driver over h, backed by a fresh window.Manager.
func NewDriver(h *network.Host, store *network.DivisorStore, cfg Config) *Driver {
	return &Driver{
		Host:  h,
		Store: store,
		Cfg:   cfg,
		win:   window.NewManager(h, store, cfg.WindowConfig),
	}
}

// Stats summarizes one Run call.
type Stats struct {
	OuterPasses int
	Accepted    int
	GatesSaved  int
}

// Run executes the fixed-point loop: each round runs every configured
// Pass, then sweeps the window manager over every live gate in
// topological (= ascending NodeID, since strashing guarantees a gate's
// fan-ins were allocated before it) order, re-queuing any node the sweep
// introduces up to Cfg.MaxReentry times. The loop stops when a round
// yields no net gate reduction across both the passes and the sweep.
func (d *Driver) Run(pats []tt.T) (Stats, error) {
	var st Stats
	for round := 0; round < d.Cfg.MaxOuterPasses; round++ {
		st.OuterPasses++
		roundDelta := 0

		for _, p := range d.Passes {
			delta, err := p.Run(d.Host)
			if err != nil {
				return st, fmt.Errorf("driver: pass failed: %w", err)
			}
			roundDelta += delta
		}

		swept, err := d.sweep(pats, &st)
		if err != nil {
			return st, err
		}
		roundDelta += swept

		if d.Cfg.Perturb && d.Perturb != nil && roundDelta == 0 {
			delta, err := d.Perturb.Run(d.Host)
			if err != nil {
				return st, fmt.Errorf("driver: perturbation failed: %w", err)
			}
			roundDelta += delta
		}

		if roundDelta <= 0 {
			break
		}
	}
	return st, nil
}

// sweep runs the window manager once over every currently-live gate,
// re-queuing newly introduced nodes, and returns the total gate count
// removed.
func (d *Driver) sweep(pats []tt.T, st *Stats) (int, error) {
	reentry := make(map[network.NodeID]int)
	queue := make([]network.NodeID, 0, d.Host.Len())
	for id := 1; id < d.Host.Len(); id++ {
		nid := network.NodeID(id)
		if d.Host.Kind(nid) != network.KindInput && !d.Host.IsDead(nid) {
			queue = append(queue, nid)
		}
	}

	saved := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if d.Host.IsDead(id) || d.Host.Kind(id) == network.KindInput {
			continue
		}
		before := d.Host.Len()
		res, err := d.win.Optimize(id, pats)
		if err != nil {
			return saved, fmt.Errorf("driver: optimize node %d: %w", id, err)
		}
		if !res.Accepted {
			continue
		}
		st.Accepted++
		saved++ // at least one gate was removed (res.GateCount < mffc_size(id))

		after := d.Host.Len()
		for nid := before; nid < after; nid++ {
			id2 := network.NodeID(nid)
			if reentry[id2] >= d.Cfg.MaxReentry {
				continue
			}
			reentry[id2]++
			queue = append(queue, id2)
		}
	}
	st.GatesSaved += saved
	return saved, nil
}
