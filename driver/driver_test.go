// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package driver_test

import (
	"testing"

	"github.com/irifrance/resynth/driver"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
)

func TestRunRemovesRedundantGate(t *testing.T) {
	h := network.NewHost()
	p1 := h.NewInput()
	p2 := h.NewInput()
	g1 := h.And(p1, p2)
	g2 := h.And(g1, p1)
	h.AddOutput(g2)

	store := network.NewDivisorStore(4)
	cfg := driver.DefaultConfig()
	d := driver.NewDriver(h, store, cfg)

	pats := tt.ExhaustivePatterns(2)
	st, err := d.Run(pats)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Accepted == 0 {
		t.Fatal("expected at least one accepted substitution")
	}

	vals := h.Simulate(pats)
	out := h.Outputs()[0]
	got := vals[int(out.Var())]
	if !out.IsPos() {
		got = tt.Not(tt.New(got.Len()), got)
	}
	want := tt.And(tt.New(4), vals[int(p1.Var())], vals[int(p2.Var())])
	if !tt.Equal(got, want) {
		t.Fatal("post-run output no longer equals AND(p1,p2)")
	}
}

func TestRunOnMinimalNetworkIsNoOp(t *testing.T) {
	h := network.NewHost()
	p1 := h.NewInput()
	p2 := h.NewInput()
	g1 := h.And(p1, p2)
	h.AddOutput(g1)

	store := network.NewDivisorStore(4)
	d := driver.NewDriver(h, store, driver.DefaultConfig())

	pats := tt.ExhaustivePatterns(2)
	before := h.Len()
	st, err := d.Run(pats)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if st.Accepted != 0 || h.Len() != before {
		t.Fatalf("expected no substitution on an already-minimal network, got %d accepted, nodes %d -> %d", st.Accepted, before, h.Len())
	}
}
