// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package window_test

import (
	"testing"

	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/window"
)

// TestOptimizeRemovesRedundantGate builds AND(AND(p1,p2),p1), whose MFFC
// is redundant (it always equals AND(p1,p2)), and checks the window
// manager rewires it down to the inner gate.
func TestOptimizeRemovesRedundantGate(t *testing.T) {
	h := network.NewHost()
	p1 := h.NewInput()
	p2 := h.NewInput()
	g1 := h.And(p1, p2)
	g2 := h.And(g1, p1)
	h.AddOutput(g2)

	store := network.NewDivisorStore(4)
	cfg := window.DefaultConfig()
	m := window.NewManager(h, store, cfg)

	pats := tt.ExhaustivePatterns(2)
	res, err := m.Optimize(network.NodeID(g2.Var()), pats)
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}
	if !res.Accepted {
		t.Fatalf("expected acceptance, got reason %q", res.Reason)
	}
	if res.GateCount != 0 {
		t.Fatalf("expected a 0-gate (wire) replacement, got %d gates", res.GateCount)
	}

	vals := h.Simulate(pats)
	out := h.Outputs()[0]
	got := vals[int(out.Var())]
	if !out.IsPos() {
		got = tt.Not(tt.New(got.Len()), got)
	}
	want := tt.And(tt.New(4), vals[int(p1.Var())], vals[int(p2.Var())])
	if !tt.Equal(got, want) {
		t.Fatal("post-substitution output no longer equals AND(p1,p2)")
	}
}
