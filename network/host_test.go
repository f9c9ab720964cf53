// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package network_test

import (
	"testing"

	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

func TestAndStrashing(t *testing.T) {
	h := network.NewHost()
	a := h.NewInput()
	b := h.NewInput()
	g1 := h.And(a, b)
	g2 := h.And(a, b)
	if g1 != g2 {
		t.Fatal("strashing did not share identical AND gates")
	}
	g3 := h.And(b, a)
	if g3 != g1 {
		t.Fatal("AND is commutative, strashing should have caught reorder")
	}
}

func TestAndConstants(t *testing.T) {
	h := network.NewHost()
	a := h.NewInput()
	if h.And(a, a) != a {
		t.Fatal("a AND a should be a")
	}
	if h.And(a, a.Not()) != h.F {
		t.Fatal("a AND not(a) should be constant false")
	}
	if h.And(h.T, a) != a {
		t.Fatal("true AND a should be a")
	}
	if h.And(h.F, a) != h.F {
		t.Fatal("false AND a should be false")
	}
}

func TestXorConstants(t *testing.T) {
	h := network.NewHost()
	a := h.NewInput()
	if h.Xor(a, a) != h.F {
		t.Fatal("a XOR a should be false")
	}
	if h.Xor(a, a.Not()) != h.T {
		t.Fatal("a XOR not(a) should be true")
	}
}

func TestGrowStrash(t *testing.T) {
	h := network.NewHostCap(4)
	n := 200
	ins := make([]z.Lit, 0, n)
	for i := 0; i < n; i++ {
		ins = append(ins, h.NewInput())
	}
	gates := make([]z.Lit, n/2)
	for i := 0; i < n/2; i++ {
		j := len(ins) - 1 - i
		gates[i] = h.And(ins[i], ins[j])
	}
	for i := 0; i < n/2; i++ {
		j := len(ins) - 1 - i
		g := h.And(ins[i], ins[j])
		if g != gates[i] {
			t.Errorf("strash entry lost across grow at %d", i)
		}
	}
}

func TestSimulate(t *testing.T) {
	h := network.NewHost()
	a := h.NewInput()
	b := h.NewInput()
	g := h.And(a, b)
	x := h.Xor(a, b)
	h.AddOutput(g)
	h.AddOutput(x)

	pats := tt.ExhaustivePatterns(2)
	vals := h.Simulate(pats)
	wantAnd := tt.And(tt.New(4), pats[0], pats[1])
	wantXor := tt.Xor(tt.New(4), pats[0], pats[1])
	if !tt.Equal(vals[g.Var()], wantAnd) {
		t.Fatal("simulated AND mismatch")
	}
	if !tt.Equal(vals[x.Var()], wantXor) {
		t.Fatal("simulated XOR mismatch")
	}
}

func TestSubstituteRewiresAndDeadMarks(t *testing.T) {
	h := network.NewHost()
	a := h.NewInput()
	b := h.NewInput()
	old := h.And(a, b)
	h.AddOutput(old)

	newLit := h.Xor(a, b) // a different (here: not equivalent, just a stand-in) root
	h.Substitute(network.NodeID(old.Var()), newLit)

	outs := h.Outputs()
	if outs[0] != newLit {
		t.Fatalf("output not rewired: got %s want %s", outs[0], newLit)
	}
	if !h.IsDead(network.NodeID(old.Var())) {
		t.Fatal("old root should be dead-marked after losing its only consumer")
	}
}

func TestSubstituteRestrashesConsumer(t *testing.T) {
	h := network.NewHost()
	a := h.NewInput()
	b := h.NewInput()
	c := h.NewInput()
	old := h.And(a, b)
	consumer := h.And(old, c)
	h.AddOutput(consumer)

	newLit := h.Xor(a, b) // stand-in substitute target, not claimed equivalent
	h.Substitute(network.NodeID(old.Var()), newLit)

	// consumer's fan-in was rewritten from old to newLit in place; a fresh
	// And(newLit, c) must strash back onto the same node rather than
	// allocating a duplicate gate.
	dup := h.And(newLit, c)
	if dup != consumer {
		t.Fatal("stale strash entry: And(newLit, c) allocated a duplicate instead of finding the rewired consumer")
	}
}

func TestMFFCSize(t *testing.T) {
	h := network.NewHost()
	a := h.NewInput()
	b := h.NewInput()
	c := h.NewInput()
	inner := h.And(a, b)
	root := h.And(inner, c)
	h.AddOutput(root)
	if got := h.MFFCSize(network.NodeID(root.Var())); got != 2 {
		t.Fatalf("MFFCSize = %d, want 2 (root + inner)", got)
	}
}
