// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package relation_test

import (
	"testing"

	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/relation"
	"github.com/irifrance/resynth/resynth"
	"github.com/irifrance/resynth/tt"
)

func TestSolveFunctionalRelation(t *testing.T) {
	pats := tt.ExhaustivePatterns(2)
	n := 4
	and := tt.And(tt.New(n), pats[0], pats[1])
	xor := tt.Xor(tt.New(n), pats[0], pats[1])

	vectors := make([][]bool, n)
	for m := 0; m < n; m++ {
		vectors[m] = []bool{and.Bit(m), xor.Bit(m)}
	}
	consistent := make([]map[int]bool, n)
	for m := 0; m < n; m++ {
		consistent[m] = map[int]bool{m: true}
	}
	rel := relation.New(2, n, vectors, consistent)

	divs := []network.Divisor{
		{Node: 0, TT: tt.Const(n, false)},
		{Node: 1, TT: pats[0]},
		{Node: 2, TT: pats[1]},
	}

	lists, ok := relation.Solve(rel, divs, 2, resynth.DefaultConfig())
	if !ok {
		t.Fatal("expected a solution")
	}
	if len(lists) != 2 {
		t.Fatalf("expected 2 index lists, got %d", len(lists))
	}

	got0 := decodeAndRun(t, lists[0], pats)
	if !tt.Equal(got0, and) {
		t.Fatal("output 0 does not equal AND(p0,p1)")
	}
	got1 := decodeAndRun(t, lists[1], pats)
	if !tt.Equal(got1, xor) {
		t.Fatal("output 1 does not equal XOR(p0,p1)")
	}
}

func decodeAndRun(t *testing.T, l *ilist.List, pats []tt.T) tt.T {
	t.Helper()
	h, outs, err := ilist.Decode(l)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	vals := h.Simulate(pats)
	got := vals[int(outs[0].Var())]
	if !outs[0].IsPos() {
		got = tt.Not(tt.New(got.Len()), got)
	}
	return got
}

func TestSolveGenuineRelationLeavesFreedom(t *testing.T) {
	pats := tt.ExhaustivePatterns(2)
	n := 4
	// output 0 may be either AND or OR at every minterm: a genuine
	// (non-functional) relation, not just an under-constrained function.
	and := tt.And(tt.New(n), pats[0], pats[1])
	or := tt.Or(tt.New(n), pats[0], pats[1])

	vectors := [][]bool{{false}, {true}}
	consistent := make([]map[int]bool, n)
	for m := 0; m < n; m++ {
		c := map[int]bool{}
		if and.Bit(m) {
			c[1] = true
		} else {
			c[0] = true
		}
		if or.Bit(m) {
			c[1] = true
		} else {
			c[0] = true
		}
		consistent[m] = c
	}
	rel := relation.New(1, n, vectors, consistent)
	divs := []network.Divisor{
		{Node: 0, TT: tt.Const(n, false)},
		{Node: 1, TT: pats[0]},
		{Node: 2, TT: pats[1]},
	}
	lists, ok := relation.Solve(rel, divs, 1, resynth.DefaultConfig())
	if !ok {
		t.Fatal("expected a solution: AND and OR agree everywhere except both minterms are individually allowed")
	}
	if len(lists) != 1 {
		t.Fatalf("expected 1 index list, got %d", len(lists))
	}
}
