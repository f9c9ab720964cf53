// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package ilist_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

func TestAppendAndXorConstants(t *testing.T) {
	l := ilist.New(2)
	a := z.Var(1).Pos()
	if g := l.AppendAnd(a, a); g != a {
		t.Fatal("a AND a should fold to a")
	}
	if g := l.AppendAnd(a, a.Not()); g != z.Lit(0) {
		t.Fatal("a AND not(a) should fold to constant false")
	}
	if g := l.AppendXor(a, a); g != z.Lit(0) {
		t.Fatal("a XOR a should fold to constant false")
	}
	if g := l.AppendXor(a, a.Not()); g != z.Lit(1) {
		t.Fatal("a XOR not(a) should fold to constant true")
	}
	if l.GateCount() != 0 {
		t.Fatalf("constant folds should not append entries, got %d", l.GateCount())
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	l := ilist.New(3)
	a := z.Var(1).Pos()
	b := z.Var(2).Pos()
	c := z.Var(3).Pos()
	g1 := l.AppendAnd(a, b)
	g2 := l.AppendXor(g1, c)
	l.AppendOutput(g2)

	h, outs, err := ilist.Decode(l)
	if err != nil {
		t.Fatal(err)
	}
	if len(outs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(outs))
	}
	pats := tt.ExhaustivePatterns(3)
	vals := h.Simulate(pats)
	want := tt.Xor(tt.New(8), tt.And(tt.New(8), pats[0], pats[1]), pats[2])
	got := vals[outs[0].Var()]
	if !outs[0].IsPos() {
		got = tt.Not(tt.New(8), got)
	}
	if !tt.Equal(got, want) {
		t.Fatal("decoded network does not compute (a AND b) XOR c")
	}
}

func TestWireRoundTrip(t *testing.T) {
	l := ilist.New(2)
	a := z.Var(1).Pos()
	b := z.Var(2).Pos()
	g := l.AppendAnd(a, b)
	x := l.AppendXor(g, a)
	l.AppendOutput(x)
	l.AppendOutput(g)

	var buf bytes.Buffer
	if err := ilist.Encode(&buf, l); err != nil {
		t.Fatal(err)
	}
	l2, err := ilist.DecodeWire(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(l, l2); diff != "" {
		t.Fatalf("wire round trip changed the list (-want +got):\n%s", diff)
	}
}

func TestTruthRoundTrip(t *testing.T) {
	pats := tt.ExhaustivePatterns(2)
	and := tt.And(tt.New(4), pats[0], pats[1])
	xor := tt.Xor(tt.New(4), pats[0], pats[1])

	var buf bytes.Buffer
	if err := ilist.WriteTruth(&buf, 2, []tt.T{and, xor}); err != nil {
		t.Fatal(err)
	}
	numPIs, outs, err := ilist.ReadTruth(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if numPIs != 2 {
		t.Fatalf("numPIs = %d, want 2", numPIs)
	}
	if len(outs) != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(outs))
	}
	if !tt.Equal(outs[0], and) {
		t.Fatal("AND truth table mismatch after round trip")
	}
	if !tt.Equal(outs[1], xor) {
		t.Fatal("XOR truth table mismatch after round trip")
	}
}
