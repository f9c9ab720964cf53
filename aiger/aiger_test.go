// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package aiger

import (
	"bytes"
	"testing"

	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
)

func TestWriteReadRoundTripAnd(t *testing.T) {
	h := network.NewHost()
	p1 := h.NewInput()
	p2 := h.NewInput()
	g := h.And(p1, p2)
	h.AddOutput(g)

	var buf bytes.Buffer
	if err := WriteTo(&buf, h, h.Outputs()); err != nil {
		t.Fatalf("write: %v", err)
	}

	h2, outs2, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("read: %v\n%s", err, buf.String())
	}
	if len(outs2) != 1 {
		t.Fatalf("expected 1 output, got %d", len(outs2))
	}

	pats := tt.ExhaustivePatterns(2)
	vals1 := h.Simulate(pats)
	want := vals1[int(g.Var())]
	if !g.IsPos() {
		want = tt.Not(tt.New(want.Len()), want)
	}

	vals2 := h2.Simulate(pats)
	got := vals2[int(outs2[0].Var())]
	if !outs2[0].IsPos() {
		got = tt.Not(tt.New(got.Len()), got)
	}
	if !tt.Equal(got, want) {
		t.Fatal("round-tripped AND gate does not match original")
	}
}

func TestWriteReadRoundTripXor(t *testing.T) {
	h := network.NewHost()
	p1 := h.NewInput()
	p2 := h.NewInput()
	g := h.Xor(p1, p2)
	h.AddOutput(g)

	var buf bytes.Buffer
	if err := WriteTo(&buf, h, h.Outputs()); err != nil {
		t.Fatalf("write: %v", err)
	}

	h2, outs2, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("read: %v\n%s", err, buf.String())
	}

	pats := tt.ExhaustivePatterns(2)
	vals1 := h.Simulate(pats)
	want := vals1[int(g.Var())]
	if !g.IsPos() {
		want = tt.Not(tt.New(want.Len()), want)
	}

	vals2 := h2.Simulate(pats)
	got := vals2[int(outs2[0].Var())]
	if !outs2[0].IsPos() {
		got = tt.Not(tt.New(got.Len()), got)
	}
	if !tt.Equal(got, want) {
		t.Fatal("round-tripped XOR gate does not match original; De Morgan expansion is wrong")
	}
}

func TestReadRejectsLatches(t *testing.T) {
	src := "aag 1 0 1 0 0 0 0 0 0\n2 0\n"
	_, _, err := ReadFrom(bytes.NewBufferString(src))
	if err == nil {
		t.Fatal("expected an error for a file declaring a latch")
	}
}
