// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package rcache

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

func TestComputeKeyStableAndDistinguishing(t *testing.T) {
	a := tt.ExhaustivePatterns(2)[0]
	b := tt.ExhaustivePatterns(2)[1]
	divs := []network.Divisor{{Node: 1, TT: a}, {Node: 2, TT: b}}

	k1 := ComputeKey(a, b, divs, 3)
	k2 := ComputeKey(a, b, divs, 3)
	if k1 != k2 {
		t.Fatal("ComputeKey is not deterministic")
	}
	k3 := ComputeKey(a, b, divs, 4)
	if k1 == k3 {
		t.Fatal("different sizeBudget must not collide")
	}
}

func TestServeGetPutOverLoopback(t *testing.T) {
	srv, err := NewServer("localhost:0", 2)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.Close()
	go srv.Serve()

	addr := srv.ln.Addr().String()
	c, err := Dial(addr)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	key := ComputeKey(tt.Const(4, true), tt.Const(4, true), nil, 1)
	if _, ok, err := c.Get(key); err != nil || ok {
		t.Fatalf("expected a miss, got ok=%v err=%v", ok, err)
	}

	l := ilist.New(2)
	l.Entries = append(l.Entries, ilist.Entry{A: z.Var(1).Pos(), B: z.Var(2).Pos()})
	l.Outputs = append(l.Outputs, z.Var(3).Pos())

	if err := c.Put(key, l); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("expected a hit, got ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(l, got); diff != "" {
		t.Fatalf("round-tripped list does not match what was put (-want +got):\n%s", diff)
	}
}
