// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package tt

import "testing"

func fromBits(s string) T {
	t := New(len(s))
	for i, c := range s {
		if c == '1' {
			t.SetBit(i, true)
		}
	}
	return t
}

func TestAndOrXor(t *testing.T) {
	a := fromBits("1100")
	b := fromBits("1010")
	if !Equal(And(New(4), a, b), fromBits("1000")) {
		t.Fatal("and mismatch")
	}
	if !Equal(Or(New(4), a, b), fromBits("1110")) {
		t.Fatal("or mismatch")
	}
	if !Equal(Xor(New(4), a, b), fromBits("0110")) {
		t.Fatal("xor mismatch")
	}
}

func TestNotClipsPadding(t *testing.T) {
	a := fromBits("101")
	n := Not(New(3), a)
	if n.PopCount() != 1 {
		t.Fatalf("not popcount = %d, want 1", n.PopCount())
	}
	if !n.Bit(1) || n.Bit(0) || n.Bit(2) {
		t.Fatalf("not bits wrong: %v", n)
	}
}

func TestPopCountIsZero(t *testing.T) {
	z := New(70)
	if !z.IsZero() {
		t.Fatal("fresh table should be zero")
	}
	z.SetBit(69, true)
	if z.IsZero() || z.PopCount() != 1 {
		t.Fatal("setbit/popcount broken across word boundary")
	}
}

func TestIntersectionIsEmpty(t *testing.T) {
	a := fromBits("1100")
	b := fromBits("0011")
	mask := fromBits("1111")
	if !IntersectionIsEmpty(false, false, a, b, mask) {
		t.Fatal("a and b are disjoint, expected empty intersection")
	}
	if IntersectionIsEmpty(true, false, a, b, mask) {
		t.Fatal("not(a) and b are not disjoint")
	}
}

func TestHashStableAcrossEqualContent(t *testing.T) {
	a := fromBits("110010")
	b := fromBits("110010")
	if a.Hash() != b.Hash() {
		t.Fatal("equal tables hashed differently")
	}
	if a.Key() != b.Key() {
		t.Fatal("equal tables keyed differently")
	}
}

func TestExhaustivePatternsCount(t *testing.T) {
	pats := ExhaustivePatterns(3)
	if len(pats) != 3 {
		t.Fatalf("want 3 patterns, got %d", len(pats))
	}
	if pats[0].Len() != 8 {
		t.Fatalf("want 8 rows, got %d", pats[0].Len())
	}
	// pattern 0 alternates 0,1,0,1,...
	for i := 0; i < 8; i++ {
		want := i&1 != 0
		if pats[0].Bit(i) != want {
			t.Fatalf("pattern 0 bit %d = %v, want %v", i, pats[0].Bit(i), want)
		}
	}
}

func TestRandomPatternsDeterministic(t *testing.T) {
	a := RandomPatterns(4, 2, 42)
	b := RandomPatterns(4, 2, 42)
	for i := range a {
		if !Equal(a[i], b[i]) {
			t.Fatal("same seed produced different patterns")
		}
	}
}
