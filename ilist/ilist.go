// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package ilist implements the index list of spec §3 (component B): an
// append-only, flat encoding of a small gate network over divisors, and
// its deterministic decoding back into a network.Host. The append-only
// discipline and the convention that a gate's two fan-in literals
// distinguish AND (a<b) from XOR (a>b) mirror how gini's logic.C commits
// gates (strashed, by construction) and how spec §3 fixes the wire
// encoding so no separate opcode tag is needed.
package ilist

import (
	"fmt"

	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/z"
)

// Entry is one AND or XOR gate in a List. The relative order of A and B
// records which: A<B is an AND, A>B is an XOR (spec §3). A==B never
// occurs in a well-formed entry.
type Entry struct {
	A, B z.Lit
}

// IsXor reports whether e encodes an XOR gate (A>B) rather than an AND
// (A<B).
func (e Entry) IsXor() bool {
	return e.A > e.B
}

// List is an append-only index list: a header declaring input arity, a
// body of gate Entries, and the output literals selected from among the
// inputs and gates. Fan-ins of an entry must refer only to earlier
// literals or inputs (spec §3's well-formedness invariant); List's
// append-only API enforces this by construction -- there is no way to
// reference a literal that has not yet been produced.
type List struct {
	NumInputs int
	Entries   []Entry
	Outputs   []z.Lit
}

// New creates an empty index list declaring numInputs primary inputs.
// Divisor/input variable 0 is always the reserved constant (spec §3);
// inputs 1..numInputs follow.
func New(numInputs int) *List {
	return &List{NumInputs: numInputs}
}

// AppendAnd appends an AND(a,b) entry and returns its literal. a and b
// must each refer to the constant, an input, or an earlier entry; And
// canonicalizes the a<b ordering itself, same as network.Host.And.
func (l *List) AppendAnd(a, b z.Lit) z.Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return z.Lit(0) // constant false
	}
	if a > b {
		a, b = b, a
	}
	if a == z.Lit(0) {
		return z.Lit(0) // constant false
	}
	if a == z.Lit(1) {
		return b // constant true
	}
	l.Entries = append(l.Entries, Entry{A: a, B: b})
	return l.nextVarBeforeAppend().Pos()
}

// nextVarBeforeAppend returns the variable just assigned to the entry
// that was appended immediately before this call.
func (l *List) nextVarBeforeAppend() z.Var {
	return z.Var(l.NumInputs + len(l.Entries))
}

// AppendXor appends an XOR(a,b) entry and returns its literal, using a>b
// as the discriminator against AND (spec §3, §9 Open Question (i)): this
// ordering convention must be preserved exactly by every producer and
// consumer of a List, since it is the only signal that tells AND and XOR
// apart on the wire.
func (l *List) AppendXor(a, b z.Lit) z.Lit {
	neg := false
	if !a.IsPos() {
		a, neg = a.Not(), !neg
	}
	if !b.IsPos() {
		b, neg = b.Not(), !neg
	}
	if a == b {
		if neg {
			return z.Lit(1)
		}
		return z.Lit(0)
	}
	if a == z.Lit(0) {
		if neg {
			return b.Not()
		}
		return b
	}
	if b == z.Lit(0) {
		if neg {
			return a.Not()
		}
		return a
	}
	if a < b {
		a, b = b, a
	}
	l.Entries = append(l.Entries, Entry{A: a, B: b})
	g := l.nextVarBeforeAppend().Pos()
	if neg {
		return g.Not()
	}
	return g
}

// AppendOutput marks lit as an output of l.
func (l *List) AppendOutput(lit z.Lit) {
	l.Outputs = append(l.Outputs, lit)
}

// GateCount returns the number of AND/XOR entries, i.e. the network's gate
// count (spec I2, "decode(L).gate_count <= size_budget").
func (l *List) GateCount() int {
	return len(l.Entries)
}

// Decode reconstructs a gate-level network.Host from l, deterministically
// (spec R1, decode ∘ encode = id). The returned slice gives, for each
// declared output in order, the corresponding literal in the new host.
func Decode(l *List) (*network.Host, []z.Lit, error) {
	h := network.NewHostCap(l.NumInputs + len(l.Entries) + 1)
	lits := make([]z.Lit, 1, l.NumInputs+len(l.Entries)+1)
	lits[0] = h.F
	for i := 0; i < l.NumInputs; i++ {
		lits = append(lits, h.NewInput())
	}
	for i, e := range l.Entries {
		v := z.Var(l.NumInputs + 1 + i)
		if int(v) != len(lits) {
			return nil, nil, fmt.Errorf("ilist: entry %d fan-in out of range", i)
		}
		a, e1 := translate(lits, e.A)
		b, e2 := translate(lits, e.B)
		if e1 != nil {
			return nil, nil, e1
		}
		if e2 != nil {
			return nil, nil, e2
		}
		var g z.Lit
		if e.IsXor() {
			g = h.Xor(a, b)
		} else {
			g = h.And(a, b)
		}
		lits = append(lits, g)
	}
	outs := make([]z.Lit, 0, len(l.Outputs))
	for _, o := range l.Outputs {
		lit, err := translate(lits, o)
		if err != nil {
			return nil, nil, err
		}
		outs = append(outs, lit)
		h.AddOutput(lit)
	}
	return h, outs, nil
}

func translate(lits []z.Lit, m z.Lit) (z.Lit, error) {
	v := int(m.Var())
	if v >= len(lits) {
		return 0, fmt.Errorf("ilist: literal %s out of range (have %d variables)", m, len(lits))
	}
	base := lits[v]
	if m.IsPos() {
		return base, nil
	}
	return base.Not(), nil
}
