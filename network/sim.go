// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package network

import (
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

// Simulate evaluates every node in h against the supplied per-input
// pattern vectors and returns the truth table for every node id up to
// Len(h)-1, indexed by NodeID.  in[i] must be the pattern vector for
// h.Inputs()[i]; all pattern vectors and the result tables share the same
// bit length.  This generalizes gini's logic.C.Eval64 (one fixed uint64 of
// patterns) to an arbitrary tt.T width.
func (h *Host) Simulate(in []tt.T) []tt.T {
	nbits := 1
	if len(in) > 0 {
		nbits = in[0].Len()
	}
	out := make([]tt.T, len(h.nodes))
	out[0] = tt.Const(nbits, false) // node 0, the reserved constant
	inputIdx := make(map[NodeID]int, len(h.inputs))
	for i, id := range h.inputs {
		inputIdx[id] = i
	}
	for id := 1; id < len(h.nodes); id++ {
		n := &h.nodes[id]
		if n.kind == KindInput {
			if i, ok := inputIdx[NodeID(id)]; ok && i < len(in) {
				out[id] = in[i].Clone()
			} else {
				out[id] = tt.New(nbits)
			}
			continue
		}
		a := litVal(out, n.a)
		b := litVal(out, n.b)
		switch n.kind {
		case KindAnd:
			out[id] = tt.And(tt.New(nbits), a, b)
		case KindXor:
			out[id] = tt.Xor(tt.New(nbits), a, b)
		}
	}
	return out
}

// litVal resolves a fan-in literal against a per-node truth-table table,
// applying inversion.
func litVal(vals []tt.T, m z.Lit) tt.T {
	v := vals[m.Var()]
	if m.IsPos() {
		return v
	}
	return tt.Not(tt.New(v.Len()), v)
}

// Eval evaluates h on a single assignment (one bit per input) and returns
// the values of every node, indexed by NodeID.  It mirrors gini's
// logic.C.Eval for single-pattern evaluation, used by tests and by the
// oracle's brute-force equivalence check.
func (h *Host) Eval(in []bool) []bool {
	vals := make([]bool, len(h.nodes))
	inputIdx := make(map[NodeID]int, len(h.inputs))
	for i, id := range h.inputs {
		inputIdx[id] = i
	}
	for id := 1; id < len(h.nodes); id++ {
		n := &h.nodes[id]
		if n.kind == KindInput {
			if i, ok := inputIdx[NodeID(id)]; ok && i < len(in) {
				vals[id] = in[i]
			}
			continue
		}
		a := boolLit(vals, n.a)
		b := boolLit(vals, n.b)
		switch n.kind {
		case KindAnd:
			vals[id] = a && b
		case KindXor:
			vals[id] = a != b
		}
	}
	return vals
}

func boolLit(vals []bool, m z.Lit) bool {
	v := vals[m.Var()]
	if m.IsPos() {
		return v
	}
	return !v
}

// LitValue returns the value of literal m given a full Eval result.
func LitValue(vals []bool, m z.Lit) bool {
	return boolLit(vals, m)
}
