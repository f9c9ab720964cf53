// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package relation implements the Boolean-relation solver (component G):
// given a multi-output specification that allows more than one output
// combination per input minterm, it synthesizes one output at a time,
// each call narrowing the remaining freedom for the outputs still to
// come.
package relation

import (
	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/resynth"
	"github.com/irifrance/resynth/tt"
)

// Relation is a multi-output specification over NBits minterms: at each
// minterm, Consistent[m] names which of Vectors remain valid assignments
// for every output simultaneously. Outputs are solved in declaration
// order (spec's Open Question (iii), decided here: no reordering --
// preserving declaration order keeps the solver's behavior predictable
// from the caller's own enumeration of outputs, and the spec gives no
// criterion a reordering heuristic could optimize against).
type Relation struct {
	NumOutputs int
	NBits      int
	Vectors    [][]bool        // each entry is NumOutputs bits long
	Consistent []map[int]bool  // len NBits; Consistent[m] is the set of indices into Vectors still allowed at minterm m
}

// New builds a Relation. consistent may be nil for a minterm, meaning
// every vector in vectors is initially allowed there.
func New(numOutputs, nbits int, vectors [][]bool, consistent []map[int]bool) *Relation {
	r := &Relation{NumOutputs: numOutputs, NBits: nbits, Vectors: vectors, Consistent: make([]map[int]bool, nbits)}
	for m := 0; m < nbits; m++ {
		if consistent != nil && consistent[m] != nil {
			r.Consistent[m] = consistent[m]
			continue
		}
		all := make(map[int]bool, len(vectors))
		for i := range vectors {
			all[i] = true
		}
		r.Consistent[m] = all
	}
	return r
}

// feasible reports whether every minterm still has at least one
// consistent vector.
func (r *Relation) feasible() bool {
	for _, c := range r.Consistent {
		if len(c) == 0 {
			return false
		}
	}
	return true
}

// projectOutput implements step 1: for each minterm, if every remaining
// consistent vector agrees on bit tid, fix tt_out/care_out there;
// otherwise leave it don't-care.
func (r *Relation) projectOutput(tid int) (target, care tt.T) {
	target = tt.New(r.NBits)
	care = tt.New(r.NBits)
	for m := 0; m < r.NBits; m++ {
		agreed, value := true, false
		first := true
		for idx := range r.Consistent[m] {
			v := r.Vectors[idx][tid]
			if first {
				value, first = v, false
			} else if v != value {
				agreed = false
				break
			}
		}
		if !first && agreed {
			care.SetBit(m, true)
			if value {
				target.SetBit(m, true)
			}
		}
	}
	return target, care
}

// propagate implements step 3: given the actual synthesized function for
// output tid (one bit per minterm), drop every vector from each
// minterm's consistent set whose tid-th bit disagrees with the committed
// value there.
func (r *Relation) propagate(tid int, actual tt.T) {
	for m := 0; m < r.NBits; m++ {
		bit := actual.Bit(m)
		for idx := range r.Consistent[m] {
			if r.Vectors[idx][tid] != bit {
				delete(r.Consistent[m], idx)
			}
		}
	}
}

// Solve synthesizes every output in declaration order, returning one
// index list per output, or false if some output has no feasible
// projection (an already-empty consistent set at any minterm, or the
// resynthesis engine exhausting sizeBudget).
func Solve(r *Relation, divisors []network.Divisor, sizeBudget int, cfg resynth.Config) ([]*ilist.List, bool) {
	lists := make([]*ilist.List, 0, r.NumOutputs)
	for tid := 0; tid < r.NumOutputs; tid++ {
		if !r.feasible() {
			return nil, false
		}
		target, care := r.projectOutput(tid)
		l, ok := resynth.Resynthesize(target, care, divisors, sizeBudget, cfg)
		if !ok {
			return nil, false
		}
		actual, err := simulateOutput(l, divisors)
		if err != nil {
			return nil, false
		}
		r.propagate(tid, actual)
		lists = append(lists, l)
	}
	return lists, true
}

func simulateOutput(l *ilist.List, divisors []network.Divisor) (tt.T, error) {
	h, outs, err := ilist.Decode(l)
	if err != nil {
		return tt.T{}, err
	}
	pats := make([]tt.T, l.NumInputs)
	for i := 1; i <= l.NumInputs && i < len(divisors); i++ {
		pats[i-1] = divisors[i].TT
	}
	vals := h.Simulate(pats)
	got := vals[int(outs[0].Var())]
	if !outs[0].IsPos() {
		n := got.Len()
		got = tt.Not(tt.New(n), got)
	}
	return got, nil
}
