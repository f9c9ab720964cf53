// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package aiger

import (
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/z"
)

// andLine is one "lhs rhs0 rhs1" line of the ascii AND section, already
// in AIGER literal form.
type andLine struct{ lhs, r0, r1 uint }

// encoder walks a host's AND/XOR cone in post order and assigns AIGER
// variable numbers, reusing a host NodeID as its own AIGER variable
// directly (both are small dense integers with 0 reserved for the
// constant) and allocating fresh variables past h.Len() only for the
// synthetic AND gates an XOR node expands into.
type encoder struct {
	h       *network.Host
	visited map[z.Var]bool
	xorAig  map[z.Var]uint // host XOR var -> AIGER literal for that var's positive polarity
	nextVar uint
	maxVar  uint
	ands    []andLine
}

func newEncoder(h *network.Host) *encoder {
	return &encoder{
		h:       h,
		visited: make(map[z.Var]bool),
		xorAig:  make(map[z.Var]uint),
		nextVar: uint(h.Len()),
		maxVar:  uint(h.Len() - 1),
	}
}

// aigLit returns the AIGER literal corresponding to host literal m.
func (e *encoder) aigLit(m z.Lit) uint {
	v := m.Var()
	if v != 0 && e.h.Kind(network.NodeID(v)) == network.KindXor {
		lit := e.xorAig[v]
		if !m.IsPos() {
			lit ^= 1
		}
		return lit
	}
	base := uint(v) * 2
	if !m.IsPos() {
		base |= 1
	}
	return base
}

// ensure visits v's fan-in cone (if any) and, for an AND node, appends
// its AND line; for an XOR node it triggers expandXor instead.
func (e *encoder) ensure(v z.Var) {
	if v == 0 || e.visited[v] {
		return
	}
	e.visited[v] = true
	switch e.h.Kind(network.NodeID(v)) {
	case network.KindAnd:
		a, b := e.h.Ins(network.NodeID(v))
		e.ensure(a.Var())
		e.ensure(b.Var())
		e.ands = append(e.ands, andLine{lhs: uint(v) * 2, r0: e.aigLit(a), r1: e.aigLit(b)})
	case network.KindXor:
		a, b := e.h.Ins(network.NodeID(v))
		e.ensure(a.Var())
		e.ensure(b.Var())
		e.expandXor(v, a, b)
	}
}

// expandXor encodes XOR(a,b) as three AND gates via De Morgan:
// t1 = a & ~b, t2 = ~a & b, t3 = ~t1 & ~t2 (= XNOR(a,b)); XOR is ~t3.
func (e *encoder) expandXor(v z.Var, a, b z.Lit) {
	la, lb := e.aigLit(a), e.aigLit(b)
	v1, v2, v3 := e.alloc(), e.alloc(), e.alloc()
	e.ands = append(e.ands,
		andLine{lhs: v1 * 2, r0: la, r1: lb ^ 1},
		andLine{lhs: v2 * 2, r0: la ^ 1, r1: lb},
		andLine{lhs: v3 * 2, r0: v1*2 + 1, r1: v2*2 + 1},
	)
	e.xorAig[v] = v3*2 + 1
}

func (e *encoder) alloc() uint {
	id := e.nextVar
	e.nextVar++
	if id > e.maxVar {
		e.maxVar = id
	}
	return id
}
