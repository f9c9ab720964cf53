// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package network implements the host network of spec §3: a gate-level
// AIG/XAG arena of two-input AND/XOR nodes with complemented edges, plus
// the divisor store that tracks simulated truth tables for nodes in that
// arena (component C).  The node table, strashing and bit-parallel
// simulation are adapted from gini's logic.C, generalized to store real
// XOR nodes (gini's C only has AND, deriving OR/XOR via De Morgan) and to
// carry the fan-out/cost/trav-id bookkeeping spec §9's "arena of nodes"
// design note calls for.
package network

import (
	"fmt"

	"github.com/irifrance/resynth/z"
)

// Kind distinguishes a node's role in the network.
type Kind uint8

const (
	// KindInput marks a primary input (or the reserved constant at id 0).
	KindInput Kind = iota
	KindAnd
	KindXor
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "in"
	case KindAnd:
		return "and"
	case KindXor:
		return "xor"
	default:
		return "?"
	}
}

// NodeID identifies a node (gate or input) in a Host arena.  NodeID 0 is
// the reserved dummy constant (spec §3, "node 0 is reserved as a dummy
// constant").
type NodeID uint32

type node struct {
	kind Kind
	a, b z.Lit // fan-ins, meaningless (LitNull) for inputs
	next uint32 // strash chain
	dead bool

	// cost is the per-node annotation read by Cost and written by
	// SetCost. Nothing in this package computes it: it stays zero until a
	// caller stores a value with SetCost.
	size, depth, tdepth int
}

// Host is a gate-level AIG/XAG network: an arena of nodes with explicit
// id fields and a separate fan-out map, exactly as spec §9 prescribes.
// "References" are NodeID arena indices; there is no cyclic ownership.
type Host struct {
	nodes   []node
	strash  []uint32
	fanouts map[NodeID]map[NodeID]struct{}
	travID  []uint32
	cur     uint32
	inputs  []NodeID
	outputs []z.Lit

	// F/T are the constant-false/constant-true literals, both referring
	// to node 0 per spec's literal convention (literal 0 = false,
	// literal 1 = true).
	F, T z.Lit
}

// NewHost creates an empty host network.
func NewHost() *Host {
	return NewHostCap(128)
}

// NewHostCap creates an empty host network with an initial capacity hint.
func NewHostCap(capHint int) *Host {
	h := &Host{
		nodes:   make([]node, 1, capHint),
		strash:  make([]uint32, capHint),
		fanouts: make(map[NodeID]map[NodeID]struct{}, capHint),
		travID:  make([]uint32, 1, capHint),
	}
	h.nodes[0] = node{kind: KindInput} // the reserved constant
	h.F = z.Var(0).Pos()
	h.T = z.Var(0).Neg()
	return h
}

// Len returns one past the highest NodeID ever allocated.
func (h *Host) Len() int {
	return len(h.nodes)
}

// NewInput allocates a fresh primary input and returns its positive
// literal.
func (h *Host) NewInput() z.Lit {
	id := h.alloc(node{kind: KindInput})
	h.inputs = append(h.inputs, id)
	return z.Var(id).Pos()
}

// Inputs returns the ids of every primary input allocated so far, in
// allocation order.
func (h *Host) Inputs() []NodeID {
	return h.inputs
}

// Kind reports the kind of node id.
func (h *Host) Kind(id NodeID) Kind {
	return h.nodes[id].kind
}

// Ins returns the fan-in literals of id; both are z.LitNull for an input.
func (h *Host) Ins(id NodeID) (z.Lit, z.Lit) {
	n := &h.nodes[id]
	return n.a, n.b
}

// IsDead reports whether id has been marked dead by Substitute's cleanup.
func (h *Host) IsDead(id NodeID) bool {
	return h.nodes[id].dead
}

// Cost returns the (size, depth, tdepth) cost annotation last stored for
// id by SetCost; it is zero for a node SetCost was never called on. It is
// not transitively summed across id's cone -- callers needing cone cost
// use MFFCSize or walk Ins themselves.
func (h *Host) Cost(id NodeID) (size, depth, tdepth int) {
	n := &h.nodes[id]
	return n.size, n.depth, n.tdepth
}

// SetCost overwrites id's cost annotation, e.g. to model T-depth for a
// specific gate library. And/Xor do not call it.
func (h *Host) SetCost(id NodeID, size, depth, tdepth int) {
	n := &h.nodes[id]
	n.size, n.depth, n.tdepth = size, depth, tdepth
}

func (h *Host) alloc(n node) NodeID {
	if len(h.nodes)+1 > 2*len(h.strash) {
		h.grow()
	}
	id := NodeID(len(h.nodes))
	h.nodes = append(h.nodes, n)
	h.travID = append(h.travID, 0)
	return id
}

func (h *Host) grow() {
	h.strash = make([]uint32, 2*len(h.strash))
	h.rehash()
}

func (h *Host) rehash() {
	for i := range h.strash {
		h.strash[i] = 0
	}
	for i := 1; i < len(h.nodes); i++ {
		n := &h.nodes[i]
		if n.kind == KindInput || n.dead {
			continue
		}
		c := strashCode(n.kind, n.a, n.b) % uint32(len(h.strash))
		n.next = h.strash[c]
		h.strash[c] = uint32(i)
	}
}

func strashCode(k Kind, a, b z.Lit) uint32 {
	return (uint32(a)*2654435761 + uint32(b)*40503) ^ (uint32(k) << 29)
}

// And returns a literal equivalent to "a AND b", strashing (structural
// hashing, per gini's logic.C.And) so structurally identical gates are
// shared rather than duplicated.
func (h *Host) And(a, b z.Lit) z.Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return h.F
	}
	if a > b {
		a, b = b, a
	}
	if a == h.F {
		return h.F
	}
	if a == h.T {
		return b
	}
	return h.gate(KindAnd, a, b)
}

// Xor returns a literal equivalent to "a XOR b", stored as a genuine XOR
// node (unlike gini's logic.C, which only ever stores AND and derives XOR
// from three ANDs -- spec §3 requires XOR to be a first-class gate kind so
// that the index list's XOR-vs-AND discriminator, §3's ordering
// convention a>b for XOR, has a node to refer to).
func (h *Host) Xor(a, b z.Lit) z.Lit {
	if a == b {
		return h.F
	}
	if a == b.Not() {
		return h.T
	}
	neg := false
	if !a.IsPos() {
		a = a.Not()
		neg = !neg
	}
	if !b.IsPos() {
		b = b.Not()
		neg = !neg
	}
	if b == h.F {
		a, b = b, a
	}
	if a == h.F {
		if neg {
			return b.Not()
		}
		return b
	}
	if a < b {
		a, b = b, a
	}
	g := h.gate(KindXor, a, b)
	if neg {
		return g.Not()
	}
	return g
}

func (h *Host) gate(k Kind, a, b z.Lit) z.Lit {
	c := strashCode(k, a, b) % uint32(len(h.strash))
	for si := h.strash[c]; si != 0; si = h.nodes[si].next {
		n := &h.nodes[si]
		if !n.dead && n.kind == k && n.a == a && n.b == b {
			return z.Var(si).Pos()
		}
	}
	id := h.alloc(node{kind: k, a: a, b: b})
	h.addFanout(NodeID(a.Var()), id)
	h.addFanout(NodeID(b.Var()), id)
	n := &h.nodes[id]
	c = strashCode(k, a, b) % uint32(len(h.strash))
	n.next = h.strash[c]
	h.strash[c] = uint32(id)
	return z.Var(id).Pos()
}

func (h *Host) addFanout(parent, child NodeID) {
	m := h.fanouts[parent]
	if m == nil {
		m = make(map[NodeID]struct{}, 4)
		h.fanouts[parent] = m
	}
	m[child] = struct{}{}
}

// AddOutput marks m as a primary output of h.  Outputs are the external
// "always referenced" roots MFFCSize and Substitute's cleanup pass treat
// as keep-alive, in addition to ordinary internal fan-outs.
func (h *Host) AddOutput(m z.Lit) {
	h.outputs = append(h.outputs, m)
}

// Outputs returns the primary outputs added via AddOutput, in order.
func (h *Host) Outputs() []z.Lit {
	return h.outputs
}

// FanoutsOf returns the ids of every node that has id as a direct fan-in.
func (h *Host) FanoutsOf(id NodeID) []NodeID {
	m := h.fanouts[id]
	res := make([]NodeID, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	return res
}

func (h *Host) String() string {
	return fmt.Sprintf("Host{nodes=%d}", len(h.nodes))
}
