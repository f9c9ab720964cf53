// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package network

import "github.com/irifrance/resynth/z"

// composeLit rewrites literal old (a reference to oldID), which itself may
// carry an inversion, into a reference to newLit, preserving the net
// polarity: if old referred to ¬oldID, the result refers to ¬newLit.
func composeLit(old z.Lit, newLit z.Lit) z.Lit {
	if old.IsPos() {
		return newLit
	}
	return newLit.Not()
}

// Substitute rewires every fan-out (and primary output) of old to newLit
// instead, then dead-marks and garbage-collects whatever of old's cone is
// no longer reachable from any remaining output. This is the arena
// operation spec §3/§9 describes: "create new node, rewire parents, mark
// old subtree dead, run mark-sweep cleanup." It is the caller's
// responsibility (package window) to have already validated that old and
// newLit are semantically equivalent on every observed pattern before
// calling Substitute -- Substitute itself performs the edit
// unconditionally and does not check equivalence.
func (h *Host) Substitute(old NodeID, newLit z.Lit) {
	for i, o := range h.outputs {
		if o.Var() == z.Var(old) {
			h.outputs[i] = composeLit(o, newLit)
		}
	}

	consumers := h.fanouts[old]
	delete(h.fanouts, old)
	for consumer := range consumers {
		h.unstrash(consumer)
		n := &h.nodes[consumer]
		if NodeID(n.a.Var()) == old {
			n.a = composeLit(n.a, newLit)
		}
		if NodeID(n.b.Var()) == old {
			n.b = composeLit(n.b, newLit)
		}
		fixOrder(n)
		h.restrash(consumer)
		h.addFanout(NodeID(newLit.Var()), consumer)
	}

	h.sweep(old)
}

// unstrash removes id from its current strash bucket, using id's
// still-unrewritten (kind, a, b) to find the bucket, so that Substitute
// can rewrite a consumer's operands without leaving a stale entry behind
// for gate's structural-hashing lookup to match against.
func (h *Host) unstrash(id NodeID) {
	n := &h.nodes[id]
	c := strashCode(n.kind, n.a, n.b) % uint32(len(h.strash))
	if h.strash[c] == uint32(id) {
		h.strash[c] = n.next
		n.next = 0
		return
	}
	for si := h.strash[c]; si != 0; si = h.nodes[si].next {
		if h.nodes[si].next == uint32(id) {
			h.nodes[si].next = n.next
			n.next = 0
			return
		}
	}
}

// restrash re-inserts id into the strash bucket matching its current
// (kind, a, b), the counterpart to unstrash called once Substitute has
// finished rewriting id's operands.
func (h *Host) restrash(id NodeID) {
	n := &h.nodes[id]
	c := strashCode(n.kind, n.a, n.b) % uint32(len(h.strash))
	n.next = h.strash[c]
	h.strash[c] = uint32(id)
}

// fixOrder restores the AND (a<b) / XOR (a>b) operand-ordering convention
// spec §3 requires after Substitute has rewritten one operand in place;
// both gate kinds are commutative so swapping is always safe.
func fixOrder(n *node) {
	switch n.kind {
	case KindAnd:
		if n.a > n.b {
			n.a, n.b = n.b, n.a
		}
	case KindXor:
		if n.a < n.b {
			n.a, n.b = n.b, n.a
		}
	}
}

// sweep marks id dead if it has no remaining fan-outs and is not a primary
// output, then recurses into its fan-ins, releasing their reference in
// turn. This is the mark-sweep cleanup of spec §3's lifecycle note.
func (h *Host) sweep(id NodeID) {
	n := &h.nodes[id]
	if n.dead || n.kind == KindInput {
		return
	}
	if h.refCount(id) > 0 {
		return
	}
	n.dead = true
	a, b := NodeID(n.a.Var()), NodeID(n.b.Var())
	h.releaseFanout(a, id)
	h.releaseFanout(b, id)
	h.sweep(a)
	if b != a {
		h.sweep(b)
	}
}

func (h *Host) releaseFanout(child, consumer NodeID) {
	m := h.fanouts[child]
	if m == nil {
		return
	}
	delete(m, consumer)
	if len(m) == 0 {
		delete(h.fanouts, child)
	}
}
