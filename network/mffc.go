// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package network

import "github.com/irifrance/resynth/z"

// refCount returns, for node id, the number of distinct fan-outs it has
// within h plus 1 if it is a primary output, i.e. the number of references
// that must be dropped before the node can be considered dead.
func (h *Host) refCount(id NodeID) int {
	n := len(h.fanouts[id])
	for _, o := range h.outputs {
		if o.Var() == z.Var(id) {
			n++
		}
	}
	return n
}

// MFFCSize returns the size of the maximum fanout-free cone rooted at
// root: the number of AND/XOR gates that become dead if root is removed
// (spec glossary, "MFFC"). A node belongs to root's MFFC only if every
// path reaching it from outside root's cone is absent, i.e. root is the
// sole consumer of every path to it.
func (h *Host) MFFCSize(root NodeID) int {
	inCone := make(map[NodeID]int) // references counted from within root's cone
	var mark func(id NodeID)
	mark = func(id NodeID) {
		inCone[id]++
		if inCone[id] > 1 {
			return
		}
		n := &h.nodes[id]
		if n.kind == KindInput {
			return
		}
		mark(NodeID(n.a.Var()))
		mark(NodeID(n.b.Var()))
	}
	n := &h.nodes[root]
	if n.kind != KindInput {
		mark(NodeID(n.a.Var()))
		mark(NodeID(n.b.Var()))
	}

	size := 0
	counted := make(map[NodeID]bool)
	var count func(id NodeID)
	count = func(id NodeID) {
		if counted[id] {
			return
		}
		if h.refCount(id) > inCone[id] {
			return // referenced from outside root's cone: stays alive
		}
		nd := &h.nodes[id]
		if nd.kind == KindInput {
			return
		}
		counted[id] = true
		size++
		count(NodeID(nd.a.Var()))
		count(NodeID(nd.b.Var()))
	}
	// root's own external references (it is always a fan-out itself, or
	// callers would not be asking about replacing it) are irrelevant to
	// whether its fan-ins belong to its MFFC, so descend directly into
	// root's fan-ins rather than running the stay-alive guard on root.
	n = &h.nodes[root]
	if n.kind != KindInput {
		count(NodeID(n.a.Var()))
		count(NodeID(n.b.Var()))
	}
	return size + 1 // root itself
}
