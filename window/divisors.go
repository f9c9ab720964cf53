// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package window

import (
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

// CutSampler down-samples a divisor id list to at most n entries when the
// transitive fan-in exceeds max_divisors; RandCube-shaped (gini's
// gen.RandCuber), so a random sampler can be substituted for the default
// deterministic one.
type CutSampler interface {
	Sample(ids []network.NodeID, n int) []network.NodeID
}

// nearestFirst keeps ids's current prefix (BFS order, so "nearest to the
// root first") truncated to n -- the deterministic default spec §4.2's
// divisor-scoring rule implies ("ordered by distance from n, smaller
// first") when no explicit sampler is configured, preserving the
// reproducibility guarantee of spec §5.
type nearestFirst struct{}

func (nearestFirst) Sample(ids []network.NodeID, n int) []network.NodeID {
	if len(ids) <= n {
		return ids
	}
	return ids[:n]
}

// collectDivisors gathers root's transitive fan-in by breadth-first
// traversal (so the result is naturally distance-ordered, nearest first,
// per spec §4.2's divisor-scoring rule), keeping at most maxPIs distinct
// primary inputs (inputs reached after that are left out, while gates are
// still traversed), and down-samples the result to
// maxDivisors via sampler when the unrestricted set is larger.
func collectDivisors(h *network.Host, root network.NodeID, maxPIs, maxDivisors int, sampler CutSampler) []network.NodeID {
	visited := map[network.NodeID]bool{root: true}
	queue := []network.NodeID{root}
	var order []network.NodeID
	leaves := 0

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		a, b := h.Ins(id)
		if h.Kind(id) == network.KindInput {
			continue
		}
		for _, lit := range [2]z.Lit{a, b} {
			cid := network.NodeID(lit.Var())
			if visited[cid] {
				continue
			}
			visited[cid] = true
			if h.Kind(cid) == network.KindInput {
				leaves++
				if leaves > maxPIs {
					continue
				}
			}
			order = append(order, cid)
			queue = append(queue, cid)
		}
	}

	if sampler == nil {
		sampler = nearestFirst{}
	}
	if len(order) > maxDivisors {
		order = sampler.Sample(order, maxDivisors)
	}
	return order
}

// simulateDivisors returns the (node, table) divisor pairs for ids under
// the given per-primary-input pattern vectors.
func simulateDivisors(h *network.Host, ids []network.NodeID, pats []tt.T) []network.Divisor {
	vals := h.Simulate(pats)
	ds := make([]network.Divisor, 0, len(ids))
	for _, id := range ids {
		ds = append(ds, network.Divisor{Node: id, TT: vals[id]})
	}
	return ds
}
