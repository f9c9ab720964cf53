// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package resynth implements the resynthesis engine (component D): given a
// target truth table, a care mask, and a pool of divisors, it searches for
// a small index list whose decoded network agrees with target on every
// care bit. Two variants are provided: Resynthesize, a greedy decomposition
// under a uniform (size-only) cost, and ResynthesizeAStar, a cost-aware
// priority-queue search used when the caller supplies a non-uniform
// CostFn (e.g. one that penalizes depth).
package resynth

import "github.com/irifrance/resynth/network"

// Config holds the engine's tunable knobs (spec's configuration-option
// table, translated 1:1 to CamelCase field names).
type Config struct {
	// MaxBinates caps the number of binate divisors kept for pairing.
	MaxBinates int
	// UseXor allows the engine to emit XOR gates.
	UseXor bool
	// MaxXor caps XOR gates along any single expansion branch.
	MaxXor int
	// MaxEnqueue caps A* queue expansions per call.
	MaxEnqueue int
	// CopyTTs controls whether the engine clones divisor truth tables
	// rather than borrowing the caller's; borrowing (false) is the
	// default since divisor tables are immutable for the call's duration
	// (spec §5).
	CopyTTs bool
	// PreserveDepth makes DepthBudget (passed to ResynthesizeAStar) a
	// hard constraint instead of an optimization target.
	PreserveDepth bool

	SizeCostOfAnd, SizeCostOfXor   int
	DepthCostOfAnd, DepthCostOfXor int
}

// DefaultConfig returns the engine defaults named in the spec's
// configuration table.
func DefaultConfig() Config {
	return Config{
		MaxBinates:     50,
		UseXor:         true,
		MaxXor:         1,
		MaxEnqueue:     1000,
		CopyTTs:        false,
		PreserveDepth:  false,
		SizeCostOfAnd:  1,
		SizeCostOfXor:  1,
		DepthCostOfAnd: 1,
		DepthCostOfXor: 1,
	}
}

// Cost is the (size, depth) pair tasks in the A* search are ordered by.
type Cost struct {
	Size, Depth int
}

// Less orders costs lexicographically by size, then depth -- the A*
// search's priority-queue comparator.
func (c Cost) Less(o Cost) bool {
	if c.Size != o.Size {
		return c.Size < o.Size
	}
	return c.Depth < o.Depth
}

// Add combines two child costs and the cost of the gate joining them,
// per SPEC_FULL.md §4.1.5's update rule.
func (c Cost) Add(o Cost, gateSize, gateDepth int) Cost {
	depth := c.Depth
	if o.Depth > depth {
		depth = o.Depth
	}
	return Cost{Size: c.Size + o.Size + gateSize, Depth: depth + gateDepth}
}

// CostFn assigns a base cost to a divisor node. ResynthesizeAStar uses
// UnitCost (Cost{1,1} for every divisor) when given a nil CostFn;
// Resynthesize's greedy path takes no CostFn.
type CostFn func(d network.NodeID) Cost

// UnitCost is the default CostFn: every divisor costs {1,1}.
func UnitCost(network.NodeID) Cost {
	return Cost{Size: 1, Depth: 1}
}
