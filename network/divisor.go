// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package network

import "github.com/irifrance/resynth/tt"

// Divisor is a function available for use in a synthesized circuit: the
// host-network node it comes from, and its simulated truth table (spec
// §3, "Divisor").
type Divisor struct {
	Node NodeID
	TT   tt.T
}

// DivisorStore keeps the ordered set of divisors presented to the
// resynthesis engine for one window, together with the node-id -> truth
// table cache for the enclosing network (component C). Divisor index 0 is
// always the reserved constant; real divisors occupy indices 1..D, as
// spec §3 requires.
type DivisorStore struct {
	divisors []Divisor
	byNode   map[NodeID]int // node id -> index into divisors
	ttOf     map[NodeID]tt.T
}

// NewDivisorStore creates a store whose divisor 0 is the constant-false
// pseudo-divisor at NodeID 0.
func NewDivisorStore(nbits int) *DivisorStore {
	s := &DivisorStore{
		byNode: make(map[NodeID]int),
		ttOf:   make(map[NodeID]tt.T),
	}
	s.divisors = append(s.divisors, Divisor{Node: 0, TT: tt.Const(nbits, false)})
	s.byNode[0] = 0
	s.ttOf[0] = s.divisors[0].TT
	return s
}

// Add appends a divisor for node id with truth table table, unless id is
// already present, in which case Add is a no-op and returns the existing
// index.
func (s *DivisorStore) Add(id NodeID, table tt.T) int {
	if i, ok := s.byNode[id]; ok {
		return i
	}
	i := len(s.divisors)
	s.divisors = append(s.divisors, Divisor{Node: id, TT: table})
	s.byNode[id] = i
	s.ttOf[id] = table
	return i
}

// Len returns the number of divisors, including the reserved constant at
// index 0.
func (s *DivisorStore) Len() int {
	return len(s.divisors)
}

// At returns the i'th divisor.
func (s *DivisorStore) At(i int) Divisor {
	return s.divisors[i]
}

// All returns every divisor in the store, in presentation order.
func (s *DivisorStore) All() []Divisor {
	return s.divisors
}

// TT returns the cached truth table for node id, if any has been recorded.
func (s *DivisorStore) TT(id NodeID) (tt.T, bool) {
	t, ok := s.ttOf[id]
	return t, ok
}

// IndexOf returns the divisor index for node id and whether it is present.
func (s *DivisorStore) IndexOf(id NodeID) (int, bool) {
	i, ok := s.byNode[id]
	return i, ok
}
