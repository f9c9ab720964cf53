// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package resynth

import (
	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

// Resynthesize implements the greedy decomposition of spec §4.1.2: a
// strict sequence of cases, first success returns. divisors[0] must be
// the reserved constant (network.DivisorStore's convention); real
// divisors occupy indices 1..D and become index-list inputs 1..D in
// declaration order.
func Resynthesize(target, care tt.T, divisors []network.Divisor, sizeBudget int, cfg Config) (*ilist.List, bool) {
	d := len(divisors) - 1
	if d < 0 {
		d = 0
	}
	l := ilist.New(d)
	lits := make([]litInfo, 0, d)
	for i := 1; i <= d; i++ {
		table := divisors[i].TT
		if cfg.CopyTTs {
			table = table.Clone()
		}
		lits = append(lits, litInfo{lit: z.Var(i).Pos(), table: table, index: i})
	}
	n := target.Len()
	on := tt.And(tt.New(n), target, care)
	off := tt.And(tt.New(n), tt.Not(tt.New(n), target), care)
	out, ok := resolve(l, lits, on, off, care, sizeBudget, cfg)
	if !ok {
		return nil, false
	}
	l.AppendOutput(out)
	return l, true
}

// resolve is the recursive core of the greedy decomposition. It appends
// any gates it commits to directly into l (a single shared builder for
// the whole call, so recursive sub-solutions compose into one flat list)
// and returns the literal realizing (on, off) under budget.
//
// Throughout, "on" doubles as the target to match literals against: its
// bits already equal target∧care, and since every match is itself ANDed
// with care before comparison, a literal's value outside the care region
// never affects the outcome (spec §4.1.1's on-set/off-set convention).
func resolve(l *ilist.List, lits []litInfo, on, off, care tt.T, budget int, cfg Config) (z.Lit, bool) {
	n := on.Len()

	// Step 1: constant / wire. Also serves as step 2 (0-resubstitution):
	// a literal classified simultaneously positive-unate-inverted and
	// negative-unate is, by construction, exactly a literal matching
	// target on care, which this direct scan already finds without
	// needing the classification detour.
	if on.IsZero() {
		return z.Lit(0), true
	}
	if off.IsZero() {
		return z.Lit(1), true
	}
	for _, li := range lits {
		if matchesOnCare(li.table, on, care) {
			return li.lit, true
		}
		negTable := tt.Not(tt.New(n), li.table)
		if matchesOnCare(negTable, on, care) {
			return li.lit.Not(), true
		}
	}

	if budget <= 0 {
		return 0, false
	}

	pos, neg, binate := classifyDivisors(lits, on, off, cfg.MaxBinates)

	// Step 4: 1-resub OR. OR(l1,l2) = ¬AND(¬l1,¬l2); covers on iff the
	// union of their on-coverage is everything on demands.
	if g, ok := tryPairOr(l, pos, on); ok {
		return g, true
	}

	// Step 5: 1-resub AND.
	if g, ok := tryPairAnd(l, neg, off); ok {
		return g, true
	}

	// Step 6: 1-resub XOR among binates.
	if cfg.UseXor && cfg.MaxXor > 0 {
		if g, ok := tryPairXor(l, binate, on, off); ok {
			return g, true
		}
	}

	// Steps 7-10: pairs of binates combined under AND, then one unate
	// literal plus one such pair (2-resub), then pair+pair (3-resub).
	// Steps 8 and 9 add two gates and step 10 adds three, so each runs
	// only when the budget has room for them.
	pairs := collectBinatePairs(binate, on, off)
	if budget >= 2 {
		if g, ok := try2Resub(l, pos, neg, pairs, on, off); ok {
			return g, true
		}
		if cfg.UseXor && cfg.MaxXor > 0 {
			if g, ok := try2ResubXor(l, binate, pairs, on, off); ok {
				return g, true
			}
		}
	}
	if budget >= 3 {
		if g, ok := try3Resub(l, pairs, on, off); ok {
			return g, true
		}
	}

	// Step 11: divide and recurse on the single highest-scoring literal
	// or pair, then compose the recursive result with an outer AND/OR.
	return divideAndRecurse(l, lits, pos, neg, pairs, on, off, care, budget, cfg)
}
