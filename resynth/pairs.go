// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package resynth

import (
	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

// pair is an AND- or XOR-combined binate divisor pair that turned out to
// be unate with respect to the current task (spec §4.1.2 step 7), used
// as a single composite unit in 2- and 3-resubstitution.
type pair struct {
	l1, l2 z.Lit
	table  tt.T
	kind   unateKind
	score  int
}

// covers reports whether table is 1 on every bit target demands (used
// for OR-style coverage checks: table ⊇ target).
func covers(table, target tt.T) bool {
	n := target.Len()
	notT := tt.Not(tt.New(n), table)
	return tt.And(notT, notT, target).IsZero()
}

// tryPairOr implements step 4: two positive-unate literals whose union
// covers on, combined as OR(ℓ1,ℓ2) = ¬AND(¬ℓ1,¬ℓ2). Candidates are
// pre-sorted by score descending; pairs whose combined score cannot
// possibly reach |on| are skipped (spec's stated pruning threshold).
func tryPairOr(l *ilist.List, pos []candidate, on tt.T) (z.Lit, bool) {
	need := on.PopCount()
	n := on.Len()
	for i := 0; i < len(pos); i++ {
		for j := i + 1; j < len(pos); j++ {
			if pos[i].score+pos[j].score < need {
				continue
			}
			union := tt.Or(tt.New(n), pos[i].table, pos[j].table)
			if covers(union, on) {
				return l.AppendAnd(pos[i].lit.Not(), pos[j].lit.Not()).Not(), true
			}
		}
	}
	return 0, false
}

// tryPairAnd implements step 5: two negative-unate literals combined as
// AND(ℓ1,ℓ2); correct whenever the AND never spuriously covers an
// off-bit (each individually already guarantees on-coverage, spec
// §4.1.1's negative-unate condition).
func tryPairAnd(l *ilist.List, neg []candidate, off tt.T) (z.Lit, bool) {
	n := off.Len()
	for i := 0; i < len(neg); i++ {
		for j := i + 1; j < len(neg); j++ {
			andTable := tt.And(tt.New(n), neg[i].table, neg[j].table)
			if tt.And(tt.New(n), andTable, off).IsZero() {
				return l.AppendAnd(neg[i].lit, neg[j].lit), true
			}
		}
	}
	return 0, false
}

// tryPairXor implements step 6: among binate divisors, any pair whose
// XOR exactly reproduces the task.
func tryPairXor(l *ilist.List, binate []candidate, on, off tt.T) (z.Lit, bool) {
	n := on.Len()
	for i := 0; i < len(binate); i++ {
		for j := i + 1; j < len(binate); j++ {
			if binate[i].index == binate[j].index {
				continue
			}
			table := tt.Xor(tt.New(n), binate[i].table, binate[j].table)
			if isExactMatch(table, on, off) {
				return l.AppendXor(binate[i].lit, binate[j].lit), true
			}
		}
	}
	return 0, false
}

// collectBinatePairs implements step 7: AND-combine every pair of
// binate divisor literals (the binate list already enumerates both
// polarities, so this covers "all four polarity assignments"); keep
// combinations that turn out unate, sorted by score descending.
func collectBinatePairs(binate []candidate, on, off tt.T) []pair {
	n := on.Len()
	var pairs []pair
	for i := 0; i < len(binate); i++ {
		for j := i + 1; j < len(binate); j++ {
			if binate[i].index == binate[j].index {
				continue
			}
			table := tt.And(tt.New(n), binate[i].table, binate[j].table)
			k := classify(table, on, off)
			if k == binateKind {
				continue
			}
			var score int
			if k == posUnate {
				score = tt.And(tt.New(n), table, on).PopCount()
			} else {
				score = tt.And(tt.New(n), table, off).PopCount()
			}
			pairs = append(pairs, pair{l1: binate[i].lit, l2: binate[j].lit, table: table, kind: k, score: score})
		}
	}
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j].score > pairs[j-1].score; j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
	return pairs
}

// try2Resub implements step 8: one unate literal plus one unate pair
// covering the remaining mask, OR-combined (positive side) or
// AND-combined (negative side).
func try2Resub(l *ilist.List, pos, neg []candidate, pairs []pair, on, off tt.T) (z.Lit, bool) {
	n := on.Len()
	for _, p := range pairs {
		if p.kind == posUnate {
			for _, c := range pos {
				union := tt.Or(tt.New(n), c.table, p.table)
				if covers(union, on) {
					pairLit := l.AppendAnd(p.l1, p.l2)
					return l.AppendAnd(c.lit.Not(), pairLit.Not()).Not(), true
				}
			}
		} else {
			for _, c := range neg {
				andTable := tt.And(tt.New(n), c.table, p.table)
				if tt.And(tt.New(n), andTable, off).IsZero() {
					pairLit := l.AppendAnd(p.l1, p.l2)
					return l.AppendAnd(c.lit, pairLit), true
				}
			}
		}
	}
	return 0, false
}

// try2ResubXor implements step 9: a literal OR-combined with a
// positive-unate XOR-built pair. The literal is taken from the binate
// list and is used only where it is 0 on every off bit, so the OR never
// covers an off bit.
func try2ResubXor(l *ilist.List, binate []candidate, pairs []pair, on, off tt.T) (z.Lit, bool) {
	n := on.Len()
	var xorPairs []pair
	for i := 0; i < len(binate); i++ {
		for j := i + 1; j < len(binate); j++ {
			if binate[i].index == binate[j].index {
				continue
			}
			table := tt.Xor(tt.New(n), binate[i].table, binate[j].table)
			k := classify(table, on, off)
			if k == binateKind {
				continue
			}
			xorPairs = append(xorPairs, pair{l1: binate[i].lit, l2: binate[j].lit, table: table, kind: k})
		}
	}
	for _, p := range xorPairs {
		if p.kind == posUnate {
			for i := 0; i < len(binate); i++ {
				if !tt.And(tt.New(n), binate[i].table, off).IsZero() {
					continue
				}
				union := tt.Or(tt.New(n), binate[i].table, p.table)
				if covers(union, on) {
					pairLit := l.AppendXor(p.l1, p.l2)
					return l.AppendAnd(binate[i].lit.Not(), pairLit.Not()).Not(), true
				}
			}
		}
	}
	return 0, false
}

// try3Resub implements step 10: two unate pairs combined, AND on the
// negative side or OR on the positive side.
func try3Resub(l *ilist.List, pairs []pair, on, off tt.T) (z.Lit, bool) {
	n := on.Len()
	for i := 0; i < len(pairs); i++ {
		for j := i + 1; j < len(pairs); j++ {
			if pairs[i].kind != pairs[j].kind {
				continue
			}
			if pairs[i].kind == posUnate {
				union := tt.Or(tt.New(n), pairs[i].table, pairs[j].table)
				if covers(union, on) {
					l1 := l.AppendAnd(pairs[i].l1, pairs[i].l2)
					l2 := l.AppendAnd(pairs[j].l1, pairs[j].l2)
					return l.AppendAnd(l1.Not(), l2.Not()).Not(), true
				}
			} else {
				andTable := tt.And(tt.New(n), pairs[i].table, pairs[j].table)
				if tt.And(tt.New(n), andTable, off).IsZero() {
					l1 := l.AppendAnd(pairs[i].l1, pairs[i].l2)
					l2 := l.AppendAnd(pairs[j].l1, pairs[j].l2)
					return l.AppendAnd(l1, l2), true
				}
			}
		}
	}
	return 0, false
}

// divideAndRecurse implements step 11: pick the single highest-scoring
// literal or pair (a literal wins ties when its score exceeds half the
// best pair's score, per spec §4.1.2's tie-break rule), subtract its
// coverage from the relevant set, and recurse with a reduced budget,
// composing the result with an outer AND/OR.
func divideAndRecurse(l *ilist.List, lits []litInfo, pos, neg []candidate, pairs []pair, on, off, care tt.T, budget int, cfg Config) (z.Lit, bool) {
	n := on.Len()

	var bestLit *candidate
	positive := true
	if len(pos) > 0 {
		bestLit = &pos[0]
		positive = true
	}
	if len(neg) > 0 && (bestLit == nil || neg[0].score > bestLit.score) {
		bestLit = &neg[0]
		positive = false
	}
	var bestPair *pair
	if len(pairs) > 0 {
		bestPair = &pairs[0]
	}

	useLit := bestLit != nil && (bestPair == nil || bestLit.score > bestPair.score/2)

	if useLit {
		if positive {
			on2 := tt.New(n)
			notCovered := tt.Not(tt.New(n), bestLit.table)
			tt.And(on2, on, notCovered)
			sub, ok := resolve(l, lits, on2, off, care, budget-1, cfg)
			if !ok {
				return 0, false
			}
			return l.AppendAnd(bestLit.lit.Not(), sub.Not()).Not(), true
		}
		off2 := tt.New(n)
		notCovered := tt.Not(tt.New(n), bestLit.table)
		tt.And(off2, off, notCovered)
		sub, ok := resolve(l, lits, on, off2, care, budget-1, cfg)
		if !ok {
			return 0, false
		}
		return l.AppendAnd(bestLit.lit, sub), true
	}

	if bestPair == nil {
		return 0, false
	}
	if budget < 2 {
		return 0, false
	}
	pairLit := l.AppendAnd(bestPair.l1, bestPair.l2)
	if bestPair.kind == posUnate {
		on2 := tt.New(n)
		notCovered := tt.Not(tt.New(n), bestPair.table)
		tt.And(on2, on, notCovered)
		sub, ok := resolve(l, lits, on2, off, care, budget-2, cfg)
		if !ok {
			return 0, false
		}
		return l.AppendAnd(pairLit.Not(), sub.Not()).Not(), true
	}
	off2 := tt.New(n)
	notCovered := tt.Not(tt.New(n), bestPair.table)
	tt.And(off2, off, notCovered)
	sub, ok := resolve(l, lits, on, off2, care, budget-2, cfg)
	if !ok {
		return 0, false
	}
	return l.AppendAnd(pairLit, sub), true
}
