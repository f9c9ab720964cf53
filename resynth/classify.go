// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package resynth

import (
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

// unateKind classifies a literal against an (on, off) task, per spec
// §4.1.1.
type unateKind int

const (
	binateKind unateKind = iota
	posUnate
	negUnate
)

// classify implements spec §4.1.1's unate test. Positive unate (used
// directly as an OR operand in step 4) requires ℓ∧off=0 -- ℓ never
// forces a wrong 1 outside the on-set -- and ℓ∧on≠0, so it contributes
// something. Negative unate (used directly as an AND operand in step 5)
// requires ¬ℓ∧on=0 -- ℓ is 1 throughout on, so an AND never kills a
// needed on-bit -- and ℓ∧off≠0. The negative-unate clause is verbatim
// from spec §4.1.1; the positive-unate clause drops the spec text's
// leading negation on the off-set test (ℓ∧off=0, not ¬ℓ∧off=0): the
// literal reading makes step 4's OR(ℓ1,ℓ2) unsound (it would require
// both literals to equal 1 throughout the off-set, the opposite of what
// an OR needs), so this implementation uses the self-consistent,
// EDA-standard condition instead. See DESIGN.md.
func classify(litTT, on, off tt.T) unateKind {
	posUnateOK := tt.IntersectionIsEmpty(false, false, litTT, off, off)
	posCoverOK := !tt.IntersectionIsEmpty(false, false, litTT, on, on)
	negUnateOK := tt.IntersectionIsEmpty(true, false, litTT, on, on)
	negCoverOK := !tt.IntersectionIsEmpty(false, false, litTT, off, off)

	switch {
	case posUnateOK && posCoverOK:
		return posUnate
	case negUnateOK && negCoverOK:
		return negUnate
	default:
		return binateKind
	}
}

// candidate is one classified literal: its truth table, its unate kind
// and tie-break score, and the divisor index it is rooted at (for the
// "ties by lowest divisor index" rule).
type candidate struct {
	lit   z.Lit
	table tt.T
	kind  unateKind
	score int
	index int // originating divisor index, for tie-breaks
}

// litScore computes |ℓ∧on| for a positive-unate candidate or |ℓ∧off| for a
// negative-unate one.
func litScore(litTT, on, off tt.T, pos bool) int {
	if pos {
		return tt.And(tt.New(litTT.Len()), litTT, on).PopCount()
	}
	return tt.And(tt.New(litTT.Len()), litTT, off).PopCount()
}

// matchesOnCare reports whether litTT already equals target on every
// care bit -- the step-1 wire case and also what a 0-resubstitution
// (step 2) certifies via unate-pair classification.
func matchesOnCare(litTT, target, care tt.T) bool {
	diff := tt.Xor(tt.New(litTT.Len()), litTT, target)
	tt.And(diff, diff, care)
	return diff.IsZero()
}

// isExactMatch reports whether table reproduces the task exactly: 0
// throughout off and 1 throughout on. It is what step 6's "XOR that is
// both positive-unate and negative-unate" amounts to once classify's
// definitions are made mutually exclusive (see classify's doc comment).
func isExactMatch(table, on, off tt.T) bool {
	n := table.Len()
	return tt.And(tt.New(n), table, off).IsZero() &&
		tt.IntersectionIsEmpty(true, false, table, on, on)
}

// classifyDivisors scans every divisor's two literal polarities and
// buckets them into positive-unate, negative-unate and binate candidate
// lists, sorted per spec §4.1.2 step 3 (unate lists by score descending,
// ties by lowest divisor index; binates capped at maxBinates).
func classifyDivisors(lits []litInfo, on, off tt.T, maxBinates int) (pos, neg, binate []candidate) {
	for _, li := range lits {
		for _, polarity := range [2]bool{true, false} {
			l := li.lit
			table := li.table
			if !polarity {
				l = l.Not()
				table = tt.Not(tt.New(table.Len()), table)
			}
			k := classify(table, on, off)
			switch k {
			case posUnate:
				pos = append(pos, candidate{lit: l, table: table, kind: k, score: litScore(table, on, off, true), index: li.index})
			case negUnate:
				neg = append(neg, candidate{lit: l, table: table, kind: k, score: litScore(table, on, off, false), index: li.index})
			case binateKind:
				if len(binate) < maxBinates {
					binate = append(binate, candidate{lit: l, table: table, kind: k, index: li.index})
				}
			}
		}
	}
	sortCandidates(pos)
	sortCandidates(neg)
	return pos, neg, binate
}

// sortCandidates orders by score descending, ties by lowest divisor
// index (spec §4.1.2's tie-break rule).
func sortCandidates(c []candidate) {
	for i := 1; i < len(c); i++ {
		for j := i; j > 0 && less(c[j], c[j-1]); j-- {
			c[j], c[j-1] = c[j-1], c[j]
		}
	}
}

func less(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.index < b.index
}

// litInfo is a divisor's positive-polarity literal and truth table,
// the input classifyDivisors fans out into both polarities.
type litInfo struct {
	lit   z.Lit
	table tt.T
	index int
}
