// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package window

import (
	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/tt"
	"github.com/irifrance/resynth/z"
)

// validate re-checks a candidate index list independently of the engine
// that produced it: decode it, simulate it against divTables (one table
// per divisor, in the list's input declaration order) and confirm it
// agrees with target on every care bit. This is spec's "validate via a
// SAT oracle" step, backed by direct simulation rather than a SAT call --
// see DESIGN.md for why no SAT solver is in-tree.
func validate(l *ilist.List, divTables []tt.T, target, care tt.T) bool {
	h, outs, err := ilist.Decode(l)
	if err != nil {
		return false
	}
	if len(outs) != 1 {
		return false
	}
	vals := h.Simulate(divTables)
	return agrees(vals, outs[0], target, care)
}

func agrees(vals []tt.T, out z.Lit, target, care tt.T) bool {
	got := vals[int(out.Var())]
	n := got.Len()
	if !out.IsPos() {
		got = tt.Not(tt.New(n), got)
	}
	diff := tt.Xor(tt.New(n), got, target)
	tt.And(diff, diff, care)
	return diff.IsZero()
}
