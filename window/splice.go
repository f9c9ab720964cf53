// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package window

import (
	"fmt"

	"github.com/irifrance/resynth/ilist"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/z"
)

// spliceLit replays a validated candidate index list directly into h,
// using ids (in the same declaration order the list's inputs were
// numbered against) as the real nodes backing inputs 1..NumInputs, and
// returns the literal h.Substitute should rewire root's fan-outs to.
// Unlike ilist.Decode (which builds a fresh standalone host for
// simulation), this shares h's strash table, so any gate the candidate
// needs that already exists elsewhere in h is reused rather than
// duplicated.
func spliceLit(h *network.Host, ids []network.NodeID, l *ilist.List) (z.Lit, error) {
	if l.NumInputs != len(ids) {
		return 0, fmt.Errorf("window: candidate has %d inputs, window collected %d divisors", l.NumInputs, len(ids))
	}
	lits := make([]z.Lit, 1, l.NumInputs+len(l.Entries)+1)
	lits[0] = h.F
	for _, id := range ids {
		lits = append(lits, z.Var(id).Pos())
	}
	for _, e := range l.Entries {
		a, err := spliceTranslate(lits, e.A)
		if err != nil {
			return 0, err
		}
		b, err := spliceTranslate(lits, e.B)
		if err != nil {
			return 0, err
		}
		var g z.Lit
		if e.IsXor() {
			g = h.Xor(a, b)
		} else {
			g = h.And(a, b)
		}
		lits = append(lits, g)
	}
	if len(l.Outputs) != 1 {
		return 0, fmt.Errorf("window: candidate must have exactly 1 output, got %d", len(l.Outputs))
	}
	return spliceTranslate(lits, l.Outputs[0])
}

func spliceTranslate(lits []z.Lit, m z.Lit) (z.Lit, error) {
	v := int(m.Var())
	if v >= len(lits) {
		return 0, fmt.Errorf("window: literal %s out of range (have %d variables)", m, len(lits))
	}
	base := lits[v]
	if m.IsPos() {
		return base, nil
	}
	return base.Not(), nil
}
