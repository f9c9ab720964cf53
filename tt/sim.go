// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package tt

import "math/rand"

// ExhaustivePatterns returns the 2^numPIs canonical input patterns for
// numPIs primary inputs: the i'th returned table is the truth table of
// "bit i of the binary expansion of the pattern index", i.e. the usual
// exhaustive simulation vectors.  Valid for numPIs small enough that
// 2^numPIs bits are practical (spec §3's "exhaustive ... simulator",
// k ≤ ~20).
func ExhaustivePatterns(numPIs int) []T {
	n := 1 << uint(numPIs)
	pats := make([]T, numPIs)
	for i := range pats {
		pats[i] = New(n)
	}
	for row := 0; row < n; row++ {
		for i := 0; i < numPIs; i++ {
			if row&(1<<uint(i)) != 0 {
				pats[i].SetBit(row, true)
			}
		}
	}
	return pats
}

// RandomPatterns returns numPIs truth tables of nwords*64 random bits each,
// seeded deterministically by seed so two calls with the same arguments
// reproduce the same patterns (spec §5 determinism).  This is the partial
// simulator spec §3 names for networks too large to simulate exhaustively;
// it is grounded on gini's gen.RandCuber, which samples random literal
// cubes from the same rand.Source discipline.
func RandomPatterns(numPIs, nwords int, seed int64) []T {
	src := rand.New(rand.NewSource(seed))
	pats := make([]T, numPIs)
	for i := range pats {
		t := New(nwords * 64)
		for w := 0; w < nwords; w++ {
			t.words[w] = src.Uint64()
		}
		pats[i] = t
	}
	return pats
}
