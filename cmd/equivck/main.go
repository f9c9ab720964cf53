// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Command equivck is the oracle's backing binary: it loads two AIGER
// networks, builds a miter over their outputs, and checks equivalence by
// brute-force truth-table comparison. It prints exactly the line
// "Networks are equivalent" on success, since that is the fixed string
// oracle.Check recognizes; any other line on stdout, or a non-zero exit
// code, means not-equivalent or an error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/irifrance/resynth/aiger"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/z"
)

func main() {
	log.SetFlags(0)
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		log.Fatalf("usage: equivck a.aag b.aag")
	}

	ha, outsA, err := aiger.Read(args[0])
	if err != nil {
		log.Fatalf("equivck: read %s: %s", args[0], err)
	}
	hb, outsB, err := aiger.Read(args[1])
	if err != nil {
		log.Fatalf("equivck: read %s: %s", args[1], err)
	}

	if len(outsA) != len(outsB) {
		fmt.Printf("Networks are not equivalent: output count %d != %d\n", len(outsA), len(outsB))
		os.Exit(1)
	}
	if len(ha.Inputs()) != len(hb.Inputs()) {
		fmt.Printf("Networks are not equivalent: input count %d != %d\n", len(ha.Inputs()), len(hb.Inputs()))
		os.Exit(1)
	}

	miterOut := buildMiter(ha, outsA, hb, outsB)
	ok, counter, err := isUnsat(ha, miterOut)
	if err != nil {
		log.Fatalf("equivck: %s", err)
	}
	if !ok {
		fmt.Printf("Networks are not equivalent: differ at input assignment %v\n", counter)
		os.Exit(1)
	}
	fmt.Println("Networks are equivalent")
}

// buildMiter composes hb's output cone into ha (its inputs aliased
// positionally to ha's own inputs), XORs each pair of corresponding
// outputs, and OR-reduces the differences into a single literal of ha
// that is true exactly when the two networks disagree on some output for
// some input assignment.
func buildMiter(ha *network.Host, outsA []z.Lit, hb *network.Host, outsB []z.Lit) z.Lit {
	inMap := make(map[network.NodeID]z.Lit, len(hb.Inputs()))
	for i, id := range hb.Inputs() {
		inMap[id] = z.Var(ha.Inputs()[i]).Pos()
	}
	memo := make(map[network.NodeID]z.Lit)

	var translateVar func(id network.NodeID) z.Lit
	translateLit := func(m z.Lit) z.Lit {
		base := translateVar(network.NodeID(m.Var()))
		if !m.IsPos() {
			return base.Not()
		}
		return base
	}
	translateVar = func(id network.NodeID) z.Lit {
		if id == 0 {
			return ha.F
		}
		if lit, ok := inMap[id]; ok {
			return lit
		}
		if lit, ok := memo[id]; ok {
			return lit
		}
		a, b := hb.Ins(id)
		la, lb := translateLit(a), translateLit(b)
		var g z.Lit
		if hb.Kind(id) == network.KindXor {
			g = ha.Xor(la, lb)
		} else {
			g = ha.And(la, lb)
		}
		memo[id] = g
		return g
	}

	or := func(a, b z.Lit) z.Lit {
		return ha.And(a.Not(), b.Not()).Not()
	}

	miter := ha.F
	for i := range outsA {
		translatedB := translateLit(outsB[i])
		diff := ha.Xor(outsA[i], translatedB)
		miter = or(miter, diff)
	}
	return miter
}

// isUnsat brute-forces every assignment of ha's inputs and reports
// whether out ever evaluates true; when it does, the assignment is
// returned as a counterexample.
func isUnsat(ha *network.Host, out z.Lit) (bool, []bool, error) {
	n := len(ha.Inputs())
	if n > 24 {
		return false, nil, fmt.Errorf("brute-force equivalence checking is exact only up to 24 inputs, got %d", n)
	}
	total := 1 << uint(n)
	in := make([]bool, n)
	for assign := 0; assign < total; assign++ {
		for i := 0; i < n; i++ {
			in[i] = assign&(1<<uint(i)) != 0
		}
		vals := ha.Eval(in)
		v := vals[int(out.Var())]
		if !out.IsPos() {
			v = !v
		}
		if v {
			return false, append([]bool{}, in...), nil
		}
	}
	return true, nil, nil
}
