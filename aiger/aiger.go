// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package aiger implements a deliberately small ASCII AIGER (v1.9) reader
// and writer, adapted from gini's logic/aiger. Only the combinational
// subset is supported (no latches, bad-state, constraint, justice or
// fairness sections) since the host networks this module resynthesizes
// are themselves purely combinational; a file declaring any of those
// sections is rejected with an error rather than silently dropped.
//
// AIGER has no native XOR gate. Read always produces a pure AND network.
// Write, when handed a host containing XOR nodes, expands each one into
// AND/inverter gates (De Morgan) on the fly; the written file is a valid
// plain AIG, just larger than the in-memory XAG it came from.
package aiger

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/z"
)

// Read parses the ASCII AIGER file at path into a fresh host network and
// returns its output literals, in file order.
func Read(path string) (*network.Host, []z.Lit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("aiger: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFrom(f)
}

// ReadFrom parses an ASCII AIGER stream.
func ReadFrom(r io.Reader) (*network.Host, []z.Lit, error) {
	br := bufio.NewReader(r)
	hdr, err := readHeader(br)
	if err != nil {
		return nil, nil, fmt.Errorf("aiger: header: %w", err)
	}
	if hdr.latch != 0 || hdr.bad != 0 || hdr.constraint != 0 || hdr.justice != 0 || hdr.fair != 0 {
		return nil, nil, fmt.Errorf("aiger: only combinational files (L=B=C=J=F=0) are supported")
	}

	h := network.NewHost()
	// varMap[aiger var index] -> host literal for that var's positive
	// polarity; index 0 (the constant) maps to h.F.
	varMap := make([]z.Lit, hdr.max+1)
	varMap[0] = h.F
	// defined[v] records that varMap[v] has been assigned; a gate that
	// folds to the constant maps to h.F, which equals z.LitNull, so the
	// literal value alone cannot tell a defined var from an undefined one.
	defined := make([]bool, hdr.max+1)
	defined[0] = true

	litFor := func(aigLit uint) (z.Lit, error) {
		v := aigLit >> 1
		if v >= uint(len(varMap)) {
			return z.LitNull, fmt.Errorf("aiger: literal %d out of range", aigLit)
		}
		m := varMap[v]
		if !defined[v] {
			return z.LitNull, fmt.Errorf("aiger: literal %d used before definition", aigLit)
		}
		if aigLit&1 != 0 {
			return m.Not(), nil
		}
		return m, nil
	}

	for i := uint(0); i < hdr.in; i++ {
		lit, err := readUint(br)
		if err != nil {
			return nil, nil, fmt.Errorf("aiger: input %d: %w", i, err)
		}
		if lit&1 != 0 {
			return nil, nil, fmt.Errorf("aiger: input %d literal %d must be even", i, lit)
		}
		if err := readNL(br); err != nil {
			return nil, nil, err
		}
		v := lit >> 1
		if v == 0 || v >= uint(len(varMap)) {
			return nil, nil, fmt.Errorf("aiger: input literal %d out of range", lit)
		}
		varMap[v] = h.NewInput()
		defined[v] = true
	}

	outLits := make([]uint, 0, hdr.out)
	for i := uint(0); i < hdr.out; i++ {
		lit, err := readUint(br)
		if err != nil {
			return nil, nil, fmt.Errorf("aiger: output %d: %w", i, err)
		}
		if err := readNL(br); err != nil {
			return nil, nil, err
		}
		outLits = append(outLits, lit)
	}

	type andDef struct{ lhs, r0, r1 uint }
	ands := make([]andDef, 0, hdr.and)
	for i := uint(0); i < hdr.and; i++ {
		lhs, err := readUint(br)
		if err != nil {
			return nil, nil, fmt.Errorf("aiger: and %d lhs: %w", i, err)
		}
		if err := readWS(br); err != nil {
			return nil, nil, err
		}
		r0, err := readUint(br)
		if err != nil {
			return nil, nil, fmt.Errorf("aiger: and %d rhs0: %w", i, err)
		}
		if err := readWS(br); err != nil {
			return nil, nil, err
		}
		r1, err := readUint(br)
		if err != nil {
			return nil, nil, fmt.Errorf("aiger: and %d rhs1: %w", i, err)
		}
		if err := readNL(br); err != nil {
			return nil, nil, err
		}
		ands = append(ands, andDef{lhs, r0, r1})
	}

	// AIGER and gates are listed in an order where each gate's inputs are
	// defined before the gate itself (lower aiger-literal variables come
	// first); a single forward pass suffices.
	for _, ag := range ands {
		v := ag.lhs >> 1
		if ag.lhs&1 != 0 || v == 0 || v >= uint(len(varMap)) {
			return nil, nil, fmt.Errorf("aiger: and gate lhs %d invalid", ag.lhs)
		}
		a, err := litFor(ag.r0)
		if err != nil {
			return nil, nil, err
		}
		b, err := litFor(ag.r1)
		if err != nil {
			return nil, nil, err
		}
		varMap[v] = h.And(a, b)
		defined[v] = true
	}

	outs := make([]z.Lit, 0, len(outLits))
	for _, u := range outLits {
		lit, err := litFor(u)
		if err != nil {
			return nil, nil, err
		}
		h.AddOutput(lit)
		outs = append(outs, lit)
	}
	return h, outs, nil
}

// Write serializes h's reachable cone of outs to path in ASCII AIGER
// format. outs need not be h.Outputs(); callers writing an intermediate
// window-manager candidate pass whatever output set they care about.
func Write(h *network.Host, outs []z.Lit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("aiger: create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTo(f, h, outs)
}

// WriteTo serializes h's reachable cone of outs to w in ASCII AIGER
// format, expanding any XOR node into AND/inverter gates since AIGER has
// no native XOR.
func WriteTo(w io.Writer, h *network.Host, outs []z.Lit) error {
	enc := newEncoder(h)
	for _, o := range outs {
		enc.ensure(o.Var())
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "aag %d %d 0 %d %d 0 0 0 0\n", enc.maxVar, len(h.Inputs()), len(outs), len(enc.ands))
	for _, id := range h.Inputs() {
		fmt.Fprintf(bw, "%d\n", enc.aigLit(z.Var(id).Pos()))
	}
	for _, o := range outs {
		fmt.Fprintf(bw, "%d\n", enc.aigLit(o))
	}
	for _, a := range enc.ands {
		fmt.Fprintf(bw, "%d %d %d\n", a.lhs, a.r0, a.r1)
	}
	bw.WriteString("c\nwritten by resynth\n")
	return bw.Flush()
}
