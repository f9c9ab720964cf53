// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package z provides the literal/variable encoding shared by every other
// package in this module: a variable is a positive integer, a literal packs
// a variable and a polarity bit into a single uint32.
package z

import "fmt"

// Var is a Boolean variable.  Var(0) is reserved and never issued by the
// constructors in this package; real variables start at 1.
type Var uint32

// Pos returns the positive literal for v.
func (v Var) Pos() Lit {
	return Lit(v << 1)
}

// Neg returns the negative literal for v.
func (v Var) Neg() Lit {
	return Lit(v<<1) | 1
}

func (v Var) String() string {
	return fmt.Sprintf("v%d", uint32(v))
}

// Lit is a literal: bit 0 is the inversion flag, bits 1..31 hold the
// variable index.  LitNull is the distinguished "no literal" value.
type Lit uint32

// LitNull marks an absent or malformed literal; it is never a valid
// variable's literal because Var 0 is reserved.
const LitNull = Lit(0)

// Dimacs2Lit converts a nonzero Dimacs-style signed integer into a Lit.
func Dimacs2Lit(d int) Lit {
	if d < 0 {
		return Var(-d).Neg()
	}
	return Var(d).Pos()
}

// Dimacs converts m back to Dimacs-style signed integer form.
func (m Lit) Dimacs() int {
	d := int(m.Var())
	if !m.IsPos() {
		return -d
	}
	return d
}

// Var returns the variable underlying m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// IsPos reports whether m is the positive (unnegated) literal of its
// variable.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Sign returns 1 for a positive literal, -1 for a negative one.
func (m Lit) Sign() int {
	if m.IsPos() {
		return 1
	}
	return -1
}

// Not returns the logical negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

func (m Lit) String() string {
	if m.IsPos() {
		return fmt.Sprintf("%s", m.Var())
	}
	return fmt.Sprintf("-%s", m.Var())
}

// Vars is a bidirectional map between an "outer" numbering of variables
// (e.g. divisor or node ids from a host network) and a dense "inner"
// numbering suitable for compact storage, with free-list reuse of inner
// slots.  It mirrors the variable-renaming facility gini's solver frontend
// uses to keep its own variable space dense regardless of how sparse the
// caller's ids are.
type Vars struct {
	o2i   map[Lit]Lit
	i2o   []Lit
	free  []Lit
	nextV Var
}

// NewVars creates an empty outer/inner variable map.
func NewVars() *Vars {
	return &Vars{
		o2i:   make(map[Lit]Lit),
		i2o:   []Lit{LitNull, LitNull},
		nextV: 1,
	}
}

// ToInner returns the inner literal corresponding to outer literal m,
// allocating a fresh inner variable (preserving polarity) if m's variable
// has not been seen before.
func (vs *Vars) ToInner(m Lit) Lit {
	v := m.Var()
	ov := v.Pos()
	if iv, ok := vs.o2i[ov]; ok {
		if m.IsPos() {
			return iv
		}
		return iv.Not()
	}
	var nv Var
	if n := len(vs.free); n > 0 {
		nv = vs.free[n-1].Var()
		vs.free = vs.free[:n-1]
	} else {
		nv = vs.nextV
		vs.nextV++
		vs.i2o = append(vs.i2o, LitNull)
	}
	inner := nv.Pos()
	vs.o2i[ov] = inner
	vs.i2o[nv] = ov
	if m.IsPos() {
		return inner
	}
	return inner.Not()
}

// ToOuter is the inverse of ToInner.
func (vs *Vars) ToOuter(m Lit) Lit {
	v := m.Var()
	ov := vs.i2o[v]
	if m.IsPos() {
		return ov
	}
	return ov.Not()
}

// Inner allocates a fresh inner-only variable with no outer counterpart.
func (vs *Vars) Inner() Lit {
	var nv Var
	if n := len(vs.free); n > 0 {
		nv = vs.free[n-1].Var()
		vs.free = vs.free[:n-1]
	} else {
		nv = vs.nextV
		vs.nextV++
		vs.i2o = append(vs.i2o, LitNull)
	}
	return nv.Pos()
}

// Free releases an inner variable obtained from Inner or ToInner so it may
// be reused by a later call; it does not remove any outer mapping.
func (vs *Vars) Free(m Lit) {
	vs.free = append(vs.free, m.Var().Pos())
}

func (vs *Vars) String() string {
	return fmt.Sprintf("Vars{n=%d}", vs.nextV-1)
}
