// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package z

import (
	"fmt"
	"log"
	"math/rand"
	"testing"
)

func TestVar(t *testing.T) {
	v := Var(33)
	m := v.Pos()
	n := v.Neg()
	if m.Sign() != 1 {
		t.Errorf("wrong sign for pos lit %d", m.Sign())
	}
	if n.Sign() != -1 {
		t.Errorf("wrong sign for neg lit %d", n.Sign())
	}
	if m.Not() != n {
		t.Errorf("lit pos/neg not negations")
	}
	if m.Var() != v || n.Var() != v {
		t.Errorf("generated lits not same var")
	}
	if fmt.Sprintf("%s", v) != fmt.Sprintf("v%d", uint32(v)) {
		t.Errorf("format.")
	}
}

func TestVars(t *testing.T) {
	N := 128
	vs := NewVars()
	outers := make([]Lit, 0, N)
	o2i := make([]Lit, N)
	inners := make([]Lit, 0, N)
	for i := 0; i < N; i++ {
		var m Lit
		if i%2 == 0 {
			m = Var(i + 1).Pos()
		} else {
			m = Var(i + 1).Neg()
		}
		outers = append(outers, m)
	}
	p := rand.Perm(N)
	for i := 0; i < N; i++ {
		j := outers[p[i]]
		m := vs.ToInner(j)
		o2i[i] = m
		if rand.Float64() <= 0.13 {
			for k := 0; k < rand.Intn(28); k++ {
				inners = append(inners, vs.Inner())
			}
		}
		if len(inners) > 0 && rand.Float64() <= 0.2 {
			vs.Free(inners[len(inners)-1])
			inners = inners[:len(inners)-1]
		}
	}
	log.Println(vs)
	for i := 0; i < N; i++ {
		j := outers[p[i]]
		m := vs.ToInner(j)
		if o2i[i] != m {
			t.Errorf("non deterministic map %s -> %s", j, m)
		}
		if vs.ToOuter(m) != j {
			t.Errorf("ToOuter(ToInner(%s)) != %s", j, vs.ToOuter(m))
		}
	}
}
