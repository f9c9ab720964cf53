// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package rcache

import (
	"crypto/sha256"

	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/tt"
)

// op identifies a request/response kind on the wire. Unlike CRISP's
// dozen-odd protocol points (spec'd for a stateful incremental-solve
// session), this protocol is a stateless point lookup: one op byte,
// then a fixed-size key, then (for put) a wire-encoded ilist.List.
type op byte

const (
	opGet op = iota + 1
	opPut
	opHit
	opMiss
	opAck
)

// Key identifies a resubstitution request: the target/care truth
// tables, the ordered set of divisor truth tables, and the size budget
// all participate, since the same target/care pair synthesized against
// a different divisor set or budget is a different lookup.
type Key [32]byte

// ComputeKey hashes a resubstitution request into a Key. The hash is
// over tt.T.Key()'s byte-stable encoding of each table plus the budget,
// so two requests with equal (by content) target/care/divisors/budget
// always collide to the same Key regardless of which Host produced the
// truth tables.
func ComputeKey(target, care tt.T, divisors []network.Divisor, sizeBudget int) Key {
	h := sha256.New()
	h.Write([]byte(target.Key()))
	h.Write([]byte(care.Key()))
	for _, d := range divisors {
		h.Write([]byte(d.TT.Key()))
	}
	var budgetBuf [8]byte
	b := sizeBudget
	for i := range budgetBuf {
		budgetBuf[i] = byte(b)
		b >>= 8
	}
	h.Write(budgetBuf[:])
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}
