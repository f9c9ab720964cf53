// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package tt implements the truth-table algebra of the resynthesis engine:
// a dynamic bit-vector of simulation results with bitwise Boolean
// operations, popcount, equality and hashing.  It generalizes the
// bit-parallel evaluation gini's logic.C.Eval64 does over a single uint64
// of patterns to an arbitrary number of pattern words, which is what lets
// the window manager (package window) simulate divisors against either an
// exhaustive pattern set or a partial/random one.
package tt

import (
	"hash/maphash"
	"math/bits"
)

// T is a truth table: a vector of words, each bit a simulation result for
// one input pattern.  The number of meaningful bits is Len(); the backing
// slice may be padded to a whole number of words.
type T struct {
	words []uint64
	nbits int
}

// New returns a zeroed truth table holding nbits bits.
func New(nbits int) T {
	return T{words: make([]uint64, wordsFor(nbits)), nbits: nbits}
}

func wordsFor(nbits int) int {
	return (nbits + 63) / 64
}

// Len returns the number of significant bits in t.
func (t T) Len() int {
	return t.nbits
}

// Words exposes the backing word slice for callers (e.g. window) that need
// to fill in simulation results directly; it is not copied.
func (t T) Words() []uint64 {
	return t.words
}

// Bit returns the i'th simulation bit.
func (t T) Bit(i int) bool {
	return t.words[i/64]&(uint64(1)<<uint(i%64)) != 0
}

// SetBit sets the i'th simulation bit to v.
func (t T) SetBit(i int, v bool) {
	w := i / 64
	mask := uint64(1) << uint(i%64)
	if v {
		t.words[w] |= mask
	} else {
		t.words[w] &^= mask
	}
}

// clearTail zeroes any bits beyond nbits in the last word so popcount,
// equality and IsZero are not polluted by padding.
func (t T) clearTail() {
	if t.nbits%64 == 0 {
		return
	}
	last := len(t.words) - 1
	if last < 0 {
		return
	}
	valid := uint(t.nbits % 64)
	t.words[last] &= (uint64(1) << valid) - 1
}

// Clone returns an independent copy of t.
func (t T) Clone() T {
	ws := make([]uint64, len(t.words))
	copy(ws, t.words)
	return T{words: ws, nbits: t.nbits}
}

// And returns t AND u.
func And(dst, t, u T) T {
	for i := range dst.words {
		dst.words[i] = t.words[i] & u.words[i]
	}
	return dst
}

// Or returns t OR u.
func Or(dst, t, u T) T {
	for i := range dst.words {
		dst.words[i] = t.words[i] | u.words[i]
	}
	return dst
}

// Xor returns t XOR u.
func Xor(dst, t, u T) T {
	for i := range dst.words {
		dst.words[i] = t.words[i] ^ u.words[i]
	}
	return dst
}

// Not returns the bitwise complement of t, clipped to t's length.
func Not(dst, t T) T {
	for i := range dst.words {
		dst.words[i] = ^t.words[i]
	}
	dst.clearTail()
	return dst
}

// PopCount returns the number of set bits in t (ignoring padding).
func (t T) PopCount() int {
	t.clearTail()
	n := 0
	for _, w := range t.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsZero reports whether every significant bit of t is 0.
func (t T) IsZero() bool {
	t.clearTail()
	for _, w := range t.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether t and u agree on every significant bit.
func Equal(t, u T) bool {
	if t.nbits != u.nbits {
		return false
	}
	t.clearTail()
	u.clearTail()
	for i := range t.words {
		if t.words[i] != u.words[i] {
			return false
		}
	}
	return true
}

// IntersectionIsEmpty computes, without materializing an intermediate
// vector, whether
//
//	((p1 ? ¬a : a) ∧ (p2 ? ¬b : b) ∧ mask) == 0
//
// This is the primitive spec §3 names directly; it backs every unateness
// test in package resynth.
func IntersectionIsEmpty(p1, p2 bool, a, b, mask T) bool {
	for i := range mask.words {
		aw, bw := a.words[i], b.words[i]
		if p1 {
			aw = ^aw
		}
		if p2 {
			bw = ^bw
		}
		if aw&bw&mask.words[i] != 0 {
			return false
		}
	}
	return true
}

// seed is process-local and fixed so Hash is reproducible within a run
// (resynthesis determinism, spec §5); it is not meant to be stable across
// processes or used as a security hash.
var seed = maphash.MakeSeed()

// Hash returns a hash of t's significant bits. resynth's A* variant
// interns (on,off) pairs with Key, not Hash.
func (t T) Hash() uint64 {
	t.clearTail()
	var h maphash.Hash
	h.SetSeed(seed)
	buf := make([]byte, 8)
	for _, w := range t.words {
		for i := 0; i < 8; i++ {
			buf[i] = byte(w >> (8 * i))
		}
		h.Write(buf)
	}
	return h.Sum64()
}

// Key returns a comparable value suitable for use as a Go map key encoding
// t's significant content; two truth tables of equal length and content
// produce equal keys.
func (t T) Key() string {
	t.clearTail()
	buf := make([]byte, len(t.words)*8)
	for i, w := range t.words {
		for j := 0; j < 8; j++ {
			buf[i*8+j] = byte(w >> (8 * j))
		}
	}
	return string(buf)
}

// Const returns a truth table of nbits bits, every bit equal to v.
func Const(nbits int, v bool) T {
	t := New(nbits)
	if !v {
		return t
	}
	for i := range t.words {
		t.words[i] = ^uint64(0)
	}
	t.clearTail()
	return t
}
