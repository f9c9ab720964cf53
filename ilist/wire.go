// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package ilist

import (
	"bufio"
	"fmt"
	"io"

	"github.com/irifrance/resynth/z"
)

// marker terminates the interleaved (a,b) fan-in word stream and precedes
// the output-literal words (spec §6 wire format).
const marker = 0xffffffff

// varuint32Mask is the 7-bit payload mask used by the varint encoding this
// package shares with gini's crisp wire protocol (see vu32io.go in the
// gini sources this module is adapted from): writeu32/readu32 here are the
// same little-endian base-128 scheme, generalized from a fixed-size byte
// buffer to a bufio.Writer/Reader pair.
const varuint32Mask = uint32((1 << 7) - 1)

// writeVarUint32 writes d in base-128, least-significant group first, high
// bit of each byte set iff another byte follows.
func writeVarUint32(w *bufio.Writer, d uint32) error {
	for {
		b := byte(d & varuint32Mask)
		d >>= 7
		if d > 0 {
			b |= 1 << 7
		}
		if err := w.WriteByte(b); err != nil {
			return err
		}
		if d == 0 {
			return nil
		}
	}
}

func readVarUint32(r *bufio.Reader) (uint32, error) {
	var res uint32
	var shift uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		res |= (uint32(b) & varuint32Mask) << shift
		if b&(1<<7) == 0 {
			return res, nil
		}
		shift += 7
	}
	return 0, fmt.Errorf("ilist: varuint32 overflow")
}

// Encode writes l to w using the §6 wire format: a header word packing
// (numInputs, numOutputs), one (a,b) word pair per gate entry in order
// (AND vs XOR is recoverable from a<b / a>b, so no opcode tag is
// written), a marker word, then one word per output literal.
func Encode(w io.Writer, l *List) error {
	if l.NumInputs > 0xffff || len(l.Outputs) > 0xffff {
		return fmt.Errorf("ilist: Encode: arity %d/%d exceeds 16-bit header field", l.NumInputs, len(l.Outputs))
	}
	bw := bufio.NewWriter(w)
	header := uint32(l.NumInputs)<<16 | uint32(len(l.Outputs))
	if err := writeVarUint32(bw, header); err != nil {
		return err
	}
	for _, e := range l.Entries {
		if err := writeVarUint32(bw, uint32(e.A)); err != nil {
			return err
		}
		if err := writeVarUint32(bw, uint32(e.B)); err != nil {
			return err
		}
	}
	if err := writeVarUint32(bw, marker); err != nil {
		return err
	}
	for _, o := range l.Outputs {
		if err := writeVarUint32(bw, uint32(o)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeWire reads a List previously written by Encode. The number of gate
// entries is not stored explicitly; it is recovered by reading (a,b) pairs
// until the marker word is seen.
func DecodeWire(r io.Reader) (*List, error) {
	br := bufio.NewReader(r)
	header, err := readVarUint32(br)
	if err != nil {
		return nil, err
	}
	numInputs := int(header >> 16)
	numOutputs := int(header & 0xffff)

	l := New(numInputs)
	for {
		a, err := readVarUint32(br)
		if err != nil {
			return nil, err
		}
		if a == marker {
			break
		}
		b, err := readVarUint32(br)
		if err != nil {
			return nil, err
		}
		l.Entries = append(l.Entries, Entry{A: z.Lit(a), B: z.Lit(b)})
	}
	for i := 0; i < numOutputs; i++ {
		o, err := readVarUint32(br)
		if err != nil {
			return nil, err
		}
		l.Outputs = append(l.Outputs, z.Lit(o))
	}
	return l, nil
}
