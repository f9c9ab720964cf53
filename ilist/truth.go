// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package ilist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/irifrance/resynth/tt"
)

// WriteTruth writes outputs in the .truth format spec §6 names: one line
// per output, each line 2^numPIs characters of '0'/'1', most-significant
// pattern first (the line's leftmost character is the output bit for the
// all-ones input assignment, its rightmost is for the all-zeros one).
func WriteTruth(w io.Writer, numPIs int, outputs []tt.T) error {
	bw := bufio.NewWriter(w)
	n := 1 << uint(numPIs)
	buf := make([]byte, n)
	for _, o := range outputs {
		if o.Len() != n {
			return fmt.Errorf("ilist: WriteTruth: output has %d bits, want %d for %d inputs", o.Len(), n, numPIs)
		}
		for i := 0; i < n; i++ {
			c := byte('0')
			if o.Bit(i) {
				c = '1'
			}
			buf[n-1-i] = c
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTruth reads a .truth file, inferring numPIs from the length of its
// first line (which must be a power of two), and returns one tt.T per
// line.
func ReadTruth(r io.Reader) (numPIs int, outputs []tt.T, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1<<20), 1<<20)
	first := true
	var n int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if first {
			n = len(line)
			numPIs = bitLen(n)
			if 1<<uint(numPIs) != n {
				return 0, nil, fmt.Errorf("ilist: ReadTruth: line length %d is not a power of two", n)
			}
			first = false
		} else if len(line) != n {
			return 0, nil, fmt.Errorf("ilist: ReadTruth: inconsistent line length %d, want %d", len(line), n)
		}
		table := tt.New(n)
		for i := 0; i < n; i++ {
			switch line[n-1-i] {
			case '1':
				table.SetBit(i, true)
			case '0':
				table.SetBit(i, false)
			default:
				return 0, nil, fmt.Errorf("ilist: ReadTruth: invalid character %q", line[n-1-i])
			}
		}
		outputs = append(outputs, table)
	}
	if err := sc.Err(); err != nil {
		return 0, nil, err
	}
	return numPIs, outputs, nil
}

func bitLen(n int) int {
	k := 0
	for (1 << uint(k)) < n {
		k++
	}
	return k
}
