// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package aiger

import (
	"bufio"
	"fmt"
	"io"
)

// aigerHeader is the "aag M I L O A B C J F" line; only the ascii (aag)
// form is accepted.
type aigerHeader struct {
	max, in, latch, out, and       uint
	bad, constraint, justice, fair uint
}

func readHeader(r *bufio.Reader) (*aigerHeader, error) {
	tok, err := readToken(r)
	if err != nil {
		return nil, err
	}
	if tok != "aag" {
		return nil, fmt.Errorf("expected ascii AIGER (\"aag\"), got %q", tok)
	}
	var counts [9]uint
	for i := range counts {
		if err := expectByte(r, ' '); err != nil {
			return nil, err
		}
		v, err := readUint(r)
		if err != nil {
			return nil, err
		}
		counts[i] = v
	}
	if err := readNL(r); err != nil {
		return nil, err
	}
	return &aigerHeader{
		max: counts[0], in: counts[1], latch: counts[2], out: counts[3], and: counts[4],
		bad: counts[5], constraint: counts[6], justice: counts[7], fair: counts[8],
	}, nil
}

func readToken(r *bufio.Reader) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if b == ' ' || b == '\n' {
			r.UnreadByte()
			break
		}
		buf = append(buf, b)
	}
	if len(buf) == 0 {
		return "", fmt.Errorf("aiger: premature EOF reading header token")
	}
	return string(buf), nil
}

func readUint(r *bufio.Reader) (uint, error) {
	var result uint
	first := true
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
		if b < '0' || b > '9' {
			r.UnreadByte()
			break
		}
		result = result*10 + uint(b-'0')
		first = false
	}
	if first {
		return 0, fmt.Errorf("aiger: expected a decimal literal")
	}
	return result, nil
}

func readNL(r *bufio.Reader) error {
	b, err := r.ReadByte()
	if err == io.EOF {
		return fmt.Errorf("aiger: premature EOF, expected newline")
	}
	if err != nil {
		return err
	}
	if b != '\n' {
		return fmt.Errorf("aiger: expected newline, got %q", b)
	}
	return nil
}

func readWS(r *bufio.Reader) error {
	return expectByte(r, ' ')
}

func expectByte(r *bufio.Reader, want byte) error {
	b, err := r.ReadByte()
	if err == io.EOF {
		return fmt.Errorf("aiger: premature EOF, expected %q", want)
	}
	if err != nil {
		return err
	}
	if b != want {
		return fmt.Errorf("aiger: expected %q, got %q", want, b)
	}
	return nil
}
