// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package rcache is a resynthesis-result cache: a small client/server
// that lets multiple driver/window instances (e.g. parallel benchmark
// workers) share already-computed resubstitutions for identical
// (target, care, divisors, sizeBudget) lookups instead of recomputing
// them. The wire layer — address parsing and a varint-coded
// request/response protocol — is adapted from gini's CRISP
// (`crisp/addr.go`, `crisp/vu32io.go`); the protocol itself is new,
// since CRISP's op codes are all incremental-SAT-specific and nothing
// here needs them (see DESIGN.md).
package rcache

import (
	"fmt"
	"strings"
)

// Addr is a cache server address: either a unix domain socket path
// prefixed with '@', or a tcp host:port.
type Addr struct {
	Network string
	NetAddr string
}

// ParseAddr parses s, determining whether it names a unix socket or a
// tcp address.
func ParseAddr(s string) *Addr {
	if strings.HasPrefix(s, "@") {
		return &Addr{Network: "unix", NetAddr: s[1:]}
	}
	return &Addr{Network: "tcp", NetAddr: s}
}

// String renders a back in the format ParseAddr accepts.
func (a *Addr) String() string {
	if a.Network == "unix" {
		return fmt.Sprintf("@%s", a.NetAddr)
	}
	return a.NetAddr
}
