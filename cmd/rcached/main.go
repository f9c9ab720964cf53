// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Command rcached runs a standalone rcache server, analogous to gini's
// cmd/crispd.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/irifrance/resynth/rcache"
)

var trace = flag.Bool("trace", false, "turn on connection tracing")
var workers = flag.Int("workers", 4, "number of concurrent connection handlers")

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, usage, p, p)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	s, err := rcache.NewServer(flag.Arg(0), *workers)
	if err != nil {
		log.Printf("error starting rcache server: %s\n", err)
		os.Exit(1)
	}
	s.Trace(*trace)
	log.Println(s.Serve())
}
