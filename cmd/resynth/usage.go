// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package main

var usage = `%s runs the resynthesis driver over one or more AIGER
benchmarks and reports, per benchmark, the gate count before and after
and whether the resynthesized network is still equivalent to the
original.

Usage:

	%s [flags] [file.aag]

With a positional argument, runs only that file. With none, -dir must
be set, and every "*.aag" file found in it is run instead.

%s takes the following flags.

`
