// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package harness

import (
	"path/filepath"
	"sort"
)

// Discover walks dirs (non-recursively) collecting every "*.aag" file as
// a Benchmark named after its base filename, sorted for deterministic
// benchmark iteration order. This is a much-reduced form of gini's
// bench.Select/MatchSelect, which randomly sample N files from a
// recursive walk for constructing a new benchmark suite on disk; here
// there is no suite to construct, only a fixed list to run once.
func Discover(dirs ...string) ([]Benchmark, error) {
	var out []Benchmark
	for _, dir := range dirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*.aag"))
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			out = append(out, Benchmark{Name: filepath.Base(m), Path: m})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
