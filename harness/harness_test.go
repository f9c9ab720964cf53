// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/irifrance/resynth/aiger"
	"github.com/irifrance/resynth/driver"
	"github.com/irifrance/resynth/network"
	"github.com/irifrance/resynth/oracle"
)

// fakeChecker stands in for a built cmd/equivck binary with a shell
// one-liner that always reports equivalence, the same trick
// oracle_test.go uses to exercise the line-recognition contract without
// requiring a prebuilt checker on $PATH.
var fakeChecker = &oracle.Checker{Path: "sh", Args: []string{"-c", `echo "Networks are equivalent" #`}}

// writeRedundantAnd writes a tiny AIGER file whose output is AND(AND(p1,p2),p1),
// which the driver should simplify to AND(p1,p2).
func writeRedundantAnd(t *testing.T, path string) {
	t.Helper()
	h := network.NewHost()
	p1 := h.NewInput()
	p2 := h.NewInput()
	g1 := h.And(p1, p2)
	g2 := h.And(g1, p1)
	h.AddOutput(g2)
	if err := aiger.Write(h, h.Outputs(), path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestRunOneResynthesizesAndStaysEquivalent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "redundant.aag")
	writeRedundantAnd(t, path)

	r := RunOne(Benchmark{Name: "redundant.aag", Path: path}, driver.DefaultConfig(), fakeChecker)
	if r.Err != nil {
		t.Fatalf("RunOne: %v", r.Err)
	}
	if r.GatesAfter > r.GatesBefore {
		t.Fatalf("expected gate count to not increase: before=%d after=%d", r.GatesBefore, r.GatesAfter)
	}
	if !r.Equivalent {
		t.Fatal("expected resynthesized network to remain equivalent")
	}
}

func TestDiscoverFindsAagFiles(t *testing.T) {
	dir := t.TempDir()
	writeRedundantAnd(t, filepath.Join(dir, "a.aag"))
	writeRedundantAnd(t, filepath.Join(dir, "b.aag"))
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write non-aag file: %v", err)
	}

	bs, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(bs) != 2 {
		t.Fatalf("expected 2 benchmarks, got %d", len(bs))
	}
	if bs[0].Name != "a.aag" || bs[1].Name != "b.aag" {
		t.Fatalf("unexpected ordering: %+v", bs)
	}
}

func TestRunAllCoversEveryBenchmarkExactlyOnce(t *testing.T) {
	dir := t.TempDir()
	var bs []Benchmark
	for i := 0; i < 5; i++ {
		p := filepath.Join(dir, filepathBase(i))
		writeRedundantAnd(t, p)
		bs = append(bs, Benchmark{Name: filepathBase(i), Path: p})
	}

	table := RunAll(bs, 3, driver.DefaultConfig(), fakeChecker)
	rows := table.Rows()
	if len(rows) != len(bs) {
		t.Fatalf("expected %d results, got %d", len(bs), len(rows))
	}
	seen := make(map[string]bool)
	for _, r := range rows {
		if r.Err != nil {
			t.Fatalf("unexpected error for %s: %v", r.Name, r.Err)
		}
		seen[r.Name] = true
	}
	for _, b := range bs {
		if !seen[b.Name] {
			t.Fatalf("benchmark %s missing from result table", b.Name)
		}
	}
}

func filepathBase(i int) string {
	return "b" + string(rune('0'+i)) + ".aag"
}
