// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package oracle

import (
	"context"
	"testing"
)

// These tests use a short sh one-liner as the checker binary, so the
// line-recognition contract can be tested without building cmd/equivck.
func TestCheckRecognizesEquivalentLine(t *testing.T) {
	c := &Checker{Path: "sh", Args: []string{"-c", `echo "noise"; echo "Networks are equivalent"; exit 0 #`}}
	ok, err := c.CheckContext(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !ok {
		t.Fatal("expected equivalence to be recognized")
	}
}

func TestCheckRejectsMissingLine(t *testing.T) {
	c := &Checker{Path: "sh", Args: []string{"-c", `echo "Networks are not equivalent"; exit 1 #`}}
	ok, err := c.CheckContext(context.Background(), "a", "b")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if ok {
		t.Fatal("expected non-equivalence")
	}
}
