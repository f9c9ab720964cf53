// Copyright 2024 The Resynth Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

// Package oracle is an equivalence-checking contract: it runs an
// external subprocess against two AIGER files and recognizes
// equivalence by a single fixed line of output, rather than by exit
// code alone, so that a checker which also prints diagnostics or
// warnings on its way to success is not misread as a failure.
package oracle

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// equivalentLine is the exact line a backing checker must print to
// signal equivalence.
const equivalentLine = "Networks are equivalent"

// Checker runs an external equivalence-checking command and reports
// whether it found a and b equivalent.
type Checker struct {
	// Path is the backing binary, e.g. the in-repo cmd/equivck, or any
	// external checker that honors the same contract.
	Path string
	// Args are extra arguments placed before the two file paths.
	Args []string
}

// Default returns a Checker backed by cmd/equivck found on $PATH.
func Default() *Checker {
	return &Checker{Path: "equivck"}
}

// CheckContext runs the checker against aPath and bPath and reports
// whether their networks are equivalent. A non-zero exit that
// nonetheless prints the equivalent line is still treated as
// equivalent, since some checkers use exit codes for unrelated purposes
// (e.g. SAT-solver exit code conventions); callers wanting strict
// exit-code enforcement should wrap the command accordingly.
func (c *Checker) CheckContext(ctx context.Context, aPath, bPath string) (bool, error) {
	args := append(append([]string{}, c.Args...), aPath, bPath)
	cmd := exec.CommandContext(ctx, c.Path, args...)
	out, err := cmd.StdoutPipe()
	if err != nil {
		return false, fmt.Errorf("oracle: stdout pipe: %w", err)
	}
	if startErr := cmd.Start(); startErr != nil {
		return false, fmt.Errorf("oracle: start %s: %w", c.Path, startErr)
	}

	found := false
	sc := bufio.NewScanner(out)
	for sc.Scan() {
		if strings.TrimRight(sc.Text(), "\r\n") == equivalentLine {
			found = true
		}
	}
	scanErr := sc.Err()
	waitErr := cmd.Wait()
	if scanErr != nil {
		return false, fmt.Errorf("oracle: reading %s output: %w", c.Path, scanErr)
	}
	if found {
		return true, nil
	}
	if waitErr != nil {
		// a non-zero exit without the equivalent line is the expected
		// "not equivalent" signal, not an error.
		if _, ok := waitErr.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("oracle: running %s: %w", c.Path, waitErr)
	}
	return false, nil
}

// Check runs the checker against aPath and bPath and reports whether
// their networks are equivalent. It calls CheckContext with
// context.Background(), for callers that don't need cancellation.
func (c *Checker) Check(aPath, bPath string) (bool, error) {
	return c.CheckContext(context.Background(), aPath, bPath)
}

// Check runs the default checker (cmd/equivck on $PATH).
func Check(aPath, bPath string) (bool, error) {
	return Default().Check(aPath, bPath)
}
