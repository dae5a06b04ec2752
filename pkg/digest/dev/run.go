// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of checking every vector of a fixture.
type Report struct {
	Name    string
	Vectors int
	// Failures holds at most one error per failed vector, in vector order.
	Failures []error
}

// OK returns true if no vector failed.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Err joins all failures, nil if there are none.
func (r *Report) Err() error {
	return errors.Join(r.Failures...)
}

// Run checks every vector of f in order. Failing vectors do not stop the
// run; an out of range record does and is returned as error.
func Run(f *Fixture, check CheckFunc) (*Report, error) {
	report := &Report{Name: f.Name, Vectors: len(f.Records)}
	for i := range f.Records {
		failure, err := checkVector(f, i, check)
		if err != nil {
			return report, err
		}
		if failure != nil {
			report.Failures = append(report.Failures, failure)
		}
	}
	return report, nil
}

// RunParallel is Run with vectors spread over at most workers goroutines.
// Failures are reported in vector order, exactly as Run would.
func RunParallel(ctx context.Context, f *Fixture, check CheckFunc, workers int) (*Report, error) {
	failures := make([]error, len(f.Records))

	group, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for i := range f.Records {
		if groupCtx.Err() != nil {
			break
		}
		i := i
		group.Go(func() (err error) {
			if groupCtx.Err() != nil {
				return groupCtx.Err()
			}
			failures[i], err = checkVector(f, i, check)
			return err
		})
	}

	report := &Report{Name: f.Name, Vectors: len(f.Records)}
	err := group.Wait()
	for _, failure := range failures {
		if failure != nil {
			report.Failures = append(report.Failures, failure)
		}
	}
	if err != nil {
		return report, err
	}
	return report, ctx.Err()
}

func checkVector(f *Fixture, i int, check CheckFunc) (failure, err error) {
	input, expected, err := f.Vector(i)
	if err != nil {
		return nil, err
	}

	failure = check(input, expected)
	if failure == nil {
		return nil, nil
	}

	var mismatchErr *MismatchError
	if errors.As(failure, &mismatchErr) {
		mismatchErr.Index = i
		mismatchErr.Record = f.Records[i]
		mismatchErr.Input = input
		mismatchErr.Expected = expected
		return mismatchErr, nil
	}
	return &VectorError{Index: i, Record: f.Records[i], Err: failure}, nil
}

// Reporter is the subset of testing.TB used by RunTest.
type Reporter interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// RunTest checks every vector of f and reports each failing vector to t.
func RunTest(t Reporter, f *Fixture, check CheckFunc) {
	t.Helper()

	report, err := Run(f, check)
	if err != nil {
		t.Fatalf("%s: %s", f.Name, err)
		return
	}

	for _, failure := range report.Failures {
		t.Errorf("%s: %s", f.Name, Describe(failure))
	}
}

// Describe renders a failure with the raw bytes involved, one per line.
func Describe(failure error) string {
	var mismatchErr *MismatchError
	if !errors.As(failure, &mismatchErr) {
		return failure.Error()
	}

	return fmt.Sprintf("failed vector %d: %s\n"+
		"input: [%d..%d]\n%s"+
		"output: [%d..%d]\n%s"+
		"got:\n%s",
		mismatchErr.Index, mismatchErr.Strategy,
		mismatchErr.Record.InputStart, mismatchErr.Record.InputEnd, spew.Sdump(mismatchErr.Input),
		mismatchErr.Record.OutputStart, mismatchErr.Record.OutputEnd, spew.Sdump(mismatchErr.Expected),
		spew.Sdump(mismatchErr.Got))
}
