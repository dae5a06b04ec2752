// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package conformance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/ChainSafe/go-digest/internal/log"
	"github.com/ChainSafe/go-digest/pkg/digest/dev"
)

// ErrSuiteFailed is returned by Run when a vector of any suite failed.
var ErrSuiteFailed = errors.New("suite failed")

// Recorder records the outcome of a suite.
type Recorder interface {
	RecordSuite(suite string, report *dev.Report, elapsed time.Duration)
}

// Runner checks configured suites.
type Runner struct {
	logger   log.LeveledLogger
	recorder Recorder
}

// NewRunner creates a runner logging to logger and recording every suite
// with recorder.
func NewRunner(logger log.LeveledLogger, recorder Recorder) *Runner {
	return &Runner{
		logger:   logger,
		recorder: recorder,
	}
}

// Run checks every suite of cfg in order and returns their reports, each
// named after its suite.
// Failing vectors do not stop the run, they are logged and make Run return
// an error wrapping ErrSuiteFailed once all suites ran. A suite that cannot
// be loaded or checked stops the run.
func (r *Runner) Run(ctx context.Context, cfg Config) (reports []*dev.Report, err error) {
	r.logger.Debugf("configuration: %s", spew.Sdump(cfg))

	var failed []string
	for _, suite := range cfg.Suites {
		err = ctx.Err()
		if err != nil {
			return reports, err
		}

		report, err := r.runSuite(ctx, cfg, suite)
		if err != nil {
			return reports, fmt.Errorf("suite %s: %w", suite.Name, err)
		}
		reports = append(reports, report)

		if !report.OK() {
			failed = append(failed, suite.Name)
		}
	}

	if len(failed) > 0 {
		return reports, fmt.Errorf("%w: %s", ErrSuiteFailed, strings.Join(failed, ", "))
	}
	return reports, nil
}

func (r *Runner) runSuite(ctx context.Context, cfg Config, suite Suite) (report *dev.Report, err error) {
	algorithm, err := Lookup(suite.Algorithm)
	if err != nil {
		return nil, err
	}

	fixture, err := dev.LoadFixture(os.DirFS(suite.Dir), suite.FixtureName())
	if err != nil {
		return nil, fmt.Errorf("loading fixture: %w", err)
	}

	r.logger.Debugf("suite %s: checking %d vectors of %s with %s",
		suite.Name, len(fixture.Records), fixture.Name, algorithm.Name)

	start := time.Now()
	if cfg.Parallel {
		report, err = dev.RunParallel(ctx, fixture, algorithm.Check, cfg.Workers)
	} else {
		report, err = dev.Run(fixture, algorithm.Check)
	}
	elapsed := time.Since(start)
	if err != nil {
		return nil, err
	}
	// several suites may share a fixture
	report.Name = suite.Name

	for _, failure := range report.Failures {
		r.logger.Errorf("suite %s: %s", suite.Name, dev.Describe(failure))
	}

	passed := report.Vectors - len(report.Failures)
	if report.OK() {
		r.logger.Infof("suite %s: %d of %d vectors passed in %s", suite.Name, passed, report.Vectors, elapsed)
	} else {
		r.logger.Warnf("suite %s: %d of %d vectors passed in %s", suite.Name, passed, report.Vectors, elapsed)
	}

	r.recorder.RecordSuite(suite.Name, report, elapsed)
	return report, nil
}
