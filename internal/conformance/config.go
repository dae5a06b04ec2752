// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package conformance runs suites of recorded test vectors against the
// registered hashers.
package conformance

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/ChainSafe/go-digest/internal/log"
)

var (
	// ErrNoSuites is returned by Validate when no suite is configured.
	ErrNoSuites = errors.New("no suite configured")
	// ErrSuiteInvalid is returned by Validate for an incomplete suite.
	ErrSuiteInvalid = errors.New("suite is invalid")
	// ErrWorkersNegative is returned by Validate for a negative worker count.
	ErrWorkersNegative = errors.New("workers cannot be negative")
)

// Suite points at one fixture on disk and the algorithm to check it with.
type Suite struct {
	Name      string `mapstructure:"name"`
	Algorithm string `mapstructure:"algorithm"`
	// Dir is the directory holding the fixture files.
	Dir string `mapstructure:"dir"`
	// Fixture is the base name of the fixture files, defaulting to Name.
	Fixture string `mapstructure:"fixture"`
}

// FixtureName returns the base name of the fixture files.
func (s Suite) FixtureName() string {
	if s.Fixture != "" {
		return s.Fixture
	}
	return s.Name
}

// Config is the configuration of a conformance run.
type Config struct {
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
	// Parallel checks the vectors of a suite concurrently.
	Parallel bool `mapstructure:"parallel"`
	// Workers bounds the goroutines of a parallel run, 0 meaning unbounded.
	Workers int `mapstructure:"workers"`
	// MetricsFile is the path to write Prometheus metrics to, if not empty.
	MetricsFile string  `mapstructure:"metrics-file"`
	Suites      []Suite `mapstructure:"suites"`
}

// DefaultConfig returns the default configuration, without any suite.
func DefaultConfig() Config {
	return Config{
		LogLevel:  log.Info.String(),
		LogFormat: log.FormatConsole.String(),
		Workers:   runtime.NumCPU(),
	}
}

// Validate checks the configuration is complete and every suite names a
// registered algorithm.
func (c Config) Validate() (err error) {
	_, err = log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	_, err = log.ParseFormat(c.LogFormat)
	if err != nil {
		return fmt.Errorf("log format: %w", err)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrWorkersNegative, c.Workers)
	}

	if len(c.Suites) == 0 {
		return ErrNoSuites
	}

	names := make(map[string]struct{}, len(c.Suites))
	for i, suite := range c.Suites {
		switch {
		case suite.Name == "":
			return fmt.Errorf("%w: suite %d has no name", ErrSuiteInvalid, i)
		case suite.Dir == "":
			return fmt.Errorf("%w: suite %s has no directory", ErrSuiteInvalid, suite.Name)
		}

		if _, exists := names[suite.Name]; exists {
			return fmt.Errorf("%w: suite %s is defined twice", ErrSuiteInvalid, suite.Name)
		}
		names[suite.Name] = struct{}{}

		_, err = Lookup(suite.Algorithm)
		if err != nil {
			return fmt.Errorf("suite %s: %w", suite.Name, err)
		}
	}

	return nil
}
