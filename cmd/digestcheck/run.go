// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChainSafe/go-digest/internal/conformance"
	"github.com/ChainSafe/go-digest/internal/metrics"
	"github.com/ChainSafe/go-digest/pkg/digest/dev"
)

func newRunCommand(v *viper.Viper, defaults conformance.Config) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "run [algorithm...]",
		Short: "Check the configured suites",
		Long: `Check the suites of the configuration file. Each algorithm given as
argument adds a suite checking the fixture named after it in --dir.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execRun(cmd, v, args)
		},
	}

	flags := cmd.Flags()
	err := errors.Join(
		addBoolFlagBindViper(flags, v, "parallel", defaults.Parallel,
			"Check the vectors of each suite concurrently"),
		addIntFlagBindViper(flags, v, "workers", defaults.Workers,
			"Maximum number of goroutines of a parallel run, 0 for no limit"),
		addStringFlagBindViper(flags, v, "metrics-file", defaults.MetricsFile,
			"Write Prometheus metrics to this file after the run"),
		addStringFlagBindViper(flags, v, "dir", ".",
			"Directory of the fixtures of algorithms given as arguments"),
	)
	return cmd, err
}

func execRun(cmd *cobra.Command, v *viper.Viper, args []string) error {
	config, err := loadConfig(v, args)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder()
	runner := conformance.NewRunner(logger, recorder)

	reports, runErr := runner.Run(cmd.Context(), config)
	err = printReports(cmd.OutOrStdout(), reports)
	if err != nil {
		return err
	}

	if config.MetricsFile != "" {
		err = recorder.WriteTextfile(config.MetricsFile)
		if err != nil {
			return err
		}
		logger.Debugf("metrics written to %s", config.MetricsFile)
	}

	return runErr
}

// loadConfig builds the configuration from v, adding one suite per
// algorithm name given.
func loadConfig(v *viper.Viper, algorithms []string) (config conformance.Config, err error) {
	config = conformance.DefaultConfig()
	err = v.Unmarshal(&config)
	if err != nil {
		return config, fmt.Errorf("decoding configuration: %w", err)
	}

	dir := v.GetString("dir")
	for _, name := range algorithms {
		config.Suites = append(config.Suites, conformance.Suite{
			Name:      name,
			Algorithm: name,
			Dir:       dir,
		})
	}

	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func printReports(w io.Writer, reports []*dev.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, report := range reports {
		result := "PASS"
		if !report.OK() {
			result = "FAIL"
		}
		passed := report.Vectors - len(report.Failures)
		_, err := fmt.Fprintf(tw, "%s\t%s\t%d/%d\n", result, report.Name, passed, report.Vectors)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
