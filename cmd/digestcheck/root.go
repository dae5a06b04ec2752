// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChainSafe/go-digest/internal/conformance"
	"github.com/ChainSafe/go-digest/internal/log"
)

const envPrefix = "DIGESTCHECK"

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

// newRootCommand creates the digestcheck command with all its
// subcommands, reading settings through v.
func newRootCommand(v *viper.Viper) *cobra.Command {
	defaults := conformance.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "digestcheck",
		Short: "Check hash functions against recorded test vectors",
		Long: `digestcheck feeds recorded test vectors to hash function implementations
through several feeding strategies and reports every mismatch.
Usage:
	digestcheck list
	digestcheck gen shake256 --size 64 --out testdata
	digestcheck run --dir testdata sha256 shake256
	digestcheck run --config suites.toml --parallel`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configure(cmd, v)
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to a TOML configuration file")

	flagErrs := []error{
		addStringFlagBindViper(cmd.PersistentFlags(), v, "log-level", defaults.LogLevel,
			"Log level, one of trace, debug, info, warn, error, critical"),
		addStringFlagBindViper(cmd.PersistentFlags(), v, "log-format", defaults.LogFormat,
			"Log format, console or coloured"),
	}

	runCmd, err := newRunCommand(v, defaults)
	flagErrs = append(flagErrs, err)
	if err := errors.Join(flagErrs...); err != nil {
		// flag names are constants, so this is a programming error
		panic(fmt.Sprintf("binding flags: %s", err))
	}

	cmd.AddCommand(runCmd, newGenCommand(), newListCommand())
	return cmd
}

// configure reads the environment and the configuration file into v and
// sets up the global logger.
func configure(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		err = v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("reading configuration file: %w", err)
		}
	}

	level, err := log.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}

	format, err := log.ParseFormat(v.GetString("log-format"))
	if err != nil {
		return err
	}

	log.Patch(log.SetLevel(level), log.SetFormat(format), log.SetWriter(cmd.ErrOrStderr()))
	return nil
}
