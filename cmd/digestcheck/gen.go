// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/spf13/cobra"

	"github.com/ChainSafe/go-digest/internal/conformance"
	"github.com/ChainSafe/go-digest/pkg/digest/dev"
)

func newGenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <algorithm>",
		Short: "Write a fixture of test vectors computed by an algorithm",
		Long: `Write the inputs, outputs and index files of a fixture computed by the
algorithm over a deterministic corpus of inputs. Only generate fixtures with
an implementation you trust.`,
		Args: cobra.ExactArgs(1),
		RunE: execGen,
	}

	cmd.Flags().String("out", ".", "Directory to write the fixture files to")
	cmd.Flags().String("name", "", "Base name of the fixture files, defaults to the algorithm name")
	cmd.Flags().Int("size", 0, "Output size of variable-output and extendable-output algorithms")
	cmd.Flags().Int("max-length", 1025, "Length of the longest input of the corpus")
	cmd.Flags().Bool("compress", false, "Compress the fixture files with zstd")
	return cmd
}

func execGen(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	out, err := flags.GetString("out")
	if err != nil {
		return err
	}
	name, err := flags.GetString("name")
	if err != nil {
		return err
	}
	size, err := flags.GetInt("size")
	if err != nil {
		return err
	}
	maxLength, err := flags.GetInt("max-length")
	if err != nil {
		return err
	}
	compress, err := flags.GetBool("compress")
	if err != nil {
		return err
	}

	algorithm, err := conformance.Lookup(args[0])
	if err != nil {
		return err
	}

	fixture, err := conformance.Generate(algorithm, conformance.Corpus(maxLength), size)
	if err != nil {
		return err
	}
	if name != "" {
		fixture.Name = name
	}

	if compress {
		err = dev.WriteFixtureCompressed(out, fixture)
	} else {
		err = dev.WriteFixture(out, fixture)
	}
	if err != nil {
		return err
	}

	logger.Infof("wrote %d vectors of %s to fixture %s in %s",
		len(fixture.Records), algorithm.Name, fixture.Name, out)
	return nil
}
