// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ChainSafe/go-digest/internal/conformance"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, algorithm := range conformance.Algorithms() {
				_, err := fmt.Fprintf(tw, "%s\t%s\n", algorithm.Name, algorithm.Kind)
				if err != nil {
					return err
				}
			}
			return tw.Flush()
		},
	}
}
