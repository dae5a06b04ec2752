// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Command digestcheck checks hash function implementations against recorded
// test vectors and generates new vector fixtures.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand(viper.New()).ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
