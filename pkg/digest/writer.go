// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

import "io"

type processorWriter struct {
	p Processor
}

// NewWriter returns an io.Writer feeding everything written to p.
// Writes never fail.
func NewWriter(p Processor) io.Writer {
	return processorWriter{p: p}
}

func (w processorWriter) Write(b []byte) (n int, err error) {
	w.p.Process(b)
	return len(b), nil
}
