// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"errors"
	"fmt"
)

var (
	// ErrMismatch is matched by every error reporting a produced output that
	// differs from the expected one.
	ErrMismatch = errors.New("output mismatch")
	// ErrOutputSize is returned when a variable-output hasher reports an
	// output size other than the one it was constructed with.
	ErrOutputSize = errors.New("output size differs from requested size")
	// ErrShortRead is returned when an XOF reader does not fill the buffer.
	ErrShortRead = errors.New("short read from XOF reader")
)

// MismatchError describes the first feeding strategy that produced a wrong
// output for a vector.
type MismatchError struct {
	Index    int
	Record   Record
	Strategy Strategy
	Input    []byte
	Expected []byte
	Got      []byte
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("vector %d: %s: input [%d..%d] %x: output [%d..%d] %x: got %x",
		e.Index, e.Strategy,
		e.Record.InputStart, e.Record.InputEnd, e.Input,
		e.Record.OutputStart, e.Record.OutputEnd, e.Expected,
		e.Got)
}

// Is makes errors.Is(err, ErrMismatch) hold.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// VectorError wraps a failure other than a mismatch, such as a hasher that
// could not be constructed for the vector's output size.
type VectorError struct {
	Index  int
	Record Record
	Err    error
}

func (e *VectorError) Error() string {
	return fmt.Sprintf("vector %d: input [%d..%d]: output [%d..%d]: %s",
		e.Index, e.Record.InputStart, e.Record.InputEnd,
		e.Record.OutputStart, e.Record.OutputEnd, e.Err)
}

func (e *VectorError) Unwrap() error {
	return e.Err
}

func mismatch(strategy Strategy, got []byte) error {
	return &MismatchError{Strategy: strategy, Got: got}
}
