// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package dev checks hashers against recorded test vectors.
//
// Each vector is fed through several strategies, whole message, again
// after a reset, in recursively halved pieces and byte by byte, so that
// buffering and reset bugs showing only at block boundaries are caught.
package dev

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

// Strategy names a way of feeding a vector to a hasher.
type Strategy string

const (
	WholeMessage     Strategy = "whole message"
	AfterReset       Strategy = "whole message after reset"
	MessageInPieces  Strategy = "message in pieces"
	ByteByByte       Strategy = "message byte-by-byte"
	ReaderByteByByte Strategy = "reader byte-by-byte"
	OneMillionChars  Strategy = "one million a"
)

// Pieces splits input into chunks of decreasing size, each chunk taking
// half of what is left, rounded up. Empty input has no pieces.
func Pieces(input []byte) (pieces [][]byte) {
	for rest := input; len(rest) > 0; {
		take := (len(rest) + 1) / 2
		pieces = append(pieces, rest[:take])
		rest = rest[take:]
	}
	return pieces
}

func feedPieces(process func([]byte), input []byte) {
	for _, piece := range Pieces(input) {
		process(piece)
	}
}

func feedBytes(process func([]byte), input []byte) {
	for i := range input {
		process(input[i : i+1])
	}
}

// poison fills buf with the complement of expected, so that any byte a
// hasher leaves unwritten shows up as a mismatch.
func poison(buf, expected []byte) {
	for i := range buf {
		buf[i] = ^expected[i]
	}
}

func compare(strategy Strategy, got, expected []byte) error {
	if bytes.Equal(got, expected) {
		return nil
	}
	return mismatch(strategy, bytes.Clone(got))
}

func readFull(strategy Strategy, r digest.XOFReader, buf []byte) error {
	n, err := r.Read(buf)
	switch {
	case n == len(buf):
		return nil
	case err != nil:
		return fmt.Errorf("%s: %w: %d of %d bytes: %w", strategy, ErrShortRead, n, len(buf), err)
	default:
		return fmt.Errorf("%s: %w: %d of %d bytes", strategy, ErrShortRead, n, len(buf))
	}
}
