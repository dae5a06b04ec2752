// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package digest describes the capabilities of incremental hash functions.
//
// A concrete hasher implements Processor plus exactly one output shape:
// FixedOutput, VariableOutput or ExtendableOutput. Generic code is written
// against the smallest set of capabilities it needs, so the same code can
// drive fixed-size digests, caller-sized digests and extendable-output
// functions alike.
package digest

import "io"

// Processor is implemented by every hasher.
type Processor interface {
	// Process appends data to the pending input. It can be called any number
	// of times, e.g. for streaming messages. Empty data is a no-op.
	Process(data []byte)
}

// BlockSizer advertises the block size the hash transform operates on.
// Keyed constructions such as HMAC need it, nothing else does.
type BlockSizer interface {
	BlockSize() int
}

// FixedOutput is implemented by hashers whose output length is a constant
// of the algorithm.
type FixedOutput interface {
	Processor
	// OutputSize returns the digest length in bytes. It must be valid on the
	// zero value.
	OutputSize() int
	// Finalize returns the digest and consumes the hasher.
	// The hasher must not be used afterwards.
	Finalize() []byte
}

// VariableOutput is implemented by hashers whose output length is chosen
// once, at construction.
type VariableOutput interface {
	Processor
	// OutputSize returns the length requested at construction.
	OutputSize() int
	// FinalizeInto writes the digest into out and consumes the hasher.
	// len(out) must equal OutputSize().
	FinalizeInto(out []byte)
}

// XOFReader extracts the output stream of an extendable-output function.
//
// Every Read fills p completely with the next bytes of the stream and
// returns len(p), nil. Reading is monotonic; a reader cannot be rewound,
// a new one has to be obtained from a hasher fed with the same input.
type XOFReader interface {
	io.Reader
}

// ExtendableOutput is implemented by extendable-output functions.
type ExtendableOutput interface {
	Processor
	// FinalizeXOF consumes the hasher and returns a reader over its output.
	FinalizeXOF() XOFReader
}

// Resetter is implemented by hashers that can be restored to their initial
// state. Reset returns the hasher as it was before the call while the
// receiver becomes indistinguishable from a newly constructed instance,
// so callers can extract a result and keep using the receiver.
type Resetter[H any] interface {
	Reset() H
}

// FixedResetter is a resettable fixed-output hasher.
type FixedResetter[H any] interface {
	FixedOutput
	Resetter[H]
}

// VariableResetter is a resettable variable-output hasher.
type VariableResetter[H any] interface {
	VariableOutput
	Resetter[H]
}

// ExtendableResetter is a resettable extendable-output function.
type ExtendableResetter[H any] interface {
	ExtendableOutput
	Resetter[H]
}

// FixedPtr constrains a pointer to a fixed-output hasher whose zero value
// is its initial state. It is what makes T default-constructible.
type FixedPtr[T any] interface {
	*T
	FixedOutput
}

// FinalizeReset returns the digest of everything processed so far and
// leaves h in its initial state.
func FinalizeReset[H FixedResetter[H]](h H) []byte {
	return h.Reset().Finalize()
}

// FinalizeIntoReset writes the digest of everything processed so far into
// out and leaves h in its initial state, keeping its output size.
func FinalizeIntoReset[H VariableResetter[H]](h H, out []byte) {
	h.Reset().FinalizeInto(out)
}

// FinalizeXOFReset returns a reader over the output for everything processed
// so far and leaves h in its initial state.
func FinalizeXOFReset[H ExtendableResetter[H]](h H) XOFReader {
	return h.Reset().FinalizeXOF()
}
