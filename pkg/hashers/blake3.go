// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashers

import (
	"math"

	"lukechampine.com/blake3"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

const blake3Size = 32

var (
	_ digest.FixedResetter[*Blake3]            = (*Blake3)(nil)
	_ digest.ExtendableResetter[*Blake3]       = (*Blake3)(nil)
	_ digest.VariableResetter[*Blake3Variable] = (*Blake3Variable)(nil)
)

// Blake3 is unkeyed BLAKE3. It yields a 32 byte digest through Finalize or
// an unbounded output stream through FinalizeXOF; the digest is a prefix
// of the stream.
type Blake3 struct {
	h *blake3.Hasher
}

func (b *Blake3) state() *blake3.Hasher {
	if b.h == nil {
		b.h = blake3.New(blake3Size, nil)
	}
	return b.h
}

// Process feeds data into the hash.
func (b *Blake3) Process(data []byte) {
	if len(data) == 0 {
		return
	}
	_, _ = b.state().Write(data)
}

// OutputSize returns the default BLAKE3 digest length.
func (*Blake3) OutputSize() int { return blake3Size }

// BlockSize returns the BLAKE3 block size.
func (*Blake3) BlockSize() int { return 64 }

// Finalize returns the 32 byte digest.
func (b *Blake3) Finalize() []byte {
	return b.state().Sum(nil)
}

// FinalizeXOF returns a reader over the output stream.
func (b *Blake3) FinalizeXOF() digest.XOFReader {
	return b.state().XOF()
}

// Reset returns a hasher holding the current state and leaves b in its
// initial state.
func (b *Blake3) Reset() *Blake3 {
	old := &Blake3{h: b.h}
	b.h = nil
	return old
}

// Blake3Variable is unkeyed BLAKE3 with a caller chosen output length.
type Blake3Variable struct {
	size int
	h    *blake3.Hasher
}

// NewBlake3Variable returns a BLAKE3 hasher producing size bytes.
func NewBlake3Variable(size int) (*Blake3Variable, error) {
	err := digest.ValidateOutputSize(size, math.MaxInt32)
	if err != nil {
		return nil, err
	}
	return &Blake3Variable{size: size, h: blake3.New(size, nil)}, nil
}

// Process feeds data into the hash.
func (b *Blake3Variable) Process(data []byte) {
	if len(data) == 0 {
		return
	}
	_, _ = b.h.Write(data)
}

// OutputSize returns the size given to NewBlake3Variable.
func (b *Blake3Variable) OutputSize() int { return b.size }

// FinalizeInto writes the digest into out.
func (b *Blake3Variable) FinalizeInto(out []byte) {
	copy(out, b.h.Sum(nil))
}

// Reset returns a hasher holding the current state and leaves b in its
// initial state.
func (b *Blake3Variable) Reset() *Blake3Variable {
	old := &Blake3Variable{size: b.size, h: b.h}
	b.h = blake3.New(b.size, nil)
	return old
}
