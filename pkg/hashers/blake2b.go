// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashers

import (
	"hash"

	"golang.org/x/crypto/blake2b"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

var _ digest.VariableResetter[*Blake2b] = (*Blake2b)(nil)

// Blake2b is unkeyed BLAKE2b with an output length between 1 and 64 bytes.
// The output length is a parameter of the hash, not a truncation: BLAKE2b-160
// and the first 20 bytes of BLAKE2b-512 differ.
type Blake2b struct {
	size int
	h    hash.Hash
}

// NewBlake2b returns a BLAKE2b hasher producing size bytes.
func NewBlake2b(size int) (*Blake2b, error) {
	err := digest.ValidateOutputSize(size, blake2b.Size)
	if err != nil {
		return nil, err
	}

	h, err := blake2b.New(size, nil)
	if err != nil {
		return nil, err
	}
	return &Blake2b{size: size, h: h}, nil
}

// Process feeds data into the hash.
func (b *Blake2b) Process(data []byte) {
	if len(data) == 0 {
		return
	}
	_, _ = b.h.Write(data)
}

// OutputSize returns the size given to NewBlake2b.
func (b *Blake2b) OutputSize() int { return b.size }

// BlockSize returns the BLAKE2b block size.
func (*Blake2b) BlockSize() int { return blake2b.BlockSize }

// FinalizeInto writes the digest into out.
func (b *Blake2b) FinalizeInto(out []byte) {
	copy(out, b.h.Sum(nil))
}

// Reset returns a hasher holding the current state and leaves b in its
// initial state.
func (b *Blake2b) Reset() *Blake2b {
	old := &Blake2b{size: b.size, h: b.h}
	b.h = mustBlake2b(b.size)
	return old
}
