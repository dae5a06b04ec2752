// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hashers adapts hash function libraries to the digest capability
// contracts. The zero value of every fixed-output and extendable-output
// hasher in this package is its initial state.
//
// Hashers must not be copied after first use; use Reset to obtain an
// independent instance holding the current state.
package hashers

import (
	"hash"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

// Algorithm describes a fixed-output hash function built on hash.Hash.
// Implementations are stateless, zero-size types.
type Algorithm interface {
	New() hash.Hash
	Size() int
	BlockSize() int
}

// Hash adapts the hash.Hash algorithm A to the digest contracts.
type Hash[A Algorithm] struct {
	h hash.Hash
}

func (x *Hash[A]) state() hash.Hash {
	if x.h == nil {
		var algorithm A
		x.h = algorithm.New()
	}
	return x.h
}

// Process feeds data into the hash.
func (x *Hash[A]) Process(data []byte) {
	if len(data) == 0 {
		return
	}
	// hash.Hash never returns an error from Write.
	_, _ = x.state().Write(data)
}

// OutputSize returns the digest length of A.
func (*Hash[A]) OutputSize() int {
	var algorithm A
	return algorithm.Size()
}

// BlockSize returns the block size of A.
func (*Hash[A]) BlockSize() int {
	var algorithm A
	return algorithm.BlockSize()
}

// Finalize returns the digest.
func (x *Hash[A]) Finalize() []byte {
	return x.state().Sum(nil)
}

// Reset returns a hasher holding the current state and leaves x in its
// initial state.
func (x *Hash[A]) Reset() *Hash[A] {
	old := &Hash[A]{h: x.h}
	x.h = nil
	return old
}

var (
	_ digest.FixedResetter[*SHA256]     = (*SHA256)(nil)
	_ digest.FixedResetter[*Keccak256]  = (*Keccak256)(nil)
	_ digest.FixedResetter[*SHA3_256]   = (*SHA3_256)(nil)
	_ digest.FixedResetter[*Blake2b256] = (*Blake2b256)(nil)
	_ digest.FixedResetter[*Blake2b512] = (*Blake2b512)(nil)
	_ digest.FixedResetter[*Blake2s256] = (*Blake2s256)(nil)
	_ digest.FixedResetter[*Ripemd160]  = (*Ripemd160)(nil)
	_ digest.FixedResetter[*Blake256]   = (*Blake256)(nil)
	_ digest.FixedResetter[*Twox64]     = (*Twox64)(nil)
	_ digest.FixedResetter[*Twox128]    = (*Twox128)(nil)
	_ digest.FixedResetter[*Twox256]    = (*Twox256)(nil)
	_ digest.BlockSizer                 = (*SHA256)(nil)
)
