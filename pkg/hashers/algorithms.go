// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashers

import (
	"hash"

	"github.com/decred/dcrd/crypto/blake256"
	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
	"golang.org/x/crypto/sha3"
)

// SHA256 is the SHA-256 hash function, SIMD accelerated where available.
type SHA256 = Hash[SHA256Algorithm]

// SHA256Algorithm is the Algorithm of SHA256.
type SHA256Algorithm struct{}

func (SHA256Algorithm) New() hash.Hash { return sha256simd.New() }
func (SHA256Algorithm) Size() int      { return sha256simd.Size }
func (SHA256Algorithm) BlockSize() int { return sha256simd.BlockSize }

// Keccak256 is the legacy Keccak-256 hash function, as used by Ethereum.
type Keccak256 = Hash[Keccak256Algorithm]

// Keccak256Algorithm is the Algorithm of Keccak256.
type Keccak256Algorithm struct{}

func (Keccak256Algorithm) New() hash.Hash { return sha3.NewLegacyKeccak256() }
func (Keccak256Algorithm) Size() int      { return 32 }
func (Keccak256Algorithm) BlockSize() int { return 136 }

// SHA3_256 is the FIPS-202 SHA3-256 hash function.
type SHA3_256 = Hash[SHA3_256Algorithm] //nolint:revive

// SHA3_256Algorithm is the Algorithm of SHA3_256.
type SHA3_256Algorithm struct{} //nolint:revive

func (SHA3_256Algorithm) New() hash.Hash { return sha3.New256() }
func (SHA3_256Algorithm) Size() int      { return 32 }
func (SHA3_256Algorithm) BlockSize() int { return 136 }

// Blake2b256 is BLAKE2b with a 256-bit digest.
type Blake2b256 = Hash[Blake2b256Algorithm]

// Blake2b256Algorithm is the Algorithm of Blake2b256.
type Blake2b256Algorithm struct{}

func (Blake2b256Algorithm) New() hash.Hash { return mustBlake2b(blake2b.Size256) }
func (Blake2b256Algorithm) Size() int      { return blake2b.Size256 }
func (Blake2b256Algorithm) BlockSize() int { return blake2b.BlockSize }

// Blake2b512 is BLAKE2b with a 512-bit digest.
type Blake2b512 = Hash[Blake2b512Algorithm]

// Blake2b512Algorithm is the Algorithm of Blake2b512.
type Blake2b512Algorithm struct{}

func (Blake2b512Algorithm) New() hash.Hash { return mustBlake2b(blake2b.Size) }
func (Blake2b512Algorithm) Size() int      { return blake2b.Size }
func (Blake2b512Algorithm) BlockSize() int { return blake2b.BlockSize }

// Blake2s256 is BLAKE2s with a 256-bit digest.
type Blake2s256 = Hash[Blake2s256Algorithm]

// Blake2s256Algorithm is the Algorithm of Blake2s256.
type Blake2s256Algorithm struct{}

func (Blake2s256Algorithm) New() hash.Hash {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err) // only fails for keys longer than 32 bytes
	}
	return h
}
func (Blake2s256Algorithm) Size() int      { return blake2s.Size }
func (Blake2s256Algorithm) BlockSize() int { return blake2s.BlockSize }

// Ripemd160 is the RIPEMD-160 hash function.
type Ripemd160 = Hash[Ripemd160Algorithm]

// Ripemd160Algorithm is the Algorithm of Ripemd160.
type Ripemd160Algorithm struct{}

func (Ripemd160Algorithm) New() hash.Hash { return ripemd160.New() }
func (Ripemd160Algorithm) Size() int      { return ripemd160.Size }
func (Ripemd160Algorithm) BlockSize() int { return ripemd160.BlockSize }

// Blake256 is the BLAKE-256 (SHA-3 finalist) hash function.
type Blake256 = Hash[Blake256Algorithm]

// Blake256Algorithm is the Algorithm of Blake256.
type Blake256Algorithm struct{}

func (Blake256Algorithm) New() hash.Hash { return blake256.New() }
func (Blake256Algorithm) Size() int      { return blake256.Size }
func (Blake256Algorithm) BlockSize() int { return blake256.BlockSize }

func mustBlake2b(size int) hash.Hash {
	h, err := blake2b.New(size, nil)
	if err != nil {
		panic(err)
	}
	return h
}
