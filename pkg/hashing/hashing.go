// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package hashing provides one-shot hash functions returning fixed-size
// arrays.
package hashing

import (
	"github.com/ChainSafe/go-digest/pkg/digest"
	"github.com/ChainSafe/go-digest/pkg/hashers"
)

// Blake2b128 returns the 128-bit blake2b hash of the input data.
func Blake2b128(data []byte) (hash [16]byte) {
	h, err := hashers.NewBlake2b(len(hash))
	if err != nil {
		panic(err)
	}
	h.Process(data)
	h.FinalizeInto(hash[:])
	return hash
}

// Blake2bHash returns the 256-bit blake2b hash of the input data.
func Blake2bHash(data []byte) [32]byte {
	return [32]byte(digest.Sum[hashers.Blake2b256](data))
}

// Blake2b512 returns the 512-bit blake2b hash of the input data.
func Blake2b512(data []byte) [64]byte {
	return [64]byte(digest.Sum[hashers.Blake2b512](data))
}

// Keccak256 returns the keccak256 hash of the input data.
func Keccak256(data []byte) [32]byte {
	return [32]byte(digest.Sum[hashers.Keccak256](data))
}

// Sha256 returns the SHA2-256 hash of the input data.
func Sha256(data []byte) [32]byte {
	return [32]byte(digest.Sum[hashers.SHA256](data))
}

// Blake3 returns the 256-bit blake3 hash of the input data.
func Blake3(data []byte) [32]byte {
	return [32]byte(digest.Sum[hashers.Blake3](data))
}

// Twox64 returns the xxHash64 of the input data with seed 0, little-endian.
func Twox64(data []byte) [8]byte {
	return [8]byte(digest.Sum[hashers.Twox64](data))
}

// Twox128 computes xxHash64 with seeds 0 and 1 and concatenates the results.
func Twox128(data []byte) [16]byte {
	return [16]byte(digest.Sum[hashers.Twox128](data))
}

// Twox256 computes xxHash64 with seeds 0 to 3 and concatenates the results.
func Twox256(data []byte) [32]byte {
	return [32]byte(digest.Sum[hashers.Twox256](data))
}
