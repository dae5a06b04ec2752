// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"bytes"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

// OneMillionA hashes one million 'a' bytes, fed as 50 000 chunks of 10 bytes
// followed by a single 500 000 byte chunk, and compares the digest with
// expected. Large inputs catch length counter overflows and block count bugs.
// A wrong digest is returned as a *MismatchError without input.
func OneMillionA[T any, P digest.FixedPtr[T]](expected []byte) error {
	d := digest.New[T, P]()

	small := bytes.Repeat([]byte{'a'}, 10)
	for i := 0; i < 50_000; i++ {
		d.Input(small)
	}
	d.Input(bytes.Repeat([]byte{'a'}, 500_000))

	got := d.Result()
	if !bytes.Equal(got, expected) {
		return &MismatchError{Strategy: OneMillionChars, Expected: expected, Got: got}
	}
	return nil
}
