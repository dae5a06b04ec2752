// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package digest

// Digest is the convenience API over a default-constructible fixed-output
// hasher. Any type T whose pointer satisfies FixedOutput gets it for free,
// e.g. Digest[hashers.SHA256, *hashers.SHA256].
//
// The zero value is ready to use.
type Digest[T any, P FixedPtr[T]] struct {
	state T
}

// New creates a digest in its initial state.
func New[T any, P FixedPtr[T]]() *Digest[T, P] {
	return &Digest[T, P]{}
}

// Input feeds data into the digest. It can be called repeatedly for
// streaming messages.
func (d *Digest[T, P]) Input(data []byte) {
	P(&d.state).Process(data)
}

// Result returns the digest and consumes d.
func (d *Digest[T, P]) Result() []byte {
	return P(&d.state).Finalize()
}

// ResultReset returns the digest and resets d to its initial state.
func (d *Digest[T, P]) ResultReset() []byte {
	old := d.state
	var fresh T
	d.state = fresh
	return P(&old).Finalize()
}

// OutputSize returns the digest length in bytes.
func (d *Digest[T, P]) OutputSize() int {
	return P(&d.state).OutputSize()
}

// OutputSize returns the digest length of T without an instance at hand.
func OutputSize[T any, P FixedPtr[T]]() int {
	var h T
	return P(&h).OutputSize()
}

// Sum computes the digest of data in one call: it creates a hasher, feeds
// data and finalizes.
//
//	sum := digest.Sum[hashers.SHA256]([]byte("Hello world"))
func Sum[T any, P FixedPtr[T]](data []byte) []byte {
	var h T
	P(&h).Process(data)
	return P(&h).Finalize()
}
