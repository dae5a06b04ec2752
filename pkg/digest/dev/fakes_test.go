// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"testing/iotest"

	"golang.org/x/crypto/sha3"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

// fakeFixed computes SHA-256 of everything it was fed. Its zero value is a
// correct hasher; the flags inject bugs.
type fakeFixed struct {
	data  []byte
	calls int
	// keepOnReset makes Reset leave the fed data in place.
	keepOnReset bool
	// firstCallOnly ignores every Process call but the first.
	firstCallOnly bool
}

func (f *fakeFixed) Process(data []byte) {
	f.calls++
	if f.firstCallOnly && f.calls > 1 {
		return
	}
	f.data = append(f.data, data...)
}

func (*fakeFixed) OutputSize() int { return sha256.Size }

func (f *fakeFixed) Finalize() []byte {
	sum := sha256.Sum256(f.data)
	return sum[:]
}

func (f *fakeFixed) Reset() *fakeFixed {
	old := *f
	old.data = bytes.Clone(f.data)
	if !f.keepOnReset {
		f.data = nil
		f.calls = 0
	}
	return &old
}

var _ digest.FixedResetter[*fakeFixed] = (*fakeFixed)(nil)

// lateByteDropper loses single byte writes once it has seen two writes.
type lateByteDropper struct {
	data  []byte
	calls int
}

func (l *lateByteDropper) Process(data []byte) {
	l.calls++
	if len(data) == 1 && l.calls > 2 {
		return
	}
	l.data = append(l.data, data...)
}

func (*lateByteDropper) OutputSize() int { return sha256.Size }

func (l *lateByteDropper) Finalize() []byte {
	sum := sha256.Sum256(l.data)
	return sum[:]
}

func sha256Sum(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

var errTooLarge = errors.New("too large")

// fakeVariable outputs a prefix of SHA-512 of what it was fed.
type fakeVariable struct {
	size int
	data []byte
	// misreport makes OutputSize claim one byte more than requested.
	misreport bool
	// shortWrite leaves the last output byte untouched.
	shortWrite bool
}

func newFakeVariable(size int) (*fakeVariable, error) {
	if size > sha512.Size {
		return nil, errTooLarge
	}
	return &fakeVariable{size: size}, nil
}

func (f *fakeVariable) Process(data []byte) {
	f.data = append(f.data, data...)
}

func (f *fakeVariable) OutputSize() int {
	if f.misreport {
		return f.size + 1
	}
	return f.size
}

func (f *fakeVariable) FinalizeInto(out []byte) {
	sum := sha512.Sum512(f.data)
	if f.shortWrite {
		copy(out[:len(out)-1], sum[:])
		return
	}
	copy(out, sum[:f.size])
}

func (f *fakeVariable) Reset() *fakeVariable {
	old := *f
	f.data = nil
	return &old
}

var _ digest.VariableResetter[*fakeVariable] = (*fakeVariable)(nil)

func sha512Prefix(data []byte, size int) []byte {
	sum := sha512.Sum512(data)
	return sum[:size]
}

// fakeXOF is SHAKE128 over what it was fed.
type fakeXOF struct {
	data []byte
	// restart makes every Read start over at the first output byte.
	restart bool
	// oneByte makes every Read return at most one byte.
	oneByte bool
}

func (f *fakeXOF) Process(data []byte) {
	f.data = append(f.data, data...)
}

func (f *fakeXOF) FinalizeXOF() digest.XOFReader {
	if f.restart {
		return &restartingReader{data: f.data}
	}
	h := sha3.NewShake128()
	_, _ = h.Write(f.data)
	if f.oneByte {
		return iotest.OneByteReader(h)
	}
	return h
}

func (f *fakeXOF) Reset() *fakeXOF {
	old := *f
	f.data = nil
	return &old
}

var _ digest.ExtendableResetter[*fakeXOF] = (*fakeXOF)(nil)

type restartingReader struct {
	data []byte
}

func (r *restartingReader) Read(p []byte) (n int, err error) {
	sha3.ShakeSum128(p, r.data)
	return len(p), nil
}

func shake128(data []byte, size int) []byte {
	out := make([]byte, size)
	sha3.ShakeSum128(out, data)
	return out
}
