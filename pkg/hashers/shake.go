// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashers

import (
	"golang.org/x/crypto/sha3"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

var (
	_ digest.ExtendableResetter[*Shake128] = (*Shake128)(nil)
	_ digest.ExtendableResetter[*Shake256] = (*Shake256)(nil)
)

// Shake128 is the SHAKE128 extendable-output function.
type Shake128 struct {
	h sha3.ShakeHash
}

func (s *Shake128) state() sha3.ShakeHash {
	if s.h == nil {
		s.h = sha3.NewShake128()
	}
	return s.h
}

// Process feeds data into the function.
func (s *Shake128) Process(data []byte) {
	if len(data) == 0 {
		return
	}
	_, _ = s.state().Write(data)
}

// BlockSize returns the SHAKE128 rate in bytes.
func (*Shake128) BlockSize() int { return 168 }

// FinalizeXOF returns a reader over the output stream.
func (s *Shake128) FinalizeXOF() digest.XOFReader {
	return s.state()
}

// Reset returns a hasher holding the current state and leaves s in its
// initial state.
func (s *Shake128) Reset() *Shake128 {
	old := &Shake128{h: s.h}
	s.h = nil
	return old
}

// Shake256 is the SHAKE256 extendable-output function.
type Shake256 struct {
	h sha3.ShakeHash
}

func (s *Shake256) state() sha3.ShakeHash {
	if s.h == nil {
		s.h = sha3.NewShake256()
	}
	return s.h
}

// Process feeds data into the function.
func (s *Shake256) Process(data []byte) {
	if len(data) == 0 {
		return
	}
	_, _ = s.state().Write(data)
}

// BlockSize returns the SHAKE256 rate in bytes.
func (*Shake256) BlockSize() int { return 136 }

// FinalizeXOF returns a reader over the output stream.
func (s *Shake256) FinalizeXOF() digest.XOFReader {
	return s.state()
}

// Reset returns a hasher holding the current state and leaves s in its
// initial state.
func (s *Shake256) Reset() *Shake256 {
	old := &Shake256{h: s.h}
	s.h = nil
	return old
}
