// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package hashers

import (
	"encoding/binary"
	"hash"

	"github.com/OneOfOne/xxhash"
)

// twox runs one xxHash64 per seed, seeds counting up from zero, and
// concatenates the little-endian sums.
type twox struct {
	lanes []*xxhash.XXHash64
}

func newTwox(lanes int) *twox {
	t := &twox{lanes: make([]*xxhash.XXHash64, lanes)}
	for seed := range t.lanes {
		t.lanes[seed] = xxhash.NewS64(uint64(seed))
	}
	return t
}

func (t *twox) Write(p []byte) (n int, err error) {
	for _, lane := range t.lanes {
		_, _ = lane.Write(p)
	}
	return len(p), nil
}

func (t *twox) Sum(b []byte) []byte {
	for _, lane := range t.lanes {
		b = binary.LittleEndian.AppendUint64(b, lane.Sum64())
	}
	return b
}

func (t *twox) Reset() {
	for _, lane := range t.lanes {
		lane.Reset()
	}
}

func (t *twox) Size() int      { return 8 * len(t.lanes) }
func (t *twox) BlockSize() int { return 32 }

// Twox64 is xxHash64 with seed 0, encoded little-endian.
type Twox64 = Hash[Twox64Algorithm]

// Twox64Algorithm is the Algorithm of Twox64.
type Twox64Algorithm struct{}

func (Twox64Algorithm) New() hash.Hash { return newTwox(1) }
func (Twox64Algorithm) Size() int      { return 8 }
func (Twox64Algorithm) BlockSize() int { return 32 }

// Twox128 concatenates xxHash64 with seeds 0 and 1.
type Twox128 = Hash[Twox128Algorithm]

// Twox128Algorithm is the Algorithm of Twox128.
type Twox128Algorithm struct{}

func (Twox128Algorithm) New() hash.Hash { return newTwox(2) }
func (Twox128Algorithm) Size() int      { return 16 }
func (Twox128Algorithm) BlockSize() int { return 32 }

// Twox256 concatenates xxHash64 with seeds 0 to 3.
type Twox256 = Hash[Twox256Algorithm]

// Twox256Algorithm is the Algorithm of Twox256.
type Twox256Algorithm struct{}

func (Twox256Algorithm) New() hash.Hash { return newTwox(4) }
func (Twox256Algorithm) Size() int      { return 32 }
func (Twox256Algorithm) BlockSize() int { return 32 }
