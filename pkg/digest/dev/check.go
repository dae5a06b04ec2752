// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"fmt"

	"github.com/ChainSafe/go-digest/pkg/digest"
)

// CheckFunc feeds one vector through every strategy and returns the first
// failure, a *MismatchError for wrong outputs.
// A CheckFunc creates its own hashers so it may run concurrently.
type CheckFunc func(input, expected []byte) error

// CheckFixed checks a default-constructible fixed-output hasher through the
// Digest wrapper, resetting with ResultReset.
func CheckFixed[T any, P digest.FixedPtr[T]]() CheckFunc {
	return func(input, expected []byte) error {
		d := digest.New[T, P]()
		d.Input(input)
		err := compare(WholeMessage, d.ResultReset(), expected)
		if err != nil {
			return err
		}

		d.Input(input)
		err = compare(AfterReset, d.Result(), expected)
		if err != nil {
			return err
		}

		d = digest.New[T, P]()
		feedPieces(d.Input, input)
		err = compare(MessageInPieces, d.Result(), expected)
		if err != nil {
			return err
		}

		d = digest.New[T, P]()
		feedBytes(d.Input, input)
		return compare(ByteByByte, d.Result(), expected)
	}
}

// CheckFixedReset checks a fixed-output hasher through its own Reset.
func CheckFixedReset[H digest.FixedResetter[H]](newFn func() H) CheckFunc {
	return func(input, expected []byte) error {
		h := newFn()
		h.Process(input)
		err := compare(WholeMessage, digest.FinalizeReset(h), expected)
		if err != nil {
			return err
		}

		h.Process(input)
		err = compare(AfterReset, h.Finalize(), expected)
		if err != nil {
			return err
		}

		h = newFn()
		feedPieces(h.Process, input)
		err = compare(MessageInPieces, h.Finalize(), expected)
		if err != nil {
			return err
		}

		h = newFn()
		feedBytes(h.Process, input)
		return compare(ByteByByte, h.Finalize(), expected)
	}
}

// CheckVariable checks a variable-output hasher. Every vector constructs
// its hashers with the length of its expected output.
func CheckVariable[H digest.VariableResetter[H]](newFn func(size int) (H, error)) CheckFunc {
	return func(input, expected []byte) error {
		size := len(expected)
		h, err := newVariable(newFn, size)
		if err != nil {
			return err
		}

		buf := make([]byte, size)
		poison(buf, expected)
		h.Process(input)
		digest.FinalizeIntoReset(h, buf)
		err = compare(WholeMessage, buf, expected)
		if err != nil {
			return err
		}

		if h.OutputSize() != size {
			return fmt.Errorf("%w: %d after reset, requested %d", ErrOutputSize, h.OutputSize(), size)
		}
		poison(buf, expected)
		h.Process(input)
		h.FinalizeInto(buf)
		err = compare(AfterReset, buf, expected)
		if err != nil {
			return err
		}

		h, err = newVariable(newFn, size)
		if err != nil {
			return err
		}
		poison(buf, expected)
		feedPieces(h.Process, input)
		h.FinalizeInto(buf)
		err = compare(MessageInPieces, buf, expected)
		if err != nil {
			return err
		}

		h, err = newVariable(newFn, size)
		if err != nil {
			return err
		}
		poison(buf, expected)
		feedBytes(h.Process, input)
		h.FinalizeInto(buf)
		return compare(ByteByByte, buf, expected)
	}
}

func newVariable[H digest.VariableOutput](newFn func(size int) (H, error), size int) (h H, err error) {
	h, err = newFn(size)
	if err != nil {
		return h, fmt.Errorf("creating hasher with output size %d: %w", size, err)
	}
	if h.OutputSize() != size {
		return h, fmt.Errorf("%w: %d, requested %d", ErrOutputSize, h.OutputSize(), size)
	}
	return h, nil
}

// CheckXOF checks an extendable-output function. Besides the feeding
// strategies it reads the output of a single reader one byte at a time.
func CheckXOF[H digest.ExtendableResetter[H]](newFn func() H) CheckFunc {
	return func(input, expected []byte) error {
		buf := make([]byte, len(expected))

		h := newFn()
		h.Process(input)
		err := checkRead(WholeMessage, digest.FinalizeXOFReset(h), buf, expected)
		if err != nil {
			return err
		}

		h.Process(input)
		err = checkRead(AfterReset, h.FinalizeXOF(), buf, expected)
		if err != nil {
			return err
		}

		h = newFn()
		feedPieces(h.Process, input)
		err = checkRead(MessageInPieces, h.FinalizeXOF(), buf, expected)
		if err != nil {
			return err
		}

		h = newFn()
		feedBytes(h.Process, input)
		err = checkRead(ByteByByte, h.FinalizeXOF(), buf, expected)
		if err != nil {
			return err
		}

		h = newFn()
		h.Process(input)
		reader := h.FinalizeXOF()
		poison(buf, expected)
		for i := range buf {
			err = readFull(ReaderByteByByte, reader, buf[i:i+1])
			if err != nil {
				return err
			}
		}
		return compare(ReaderByteByByte, buf, expected)
	}
}

func checkRead(strategy Strategy, r digest.XOFReader, buf, expected []byte) error {
	poison(buf, expected)
	err := readFull(strategy, r, buf)
	if err != nil {
		return err
	}
	return compare(strategy, buf, expected)
}
