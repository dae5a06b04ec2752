// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package conformance

import (
	"fmt"

	"github.com/ChainSafe/go-digest/pkg/digest/dev"
)

// Generate builds a fixture named after the algorithm, holding one vector
// per input. outputSize is the output length of every vector for
// variable-output and extendable-output algorithms; it is ignored for
// fixed-output ones.
func Generate(algorithm Algorithm, inputs [][]byte, outputSize int) (*dev.Fixture, error) {
	if algorithm.Kind != KindFixed && outputSize <= 0 {
		return nil, fmt.Errorf("%w: %s is a %s algorithm", ErrOutputSizeRequired, algorithm.Name, algorithm.Kind)
	}

	builder := dev.NewBuilder(algorithm.Name)
	for i, input := range inputs {
		output, err := algorithm.Generate(input, outputSize)
		if err != nil {
			return nil, fmt.Errorf("generating vector %d: %w", i, err)
		}

		err = builder.Add(input, output)
		if err != nil {
			return nil, err
		}
	}
	return builder.Fixture(), nil
}

// Corpus returns deterministic inputs whose lengths straddle the block
// sizes of every registered algorithm, from the empty message up to
// maxLength bytes.
func Corpus(maxLength int) (inputs [][]byte) {
	lengths := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 32, 33, 55, 56, 57, 63, 64, 65,
		111, 112, 113, 127, 128, 129, 135, 136, 137, 167, 168, 169, 255, 256, 257,
		511, 512, 513, 1000, 1023, 1024, 1025}

	for _, length := range lengths {
		if length > maxLength {
			break
		}
		input := make([]byte, length)
		for i := range input {
			input[i] = byte(i*7 + length*13 + 1)
		}
		inputs = append(inputs, input)
	}
	return inputs
}
