// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChainSafe/go-digest/pkg/digest/dev"
)

func Test_Algorithms(t *testing.T) {
	t.Parallel()

	var names []string
	kinds := map[string]Kind{}
	for _, algorithm := range Algorithms() {
		names = append(names, algorithm.Name)
		kinds[algorithm.Name] = algorithm.Kind
	}

	expectedNames := []string{
		"blake256", "blake2b", "blake2b256", "blake2b512", "blake2s256",
		"blake3", "blake3_variable", "blake3_xof", "keccak256", "ripemd160",
		"sha256", "sha3_256", "shake128", "shake256",
		"twox128", "twox256", "twox64",
	}
	assert.Equal(t, expectedNames, names)
	assert.Equal(t, KindFixed, kinds["sha256"])
	assert.Equal(t, KindVariable, kinds["blake2b"])
	assert.Equal(t, KindXOF, kinds["shake256"])
}

func Test_Lookup(t *testing.T) {
	t.Parallel()

	algorithm, err := Lookup("keccak256")
	require.NoError(t, err)
	assert.Equal(t, "keccak256", algorithm.Name)

	_, err = Lookup("md5")
	assert.ErrorIs(t, err, ErrAlgorithmUnknown)
	assert.EqualError(t, err, "algorithm is unknown: md5")
}

// Test_Algorithms_generateThenCheck checks every registered algorithm
// accepts the vectors it generates through every feeding strategy.
func Test_Algorithms_generateThenCheck(t *testing.T) {
	t.Parallel()

	inputs := Corpus(300)

	for _, algorithm := range Algorithms() {
		algorithm := algorithm
		t.Run(algorithm.Name, func(t *testing.T) {
			t.Parallel()

			fixture, err := Generate(algorithm, inputs, 48)
			require.NoError(t, err)
			require.Len(t, fixture.Records, len(inputs))

			dev.RunTest(t, fixture, algorithm.Check)
		})
	}
}

func Test_newRegistry_duplicate(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "algorithm registered twice: a", func() {
		newRegistry(Algorithm{Name: "a"}, Algorithm{Name: "a"})
	})
}
