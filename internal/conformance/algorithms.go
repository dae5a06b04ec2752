// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package conformance

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ChainSafe/go-digest/pkg/digest"
	"github.com/ChainSafe/go-digest/pkg/digest/dev"
	"github.com/ChainSafe/go-digest/pkg/hashers"
)

// Kind is the output shape of an algorithm.
type Kind string

const (
	// KindFixed is a fixed-output algorithm.
	KindFixed Kind = "fixed"
	// KindVariable is a variable-output algorithm, sized at construction.
	KindVariable Kind = "variable"
	// KindXOF is an extendable-output function.
	KindXOF Kind = "xof"
)

var (
	// ErrAlgorithmUnknown is returned for names absent from the registry.
	ErrAlgorithmUnknown = errors.New("algorithm is unknown")
	// ErrOutputSizeRequired is returned when generating vectors for a
	// variable-output or extendable-output algorithm without an output size.
	ErrOutputSizeRequired = errors.New("output size is required")
)

// Algorithm is a registered hasher with the means to check and to generate
// test vectors for it.
type Algorithm struct {
	Name string
	Kind Kind
	// Check runs every feeding strategy over one vector.
	Check dev.CheckFunc
	// Generate returns the output for input. size is ignored by fixed-output
	// algorithms and must be positive for the others.
	Generate func(input []byte, size int) ([]byte, error)
}

func fixed[T any, P digest.FixedPtr[T]](name string) Algorithm {
	return Algorithm{
		Name:  name,
		Kind:  KindFixed,
		Check: dev.CheckFixed[T, P](),
		Generate: func(input []byte, _ int) ([]byte, error) {
			return digest.Sum[T, P](input), nil
		},
	}
}

func variable[H digest.VariableResetter[H]](name string, newFn func(size int) (H, error)) Algorithm {
	return Algorithm{
		Name:  name,
		Kind:  KindVariable,
		Check: dev.CheckVariable(newFn),
		Generate: func(input []byte, size int) ([]byte, error) {
			h, err := newFn(size)
			if err != nil {
				return nil, err
			}
			h.Process(input)
			output := make([]byte, size)
			h.FinalizeInto(output)
			return output, nil
		},
	}
}

func extendable[H digest.ExtendableResetter[H]](name string, newFn func() H) Algorithm {
	return Algorithm{
		Name:  name,
		Kind:  KindXOF,
		Check: dev.CheckXOF(newFn),
		Generate: func(input []byte, size int) ([]byte, error) {
			h := newFn()
			h.Process(input)
			output := make([]byte, size)
			_, err := io.ReadFull(h.FinalizeXOF(), output)
			if err != nil {
				return nil, fmt.Errorf("reading output: %w", err)
			}
			return output, nil
		},
	}
}

var algorithms = newRegistry(
	fixed[hashers.SHA256]("sha256"),
	fixed[hashers.SHA3_256]("sha3_256"),
	fixed[hashers.Keccak256]("keccak256"),
	fixed[hashers.Blake2b256]("blake2b256"),
	fixed[hashers.Blake2b512]("blake2b512"),
	fixed[hashers.Blake2s256]("blake2s256"),
	fixed[hashers.Ripemd160]("ripemd160"),
	fixed[hashers.Blake256]("blake256"),
	fixed[hashers.Blake3]("blake3"),
	fixed[hashers.Twox64]("twox64"),
	fixed[hashers.Twox128]("twox128"),
	fixed[hashers.Twox256]("twox256"),
	variable("blake2b", hashers.NewBlake2b),
	variable("blake3_variable", hashers.NewBlake3Variable),
	extendable("shake128", func() *hashers.Shake128 { return &hashers.Shake128{} }),
	extendable("shake256", func() *hashers.Shake256 { return &hashers.Shake256{} }),
	extendable("blake3_xof", func() *hashers.Blake3 { return &hashers.Blake3{} }),
)

func newRegistry(list ...Algorithm) map[string]Algorithm {
	registry := make(map[string]Algorithm, len(list))
	for _, algorithm := range list {
		if _, exists := registry[algorithm.Name]; exists {
			panic("algorithm registered twice: " + algorithm.Name)
		}
		registry[algorithm.Name] = algorithm
	}
	return registry
}

// Lookup returns the algorithm registered as name.
func Lookup(name string) (Algorithm, error) {
	algorithm, ok := algorithms[name]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %s", ErrAlgorithmUnknown, name)
	}
	return algorithm, nil
}

// Algorithms returns all registered algorithms sorted by name.
func Algorithms() []Algorithm {
	list := make([]Algorithm, 0, len(algorithms))
	for _, algorithm := range algorithms {
		list = append(list, algorithm)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}
