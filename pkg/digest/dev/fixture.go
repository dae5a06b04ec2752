// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

var (
	// ErrVectorOutOfRange is returned when a record points outside the
	// inputs or outputs buffer.
	ErrVectorOutOfRange = errors.New("vector out of range")
	// ErrFixtureTooLarge is returned when a buffer would grow beyond what a
	// uint16 offset can address.
	ErrFixtureTooLarge = errors.New("fixture too large")
)

// File name suffixes of the three buffers of a fixture.
const (
	InputsSuffix  = ".inputs.bin"
	OutputsSuffix = ".outputs.bin"
	IndexSuffix   = ".index.bin"

	// CompressedSuffix is appended to the name of a zstd compressed buffer.
	CompressedSuffix = ".zst"
)

// Fixture is a named set of test vectors: two flat buffers and the records
// locating each vector in them.
type Fixture struct {
	Name    string
	Inputs  []byte
	Outputs []byte
	Records []Record
}

// Vector returns the input and expected output of record i.
func (f *Fixture) Vector(i int) (input, output []byte, err error) {
	if i < 0 || i >= len(f.Records) {
		return nil, nil, fmt.Errorf("%w: record %d of %d", ErrVectorOutOfRange, i, len(f.Records))
	}

	r := f.Records[i]
	if r.InputStart > r.InputEnd || int(r.InputEnd) > len(f.Inputs) {
		return nil, nil, fmt.Errorf("%w: record %d: input [%d..%d] of %d bytes",
			ErrVectorOutOfRange, i, r.InputStart, r.InputEnd, len(f.Inputs))
	}
	if r.OutputStart > r.OutputEnd || int(r.OutputEnd) > len(f.Outputs) {
		return nil, nil, fmt.Errorf("%w: record %d: output [%d..%d] of %d bytes",
			ErrVectorOutOfRange, i, r.OutputStart, r.OutputEnd, len(f.Outputs))
	}

	// Capacity is capped so a hasher appending to its input cannot clobber
	// the following vector.
	input = f.Inputs[r.InputStart:r.InputEnd:r.InputEnd]
	output = f.Outputs[r.OutputStart:r.OutputEnd:r.OutputEnd]
	return input, output, nil
}

// LoadFixture reads the fixture called name from fsys. Each buffer is read
// from its plain file or, if that does not exist, from the zstd compressed
// file next to it. The index is decoded before anything else so a malformed
// one fails the whole fixture.
func LoadFixture(fsys fs.FS, name string) (*Fixture, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	index, err := readBuffer(fsys, decoder, name+IndexSuffix)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}

	records, err := DecodeIndex(index)
	if err != nil {
		return nil, fmt.Errorf("decoding index of %s: %w", name, err)
	}

	inputs, err := readBuffer(fsys, decoder, name+InputsSuffix)
	if err != nil {
		return nil, fmt.Errorf("reading inputs: %w", err)
	}

	outputs, err := readBuffer(fsys, decoder, name+OutputsSuffix)
	if err != nil {
		return nil, fmt.Errorf("reading outputs: %w", err)
	}

	return &Fixture{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		Records: records,
	}, nil
}

func readBuffer(fsys fs.FS, decoder *zstd.Decoder, path string) (data []byte, err error) {
	data, err = fs.ReadFile(fsys, path)
	if !errors.Is(err, fs.ErrNotExist) {
		return data, err
	}

	compressed, compressedErr := fs.ReadFile(fsys, path+CompressedSuffix)
	if compressedErr != nil {
		// report the plain file as missing
		return nil, err
	}

	data, err = decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path+CompressedSuffix, err)
	}
	return data, nil
}

// WriteFixture writes the three buffers of f to dir.
func WriteFixture(dir string, f *Fixture) error {
	return writeFixture(dir, f, nil)
}

// WriteFixtureCompressed writes the three buffers of f to dir, each
// compressed with zstd.
func WriteFixtureCompressed(dir string, f *Fixture) (err error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("creating zstd encoder: %w", err)
	}
	defer encoder.Close()

	return writeFixture(dir, f, encoder)
}

func writeFixture(dir string, f *Fixture, encoder *zstd.Encoder) (err error) {
	files := []struct {
		suffix string
		data   []byte
	}{
		{suffix: InputsSuffix, data: f.Inputs},
		{suffix: OutputsSuffix, data: f.Outputs},
		{suffix: IndexSuffix, data: EncodeIndex(f.Records)},
	}

	for _, file := range files {
		path := filepath.Join(dir, f.Name+file.suffix)
		data := file.data
		if encoder != nil {
			path += CompressedSuffix
			data = encoder.EncodeAll(data, nil)
		}

		err = os.WriteFile(path, data, 0o644)
		if err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// Builder accumulates vectors into a Fixture.
type Builder struct {
	fixture Fixture
}

// NewBuilder returns a builder for a fixture called name.
func NewBuilder(name string) *Builder {
	return &Builder{fixture: Fixture{Name: name}}
}

// Add appends a vector.
func (b *Builder) Add(input, output []byte) error {
	inputStart, inputEnd := len(b.fixture.Inputs), len(b.fixture.Inputs)+len(input)
	outputStart, outputEnd := len(b.fixture.Outputs), len(b.fixture.Outputs)+len(output)
	if inputEnd > math.MaxUint16 || outputEnd > math.MaxUint16 {
		return fmt.Errorf("%w: vector %d needs inputs up to %d and outputs up to %d bytes",
			ErrFixtureTooLarge, len(b.fixture.Records), inputEnd, outputEnd)
	}

	b.fixture.Inputs = append(b.fixture.Inputs, input...)
	b.fixture.Outputs = append(b.fixture.Outputs, output...)
	b.fixture.Records = append(b.fixture.Records, Record{
		InputStart:  uint16(inputStart),
		InputEnd:    uint16(inputEnd),
		OutputStart: uint16(outputStart),
		OutputEnd:   uint16(outputEnd),
	})
	return nil
}

// Fixture returns the fixture built so far.
func (b *Builder) Fixture() *Fixture {
	f := b.fixture
	return &f
}
