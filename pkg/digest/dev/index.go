// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dev

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RecordSize is the encoded size of a Record: four little-endian uint16.
const RecordSize = 8

// ErrMalformedIndex is returned when an index buffer is not a whole number
// of records.
var ErrMalformedIndex = errors.New("malformed index")

// Record locates one test vector: the half-open byte ranges of its input
// in the inputs buffer and of its expected output in the outputs buffer.
type Record struct {
	InputStart  uint16
	InputEnd    uint16
	OutputStart uint16
	OutputEnd   uint16
}

// DecodeIndex decodes an index buffer into records. Offsets are not checked
// against the inputs and outputs buffers here, see Fixture.Vector.
func DecodeIndex(index []byte) (records []Record, err error) {
	if len(index)%RecordSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			ErrMalformedIndex, len(index), RecordSize)
	}

	records = make([]Record, 0, len(index)/RecordSize)
	for offset := 0; offset < len(index); offset += RecordSize {
		encoded := index[offset : offset+RecordSize]
		records = append(records, Record{
			InputStart:  binary.LittleEndian.Uint16(encoded[0:2]),
			InputEnd:    binary.LittleEndian.Uint16(encoded[2:4]),
			OutputStart: binary.LittleEndian.Uint16(encoded[4:6]),
			OutputEnd:   binary.LittleEndian.Uint16(encoded[6:8]),
		})
	}
	return records, nil
}

// EncodeIndex is the inverse of DecodeIndex.
func EncodeIndex(records []Record) []byte {
	index := make([]byte, 0, len(records)*RecordSize)
	for _, record := range records {
		index = binary.LittleEndian.AppendUint16(index, record.InputStart)
		index = binary.LittleEndian.AppendUint16(index, record.InputEnd)
		index = binary.LittleEndian.AppendUint16(index, record.OutputStart)
		index = binary.LittleEndian.AppendUint16(index, record.OutputEnd)
	}
	return index
}
