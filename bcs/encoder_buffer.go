// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

type BufferEncoder struct {
	buffer []byte
}

var _ Encoder = (*BufferEncoder)(nil)

// NewBufferEncoder creates a new BufferEncoder appending to the provided buffer.
// The buffer grows as needed, a pre-sized capacity avoids reallocations.
func NewBufferEncoder(buffer []byte) *BufferEncoder {
	return &BufferEncoder{
		buffer: buffer,
	}
}

func (e *BufferEncoder) GetPosition() int {
	return len(e.buffer)
}

func (e *BufferEncoder) GetBuffer() []byte {
	return e.buffer
}

func (e *BufferEncoder) SetBuffer(buffer []byte) {
	e.buffer = buffer
}

func (e *BufferEncoder) EncodeBool(v bool) {
	if v {
		e.buffer = append(e.buffer, 0x01)
	} else {
		e.buffer = append(e.buffer, 0x00)
	}
}

func (e *BufferEncoder) EncodeUint8(v uint8) {
	e.buffer = append(e.buffer, v)
}

func (e *BufferEncoder) EncodeUint16(v uint16) {
	e.buffer = binary.LittleEndian.AppendUint16(e.buffer, v)
}

func (e *BufferEncoder) EncodeUint32(v uint32) {
	e.buffer = binary.LittleEndian.AppendUint32(e.buffer, v)
}

func (e *BufferEncoder) EncodeUint64(v uint64) {
	e.buffer = binary.LittleEndian.AppendUint64(e.buffer, v)
}

// EncodeUint128 writes the low 16 bytes of v in little endian order.
// Values wider than 128 bits are rejected.
func (e *BufferEncoder) EncodeUint128(v *uint256.Int) error {
	if v.BitLen() > 128 {
		return ErrValueRange
	}
	e.buffer = binary.LittleEndian.AppendUint64(e.buffer, v[0])
	e.buffer = binary.LittleEndian.AppendUint64(e.buffer, v[1])
	return nil
}

func (e *BufferEncoder) EncodeUint256(v *uint256.Int) {
	// uint256.Int limbs are stored least significant first
	for i := 0; i < 4; i++ {
		e.buffer = binary.LittleEndian.AppendUint64(e.buffer, v[i])
	}
}

func (e *BufferEncoder) EncodeUleb128(v uint64) {
	e.buffer = appendUleb128(e.buffer, v)
}

func (e *BufferEncoder) EncodeBytes(v []byte) {
	e.buffer = append(e.buffer, v...)
}
