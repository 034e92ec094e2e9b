// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

type BufferDecoder struct {
	buffer    []byte
	bufferLen int
	position  int
}

var _ Decoder = (*BufferDecoder)(nil)

func NewBufferDecoder(buffer []byte) *BufferDecoder {
	return &BufferDecoder{
		buffer:    buffer,
		bufferLen: len(buffer),
		position:  0,
	}
}

func (e *BufferDecoder) GetPosition() int {
	return e.position
}

func (e *BufferDecoder) GetLength() int {
	return e.bufferLen - e.position
}

func (e *BufferDecoder) DecodeBool() (bool, error) {
	if e.GetLength() < 1 {
		return false, ErrUnexpectedEOF
	}
	val := e.buffer[e.position]
	if val != 1 && val != 0 {
		return false, ErrInvalidBool
	}
	e.position++
	return val == 1, nil
}

func (e *BufferDecoder) DecodeUint8() (uint8, error) {
	if e.GetLength() < 1 {
		return 0, ErrUnexpectedEOF
	}
	val := e.buffer[e.position]
	e.position++
	return val, nil
}

func (e *BufferDecoder) DecodeUint16() (uint16, error) {
	if e.GetLength() < 2 {
		return 0, ErrUnexpectedEOF
	}
	val := binary.LittleEndian.Uint16(e.buffer[e.position:])
	e.position += 2
	return val, nil
}

func (e *BufferDecoder) DecodeUint32() (uint32, error) {
	if e.GetLength() < 4 {
		return 0, ErrUnexpectedEOF
	}
	val := binary.LittleEndian.Uint32(e.buffer[e.position:])
	e.position += 4
	return val, nil
}

func (e *BufferDecoder) DecodeUint64() (uint64, error) {
	if e.GetLength() < 8 {
		return 0, ErrUnexpectedEOF
	}
	val := binary.LittleEndian.Uint64(e.buffer[e.position:])
	e.position += 8
	return val, nil
}

func (e *BufferDecoder) DecodeUint128() (*uint256.Int, error) {
	if e.GetLength() < 16 {
		return nil, ErrUnexpectedEOF
	}
	val := new(uint256.Int)
	val[0] = binary.LittleEndian.Uint64(e.buffer[e.position:])
	val[1] = binary.LittleEndian.Uint64(e.buffer[e.position+8:])
	e.position += 16
	return val, nil
}

func (e *BufferDecoder) DecodeUint256() (*uint256.Int, error) {
	if e.GetLength() < 32 {
		return nil, ErrUnexpectedEOF
	}
	val := new(uint256.Int)
	for i := 0; i < 4; i++ {
		val[i] = binary.LittleEndian.Uint64(e.buffer[e.position+i*8:])
	}
	e.position += 32
	return val, nil
}

func (e *BufferDecoder) DecodeUleb128() (uint64, error) {
	val, n, err := readUleb128(e.buffer[e.position:e.bufferLen])
	if err != nil {
		return 0, err
	}
	e.position += n
	return val, nil
}

func (e *BufferDecoder) DecodeLength() (int, error) {
	val, err := e.DecodeUleb128()
	if err != nil {
		return 0, err
	}
	if val > MaxSequenceLength {
		return 0, ErrLengthOverflow
	}
	// every element occupies at least one byte, except zero sized ones which BCS does not have
	if val > uint64(e.GetLength()) {
		return 0, ErrUnexpectedEOF
	}
	return int(val), nil
}

func (e *BufferDecoder) DecodeBytes(buf []byte) ([]byte, error) {
	if e.GetLength() < len(buf) {
		return nil, ErrUnexpectedEOF
	}
	bufLen := len(buf)
	copy(buf, e.buffer[e.position:e.position+bufLen])
	e.position += bufLen
	return buf[:bufLen], nil
}

func (e *BufferDecoder) DecodeBytesBuf(len int) ([]byte, error) {
	if len < 0 {
		len = e.bufferLen - e.position
	} else if e.bufferLen-e.position < len {
		return nil, ErrUnexpectedEOF
	}
	buf := e.buffer[e.position : e.position+len]
	e.position += len
	return buf, nil
}
