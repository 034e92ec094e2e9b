// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import "github.com/holiman/uint256"

type Decoder interface {
	GetPosition() int // return current position
	GetLength() int   // return remaining length
	DecodeBool() (bool, error)
	DecodeUint8() (uint8, error)
	DecodeUint16() (uint16, error)
	DecodeUint32() (uint32, error)
	DecodeUint64() (uint64, error)
	DecodeUint128() (*uint256.Int, error)
	DecodeUint256() (*uint256.Int, error)
	DecodeUleb128() (uint64, error)
	DecodeLength() (int, error) // uleb128 sequence length, bounded by the remaining data
	DecodeBytes(buf []byte) ([]byte, error)
	DecodeBytesBuf(len int) ([]byte, error)
}
