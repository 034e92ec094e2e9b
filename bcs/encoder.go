// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import "github.com/holiman/uint256"

type Encoder interface {
	GetPosition() int
	GetBuffer() []byte       // return the output buffer
	SetBuffer(buffer []byte) // replace the output buffer, subsequent writes are appended
	EncodeBool(v bool)
	EncodeUint8(v uint8)
	EncodeUint16(v uint16)
	EncodeUint32(v uint32)
	EncodeUint64(v uint64)
	EncodeUint128(v *uint256.Int) error
	EncodeUint256(v *uint256.Int)
	EncodeUleb128(v uint64)
	EncodeBytes(v []byte)
}
