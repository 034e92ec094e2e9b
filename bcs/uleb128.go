// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

// MaxSequenceLength is the largest vector or string length accepted by BCS.
const MaxSequenceLength = 1<<31 - 1

func appendUleb128(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

// readUleb128 reads a canonical uleb128 value that fits into 32 bits.
// It returns the value and the number of consumed bytes.
func readUleb128(buf []byte) (uint64, int, error) {
	var val uint64
	for i := 0; i < 5; i++ {
		if i >= len(buf) {
			return 0, 0, ErrUnexpectedEOF
		}
		b := buf[i]
		val |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			if i > 0 && b == 0 {
				// trailing zero group, not the shortest encoding
				return 0, 0, ErrInvalidUleb128
			}
			if val > 0xffffffff {
				return 0, 0, ErrInvalidUleb128
			}
			return val, i + 1, nil
		}
	}
	return 0, 0, ErrInvalidUleb128
}

// SizeUleb128 returns the encoded size of v.
func SizeUleb128(v uint64) int {
	size := 1
	for v >= 0x80 {
		v >>= 7
		size++
	}
	return size
}
