// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
)

// maxExactFloat is the largest integer a float64 holds without rounding.
const maxExactFloat = 1<<53 - 1

// ToUint64 converts an integer like value into a uint64 that fits into bits.
// Accepted inputs are all Go integer kinds, integral floats up to 2^53-1,
// json.Number, decimal strings and *uint256.Int.
func ToUint64(v any, bits int) (uint64, error) {
	var n uint64

	switch val := v.(type) {
	case *uint256.Int:
		if val == nil || !val.IsUint64() {
			return 0, fmt.Errorf("%w: %v does not fit u%d", ErrValueRange, val, bits)
		}
		n = val.Uint64()
	case json.Number:
		parsed, err := strconv.ParseUint(val.String(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a u%d", ErrInvalidValue, val, bits)
		}
		n = parsed
	case string:
		parsed, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a u%d", ErrInvalidValue, val, bits)
		}
		n = parsed
	case float64:
		if val < 0 || val != math.Trunc(val) || val > maxExactFloat {
			return 0, fmt.Errorf("%w: %v is not an exact u%d, use a decimal string", ErrValueRange, val, bits)
		}
		n = uint64(val)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			n = rv.Uint()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.Int() < 0 {
				return 0, fmt.Errorf("%w: %d is negative", ErrValueRange, rv.Int())
			}
			n = uint64(rv.Int())
		default:
			return 0, fmt.Errorf("%w: u%d expects an integer, got %T", ErrInvalidValue, bits, v)
		}
	}

	if bits < 64 && n >= 1<<uint(bits) {
		return 0, fmt.Errorf("%w: %d does not fit u%d", ErrValueRange, n, bits)
	}
	return n, nil
}

// ToUint256 converts an integer like value into a *uint256.Int that fits into bits.
func ToUint256(v any, bits int) (*uint256.Int, error) {
	var n *uint256.Int

	switch val := v.(type) {
	case *uint256.Int:
		if val == nil {
			return nil, fmt.Errorf("%w: nil u%d", ErrInvalidValue, bits)
		}
		n = val
	case uint256.Int:
		n = &val
	case json.Number:
		parsed, err := uint256.FromDecimal(val.String())
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a u%d", ErrInvalidValue, val, bits)
		}
		n = parsed
	case string:
		parsed, err := uint256.FromDecimal(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a u%d", ErrInvalidValue, val, bits)
		}
		n = parsed
	default:
		small, err := ToUint64(v, 64)
		if err != nil {
			return nil, err
		}
		n = uint256.NewInt(small)
	}

	if n.BitLen() > bits {
		return nil, fmt.Errorf("%w: %s does not fit u%d", ErrValueRange, n.Dec(), bits)
	}
	return n, nil
}

// ToAddressBytes converts a 32 byte array, a 32 byte slice or a hex string
// (with or without 0x prefix, short forms are left padded) into an address.
func ToAddressBytes(v any) ([32]byte, error) {
	var addr [32]byte

	switch val := v.(type) {
	case [32]byte:
		return val, nil
	case []byte:
		if len(val) != 32 {
			return addr, fmt.Errorf("%w: address needs 32 bytes, got %d", ErrInvalidValue, len(val))
		}
		copy(addr[:], val)
		return addr, nil
	case string:
		return ParseHexAddress(val)
	case fmt.Stringer:
		return ParseHexAddress(val.String())
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array && rv.Len() == 32 && rv.Type().Elem().Kind() == reflect.Uint8 {
		reflect.Copy(reflect.ValueOf(addr[:]), rv)
		return addr, nil
	}
	return addr, fmt.Errorf("%w: address expects [32]byte or hex string, got %T", ErrInvalidValue, v)
}

// ParseHexAddress parses a hex encoded address, left padding short forms.
func ParseHexAddress(s string) ([32]byte, error) {
	var addr [32]byte

	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) == 0 || len(s) > 64 {
		return addr, fmt.Errorf("%w: invalid address length %d", ErrInvalidValue, len(s))
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return addr, fmt.Errorf("%w: invalid address hex: %v", ErrInvalidValue, err)
	}
	copy(addr[32-len(raw):], raw)
	return addr, nil
}
