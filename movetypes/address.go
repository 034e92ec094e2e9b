// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/WayneAl/sui-client-gen/bcs"
)

// Address is a 32 byte Sui account or object address.
type Address [32]byte

// ParseAddress parses a hex address with optional 0x prefix.
// Short forms such as "0x2" are left padded with zeros.
func ParseAddress(s string) (Address, error) {
	raw, err := bcs.ParseHexAddress(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return Address(raw), nil
}

// MustParseAddress is like ParseAddress but panics on malformed input.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// String returns the full length 0x prefixed lowercase hex form.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ShortString returns the compressed form without leading zeros.
func (a Address) ShortString() string {
	return CompressAddress(a.String())
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	addr, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// CompressAddress strips the leading zeros of a 0x prefixed address.
// The all zero address becomes "0x0". Inputs without prefix are returned lowercased.
func CompressAddress(addr string) string {
	addr = strings.ToLower(addr)
	if !strings.HasPrefix(addr, "0x") {
		return addr
	}
	trimmed := strings.TrimLeft(addr[2:], "0")
	if trimmed == "" {
		return "0x0"
	}
	return "0x" + trimmed
}
