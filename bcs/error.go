// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import "fmt"

var (
	ErrUnexpectedEOF      = fmt.Errorf("unexpected end of BCS data")
	ErrTrailingBytes      = fmt.Errorf("unexpected trailing bytes after BCS value")
	ErrInvalidBool        = fmt.Errorf("invalid bool value")
	ErrInvalidUleb128     = fmt.Errorf("invalid uleb128 encoding")
	ErrLengthOverflow     = fmt.Errorf("sequence length exceeds limit")
	ErrInvalidEnumVariant = fmt.Errorf("invalid enum variant")
	ErrValueRange         = fmt.Errorf("value out of range")
	ErrInvalidValue       = fmt.Errorf("invalid value for type")
	ErrMissingField       = fmt.Errorf("missing struct field")
)
