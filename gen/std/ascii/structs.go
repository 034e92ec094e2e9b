// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package ascii binds the structs of the 0x1::ascii module.
package ascii

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var (
	StringDescriptor = movetypes.ASCIIStringDescriptor
	CharDescriptor   = movetypes.MustDefineStruct("0x1::ascii::Char", nil, []movetypes.FieldDef{
		{Name: "byte", Type: "u8"},
	})
)

func init() {
	movetypes.DefaultRegistry().MustRegister(StringDescriptor, CharDescriptor)
}

// String is an ascii string. As a field of other structs it decodes to a go string.
type String struct {
	Bytes []byte `move:"bytes"`
}

var StringType = suigen.NewStructType[String](StringDescriptor)

func IsString(typ string) bool {
	return StringDescriptor.Matches(typ)
}

type Char struct {
	Byte uint8 `move:"byte"`
}

var CharType = suigen.NewStructType[Char](CharDescriptor)

func IsChar(typ string) bool {
	return CharDescriptor.Matches(typ)
}
