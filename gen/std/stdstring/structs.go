// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package stdstring binds the structs of the 0x1::string module.
package stdstring

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var StringDescriptor = movetypes.StringDescriptor

func init() {
	movetypes.DefaultRegistry().MustRegister(StringDescriptor)
}

// String is a utf8 string. As a field of other structs it decodes to a go string.
type String struct {
	Bytes []byte `move:"bytes"`
}

var StringType = suigen.NewStructType[String](StringDescriptor)

func IsString(typ string) bool {
	return StringDescriptor.Matches(typ)
}
