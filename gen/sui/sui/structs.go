// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package sui binds the 0x2::sui::SUI coin type.
package sui

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

// TypeName is the name of the SUI coin type.
const TypeName = "0x2::sui::SUI"

var SUIDescriptor = movetypes.MustDefineStruct(TypeName, nil, []movetypes.FieldDef{
	{Name: "dummy_field", Type: "bool"},
})

func init() {
	movetypes.DefaultRegistry().MustRegister(SUIDescriptor)
}

type SUI struct {
	DummyField bool `move:"dummy_field"`
}

var SUIType = suigen.NewStructType[SUI](SUIDescriptor)

func IsSUI(typ string) bool {
	return SUIDescriptor.Matches(typ)
}

// Phantom returns SUI as phantom type argument, e.g. for Balance<SUI>.
func Phantom() suigen.PhantomTypeArgument {
	return suigen.MustPhantom(TypeName)
}
