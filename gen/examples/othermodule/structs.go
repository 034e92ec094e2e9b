// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package othermodule binds the structs of the examples other_module module.
package othermodule

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

// PackageID is the address the examples package is published at.
const PackageID = "0x8b699fdce543505aeb290ee1b6b5d20fcaa8e8b1a5fc137a8b3facdfa2902209"

var StructFromOtherModuleDescriptor = movetypes.MustDefineStruct(PackageID+"::other_module::StructFromOtherModule", nil, []movetypes.FieldDef{
	{Name: "dummy_field", Type: "bool"},
})

func init() {
	movetypes.DefaultRegistry().MustRegister(StructFromOtherModuleDescriptor)
}

type StructFromOtherModule struct {
	DummyField bool `move:"dummy_field"`
}

var StructFromOtherModuleType = suigen.NewStructType[StructFromOtherModule](StructFromOtherModuleDescriptor)

func IsStructFromOtherModule(typ string) bool {
	return StructFromOtherModuleDescriptor.Matches(typ)
}
