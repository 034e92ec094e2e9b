// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package table binds the structs of the 0x2::table module.
package table

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var TableDescriptor = movetypes.MustDefineStruct("0x2::table::Table",
	[]movetypes.TypeParam{{Name: "K", Phantom: true}, {Name: "V", Phantom: true}},
	[]movetypes.FieldDef{
		{Name: "id", Type: "0x2::object::UID"},
		{Name: "size", Type: "u64"},
	})

func init() {
	movetypes.DefaultRegistry().MustRegister(TableDescriptor)
}

// Table is a map stored in dynamic fields. Only its id and size are part of the object.
type Table struct {
	movetypes.TypeInfo
	ID   movetypes.Address `move:"id"`
	Size uint64            `move:"size"`
}

var TableType = suigen.NewStructType[Table](TableDescriptor)

func IsTable(typ string) bool {
	return TableDescriptor.Matches(typ)
}
