// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package tablevec binds the structs of the 0x2::table_vec module.
package tablevec

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/gen/sui/table"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var TableVecDescriptor = movetypes.MustDefineStruct("0x2::table_vec::TableVec",
	[]movetypes.TypeParam{{Name: "Element", Phantom: true}},
	[]movetypes.FieldDef{
		{Name: "contents", Type: "0x2::table::Table<u64, Element>"},
	})

func init() {
	movetypes.DefaultRegistry().MustRegister(TableVecDescriptor)
}

type TableVec struct {
	movetypes.TypeInfo
	Contents table.Table `move:"contents"`
}

var TableVecType = suigen.NewStructType[TableVec](TableVecDescriptor)

func IsTableVec(typ string) bool {
	return TableVecDescriptor.Matches(typ)
}
