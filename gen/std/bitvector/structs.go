// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package bitvector binds the structs of the 0x1::bit_vector module.
package bitvector

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var BitVectorDescriptor = movetypes.MustDefineStruct("0x1::bit_vector::BitVector", nil, []movetypes.FieldDef{
	{Name: "length", Type: "u64"},
	{Name: "bit_field", Type: "vector<bool>"},
})

func init() {
	movetypes.DefaultRegistry().MustRegister(BitVectorDescriptor)
}

type BitVector struct {
	Length   uint64 `move:"length"`
	BitField []bool `move:"bit_field"`
}

var BitVectorType = suigen.NewStructType[BitVector](BitVectorDescriptor)

func IsBitVector(typ string) bool {
	return BitVectorDescriptor.Matches(typ)
}
