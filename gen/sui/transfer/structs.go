// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package transfer binds the structs of the 0x2::transfer module.
package transfer

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var ReceivingDescriptor = movetypes.MustDefineStruct("0x2::transfer::Receiving",
	[]movetypes.TypeParam{{Name: "T", Phantom: true}},
	[]movetypes.FieldDef{
		{Name: "id", Type: "0x2::object::ID"},
		{Name: "version", Type: "u64"},
	})

func init() {
	movetypes.DefaultRegistry().MustRegister(ReceivingDescriptor)
}

// Receiving references an object sent to another object.
type Receiving struct {
	movetypes.TypeInfo
	ID      movetypes.Address `move:"id"`
	Version uint64            `move:"version"`
}

var ReceivingType = suigen.NewStructType[Receiving](ReceivingDescriptor)

func IsReceiving(typ string) bool {
	return ReceivingDescriptor.Matches(typ)
}
