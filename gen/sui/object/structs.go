// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package object binds the structs of the 0x2::object module.
package object

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var (
	IDDescriptor  = movetypes.IDDescriptor
	UIDDescriptor = movetypes.UIDDescriptor
)

func init() {
	movetypes.DefaultRegistry().MustRegister(IDDescriptor, UIDDescriptor)
}

// ID is an object id. As a field of other structs it decodes to movetypes.Address.
type ID struct {
	Bytes movetypes.Address `move:"bytes"`
}

var IDType = suigen.NewStructType[ID](IDDescriptor)

func IsID(typ string) bool {
	return IDDescriptor.Matches(typ)
}

// UID is the unique id of an object. As a field of other structs it decodes to movetypes.Address.
type UID struct {
	ID movetypes.Address `move:"id"`
}

var UIDType = suigen.NewStructType[UID](UIDDescriptor)

func IsUID(typ string) bool {
	return UIDDescriptor.Matches(typ)
}
