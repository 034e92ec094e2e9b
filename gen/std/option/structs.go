// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package option binds the 0x1::option::Option struct.
package option

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var OptionDescriptor = movetypes.OptionDescriptor

func init() {
	movetypes.DefaultRegistry().MustRegister(OptionDescriptor)
}

// Option holds zero or one element. As a field of other structs it decodes
// to nil or the element itself.
type Option[Element any] struct {
	movetypes.TypeInfo
	Vec []Element `move:"vec"`
}

func OptionType[Element any]() suigen.StructType[Option[Element]] {
	return suigen.NewStructType[Option[Element]](OptionDescriptor)
}

func IsOption(typ string) bool {
	return OptionDescriptor.Matches(typ)
}

// Get returns the element, or false if the option is empty.
func (o *Option[Element]) Get() (Element, bool) {
	if len(o.Vec) == 0 {
		var zero Element
		return zero, false
	}
	return o.Vec[0], true
}
