// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package url binds the structs of the 0x2::url module.
package url

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var URLDescriptor = movetypes.URLDescriptor

func init() {
	movetypes.DefaultRegistry().MustRegister(URLDescriptor)
}

// Url is an ascii url. As a field of other structs it decodes to a go string.
type Url struct {
	URL string `move:"url"`
}

var UrlType = suigen.NewStructType[Url](URLDescriptor)

func IsUrl(typ string) bool {
	return URLDescriptor.Matches(typ)
}
