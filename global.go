// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"sync/atomic"

	"github.com/WayneAl/sui-client-gen/movetypes"
)

var globalCodec atomic.Pointer[Codec]

// GetGlobalCodec returns the process wide codec backed by movetypes.DefaultRegistry().
func GetGlobalCodec() *Codec {
	if codec := globalCodec.Load(); codec != nil {
		return codec
	}
	globalCodec.CompareAndSwap(nil, NewCodec())
	return globalCodec.Load()
}

// SetGlobalCodec replaces the process wide codec, nil restores the default.
func SetGlobalCodec(codec *Codec) {
	globalCodec.Store(codec)
}

// SetGlobalRegistry replaces the process wide codec with one using registry.
func SetGlobalRegistry(registry *movetypes.Registry) {
	globalCodec.Store(NewCodec(WithRegistry(registry)))
}
