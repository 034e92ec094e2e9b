// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package balance binds the structs of the 0x2::balance module.
package balance

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var BalanceDescriptor = movetypes.BalanceDescriptor

func init() {
	movetypes.DefaultRegistry().MustRegister(BalanceDescriptor)
}

// Balance holds an amount of the phantom coin type T, named in TypeArgs.
type Balance struct {
	movetypes.TypeInfo
	Value uint64 `move:"value"`
}

var BalanceType = suigen.NewStructType[Balance](BalanceDescriptor)

func IsBalance(typ string) bool {
	return BalanceDescriptor.Matches(typ)
}
