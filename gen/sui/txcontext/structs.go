// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package txcontext binds the structs of the 0x2::tx_context module.
package txcontext

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var TxContextDescriptor = movetypes.MustDefineStruct("0x2::tx_context::TxContext", nil, []movetypes.FieldDef{
	{Name: "sender", Type: "address"},
	{Name: "tx_hash", Type: "vector<u8>"},
	{Name: "epoch", Type: "u64"},
	{Name: "epoch_timestamp_ms", Type: "u64"},
	{Name: "ids_created", Type: "u64"},
})

func init() {
	movetypes.DefaultRegistry().MustRegister(TxContextDescriptor)
}

type TxContext struct {
	Sender           movetypes.Address `move:"sender"`
	TxHash           []byte            `move:"tx_hash"`
	Epoch            uint64            `move:"epoch"`
	EpochTimestampMs uint64            `move:"epoch_timestamp_ms"`
	IdsCreated       uint64            `move:"ids_created"`
}

var TxContextType = suigen.NewStructType[TxContext](TxContextDescriptor)

func IsTxContext(typ string) bool {
	return TxContextDescriptor.Matches(typ)
}
