// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package linkedtable binds the structs of the 0x2::linked_table module.
package linkedtable

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var (
	LinkedTableDescriptor = movetypes.MustDefineStruct("0x2::linked_table::LinkedTable",
		[]movetypes.TypeParam{{Name: "K"}, {Name: "V", Phantom: true}},
		[]movetypes.FieldDef{
			{Name: "id", Type: "0x2::object::UID"},
			{Name: "size", Type: "u64"},
			{Name: "head", Type: "0x1::option::Option<K>"},
			{Name: "tail", Type: "0x1::option::Option<K>"},
		})
	NodeDescriptor = movetypes.MustDefineStruct("0x2::linked_table::Node",
		[]movetypes.TypeParam{{Name: "K"}, {Name: "V"}},
		[]movetypes.FieldDef{
			{Name: "prev", Type: "0x1::option::Option<K>"},
			{Name: "next", Type: "0x1::option::Option<K>"},
			{Name: "value", Type: "V"},
		})
)

func init() {
	movetypes.DefaultRegistry().MustRegister(LinkedTableDescriptor, NodeDescriptor)
}

// LinkedTable is an ordered map stored in dynamic fields. V is phantom and
// only named in TypeArgs.
type LinkedTable[K any] struct {
	movetypes.TypeInfo
	ID   movetypes.Address `move:"id"`
	Size uint64            `move:"size"`
	Head *K                `move:"head"`
	Tail *K                `move:"tail"`
}

func LinkedTableType[K any]() suigen.StructType[LinkedTable[K]] {
	return suigen.NewStructType[LinkedTable[K]](LinkedTableDescriptor)
}

func IsLinkedTable(typ string) bool {
	return LinkedTableDescriptor.Matches(typ)
}

type Node[K any, V any] struct {
	movetypes.TypeInfo
	Prev  *K `move:"prev"`
	Next  *K `move:"next"`
	Value V  `move:"value"`
}

func NodeType[K any, V any]() suigen.StructType[Node[K, V]] {
	return suigen.NewStructType[Node[K, V]](NodeDescriptor)
}

func IsNode(typ string) bool {
	return NodeDescriptor.Matches(typ)
}
