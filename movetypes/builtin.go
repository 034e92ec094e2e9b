// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

// Framework structs with a dedicated field representation.
const (
	StringTypeName      = "0x1::string::String"
	ASCIIStringTypeName = "0x1::ascii::String"
	OptionTypeName      = "0x1::option::Option"
	URLTypeName         = "0x2::url::Url"
	IDTypeName          = "0x2::object::ID"
	UIDTypeName         = "0x2::object::UID"
	BalanceTypeName     = "0x2::balance::Balance"
)

var (
	StringDescriptor = MustDefineStruct(StringTypeName, nil, []FieldDef{
		{Name: "bytes", Type: "vector<u8>"},
	})
	ASCIIStringDescriptor = MustDefineStruct(ASCIIStringTypeName, nil, []FieldDef{
		{Name: "bytes", Type: "vector<u8>"},
	})
	OptionDescriptor = MustDefineStruct(OptionTypeName, []TypeParam{{Name: "Element"}}, []FieldDef{
		{Name: "vec", Type: "vector<Element>"},
	})
	URLDescriptor = MustDefineStruct(URLTypeName, nil, []FieldDef{
		{Name: "url", Type: ASCIIStringTypeName},
	})
	IDDescriptor = MustDefineStruct(IDTypeName, nil, []FieldDef{
		{Name: "bytes", Type: "address"},
	})
	UIDDescriptor = MustDefineStruct(UIDTypeName, nil, []FieldDef{
		{Name: "id", Type: IDTypeName},
	})
	BalanceDescriptor = MustDefineStruct(BalanceTypeName, []TypeParam{{Name: "T", Phantom: true}}, []FieldDef{
		{Name: "value", Type: "u64"},
	})
)

var builtinDescriptors = []*StructDescriptor{
	StringDescriptor,
	ASCIIStringDescriptor,
	OptionDescriptor,
	URLDescriptor,
	IDDescriptor,
	UIDDescriptor,
	BalanceDescriptor,
}
