// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package fixture binds the structs of the examples fixture module. They
// cover generic fields, nested generics and every framework struct with a
// dedicated field representation.
package fixture

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/gen/examples/othermodule"
	"github.com/WayneAl/sui-client-gen/gen/sui/balance"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/sui"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

const (
	PackageID = othermodule.PackageID

	DummyTypeName                      = PackageID + "::fixture::Dummy"
	WithGenericFieldTypeName           = PackageID + "::fixture::WithGenericField"
	BarTypeName                        = PackageID + "::fixture::Bar"
	WithTwoGenericsTypeName            = PackageID + "::fixture::WithTwoGenerics"
	FooTypeName                        = PackageID + "::fixture::Foo"
	WithSpecialTypesTypeName           = PackageID + "::fixture::WithSpecialTypes"
	WithSpecialTypesAsGenericsTypeName = PackageID + "::fixture::WithSpecialTypesAsGenerics"
	WithSpecialTypesInVectorsTypeName  = PackageID + "::fixture::WithSpecialTypesInVectors"
)

func params(names ...string) []movetypes.TypeParam {
	out := make([]movetypes.TypeParam, len(names))
	for i, name := range names {
		out[i] = movetypes.TypeParam{Name: name}
	}
	return out
}

var (
	DummyDescriptor = movetypes.MustDefineStruct(DummyTypeName, nil, []movetypes.FieldDef{
		{Name: "dummy_field", Type: "bool"},
	})

	WithGenericFieldDescriptor = movetypes.MustDefineStruct(WithGenericFieldTypeName, params("T0"), []movetypes.FieldDef{
		{Name: "id", Type: "0x2::object::UID"},
		{Name: "generic_field", Type: "T0"},
	})

	BarDescriptor = movetypes.MustDefineStruct(BarTypeName, nil, []movetypes.FieldDef{
		{Name: "value", Type: "u64"},
	})

	WithTwoGenericsDescriptor = movetypes.MustDefineStruct(WithTwoGenericsTypeName, params("T0", "T1"), []movetypes.FieldDef{
		{Name: "generic_field_1", Type: "T0"},
		{Name: "generic_field_2", Type: "T1"},
	})

	FooDescriptor = movetypes.MustDefineStruct(FooTypeName, params("T0"), []movetypes.FieldDef{
		{Name: "id", Type: "0x2::object::UID"},
		{Name: "generic", Type: "T0"},
		{Name: "reified_primitive_vec", Type: "vector<u64>"},
		{Name: "reified_object_vec", Type: "vector<" + BarTypeName + ">"},
		{Name: "generic_vec", Type: "vector<T0>"},
		{Name: "generic_vec_nested", Type: "vector<" + WithTwoGenericsTypeName + "<T0, u8>>"},
		{Name: "two_generics", Type: WithTwoGenericsTypeName + "<T0, " + BarTypeName + ">"},
		{Name: "two_generics_reified_primitive", Type: WithTwoGenericsTypeName + "<u16, u64>"},
		{Name: "two_generics_reified_object", Type: WithTwoGenericsTypeName + "<" + BarTypeName + ", " + BarTypeName + ">"},
		{Name: "two_generics_nested", Type: WithTwoGenericsTypeName + "<T0, " + WithTwoGenericsTypeName + "<u8, u8>>"},
		{Name: "two_generics_reified_nested", Type: WithTwoGenericsTypeName + "<" + BarTypeName + ", " + WithTwoGenericsTypeName + "<u8, u8>>"},
		{Name: "two_generics_nested_vec", Type: "vector<" + WithTwoGenericsTypeName + "<" + BarTypeName + ", vector<" + WithTwoGenericsTypeName + "<T0, u8>>>>"},
		{Name: "dummy", Type: DummyTypeName},
		{Name: "other", Type: othermodule.PackageID + "::other_module::StructFromOtherModule"},
	})

	WithSpecialTypesDescriptor = movetypes.MustDefineStruct(WithSpecialTypesTypeName,
		[]movetypes.TypeParam{{Name: "T0", Phantom: true}, {Name: "T1"}},
		[]movetypes.FieldDef{
			{Name: "id", Type: "0x2::object::UID"},
			{Name: "string", Type: "0x1::string::String"},
			{Name: "ascii_string", Type: "0x1::ascii::String"},
			{Name: "url", Type: "0x2::url::Url"},
			{Name: "id_field", Type: "0x2::object::ID"},
			{Name: "uid", Type: "0x2::object::UID"},
			{Name: "balance", Type: "0x2::balance::Balance<0x2::sui::SUI>"},
			{Name: "option", Type: "0x1::option::Option<u64>"},
			{Name: "option_obj", Type: "0x1::option::Option<" + BarTypeName + ">"},
			{Name: "option_none", Type: "0x1::option::Option<u64>"},
			{Name: "balance_generic", Type: "0x2::balance::Balance<T0>"},
			{Name: "option_generic", Type: "0x1::option::Option<T1>"},
			{Name: "option_generic_none", Type: "0x1::option::Option<T1>"},
		})

	WithSpecialTypesAsGenericsDescriptor = movetypes.MustDefineStruct(WithSpecialTypesAsGenericsTypeName,
		params("T0", "T1", "T2", "T3", "T4", "T5", "T6", "T7"),
		[]movetypes.FieldDef{
			{Name: "id", Type: "0x2::object::UID"},
			{Name: "string", Type: "T0"},
			{Name: "ascii_string", Type: "T1"},
			{Name: "url", Type: "T2"},
			{Name: "id_field", Type: "T3"},
			{Name: "uid", Type: "T4"},
			{Name: "balance", Type: "T5"},
			{Name: "option", Type: "T6"},
			{Name: "option_none", Type: "T7"},
		})

	WithSpecialTypesInVectorsDescriptor = movetypes.MustDefineStruct(WithSpecialTypesInVectorsTypeName, params("T0"), []movetypes.FieldDef{
		{Name: "id", Type: "0x2::object::UID"},
		{Name: "string", Type: "vector<0x1::string::String>"},
		{Name: "ascii_string", Type: "vector<0x1::ascii::String>"},
		{Name: "id_field", Type: "vector<0x2::object::ID>"},
		{Name: "bar", Type: "vector<" + BarTypeName + ">"},
		{Name: "option", Type: "vector<0x1::option::Option<u64>>"},
		{Name: "option_generic", Type: "vector<0x1::option::Option<T0>>"},
	})
)

func init() {
	movetypes.DefaultRegistry().MustRegister(
		DummyDescriptor,
		WithGenericFieldDescriptor,
		BarDescriptor,
		WithTwoGenericsDescriptor,
		FooDescriptor,
		WithSpecialTypesDescriptor,
		WithSpecialTypesAsGenericsDescriptor,
		WithSpecialTypesInVectorsDescriptor,
	)
}

// ==== Dummy ====

type Dummy struct {
	DummyField bool `move:"dummy_field"`
}

var DummyType = suigen.NewStructType[Dummy](DummyDescriptor)

func IsDummy(typ string) bool {
	return DummyDescriptor.Matches(typ)
}

// ==== WithGenericField ====

type WithGenericField[T0 any] struct {
	movetypes.TypeInfo
	ID           movetypes.Address `move:"id"`
	GenericField T0                `move:"generic_field"`
}

func WithGenericFieldType[T0 any]() suigen.StructType[WithGenericField[T0]] {
	return suigen.NewStructType[WithGenericField[T0]](WithGenericFieldDescriptor)
}

func IsWithGenericField(typ string) bool {
	return WithGenericFieldDescriptor.Matches(typ)
}

// ==== Bar ====

type Bar struct {
	Value uint64 `move:"value"`
}

var BarType = suigen.NewStructType[Bar](BarDescriptor)

func IsBar(typ string) bool {
	return BarDescriptor.Matches(typ)
}

// ==== WithTwoGenerics ====

type WithTwoGenerics[T0 any, T1 any] struct {
	movetypes.TypeInfo
	GenericField1 T0 `move:"generic_field_1"`
	GenericField2 T1 `move:"generic_field_2"`
}

func WithTwoGenericsType[T0 any, T1 any]() suigen.StructType[WithTwoGenerics[T0, T1]] {
	return suigen.NewStructType[WithTwoGenerics[T0, T1]](WithTwoGenericsDescriptor)
}

func IsWithTwoGenerics(typ string) bool {
	return WithTwoGenericsDescriptor.Matches(typ)
}

// ==== Foo ====

type Foo[T0 any] struct {
	movetypes.TypeInfo
	ID                          movetypes.Address                                    `move:"id"`
	Generic                     T0                                                   `move:"generic"`
	ReifiedPrimitiveVec         []uint64                                             `move:"reified_primitive_vec"`
	ReifiedObjectVec            []Bar                                                `move:"reified_object_vec"`
	GenericVec                  []T0                                                 `move:"generic_vec"`
	GenericVecNested            []WithTwoGenerics[T0, uint8]                         `move:"generic_vec_nested"`
	TwoGenerics                 WithTwoGenerics[T0, Bar]                             `move:"two_generics"`
	TwoGenericsReifiedPrimitive WithTwoGenerics[uint16, uint64]                      `move:"two_generics_reified_primitive"`
	TwoGenericsReifiedObject    WithTwoGenerics[Bar, Bar]                            `move:"two_generics_reified_object"`
	TwoGenericsNested           WithTwoGenerics[T0, WithTwoGenerics[uint8, uint8]]   `move:"two_generics_nested"`
	TwoGenericsReifiedNested    WithTwoGenerics[Bar, WithTwoGenerics[uint8, uint8]]  `move:"two_generics_reified_nested"`
	TwoGenericsNestedVec        []WithTwoGenerics[Bar, []WithTwoGenerics[T0, uint8]] `move:"two_generics_nested_vec"`
	Dummy                       Dummy                                                `move:"dummy"`
	Other                       othermodule.StructFromOtherModule                    `move:"other"`
}

func FooType[T0 any]() suigen.StructType[Foo[T0]] {
	return suigen.NewStructType[Foo[T0]](FooDescriptor)
}

func IsFoo(typ string) bool {
	return FooDescriptor.Matches(typ)
}

// ==== WithSpecialTypes ====

// WithSpecialTypes has the phantom parameter T0, named in TypeArgs only.
type WithSpecialTypes[T1 any] struct {
	movetypes.TypeInfo
	ID                movetypes.Address `move:"id"`
	String            string            `move:"string"`
	AsciiString       string            `move:"ascii_string"`
	URL               string            `move:"url"`
	IDField           movetypes.Address `move:"id_field"`
	UID               movetypes.Address `move:"uid"`
	Balance           balance.Balance   `move:"balance"`
	Option            *uint64           `move:"option"`
	OptionObj         *Bar              `move:"option_obj"`
	OptionNone        *uint64           `move:"option_none"`
	BalanceGeneric    balance.Balance   `move:"balance_generic"`
	OptionGeneric     *T1               `move:"option_generic"`
	OptionGenericNone *T1               `move:"option_generic_none"`
}

func WithSpecialTypesType[T1 any]() suigen.StructType[WithSpecialTypes[T1]] {
	return suigen.NewStructType[WithSpecialTypes[T1]](WithSpecialTypesDescriptor)
}

func IsWithSpecialTypes(typ string) bool {
	return WithSpecialTypesDescriptor.Matches(typ)
}

// ==== WithSpecialTypesAsGenerics ====

type WithSpecialTypesAsGenerics[T0, T1, T2, T3, T4, T5, T6, T7 any] struct {
	movetypes.TypeInfo
	ID          movetypes.Address `move:"id"`
	String      T0                `move:"string"`
	AsciiString T1                `move:"ascii_string"`
	URL         T2                `move:"url"`
	IDField     T3                `move:"id_field"`
	UID         T4                `move:"uid"`
	Balance     T5                `move:"balance"`
	Option      T6                `move:"option"`
	OptionNone  T7                `move:"option_none"`
}

func WithSpecialTypesAsGenericsType[T0, T1, T2, T3, T4, T5, T6, T7 any]() suigen.StructType[WithSpecialTypesAsGenerics[T0, T1, T2, T3, T4, T5, T6, T7]] {
	return suigen.NewStructType[WithSpecialTypesAsGenerics[T0, T1, T2, T3, T4, T5, T6, T7]](WithSpecialTypesAsGenericsDescriptor)
}

func IsWithSpecialTypesAsGenerics(typ string) bool {
	return WithSpecialTypesAsGenericsDescriptor.Matches(typ)
}

// ==== WithSpecialTypesInVectors ====

type WithSpecialTypesInVectors[T0 any] struct {
	movetypes.TypeInfo
	ID            movetypes.Address   `move:"id"`
	String        []string            `move:"string"`
	AsciiString   []string            `move:"ascii_string"`
	IDField       []movetypes.Address `move:"id_field"`
	Bar           []Bar               `move:"bar"`
	Option        []*uint64           `move:"option"`
	OptionGeneric []*T0               `move:"option_generic"`
}

func WithSpecialTypesInVectorsType[T0 any]() suigen.StructType[WithSpecialTypesInVectors[T0]] {
	return suigen.NewStructType[WithSpecialTypesInVectors[T0]](WithSpecialTypesInVectorsDescriptor)
}

func IsWithSpecialTypesInVectors(typ string) bool {
	return WithSpecialTypesInVectorsDescriptor.Matches(typ)
}
