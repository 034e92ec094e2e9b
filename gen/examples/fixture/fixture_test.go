// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package fixture_test

import (
	"encoding/json"
	"testing"

	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/gen/examples/fixture"
	"github.com/WayneAl/sui-client-gen/gen/examples/othermodule"
	"github.com/WayneAl/sui-client-gen/gen/sui/balance"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	objectID = "0x3d2bb6b3a6f2f9d0b2d6c2c4a1e0f7b6d5c4b3a29180706f5e4d3c2b1a091807"
	otherID  = "0x00000000000000000000000000000000000000000000000000000000000000aa"
)

func ptr[T any](v T) *T {
	return &v
}

func jsonRoundTrip(t *testing.T, v map[string]any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func testFoo() *fixture.Foo[fixture.Bar] {
	bar := func(v uint64) fixture.Bar { return fixture.Bar{Value: v} }
	return &fixture.Foo[fixture.Bar]{
		TypeInfo:            movetypes.TypeInfo{TypeArgs: []string{fixture.BarTypeName}},
		ID:                  movetypes.MustParseAddress(objectID),
		Generic:             bar(1),
		ReifiedPrimitiveVec: []uint64{1, 2, 3},
		ReifiedObjectVec:    []fixture.Bar{bar(2), bar(3)},
		GenericVec:          []fixture.Bar{bar(4)},
		GenericVecNested: []fixture.WithTwoGenerics[fixture.Bar, uint8]{
			{GenericField1: bar(5), GenericField2: 6},
		},
		TwoGenerics:                 fixture.WithTwoGenerics[fixture.Bar, fixture.Bar]{GenericField1: bar(7), GenericField2: bar(8)},
		TwoGenericsReifiedPrimitive: fixture.WithTwoGenerics[uint16, uint64]{GenericField1: 9, GenericField2: 10},
		TwoGenericsReifiedObject:    fixture.WithTwoGenerics[fixture.Bar, fixture.Bar]{GenericField1: bar(11), GenericField2: bar(12)},
		TwoGenericsNested: fixture.WithTwoGenerics[fixture.Bar, fixture.WithTwoGenerics[uint8, uint8]]{
			GenericField1: bar(13),
			GenericField2: fixture.WithTwoGenerics[uint8, uint8]{GenericField1: 14, GenericField2: 15},
		},
		TwoGenericsReifiedNested: fixture.WithTwoGenerics[fixture.Bar, fixture.WithTwoGenerics[uint8, uint8]]{
			GenericField1: bar(16),
			GenericField2: fixture.WithTwoGenerics[uint8, uint8]{GenericField1: 17, GenericField2: 18},
		},
		TwoGenericsNestedVec: []fixture.WithTwoGenerics[fixture.Bar, []fixture.WithTwoGenerics[fixture.Bar, uint8]]{
			{
				GenericField1: bar(19),
				GenericField2: []fixture.WithTwoGenerics[fixture.Bar, uint8]{
					{GenericField1: bar(20), GenericField2: 21},
				},
			},
		},
		Dummy: fixture.Dummy{DummyField: false},
		Other: othermodule.StructFromOtherModule{DummyField: true},
	}
}

func TestBarBcs(t *testing.T) {
	data, err := fixture.BarType.ToBcs(&fixture.Bar{Value: 42})
	require.NoError(t, err)
	assert.Equal(t, []byte{42, 0, 0, 0, 0, 0, 0, 0}, data)

	bar, err := fixture.BarType.FromBcs(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), bar.Value)

	_, err = fixture.BarType.FromBcs(append(data, 0))
	require.Error(t, err)
}

func TestFooBcsRoundTrip(t *testing.T) {
	fooType := fixture.FooType[fixture.Bar]()
	data, err := fooType.ToBcs(testFoo())
	require.NoError(t, err)

	barArg := suigen.GetGlobalCodec().MustReify(fixture.BarTypeName)
	foo, err := fooType.FromBcs(data, barArg)
	require.NoError(t, err)

	assert.Equal(t, []string{fixture.BarTypeName}, foo.TypeArgs)
	assert.Equal(t, uint64(1), foo.Generic.Value)
	assert.Equal(t, []uint64{1, 2, 3}, foo.ReifiedPrimitiveVec)
	assert.Equal(t, uint8(6), foo.GenericVecNested[0].GenericField2)
	assert.Equal(t, []string{fixture.BarTypeName, "u8"}, foo.GenericVecNested[0].TypeArgs)
	assert.Equal(t, uint8(15), foo.TwoGenericsNested.GenericField2.GenericField2)
	assert.Equal(t, uint64(20), foo.TwoGenericsNestedVec[0].GenericField2[0].GenericField1.Value)
	assert.True(t, foo.Other.DummyField)
	assert.Equal(t, objectID, foo.ID.String())

	again, err := fooType.ToBcs(foo)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestFooDecodePathsAgree(t *testing.T) {
	codec := suigen.GetGlobalCodec()
	fooType := fixture.FooType[fixture.Bar]()
	sv, err := fooType.ToValue(testFoo())
	require.NoError(t, err)

	r, err := codec.Reify(sv.FullTypeName())
	require.NoError(t, err)

	data, err := r.ToBcs(sv)
	require.NoError(t, err)
	fromBcs, err := r.FromBcs(data)
	require.NoError(t, err)

	fromJSON, err := r.FromJSON(jsonRoundTrip(t, suigen.ToJSON(sv)))
	require.NoError(t, err)

	assert.Equal(t, suigen.ToJSON(sv), suigen.ToJSON(fromBcs))
	assert.Equal(t, suigen.ToJSON(sv), suigen.ToJSON(fromJSON))
	assert.Equal(t, sv.FullTypeName(), fromJSON.FullTypeName())
}

func TestFooJSON(t *testing.T) {
	out, err := fixture.FooType[fixture.Bar]().ToJSON(testFoo())
	require.NoError(t, err)

	assert.Equal(t, fixture.FooTypeName, out["$typeName"])
	assert.Equal(t, fixture.BarTypeName, out["$typeArg"])
	assert.Equal(t, []any{"1", "2", "3"}, out["reifiedPrimitiveVec"])
	assert.Equal(t, map[string]any{"value": "1"}, out["generic"])
	assert.Equal(t, objectID, out["id"])

	nested := out["twoGenericsReifiedPrimitive"].(map[string]any)
	assert.Equal(t, uint16(9), nested["genericField1"])
	assert.Equal(t, "10", nested["genericField2"])

	foo, err := fixture.FooType[fixture.Bar]().FromJSON(jsonRoundTrip(t, out))
	require.NoError(t, err)
	assert.Equal(t, uint16(9), foo.TwoGenericsReifiedPrimitive.GenericField1)
	assert.Equal(t, uint64(10), foo.TwoGenericsReifiedPrimitive.GenericField2)
}

func TestFromJSONValidation(t *testing.T) {
	bar, err := fixture.BarType.ToJSON(&fixture.Bar{Value: 1})
	require.NoError(t, err)

	_, err = fixture.DummyType.FromJSON(bar)
	require.EqualError(t, err, "not a Dummy json object")
	require.ErrorIs(t, err, suigen.ErrTypeMismatch)

	delete(bar, "$typeName")
	_, err = fixture.BarType.FromJSON(bar)
	require.EqualError(t, err, "not a Bar json object")

	twoGenerics := fixture.WithTwoGenericsType[uint8, uint16]()
	out, err := twoGenerics.ToJSON(&fixture.WithTwoGenerics[uint8, uint16]{
		TypeInfo:      movetypes.TypeInfo{TypeArgs: []string{"u8", "u16"}},
		GenericField1: 1,
		GenericField2: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"u8", "u16"}, out["$typeArgs"])

	codec := suigen.GetGlobalCodec()
	_, err = twoGenerics.FromJSON(out, codec.MustReify("u8"), codec.MustReify("u32"))
	require.ErrorIs(t, err, suigen.ErrTypeArgMismatch)

	decoded, err := twoGenerics.FromJSON(jsonRoundTrip(t, out))
	require.NoError(t, err)
	assert.Equal(t, uint16(2), decoded.GenericField2)

	delete(out, "$typeArgs")
	_, err = twoGenerics.FromJSON(out)
	require.ErrorIs(t, err, suigen.ErrTypeArgMismatch)
}

func TestIsStruct(t *testing.T) {
	assert.True(t, fixture.IsBar(fixture.BarTypeName))
	assert.True(t, fixture.IsFoo(fixture.FooTypeName+"<u8>"))
	assert.False(t, fixture.IsFoo(fixture.FooTypeName))
	assert.False(t, fixture.IsBar(fixture.BarTypeName+"Baz"))
	assert.False(t, fixture.IsWithTwoGenerics(fixture.WithGenericFieldTypeName+"<u8>"))
	assert.True(t, othermodule.IsStructFromOtherModule("0x8b699fdce543505aeb290ee1b6b5d20fcaa8e8b1a5fc137a8b3facdfa2902209::other_module::StructFromOtherModule"))
}

func TestPhantomBindingIsRejected(t *testing.T) {
	codec := suigen.GetGlobalCodec()
	_, err := codec.Struct(fixture.WithGenericFieldTypeName, suigen.MustPhantom("u64"))
	require.ErrorIs(t, err, suigen.ErrPhantomDecode)

	r, err := codec.Struct(fixture.WithSpecialTypesTypeName, suigen.MustPhantom("0x2::sui::SUI"), codec.MustReify("u64"))
	require.NoError(t, err)
	assert.True(t, r.TypeArgs()[0].IsPhantom())
	assert.False(t, r.TypeArgs()[1].IsPhantom())
}

func TestWithSpecialTypesAsGenericsBcs(t *testing.T) {
	type asGenerics = fixture.WithSpecialTypesAsGenerics[string, string, string, movetypes.Address, movetypes.Address, balance.Balance, *uint64, *uint64]
	typed := fixture.WithSpecialTypesAsGenericsType[string, string, string, movetypes.Address, movetypes.Address, balance.Balance, *uint64, *uint64]()

	value := &asGenerics{
		TypeInfo: movetypes.TypeInfo{TypeArgs: []string{
			"0x1::string::String",
			"0x1::ascii::String",
			"0x2::url::Url",
			"0x2::object::ID",
			"0x2::object::UID",
			"0x2::balance::Balance<0x2::sui::SUI>",
			"0x1::option::Option<u64>",
			"0x1::option::Option<u64>",
		}},
		ID:          movetypes.MustParseAddress(objectID),
		String:      "héllo",
		AsciiString: "ascii",
		URL:         "https://example.com",
		IDField:     movetypes.MustParseAddress(otherID),
		UID:         movetypes.MustParseAddress("0x1"),
		Balance:     balance.Balance{Value: 1000},
		Option:      ptr(uint64(7)),
	}

	data, err := typed.ToBcs(value)
	require.NoError(t, err)

	r, err := suigen.GetGlobalCodec().Reify(movetypes.ComposeType(fixture.WithSpecialTypesAsGenericsTypeName, value.TypeArgs...))
	require.NoError(t, err)
	sv, err := r.FromBcs(data)
	require.NoError(t, err)

	decoded, err := typed.FromValue(sv)
	require.NoError(t, err)
	assert.Equal(t, "héllo", decoded.String)
	assert.Equal(t, "https://example.com", decoded.URL)
	assert.Equal(t, otherID, decoded.IDField.String())
	assert.Equal(t, uint64(1000), decoded.Balance.Value)
	assert.Equal(t, []string{"0x2::sui::SUI"}, decoded.Balance.TypeArgs)
	require.NotNil(t, decoded.Option)
	assert.Equal(t, uint64(7), *decoded.Option)
	assert.Nil(t, decoded.OptionNone)

	js := suigen.ToJSON(sv)
	assert.Equal(t, "7", js["option"])
	assert.Nil(t, js["optionNone"])
	assert.Equal(t, map[string]any{"value": "1000"}, js["balance"])
	assert.Len(t, js["$typeArgs"], 8)
}

func TestWithSpecialTypesInVectorsJSON(t *testing.T) {
	typed := fixture.WithSpecialTypesInVectorsType[uint8]()
	value := &fixture.WithSpecialTypesInVectors[uint8]{
		TypeInfo:      movetypes.TypeInfo{TypeArgs: []string{"u8"}},
		ID:            movetypes.MustParseAddress(objectID),
		String:        []string{"a", "b"},
		AsciiString:   []string{"c"},
		IDField:       []movetypes.Address{movetypes.MustParseAddress(otherID)},
		Bar:           []fixture.Bar{{Value: 1}},
		Option:        []*uint64{ptr(uint64(5)), nil},
		OptionGeneric: []*uint8{nil, ptr(uint8(3))},
	}

	out, err := typed.ToJSON(value)
	require.NoError(t, err)
	assert.Equal(t, []any{"5", nil}, out["option"])
	assert.Equal(t, []any{nil, uint8(3)}, out["optionGeneric"])
	assert.Equal(t, []any{otherID}, out["idField"])

	decoded, err := typed.FromJSON(jsonRoundTrip(t, out))
	require.NoError(t, err)
	assert.Equal(t, value.String, decoded.String)
	assert.Equal(t, value.Option, decoded.Option)
	assert.Equal(t, value.OptionGeneric, decoded.OptionGeneric)
	assert.Equal(t, value.Bar, decoded.Bar)

	data, err := typed.ToBcs(value)
	require.NoError(t, err)
	fromBcs, err := typed.FromBcs(data, suigen.GetGlobalCodec().MustReify("u8"))
	require.NoError(t, err)
	assert.Equal(t, decoded, fromBcs)
}
