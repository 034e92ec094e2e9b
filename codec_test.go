// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen_test

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	poolTypeName = "0x5::pool::Pool"
	nodeTypeName = "0x5::list::Node"
	pairTypeName = "0x5::pair::Pair"
)

var (
	poolDescriptor = movetypes.MustDefineStruct(poolTypeName,
		[]movetypes.TypeParam{{Name: "T0", Phantom: true}, {Name: "T1"}},
		[]movetypes.FieldDef{
			{Name: "id", Type: "0x2::object::UID"},
			{Name: "value", Type: "T1"},
			{Name: "name", Type: "0x1::string::String"},
			{Name: "items", Type: "vector<u64>"},
			{Name: "opt", Type: "0x1::option::Option<T1>"},
			{Name: "balance", Type: "0x2::balance::Balance<T0>"},
		})

	nodeDescriptor = movetypes.MustDefineStruct(nodeTypeName, nil, []movetypes.FieldDef{
		{Name: "value", Type: "u64"},
		{Name: "next", Type: "0x1::option::Option<0x5::list::Node>"},
	})

	pairDescriptor = movetypes.MustDefineStruct(pairTypeName,
		[]movetypes.TypeParam{{Name: "A"}, {Name: "B"}},
		[]movetypes.FieldDef{
			{Name: "first", Type: "A"},
			{Name: "second", Type: "B"},
			{Name: "big", Type: "u128"},
			{Name: "raw", Type: "vector<u8>"},
		})
)

func fromHex(s string) []byte {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		panic(err)
	}
	return data
}

func newTestCodec(t *testing.T) *suigen.Codec {
	t.Helper()
	registry := movetypes.DefaultRegistry().Clone()
	require.NoError(t, registry.Register(poolDescriptor, nodeDescriptor, pairDescriptor))
	return suigen.NewCodec(suigen.WithRegistry(registry))
}

func roundTripJSON(t *testing.T, v map[string]any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

const poolBcs = "0000000000000000000000000000000000000000000000000000000000000001" + // id
	"07" + // value
	"026869" + // name
	"0201000000000000000200000000000000" + // items
	"0109" + // opt
	"6400000000000000" // balance

var codecTestMatrix = []struct {
	name     string
	typeName string
	bcs      []byte
	check    func(t *testing.T, v *movetypes.StructValue)
}{
	{
		"pool",
		poolTypeName + "<0x2::sui::SUI, u8>",
		fromHex(poolBcs),
		func(t *testing.T, v *movetypes.StructValue) {
			fields := v.Fields()
			assert.Equal(t, movetypes.MustParseAddress("0x1"), fields["id"])
			assert.Equal(t, uint8(7), fields["value"])
			assert.Equal(t, "hi", fields["name"])
			assert.Equal(t, []any{uint64(1), uint64(2)}, fields["items"])
			assert.Equal(t, uint8(9), fields["opt"])
			balance := fields["balance"].(*movetypes.StructValue)
			assert.Equal(t, "0x2::balance::Balance<0x2::sui::SUI>", balance.FullTypeName())
			value, _ := balance.Field("value")
			assert.Equal(t, uint64(100), value)
		},
	},
	{
		"recursive_node",
		nodeTypeName,
		fromHex("0100000000000000" + "01" + "0200000000000000" + "00"),
		func(t *testing.T, v *movetypes.StructValue) {
			next, ok := v.Field("next")
			require.True(t, ok)
			nested := next.(*movetypes.StructValue)
			value, _ := nested.Field("value")
			assert.Equal(t, uint64(2), value)
			last, _ := nested.Field("next")
			assert.Nil(t, last)
		},
	},
	{
		"pair_of_vectors",
		pairTypeName + "<vector<0x1::string::String>, 0x1::option::Option<address>>",
		fromHex("02" + "0161" + "0162" + "00" + "ff000000000000000000000000000000" + "03010203"),
		func(t *testing.T, v *movetypes.StructValue) {
			fields := v.Fields()
			assert.Equal(t, []any{"a", "b"}, fields["first"])
			assert.Nil(t, fields["second"])
			assert.Equal(t, uint256.NewInt(255), fields["big"])
			assert.Equal(t, []byte{1, 2, 3}, fields["raw"])
		},
	},
}

func TestCodecMatrix(t *testing.T) {
	codec := newTestCodec(t)

	for _, test := range codecTestMatrix {
		t.Run(test.name, func(t *testing.T) {
			r, err := codec.Reify(test.typeName)
			require.NoError(t, err)

			value, err := r.FromBcs(test.bcs)
			require.NoError(t, err)
			test.check(t, value)

			encoded, err := r.ToBcs(value)
			require.NoError(t, err)
			assert.Equal(t, test.bcs, encoded)

			fromJSON, err := r.FromJSON(roundTripJSON(t, suigen.ToJSON(value)))
			require.NoError(t, err)
			test.check(t, fromJSON)

			encoded, err = codec.ToBcs(fromJSON)
			require.NoError(t, err)
			assert.Equal(t, test.bcs, encoded)
		})
	}
}

func TestDecodedValueIsImmutable(t *testing.T) {
	codec := newTestCodec(t)
	r := codec.MustReify(pairTypeName + "<vector<0x1::string::String>, 0x1::option::Option<address>>")

	v, err := r.FromBcs(fromHex("02" + "0161" + "0162" + "00" + "ff000000000000000000000000000000" + "03010203"))
	require.NoError(t, err)

	raw, _ := v.Field("raw")
	raw.([]byte)[0] = 0x99
	first, _ := v.Field("first")
	first.([]any)[0] = "zzz"
	big, _ := v.Field("big")
	big.(*uint256.Int).SetUint64(1)
	v.Fields()["first"].([]any)[1] = "yyy"

	raw, _ = v.Field("raw")
	first, _ = v.Field("first")
	big, _ = v.Field("big")
	assert.Equal(t, []byte{1, 2, 3}, raw)
	assert.Equal(t, []any{"a", "b"}, first)
	assert.Equal(t, uint256.NewInt(255), big)
}

func TestToJSON(t *testing.T) {
	codec := newTestCodec(t)
	r := codec.MustReify(poolTypeName + "<0x2::sui::SUI, u8>")

	value, err := r.FromBcs(fromHex(poolBcs))
	require.NoError(t, err)

	out := suigen.ToJSON(value)
	assert.Equal(t, map[string]any{
		"$typeName": poolTypeName,
		"$typeArgs": []string{"0x2::sui::SUI", "u8"},
		"id":        "0x0000000000000000000000000000000000000000000000000000000000000001",
		"value":     uint8(7),
		"name":      "hi",
		"items":     []any{"1", "2"},
		"opt":       uint8(9),
		"balance":   map[string]any{"value": "100"},
	}, out)

	balance := codec.MustReify("0x2::balance::Balance<0x2::sui::SUI>")
	sv, err := balance.FromFields(map[string]any{"value": uint64(3)})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"$typeName": "0x2::balance::Balance",
		"$typeArg":  "0x2::sui::SUI",
		"value":     "3",
	}, suigen.ToJSON(sv))
}

func TestStructBcs(t *testing.T) {
	codec := newTestCodec(t)

	schema, err := codec.StructBcs(poolTypeName, bcs.U8())
	require.NoError(t, err)

	raw, err := bcs.ParseBytes(schema, fromHex(poolBcs))
	require.NoError(t, err)
	fields := raw.(map[string]any)
	assert.Equal(t, uint8(7), fields["value"])
	assert.Equal(t, map[string]any{"vec": []byte{9}}, fields["opt"])

	encoded, err := bcs.SerializeToBytes(schema, raw)
	require.NoError(t, err)
	assert.Equal(t, fromHex(poolBcs), encoded)

	_, err = codec.StructBcs(poolTypeName)
	require.ErrorIs(t, err, movetypes.ErrTypeArgCount)

	_, err = codec.StructBcs(poolTypeName, bcs.U8(), bcs.U8())
	require.ErrorIs(t, err, movetypes.ErrTypeArgCount)

	_, err = codec.StructBcs("0x5::pool::Missing")
	require.ErrorIs(t, err, movetypes.ErrUnknownStruct)
}

func TestDecodeSpecialTopLevel(t *testing.T) {
	codec := newTestCodec(t)

	str, err := codec.MustReify("0x1::string::String").DecodeBcs(fromHex("03616263"))
	require.NoError(t, err)
	assert.Equal(t, "abc", str)

	_, err = codec.MustReify("0x1::string::String").DecodeBcs(fromHex("01ff"))
	require.Error(t, err)

	_, err = codec.MustReify("0x1::ascii::String").DecodeBcs(fromHex("0180"))
	require.Error(t, err)

	opt, err := codec.MustReify("0x1::option::Option<u16>").DecodeBcs(fromHex("010500"))
	require.NoError(t, err)
	assert.Equal(t, uint16(5), opt)

	none, err := codec.MustReify("0x1::option::Option<u16>").DecodeBcs(fromHex("00"))
	require.NoError(t, err)
	assert.Nil(t, none)

	vec, err := codec.MustReify("vector<u32>").DecodeBcs(fromHex("020100000002000000"))
	require.NoError(t, err)
	assert.Equal(t, []any{uint32(1), uint32(2)}, vec)

	id, err := codec.MustReify("0x2::object::ID").EncodeBcs(movetypes.MustParseAddress("0x2"))
	require.NoError(t, err)
	assert.Equal(t, fromHex("0000000000000000000000000000000000000000000000000000000000000002"), id)

	_, err = codec.MustReify("u64").FromBcs(fromHex("0100000000000000"))
	require.ErrorIs(t, err, suigen.ErrNotStruct)
}

func TestDecodeErrors(t *testing.T) {
	codec := newTestCodec(t)
	r := codec.MustReify(poolTypeName + "<0x2::sui::SUI, u8>")

	_, err := r.FromBcs(fromHex(poolBcs + "00"))
	require.Error(t, err)

	_, err = r.FromBcs(fromHex(poolBcs)[:40])
	require.Error(t, err)

	_, err = r.FromFields(map[string]any{"id": map[string]any{"id": map[string]any{"bytes": make([]byte, 32)}}})
	require.ErrorIs(t, err, suigen.ErrMalformedField)

	value, err := r.FromBcs(fromHex(poolBcs))
	require.NoError(t, err)

	other := codec.MustReify(poolTypeName + "<0x2::sui::SUI, u16>")
	_, err = other.ToBcs(value)
	require.ErrorIs(t, err, suigen.ErrTypeMismatch)

	_, err = other.FromJSON(suigen.ToJSON(value))
	require.ErrorIs(t, err, suigen.ErrTypeArgMismatch)

	_, err = codec.Reify(poolTypeName + "<u8>")
	require.ErrorIs(t, err, movetypes.ErrTypeArgCount)

	_, err = codec.Reify("0x5::pool::Missing")
	require.ErrorIs(t, err, movetypes.ErrUnknownStruct)

	_, err = codec.Reify(poolTypeName + "<0x2::sui::SUI, T1>")
	require.Error(t, err)
}

func TestNullVectorIsMalformed(t *testing.T) {
	codec := newTestCodec(t)
	r := codec.MustReify(poolTypeName + "<0x2::sui::SUI, u8>")

	assertMalformedItems := func(t *testing.T, err error) {
		t.Helper()
		require.ErrorIs(t, err, suigen.ErrMalformedField)
		var fieldErr *suigen.MalformedFieldError
		require.True(t, errors.As(err, &fieldErr))
		assert.Equal(t, "Pool", fieldErr.Struct)
		assert.Equal(t, "items", fieldErr.Field)
	}

	t.Run("bcs_fields", func(t *testing.T) {
		schema, err := codec.StructBcs(poolTypeName, bcs.U8())
		require.NoError(t, err)
		raw, err := bcs.ParseBytes(schema, fromHex(poolBcs))
		require.NoError(t, err)
		fields := raw.(map[string]any)
		fields["items"] = nil

		_, err = r.FromFields(fields)
		assertMalformedItems(t, err)
	})

	t.Run("typed_fields", func(t *testing.T) {
		_, err := r.FromFieldsWithTypes(suigen.FieldsWithTypes{
			Type: poolTypeName + "<0x2::sui::SUI, u8>",
			Fields: map[string]any{
				"id":      map[string]any{"id": "0x1"},
				"value":   float64(7),
				"name":    "hi",
				"items":   nil,
				"opt":     nil,
				"balance": "100",
			},
		})
		assertMalformedItems(t, err)
	})

	t.Run("json", func(t *testing.T) {
		value, err := r.FromBcs(fromHex(poolBcs))
		require.NoError(t, err)
		obj := suigen.ToJSON(value)
		obj["items"] = nil

		_, err = r.FromJSONField(obj)
		assertMalformedItems(t, err)
		_, err = r.FromJSON(obj)
		assertMalformedItems(t, err)
	})

	t.Run("encode", func(t *testing.T) {
		_, err := codec.MustReify("vector<u64>").EncodeBcs(nil)
		require.Error(t, err)
		_, err = codec.MustReify("vector<u8>").EncodeBcs(nil)
		require.Error(t, err)

		encoded, err := codec.MustReify("0x1::option::Option<vector<u64>>").EncodeBcs(nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0}, encoded)
	})
}

func TestJSONU64Precision(t *testing.T) {
	codec := newTestCodec(t)
	r := codec.MustReify(nodeTypeName)

	_, err := r.FromJSONField(map[string]any{"value": float64(9007199254740993), "next": nil})
	require.ErrorIs(t, err, suigen.ErrMalformedField)

	value, err := r.FromJSONField(map[string]any{"value": "9007199254740993", "next": nil})
	require.NoError(t, err)
	got, _ := value.Field("value")
	assert.Equal(t, uint64(9007199254740993), got)

	decoded, err := r.FromJSON(roundTripJSON(t, suigen.ToJSON(value)))
	require.NoError(t, err)
	got, _ = decoded.Field("value")
	assert.Equal(t, uint64(9007199254740993), got)
}

func TestStructBindings(t *testing.T) {
	codec := newTestCodec(t)

	r, err := codec.Struct(poolTypeName, codec.MustReify("u64"), codec.MustReify("u8"))
	require.NoError(t, err)
	assert.Equal(t, poolTypeName+"<u64, u8>", r.TypeName())
	assert.True(t, r.TypeArgs()[0].IsPhantom())
	assert.Same(t, r, codec.MustReify(poolTypeName+"<u64, u8>"))

	_, err = codec.Struct(poolTypeName, suigen.MustPhantom("u64"), suigen.MustPhantom("u8"))
	require.ErrorIs(t, err, suigen.ErrPhantomDecode)

	_, err = codec.Struct(poolTypeName, codec.MustReify("u8"))
	require.ErrorIs(t, err, movetypes.ErrTypeArgCount)

	assert.True(t, r.Matches("0x0000000000000000000000000000000000000000000000000000000000000005::pool::Pool<u8, u8>"))
	assert.False(t, r.Matches("0x5::pool::PoolV2<u8, u8>"))

	vec := codec.Vector(r)
	assert.Equal(t, "vector<"+poolTypeName+"<u64, u8>>", vec.TypeName())
	assert.Same(t, r, vec.Elem())
}

func TestGlobalCodec(t *testing.T) {
	defer suigen.SetGlobalCodec(nil)

	registry := movetypes.DefaultRegistry().Clone()
	require.NoError(t, registry.Register(poolDescriptor))
	suigen.SetGlobalRegistry(registry)

	codec := suigen.GetGlobalCodec()
	assert.Same(t, registry, codec.Registry())
	assert.Same(t, codec, suigen.GetGlobalCodec())

	suigen.SetGlobalCodec(nil)
	assert.Same(t, movetypes.DefaultRegistry(), suigen.GetGlobalCodec().Registry())
}
