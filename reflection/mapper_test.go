// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package reflection

import (
	"reflect"
	"sync"
	"testing"

	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pointDesc = movetypes.MustDefineStruct("0x42::shapes::Point", nil, []movetypes.FieldDef{
		{Name: "x", Type: "u64"},
		{Name: "y", Type: "u64"},
	})
	boxDesc = movetypes.MustDefineStruct("0x42::shapes::Box", []movetypes.TypeParam{{Name: "T"}, {Name: "M", Phantom: true}}, []movetypes.FieldDef{
		{Name: "id", Type: "0x2::object::UID"},
		{Name: "label", Type: "0x1::string::String"},
		{Name: "item", Type: "T"},
		{Name: "points", Type: "vector<0x42::shapes::Point>"},
		{Name: "data", Type: "vector<u8>"},
		{Name: "maybe", Type: "0x1::option::Option<0x42::shapes::Point>"},
		{Name: "amount", Type: "u128"},
		{Name: "flag", Type: "bool"},
	})
)

type Point struct {
	X uint64 `move:"x"`
	Y uint64 `move:"y"`
}

type Box[T any] struct {
	movetypes.TypeInfo
	ID     movetypes.Address `move:"id"`
	Label  string            `move:"label"`
	Item   T                 `move:"item"`
	Points []Point           `move:"points"`
	Data   []byte            `move:"data"`
	Maybe  *Point            `move:"maybe"`
	Amount *uint256.Int      `move:"amount"`
	Flag   bool              `move:"flag"`
	Local  string
}

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	registry := movetypes.DefaultRegistry().Clone()
	require.NoError(t, registry.Register(pointDesc, boxDesc))
	return NewMapper(registry)
}

func TestExtractAssignRoundTrip(t *testing.T) {
	mapper := newTestMapper(t)
	typeArgs := []movetypes.TypeTag{
		movetypes.PrimitiveTag(movetypes.U16Kind),
		movetypes.MustParseTypeTag("0x2::sui::SUI"),
	}

	box := Box[uint16]{
		ID:     movetypes.MustParseAddress("0xabc"),
		Label:  "crate",
		Item:   7,
		Points: []Point{{X: 1, Y: 2}, {X: 3, Y: 4}},
		Data:   []byte{0xde, 0xad},
		Maybe:  &Point{X: 9, Y: 9},
		Amount: uint256.NewInt(1 << 40),
		Flag:   true,
		Local:  "ignored",
	}

	sv, err := mapper.ExtractStruct(boxDesc, typeArgs, reflect.ValueOf(box))
	require.NoError(t, err)
	assert.Equal(t, "0x42::shapes::Box<u16, 0x2::sui::SUI>", sv.FullTypeName())

	item, _ := sv.Field("item")
	assert.Equal(t, uint16(7), item)
	points, _ := sv.Field("points")
	require.Len(t, points, 2)
	assert.IsType(t, &movetypes.StructValue{}, points.([]any)[0])
	maybe, _ := sv.Field("maybe")
	assert.IsType(t, &movetypes.StructValue{}, maybe)

	var out Box[uint16]
	require.NoError(t, mapper.Assign(reflect.ValueOf(&out).Elem(), sv))
	assert.Equal(t, []string{"u16", "0x2::sui::SUI"}, out.TypeArgs)

	box.Local = ""
	box.TypeInfo = out.TypeInfo
	assert.Equal(t, box, out)
}

func TestAssignOptionNone(t *testing.T) {
	mapper := newTestMapper(t)
	sv, err := movetypes.NewStructValue(pointDesc, nil, map[string]any{"x": uint64(1), "y": uint64(2)})
	require.NoError(t, err)

	var target *Point
	require.NoError(t, mapper.Assign(reflect.ValueOf(&target).Elem(), sv))
	require.NotNil(t, target)
	assert.Equal(t, Point{X: 1, Y: 2}, *target)

	require.NoError(t, mapper.Assign(reflect.ValueOf(&target).Elem(), nil))
	assert.Nil(t, target)

	optTag := movetypes.MustParseTypeTag("0x1::option::Option<u128>")
	var amount *uint256.Int
	value, err := mapper.Extract(optTag, reflect.ValueOf(amount))
	require.NoError(t, err)
	assert.Nil(t, value)

	amount = uint256.NewInt(5)
	value, err = mapper.Extract(optTag, reflect.ValueOf(amount))
	require.NoError(t, err)
	assert.Equal(t, uint256.NewInt(5), value)
}

func TestAssignErrors(t *testing.T) {
	mapper := newTestMapper(t)

	var n uint8
	err := mapper.Assign(reflect.ValueOf(&n).Elem(), uint64(300))
	require.Error(t, err)

	var s string
	err = mapper.Assign(reflect.ValueOf(&s).Elem(), 12)
	require.Error(t, err)

	type partial struct {
		X uint64 `move:"x"`
	}
	sv, err := movetypes.NewStructValue(pointDesc, nil, map[string]any{"x": uint64(1), "y": uint64(2)})
	require.NoError(t, err)
	var p partial
	err = mapper.Assign(reflect.ValueOf(&p).Elem(), sv)
	require.ErrorContains(t, err, "no go field")
}

func TestExtractErrors(t *testing.T) {
	mapper := newTestMapper(t)

	_, err := mapper.Extract(movetypes.PrimitiveTag(movetypes.U64Kind), reflect.ValueOf("12"))
	require.Error(t, err)

	var nilPoint *Point
	_, err = mapper.Extract(movetypes.MustParseTypeTag("0x42::shapes::Point"), reflect.ValueOf(nilPoint))
	require.ErrorContains(t, err, "nil pointer")

	_, err = mapper.Extract(movetypes.MustParseTypeTag("0x42::shapes::Unknown"), reflect.ValueOf(Point{}))
	require.ErrorIs(t, err, movetypes.ErrUnknownStruct)
}

func TestTypeCache(t *testing.T) {
	cache := NewTypeCache()

	type dup struct {
		A uint64 `move:"a"`
		B uint64 `move:"a"`
	}
	_, err := cache.GetStructInfo(reflect.TypeOf(dup{}))
	require.ErrorContains(t, err, "duplicate")

	_, err = cache.GetStructInfo(reflect.TypeOf(0))
	require.Error(t, err)

	var wg sync.WaitGroup
	infos := make([]*StructInfo, 8)
	for i := range infos {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			info, err := cache.GetStructInfo(reflect.TypeOf(Box[string]{}))
			assert.NoError(t, err)
			infos[i] = info
		}(i)
	}
	wg.Wait()
	for _, info := range infos {
		assert.Same(t, infos[0], info)
	}
	assert.Equal(t, []int{0}, infos[0].TypeInfo)
	assert.Equal(t, []int{3}, infos[0].Fields["item"])
	assert.NotContains(t, infos[0].Fields, "Local")
}
