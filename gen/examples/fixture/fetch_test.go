// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package fixture_test

import (
	"context"
	"errors"
	"testing"

	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/gen/examples/fixture"
	"github.com/WayneAl/sui-client-gen/suiclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGetter struct {
	res *suiclient.ObjectResponse
	err error
}

func (g *staticGetter) GetObject(_ context.Context, _ string, _ *suiclient.ObjectDataOptions) (*suiclient.ObjectResponse, error) {
	return g.res, g.err
}

// objectService serves sui_getObject from a fixed set of objects.
type objectService struct {
	objects map[string]*suiclient.ParsedData
}

func (s *objectService) GetObject(id string, _ *suiclient.ObjectDataOptions) (*suiclient.ObjectResponse, error) {
	content, ok := s.objects[id]
	if !ok {
		return &suiclient.ObjectResponse{Error: &suiclient.ObjectResponseError{Code: "notExists", ObjectID: id}}, nil
	}
	return &suiclient.ObjectResponse{Data: &suiclient.ObjectData{
		ObjectID: id,
		Version:  "1",
		Type:     content.Type,
		Content:  content,
	}}, nil
}

func withSpecialTypesContent() *suiclient.ParsedData {
	return &suiclient.ParsedData{
		DataType: suiclient.DataTypeMoveObject,
		Type:     fixture.WithSpecialTypesTypeName + "<0x2::sui::SUI, u64>",
		Fields: map[string]any{
			"id":           map[string]any{"id": objectID},
			"string":       "string",
			"ascii_string": "ascii",
			"url":          "https://example.com",
			"id_field":     otherID,
			"uid":          map[string]any{"id": otherID},
			"balance":      "1000",
			"option":       "5",
			"option_obj": map[string]any{
				"type":   fixture.BarTypeName,
				"fields": map[string]any{"value": "7"},
			},
			"option_none":         nil,
			"balance_generic":     "2000",
			"option_generic":      "9",
			"option_generic_none": nil,
		},
	}
}

func barContent(value string) *suiclient.ParsedData {
	return &suiclient.ParsedData{
		DataType: suiclient.DataTypeMoveObject,
		Type:     fixture.BarTypeName,
		Fields:   map[string]any{"value": value},
	}
}

func TestFetchErrors(t *testing.T) {
	ctx := context.Background()

	_, err := fixture.BarType.Fetch(ctx, &staticGetter{res: &suiclient.ObjectResponse{
		Error: &suiclient.ObjectResponseError{Code: "notExists"},
	}}, "0x1")
	require.EqualError(t, err, "error fetching Bar object at id 0x1: notExists")
	require.ErrorIs(t, err, suigen.ErrFetch)

	_, err = fixture.BarType.Fetch(ctx, &staticGetter{res: &suiclient.ObjectResponse{
		Data: &suiclient.ObjectData{ObjectID: "0x1", Content: &suiclient.ParsedData{DataType: "package"}},
	}}, "0x1")
	require.EqualError(t, err, "object at id 0x1 is not a Bar object")
	require.ErrorIs(t, err, suigen.ErrNotInstance)

	_, err = fixture.BarType.Fetch(ctx, &staticGetter{res: &suiclient.ObjectResponse{
		Data: &suiclient.ObjectData{ObjectID: "0x1", Content: withSpecialTypesContent()},
	}}, "0x1")
	require.EqualError(t, err, "object at id 0x1 is not a Bar object")

	_, err = fixture.BarType.Fetch(ctx, &staticGetter{err: errors.New("connection refused")}, "0x1")
	require.EqualError(t, err, "error fetching Bar object at id 0x1: connection refused")
}

func TestFromFieldsWithTypes(t *testing.T) {
	typed := fixture.WithSpecialTypesType[uint64]()
	content := withSpecialTypesContent()

	value, err := typed.FromFieldsWithTypes(suigen.FieldsWithTypes{Type: content.Type, Fields: content.Fields})
	require.NoError(t, err)

	assert.Equal(t, []string{"0x2::sui::SUI", "u64"}, value.TypeArgs)
	assert.Equal(t, objectID, value.ID.String())
	assert.Equal(t, otherID, value.UID.String())
	assert.Equal(t, uint64(1000), value.Balance.Value)
	assert.Equal(t, uint64(2000), value.BalanceGeneric.Value)
	assert.Equal(t, []string{"0x2::sui::SUI"}, value.BalanceGeneric.TypeArgs)
	require.NotNil(t, value.OptionObj)
	assert.Equal(t, uint64(7), value.OptionObj.Value)
	require.NotNil(t, value.OptionGeneric)
	assert.Equal(t, uint64(9), *value.OptionGeneric)
	assert.Nil(t, value.OptionNone)
	assert.Nil(t, value.OptionGenericNone)

	codec := suigen.GetGlobalCodec()
	r, err := codec.Struct(fixture.WithSpecialTypesTypeName, suigen.MustPhantom("0x2::sui::SUI"), codec.MustReify("u8"))
	require.NoError(t, err)
	_, err = r.FromFieldsWithTypes(suigen.FieldsWithTypes{Type: content.Type, Fields: content.Fields})
	require.ErrorIs(t, err, suigen.ErrTypeArgMismatch)

	_, err = fixture.BarType.FromFieldsWithTypes(suigen.FieldsWithTypes{Type: content.Type, Fields: content.Fields})
	require.ErrorIs(t, err, suigen.ErrTypeMismatch)

	delete(content.Fields, "url")
	_, err = typed.FromFieldsWithTypes(suigen.FieldsWithTypes{Type: content.Type, Fields: content.Fields})
	require.ErrorIs(t, err, suigen.ErrMalformedField)
	assert.Contains(t, err.Error(), "WithSpecialTypes.url")
}

func TestFetchOverRPC(t *testing.T) {
	server := rpc.NewServer()
	t.Cleanup(server.Stop)
	require.NoError(t, server.RegisterName("sui", &objectService{objects: map[string]*suiclient.ParsedData{
		objectID: withSpecialTypesContent(),
		otherID:  barContent("42"),
	}}))

	client := suiclient.NewClient(rpc.DialInProc(server))
	t.Cleanup(client.Close)
	ctx := context.Background()

	bar, err := fixture.BarType.Fetch(ctx, client, otherID)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), bar.Value)

	special, err := fixture.WithSpecialTypesType[uint64]().Fetch(ctx, client, objectID)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", special.URL)
	assert.Equal(t, uint64(5), *special.Option)

	_, err = fixture.BarType.Fetch(ctx, client, objectID)
	require.EqualError(t, err, "object at id "+objectID+" is not a Bar object")

	_, err = fixture.BarType.Fetch(ctx, client, "0x3")
	require.EqualError(t, err, "error fetching Bar object at id 0x3: notExists")

	sv, err := suigen.GetGlobalCodec().FetchAny(ctx, client, objectID)
	require.NoError(t, err)
	assert.Equal(t, fixture.WithSpecialTypesTypeName+"<0x2::sui::SUI, u64>", sv.FullTypeName())
}
