// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"context"
	"fmt"

	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/WayneAl/sui-client-gen/suiclient"
	"go.uber.org/zap"
)

// ObjectGetter reads single objects. *suiclient.Client implements it.
type ObjectGetter interface {
	GetObject(ctx context.Context, id string, options *suiclient.ObjectDataOptions) (*suiclient.ObjectResponse, error)
}

var _ ObjectGetter = (*suiclient.Client)(nil)

// Fetch reads the object with the given id and decodes it as an instance of
// this struct binding.
//
// Parameters:
//   - ctx: Request context
//   - client: The object source
//   - id: Object id
//
// Returns:
//   - *movetypes.StructValue: The decoded object
//   - error: A *FetchError if the node returned an error object, a *NotInstanceError
//     if the object has no move content of this struct type, or any decode error
func (r *Reified) Fetch(ctx context.Context, client ObjectGetter, id string) (*movetypes.StructValue, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}

	res, err := client.GetObject(ctx, id, &suiclient.ObjectDataOptions{ShowContent: true})
	if err != nil {
		return nil, fmt.Errorf("error fetching %s object at id %s: %w", r.desc.Name, id, err)
	}
	if res.Error != nil {
		return nil, &FetchError{Struct: r.desc.Name, ID: id, Code: res.Error.Code}
	}
	if res.Data == nil || res.Data.Content == nil ||
		res.Data.Content.DataType != suiclient.DataTypeMoveObject ||
		!r.desc.Matches(res.Data.Content.Type) {
		return nil, &NotInstanceError{Struct: r.desc.Name, ID: id}
	}

	r.codec.trace("fetched object", zap.String("id", id), zap.String("type", res.Data.Content.Type))
	return r.FromFieldsWithTypes(FieldsWithTypes{
		Type:   res.Data.Content.Type,
		Fields: res.Data.Content.Fields,
	})
}

// FetchBcs is like Fetch but requests the BCS bytes of the object and decodes those.
func (r *Reified) FetchBcs(ctx context.Context, client ObjectGetter, id string) (*movetypes.StructValue, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}

	res, err := client.GetObject(ctx, id, &suiclient.ObjectDataOptions{ShowType: true, ShowBcs: true})
	if err != nil {
		return nil, fmt.Errorf("error fetching %s object at id %s: %w", r.desc.Name, id, err)
	}
	if res.Error != nil {
		return nil, &FetchError{Struct: r.desc.Name, ID: id, Code: res.Error.Code}
	}
	if res.Data == nil || res.Data.Bcs == nil ||
		res.Data.Bcs.DataType != suiclient.DataTypeMoveObject ||
		!r.desc.Matches(res.Data.Bcs.Type) {
		return nil, &NotInstanceError{Struct: r.desc.Name, ID: id}
	}
	if res.Data.Bcs.Type != "" && movetypes.CompressType(res.Data.Bcs.Type) != r.name {
		_, args, err := movetypes.SplitTypeName(res.Data.Bcs.Type)
		if err != nil {
			return nil, err
		}
		if err := r.assertTypeArgsMatch(args); err != nil {
			return nil, err
		}
	}

	data, err := res.Data.Bcs.Bytes()
	if err != nil {
		return nil, fmt.Errorf("invalid bcs payload of object %s: %w", id, err)
	}
	return r.FromBcs(data)
}

// FromSuiParsedData decodes the parsed content of a move object.
func (r *Reified) FromSuiParsedData(content *suiclient.ParsedData) (*movetypes.StructValue, error) {
	if content == nil || content.DataType != suiclient.DataTypeMoveObject {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, r.structName())
	}
	if !r.Matches(content.Type) {
		return nil, &TypeMismatchError{Struct: r.structName(), Got: content.Type}
	}
	return r.FromFieldsWithTypes(FieldsWithTypes{Type: content.Type, Fields: content.Fields})
}

// FetchAny reads the object with the given id and decodes it with the
// binding of its own type, which must be registered.
func (c *Codec) FetchAny(ctx context.Context, client ObjectGetter, id string) (*movetypes.StructValue, error) {
	return c.fetchStruct(ctx, client, id, nil)
}

// fetchStruct fetches an object and reifies its type from the node response.
// A non-nil desc restricts the accepted struct.
func (c *Codec) fetchStruct(ctx context.Context, client ObjectGetter, id string, desc *movetypes.StructDescriptor) (*movetypes.StructValue, error) {
	name := "move"
	if desc != nil {
		name = desc.Name
	}

	res, err := client.GetObject(ctx, id, &suiclient.ObjectDataOptions{ShowType: true, ShowContent: true})
	if err != nil {
		return nil, fmt.Errorf("error fetching %s object at id %s: %w", name, id, err)
	}
	if res.Error != nil {
		return nil, &FetchError{Struct: name, ID: id, Code: res.Error.Code}
	}
	if res.Data == nil || res.Data.Content == nil || res.Data.Content.DataType != suiclient.DataTypeMoveObject ||
		(desc != nil && !desc.Matches(res.Data.Content.Type)) {
		return nil, &NotInstanceError{Struct: name, ID: id}
	}

	r, err := c.Reify(res.Data.Content.Type)
	if err != nil {
		return nil, err
	}
	return r.FromFieldsWithTypes(FieldsWithTypes{
		Type:   res.Data.Content.Type,
		Fields: res.Data.Content.Fields,
	})
}
