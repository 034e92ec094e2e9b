// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"

	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

// ToBcs serializes a struct instance of this type.
//
// Parameters:
//   - v: The instance, its full type name must equal the binding's
//
// Returns:
//   - []byte: The BCS encoding
//   - error: A *TypeMismatchError for instances of other types, or an error
//     describing the first field value that cannot be encoded
func (r *Reified) ToBcs(v *movetypes.StructValue) ([]byte, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("cannot encode nil %s", r.name)
	}
	if v.FullTypeName() != r.name {
		return nil, &TypeMismatchError{Struct: r.desc.Name, Got: v.FullTypeName()}
	}
	return r.EncodeBcs(v)
}

// EncodeBcs serializes a value of any reified type given in its field representation.
func (r *Reified) EncodeBcs(value any) ([]byte, error) {
	schema, err := r.Bcs()
	if err != nil {
		return nil, err
	}
	raw, err := r.ToFields(value)
	if err != nil {
		return nil, err
	}
	data, err := bcs.SerializeToBytes(schema, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", r.name, err)
	}
	return data, nil
}

// ToFields converts a field representation back into the raw form accepted
// by the BCS schema. It is the inverse of DecodeFromFields.
func (r *Reified) ToFields(value any) (any, error) {
	switch r.tag.Kind {
	case movetypes.VectorKind:
		return r.vectorToFields(value)
	case movetypes.StructKind:
		return r.structToFields(value)
	}
	return r.decodePrimitive(value)
}

func (r *Reified) vectorToFields(value any) (any, error) {
	if r.elem.tag.Kind == movetypes.U8Kind {
		return toBytes(value)
	}

	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("expected %s as []any, got %T", r.name, value)
	}
	raw := make([]any, len(items))
	for i, item := range items {
		elem, err := r.elem.ToFields(item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", r.name, i, err)
		}
		raw[i] = elem
	}
	return raw, nil
}

func (r *Reified) structToFields(value any) (any, error) {
	switch r.desc.TypeName {
	case movetypes.StringTypeName, movetypes.ASCIIStringTypeName:
		s, ok := value.(string)
		if !ok {
			break
		}
		if _, err := decodeUTF8([]byte(s), r.desc.TypeName == movetypes.ASCIIStringTypeName); err != nil {
			return nil, err
		}
		return map[string]any{"bytes": []byte(s)}, nil

	case movetypes.URLTypeName:
		s, ok := value.(string)
		if !ok {
			break
		}
		if _, err := decodeUTF8([]byte(s), true); err != nil {
			return nil, err
		}
		return map[string]any{"url": map[string]any{"bytes": []byte(s)}}, nil

	case movetypes.IDTypeName:
		if _, ok := value.(*movetypes.StructValue); ok {
			break
		}
		addr, err := toAddress(value)
		if err != nil {
			return nil, err
		}
		return map[string]any{"bytes": [32]byte(addr)}, nil

	case movetypes.UIDTypeName:
		if _, ok := value.(*movetypes.StructValue); ok {
			break
		}
		addr, err := toAddress(value)
		if err != nil {
			return nil, err
		}
		return map[string]any{"id": map[string]any{"bytes": [32]byte(addr)}}, nil

	case movetypes.OptionTypeName:
		if value == nil {
			return map[string]any{"vec": []any{}}, nil
		}
		if sv, ok := value.(*movetypes.StructValue); ok && sv.FullTypeName() == r.name {
			break
		}
		elem, err := r.optionElem().ToFields(value)
		if err != nil {
			return nil, err
		}
		return map[string]any{"vec": []any{elem}}, nil
	}

	sv, ok := value.(*movetypes.StructValue)
	if !ok {
		return nil, fmt.Errorf("expected %s instance, got %T", r.name, value)
	}
	if sv.FullTypeName() != r.name {
		return nil, &TypeMismatchError{Struct: r.desc.Name, Got: sv.FullTypeName()}
	}
	fieldTypes, err := r.structFields()
	if err != nil {
		return nil, err
	}

	raw := make(map[string]any, sv.Len())
	for i, fieldType := range fieldTypes {
		field, fieldValue := sv.FieldAt(i)
		encoded, err := fieldType.ToFields(fieldValue)
		if err != nil {
			return nil, &MalformedFieldError{Struct: r.desc.Name, Field: field.Name, Err: err}
		}
		raw[field.Name] = encoded
	}
	return raw, nil
}
