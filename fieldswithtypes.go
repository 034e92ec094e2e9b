// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"

	"github.com/WayneAl/sui-client-gen/movetypes"
	"go.uber.org/zap"
)

// FieldsWithTypes is the {type, fields} shape the Sui JSON-RPC API uses for
// move objects and nested structs.
type FieldsWithTypes struct {
	Type   string         `json:"type"`
	Fields map[string]any `json:"fields"`
}

// FromFieldsWithTypes decodes a struct instance from a typed field map.
//
// The item type must denote this struct and, for generic structs, its type
// arguments must equal the bound ones after canonicalisation.
//
// Returns:
//   - *movetypes.StructValue: The decoded instance
//   - error: A *TypeMismatchError, a *TypeArgMismatchError or a *MalformedFieldError
func (r *Reified) FromFieldsWithTypes(item FieldsWithTypes) (*movetypes.StructValue, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}
	if !r.desc.Matches(item.Type) {
		return nil, &TypeMismatchError{Struct: r.desc.Name, Got: item.Type}
	}
	if r.desc.IsGeneric() {
		_, args, err := movetypes.SplitTypeName(item.Type)
		if err != nil {
			return nil, err
		}
		if err := r.assertTypeArgsMatch(args); err != nil {
			return nil, err
		}
	}

	fieldTypes, err := r.structFields()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(r.desc.Fields))
	for i, field := range r.desc.Fields {
		raw, ok := item.Fields[field.Name]
		if !ok {
			return nil, malformed(r.desc.Name, field.Name, "missing field")
		}
		r.codec.trace("decode typed field", zap.String("struct", r.name), zap.String("field", field.Name), zap.String("type", fieldTypes[i].name))

		value, err := fieldTypes[i].DecodeFromFieldsWithTypes(raw)
		if err != nil {
			return nil, &MalformedFieldError{Struct: r.desc.Name, Field: field.Name, Err: err}
		}
		values[i] = value
	}

	return movetypes.NewStructValueOrdered(r.desc, r.typeArgTags(), values)
}

// assertTypeArgsMatch compares type argument names with the bound ones.
func (r *Reified) assertTypeArgsMatch(got []string) error {
	expected := r.TypeArgNames()
	mismatch := len(got) != len(expected)
	for i := 0; !mismatch && i < len(got); i++ {
		if movetypes.CompressType(got[i]) != expected[i] {
			mismatch = true
		}
	}
	if mismatch {
		return &TypeArgMismatchError{
			TypeName: r.desc.TypeName,
			Expected: expected,
			Got:      got,
		}
	}
	return nil
}

// DecodeFromFieldsWithTypes converts a field value of a typed field map into
// its field representation.
func (r *Reified) DecodeFromFieldsWithTypes(item any) (any, error) {
	switch r.tag.Kind {
	case movetypes.VectorKind:
		return r.decodeVector(item, (*Reified).DecodeFromFieldsWithTypes)
	case movetypes.StructKind:
		return r.decodeStructFromFieldsWithTypes(item)
	}
	return r.decodePrimitive(item)
}

func (r *Reified) decodeStructFromFieldsWithTypes(item any) (any, error) {
	switch r.desc.TypeName {
	case movetypes.StringTypeName, movetypes.ASCIIStringTypeName, movetypes.URLTypeName:
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", item)
		}
		return s, nil

	case movetypes.IDTypeName:
		return toAddress(item)

	case movetypes.UIDTypeName:
		if fields, ok := item.(map[string]any); ok {
			return toAddress(fields["id"])
		}
		return toAddress(item)

	case movetypes.OptionTypeName:
		if item == nil {
			return nil, nil
		}
		return r.optionElem().DecodeFromFieldsWithTypes(item)

	case movetypes.BalanceTypeName:
		// the RPC flattens balances into their value
		if _, ok := item.(map[string]any); !ok {
			value, err := (&Reified{tag: movetypes.PrimitiveTag(movetypes.U64Kind), name: "u64"}).decodePrimitive(item)
			if err != nil {
				return nil, err
			}
			return movetypes.NewStructValueOrdered(r.desc, r.typeArgTags(), []any{value})
		}
	}

	fields, ok := item.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected %s object, got %T", r.name, item)
	}
	typeName, _ := fields["type"].(string)
	nested, _ := fields["fields"].(map[string]any)
	if typeName == "" || nested == nil {
		return nil, fmt.Errorf("expected {type, fields} object for %s", r.name)
	}
	return r.FromFieldsWithTypes(FieldsWithTypes{Type: typeName, Fields: nested})
}
