// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"
	"strconv"

	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// ToJSONField projects a struct instance into a JSON friendly map.
//
// Keys are the camelCase field names. Integers of 64 bits and wider become
// decimal strings, addresses and ids become full 0x hex strings, vector<u8>
// becomes an array of numbers, options become null or their inner value.
func ToJSONField(v *movetypes.StructValue) map[string]any {
	out := make(map[string]any, v.Len())
	for i := 0; i < v.Len(); i++ {
		field, value := v.FieldAt(i)
		out[field.JSONName] = FieldToJSON(v.FieldType(i), value)
	}
	return out
}

// ToJSON is ToJSONField plus the $typeName tag and, for generic structs,
// $typeArg (one type parameter) or $typeArgs (several).
func ToJSON(v *movetypes.StructValue) map[string]any {
	out := ToJSONField(v)
	out["$typeName"] = v.TypeName()

	typeArgs := v.TypeArgs()
	switch len(typeArgs) {
	case 0:
	case 1:
		out["$typeArg"] = typeArgs[0]
	default:
		out["$typeArgs"] = typeArgs
	}
	return out
}

// FieldToJSON projects a single field value of the given concrete type.
func FieldToJSON(tag movetypes.TypeTag, value any) any {
	switch tag.Kind {
	case movetypes.U64Kind:
		if n, ok := value.(uint64); ok {
			return strconv.FormatUint(n, 10)
		}
	case movetypes.U128Kind, movetypes.U256Kind:
		if n, ok := value.(*uint256.Int); ok && n != nil {
			return n.Dec()
		}
	case movetypes.AddressKind:
		if addr, ok := value.(movetypes.Address); ok {
			return addr.String()
		}
	case movetypes.VectorKind:
		return vectorToJSON(*tag.Elem, value)
	case movetypes.StructKind:
		return structFieldToJSON(tag, value)
	}
	return value
}

func vectorToJSON(elem movetypes.TypeTag, value any) any {
	switch v := value.(type) {
	case []byte:
		out := make([]any, len(v))
		for i, b := range v {
			out[i] = b
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = FieldToJSON(elem, item)
		}
		return out
	case nil:
		return []any{}
	}
	return value
}

func structFieldToJSON(tag movetypes.TypeTag, value any) any {
	switch tag.Struct.TypeName() {
	case movetypes.IDTypeName, movetypes.UIDTypeName:
		if addr, ok := value.(movetypes.Address); ok {
			return addr.String()
		}
	case movetypes.OptionTypeName:
		if value == nil {
			return nil
		}
		return FieldToJSON(tag.Struct.TypeArgs[0], value)
	}
	if sv, ok := value.(*movetypes.StructValue); ok {
		return ToJSONField(sv)
	}
	return value
}

// FromJSONField decodes a struct instance from its JSON field projection.
// Keys that are not fields of the struct are ignored.
func (r *Reified) FromJSONField(fields map[string]any) (*movetypes.StructValue, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}
	fieldTypes, err := r.structFields()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(r.desc.Fields))
	for i, field := range r.desc.Fields {
		raw, ok := fields[field.JSONName]
		if !ok {
			return nil, malformed(r.desc.Name, field.JSONName, "missing field")
		}
		r.codec.trace("decode json field", zap.String("struct", r.name), zap.String("field", field.JSONName))

		value, err := fieldTypes[i].DecodeFromJSONField(raw)
		if err != nil {
			return nil, &MalformedFieldError{Struct: r.desc.Name, Field: field.JSONName, Err: err}
		}
		values[i] = value
	}

	return movetypes.NewStructValueOrdered(r.desc, r.typeArgTags(), values)
}

// DecodeFromJSONField converts a JSON field value into its field representation.
func (r *Reified) DecodeFromJSONField(raw any) (any, error) {
	switch r.tag.Kind {
	case movetypes.VectorKind:
		return r.decodeVector(raw, (*Reified).DecodeFromJSONField)
	case movetypes.StructKind:
		return r.decodeStructFromJSONField(raw)
	}
	return r.decodePrimitive(raw)
}

func (r *Reified) decodeStructFromJSONField(raw any) (any, error) {
	switch r.desc.TypeName {
	case movetypes.StringTypeName, movetypes.ASCIIStringTypeName, movetypes.URLTypeName:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return s, nil
	case movetypes.IDTypeName, movetypes.UIDTypeName:
		return toAddress(raw)
	case movetypes.OptionTypeName:
		if raw == nil {
			return nil, nil
		}
		return r.optionElem().DecodeFromJSONField(raw)
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected %s object, got %T", r.name, raw)
	}
	return r.FromJSONField(fields)
}

// FromJSON decodes a struct instance from its tagged JSON projection.
//
// Returns:
//   - *movetypes.StructValue: The decoded instance
//   - error: A *TypeMismatchError reading "not a <Struct> json object" if $typeName
//     is missing or names another struct, a *TypeArgMismatchError if the type
//     argument tags differ from the bindings, or a *MalformedFieldError
func (r *Reified) FromJSON(obj map[string]any) (*movetypes.StructValue, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}

	typeName, _ := obj["$typeName"].(string)
	if typeName == "" || movetypes.CompressType(typeName) != r.desc.TypeName {
		return nil, &TypeMismatchError{Struct: r.desc.Name, Got: typeName, JSON: true}
	}

	if r.desc.IsGeneric() {
		got, err := jsonTypeArgs(obj, r.desc.NumTypeParams())
		if err != nil {
			return nil, err
		}
		if err := r.assertTypeArgsMatch(got); err != nil {
			return nil, err
		}
	}

	return r.FromJSONField(obj)
}

func jsonTypeArgs(obj map[string]any, count int) ([]string, error) {
	if count == 1 {
		if arg, ok := obj["$typeArg"].(string); ok {
			return []string{arg}, nil
		}
	}

	switch args := obj["$typeArgs"].(type) {
	case []string:
		return args, nil
	case []any:
		names := make([]string, len(args))
		for i, arg := range args {
			name, ok := arg.(string)
			if !ok {
				return nil, fmt.Errorf("%w: $typeArgs[%d] is %T", ErrTypeArgMismatch, i, arg)
			}
			names[i] = name
		}
		return names, nil
	case nil:
		return nil, fmt.Errorf("%w: missing type argument tags", ErrTypeArgMismatch)
	}
	return nil, fmt.Errorf("%w: malformed $typeArgs", ErrTypeArgMismatch)
}
