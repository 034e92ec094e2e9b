// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"

	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"go.uber.org/zap"
)

// FromBcs decodes a struct instance from its BCS bytes.
//
// The bytes are parsed with the struct schema into a raw field map which is
// then decoded with FromFields. Trailing bytes are rejected.
func (r *Reified) FromBcs(data []byte) (*movetypes.StructValue, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}
	raw, err := r.parseBcs(data)
	if err != nil {
		return nil, err
	}
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("failed to parse %s: unexpected %T", r.name, raw)
	}
	return r.FromFields(fields)
}

// DecodeBcs decodes a value of any reified type from its BCS bytes into its
// field representation. Framework structs like strings or options decode to
// their go shorthand, see movetypes.StructValue.
func (r *Reified) DecodeBcs(data []byte) (any, error) {
	raw, err := r.parseBcs(data)
	if err != nil {
		return nil, err
	}
	return r.DecodeFromFields(raw)
}

func (r *Reified) parseBcs(data []byte) (any, error) {
	schema, err := r.Bcs()
	if err != nil {
		return nil, err
	}
	raw, err := bcs.ParseBytes(schema, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.name, err)
	}
	return raw, nil
}

// FromFields decodes a struct instance from a raw field map as produced by the
// BCS parser: snake_case keys, nested structs as maps.
func (r *Reified) FromFields(fields map[string]any) (*movetypes.StructValue, error) {
	if err := r.requireStruct(); err != nil {
		return nil, err
	}
	fieldTypes, err := r.structFields()
	if err != nil {
		return nil, err
	}

	values := make([]any, len(r.desc.Fields))
	for i, field := range r.desc.Fields {
		raw, ok := fields[field.Name]
		if !ok {
			return nil, malformed(r.desc.Name, field.Name, "missing field")
		}
		r.codec.trace("decode field", zap.String("struct", r.name), zap.String("field", field.Name), zap.String("type", fieldTypes[i].name))

		value, err := fieldTypes[i].DecodeFromFields(raw)
		if err != nil {
			return nil, &MalformedFieldError{Struct: r.desc.Name, Field: field.Name, Err: err}
		}
		values[i] = value
	}

	return movetypes.NewStructValueOrdered(r.desc, r.typeArgTags(), values)
}

// DecodeFromFields converts a raw BCS field value into its field representation.
// Already decoded representations (strings, addresses, struct instances) are accepted as well.
func (r *Reified) DecodeFromFields(raw any) (any, error) {
	switch r.tag.Kind {
	case movetypes.VectorKind:
		return r.decodeVector(raw, (*Reified).DecodeFromFields)
	case movetypes.StructKind:
		return r.decodeStructFromFields(raw)
	}
	return r.decodePrimitive(raw)
}

func (r *Reified) decodeStructFromFields(raw any) (any, error) {
	if value, ok := raw.(*movetypes.StructValue); ok {
		if value.FullTypeName() != r.name {
			return nil, &TypeMismatchError{Struct: r.desc.Name, Got: value.FullTypeName()}
		}
		return value, nil
	}

	switch r.desc.TypeName {
	case movetypes.StringTypeName, movetypes.ASCIIStringTypeName:
		if s, ok := raw.(string); ok {
			return s, nil
		}
		bytesRaw, err := rawField(raw, "bytes")
		if err != nil {
			return nil, err
		}
		buf, err := toBytes(bytesRaw)
		if err != nil {
			return nil, err
		}
		return decodeUTF8(buf, r.desc.TypeName == movetypes.ASCIIStringTypeName)

	case movetypes.URLTypeName:
		if s, ok := raw.(string); ok {
			return s, nil
		}
		urlRaw, err := rawField(raw, "url")
		if err != nil {
			return nil, err
		}
		bytesRaw, err := rawField(urlRaw, "bytes")
		if err != nil {
			return nil, err
		}
		buf, err := toBytes(bytesRaw)
		if err != nil {
			return nil, err
		}
		return decodeUTF8(buf, true)

	case movetypes.IDTypeName:
		if fields, ok := raw.(map[string]any); ok {
			return toAddress(fields["bytes"])
		}
		return toAddress(raw)

	case movetypes.UIDTypeName:
		if fields, ok := raw.(map[string]any); ok {
			idRaw, err := rawField(fields, "id")
			if err != nil {
				return nil, err
			}
			if idFields, ok := idRaw.(map[string]any); ok {
				return toAddress(idFields["bytes"])
			}
			return toAddress(idRaw)
		}
		return toAddress(raw)

	case movetypes.OptionTypeName:
		if raw == nil {
			return nil, nil
		}
		vecRaw, err := rawField(raw, "vec")
		if err != nil {
			return nil, err
		}
		elem := r.optionElem()
		var items []any
		switch vec := vecRaw.(type) {
		case []byte:
			for _, b := range vec {
				items = append(items, b)
			}
		case []any:
			items = vec
		default:
			return nil, fmt.Errorf("expected option vec, got %T", vecRaw)
		}
		switch len(items) {
		case 0:
			return nil, nil
		case 1:
			return elem.DecodeFromFields(items[0])
		}
		return nil, fmt.Errorf("option holds %d elements", len(items))
	}

	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected %s fields, got %T", r.name, raw)
	}
	return r.FromFields(fields)
}
