// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import (
	"fmt"
	"reflect"
	"sync"
)

// Type is a composable BCS codec.
//
// Parse reads one value from the decoder and returns it in its raw form:
//   - bool, uint8, uint16, uint32, uint64 for the fixed size integers
//   - *uint256.Int for u128 and u256
//   - [32]byte for addresses, []byte for fixed byte arrays and vector<u8>
//   - []any for other vectors, map[string]any for structs and enums
//
// Serialize accepts the raw form and a few convenient Go equivalents
// (any integer kind, decimal strings, typed slices, hex addresses).
type Type interface {
	Name() string
	Parse(d Decoder) (any, error)
	Serialize(e Encoder, v any) error
}

// ParseBytes decodes data with t and fails if any bytes are left over.
func ParseBytes(t Type, data []byte) (any, error) {
	d := NewBufferDecoder(data)
	v, err := t.Parse(d)
	if err != nil {
		return nil, err
	}
	if d.GetLength() != 0 {
		return nil, fmt.Errorf("%w: %d bytes left after %s", ErrTrailingBytes, d.GetLength(), t.Name())
	}
	return v, nil
}

// SerializeToBytes encodes v with t into a new buffer.
func SerializeToBytes(t Type, v any) ([]byte, error) {
	e := NewBufferEncoder(make([]byte, 0, 64))
	if err := t.Serialize(e, v); err != nil {
		return nil, err
	}
	return e.GetBuffer(), nil
}

type primitiveType struct {
	name      string
	parse     func(d Decoder) (any, error)
	serialize func(e Encoder, v any) error
}

func (t *primitiveType) Name() string                     { return t.name }
func (t *primitiveType) Parse(d Decoder) (any, error)     { return t.parse(d) }
func (t *primitiveType) Serialize(e Encoder, v any) error { return t.serialize(e, v) }

var (
	boolType = &primitiveType{
		name:  "bool",
		parse: func(d Decoder) (any, error) { return d.DecodeBool() },
		serialize: func(e Encoder, v any) error {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("%w: bool expects bool, got %T", ErrInvalidValue, v)
			}
			e.EncodeBool(b)
			return nil
		},
	}
	u8Type = &primitiveType{
		name:  "u8",
		parse: func(d Decoder) (any, error) { return d.DecodeUint8() },
		serialize: func(e Encoder, v any) error {
			n, err := ToUint64(v, 8)
			if err != nil {
				return err
			}
			e.EncodeUint8(uint8(n))
			return nil
		},
	}
	u16Type = &primitiveType{
		name:  "u16",
		parse: func(d Decoder) (any, error) { return d.DecodeUint16() },
		serialize: func(e Encoder, v any) error {
			n, err := ToUint64(v, 16)
			if err != nil {
				return err
			}
			e.EncodeUint16(uint16(n))
			return nil
		},
	}
	u32Type = &primitiveType{
		name:  "u32",
		parse: func(d Decoder) (any, error) { return d.DecodeUint32() },
		serialize: func(e Encoder, v any) error {
			n, err := ToUint64(v, 32)
			if err != nil {
				return err
			}
			e.EncodeUint32(uint32(n))
			return nil
		},
	}
	u64Type = &primitiveType{
		name:  "u64",
		parse: func(d Decoder) (any, error) { return d.DecodeUint64() },
		serialize: func(e Encoder, v any) error {
			n, err := ToUint64(v, 64)
			if err != nil {
				return err
			}
			e.EncodeUint64(n)
			return nil
		},
	}
	u128Type = &primitiveType{
		name:  "u128",
		parse: func(d Decoder) (any, error) { return d.DecodeUint128() },
		serialize: func(e Encoder, v any) error {
			n, err := ToUint256(v, 128)
			if err != nil {
				return err
			}
			return e.EncodeUint128(n)
		},
	}
	u256Type = &primitiveType{
		name:  "u256",
		parse: func(d Decoder) (any, error) { return d.DecodeUint256() },
		serialize: func(e Encoder, v any) error {
			n, err := ToUint256(v, 256)
			if err != nil {
				return err
			}
			e.EncodeUint256(n)
			return nil
		},
	}
	addressType = &primitiveType{
		name: "address",
		parse: func(d Decoder) (any, error) {
			var addr [32]byte
			if _, err := d.DecodeBytes(addr[:]); err != nil {
				return nil, err
			}
			return addr, nil
		},
		serialize: func(e Encoder, v any) error {
			addr, err := ToAddressBytes(v)
			if err != nil {
				return err
			}
			e.EncodeBytes(addr[:])
			return nil
		},
	}
	stringType = &primitiveType{
		name: "string",
		parse: func(d Decoder) (any, error) {
			n, err := d.DecodeLength()
			if err != nil {
				return nil, err
			}
			buf, err := d.DecodeBytesBuf(n)
			if err != nil {
				return nil, err
			}
			return string(buf), nil
		},
		serialize: func(e Encoder, v any) error {
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("%w: string expects string, got %T", ErrInvalidValue, v)
			}
			e.EncodeUleb128(uint64(len(s)))
			e.EncodeBytes([]byte(s))
			return nil
		},
	}
)

func Bool() Type    { return boolType }
func U8() Type      { return u8Type }
func U16() Type     { return u16Type }
func U32() Type     { return u32Type }
func U64() Type     { return u64Type }
func U128() Type    { return u128Type }
func U256() Type    { return u256Type }
func Address() Type { return addressType }

// String is a uleb128 length prefixed UTF-8 string, used for identifiers.
func String() Type { return stringType }

type fixedBytesType struct {
	size int
}

// FixedBytes is a byte array of a static size without length prefix.
func FixedBytes(size int) Type {
	return &fixedBytesType{size: size}
}

func (t *fixedBytesType) Name() string {
	return fmt.Sprintf("bytes[%d]", t.size)
}

func (t *fixedBytesType) Parse(d Decoder) (any, error) {
	return d.DecodeBytes(make([]byte, t.size))
}

func (t *fixedBytesType) Serialize(e Encoder, v any) error {
	buf, ok := v.([]byte)
	if !ok {
		return fmt.Errorf("%w: %s expects []byte, got %T", ErrInvalidValue, t.Name(), v)
	}
	if len(buf) != t.size {
		return fmt.Errorf("%w: %s got %d bytes", ErrInvalidValue, t.Name(), len(buf))
	}
	e.EncodeBytes(buf)
	return nil
}

type vectorType struct {
	elem Type
}

// Vector is a uleb128 length prefixed sequence of elem.
// A vector of u8 parses into []byte.
func Vector(elem Type) Type {
	return &vectorType{elem: elem}
}

func (t *vectorType) Name() string {
	return "vector<" + t.elem.Name() + ">"
}

func (t *vectorType) Parse(d Decoder) (any, error) {
	n, err := d.DecodeLength()
	if err != nil {
		return nil, err
	}
	if t.elem == u8Type {
		buf, err := d.DecodeBytesBuf(n)
		if err != nil {
			return nil, err
		}
		items := make([]byte, n)
		copy(items, buf)
		return items, nil
	}
	items := make([]any, n)
	for i := 0; i < n; i++ {
		item, err := t.elem.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", t.Name(), i, err)
		}
		items[i] = item
	}
	return items, nil
}

func (t *vectorType) Serialize(e Encoder, v any) error {
	switch items := v.(type) {
	case []byte:
		if t.elem == u8Type {
			e.EncodeUleb128(uint64(len(items)))
			e.EncodeBytes(items)
			return nil
		}
	case []any:
		e.EncodeUleb128(uint64(len(items)))
		for i, item := range items {
			if err := t.elem.Serialize(e, item); err != nil {
				return fmt.Errorf("%s[%d]: %w", t.Name(), i, err)
			}
		}
		return nil
	case nil:
		e.EncodeUleb128(0)
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("%w: %s expects a slice, got %T", ErrInvalidValue, t.Name(), v)
	}
	e.EncodeUleb128(uint64(rv.Len()))
	for i := 0; i < rv.Len(); i++ {
		if err := t.elem.Serialize(e, rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("%s[%d]: %w", t.Name(), i, err)
		}
	}
	return nil
}

// Field is a named struct member.
type Field struct {
	Name string
	Type Type
}

type structType struct {
	name   string
	fields []Field
}

// Struct encodes its fields in declaration order without any framing.
func Struct(name string, fields ...Field) Type {
	return &structType{name: name, fields: fields}
}

func (t *structType) Name() string {
	return t.name
}

func (t *structType) Parse(d Decoder) (any, error) {
	values := make(map[string]any, len(t.fields))
	for _, field := range t.fields {
		value, err := field.Type.Parse(d)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.name, field.Name, err)
		}
		values[field.Name] = value
	}
	return values, nil
}

func (t *structType) Serialize(e Encoder, v any) error {
	values, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s expects map[string]any, got %T", ErrInvalidValue, t.name, v)
	}
	for _, field := range t.fields {
		value, ok := values[field.Name]
		if !ok {
			return fmt.Errorf("%w: %s.%s", ErrMissingField, t.name, field.Name)
		}
		if err := field.Type.Serialize(e, value); err != nil {
			return fmt.Errorf("%s.%s: %w", t.name, field.Name, err)
		}
	}
	return nil
}

// Variant is a named enum case, a nil Type marks a unit variant.
type Variant struct {
	Name string
	Type Type
}

type enumType struct {
	name     string
	variants []Variant
}

// Enum is prefixed with the uleb128 variant index.
// Values are single entry maps from the variant name to its payload.
func Enum(name string, variants ...Variant) Type {
	return &enumType{name: name, variants: variants}
}

func (t *enumType) Name() string {
	return t.name
}

func (t *enumType) Parse(d Decoder) (any, error) {
	idx, err := d.DecodeUleb128()
	if err != nil {
		return nil, err
	}
	if idx >= uint64(len(t.variants)) {
		return nil, fmt.Errorf("%w: %s index %d", ErrInvalidEnumVariant, t.name, idx)
	}
	variant := t.variants[idx]
	if variant.Type == nil {
		return map[string]any{variant.Name: nil}, nil
	}
	value, err := variant.Type.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s::%s: %w", t.name, variant.Name, err)
	}
	return map[string]any{variant.Name: value}, nil
}

func (t *enumType) Serialize(e Encoder, v any) error {
	values, ok := v.(map[string]any)
	if !ok || len(values) != 1 {
		return fmt.Errorf("%w: %s expects a single entry map, got %T", ErrInvalidEnumVariant, t.name, v)
	}
	for idx, variant := range t.variants {
		value, ok := values[variant.Name]
		if !ok {
			continue
		}
		e.EncodeUleb128(uint64(idx))
		if variant.Type == nil {
			return nil
		}
		if err := variant.Type.Serialize(e, value); err != nil {
			return fmt.Errorf("%s::%s: %w", t.name, variant.Name, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %s has no matching variant", ErrInvalidEnumVariant, t.name)
}

type lazyType struct {
	name    string
	once    sync.Once
	resolve func() Type
	typ     Type
}

// Lazy defers building the wrapped codec until it is first used.
// Recursive schemas reference themselves through it.
func Lazy(name string, resolve func() Type) Type {
	return &lazyType{name: name, resolve: resolve}
}

func (t *lazyType) get() Type {
	t.once.Do(func() {
		t.typ = t.resolve()
	})
	return t.typ
}

func (t *lazyType) Name() string {
	return t.name
}

func (t *lazyType) Parse(d Decoder) (any, error) {
	return t.get().Parse(d)
}

func (t *lazyType) Serialize(e Encoder, v any) error {
	return t.get().Serialize(e, v)
}
