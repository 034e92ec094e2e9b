// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"fmt"

	"github.com/holiman/uint256"
)

// StructValue is an immutable instance of a move struct.
//
// Field values use the following go representations:
//   - bool, uint8, uint16, uint32, uint64 for the matching move types
//   - *uint256.Int for u128 and u256
//   - Address for address, object::ID and object::UID
//   - string for string::String, ascii::String and url::Url
//   - nil or the inner value for option::Option
//   - []byte for vector<u8>, []any for other vectors
//   - *StructValue for any other struct
type StructValue struct {
	desc     *StructDescriptor
	typeArgs []TypeTag
	values   []any
}

// NewStructValue creates an instance from values keyed by wire field name.
// Every declared field must be present, extra keys are rejected.
func NewStructValue(desc *StructDescriptor, typeArgs []TypeTag, fields map[string]any) (*StructValue, error) {
	values := make([]any, len(desc.Fields))
	for i, field := range desc.Fields {
		value, ok := fields[field.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingField, desc.TypeName, field.Name)
		}
		values[i] = value
	}
	if len(fields) > len(desc.Fields) {
		for name := range fields {
			if _, ok := desc.FieldIndex(name); !ok {
				return nil, fmt.Errorf("%s has no field %q", desc.TypeName, name)
			}
		}
	}
	return NewStructValueOrdered(desc, typeArgs, values)
}

// NewStructValueOrdered creates an instance from values in field declaration order.
func NewStructValueOrdered(desc *StructDescriptor, typeArgs []TypeTag, values []any) (*StructValue, error) {
	if len(typeArgs) != desc.NumTypeParams() {
		return nil, fmt.Errorf("%w: %s expects %d type arguments, got %d", ErrTypeArgCount, desc.TypeName, desc.NumTypeParams(), len(typeArgs))
	}
	if len(values) != len(desc.Fields) {
		return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrMissingField, desc.TypeName, len(desc.Fields), len(values))
	}
	for i := range typeArgs {
		if typeArgs[i].HasParams() {
			return nil, fmt.Errorf("%s: type argument %d is not concrete: %s", desc.TypeName, i, typeArgs[i].String())
		}
	}
	return &StructValue{
		desc:     desc,
		typeArgs: append([]TypeTag(nil), typeArgs...),
		values:   cloneValues(values),
	}, nil
}

func cloneValues(values []any) []any {
	if values == nil {
		return nil
	}
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = cloneValue(value)
	}
	return out
}

// cloneValue copies the mutable field representations. Struct instances
// are immutable and shared.
func cloneValue(value any) any {
	switch v := value.(type) {
	case []byte:
		if v == nil {
			return v
		}
		return append([]byte{}, v...)
	case []any:
		return cloneValues(v)
	case *uint256.Int:
		if v == nil {
			return v
		}
		return new(uint256.Int).Set(v)
	}
	return value
}

func (v *StructValue) Descriptor() *StructDescriptor {
	return v.desc
}

// TypeName returns the struct name without type arguments.
func (v *StructValue) TypeName() string {
	return v.desc.TypeName
}

// TypeArgs returns the canonical names of the type arguments.
func (v *StructValue) TypeArgs() []string {
	names := make([]string, len(v.typeArgs))
	for i := range v.typeArgs {
		names[i] = v.typeArgs[i].String()
	}
	return names
}

// TypeArgTags returns a copy of the type argument tags.
func (v *StructValue) TypeArgTags() []TypeTag {
	return append([]TypeTag(nil), v.typeArgs...)
}

// FullTypeName returns the struct name composed with its type arguments.
func (v *StructValue) FullTypeName() string {
	return v.desc.FullTypeName(v.TypeArgs()...)
}

func (v *StructValue) StructTag() StructTag {
	return v.desc.StructTag(v.TypeArgTags())
}

// Len returns the number of fields.
func (v *StructValue) Len() int {
	return len(v.values)
}

// FieldAt returns the descriptor and value of the i-th field.
// Slices and big integers are returned as copies.
func (v *StructValue) FieldAt(i int) (FieldDescriptor, any) {
	return v.desc.Fields[i], cloneValue(v.values[i])
}

// FieldType returns the concrete type of the i-th field.
func (v *StructValue) FieldType(i int) TypeTag {
	return v.desc.Fields[i].Type.Substitute(v.typeArgs)
}

// Field returns the value of the field with the given wire name.
func (v *StructValue) Field(name string) (any, bool) {
	idx, ok := v.desc.FieldIndex(name)
	if !ok {
		return nil, false
	}
	return cloneValue(v.values[idx]), true
}

// Fields returns the field values keyed by wire name.
func (v *StructValue) Fields() map[string]any {
	fields := make(map[string]any, len(v.values))
	for i, field := range v.desc.Fields {
		fields[field.Name] = cloneValue(v.values[i])
	}
	return fields
}

func (v *StructValue) String() string {
	return fmt.Sprintf("%s%v", v.FullTypeName(), v.Fields())
}
