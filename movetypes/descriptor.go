// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"fmt"
)

// TypeParam describes a generic slot of a struct.
// Phantom slots only appear in the type name, never in the field data.
type TypeParam struct {
	Name    string `yaml:"name" json:"name"`
	Phantom bool   `yaml:"phantom,omitempty" json:"phantom,omitempty"`
}

// FieldDef is the textual definition of a struct field.
type FieldDef struct {
	Name string `yaml:"name" json:"name"`
	Type string `yaml:"type" json:"type"`
}

// FieldDescriptor contains metadata about a single struct field.
type FieldDescriptor struct {
	Name     string  `json:"name"`     // wire name, snake_case as declared in move
	JSONName string  `json:"jsonName"` // camelCase name used by the JSON projection
	Type     TypeTag `json:"-"`        // field type, may reference the struct's type params
}

// StructDescriptor is the static metadata of a move struct: its canonical
// name, generic slots and the fields in declaration order.
type StructDescriptor struct {
	TypeName   string            `json:"typeName"` // canonical name without type arguments
	Address    Address           `json:"address"`
	Module     string            `json:"module"`
	Name       string            `json:"name"`
	TypeParams []TypeParam       `json:"typeParams,omitempty"`
	Fields     []FieldDescriptor `json:"fields"`

	fieldIndex map[string]int
	jsonIndex  map[string]int
}

// DefineStruct builds a descriptor from its textual definition.
//
// Parameters:
//   - typeName: The struct name without type arguments, e.g. "0x2::coin::Coin"
//   - typeParams: The generic slots in declaration order
//   - fields: The fields in declaration order, field types may use the type param names
//
// Returns:
//   - *StructDescriptor: The descriptor with canonical names and parsed field types
//   - error: An error if a name or type cannot be parsed, a field name repeats or
//     a field is declared directly as a phantom type parameter
func DefineStruct(typeName string, typeParams []TypeParam, fields []FieldDef) (*StructDescriptor, error) {
	nameTag, err := ParseTypeTag(typeName)
	if err != nil {
		return nil, err
	}
	if nameTag.Kind != StructKind || len(nameTag.Struct.TypeArgs) > 0 {
		return nil, fmt.Errorf("invalid struct name %q: expected address::module::Name", typeName)
	}

	desc := &StructDescriptor{
		TypeName:   nameTag.Struct.TypeName(),
		Address:    nameTag.Struct.Address,
		Module:     nameTag.Struct.Module,
		Name:       nameTag.Struct.Name,
		TypeParams: typeParams,
		Fields:     make([]FieldDescriptor, 0, len(fields)),
		fieldIndex: make(map[string]int, len(fields)),
		jsonIndex:  make(map[string]int, len(fields)),
	}

	paramNames := make([]string, len(typeParams))
	for i, param := range typeParams {
		if param.Name == "" {
			return nil, fmt.Errorf("%s: type param %d has no name", desc.TypeName, i)
		}
		paramNames[i] = param.Name
	}

	for _, field := range fields {
		if _, exists := desc.fieldIndex[field.Name]; exists {
			return nil, fmt.Errorf("%s: duplicate field %q", desc.TypeName, field.Name)
		}

		fieldType, err := ParseTypeTagWithParams(field.Type, paramNames)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", desc.TypeName, field.Name, err)
		}
		if fieldType.Kind == ParamKind && typeParams[fieldType.Param].Phantom {
			return nil, fmt.Errorf("%s.%s: phantom type param %s used as field type", desc.TypeName, field.Name, fieldType.ParamName)
		}

		fieldDesc := FieldDescriptor{
			Name:     field.Name,
			JSONName: SnakeToCamel(field.Name),
			Type:     fieldType,
		}
		desc.fieldIndex[fieldDesc.Name] = len(desc.Fields)
		desc.jsonIndex[fieldDesc.JSONName] = len(desc.Fields)
		desc.Fields = append(desc.Fields, fieldDesc)
	}

	return desc, nil
}

// MustDefineStruct is like DefineStruct but panics on invalid definitions.
// It is meant for package level descriptor variables.
func MustDefineStruct(typeName string, typeParams []TypeParam, fields []FieldDef) *StructDescriptor {
	desc, err := DefineStruct(typeName, typeParams, fields)
	if err != nil {
		panic(err)
	}
	return desc
}

func (d *StructDescriptor) NumTypeParams() int {
	return len(d.TypeParams)
}

func (d *StructDescriptor) IsGeneric() bool {
	return len(d.TypeParams) > 0
}

// Matches reports whether the type string denotes this struct.
func (d *StructDescriptor) Matches(typ string) bool {
	return IsStructType(typ, d.TypeName, d.IsGeneric())
}

// FieldIndex returns the position of the field with the given wire name.
func (d *StructDescriptor) FieldIndex(name string) (int, bool) {
	idx, ok := d.fieldIndex[name]
	return idx, ok
}

// JSONFieldIndex returns the position of the field with the given camelCase name.
func (d *StructDescriptor) JSONFieldIndex(name string) (int, bool) {
	idx, ok := d.jsonIndex[name]
	return idx, ok
}

// StructTag returns the tag of this struct instantiated with typeArgs.
func (d *StructDescriptor) StructTag(typeArgs []TypeTag) StructTag {
	return StructTag{
		Address:  d.Address,
		Module:   d.Module,
		Name:     d.Name,
		TypeArgs: typeArgs,
	}
}

// FullTypeName composes the struct name with the given type argument names.
func (d *StructDescriptor) FullTypeName(typeArgs ...string) string {
	return ComposeType(d.TypeName, typeArgs...)
}

func (d *StructDescriptor) String() string {
	if !d.IsGeneric() {
		return d.TypeName
	}
	names := make([]string, len(d.TypeParams))
	for i, param := range d.TypeParams {
		if param.Phantom {
			names[i] = "phantom " + param.Name
		} else {
			names[i] = param.Name
		}
	}
	return ComposeType(d.TypeName, names...)
}
