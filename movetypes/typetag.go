// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"strings"
)

// TypeKind is the kind of a move type tag.
type TypeKind uint8

const (
	BoolKind TypeKind = iota
	U8Kind
	U16Kind
	U32Kind
	U64Kind
	U128Kind
	U256Kind
	AddressKind
	SignerKind
	VectorKind
	StructKind
	ParamKind
)

var primitiveKindNames = map[TypeKind]string{
	BoolKind:    "bool",
	U8Kind:      "u8",
	U16Kind:     "u16",
	U32Kind:     "u32",
	U64Kind:     "u64",
	U128Kind:    "u128",
	U256Kind:    "u256",
	AddressKind: "address",
	SignerKind:  "signer",
}

var primitiveKindsByName = func() map[string]TypeKind {
	kinds := make(map[string]TypeKind, len(primitiveKindNames))
	for kind, name := range primitiveKindNames {
		kinds[name] = kind
	}
	return kinds
}()

func (k TypeKind) String() string {
	switch k {
	case VectorKind:
		return "vector"
	case StructKind:
		return "struct"
	case ParamKind:
		return "param"
	}
	if name, ok := primitiveKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsPrimitive reports whether the kind is a scalar (integers, bool, address, signer).
func (k TypeKind) IsPrimitive() bool {
	return k <= SignerKind
}

// TypeTag is a parsed move type.
// Field types of generic structs may contain ParamKind tags that reference
// the declaring struct's type parameters by index.
type TypeTag struct {
	Kind      TypeKind
	Elem      *TypeTag   // element type for vectors
	Struct    *StructTag // struct type
	Param     int        // type parameter index for ParamKind
	ParamName string     // type parameter name for ParamKind
}

// StructTag identifies a struct type with its type arguments.
type StructTag struct {
	Address  Address
	Module   string
	Name     string
	TypeArgs []TypeTag
}

func PrimitiveTag(kind TypeKind) TypeTag {
	return TypeTag{Kind: kind}
}

func VectorTag(elem TypeTag) TypeTag {
	return TypeTag{Kind: VectorKind, Elem: &elem}
}

func StructTypeTag(tag StructTag) TypeTag {
	return TypeTag{Kind: StructKind, Struct: &tag}
}

func ParamTag(index int, name string) TypeTag {
	return TypeTag{Kind: ParamKind, Param: index, ParamName: name}
}

// TypeName returns the canonical struct name without type arguments.
func (s *StructTag) TypeName() string {
	return s.Address.ShortString() + "::" + s.Module + "::" + s.Name
}

// String returns the canonical full type name including type arguments.
func (s *StructTag) String() string {
	if len(s.TypeArgs) == 0 {
		return s.TypeName()
	}
	args := make([]string, len(s.TypeArgs))
	for i := range s.TypeArgs {
		args[i] = s.TypeArgs[i].String()
	}
	return ComposeType(s.TypeName(), args...)
}

// String returns the canonical form of the type tag: compressed addresses
// and type arguments separated by ", ".
func (t TypeTag) String() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t TypeTag) writeTo(sb *strings.Builder) {
	switch t.Kind {
	case VectorKind:
		sb.WriteString("vector<")
		t.Elem.writeTo(sb)
		sb.WriteString(">")
	case StructKind:
		sb.WriteString(t.Struct.TypeName())
		if len(t.Struct.TypeArgs) > 0 {
			sb.WriteString("<")
			for i := range t.Struct.TypeArgs {
				if i > 0 {
					sb.WriteString(", ")
				}
				t.Struct.TypeArgs[i].writeTo(sb)
			}
			sb.WriteString(">")
		}
	case ParamKind:
		sb.WriteString(t.ParamName)
	default:
		sb.WriteString(primitiveKindNames[t.Kind])
	}
}

// HasParams reports whether the tag references any type parameter.
func (t TypeTag) HasParams() bool {
	switch t.Kind {
	case ParamKind:
		return true
	case VectorKind:
		return t.Elem.HasParams()
	case StructKind:
		for i := range t.Struct.TypeArgs {
			if t.Struct.TypeArgs[i].HasParams() {
				return true
			}
		}
	}
	return false
}

// Substitute replaces every type parameter reference with the matching entry of args.
// Tags without parameters are returned unchanged.
func (t TypeTag) Substitute(args []TypeTag) TypeTag {
	switch t.Kind {
	case ParamKind:
		if t.Param < len(args) {
			return args[t.Param]
		}
		return t
	case VectorKind:
		if !t.Elem.HasParams() {
			return t
		}
		return VectorTag(t.Elem.Substitute(args))
	case StructKind:
		if !t.HasParams() {
			return t
		}
		sub := StructTag{
			Address:  t.Struct.Address,
			Module:   t.Struct.Module,
			Name:     t.Struct.Name,
			TypeArgs: make([]TypeTag, len(t.Struct.TypeArgs)),
		}
		for i := range t.Struct.TypeArgs {
			sub.TypeArgs[i] = t.Struct.TypeArgs[i].Substitute(args)
		}
		return StructTypeTag(sub)
	}
	return t
}

// Equal compares two tags structurally.
func (t TypeTag) Equal(o TypeTag) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case VectorKind:
		return t.Elem.Equal(*o.Elem)
	case StructKind:
		if t.Struct.Address != o.Struct.Address || t.Struct.Module != o.Struct.Module || t.Struct.Name != o.Struct.Name {
			return false
		}
		if len(t.Struct.TypeArgs) != len(o.Struct.TypeArgs) {
			return false
		}
		for i := range t.Struct.TypeArgs {
			if !t.Struct.TypeArgs[i].Equal(o.Struct.TypeArgs[i]) {
				return false
			}
		}
		return true
	case ParamKind:
		return t.Param == o.Param
	}
	return true
}
