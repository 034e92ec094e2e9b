// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"context"
	"fmt"
	"reflect"

	"github.com/WayneAl/sui-client-gen/movetypes"
)

// moveTypeArgs is implemented by typed structs embedding movetypes.TypeInfo.
type moveTypeArgs interface {
	MoveTypeArgs() []string
}

// StructType binds a move struct descriptor to the go struct T holding its
// decoded fields. T maps move fields with `move:"name"` tags, generic
// structs embed movetypes.TypeInfo.
//
// All decoders take the type argument bindings last. For generic structs the
// bindings can be omitted where the input carries its own type name.
type StructType[T any] struct {
	desc  *movetypes.StructDescriptor
	codec *Codec
}

// NewStructType creates a typed binding using the global codec.
func NewStructType[T any](desc *movetypes.StructDescriptor) StructType[T] {
	return StructType[T]{desc: desc}
}

// WithCodec returns a copy of the binding using codec.
func (s StructType[T]) WithCodec(codec *Codec) StructType[T] {
	s.codec = codec
	return s
}

func (s StructType[T]) Codec() *Codec {
	if s.codec != nil {
		return s.codec
	}
	return GetGlobalCodec()
}

func (s StructType[T]) Descriptor() *movetypes.StructDescriptor {
	return s.desc
}

// TypeName returns the struct name without type arguments.
func (s StructType[T]) TypeName() string {
	return s.desc.TypeName
}

// Is reports whether typ names this struct.
func (s StructType[T]) Is(typ string) bool {
	return s.desc.Matches(typ)
}

// Reified binds the type parameters.
func (s StructType[T]) Reified(typeArgs ...TypeArgument) (*Reified, error) {
	return s.Codec().StructOf(s.desc, typeArgs...)
}

// reifiedFor binds typeArgs, or derives the binding from typ if none are given.
func (s StructType[T]) reifiedFor(typ string, typeArgs []TypeArgument) (*Reified, error) {
	if len(typeArgs) > 0 || !s.desc.IsGeneric() || typ == "" {
		return s.Reified(typeArgs...)
	}
	if !s.desc.Matches(typ) {
		return nil, &TypeMismatchError{Struct: s.desc.Name, Got: typ}
	}
	return s.Codec().Reify(typ)
}

func (s StructType[T]) FromBcs(data []byte, typeArgs ...TypeArgument) (*T, error) {
	r, err := s.Reified(typeArgs...)
	if err != nil {
		return nil, err
	}
	sv, err := r.FromBcs(data)
	if err != nil {
		return nil, err
	}
	return s.FromValue(sv)
}

func (s StructType[T]) FromFields(fields map[string]any, typeArgs ...TypeArgument) (*T, error) {
	r, err := s.Reified(typeArgs...)
	if err != nil {
		return nil, err
	}
	sv, err := r.FromFields(fields)
	if err != nil {
		return nil, err
	}
	return s.FromValue(sv)
}

func (s StructType[T]) FromFieldsWithTypes(item FieldsWithTypes, typeArgs ...TypeArgument) (*T, error) {
	r, err := s.reifiedFor(item.Type, typeArgs)
	if err != nil {
		return nil, err
	}
	sv, err := r.FromFieldsWithTypes(item)
	if err != nil {
		return nil, err
	}
	return s.FromValue(sv)
}

func (s StructType[T]) FromJSONField(fields map[string]any, typeArgs ...TypeArgument) (*T, error) {
	r, err := s.Reified(typeArgs...)
	if err != nil {
		return nil, err
	}
	sv, err := r.FromJSONField(fields)
	if err != nil {
		return nil, err
	}
	return s.FromValue(sv)
}

func (s StructType[T]) FromJSON(obj map[string]any, typeArgs ...TypeArgument) (*T, error) {
	typ := ""
	if len(typeArgs) == 0 && s.desc.IsGeneric() {
		typeName, _ := obj["$typeName"].(string)
		if movetypes.CompressType(typeName) != s.desc.TypeName {
			return nil, &TypeMismatchError{Struct: s.desc.Name, Got: typeName, JSON: true}
		}
		args, err := jsonTypeArgs(obj, s.desc.NumTypeParams())
		if err != nil {
			return nil, err
		}
		typ = movetypes.ComposeType(s.desc.TypeName, args...)
	}

	r, err := s.reifiedFor(typ, typeArgs)
	if err != nil {
		return nil, err
	}
	sv, err := r.FromJSON(obj)
	if err != nil {
		return nil, err
	}
	return s.FromValue(sv)
}

// Fetch reads and decodes the object with the given id. Without type
// argument bindings the object's own type arguments are used.
func (s StructType[T]) Fetch(ctx context.Context, client ObjectGetter, id string, typeArgs ...TypeArgument) (*T, error) {
	var sv *movetypes.StructValue
	var err error
	if len(typeArgs) == 0 && s.desc.IsGeneric() {
		sv, err = s.Codec().fetchStruct(ctx, client, id, s.desc)
	} else {
		var r *Reified
		r, err = s.Reified(typeArgs...)
		if err == nil {
			sv, err = r.Fetch(ctx, client, id)
		}
	}
	if err != nil {
		return nil, err
	}
	return s.FromValue(sv)
}

// FromValue maps a struct instance onto T.
func (s StructType[T]) FromValue(sv *movetypes.StructValue) (*T, error) {
	if sv.TypeName() != s.desc.TypeName {
		return nil, &TypeMismatchError{Struct: s.desc.Name, Got: sv.FullTypeName()}
	}
	out := new(T)
	if err := s.Codec().mapper.AssignStruct(reflect.ValueOf(out).Elem(), sv); err != nil {
		return nil, err
	}
	return out, nil
}

// ToValue converts v into a struct instance. Without type argument bindings
// the names recorded in the embedded movetypes.TypeInfo are used.
func (s StructType[T]) ToValue(v *T, typeArgs ...TypeArgument) (*movetypes.StructValue, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot convert nil %s", s.desc.Name)
	}

	var tags []movetypes.TypeTag
	if len(typeArgs) > 0 {
		tags = make([]movetypes.TypeTag, len(typeArgs))
		for i, arg := range typeArgs {
			tags[i] = arg.TypeTag()
		}
	} else if withArgs, ok := any(v).(moveTypeArgs); ok {
		names := withArgs.MoveTypeArgs()
		tags = make([]movetypes.TypeTag, len(names))
		for i, name := range names {
			tag, err := movetypes.ParseTypeTag(name)
			if err != nil {
				return nil, err
			}
			tags[i] = tag
		}
	}

	return s.Codec().mapper.ExtractStruct(s.desc, tags, reflect.ValueOf(v).Elem())
}

func (s StructType[T]) ToBcs(v *T, typeArgs ...TypeArgument) ([]byte, error) {
	sv, err := s.ToValue(v, typeArgs...)
	if err != nil {
		return nil, err
	}
	return s.Codec().ToBcs(sv)
}

func (s StructType[T]) ToJSONField(v *T, typeArgs ...TypeArgument) (map[string]any, error) {
	sv, err := s.ToValue(v, typeArgs...)
	if err != nil {
		return nil, err
	}
	return ToJSONField(sv), nil
}

func (s StructType[T]) ToJSON(v *T, typeArgs ...TypeArgument) (map[string]any, error) {
	sv, err := s.ToValue(v, typeArgs...)
	if err != nil {
		return nil, err
	}
	return ToJSON(sv), nil
}
