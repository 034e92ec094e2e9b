// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package reflection maps decoded move values onto typed go structs and back.
//
// Go struct fields are bound to move fields by the `move:"field_name"` tag.
// Generic structs embed movetypes.TypeInfo to carry their type arguments.
package reflection

import (
	"fmt"
	"reflect"

	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/holiman/uint256"
)

var (
	structValueType = reflect.TypeOf((*movetypes.StructValue)(nil))
	uint256Type     = reflect.TypeOf((*uint256.Int)(nil))
	addressType     = reflect.TypeOf(movetypes.Address{})
	byteSliceType   = reflect.TypeOf([]byte(nil))
)

// Mapper converts between field representations and typed go values.
type Mapper struct {
	registry *movetypes.Registry
	cache    *TypeCache
}

func NewMapper(registry *movetypes.Registry) *Mapper {
	return &Mapper{
		registry: registry,
		cache:    NewTypeCache(),
	}
}

// Assign stores a field representation into target, which must be settable.
//
// Parameters:
//   - target: The go value to fill
//   - value: A field representation as produced by the decoders
//
// Returns:
//   - error: An error if the value does not fit the go type
//
// Options map onto pointers (nil for none) and struct instances onto tagged
// go structs. Interface targets receive the value unchanged.
func (m *Mapper) Assign(target reflect.Value, value any) error {
	targetType := target.Type()

	switch {
	case targetType.Kind() == reflect.Interface:
		if value == nil {
			target.Set(reflect.Zero(targetType))
			return nil
		}
		v := reflect.ValueOf(value)
		if !v.Type().AssignableTo(targetType) {
			return fmt.Errorf("cannot assign %T to %s", value, targetType)
		}
		target.Set(v)
		return nil

	case targetType == structValueType, targetType == uint256Type:
		if value == nil {
			target.Set(reflect.Zero(targetType))
			return nil
		}
		v := reflect.ValueOf(value)
		if v.Type() != targetType {
			return fmt.Errorf("cannot assign %T to %s", value, targetType)
		}
		if targetType == uint256Type {
			v = reflect.ValueOf(new(uint256.Int).Set(value.(*uint256.Int)))
		}
		target.Set(v)
		return nil

	case targetType == addressType:
		addr, ok := value.(movetypes.Address)
		if !ok {
			return fmt.Errorf("cannot assign %T to address", value)
		}
		target.Set(reflect.ValueOf(addr))
		return nil
	}

	switch targetType.Kind() {
	case reflect.Pointer:
		if value == nil {
			target.Set(reflect.Zero(targetType))
			return nil
		}
		elem := reflect.New(targetType.Elem())
		if err := m.Assign(elem.Elem(), value); err != nil {
			return err
		}
		target.Set(elem)
		return nil

	case reflect.Bool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("cannot assign %T to bool", value)
		}
		target.SetBool(b)
		return nil

	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := bcs.ToUint64(value, targetType.Bits())
		if err != nil {
			return err
		}
		target.SetUint(n)
		return nil

	case reflect.String:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("cannot assign %T to string", value)
		}
		target.SetString(s)
		return nil

	case reflect.Slice:
		return m.assignSlice(target, value)

	case reflect.Struct:
		sv, ok := value.(*movetypes.StructValue)
		if !ok {
			return fmt.Errorf("cannot assign %T to %s", value, targetType)
		}
		return m.AssignStruct(target, sv)
	}

	return fmt.Errorf("unsupported go type %s", targetType)
}

func (m *Mapper) assignSlice(target reflect.Value, value any) error {
	targetType := target.Type()
	if targetType.Elem().Kind() == reflect.Uint8 {
		if buf, ok := value.([]byte); ok {
			slice := reflect.MakeSlice(targetType, len(buf), len(buf))
			reflect.Copy(slice, reflect.ValueOf(buf))
			target.Set(slice)
			return nil
		}
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("cannot assign %T to %s", value, targetType)
	}
	slice := reflect.MakeSlice(targetType, len(items), len(items))
	for i, item := range items {
		if err := m.Assign(slice.Index(i), item); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	target.Set(slice)
	return nil
}

// AssignStruct fills the tagged fields of a go struct from a struct instance.
// Every move field needs a tagged go field.
func (m *Mapper) AssignStruct(target reflect.Value, sv *movetypes.StructValue) error {
	info, err := m.cache.GetStructInfo(target.Type())
	if err != nil {
		return err
	}

	for i := 0; i < sv.Len(); i++ {
		field, value := sv.FieldAt(i)
		path, ok := info.Fields[field.Name]
		if !ok {
			return fmt.Errorf("%s has no go field for %s.%s", target.Type(), sv.TypeName(), field.Name)
		}
		if err := m.Assign(target.FieldByIndex(path), value); err != nil {
			return fmt.Errorf("%s.%s: %w", sv.TypeName(), field.Name, err)
		}
	}
	if info.TypeInfo != nil {
		target.FieldByIndex(info.TypeInfo).Set(reflect.ValueOf(movetypes.TypeInfo{TypeArgs: sv.TypeArgs()}))
	}
	return nil
}

// Extract converts a go value into the field representation of the concrete type tag.
//
// Parameters:
//   - tag: The concrete move type of the value
//   - src: The go value
//
// Returns:
//   - any: The field representation, *movetypes.StructValue for user structs
//   - error: An error if the go value does not fit the move type
func (m *Mapper) Extract(tag movetypes.TypeTag, src reflect.Value) (any, error) {
	if src.Kind() == reflect.Interface {
		if src.IsNil() {
			return nil, nil
		}
		src = src.Elem()
	}
	if src.Type() == structValueType {
		if src.IsNil() {
			return nil, fmt.Errorf("nil %s instance", tag.String())
		}
		return src.Interface(), nil
	}

	if tag.Kind == movetypes.StructKind && tag.Struct.TypeName() == movetypes.OptionTypeName {
		if src.Kind() == reflect.Pointer {
			if src.IsNil() {
				return nil, nil
			}
			if src.Type() != uint256Type {
				src = src.Elem()
			}
		}
		return m.Extract(tag.Struct.TypeArgs[0], src)
	}

	if src.Kind() == reflect.Pointer && src.Type() != uint256Type {
		if src.IsNil() {
			return nil, fmt.Errorf("nil pointer for %s", tag.String())
		}
		src = src.Elem()
	}

	switch tag.Kind {
	case movetypes.BoolKind:
		if src.Kind() == reflect.Bool {
			return src.Bool(), nil
		}
	case movetypes.U8Kind:
		if isUint(src) {
			return uint8(src.Uint()), nil
		}
	case movetypes.U16Kind:
		if isUint(src) {
			return uint16(src.Uint()), nil
		}
	case movetypes.U32Kind:
		if isUint(src) {
			return uint32(src.Uint()), nil
		}
	case movetypes.U64Kind:
		if isUint(src) {
			return src.Uint(), nil
		}
	case movetypes.U128Kind, movetypes.U256Kind:
		if src.Type() == uint256Type {
			if src.IsNil() {
				return nil, fmt.Errorf("nil %s", tag.String())
			}
			return new(uint256.Int).Set(src.Interface().(*uint256.Int)), nil
		}
	case movetypes.AddressKind:
		if src.Type() == addressType {
			return src.Interface(), nil
		}
	case movetypes.VectorKind:
		return m.extractVector(*tag.Elem, src)
	case movetypes.StructKind:
		return m.extractStruct(tag, src)
	}

	return nil, fmt.Errorf("cannot convert %s to %s", src.Type(), tag.String())
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		return true
	}
	return false
}

func (m *Mapper) extractVector(elem movetypes.TypeTag, src reflect.Value) (any, error) {
	if src.Kind() != reflect.Slice && src.Kind() != reflect.Array {
		return nil, fmt.Errorf("cannot convert %s to vector<%s>", src.Type(), elem.String())
	}
	if elem.Kind == movetypes.U8Kind && src.Kind() == reflect.Slice && src.Type().Elem().Kind() == reflect.Uint8 {
		buf := make([]byte, src.Len())
		reflect.Copy(reflect.ValueOf(buf), src.Convert(byteSliceType))
		return buf, nil
	}

	items := make([]any, src.Len())
	for i := range items {
		item, err := m.Extract(elem, src.Index(i))
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		items[i] = item
	}
	if elem.Kind == movetypes.U8Kind {
		buf := make([]byte, len(items))
		for i, item := range items {
			buf[i] = item.(uint8)
		}
		return buf, nil
	}
	return items, nil
}

func (m *Mapper) extractStruct(tag movetypes.TypeTag, src reflect.Value) (any, error) {
	switch tag.Struct.TypeName() {
	case movetypes.StringTypeName, movetypes.ASCIIStringTypeName, movetypes.URLTypeName:
		if src.Kind() == reflect.String {
			return src.String(), nil
		}
	case movetypes.IDTypeName, movetypes.UIDTypeName:
		if src.Type() == addressType {
			return src.Interface(), nil
		}
	}
	if src.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot convert %s to %s", src.Type(), tag.String())
	}

	desc, err := m.registry.LookupTag(tag.Struct)
	if err != nil {
		return nil, err
	}
	return m.ExtractStruct(desc, tag.Struct.TypeArgs, src)
}

// ExtractStruct builds a struct instance from the tagged fields of a go struct.
func (m *Mapper) ExtractStruct(desc *movetypes.StructDescriptor, typeArgs []movetypes.TypeTag, src reflect.Value) (*movetypes.StructValue, error) {
	info, err := m.cache.GetStructInfo(src.Type())
	if err != nil {
		return nil, err
	}

	values := make([]any, len(desc.Fields))
	for i, field := range desc.Fields {
		path, ok := info.Fields[field.Name]
		if !ok {
			return nil, fmt.Errorf("%s has no go field for %s.%s", src.Type(), desc.TypeName, field.Name)
		}
		value, err := m.Extract(field.Type.Substitute(typeArgs), src.FieldByIndex(path))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", desc.TypeName, field.Name, err)
		}
		values[i] = value
	}
	return movetypes.NewStructValueOrdered(desc, typeArgs, values)
}
