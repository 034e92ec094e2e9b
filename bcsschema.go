// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"
	"strings"

	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

// StructBcs builds the BCS schema of a struct from its field codecs in
// declaration order.
//
// Parameters:
//   - typeName: The struct name without type arguments
//   - paramCodecs: One codec per non-phantom type parameter, in declaration order.
//     Phantom slots do not contribute bytes and take no codec.
//
// Returns:
//   - bcs.Type: The struct codec, nested structs are resolved when first used
//   - error: An error if the struct is unknown or the codec count is wrong
//
// Example:
//
//	// WithTwoGenerics<u16, u64>
//	schema, err := codec.StructBcs(fixture.WithTwoGenericsTypeName, bcs.U16(), bcs.U64())
func (c *Codec) StructBcs(typeName string, paramCodecs ...bcs.Type) (bcs.Type, error) {
	desc, ok := c.registry.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", movetypes.ErrUnknownStruct, typeName)
	}

	slots := make([]bcs.Type, desc.NumTypeParams())
	next := 0
	for i, param := range desc.TypeParams {
		if param.Phantom {
			continue
		}
		if next >= len(paramCodecs) {
			return nil, fmt.Errorf("%w: %s needs a codec for %s", movetypes.ErrTypeArgCount, desc.TypeName, param.Name)
		}
		slots[i] = paramCodecs[next]
		next++
	}
	if next != len(paramCodecs) {
		return nil, fmt.Errorf("%w: %s takes %d codecs, got %d", movetypes.ErrTypeArgCount, desc.TypeName, next, len(paramCodecs))
	}

	return c.buildStructBcs(desc, slots)
}

// buildStructBcs composes the struct codec. slots holds one codec per type
// parameter, nil for phantom ones.
func (c *Codec) buildStructBcs(desc *movetypes.StructDescriptor, slots []bcs.Type) (bcs.Type, error) {
	fields := make([]bcs.Field, len(desc.Fields))
	for i, field := range desc.Fields {
		fieldType, err := c.buildTagBcs(field.Type, slots)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", desc.TypeName, field.Name, err)
		}
		fields[i] = bcs.Field{Name: field.Name, Type: fieldType}
	}
	return bcs.Struct(structBcsName(desc, slots), fields...), nil
}

func (c *Codec) buildTagBcs(tag movetypes.TypeTag, slots []bcs.Type) (bcs.Type, error) {
	switch tag.Kind {
	case movetypes.ParamKind:
		if tag.Param >= len(slots) || slots[tag.Param] == nil {
			return nil, fmt.Errorf("%w: %s", ErrPhantomDecode, tag.ParamName)
		}
		return slots[tag.Param], nil

	case movetypes.VectorKind:
		elem, err := c.buildTagBcs(*tag.Elem, slots)
		if err != nil {
			return nil, err
		}
		return bcs.Vector(elem), nil

	case movetypes.StructKind:
		desc, err := c.registry.LookupTag(tag.Struct)
		if err != nil {
			return nil, err
		}
		nested := make([]bcs.Type, len(tag.Struct.TypeArgs))
		for i, param := range desc.TypeParams {
			if param.Phantom {
				continue
			}
			nested[i], err = c.buildTagBcs(tag.Struct.TypeArgs[i], slots)
			if err != nil {
				return nil, err
			}
		}
		// nested bodies are built on first use, recursive structs would not terminate otherwise
		return bcs.Lazy(structBcsName(desc, nested), func() bcs.Type {
			schema, err := c.buildStructBcs(desc, nested)
			if err != nil {
				return failedBcs{name: desc.TypeName, err: err}
			}
			return schema
		}), nil
	}

	return primitiveBcs(tag.Kind)
}

func structBcsName(desc *movetypes.StructDescriptor, slots []bcs.Type) string {
	names := make([]string, 0, len(slots))
	for _, slot := range slots {
		if slot != nil {
			names = append(names, slot.Name())
		}
	}
	if len(names) == 0 {
		return desc.Name
	}
	return desc.Name + "<" + strings.Join(names, ", ") + ">"
}

func primitiveBcs(kind movetypes.TypeKind) (bcs.Type, error) {
	switch kind {
	case movetypes.BoolKind:
		return bcs.Bool(), nil
	case movetypes.U8Kind:
		return bcs.U8(), nil
	case movetypes.U16Kind:
		return bcs.U16(), nil
	case movetypes.U32Kind:
		return bcs.U32(), nil
	case movetypes.U64Kind:
		return bcs.U64(), nil
	case movetypes.U128Kind:
		return bcs.U128(), nil
	case movetypes.U256Kind:
		return bcs.U256(), nil
	case movetypes.AddressKind:
		return bcs.Address(), nil
	}
	return nil, fmt.Errorf("no BCS codec for %s", kind)
}

// failedBcs reports a schema error when the codec is used.
type failedBcs struct {
	name string
	err  error
}

func (f failedBcs) Name() string { return f.name }

func (f failedBcs) Parse(bcs.Decoder) (any, error) {
	return nil, f.err
}

func (f failedBcs) Serialize(bcs.Encoder, any) error {
	return f.err
}
