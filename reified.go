// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"
	"sync"

	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

// TypeArgument binds one generic slot of a struct. It is either a *Reified
// binding, which can decode values, or a PhantomTypeArgument carrying only
// the type name.
type TypeArgument interface {
	TypeName() string
	TypeTag() movetypes.TypeTag
	IsPhantom() bool
}

// PhantomTypeArgument binds a phantom slot by name.
type PhantomTypeArgument struct {
	tag movetypes.TypeTag
}

var _ TypeArgument = PhantomTypeArgument{}
var _ TypeArgument = (*Reified)(nil)

// Phantom creates a phantom binding from a concrete type name.
func Phantom(typeName string) (PhantomTypeArgument, error) {
	tag, err := movetypes.ParseTypeTag(typeName)
	if err != nil {
		return PhantomTypeArgument{}, err
	}
	return PhantomTypeArgument{tag: tag}, nil
}

// MustPhantom is like Phantom but panics on malformed names.
func MustPhantom(typeName string) PhantomTypeArgument {
	arg, err := Phantom(typeName)
	if err != nil {
		panic(err)
	}
	return arg
}

// PhantomOf converts any binding into a phantom binding of the same type.
func PhantomOf(arg TypeArgument) PhantomTypeArgument {
	if phantom, ok := arg.(PhantomTypeArgument); ok {
		return phantom
	}
	return PhantomTypeArgument{tag: arg.TypeTag()}
}

func (p PhantomTypeArgument) TypeName() string {
	return p.tag.String()
}

func (p PhantomTypeArgument) TypeTag() movetypes.TypeTag {
	return p.tag
}

func (p PhantomTypeArgument) IsPhantom() bool {
	return true
}

// Reified is a concrete type bound to a codec. It knows how to decode and
// encode values of its type in every supported representation.
//
// Reified values are immutable. Field bindings and the BCS schema are
// resolved on first use, so recursive structs can be reified.
type Reified struct {
	codec    *Codec
	tag      movetypes.TypeTag
	name     string
	elem     *Reified                    // vectors
	desc     *movetypes.StructDescriptor // structs
	typeArgs []TypeArgument              // structs

	fieldsOnce sync.Once
	fields     []*Reified
	fieldsErr  error

	bcsOnce sync.Once
	bcsType bcs.Type
	bcsErr  error
}

// TypeName returns the canonical full type name.
func (r *Reified) TypeName() string {
	return r.name
}

func (r *Reified) TypeTag() movetypes.TypeTag {
	return r.tag
}

func (r *Reified) IsPhantom() bool {
	return false
}

func (r *Reified) Kind() movetypes.TypeKind {
	return r.tag.Kind
}

func (r *Reified) Codec() *Codec {
	return r.codec
}

// Descriptor returns the struct descriptor, nil for non-struct types.
func (r *Reified) Descriptor() *movetypes.StructDescriptor {
	return r.desc
}

// Elem returns the element binding of a vector, nil otherwise.
func (r *Reified) Elem() *Reified {
	return r.elem
}

// TypeArgs returns the struct's type argument bindings.
func (r *Reified) TypeArgs() []TypeArgument {
	return append([]TypeArgument(nil), r.typeArgs...)
}

// TypeArgNames returns the canonical names of the struct's type arguments.
func (r *Reified) TypeArgNames() []string {
	names := make([]string, len(r.typeArgs))
	for i, arg := range r.typeArgs {
		names[i] = arg.TypeName()
	}
	return names
}

func (r *Reified) typeArgTags() []movetypes.TypeTag {
	tags := make([]movetypes.TypeTag, len(r.typeArgs))
	for i, arg := range r.typeArgs {
		tags[i] = arg.TypeTag()
	}
	return tags
}

// Matches reports whether typ denotes the struct of this binding, ignoring type arguments.
func (r *Reified) Matches(typ string) bool {
	if r.desc == nil {
		return movetypes.CompressType(typ) == r.name
	}
	return r.desc.Matches(typ)
}

func (r *Reified) structName() string {
	if r.desc != nil {
		return r.desc.Name
	}
	return r.name
}

func (r *Reified) requireStruct() error {
	if r.desc == nil {
		return fmt.Errorf("%w: %s", ErrNotStruct, r.name)
	}
	return nil
}

// structFields resolves the bindings of all fields with the type arguments substituted.
func (r *Reified) structFields() ([]*Reified, error) {
	r.fieldsOnce.Do(func() {
		argTags := r.typeArgTags()
		fields := make([]*Reified, len(r.desc.Fields))
		for i, field := range r.desc.Fields {
			if field.Type.Kind == movetypes.ParamKind {
				arg, ok := r.typeArgs[field.Type.Param].(*Reified)
				if !ok {
					r.fieldsErr = fmt.Errorf("%w: %s.%s", ErrPhantomDecode, r.desc.TypeName, field.Name)
					return
				}
				fields[i] = arg
				continue
			}

			fieldReified, err := r.codec.ReifyTag(field.Type.Substitute(argTags))
			if err != nil {
				r.fieldsErr = fmt.Errorf("%s.%s: %w", r.desc.TypeName, field.Name, err)
				return
			}
			fields[i] = fieldReified
		}
		r.fields = fields
	})
	return r.fields, r.fieldsErr
}

// Bcs returns the BCS schema of the type.
func (r *Reified) Bcs() (bcs.Type, error) {
	r.bcsOnce.Do(func() {
		r.bcsType, r.bcsErr = r.buildBcs()
	})
	return r.bcsType, r.bcsErr
}

func (r *Reified) buildBcs() (bcs.Type, error) {
	switch r.tag.Kind {
	case movetypes.VectorKind:
		elem, err := r.elem.Bcs()
		if err != nil {
			return nil, err
		}
		return bcs.Vector(elem), nil
	case movetypes.StructKind:
		slots := make([]bcs.Type, len(r.typeArgs))
		for i, arg := range r.typeArgs {
			concrete, ok := arg.(*Reified)
			if !ok {
				continue
			}
			slot, err := concrete.Bcs()
			if err != nil {
				return nil, err
			}
			slots[i] = slot
		}
		return r.codec.buildStructBcs(r.desc, slots)
	}
	return primitiveBcs(r.tag.Kind)
}
