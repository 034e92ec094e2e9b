// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package suigen decodes and encodes Sui move structs from their BCS bytes,
// the typed field maps returned by the Sui JSON-RPC API and a JSON projection.
// All operations are driven by struct descriptors from a movetypes.Registry,
// generated bindings in the gen/ packages register theirs on import.
package suigen

import (
	"fmt"
	"sync"

	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/WayneAl/sui-client-gen/reflection"
	"go.uber.org/zap"
)

// Codec resolves type arguments into reified bindings and runs the decoders
// and encoders for them.
//
// The instance caches reified bindings by their canonical type name. It is
// safe for concurrent use and meant to be shared.
//
// Example usage:
//
//	codec := suigen.NewCodec(suigen.WithLogger(logger))
//	balance, err := codec.Reify("0x2::balance::Balance<0x2::sui::SUI>")
//	if err != nil {
//	    return err
//	}
//	value, err := balance.FromBcs(data)
type Codec struct {
	registry *movetypes.Registry
	logger   *zap.Logger
	verbose  bool
	mapper   *reflection.Mapper

	reifiedMutex sync.RWMutex
	reifiedCache map[string]*Reified
}

// NewCodec creates a new codec.
//
// Parameters:
//   - opts: Functional options, see WithRegistry, WithLogger and WithVerbose
//
// Returns:
//   - *Codec: A codec using movetypes.DefaultRegistry() unless another registry is given
func NewCodec(opts ...CodecOption) *Codec {
	options := &CodecOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Registry == nil {
		options.Registry = movetypes.DefaultRegistry()
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	return &Codec{
		registry:     options.Registry,
		logger:       options.Logger,
		verbose:      options.Verbose,
		mapper:       reflection.NewMapper(options.Registry),
		reifiedCache: make(map[string]*Reified),
	}
}

func (c *Codec) Registry() *movetypes.Registry {
	return c.registry
}

func (c *Codec) Logger() *zap.Logger {
	return c.logger
}

// Reify parses a concrete type string and returns its binding.
// Phantom slots of structs are bound by name only.
func (c *Codec) Reify(typeName string) (*Reified, error) {
	tag, err := movetypes.ParseTypeTag(typeName)
	if err != nil {
		return nil, err
	}
	return c.ReifyTag(tag)
}

// MustReify is like Reify but panics on error.
func (c *Codec) MustReify(typeName string) *Reified {
	r, err := c.Reify(typeName)
	if err != nil {
		panic(err)
	}
	return r
}

// ReifyTag returns the binding for a concrete type tag.
func (c *Codec) ReifyTag(tag movetypes.TypeTag) (*Reified, error) {
	if tag.HasParams() {
		return nil, fmt.Errorf("cannot reify generic type %s", tag.String())
	}

	name := tag.String()
	if r := c.cachedReified(name); r != nil {
		return r, nil
	}

	switch tag.Kind {
	case movetypes.VectorKind:
		elem, err := c.ReifyTag(*tag.Elem)
		if err != nil {
			return nil, err
		}
		return c.storeReified(&Reified{
			codec: c,
			tag:   tag,
			name:  name,
			elem:  elem,
		}), nil

	case movetypes.StructKind:
		desc, err := c.registry.LookupTag(tag.Struct)
		if err != nil {
			return nil, err
		}
		args := make([]TypeArgument, len(tag.Struct.TypeArgs))
		for i, param := range desc.TypeParams {
			argTag := tag.Struct.TypeArgs[i]
			if param.Phantom {
				args[i] = PhantomTypeArgument{tag: argTag}
				continue
			}
			arg, err := c.ReifyTag(argTag)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return c.newStruct(desc, args), nil

	case movetypes.SignerKind:
		return nil, fmt.Errorf("signer values cannot be decoded")
	}

	return c.storeReified(&Reified{
		codec: c,
		tag:   tag,
		name:  name,
	}), nil
}

// Struct binds the type parameters of a registered struct.
//
// Parameters:
//   - typeName: The struct name without type arguments
//   - typeArgs: One binding per type parameter. Phantom slots accept any binding
//     and keep only its name, other slots need a concrete *Reified binding.
//
// Returns:
//   - *Reified: The struct binding
//   - error: ErrPhantomDecode if a phantom binding is given for a concrete slot, or
//     an error if the struct is unknown or the argument count differs
func (c *Codec) Struct(typeName string, typeArgs ...TypeArgument) (*Reified, error) {
	desc, ok := c.registry.Lookup(typeName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", movetypes.ErrUnknownStruct, typeName)
	}
	return c.StructOf(desc, typeArgs...)
}

// StructOf is like Struct but takes the descriptor directly.
func (c *Codec) StructOf(desc *movetypes.StructDescriptor, typeArgs ...TypeArgument) (*Reified, error) {
	if len(typeArgs) != desc.NumTypeParams() {
		return nil, fmt.Errorf("%w: %s expects %d type arguments, got %d", movetypes.ErrTypeArgCount, desc.TypeName, desc.NumTypeParams(), len(typeArgs))
	}

	args := make([]TypeArgument, len(typeArgs))
	for i, param := range desc.TypeParams {
		arg := typeArgs[i]
		if arg == nil {
			return nil, fmt.Errorf("%s: type argument %s is nil", desc.TypeName, param.Name)
		}
		switch {
		case param.Phantom:
			args[i] = PhantomOf(arg)
		case arg.IsPhantom():
			return nil, fmt.Errorf("%w: %s slot %s is bound to phantom %s", ErrPhantomDecode, desc.TypeName, param.Name, arg.TypeName())
		default:
			args[i] = arg
		}
	}

	return c.newStruct(desc, args), nil
}

// MustStruct is like Struct but panics on error.
func (c *Codec) MustStruct(typeName string, typeArgs ...TypeArgument) *Reified {
	r, err := c.Struct(typeName, typeArgs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Vector returns the binding of vector<elem>.
func (c *Codec) Vector(elem *Reified) *Reified {
	r, err := c.ReifyTag(movetypes.VectorTag(elem.tag))
	if err != nil {
		// elem is concrete, so its vector is too
		panic(err)
	}
	return r
}

func (c *Codec) newStruct(desc *movetypes.StructDescriptor, args []TypeArgument) *Reified {
	argTags := make([]movetypes.TypeTag, len(args))
	for i, arg := range args {
		argTags[i] = arg.TypeTag()
	}
	tag := movetypes.StructTypeTag(desc.StructTag(argTags))
	name := tag.String()

	if r := c.cachedReified(name); r != nil {
		return r
	}
	return c.storeReified(&Reified{
		codec:    c,
		tag:      tag,
		name:     name,
		desc:     desc,
		typeArgs: args,
	})
}

func (c *Codec) cachedReified(name string) *Reified {
	c.reifiedMutex.RLock()
	defer c.reifiedMutex.RUnlock()
	return c.reifiedCache[name]
}

func (c *Codec) storeReified(r *Reified) *Reified {
	c.reifiedMutex.Lock()
	defer c.reifiedMutex.Unlock()
	if existing, ok := c.reifiedCache[r.name]; ok {
		return existing
	}
	c.reifiedCache[r.name] = r
	return r
}

// reifyValue returns the binding matching the type of a struct instance.
func (c *Codec) reifyValue(v *movetypes.StructValue) (*Reified, error) {
	return c.ReifyTag(movetypes.StructTypeTag(v.StructTag()))
}

// ToBcs serializes a struct instance.
func (c *Codec) ToBcs(v *movetypes.StructValue) ([]byte, error) {
	r, err := c.reifyValue(v)
	if err != nil {
		return nil, err
	}
	return r.ToBcs(v)
}
