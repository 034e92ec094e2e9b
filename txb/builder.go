// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package txb builds programmable transactions calling move functions.
// Pure arguments are serialized with the BCS schemas of a suigen.Codec.
package txb

import (
	"fmt"
	"math"
	"strings"

	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/WayneAl/sui-client-gen/suiclient"
)

// Builder collects inputs and commands of a programmable transaction.
// It is not safe for concurrent use.
type Builder struct {
	codec    *suigen.Codec
	inputs   []any
	commands []any
}

// NewBuilder creates a builder. A nil codec selects the global codec.
func NewBuilder(codec *suigen.Codec) *Builder {
	if codec == nil {
		codec = suigen.GetGlobalCodec()
	}
	return &Builder{codec: codec}
}

func (b *Builder) addInput(input any) Argument {
	b.inputs = append(b.inputs, input)
	return Argument{Kind: InputArgument, Index: uint16(len(b.inputs) - 1)}
}

func (b *Builder) addCommand(command any) Argument {
	b.commands = append(b.commands, command)
	return Argument{Kind: ResultArgument, Index: uint16(len(b.commands) - 1)}
}

// PureBytes adds an already serialized pure input.
func (b *Builder) PureBytes(data []byte) Argument {
	return b.addInput(map[string]any{"Pure": append([]byte{}, data...)})
}

// Pure serializes value as the move type typeName and adds it as input.
func (b *Builder) Pure(typeName string, value any) (Argument, error) {
	r, err := b.codec.Reify(typeName)
	if err != nil {
		return Argument{}, err
	}
	data, err := r.EncodeBcs(value)
	if err != nil {
		return Argument{}, fmt.Errorf("pure %s: %w", typeName, err)
	}
	return b.PureBytes(data), nil
}

// PureOrArgument passes Argument values through and serializes anything else with Pure.
func (b *Builder) PureOrArgument(typeName string, value any) (Argument, error) {
	if arg, ok := value.(Argument); ok {
		return arg, nil
	}
	return b.Pure(typeName, value)
}

// Object adds an owned or immutable object input.
func (b *Builder) Object(ref suiclient.ObjectRef) Argument {
	return b.addInput(map[string]any{"Object": map[string]any{"ImmOrOwnedObject": objectRefRaw(ref)}})
}

// Receiving adds an object sent to another object.
func (b *Builder) Receiving(ref suiclient.ObjectRef) Argument {
	return b.addInput(map[string]any{"Object": map[string]any{"Receiving": objectRefRaw(ref)}})
}

// SharedObject adds a shared object input.
func (b *Builder) SharedObject(id movetypes.Address, initialSharedVersion uint64, mutable bool) Argument {
	return b.addInput(map[string]any{"Object": map[string]any{"SharedObject": map[string]any{
		"id":                     [32]byte(id),
		"initial_shared_version": initialSharedVersion,
		"mutable":                mutable,
	}}})
}

func objectRefRaw(ref suiclient.ObjectRef) map[string]any {
	return map[string]any{
		"object_id": [32]byte(ref.ObjectID),
		"version":   ref.Version,
		"digest":    ref.Digest[:],
	}
}

// MoveCall adds a call of target, given as "package::module::function".
//
// Parameters:
//   - target: The function to call
//   - typeArgs: Concrete type arguments of the function
//   - args: The call arguments
//
// Returns:
//   - Argument: The call result
//   - error: An error if the target or a type argument is malformed
func (b *Builder) MoveCall(target string, typeArgs []string, args ...Argument) (Argument, error) {
	parts := strings.Split(target, "::")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return Argument{}, fmt.Errorf("invalid move call target %q", target)
	}
	pkg, err := movetypes.ParseAddress(parts[0])
	if err != nil {
		return Argument{}, fmt.Errorf("invalid move call target %q: %w", target, err)
	}

	rawTypeArgs := make([]any, len(typeArgs))
	for i, typeArg := range typeArgs {
		tag, err := movetypes.ParseTypeTag(typeArg)
		if err != nil {
			return Argument{}, err
		}
		rawTypeArgs[i], err = typeTagRaw(tag)
		if err != nil {
			return Argument{}, err
		}
	}

	return b.addCommand(map[string]any{"MoveCall": map[string]any{
		"package":        [32]byte(pkg),
		"module":         parts[1],
		"function":       parts[2],
		"type_arguments": rawTypeArgs,
		"arguments":      rawArguments(args),
	}}), nil
}

// TransferObjects sends objects to recipient.
func (b *Builder) TransferObjects(objects []Argument, recipient Argument) Argument {
	return b.addCommand(map[string]any{"TransferObjects": map[string]any{
		"objects": rawArguments(objects),
		"address": recipient.raw(),
	}})
}

// SplitCoins splits amounts off coin, the result holds one coin per amount.
func (b *Builder) SplitCoins(coin Argument, amounts ...Argument) Argument {
	return b.addCommand(map[string]any{"SplitCoins": map[string]any{
		"coin":    coin.raw(),
		"amounts": rawArguments(amounts),
	}})
}

// MergeCoins merges sources into destination.
func (b *Builder) MergeCoins(destination Argument, sources ...Argument) Argument {
	return b.addCommand(map[string]any{"MergeCoins": map[string]any{
		"destination": destination.raw(),
		"sources":     rawArguments(sources),
	}})
}

// Build returns the transaction.
func (b *Builder) Build() (*ProgrammableTransaction, error) {
	if len(b.inputs) > math.MaxUint16 || len(b.commands) > math.MaxUint16 {
		return nil, fmt.Errorf("transaction exceeds %d inputs or commands", math.MaxUint16)
	}
	return &ProgrammableTransaction{
		Inputs:   append([]any(nil), b.inputs...),
		Commands: append([]any(nil), b.commands...),
	}, nil
}

// ProgrammableTransaction holds inputs and commands in their BCS field form.
type ProgrammableTransaction struct {
	Inputs   []any
	Commands []any
}

// Bytes returns the BCS encoding of the transaction kind payload.
func (p *ProgrammableTransaction) Bytes() ([]byte, error) {
	return bcs.SerializeToBytes(programmableTransactionBcs, map[string]any{
		"inputs":   p.Inputs,
		"commands": p.Commands,
	})
}

// ParseProgrammableTransaction decodes a transaction produced by Bytes.
func ParseProgrammableTransaction(data []byte) (*ProgrammableTransaction, error) {
	raw, err := bcs.ParseBytes(programmableTransactionBcs, data)
	if err != nil {
		return nil, err
	}
	fields := raw.(map[string]any)
	inputs, _ := fields["inputs"].([]any)
	commands, _ := fields["commands"].([]any)
	return &ProgrammableTransaction{Inputs: inputs, Commands: commands}, nil
}

func typeTagRaw(tag movetypes.TypeTag) (any, error) {
	switch tag.Kind {
	case movetypes.VectorKind:
		elem, err := typeTagRaw(*tag.Elem)
		if err != nil {
			return nil, err
		}
		return map[string]any{"vector": elem}, nil
	case movetypes.StructKind:
		params := make([]any, len(tag.Struct.TypeArgs))
		for i, arg := range tag.Struct.TypeArgs {
			param, err := typeTagRaw(arg)
			if err != nil {
				return nil, err
			}
			params[i] = param
		}
		return map[string]any{"struct": map[string]any{
			"address":     [32]byte(tag.Struct.Address),
			"module":      tag.Struct.Module,
			"name":        tag.Struct.Name,
			"type_params": params,
		}}, nil
	case movetypes.ParamKind:
		return nil, fmt.Errorf("type argument %s is not concrete", tag.ParamName)
	}
	return map[string]any{tag.Kind.String(): nil}, nil
}
