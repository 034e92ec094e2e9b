// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"fmt"
	"sort"
	"sync"
)

// Registry manages struct descriptors by canonical type name.
// Descriptors reference other structs by name only, lookups happen when a
// codec is built, so registration order does not matter and recursive
// structs are possible.
type Registry struct {
	structsMutex sync.RWMutex
	structs      map[string]*StructDescriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		structs: make(map[string]*StructDescriptor),
	}
}

var defaultRegistry = func() *Registry {
	registry := NewRegistry()
	registry.MustRegister(builtinDescriptors...)
	return registry
}()

// DefaultRegistry returns the process wide registry.
// It contains the framework structs, generated bindings register themselves into it.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds descriptors to the registry.
// Registering the same descriptor twice is a no-op, registering a different
// descriptor under an existing name fails.
func (r *Registry) Register(descs ...*StructDescriptor) error {
	r.structsMutex.Lock()
	defer r.structsMutex.Unlock()

	for _, desc := range descs {
		if existing, ok := r.structs[desc.TypeName]; ok {
			if existing == desc {
				continue
			}
			return fmt.Errorf("struct %s already registered", desc.TypeName)
		}
		r.structs[desc.TypeName] = desc
	}
	return nil
}

// MustRegister is like Register but panics on conflicts.
func (r *Registry) MustRegister(descs ...*StructDescriptor) {
	if err := r.Register(descs...); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered for a struct name.
// The name may be given in any address form, it is canonicalised first.
func (r *Registry) Lookup(typeName string) (*StructDescriptor, bool) {
	r.structsMutex.RLock()
	desc, ok := r.structs[typeName]
	r.structsMutex.RUnlock()
	if ok {
		return desc, true
	}

	canonical, err := CanonicalType(typeName)
	if err != nil || canonical == typeName {
		return nil, false
	}

	r.structsMutex.RLock()
	defer r.structsMutex.RUnlock()
	desc, ok = r.structs[canonical]
	return desc, ok
}

// LookupTag returns the descriptor for a struct tag and checks the type argument count.
func (r *Registry) LookupTag(tag *StructTag) (*StructDescriptor, error) {
	desc, ok := r.Lookup(tag.TypeName())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStruct, tag.TypeName())
	}
	if len(tag.TypeArgs) != desc.NumTypeParams() {
		return nil, fmt.Errorf("%w: %s expects %d type arguments, got %d", ErrTypeArgCount, desc.TypeName, desc.NumTypeParams(), len(tag.TypeArgs))
	}
	return desc, nil
}

// Names returns all registered struct names in sorted order.
func (r *Registry) Names() []string {
	r.structsMutex.RLock()
	defer r.structsMutex.RUnlock()

	names := make([]string, 0, len(r.structs))
	for name := range r.structs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent registry with the same descriptors.
func (r *Registry) Clone() *Registry {
	r.structsMutex.RLock()
	defer r.structsMutex.RUnlock()

	clone := NewRegistry()
	for name, desc := range r.structs {
		clone.structs[name] = desc
	}
	return clone
}
