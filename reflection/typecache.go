// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package reflection

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/WayneAl/sui-client-gen/movetypes"
)

// TagName is the struct tag holding the move field name of a go struct field.
const TagName = "move"

var typeInfoType = reflect.TypeOf(movetypes.TypeInfo{})

// StructInfo describes how a go struct maps to move fields.
type StructInfo struct {
	Type     reflect.Type
	Fields   map[string][]int // move field name -> field index path
	TypeInfo []int            // index path of the embedded movetypes.TypeInfo, nil if absent
}

// TypeCache caches StructInfo per go type.
type TypeCache struct {
	mutex sync.RWMutex
	infos map[reflect.Type]*StructInfo
}

func NewTypeCache() *TypeCache {
	return &TypeCache{
		infos: make(map[reflect.Type]*StructInfo),
	}
}

// GetStructInfo returns the cached mapping for the struct type t, computing it if necessary.
func (tc *TypeCache) GetStructInfo(t reflect.Type) (*StructInfo, error) {
	tc.mutex.RLock()
	info, ok := tc.infos[t]
	tc.mutex.RUnlock()
	if ok {
		return info, nil
	}

	info, err := buildStructInfo(t)
	if err != nil {
		return nil, err
	}

	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	if existing, ok := tc.infos[t]; ok {
		return existing, nil
	}
	tc.infos[t] = info
	return info, nil
}

func buildStructInfo(t reflect.Type) (*StructInfo, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct", t)
	}

	info := &StructInfo{
		Type:   t,
		Fields: make(map[string][]int),
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type == typeInfoType {
			info.TypeInfo = field.Index
			continue
		}
		tag, ok := field.Tag.Lookup(TagName)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("%s.%s: move field %q is not exported", t, field.Name, name)
		}
		if _, dup := info.Fields[name]; dup {
			return nil, fmt.Errorf("%s: duplicate move field %q", t, name)
		}
		info.Fields[name] = field.Index
	}
	return info, nil
}
