// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const canonicalCacheSize = 4096

type canonicalEntry struct {
	canonical string
	err       error
}

var canonicalCache = func() *lru.Cache[string, canonicalEntry] {
	cache, err := lru.New[string, canonicalEntry](canonicalCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}()

// CanonicalType parses a type string and prints it in canonical form:
// every address compressed, type arguments separated by ", ".
// Results are memoised, type strings repeat a lot in RPC responses.
func CanonicalType(s string) (string, error) {
	if entry, ok := canonicalCache.Get(s); ok {
		return entry.canonical, entry.err
	}
	tag, err := ParseTypeTag(s)
	entry := canonicalEntry{err: err}
	if err == nil {
		entry.canonical = tag.String()
	}
	canonicalCache.Add(s, entry)
	return entry.canonical, entry.err
}

// CompressType returns the canonical form of a type string.
// Unparseable input is returned with surrounding whitespace removed.
func CompressType(s string) string {
	canonical, err := CanonicalType(s)
	if err != nil {
		return strings.TrimSpace(s)
	}
	return canonical
}

// ComposeType builds a full type name from a base name and type argument
// names: ComposeType("0x2::coin::Coin", "0x2::sui::SUI") returns
// "0x2::coin::Coin<0x2::sui::SUI>". Without arguments the base name is returned.
func ComposeType(typeName string, typeArgs ...string) string {
	if len(typeArgs) == 0 {
		return typeName
	}
	return typeName + "<" + strings.Join(typeArgs, ", ") + ">"
}

// IsStructType reports whether typ denotes the struct typeName.
// Non-generic structs must match exactly, generic structs match any
// instantiation "typeName<...>". Both sides are compared in canonical form.
func IsStructType(typ string, typeName string, generic bool) bool {
	canonical, err := CanonicalType(typ)
	if err != nil {
		return false
	}
	if generic {
		return strings.HasPrefix(canonical, typeName+"<")
	}
	return canonical == typeName
}
