// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

// TypeInfo is embedded into typed go structs of generic move structs and
// carries the canonical names of their type arguments, phantom ones included.
type TypeInfo struct {
	TypeArgs []string `json:"-" yaml:"-"`
}

// MoveTypeArgs returns the type argument names.
func (t TypeInfo) MoveTypeArgs() []string {
	return t.TypeArgs
}
