// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import "strings"

// SnakeToCamel converts a move field name to the camelCase key used in JSON:
// "generic_field_1" becomes "genericField1".
func SnakeToCamel(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}

	var sb strings.Builder
	sb.Grow(len(name))
	upper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' && sb.Len() > 0 {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		sb.WriteByte(c)
	}
	return sb.String()
}
