// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package txb

import "fmt"

type ArgumentKind uint8

const (
	GasCoinArgument ArgumentKind = iota
	InputArgument
	ResultArgument
	NestedResultArgument
)

// Argument references a transaction input or the result of an earlier command.
type Argument struct {
	Kind        ArgumentKind
	Index       uint16
	ResultIndex uint16 // nested results only
}

// GasCoin references the coin paying for gas.
func GasCoin() Argument {
	return Argument{Kind: GasCoinArgument}
}

// Nested references the i-th value of a command returning multiple values.
func (a Argument) Nested(i uint16) Argument {
	return Argument{Kind: NestedResultArgument, Index: a.Index, ResultIndex: i}
}

func (a Argument) String() string {
	switch a.Kind {
	case GasCoinArgument:
		return "GasCoin"
	case InputArgument:
		return fmt.Sprintf("Input(%d)", a.Index)
	case ResultArgument:
		return fmt.Sprintf("Result(%d)", a.Index)
	}
	return fmt.Sprintf("NestedResult(%d, %d)", a.Index, a.ResultIndex)
}

func (a Argument) raw() any {
	switch a.Kind {
	case GasCoinArgument:
		return map[string]any{"GasCoin": nil}
	case InputArgument:
		return map[string]any{"Input": a.Index}
	case ResultArgument:
		return map[string]any{"Result": a.Index}
	}
	return map[string]any{"NestedResult": map[string]any{
		"index":        a.Index,
		"result_index": a.ResultIndex,
	}}
}

func rawArguments(args []Argument) []any {
	raw := make([]any, len(args))
	for i, arg := range args {
		raw[i] = arg.raw()
	}
	return raw
}
