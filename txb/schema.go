// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package txb

import (
	"github.com/WayneAl/sui-client-gen/bcs"
)

var (
	argumentBcs = bcs.Enum("Argument",
		bcs.Variant{Name: "GasCoin"},
		bcs.Variant{Name: "Input", Type: bcs.U16()},
		bcs.Variant{Name: "Result", Type: bcs.U16()},
		bcs.Variant{Name: "NestedResult", Type: bcs.Struct("NestedResult",
			bcs.Field{Name: "index", Type: bcs.U16()},
			bcs.Field{Name: "result_index", Type: bcs.U16()},
		)},
	)

	objectRefBcs = bcs.Struct("ObjectRef",
		bcs.Field{Name: "object_id", Type: bcs.Address()},
		bcs.Field{Name: "version", Type: bcs.U64()},
		bcs.Field{Name: "digest", Type: bcs.Vector(bcs.U8())},
	)

	objectArgBcs = bcs.Enum("ObjectArg",
		bcs.Variant{Name: "ImmOrOwnedObject", Type: objectRefBcs},
		bcs.Variant{Name: "SharedObject", Type: bcs.Struct("SharedObject",
			bcs.Field{Name: "id", Type: bcs.Address()},
			bcs.Field{Name: "initial_shared_version", Type: bcs.U64()},
			bcs.Field{Name: "mutable", Type: bcs.Bool()},
		)},
		bcs.Variant{Name: "Receiving", Type: objectRefBcs},
	)

	callArgBcs = bcs.Enum("CallArg",
		bcs.Variant{Name: "Pure", Type: bcs.Vector(bcs.U8())},
		bcs.Variant{Name: "Object", Type: objectArgBcs},
	)

	// assigned in init, the type tag codec refers to itself
	typeTagBcs bcs.Type
)

func init() {
	typeTagRef := bcs.Lazy("TypeTag", func() bcs.Type { return typeTagBcs })
	typeTagBcs = bcs.Enum("TypeTag",
		bcs.Variant{Name: "bool"},
		bcs.Variant{Name: "u8"},
		bcs.Variant{Name: "u64"},
		bcs.Variant{Name: "u128"},
		bcs.Variant{Name: "address"},
		bcs.Variant{Name: "signer"},
		bcs.Variant{Name: "vector", Type: typeTagRef},
		bcs.Variant{Name: "struct", Type: bcs.Struct("StructTag",
			bcs.Field{Name: "address", Type: bcs.Address()},
			bcs.Field{Name: "module", Type: bcs.String()},
			bcs.Field{Name: "name", Type: bcs.String()},
			bcs.Field{Name: "type_params", Type: bcs.Vector(typeTagRef)},
		)},
		bcs.Variant{Name: "u16"},
		bcs.Variant{Name: "u32"},
		bcs.Variant{Name: "u256"},
	)

	commandBcs = bcs.Enum("Command",
		bcs.Variant{Name: "MoveCall", Type: bcs.Struct("ProgrammableMoveCall",
			bcs.Field{Name: "package", Type: bcs.Address()},
			bcs.Field{Name: "module", Type: bcs.String()},
			bcs.Field{Name: "function", Type: bcs.String()},
			bcs.Field{Name: "type_arguments", Type: bcs.Vector(typeTagBcs)},
			bcs.Field{Name: "arguments", Type: bcs.Vector(argumentBcs)},
		)},
		bcs.Variant{Name: "TransferObjects", Type: bcs.Struct("TransferObjects",
			bcs.Field{Name: "objects", Type: bcs.Vector(argumentBcs)},
			bcs.Field{Name: "address", Type: argumentBcs},
		)},
		bcs.Variant{Name: "SplitCoins", Type: bcs.Struct("SplitCoins",
			bcs.Field{Name: "coin", Type: argumentBcs},
			bcs.Field{Name: "amounts", Type: bcs.Vector(argumentBcs)},
		)},
		bcs.Variant{Name: "MergeCoins", Type: bcs.Struct("MergeCoins",
			bcs.Field{Name: "destination", Type: argumentBcs},
			bcs.Field{Name: "sources", Type: bcs.Vector(argumentBcs)},
		)},
	)

	programmableTransactionBcs = bcs.Struct("ProgrammableTransaction",
		bcs.Field{Name: "inputs", Type: bcs.Vector(callArgBcs)},
		bcs.Field{Name: "commands", Type: bcs.Vector(commandBcs)},
	)
}

var (
	commandBcs                 bcs.Type
	programmableTransactionBcs bcs.Type
)
