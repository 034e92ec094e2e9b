// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Command suigen fetches and decodes Sui move objects with the registered
// struct bindings.
package main

import (
	"fmt"
	"os"

	_ "github.com/WayneAl/sui-client-gen/gen/examples/fixture"
	_ "github.com/WayneAl/sui-client-gen/gen/std/ascii"
	_ "github.com/WayneAl/sui-client-gen/gen/std/bitvector"
	_ "github.com/WayneAl/sui-client-gen/gen/std/option"
	_ "github.com/WayneAl/sui-client-gen/gen/std/stdstring"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/balance"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/groth16"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/linkedtable"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/object"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/sui"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/table"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/tablevec"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/transfer"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/txcontext"
	_ "github.com/WayneAl/sui-client-gen/gen/sui/url"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
