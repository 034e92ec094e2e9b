// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package main

import (
	"fmt"

	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/spf13/cobra"
)

func newCanonicalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonicalize <type>...",
		Short: "Print the canonical form of type names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				canonical, err := movetypes.CanonicalType(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), canonical)
			}
			return nil
		},
	}
}

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match <struct name> <type>",
		Short: "Check whether a type is an instance of a registered struct",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, ok := a.codec.Registry().Lookup(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", movetypes.ErrUnknownStruct, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), desc.Matches(args[1]))
			return nil
		},
	}
}
