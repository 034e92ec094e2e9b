// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package main

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	var (
		typeName string
		encoding string
		color    bool
	)

	cmd := &cobra.Command{
		Use:   "decode <bcs bytes>",
		Short: "Decode BCS bytes of a move value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := decodeValue(a.codec, typeName, encoding, args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out, color)
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "", "move type of the value")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "hex", "input encoding, hex or base64")
	cmd.Flags().BoolVar(&color, "color", false, "colorize the output")
	_ = cmd.MarkFlagRequired("type")
	return cmd
}

// decodeValue decodes input as a value of typeName and returns its JSON
// projection. Structs include their type name.
func decodeValue(codec *suigen.Codec, typeName, encoding, input string) (any, error) {
	data, err := decodeInput(encoding, input)
	if err != nil {
		return nil, err
	}

	r, err := codec.Reify(typeName)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --type")
	}
	value, err := r.DecodeBcs(data)
	if err != nil {
		return nil, err
	}

	if sv, ok := value.(*movetypes.StructValue); ok {
		return suigen.ToJSON(sv), nil
	}
	return suigen.FieldToJSON(r.TypeTag(), value), nil
}

func decodeInput(encoding, input string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch encoding {
	case "hex":
		data, err = hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(input), "0x"))
	case "base64":
		data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(input))
	default:
		return nil, errors.Errorf("unknown encoding %q", encoding)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s input", encoding)
	}
	return data, nil
}
