// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package main

import (
	"context"
	"encoding/json"
	"io"

	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type fetchRequest struct {
	typeName    string
	useBcs      bool
	concurrency int
}

func newFetchCmd(a *app) *cobra.Command {
	var (
		req   fetchRequest
		color bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <object id>...",
		Short: "Fetch objects and print their JSON projection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.concurrency == 0 {
				req.concurrency = a.config.Concurrency
			}

			client, err := a.dial(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			values, err := fetchMany(cmd.Context(), a.codec, client, req, args)
			if err != nil {
				return err
			}

			var out any = values
			if len(values) == 1 {
				out = values[0]
			}
			return writeJSON(cmd.OutOrStdout(), out, color)
		},
	}

	cmd.Flags().StringVarP(&req.typeName, "type", "t", "", "expected struct type, e.g. 0x2::coin::Coin<0x2::sui::SUI>")
	cmd.Flags().BoolVar(&req.useBcs, "bcs", false, "decode the BCS bytes instead of the RPC field map (needs --type)")
	cmd.Flags().IntVarP(&req.concurrency, "concurrency", "c", 0, "parallel requests, defaults to the config value")
	cmd.Flags().BoolVar(&color, "color", false, "colorize the output")
	return cmd
}

// fetchMany fetches all ids with at most req.concurrency requests in flight
// and returns their JSON projections in input order.
func fetchMany(ctx context.Context, codec *suigen.Codec, client suigen.ObjectGetter, req fetchRequest, ids []string) ([]map[string]any, error) {
	var reified *suigen.Reified
	if req.typeName != "" {
		r, err := codec.Reify(req.typeName)
		if err != nil {
			return nil, errors.Wrap(err, "invalid --type")
		}
		reified = r
	} else if req.useBcs {
		return nil, errors.New("--bcs needs --type")
	}

	results := make([]map[string]any, len(ids))
	group, ctx := errgroup.WithContext(ctx)
	if req.concurrency > 0 {
		group.SetLimit(req.concurrency)
	}

	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			var (
				value *movetypes.StructValue
				err   error
			)
			switch {
			case reified == nil:
				value, err = codec.FetchAny(ctx, client, id)
			case req.useBcs:
				value, err = reified.FetchBcs(ctx, client, id)
			default:
				value, err = reified.Fetch(ctx, client, id)
			}
			if err != nil {
				return err
			}

			codec.Logger().Debug("decoded object", zap.String("id", id), zap.String("type", value.FullTypeName()))
			results[i] = suigen.ToJSON(value)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeJSON(w io.Writer, v any, color bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	data = pretty.Pretty(data)
	if color {
		data = pretty.Color(data, nil)
	}
	_, err = w.Write(data)
	return err
}
