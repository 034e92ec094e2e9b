// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"github.com/WayneAl/sui-client-gen/movetypes"
	"go.uber.org/zap"
)

type CodecOption func(*CodecOptions)

type CodecOptions struct {
	Registry *movetypes.Registry
	Logger   *zap.Logger
	Verbose  bool
}

// WithRegistry sets the descriptor registry, defaults to movetypes.DefaultRegistry().
func WithRegistry(registry *movetypes.Registry) CodecOption {
	return func(opts *CodecOptions) {
		opts.Registry = registry
	}
}

func WithLogger(logger *zap.Logger) CodecOption {
	return func(opts *CodecOptions) {
		opts.Logger = logger
	}
}

// WithVerbose logs every decoded field at debug level.
func WithVerbose() CodecOption {
	return func(opts *CodecOptions) {
		opts.Verbose = true
	}
}
