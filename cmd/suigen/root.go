// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package main

import (
	"context"
	"time"

	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/WayneAl/sui-client-gen/suiclient"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by all commands. It is filled in by the
// root command before any sub command runs.
type app struct {
	configPath string
	rpcURL     string
	logLevel   string
	logFile    string
	verbose    bool

	config *Config
	logger *zap.Logger
	codec  *suigen.Codec
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "suigen",
		Short:         "Decode Sui move structs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.rpcURL, "rpc", "", "Sui full node JSON-RPC url")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFile, "log-file", "", "write json logs to this file, rotated")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "trace every decoded field")

	cmd.AddCommand(
		newFetchCmd(a),
		newDecodeCmd(a),
		newCanonicalizeCmd(),
		newMatchCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	config, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.rpcURL != "" {
		config.RPC.URL = a.rpcURL
	}
	if a.logLevel != "" {
		config.Log.Level = a.logLevel
	}
	if a.logFile != "" {
		config.Log.File = a.logFile
	}
	if a.verbose {
		config.Log.Level = "debug"
	}

	logger, err := newLogger(config.Log)
	if err != nil {
		return err
	}

	registry := movetypes.DefaultRegistry()
	if len(config.Descriptors) > 0 {
		registry = registry.Clone()
		for _, path := range config.Descriptors {
			if err := registry.LoadYAMLFile(path); err != nil {
				return errors.Wrapf(err, "failed to load descriptors %s", path)
			}
			logger.Debug("loaded descriptors", zap.String("path", path))
		}
	}

	opts := []suigen.CodecOption{
		suigen.WithRegistry(registry),
		suigen.WithLogger(logger),
	}
	if a.verbose {
		opts = append(opts, suigen.WithVerbose())
	}

	a.config = config
	a.logger = logger
	a.codec = suigen.NewCodec(opts...)
	return nil
}

// dial connects to the configured node.
func (a *app) dial(ctx context.Context) (*suiclient.Client, error) {
	opts := []suiclient.ClientOption{
		suiclient.WithLogger(a.logger.Named("rpc")),
		suiclient.WithTimeout(a.config.RPC.Timeout),
	}
	for key, value := range a.config.RPC.Headers {
		opts = append(opts, suiclient.WithHeader(key, value))
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := suiclient.Dial(dialCtx, a.config.RPC.URL, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", a.config.RPC.URL)
	}
	return client, nil
}
