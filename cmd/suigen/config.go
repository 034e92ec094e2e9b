// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultRPCURL = "https://fullnode.mainnet.sui.io:443"

// Config is the CLI configuration file. Command line flags override it.
type Config struct {
	RPC         RPCConfig `yaml:"rpc"`
	Descriptors []string  `yaml:"descriptors"`
	Concurrency int       `yaml:"concurrency"`
	Log         LogConfig `yaml:"log"`
}

type RPCConfig struct {
	URL     string            `yaml:"url"`
	Timeout time.Duration     `yaml:"timeout"`
	Headers map[string]string `yaml:"headers"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

func defaultConfig() *Config {
	return &Config{
		RPC: RPCConfig{
			URL:     defaultRPCURL,
			Timeout: 30 * time.Second,
		},
		Concurrency: 8,
		Log: LogConfig{
			Level:      "warn",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if config.Concurrency < 1 {
		return nil, errors.Errorf("invalid concurrency %d", config.Concurrency)
	}
	return config, nil
}
