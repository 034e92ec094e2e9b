// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package suiclient is a minimal Sui JSON-RPC client covering the object
// read endpoints used by the struct codec.
package suiclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

const (
	MethodGetObject       = "sui_getObject"
	MethodMultiGetObjects = "sui_multiGetObjects"
)

// Client talks to a Sui full node.
type Client struct {
	rpc     *rpc.Client
	logger  *zap.Logger
	metrics *Metrics
	timeout time.Duration
}

type ClientOption func(*clientOptions)

type clientOptions struct {
	logger     *zap.Logger
	metrics    *Metrics
	timeout    time.Duration
	headers    http.Header
	httpClient *http.Client
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

func WithMetrics(metrics *Metrics) ClientOption {
	return func(o *clientOptions) {
		o.metrics = metrics
	}
}

// WithTimeout bounds every request, zero disables the bound.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHeader adds a header to every HTTP request. Only used by Dial.
func WithHeader(key, value string) ClientOption {
	return func(o *clientOptions) {
		if o.headers == nil {
			o.headers = http.Header{}
		}
		o.headers.Add(key, value)
	}
}

// WithHTTPClient replaces the HTTP client. Only used by Dial.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

func applyOptions(opts []ClientOption) *clientOptions {
	options := &clientOptions{
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = zap.NewNop()
	}
	return options
}

// Dial connects to the node at url.
func Dial(ctx context.Context, url string, opts ...ClientOption) (*Client, error) {
	options := applyOptions(opts)

	var dialOpts []rpc.ClientOption
	if options.headers != nil {
		dialOpts = append(dialOpts, rpc.WithHeaders(options.headers))
	}
	if options.httpClient != nil {
		dialOpts = append(dialOpts, rpc.WithHTTPClient(options.httpClient))
	}

	rpcClient, err := rpc.DialOptions(ctx, url, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return newClient(rpcClient, options), nil
}

// NewClient wraps an established rpc connection.
func NewClient(rpcClient *rpc.Client, opts ...ClientOption) *Client {
	return newClient(rpcClient, applyOptions(opts))
}

func newClient(rpcClient *rpc.Client, options *clientOptions) *Client {
	return &Client{
		rpc:     rpcClient,
		logger:  options.logger,
		metrics: options.metrics,
		timeout: options.timeout,
	}
}

func (c *Client) Close() {
	c.rpc.Close()
}

func (c *Client) call(ctx context.Context, result any, method string, args ...any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	err := c.rpc.CallContext(ctx, result, method, args...)
	c.metrics.observe(method, start, err)
	if err != nil {
		c.logger.Debug("rpc call failed", zap.String("method", method), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return fmt.Errorf("%s: %w", method, err)
	}
	c.logger.Debug("rpc call", zap.String("method", method), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// GetObject returns the object with the given id. A missing or deleted
// object is reported through ObjectResponse.Error, not as an error.
func (c *Client) GetObject(ctx context.Context, id string, options *ObjectDataOptions) (*ObjectResponse, error) {
	if options == nil {
		options = &ObjectDataOptions{ShowType: true, ShowContent: true}
	}
	var res ObjectResponse
	if err := c.call(ctx, &res, MethodGetObject, id, options); err != nil {
		return nil, err
	}
	return &res, nil
}

// MultiGetObjects returns the objects with the given ids in request order.
func (c *Client) MultiGetObjects(ctx context.Context, ids []string, options *ObjectDataOptions) ([]*ObjectResponse, error) {
	if options == nil {
		options = &ObjectDataOptions{ShowType: true, ShowContent: true}
	}
	var res []*ObjectResponse
	if err := c.call(ctx, &res, MethodMultiGetObjects, ids, options); err != nil {
		return nil, err
	}
	if len(res) != len(ids) {
		return nil, fmt.Errorf("%s: requested %d objects, got %d", MethodMultiGetObjects, len(ids), len(res))
	}
	return res, nil
}
