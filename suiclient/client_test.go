// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suiclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testObjectID = "0x5e3f6c0e1c6d1a4a3b1b1e0b2a3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e"

type fakeSuiService struct {
	objects     map[string]*ObjectResponse
	lastOptions *ObjectDataOptions
}

func (s *fakeSuiService) GetObject(id string, options *ObjectDataOptions) (*ObjectResponse, error) {
	s.lastOptions = options
	if id == "0xbad" {
		return nil, errors.New("invalid params")
	}
	if res, ok := s.objects[id]; ok {
		return res, nil
	}
	return &ObjectResponse{Error: &ObjectResponseError{Code: "notExists", ObjectID: id}}, nil
}

func (s *fakeSuiService) MultiGetObjects(ids []string, options *ObjectDataOptions) ([]*ObjectResponse, error) {
	res := make([]*ObjectResponse, len(ids))
	for i, id := range ids {
		res[i], _ = s.GetObject(id, options)
	}
	return res, nil
}

func newTestClient(t *testing.T, svc *fakeSuiService, opts ...ClientOption) *Client {
	t.Helper()
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("sui", svc))
	client := NewClient(rpc.DialInProc(srv), opts...)
	t.Cleanup(func() {
		client.Close()
		srv.Stop()
	})
	return client
}

func testObject() *ObjectResponse {
	return &ObjectResponse{Data: &ObjectData{
		ObjectID: testObjectID,
		Version:  "42",
		Digest:   EncodeDigest([32]byte{1, 2, 3}),
		Type:     "0x2::coin::Coin<0x2::sui::SUI>",
		Content: &ParsedData{
			DataType: DataTypeMoveObject,
			Type:     "0x2::coin::Coin<0x2::sui::SUI>",
			Fields: map[string]any{
				"balance": "1000",
				"id":      map[string]any{"id": testObjectID},
			},
		},
	}}
}

func TestGetObject(t *testing.T) {
	svc := &fakeSuiService{objects: map[string]*ObjectResponse{testObjectID: testObject()}}
	client := newTestClient(t, svc)

	res, err := client.GetObject(context.Background(), testObjectID, nil)
	require.NoError(t, err)
	require.NotNil(t, res.Data)
	assert.Nil(t, res.Error)
	assert.Equal(t, "0x2::coin::Coin<0x2::sui::SUI>", res.Data.Content.Type)
	assert.Equal(t, "1000", res.Data.Content.Fields["balance"])
	require.NotNil(t, svc.lastOptions)
	assert.True(t, svc.lastOptions.ShowContent)
	assert.True(t, svc.lastOptions.ShowType)

	ref, err := res.Data.Ref()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), ref.Version)
	assert.Equal(t, [32]byte{1, 2, 3}, ref.Digest)
	assert.Equal(t, res.Data.Digest, ref.DigestString())
	assert.Equal(t, testObjectID, ref.ObjectID.String())
}

func TestGetObjectErrorObject(t *testing.T) {
	client := newTestClient(t, &fakeSuiService{})

	res, err := client.GetObject(context.Background(), "0x1234", &ObjectDataOptions{ShowBcs: true})
	require.NoError(t, err)
	assert.Nil(t, res.Data)
	require.NotNil(t, res.Error)
	assert.Equal(t, "notExists", res.Error.Code)
	assert.Equal(t, "0x1234", res.Error.ObjectID)
}

func TestGetObjectTransportError(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg, "test")
	require.NoError(t, err)
	client := newTestClient(t, &fakeSuiService{}, WithMetrics(metrics))

	_, err = client.GetObject(context.Background(), "0xbad", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), MethodGetObject)

	_, err = client.GetObject(context.Background(), "0x1", nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestCounter.WithLabelValues(MethodGetObject, "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requestCounter.WithLabelValues(MethodGetObject, "ok")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.requestDuration))
}

func TestMultiGetObjects(t *testing.T) {
	svc := &fakeSuiService{objects: map[string]*ObjectResponse{testObjectID: testObject()}}
	client := newTestClient(t, svc)

	res, err := client.MultiGetObjects(context.Background(), []string{testObjectID, "0x99"}, nil)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.NotNil(t, res[0].Data)
	require.NotNil(t, res[1].Error)
	assert.Equal(t, "notExists", res[1].Error.Code)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observe(MethodGetObject, time.Now(), nil)
	})
}

func TestDecodeDigest(t *testing.T) {
	_, err := DecodeDigest("abc")
	require.Error(t, err)

	digest := [32]byte{0xff, 0x01}
	decoded, err := DecodeDigest(EncodeDigest(digest))
	require.NoError(t, err)
	assert.Equal(t, digest, decoded)
}

func TestRawDataBytes(t *testing.T) {
	raw := &RawData{DataType: DataTypeMoveObject, BcsBytes: "AQID"}
	data, err := raw.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)
}
