// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suiclient

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/btcsuite/btcutil/base58"
)

// DataTypeMoveObject is the parsed data type of move objects.
const DataTypeMoveObject = "moveObject"

// ObjectDataOptions selects the parts of an object returned by sui_getObject.
type ObjectDataOptions struct {
	ShowType                bool `json:"showType,omitempty"`
	ShowOwner               bool `json:"showOwner,omitempty"`
	ShowPreviousTransaction bool `json:"showPreviousTransaction,omitempty"`
	ShowDisplay             bool `json:"showDisplay,omitempty"`
	ShowContent             bool `json:"showContent,omitempty"`
	ShowBcs                 bool `json:"showBcs,omitempty"`
	ShowStorageRebate       bool `json:"showStorageRebate,omitempty"`
}

// ObjectResponse is the result of sui_getObject. Exactly one of Data and Error is set.
type ObjectResponse struct {
	Data  *ObjectData          `json:"data,omitempty"`
	Error *ObjectResponseError `json:"error,omitempty"`
}

// ObjectResponseError is the error object the node returns for ids it cannot serve.
type ObjectResponseError struct {
	Code     string `json:"code"`
	ObjectID string `json:"object_id,omitempty"`
	Version  string `json:"version,omitempty"`
	Digest   string `json:"digest,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (e *ObjectResponseError) String() string {
	return e.Code
}

type ObjectData struct {
	ObjectID            string      `json:"objectId"`
	Version             string      `json:"version"`
	Digest              string      `json:"digest"`
	Type                string      `json:"type,omitempty"`
	Owner               any         `json:"owner,omitempty"`
	PreviousTransaction string      `json:"previousTransaction,omitempty"`
	StorageRebate       string      `json:"storageRebate,omitempty"`
	Content             *ParsedData `json:"content,omitempty"`
	Bcs                 *RawData    `json:"bcs,omitempty"`
}

// Ref returns the object reference of the object version.
func (d *ObjectData) Ref() (ObjectRef, error) {
	id, err := movetypes.ParseAddress(d.ObjectID)
	if err != nil {
		return ObjectRef{}, fmt.Errorf("invalid object id: %w", err)
	}
	version, err := strconv.ParseUint(d.Version, 10, 64)
	if err != nil {
		return ObjectRef{}, fmt.Errorf("invalid object version %q: %w", d.Version, err)
	}
	digest, err := DecodeDigest(d.Digest)
	if err != nil {
		return ObjectRef{}, err
	}
	return ObjectRef{ObjectID: id, Version: version, Digest: digest}, nil
}

// ParsedData is the JSON rendering of an object's contents.
type ParsedData struct {
	DataType          string         `json:"dataType"`
	Type              string         `json:"type,omitempty"`
	HasPublicTransfer bool           `json:"hasPublicTransfer,omitempty"`
	Fields            map[string]any `json:"fields,omitempty"`
}

// RawData holds the BCS bytes of an object's contents.
type RawData struct {
	DataType          string `json:"dataType"`
	Type              string `json:"type,omitempty"`
	HasPublicTransfer bool   `json:"hasPublicTransfer,omitempty"`
	Version           string `json:"version,omitempty"`
	BcsBytes          string `json:"bcsBytes,omitempty"`
}

// Bytes decodes the base64 BCS payload.
func (d *RawData) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(d.BcsBytes)
}

// ObjectRef identifies one version of an object.
type ObjectRef struct {
	ObjectID movetypes.Address
	Version  uint64
	Digest   [32]byte
}

// DigestString returns the base58 rendering of the digest.
func (r ObjectRef) DigestString() string {
	return EncodeDigest(r.Digest)
}

// DecodeDigest parses a base58 object or transaction digest.
func DecodeDigest(s string) ([32]byte, error) {
	var digest [32]byte
	raw := base58.Decode(s)
	if len(raw) != len(digest) {
		return digest, fmt.Errorf("invalid digest %q: expected 32 bytes, got %d", s, len(raw))
	}
	copy(digest[:], raw)
	return digest, nil
}

func EncodeDigest(digest [32]byte) string {
	return base58.Encode(digest[:])
}
