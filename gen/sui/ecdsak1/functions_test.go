// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package ecdsak1

import (
	"testing"

	"github.com/WayneAl/sui-client-gen/txb"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moveCall(t *testing.T, b *txb.Builder, index int) map[string]any {
	t.Helper()
	tx, err := b.Build()
	require.NoError(t, err)
	return tx.Commands[index].(map[string]any)["MoveCall"].(map[string]any)
}

func TestSecp256k1Verify(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	msg := []byte("hello sui")

	sig, err := Sign(key, msg, HashSHA256)
	require.NoError(t, err)
	require.Len(t, sig, 64)
	pubkey := CompressedPublicKey(key)
	require.Len(t, pubkey, 33)

	b := txb.NewBuilder(nil)
	result, err := Secp256k1Verify(b, Secp256k1VerifyArgs{
		Signature: sig,
		PublicKey: pubkey,
		Msg:       msg,
		Hash:      HashSHA256,
	})
	require.NoError(t, err)
	assert.Equal(t, txb.ResultArgument, result.Kind)

	call := moveCall(t, b, 0)
	assert.Equal(t, "ecdsa_k1", call["module"])
	assert.Equal(t, "secp256k1_verify", call["function"])
	assert.Len(t, call["arguments"], 4)

	tx, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"Pure": []byte{1}}, tx.Inputs[3])
	_, err = tx.Bytes()
	require.NoError(t, err)
}

func TestSecp256k1Ecrecover(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	msg := []byte("recover me")

	sig, err := SignRecoverable(key, msg, HashKeccak256)
	require.NoError(t, err)
	require.Len(t, sig, 65)

	recovered, err := crypto.SigToPub(crypto.Keccak256(msg), sig)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), crypto.PubkeyToAddress(*recovered))

	b := txb.NewBuilder(nil)
	signature := b.PureBytes(append([]byte{65}, sig...))
	_, err = Secp256k1Ecrecover(b, Secp256k1EcrecoverArgs{
		Signature: signature,
		Msg:       msg,
		Hash:      HashKeccak256,
	})
	require.NoError(t, err)

	call := moveCall(t, b, 0)
	assert.Equal(t, "secp256k1_ecrecover", call["function"])
	args := call["arguments"].([]any)
	assert.Equal(t, map[string]any{"Input": uint16(0)}, args[0])
}

func TestDecompressPubkey(t *testing.T) {
	b := txb.NewBuilder(nil)
	_, err := DecompressPubkey(b, []byte{2, 1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "decompress_pubkey", moveCall(t, b, 0)["function"])

	_, err = Secp256k1Ecrecover(b, Secp256k1EcrecoverArgs{Signature: []byte{}, Msg: []byte{}, Hash: 300})
	require.ErrorContains(t, err, "argument 2")
}

func TestUnknownHash(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = Sign(key, []byte("x"), 7)
	require.Error(t, err)
}
