// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package ecdsak1 binds the move functions of the 0x2::ecdsa_k1 module and
// signs messages in the format they verify.
package ecdsak1

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"

	"github.com/WayneAl/sui-client-gen/txb"
	"github.com/ethereum/go-ethereum/crypto"
)

// PublishedAt is the address the module is published at.
const PublishedAt = "0x2"

// Hash functions selectable by the hash argument.
const (
	HashKeccak256 uint8 = 0
	HashSHA256    uint8 = 1
)

// DecompressPubkey adds a call of ecdsa_k1::decompress_pubkey. pubkey is a
// txb.Argument or a vector<u8> value.
func DecompressPubkey(b *txb.Builder, pubkey any) (txb.Argument, error) {
	pubkeyArg, err := b.PureOrArgument("vector<u8>", pubkey)
	if err != nil {
		return txb.Argument{}, err
	}
	return b.MoveCall(PublishedAt+"::ecdsa_k1::decompress_pubkey", nil, pubkeyArg)
}

// Secp256k1EcrecoverArgs holds the arguments of secp256k1_ecrecover,
// each is a txb.Argument or a pure value.
type Secp256k1EcrecoverArgs struct {
	Signature any // vector<u8>
	Msg       any // vector<u8>
	Hash      any // u8
}

func Secp256k1Ecrecover(b *txb.Builder, args Secp256k1EcrecoverArgs) (txb.Argument, error) {
	callArgs, err := pureArgs(b,
		pureArg{"vector<u8>", args.Signature},
		pureArg{"vector<u8>", args.Msg},
		pureArg{"u8", args.Hash},
	)
	if err != nil {
		return txb.Argument{}, err
	}
	return b.MoveCall(PublishedAt+"::ecdsa_k1::secp256k1_ecrecover", nil, callArgs...)
}

// Secp256k1VerifyArgs holds the arguments of secp256k1_verify,
// each is a txb.Argument or a pure value.
type Secp256k1VerifyArgs struct {
	Signature any // vector<u8>
	PublicKey any // vector<u8>
	Msg       any // vector<u8>
	Hash      any // u8
}

func Secp256k1Verify(b *txb.Builder, args Secp256k1VerifyArgs) (txb.Argument, error) {
	callArgs, err := pureArgs(b,
		pureArg{"vector<u8>", args.Signature},
		pureArg{"vector<u8>", args.PublicKey},
		pureArg{"vector<u8>", args.Msg},
		pureArg{"u8", args.Hash},
	)
	if err != nil {
		return txb.Argument{}, err
	}
	return b.MoveCall(PublishedAt+"::ecdsa_k1::secp256k1_verify", nil, callArgs...)
}

type pureArg struct {
	typeName string
	value    any
}

func pureArgs(b *txb.Builder, args ...pureArg) ([]txb.Argument, error) {
	out := make([]txb.Argument, len(args))
	for i, arg := range args {
		callArg, err := b.PureOrArgument(arg.typeName, arg.value)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = callArg
	}
	return out, nil
}

func digest(msg []byte, hash uint8) ([]byte, error) {
	switch hash {
	case HashKeccak256:
		return crypto.Keccak256(msg), nil
	case HashSHA256:
		sum := sha256.Sum256(msg)
		return sum[:], nil
	}
	return nil, fmt.Errorf("unknown hash function %d", hash)
}

// SignRecoverable signs msg and returns the 65 byte [r, s, v] signature
// accepted by secp256k1_ecrecover.
func SignRecoverable(key *ecdsa.PrivateKey, msg []byte, hash uint8) ([]byte, error) {
	h, err := digest(msg, hash)
	if err != nil {
		return nil, err
	}
	return crypto.Sign(h, key)
}

// Sign signs msg and returns the 64 byte [r, s] signature accepted by secp256k1_verify.
func Sign(key *ecdsa.PrivateKey, msg []byte, hash uint8) ([]byte, error) {
	sig, err := SignRecoverable(key, msg, hash)
	if err != nil {
		return nil, err
	}
	return sig[:64], nil
}

// CompressedPublicKey returns the 33 byte public key accepted by secp256k1_verify.
func CompressedPublicKey(key *ecdsa.PrivateKey) []byte {
	return crypto.CompressPubkey(&key.PublicKey)
}
