// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

// Package groth16 binds the structs of the 0x2::groth16 module.
package groth16

import (
	suigen "github.com/WayneAl/sui-client-gen"
	"github.com/WayneAl/sui-client-gen/movetypes"
)

var (
	CurveDescriptor = movetypes.MustDefineStruct("0x2::groth16::Curve", nil, []movetypes.FieldDef{
		{Name: "id", Type: "u8"},
	})
	PreparedVerifyingKeyDescriptor = movetypes.MustDefineStruct("0x2::groth16::PreparedVerifyingKey", nil, []movetypes.FieldDef{
		{Name: "vk_gamma_abc_g1_bytes", Type: "vector<u8>"},
		{Name: "alpha_g1_beta_g2_bytes", Type: "vector<u8>"},
		{Name: "gamma_g2_neg_pc_bytes", Type: "vector<u8>"},
		{Name: "delta_g2_neg_pc_bytes", Type: "vector<u8>"},
	})
	PublicProofInputsDescriptor = movetypes.MustDefineStruct("0x2::groth16::PublicProofInputs", nil, []movetypes.FieldDef{
		{Name: "bytes", Type: "vector<u8>"},
	})
	ProofPointsDescriptor = movetypes.MustDefineStruct("0x2::groth16::ProofPoints", nil, []movetypes.FieldDef{
		{Name: "bytes", Type: "vector<u8>"},
	})
)

func init() {
	movetypes.DefaultRegistry().MustRegister(
		CurveDescriptor,
		PreparedVerifyingKeyDescriptor,
		PublicProofInputsDescriptor,
		ProofPointsDescriptor,
	)
}

type Curve struct {
	ID uint8 `move:"id"`
}

var CurveType = suigen.NewStructType[Curve](CurveDescriptor)

func IsCurve(typ string) bool {
	return CurveDescriptor.Matches(typ)
}

type PreparedVerifyingKey struct {
	VkGammaAbcG1Bytes  []byte `move:"vk_gamma_abc_g1_bytes"`
	AlphaG1BetaG2Bytes []byte `move:"alpha_g1_beta_g2_bytes"`
	GammaG2NegPcBytes  []byte `move:"gamma_g2_neg_pc_bytes"`
	DeltaG2NegPcBytes  []byte `move:"delta_g2_neg_pc_bytes"`
}

var PreparedVerifyingKeyType = suigen.NewStructType[PreparedVerifyingKey](PreparedVerifyingKeyDescriptor)

func IsPreparedVerifyingKey(typ string) bool {
	return PreparedVerifyingKeyDescriptor.Matches(typ)
}

type PublicProofInputs struct {
	Bytes []byte `move:"bytes"`
}

var PublicProofInputsType = suigen.NewStructType[PublicProofInputs](PublicProofInputsDescriptor)

func IsPublicProofInputs(typ string) bool {
	return PublicProofInputsDescriptor.Matches(typ)
}

type ProofPoints struct {
	Bytes []byte `move:"bytes"`
}

var ProofPointsType = suigen.NewStructType[ProofPoints](ProofPointsDescriptor)

func IsProofPoints(typ string) bool {
	return ProofPointsDescriptor.Matches(typ)
}
