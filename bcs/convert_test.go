// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package bcs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToUint64Floats(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  uint64
		err   error
	}{
		{"integral", 42.0, 42, nil},
		{"largest_exact", float64(1<<53 - 1), 1<<53 - 1, nil},
		{"above_exact_range", float64(1 << 53), 0, ErrValueRange},
		{"rounded", 9007199254740993.0, 0, ErrValueRange},
		{"max_u64_rounded", 18446744073709551615.0, 0, ErrValueRange},
		{"negative", -1.0, 0, ErrValueRange},
		{"fraction", 0.5, 0, ErrValueRange},
		{"decimal_string", "9007199254740993", 9007199254740993, nil},
		{"json_number", json.Number("18446744073709551615"), 18446744073709551615, nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ToUint64(test.value, 64)
			if test.err != nil {
				require.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestToUint256RejectsRoundedFloat(t *testing.T) {
	_, err := ToUint256(9007199254740993.0, 128)
	require.ErrorIs(t, err, ErrValueRange)

	got, err := ToUint256("9007199254740993", 128)
	require.NoError(t, err)
	require.Equal(t, "9007199254740993", got.Dec())
}

func TestSerializeRejectsRoundedFloat(t *testing.T) {
	_, err := SerializeToBytes(U64(), 9007199254740993.0)
	require.ErrorIs(t, err, ErrValueRange)

	encoded, err := SerializeToBytes(U64(), 42.0)
	require.NoError(t, err)
	require.Equal(t, fromHex("0x2a00000000000000"), encoded)
}
