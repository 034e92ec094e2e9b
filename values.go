// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"
	"unicode/utf8"

	"github.com/WayneAl/sui-client-gen/bcs"
	"github.com/WayneAl/sui-client-gen/movetypes"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// decodePrimitive normalises a scalar value to its field representation.
// All three input forms share it: raw BCS values, RPC numbers and JSON strings.
func (r *Reified) decodePrimitive(raw any) (any, error) {
	switch r.tag.Kind {
	case movetypes.BoolKind:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", raw)
		}
		return b, nil
	case movetypes.U8Kind:
		n, err := bcs.ToUint64(raw, 8)
		return uint8(n), err
	case movetypes.U16Kind:
		n, err := bcs.ToUint64(raw, 16)
		return uint16(n), err
	case movetypes.U32Kind:
		n, err := bcs.ToUint64(raw, 32)
		return uint32(n), err
	case movetypes.U64Kind:
		return bcs.ToUint64(raw, 64)
	case movetypes.U128Kind:
		n, err := bcs.ToUint256(raw, 128)
		if err != nil {
			return nil, err
		}
		return new(uint256.Int).Set(n), nil
	case movetypes.U256Kind:
		n, err := bcs.ToUint256(raw, 256)
		if err != nil {
			return nil, err
		}
		return new(uint256.Int).Set(n), nil
	case movetypes.AddressKind:
		return toAddress(raw)
	}
	return nil, fmt.Errorf("cannot decode %s", r.name)
}

func toAddress(raw any) (movetypes.Address, error) {
	if addr, ok := raw.(movetypes.Address); ok {
		return addr, nil
	}
	addr, err := bcs.ToAddressBytes(raw)
	if err != nil {
		return movetypes.Address{}, err
	}
	return movetypes.Address(addr), nil
}

// toBytes accepts []byte or a sequence of small integers.
func toBytes(raw any) ([]byte, error) {
	switch v := raw.(type) {
	case []byte:
		return append([]byte{}, v...), nil
	case []any:
		buf := make([]byte, len(v))
		for i, item := range v {
			n, err := bcs.ToUint64(item, 8)
			if err != nil {
				return nil, fmt.Errorf("byte %d: %w", i, err)
			}
			buf[i] = uint8(n)
		}
		return buf, nil
	}
	return nil, fmt.Errorf("expected byte sequence, got %T", raw)
}

// decodeVector decodes each element with decodeElem, vector<u8> becomes []byte.
func (r *Reified) decodeVector(raw any, decodeElem func(elem *Reified, raw any) (any, error)) (any, error) {
	if r.elem.tag.Kind == movetypes.U8Kind {
		return toBytes(raw)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected %s as array, got %T", r.name, raw)
	}

	values := make([]any, len(items))
	for i, item := range items {
		value, err := decodeElem(r.elem, item)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", r.name, i, err)
		}
		values[i] = value
	}
	return values, nil
}

func rawField(raw any, name string) (any, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected struct fields, got %T", raw)
	}
	value, ok := fields[name]
	if !ok {
		return nil, fmt.Errorf("missing %q", name)
	}
	return value, nil
}

func decodeUTF8(buf []byte, ascii bool) (string, error) {
	if ascii {
		for i, c := range buf {
			if c >= 0x80 {
				return "", fmt.Errorf("non ascii byte 0x%02x at %d", c, i)
			}
		}
	} else if !utf8.Valid(buf) {
		return "", fmt.Errorf("invalid utf8 string")
	}
	return string(buf), nil
}

// optionElem returns the element binding of an Option.
func (r *Reified) optionElem() *Reified {
	elem, _ := r.typeArgs[0].(*Reified)
	return elem
}

func (c *Codec) trace(msg string, fields ...zap.Field) {
	if c.verbose {
		c.logger.Debug(msg, fields...)
	}
}
