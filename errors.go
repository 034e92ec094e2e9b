// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package suigen

import (
	"fmt"
	"strings"
)

var (
	ErrTypeMismatch    = fmt.Errorf("type mismatch")
	ErrTypeArgMismatch = fmt.Errorf("type argument mismatch")
	ErrMalformedField  = fmt.Errorf("malformed field")
	ErrPhantomDecode   = fmt.Errorf("phantom type argument cannot be decoded")
	ErrNotStruct       = fmt.Errorf("type is not a struct")
	ErrFetch           = fmt.Errorf("error fetching object")
	ErrNotInstance     = fmt.Errorf("object is not an instance of the requested struct")
	ErrNotObject       = fmt.Errorf("not an object")
)

// TypeMismatchError reports an input whose type name does not denote the expected struct.
type TypeMismatchError struct {
	Struct string // short struct name, e.g. "Bar"
	Got    string // offending type name
	JSON   bool   // raised by the JSON decoder
}

func (e *TypeMismatchError) Error() string {
	if e.JSON {
		return fmt.Sprintf("not a %s json object", e.Struct)
	}
	return fmt.Sprintf("not a %s type: %s", e.Struct, e.Got)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// TypeArgMismatchError reports type arguments that differ from the reified bindings.
type TypeArgMismatchError struct {
	TypeName string
	Expected []string
	Got      []string
}

func (e *TypeArgMismatchError) Error() string {
	return fmt.Sprintf("provided type arguments do not match for %s: expected <%s>, got <%s>",
		e.TypeName, strings.Join(e.Expected, ", "), strings.Join(e.Got, ", "))
}

func (e *TypeArgMismatchError) Unwrap() error {
	return ErrTypeArgMismatch
}

// MalformedFieldError reports a missing field or a value of the wrong shape.
type MalformedFieldError struct {
	Struct string
	Field  string
	Err    error
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %s.%s: %v", e.Struct, e.Field, e.Err)
}

func (e *MalformedFieldError) Is(target error) bool {
	return target == ErrMalformedField
}

func (e *MalformedFieldError) Unwrap() error {
	return e.Err
}

// FetchError reports an error object returned by the node for a requested id.
type FetchError struct {
	Struct string
	ID     string
	Code   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error fetching %s object at id %s: %s", e.Struct, e.ID, e.Code)
}

func (e *FetchError) Unwrap() error {
	return ErrFetch
}

// NotInstanceError reports a fetched object of a different type.
type NotInstanceError struct {
	Struct string
	ID     string
}

func (e *NotInstanceError) Error() string {
	return fmt.Sprintf("object at id %s is not a %s object", e.ID, e.Struct)
}

func (e *NotInstanceError) Unwrap() error {
	return ErrNotInstance
}

func malformed(structName, field string, format string, args ...any) error {
	return &MalformedFieldError{
		Struct: structName,
		Field:  field,
		Err:    fmt.Errorf(format, args...),
	}
}
