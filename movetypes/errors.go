// Copyright (c) 2025 WayneAl
// SPDX-License-Identifier: Apache-2.0
// This file is part of the sui-client-gen library.

package movetypes

import "fmt"

var (
	ErrUnknownStruct = fmt.Errorf("unknown struct")
	ErrTypeArgCount  = fmt.Errorf("wrong number of type arguments")
	ErrMissingField  = fmt.Errorf("missing field")
)
