// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file converts Vector3 to and from cty, so positions can be written
// in config files as `[x, y, z]`.
package model

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// CtyValue returns the vector as a three-element list of numbers.
func (v Vector3) CtyValue() cty.Value {
	return cty.ListVal([]cty.Value{
		cty.NumberFloatVal(v.X),
		cty.NumberFloatVal(v.Y),
		cty.NumberFloatVal(v.Z),
	})
}

// VectorFromCty decodes a list or tuple of two or three numbers. A missing
// Z component defaults to zero.
func VectorFromCty(val cty.Value) (Vector3, error) {
	if val.IsNull() {
		return ZeroVector, fmt.Errorf("vector must not be null")
	}
	if !val.IsWhollyKnown() {
		return ZeroVector, fmt.Errorf("vector must be known")
	}

	list, err := convert.Convert(val, cty.List(cty.Number))
	if err != nil {
		return ZeroVector, fmt.Errorf("vector must be a list of numbers: %w", err)
	}

	var parts []float64
	if err := gocty.FromCtyValue(list, &parts); err != nil {
		return ZeroVector, fmt.Errorf("failed to decode vector: %w", err)
	}

	switch len(parts) {
	case 2:
		return Vector3{X: parts[0], Y: parts[1]}, nil
	case 3:
		return Vector3{X: parts[0], Y: parts[1], Z: parts[2]}, nil
	default:
		return ZeroVector, fmt.Errorf("vector must have 2 or 3 components, got %d", len(parts))
	}
}
