// File: nearest.go
// Title: Nearest-Value Search
// Description: Finds the element of an array closest to a target, optionally
//              constrained to lie above or below it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package datax

import (
	"math"
	"strings"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

// Bound constrains the result of FindNearest relative to the target
type Bound int

const (
	// Unbounded accepts the closest value on either side
	Unbounded Bound = iota
	// Lower treats the target as a lower bound: the result is >= target
	Lower
	// Upper treats the target as an upper bound: the result is <= target
	Upper
)

// String returns the bound name
func (b Bound) String() string {
	switch b {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	default:
		return "none"
	}
}

// ParseBound resolves a bound name. The empty string means Unbounded.
func ParseBound(s string) (Bound, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return Unbounded, nil
	case "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	}
	return Unbounded, numerrors.NotFound(numerrors.ModuleDatax, "bound", s)
}

// Nearest is the result of FindNearest. Index has one entry per dimension
// of the searched array.
type Nearest struct {
	Index []int
	Value float64
}

// FindNearest returns the element of values closest to target. With a
// bound, the search walks in flat order from the closest element until the
// constraint holds; a walk past the end stops at the last element and a
// walk before the start stops at the first.
func FindNearest(values, target any, bound Bound) (Nearest, error) {
	arr, err := arrayx.From(quantity.Unwrap(values))
	if err != nil {
		return Nearest{}, numerrors.PayloadType(numerrors.ModuleDatax, "nearest", values, err)
	}
	t, err := mathx.ToFloat64(quantity.Unwrap(target))
	if err != nil {
		return Nearest{}, numerrors.PayloadType(numerrors.ModuleDatax, "nearest", target, err)
	}
	if arr.NDim() == 0 {
		arr, _ = arr.Reshape(1)
	}

	distance := make([]float64, arr.Size())
	for i := range distance {
		distance[i] = math.Abs(arr.Flat(i) - t)
	}
	index, err := arrayx.ArgMin(arrayx.FromFloats(distance...))
	if err != nil {
		return Nearest{}, err
	}

	switch bound {
	case Lower:
		for index < arr.Size() && arr.Flat(index) < t {
			index++
		}
		index = min(index, arr.Size()-1)
	case Upper:
		for index >= 0 && arr.Flat(index) > t {
			index--
		}
		index = max(index, 0)
	}

	return Nearest{
		Index: arrayx.Unravel(index, arr.Shape()),
		Value: arr.Flat(index),
	}, nil
}
