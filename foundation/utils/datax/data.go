// File: data.go
// Title: Data Predicates
// Description: Integrality, data type, monotonicity, equality and closeness
//              checks over unwrapped payloads.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Closeness via gonum scalar

package datax

import (
	"slices"
	"strings"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/mathx"
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultRelTol is the relative tolerance of IsClose
const DefaultRelTol = 1e-5

// Order selects the direction IsMonotonic accepts
type Order int

const (
	Either Order = iota
	Increasing
	Decreasing
)

// String returns the order name
func (o Order) String() string {
	switch o {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "either"
	}
}

// ParseOrder resolves an order name. The empty string means Either.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "either":
		return Either, nil
	case "increasing":
		return Increasing, nil
	case "decreasing":
		return Decreasing, nil
	}
	return Either, numerrors.NotFound(numerrors.ModuleDatax, "order", s)
}

// IsIntegral reports whether a, or the payload of a, is a Go integer.
// Booleans and arrays are not integral.
func IsIntegral(a any) bool {
	x := quantity.Unwrap(a)
	if _, isBool := x.(bool); isBool {
		return false
	}
	return mathx.KindOf(x) == mathx.Int
}

// HasDType reports whether the data of a converts to an array with one of
// the given dtypes. Unconvertible data has no dtype.
func HasDType(a any, dtypes ...arrayx.DType) bool {
	arr, err := arrayx.From(quantity.Unwrap(a))
	if err != nil {
		return false
	}
	return slices.Contains(dtypes, arr.DType())
}

// IsMonotonic reports whether the data of a is monotonic along its last
// axis in the given order. Without strict, equal neighbours are allowed.
func IsMonotonic(a any, order Order, strict bool) (bool, error) {
	arr, err := arrayx.From(quantity.Unwrap(a))
	if err == nil {
		arr, err = arrayx.Diff(arr)
	}
	if err != nil {
		return false, numerrors.PayloadType(numerrors.ModuleDatax, "ismonotonic", a, err)
	}

	increasing, decreasing := true, true
	for _, d := range arr.Floats() {
		if strict {
			increasing = increasing && d > 0
			decreasing = decreasing && d < 0
		} else {
			increasing = increasing && d >= 0
			decreasing = decreasing && d <= 0
		}
	}

	switch order {
	case Increasing:
		return increasing, nil
	case Decreasing:
		return decreasing, nil
	default:
		return increasing || decreasing, nil
	}
}

// IsEqual reports whether a and b have numerically equal data of the same
// shape, regardless of the wrappers around them
func IsEqual(a, b any) bool {
	return arrayx.ArrayEqual(quantity.Unwrap(a), quantity.Unwrap(b))
}

// IsClose reports whether b is in, or within DefaultRelTol of a member
// of, the data of a
func IsClose(a, b any) (bool, error) {
	return IsCloseWithin(a, b, DefaultRelTol, 0)
}

// IsCloseWithin is IsClose with explicit tolerances. A member x matches
// when |b - x| <= atol or |b - x| <= rtol*max(|b|, |x|). Exact containment
// is checked first and targets outside the data range never match.
func IsCloseWithin(a, b any, rtol, atol float64) (bool, error) {
	arr, err := arrayx.From(quantity.Unwrap(a))
	if err != nil {
		return false, numerrors.PayloadType(numerrors.ModuleDatax, "isclose", a, err)
	}
	target, err := mathx.ToFloat64(quantity.Unwrap(b))
	if err != nil {
		return false, numerrors.PayloadType(numerrors.ModuleDatax, "isclose", b, err)
	}

	near := func(x float64) bool {
		return scalar.EqualWithinAbsOrRel(target, x, atol, rtol)
	}

	if arr.NDim() == 0 {
		x := arr.Flat(0)
		return x == target || near(x), nil
	}
	if slices.Contains(arr.Floats(), target) {
		return true, nil
	}
	if arr.Size() == 0 {
		return false, nil
	}
	lo, _ := arrayx.Min(arr)
	hi, _ := arrayx.Max(arr)
	if target < lo || target > hi {
		return false, nil
	}
	return slices.ContainsFunc(arr.Floats(), near), nil
}
