// File: types.go
// Title: Shipped Quantity Types
// Description: Real and Value wrap any Go value, Sequence wraps an
//              arrayx.Array and Decimal wraps a mathx.Decimal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package quantities

import (
	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/mixins"
	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

func nonNil(typeName string, raw any) error {
	if raw == nil {
		cause := numerrors.InvalidInput(numerrors.ModuleQuantities, "construct", raw, "non-nil payload")
		return numerrors.Construction(typeName, raw, cause)
	}
	return nil
}

// Real is a totally ordered quantity over any payload
type Real struct {
	mixins.Real[any, Real]
}

// NewReal wraps data
func NewReal(data any) Real {
	return Real{mixins.NewReal[any, Real](data)}
}

// FromRaw implements quantity.Rewrapper. Any non-nil result is accepted.
func (Real) FromRaw(raw any) (Real, error) {
	if err := nonNil("Real", raw); err != nil {
		return Real{}, err
	}
	return NewReal(raw), nil
}

// Value is a singular quantity with scalar conversions
type Value struct {
	mixins.Value[any, Value]
}

// NewValue wraps data
func NewValue(data any) Value {
	return Value{mixins.NewValue[any, Value](data)}
}

// FromRaw implements quantity.Rewrapper. Any non-nil result is accepted.
func (Value) FromRaw(raw any) (Value, error) {
	if err := nonNil("Value", raw); err != nil {
		return Value{}, err
	}
	return NewValue(raw), nil
}

// Sequence is an array-valued quantity
type Sequence struct {
	mixins.Sequence[arrayx.Array, Sequence]
}

// NewSequence wraps an array
func NewSequence(data arrayx.Array) Sequence {
	return Sequence{mixins.NewSequence[arrayx.Array, Sequence](data)}
}

// SequenceOf converts v with arrayx.From and wraps the result
func SequenceOf(v any) (Sequence, error) {
	arr, err := arrayx.From(v)
	if err != nil {
		return Sequence{}, numerrors.Construction("Sequence", v, err)
	}
	return NewSequence(arr), nil
}

// FromRaw implements quantity.Rewrapper. Only arrays are accepted.
func (Sequence) FromRaw(raw any) (Sequence, error) {
	arr, err := quantity.Cast[arrayx.Array]("Sequence", raw)
	if err != nil {
		return Sequence{}, err
	}
	return NewSequence(arr), nil
}

// Decimal is an exact real quantity
type Decimal struct {
	mixins.Real[mathx.Decimal, Decimal]
}

// NewDecimal wraps d
func NewDecimal(d mathx.Decimal) Decimal {
	return Decimal{mixins.NewReal[mathx.Decimal, Decimal](d)}
}

// ParseDecimal parses s as a decimal number
func ParseDecimal(s string) (Decimal, error) {
	d, err := mathx.NewDecimal(s)
	if err != nil {
		return Decimal{}, numerrors.Construction("Decimal", s, err)
	}
	return NewDecimal(d), nil
}

// FromRaw implements quantity.Rewrapper. Decimals, Go integers and finite
// floats are accepted.
func (Decimal) FromRaw(raw any) (Decimal, error) {
	d, ok := mathx.AsDecimal(raw)
	if !ok {
		cause := numerrors.InvalidConversion(numerrors.ModuleQuantities, "Decimal", raw, nil)
		return Decimal{}, numerrors.Construction("Decimal", raw, cause)
	}
	return NewDecimal(d), nil
}
