// File: value.go
// Title: Value Mixin
// Description: Scalar conversions return raw Go values; Round rewraps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package mixins

import (
	"github.com/msto63/numerical/foundation/core/operators"
	"github.com/msto63/numerical/foundation/core/quantity"
)

// Value implements protocols.Value. It also satisfies traits.Converter, so
// values can be used wherever a Go number is converted.
type Value[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
	Comparable[T, S]
	Complex[T, S]
}

// NewValue wraps data
func NewValue[T any, S quantity.Rewrapper[S]](data T) Value[T, S] {
	b := newBase[T, S](data)
	return Value[T, S]{Base: b, Comparable: newComparable(b), Complex: newComplex(b)}
}

// Complex128 converts the payload to complex128
func (m Value[T, S]) Complex128() (complex128, error) {
	return as[complex128](quantity.Unary(operators.Complex, m.Base))
}

// Float64 converts the payload to float64
func (m Value[T, S]) Float64() (float64, error) {
	return as[float64](quantity.Unary(operators.Float, m.Base))
}

// Int converts the payload to int, truncating toward zero
func (m Value[T, S]) Int() (int, error) {
	return as[int](quantity.Unary(operators.Int, m.Base))
}

// Round rounds the payload half to even
func (m Value[T, S]) Round() (S, error) {
	return rewrap[S](quantity.Unary(operators.Round, m.Base))
}
