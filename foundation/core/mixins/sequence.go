// File: sequence.go
// Title: Sequence Mixin
// Description: Membership, length, iteration, indexing and array
//              conversion for array-like payloads. GetItem and Iter return
//              what the payload's own indexing and iteration return: for an
//              arrayx.Array that is a scalar element on a 1-d array and a
//              sub-array otherwise; neither is rewrapped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package mixins

import (
	"iter"

	"github.com/msto63/numerical/foundation/core/operators"
	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/utils/arrayx"
)

// Sequence implements protocols.Sequence
type Sequence[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
	Comparable[T, S]
	Complex[T, S]
}

// NewSequence wraps data
func NewSequence[T any, S quantity.Rewrapper[S]](data T) Sequence[T, S] {
	b := newBase[T, S](data)
	return Sequence[T, S]{Base: b, Comparable: newComparable(b), Complex: newComplex(b)}
}

// Contains reports whether x is in the payload
func (m Sequence[T, S]) Contains(x any) (bool, error) {
	raw, err := quantity.Binary(operators.Contains, m.Base, x)
	if err != nil {
		return false, err
	}
	if b, ok := raw.(bool); ok {
		return b, nil
	}
	return arrayx.Truth(raw), nil
}

// Len returns the payload length
func (m Sequence[T, S]) Len() (int, error) {
	return as[int](quantity.Unary(operators.Len, m.Base))
}

// Iter returns the payload's iteration
func (m Sequence[T, S]) Iter() (iter.Seq[any], error) {
	return as[iter.Seq[any]](quantity.Unary(operators.Iter, m.Base))
}

// GetItem indexes the payload by position or traits.Slice
func (m Sequence[T, S]) GetItem(i any) (any, error) {
	return quantity.Binary(operators.GetItem, m.Base, i)
}

// Array converts the payload to a dense array
func (m Sequence[T, S]) Array() (arrayx.Array, error) {
	return as[arrayx.Array](quantity.Unary(operators.Array, m.Base))
}
