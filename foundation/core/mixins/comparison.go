// File: comparison.go
// Title: Orderable and Comparable Mixins
// Description: Comparison methods return the raw primitive result, which is
//              a bool for scalars and a bool array for array payloads.
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

// Orderable implements protocols.Orderable
type Orderable[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
}

// NewOrderable wraps data
func NewOrderable[T any, S quantity.Rewrapper[S]](data T) Orderable[T, S] {
	return newOrderable(newBase[T, S](data))
}

func newOrderable[T any, S quantity.Rewrapper[S]](b Base[T, S]) Orderable[T, S] {
	return Orderable[T, S]{Base: b}
}

// Lt evaluates self < other
func (m Orderable[T, S]) Lt(other any) (any, error) {
	return quantity.Binary(operators.Lt, m.Base, other)
}

// Le evaluates self <= other
func (m Orderable[T, S]) Le(other any) (any, error) {
	return quantity.Binary(operators.Le, m.Base, other)
}

// Gt evaluates self > other
func (m Orderable[T, S]) Gt(other any) (any, error) {
	return quantity.Binary(operators.Gt, m.Base, other)
}

// Ge evaluates self >= other
func (m Orderable[T, S]) Ge(other any) (any, error) {
	return quantity.Binary(operators.Ge, m.Base, other)
}

// Comparable implements protocols.Comparable
type Comparable[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
	Orderable[T, S]
}

// NewComparable wraps data
func NewComparable[T any, S quantity.Rewrapper[S]](data T) Comparable[T, S] {
	return newComparable(newBase[T, S](data))
}

func newComparable[T any, S quantity.Rewrapper[S]](b Base[T, S]) Comparable[T, S] {
	return Comparable[T, S]{Base: b, Orderable: newOrderable(b)}
}

// Eq evaluates self == other
func (m Comparable[T, S]) Eq(other any) (any, error) {
	return quantity.Binary(operators.Eq, m.Base, other)
}

// Ne evaluates self != other
func (m Comparable[T, S]) Ne(other any) (any, error) {
	return quantity.Binary(operators.Ne, m.Base, other)
}
