// File: real.go
// Title: Real Mixin
// Description: Adds reflected exponentiation, floor division and modulo to
//              comparable complex quantities.
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

// Real implements protocols.Real
type Real[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
	Comparable[T, S]
	Complex[T, S]
}

// NewReal wraps data
func NewReal[T any, S quantity.Rewrapper[S]](data T) Real[T, S] {
	b := newBase[T, S](data)
	return Real[T, S]{Base: b, Comparable: newComparable(b), Complex: newComplex(b)}
}

// RPow evaluates other ** self, or pow(other, self, mod) with a modulus
func (m Real[T, S]) RPow(other any, mod ...any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Pow, other, m.Base, mod...))
}

// FloorDiv evaluates self // other
func (m Real[T, S]) FloorDiv(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.FloorDiv, m.Base, other))
}

// RFloorDiv evaluates other // self
func (m Real[T, S]) RFloorDiv(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.FloorDiv, other, m.Base))
}

// Mod evaluates self % other
func (m Real[T, S]) Mod(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Mod, m.Base, other))
}

// RMod evaluates other % self
func (m Real[T, S]) RMod(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Mod, other, m.Base))
}
