// File: arithmetic.go
// Title: Additive, Multiplicative, Algebraic and Complex Mixins
// Description: Forward methods evaluate self OP other, reflected methods
//              other OP self. Both rewrap into S.
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

// Additive implements protocols.Additive
type Additive[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
}

// NewAdditive wraps data
func NewAdditive[T any, S quantity.Rewrapper[S]](data T) Additive[T, S] {
	return Additive[T, S]{Base: newBase[T, S](data)}
}

// Add evaluates self + other
func (m Additive[T, S]) Add(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Add, m.Base, other))
}

// RAdd evaluates other + self
func (m Additive[T, S]) RAdd(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Add, other, m.Base))
}

// Sub evaluates self - other
func (m Additive[T, S]) Sub(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Sub, m.Base, other))
}

// RSub evaluates other - self
func (m Additive[T, S]) RSub(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Sub, other, m.Base))
}

// Multiplicative implements protocols.Multiplicative
type Multiplicative[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
}

// NewMultiplicative wraps data
func NewMultiplicative[T any, S quantity.Rewrapper[S]](data T) Multiplicative[T, S] {
	return Multiplicative[T, S]{Base: newBase[T, S](data)}
}

// Mul evaluates self * other
func (m Multiplicative[T, S]) Mul(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Mul, m.Base, other))
}

// RMul evaluates other * self
func (m Multiplicative[T, S]) RMul(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Mul, other, m.Base))
}

// Div evaluates self / other
func (m Multiplicative[T, S]) Div(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.TrueDiv, m.Base, other))
}

// RDiv evaluates other / self
func (m Multiplicative[T, S]) RDiv(other any) (S, error) {
	return rewrap[S](quantity.Binary(operators.TrueDiv, other, m.Base))
}

// Algebraic implements protocols.Algebraic
type Algebraic[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
	Additive[T, S]
	Multiplicative[T, S]
}

// NewAlgebraic wraps data
func NewAlgebraic[T any, S quantity.Rewrapper[S]](data T) Algebraic[T, S] {
	return newAlgebraic(newBase[T, S](data))
}

func newAlgebraic[T any, S quantity.Rewrapper[S]](b Base[T, S]) Algebraic[T, S] {
	return Algebraic[T, S]{
		Base:           b,
		Additive:       Additive[T, S]{Base: b},
		Multiplicative: Multiplicative[T, S]{Base: b},
	}
}

// Pow evaluates self ** other, or pow(self, other, mod) with a modulus
func (m Algebraic[T, S]) Pow(other any, mod ...any) (S, error) {
	return rewrap[S](quantity.Binary(operators.Pow, m.Base, other, mod...))
}

// Complex implements protocols.Complex
type Complex[T any, S quantity.Rewrapper[S]] struct {
	Base[T, S]
	Algebraic[T, S]
}

// NewComplex wraps data
func NewComplex[T any, S quantity.Rewrapper[S]](data T) Complex[T, S] {
	return newComplex(newBase[T, S](data))
}

func newComplex[T any, S quantity.Rewrapper[S]](b Base[T, S]) Complex[T, S] {
	return Complex[T, S]{Base: b, Algebraic: newAlgebraic(b)}
}

// Abs evaluates abs(self)
func (m Complex[T, S]) Abs() (S, error) {
	return rewrap[S](quantity.Unary(operators.Abs, m.Base))
}

// Pos evaluates +self
func (m Complex[T, S]) Pos() (S, error) {
	return rewrap[S](quantity.Unary(operators.Pos, m.Base))
}

// Neg evaluates -self
func (m Complex[T, S]) Neg() (S, error) {
	return rewrap[S](quantity.Unary(operators.Neg, m.Base))
}
