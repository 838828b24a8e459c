// File: protocols.go
// Title: Capability Interfaces
// Description: Static capability interfaces. Comparison results are any
//              because array payloads compare element-wise.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package protocols

import (
	"iter"

	"github.com/msto63/numerical/foundation/utils/arrayx"
)

// Orderable supports relative ordering
type Orderable interface {
	Lt(other any) (any, error)
	Le(other any) (any, error)
	Gt(other any) (any, error)
	Ge(other any) (any, error)
}

// Comparable is Orderable with equality
type Comparable interface {
	Orderable
	Eq(other any) (any, error)
	Ne(other any) (any, error)
}

// Additive supports forward and reflected addition and subtraction
type Additive[S any] interface {
	Add(other any) (S, error)
	RAdd(other any) (S, error)
	Sub(other any) (S, error)
	RSub(other any) (S, error)
}

// Multiplicative supports forward and reflected multiplication and true
// division
type Multiplicative[S any] interface {
	Mul(other any) (S, error)
	RMul(other any) (S, error)
	Div(other any) (S, error)
	RDiv(other any) (S, error)
}

// Algebraic adds forward exponentiation with an optional modulus. There is
// no reflected form.
type Algebraic[S any] interface {
	Additive[S]
	Multiplicative[S]
	Pow(other any, mod ...any) (S, error)
}

// Complex adds absolute value and unary signs
type Complex[S any] interface {
	Algebraic[S]
	Abs() (S, error)
	Pos() (S, error)
	Neg() (S, error)
}

// Real adds the operators of totally ordered payloads
type Real[S any] interface {
	Comparable
	Complex[S]
	RPow(other any, mod ...any) (S, error)
	FloorDiv(other any) (S, error)
	RFloorDiv(other any) (S, error)
	Mod(other any) (S, error)
	RMod(other any) (S, error)
}

// Value adds raw scalar conversions and rounding
type Value[S any] interface {
	Comparable
	Complex[S]
	Complex128() (complex128, error)
	Float64() (float64, error)
	Int() (int, error)
	Round() (S, error)
}

// Sequence adds membership, length, iteration, indexing and conversion to
// an array. GetItem and Iter yield whatever the payload yields.
type Sequence[S any] interface {
	Comparable
	Complex[S]
	Contains(x any) (bool, error)
	Len() (int, error)
	Iter() (iter.Seq[any], error)
	GetItem(i any) (any, error)
	Array() (arrayx.Array, error)
}
