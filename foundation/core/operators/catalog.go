// File: catalog.go
// Title: Canonical Operator Catalog
// Description: Registers the canonical operators in the default registry and
//              exposes them as package-level handles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package operators

import "github.com/msto63/numerical/foundation/core/traits"

var defaultRegistry = NewRegistry(nil)

// Default returns the process-wide registry holding the catalog
func Default() *Registry {
	return defaultRegistry
}

func catalog(op traits.Op, arity int, fn Func) *Operator {
	return defaultRegistry.MustMake(op.String(), op.Symbol(), arity, fn)
}

// Canonical operators
var (
	Abs      = catalog(traits.OpAbs, 1, unary(traits.OpAbs))
	Pos      = catalog(traits.OpPos, 1, unary(traits.OpPos))
	Neg      = catalog(traits.OpNeg, 1, unary(traits.OpNeg))
	Round    = catalog(traits.OpRound, 1, unary(traits.OpRound))
	Eq       = catalog(traits.OpEq, 2, binary(traits.OpEq))
	Ne       = catalog(traits.OpNe, 2, binary(traits.OpNe))
	Lt       = catalog(traits.OpLt, 2, binary(traits.OpLt))
	Le       = catalog(traits.OpLe, 2, binary(traits.OpLe))
	Gt       = catalog(traits.OpGt, 2, binary(traits.OpGt))
	Ge       = catalog(traits.OpGe, 2, binary(traits.OpGe))
	Add      = catalog(traits.OpAdd, 2, binary(traits.OpAdd))
	Sub      = catalog(traits.OpSub, 2, binary(traits.OpSub))
	Mul      = catalog(traits.OpMul, 2, binary(traits.OpMul))
	TrueDiv  = catalog(traits.OpTrueDiv, 2, binary(traits.OpTrueDiv))
	FloorDiv = catalog(traits.OpFloorDiv, 2, binary(traits.OpFloorDiv))
	Mod      = catalog(traits.OpMod, 2, binary(traits.OpMod))
	Pow      = catalog(traits.OpPow, 2, pow)
	Contains = catalog(traits.OpContains, 2, contains)
	Len      = catalog(traits.OpLen, 1, length)
	Iter     = catalog(traits.OpIter, 1, iterate)
	GetItem  = catalog(traits.OpGetItem, 2, getitem)
)

// Scalar and array conversions
var (
	Complex = catalog(traits.OpComplex, 1, toComplex)
	Float   = catalog(traits.OpFloat, 1, toFloat)
	Int     = catalog(traits.OpInt, 1, toInt)
	Array   = catalog(traits.OpArray, 1, toArray)
)

// Aliases registered in the default registry
var symbolAliases = map[string]traits.Op{
	"==": traits.OpEq,
	"!=": traits.OpNe,
	"<":  traits.OpLt,
	"<=": traits.OpLe,
	">":  traits.OpGt,
	">=": traits.OpGe,
	"+":  traits.OpAdd,
	"-":  traits.OpSub,
	"*":  traits.OpMul,
	"/":  traits.OpTrueDiv,
	"//": traits.OpFloorDiv,
	"%":  traits.OpMod,
	"**": traits.OpPow,
	"in": traits.OpContains,
	"[]": traits.OpGetItem,
}

func init() {
	for alias, op := range symbolAliases {
		_ = defaultRegistry.Alias(alias, op.String())
	}
}

// ForOp returns the default handle for a catalog operation
func ForOp(op traits.Op) (*Operator, error) {
	return defaultRegistry.Lookup(op.String())
}
