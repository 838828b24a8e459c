// File: traits.go
// Title: Payload Operator Contract
// Description: Declares the interfaces a payload type implements so that the
//              primitive operators can delegate to its native semantics:
//              binary and unary arithmetic, comparison, sizing, membership,
//              indexing, iteration and scalar conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package traits

import "iter"

// Op names a primitive operation in the operator catalog
type Op string

const (
	OpAbs      Op = "abs"
	OpPos      Op = "pos"
	OpNeg      Op = "neg"
	OpRound    Op = "round"
	OpEq       Op = "eq"
	OpNe       Op = "ne"
	OpLt       Op = "lt"
	OpLe       Op = "le"
	OpGt       Op = "gt"
	OpGe       Op = "ge"
	OpAdd      Op = "add"
	OpSub      Op = "sub"
	OpMul      Op = "mul"
	OpTrueDiv  Op = "truediv"
	OpFloorDiv Op = "floordiv"
	OpMod      Op = "mod"
	OpPow      Op = "pow"
	OpContains Op = "contains"
	OpLen      Op = "len"
	OpIter     Op = "iter"
	OpGetItem  Op = "getitem"
	OpComplex  Op = "complex"
	OpFloat    Op = "float"
	OpInt      Op = "int"
	OpArray    Op = "array"
)

// String returns the operation name
func (o Op) String() string {
	return string(o)
}

var symbols = map[Op]string{
	OpAbs:      "abs(a)",
	OpPos:      "+a",
	OpNeg:      "-a",
	OpRound:    "round(a)",
	OpEq:       "a == b",
	OpNe:       "a != b",
	OpLt:       "a < b",
	OpLe:       "a <= b",
	OpGt:       "a > b",
	OpGe:       "a >= b",
	OpAdd:      "a + b",
	OpSub:      "a - b",
	OpMul:      "a * b",
	OpTrueDiv:  "a / b",
	OpFloorDiv: "a // b",
	OpMod:      "a % b",
	OpPow:      "a ** b",
	OpContains: "x in a",
	OpLen:      "len(a)",
	OpIter:     "iter(a)",
	OpGetItem:  "a[i]",
	OpComplex:  "complex(a)",
	OpFloat:    "float(a)",
	OpInt:      "int(a)",
	OpArray:    "array(a)",
}

// Symbol returns the symbolic form of the operation, e.g. "a + b"
func (o Op) Symbol() string {
	if s, ok := symbols[o]; ok {
		return s
	}
	return string(o)
}

// IsComparison reports whether o is one of the six comparison operations
func (o Op) IsComparison() bool {
	switch o {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

// Reflect returns the comparison that holds with swapped operands
// (a < b iff b > a). Non-comparison operations are returned unchanged.
func (o Op) Reflect() Op {
	switch o {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGt:
		return OpLt
	case OpGe:
		return OpLe
	}
	return o
}

// Binary is implemented by payloads with native two-operand operations.
// With reflected set, the receiver is the right-hand operand: for OpSub
// the payload computes other - receiver. Implementations return
// errors.ErrNotImplemented for operand types they do not handle so the
// dispatcher can try the other operand.
type Binary interface {
	Binary(op Op, other any, reflected bool) (any, error)
}

// Unary is implemented by payloads with native one-operand operations
// (abs, pos, neg, round)
type Unary interface {
	Unary(op Op) (any, error)
}

// Sizer reports the number of top-level elements
type Sizer interface {
	Len() (int, error)
}

// Container reports membership of a value
type Container interface {
	Contains(v any) (bool, error)
}

// Indexer returns the element or sub-sequence at a position. Index accepts an
// int (negative counts from the end) or a Slice.
type Indexer interface {
	Index(i any) (any, error)
}

// Iterable yields the top-level elements lazily
type Iterable interface {
	All() iter.Seq[any]
}

// Converter converts a payload to Go scalars
type Converter interface {
	Complex128() (complex128, error)
	Float64() (float64, error)
	Int() (int, error)
}
