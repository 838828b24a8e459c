// File: scalar.go
// Title: Scalar Payload Semantics
// Description: Arithmetic, comparison, rounding and conversion for Go numeric
//              values used as raw payloads. Operands are promoted to a common
//              kind (int, float64, complex128). Integer true division yields a
//              float, floor division and modulo follow the sign of the divisor
//              and integer overflow is reported instead of wrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package mathx

import (
	"math"
	"math/big"
	"math/cmplx"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
)

// Kind classifies a scalar payload after promotion
type Kind int

const (
	NotNumber Kind = iota
	Int
	Float
	Complex
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Complex:
		return "complex"
	default:
		return "not-a-number"
	}
}

// Normalize converts any Go integer, float or complex value to int, float64
// or complex128 and reports its kind. Other values are returned unchanged
// with NotNumber. Unsigned values above math.MaxInt become float64.
func Normalize(v any) (any, Kind) {
	switch x := v.(type) {
	case int:
		return x, Int
	case int8:
		return int(x), Int
	case int16:
		return int(x), Int
	case int32:
		return int(x), Int
	case int64:
		return int(x), Int
	case uint8:
		return int(x), Int
	case uint16:
		return int(x), Int
	case uint32:
		return int(x), Int
	case uint:
		return unsigned(uint64(x))
	case uint64:
		return unsigned(x)
	case uintptr:
		return unsigned(uint64(x))
	case float32:
		return float64(x), Float
	case float64:
		return x, Float
	case complex64:
		return complex128(x), Complex
	case complex128:
		return x, Complex
	}
	return v, NotNumber
}

func unsigned(u uint64) (any, Kind) {
	if u > math.MaxInt {
		return float64(u), Float
	}
	return int(u), Int
}

// KindOf returns the promotion kind of v
func KindOf(v any) Kind {
	_, k := Normalize(v)
	return k
}

// IsNumber reports whether v is a Go integer, float or complex value
func IsNumber(v any) bool {
	return KindOf(v) != NotNumber
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case float64:
		return x
	}
	return math.NaN()
}

func asComplex(v any) complex128 {
	if c, ok := v.(complex128); ok {
		return c
	}
	return complex(asFloat(v), 0)
}

// BinaryOp applies a two-operand catalog operation to Go numbers. The
// optional mod argument is only accepted by OpPow and must be an integer.
func BinaryOp(op traits.Op, a, b any, mod ...any) (any, error) {
	x, ka := Normalize(a)
	y, kb := Normalize(b)
	if ka == NotNumber || kb == NotNumber {
		return nil, numerrors.UnsupportedOperands(numerrors.ModuleMathx, op.Symbol(), a, b)
	}

	var m any
	if len(mod) > 0 && mod[0] != nil {
		if op != traits.OpPow {
			return nil, numerrors.Arity(numerrors.ModuleMathx, op.Symbol(), 2, 3)
		}
		m = mod[0]
	}

	switch max(ka, kb) {
	case Int:
		return intOp(op, x.(int), y.(int), m)
	case Float:
		if m != nil {
			return nil, numerrors.InvalidInput(numerrors.ModuleMathx, op.Symbol(), m, "no modulus unless all arguments are integers")
		}
		return floatOp(op, asFloat(x), asFloat(y))
	default:
		if m != nil {
			return nil, numerrors.InvalidInput(numerrors.ModuleMathx, op.Symbol(), m, "no modulus for complex arguments")
		}
		return complexOp(op, asComplex(x), asComplex(y))
	}
}

func intOp(op traits.Op, a, b int, mod any) (any, error) {
	overflow := func() error { return numerrors.Overflow(numerrors.ModuleMathx, op.Symbol(), a, b) }

	switch op {
	case traits.OpAdd:
		r := a + b
		if (b > 0 && r < a) || (b < 0 && r > a) {
			return nil, overflow()
		}
		return r, nil
	case traits.OpSub:
		r := a - b
		if (b > 0 && r > a) || (b < 0 && r < a) {
			return nil, overflow()
		}
		return r, nil
	case traits.OpMul:
		r, ok := mulInt(a, b)
		if !ok {
			return nil, overflow()
		}
		return r, nil
	case traits.OpTrueDiv:
		if b == 0 {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		return float64(a) / float64(b), nil
	case traits.OpFloorDiv:
		if b == 0 {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		if a == math.MinInt && b == -1 {
			return nil, overflow()
		}
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			q--
		}
		return q, nil
	case traits.OpMod:
		if b == 0 {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		return modInt(a, b), nil
	case traits.OpPow:
		if mod != nil {
			return powModInt(op, a, b, mod)
		}
		if b < 0 {
			if a == 0 {
				return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
			}
			return math.Pow(float64(a), float64(b)), nil
		}
		r, ok := powInt(a, b)
		if !ok {
			return nil, overflow()
		}
		return r, nil
	case traits.OpEq:
		return a == b, nil
	case traits.OpNe:
		return a != b, nil
	case traits.OpLt:
		return a < b, nil
	case traits.OpLe:
		return a <= b, nil
	case traits.OpGt:
		return a > b, nil
	case traits.OpGe:
		return a >= b, nil
	}
	return nil, numerrors.UnsupportedOperands(numerrors.ModuleMathx, op.Symbol(), a, b)
}

func modInt(a, b int) int {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		return 0, false
	}
	return r, true
}

func powInt(base, exp int) (int, bool) {
	result := 1
	for exp > 0 {
		if exp&1 == 1 {
			r, ok := mulInt(result, base)
			if !ok {
				return 0, false
			}
			result = r
		}
		exp >>= 1
		if exp > 0 {
			b, ok := mulInt(base, base)
			if !ok {
				return 0, false
			}
			base = b
		}
	}
	return result, true
}

func powModInt(op traits.Op, a, b int, mod any) (any, error) {
	mv, kind := Normalize(mod)
	if kind != Int {
		return nil, numerrors.InvalidInput(numerrors.ModuleMathx, op.Symbol(), mod, "integer modulus")
	}
	m := mv.(int)
	if m == 0 {
		return nil, numerrors.InvalidInput(numerrors.ModuleMathx, op.Symbol(), mod, "non-zero modulus")
	}
	if b < 0 {
		return nil, numerrors.InvalidInput(numerrors.ModuleMathx, op.Symbol(), b, "non-negative exponent with modulus")
	}

	r := new(big.Int).Exp(big.NewInt(int64(a)), big.NewInt(int64(b)), big.NewInt(int64(m)))
	result := int(r.Int64())
	if m < 0 && result != 0 {
		result += m
	}
	return result, nil
}

func floatOp(op traits.Op, a, b float64) (any, error) {
	switch op {
	case traits.OpAdd:
		return a + b, nil
	case traits.OpSub:
		return a - b, nil
	case traits.OpMul:
		return a * b, nil
	case traits.OpTrueDiv:
		if b == 0 {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		return a / b, nil
	case traits.OpFloorDiv, traits.OpMod:
		if b == 0 {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		div, mod := FloorDivMod(a, b)
		if op == traits.OpMod {
			return mod, nil
		}
		return div, nil
	case traits.OpPow:
		if a == 0 && b < 0 {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		if a < 0 && b != math.Trunc(b) && !math.IsInf(b, 0) {
			return cmplx.Pow(complex(a, 0), complex(b, 0)), nil
		}
		r := math.Pow(a, b)
		if math.IsInf(r, 0) && !math.IsInf(a, 0) && !math.IsInf(b, 0) {
			return nil, numerrors.Overflow(numerrors.ModuleMathx, op.Symbol(), a, b)
		}
		return r, nil
	case traits.OpEq:
		return a == b, nil
	case traits.OpNe:
		return a != b, nil
	case traits.OpLt:
		return a < b, nil
	case traits.OpLe:
		return a <= b, nil
	case traits.OpGt:
		return a > b, nil
	case traits.OpGe:
		return a >= b, nil
	}
	return nil, numerrors.UnsupportedOperands(numerrors.ModuleMathx, op.Symbol(), a, b)
}

// FloorDivMod returns the floored quotient and the remainder with the sign
// of the divisor, such that div*b + mod == a up to rounding. b must not be 0.
func FloorDivMod(a, b float64) (div, mod float64) {
	mod = math.Mod(a, b)
	div = (a - mod) / b
	if mod != 0 {
		if (b < 0) != (mod < 0) {
			mod += b
			div -= 1
		}
	} else {
		mod = math.Copysign(0, b)
	}

	if div != 0 {
		floor := math.Floor(div)
		if div-floor > 0.5 {
			floor++
		}
		return floor, mod
	}
	return math.Copysign(0, a/b), mod
}

func complexOp(op traits.Op, a, b complex128) (any, error) {
	switch op {
	case traits.OpAdd:
		return a + b, nil
	case traits.OpSub:
		return a - b, nil
	case traits.OpMul:
		return a * b, nil
	case traits.OpTrueDiv:
		if b == 0 {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		return a / b, nil
	case traits.OpPow:
		if a == 0 && (real(b) < 0 || imag(b) != 0) {
			return nil, numerrors.DivisionByZero(numerrors.ModuleMathx, op.Symbol())
		}
		return cmplx.Pow(a, b), nil
	case traits.OpEq:
		return a == b, nil
	case traits.OpNe:
		return a != b, nil
	}
	return nil, numerrors.UnsupportedOperands(numerrors.ModuleMathx, op.Symbol(), a, b)
}

// UnaryOp applies abs, pos, neg or round to a Go number. Rounding a float
// uses round-half-to-even and yields an int.
func UnaryOp(op traits.Op, a any) (any, error) {
	x, kind := Normalize(a)
	if kind == NotNumber {
		return nil, numerrors.UnsupportedOperands(numerrors.ModuleMathx, op.Symbol(), a)
	}

	switch kind {
	case Int:
		i := x.(int)
		switch op {
		case traits.OpAbs:
			if i == math.MinInt {
				return nil, numerrors.Overflow(numerrors.ModuleMathx, op.Symbol(), i)
			}
			if i < 0 {
				return -i, nil
			}
			return i, nil
		case traits.OpNeg:
			if i == math.MinInt {
				return nil, numerrors.Overflow(numerrors.ModuleMathx, op.Symbol(), i)
			}
			return -i, nil
		case traits.OpPos, traits.OpRound:
			return i, nil
		}
	case Float:
		f := x.(float64)
		switch op {
		case traits.OpAbs:
			return math.Abs(f), nil
		case traits.OpNeg:
			return -f, nil
		case traits.OpPos:
			return f, nil
		case traits.OpRound:
			return floatToInt(op.Symbol(), math.RoundToEven(f))
		}
	case Complex:
		c := x.(complex128)
		switch op {
		case traits.OpAbs:
			return cmplx.Abs(c), nil
		case traits.OpNeg:
			return -c, nil
		case traits.OpPos:
			return c, nil
		}
	}
	return nil, numerrors.UnsupportedOperands(numerrors.ModuleMathx, op.Symbol(), a)
}

func floatToInt(symbol string, f float64) (int, error) {
	if math.IsNaN(f) {
		return 0, numerrors.InvalidConversion(numerrors.ModuleMathx, "int", f, nil)
	}
	if math.IsInf(f, 0) || f >= math.MaxInt || f < math.MinInt {
		return 0, numerrors.Overflow(numerrors.ModuleMathx, symbol, f)
	}
	return int(f), nil
}

// Compare orders two real Go numbers: -1, 0 or +1
func Compare(a, b any) (int, error) {
	lt, err := BinaryOp(traits.OpLt, a, b)
	if err != nil {
		return 0, err
	}
	if lt.(bool) {
		return -1, nil
	}
	gt, err := BinaryOp(traits.OpGt, a, b)
	if err != nil {
		return 0, err
	}
	if gt.(bool) {
		return 1, nil
	}
	return 0, nil
}

// Equal reports numeric equality of two Go numbers across kinds (2 == 2.0)
func Equal(a, b any) bool {
	eq, err := BinaryOp(traits.OpEq, a, b)
	return err == nil && eq.(bool)
}

// ToFloat64 converts a Go number or a traits.Converter to float64
func ToFloat64(v any) (float64, error) {
	if c, ok := v.(traits.Converter); ok {
		return c.Float64()
	}
	x, kind := Normalize(v)
	switch kind {
	case Int, Float:
		return asFloat(x), nil
	}
	return 0, numerrors.InvalidConversion(numerrors.ModuleMathx, "float", v, nil)
}

// ToInt converts a Go number or a traits.Converter to int, truncating
// toward zero
func ToInt(v any) (int, error) {
	if c, ok := v.(traits.Converter); ok {
		return c.Int()
	}
	x, kind := Normalize(v)
	switch kind {
	case Int:
		return x.(int), nil
	case Float:
		return floatToInt("int(a)", math.Trunc(x.(float64)))
	}
	return 0, numerrors.InvalidConversion(numerrors.ModuleMathx, "int", v, nil)
}

// ToComplex128 converts a Go number or a traits.Converter to complex128
func ToComplex128(v any) (complex128, error) {
	if c, ok := v.(traits.Converter); ok {
		return c.Complex128()
	}
	x, kind := Normalize(v)
	if kind == NotNumber {
		return 0, numerrors.InvalidConversion(numerrors.ModuleMathx, "complex", v, nil)
	}
	return asComplex(x), nil
}
