// File: decimal.go
// Title: Decimal Payload
// Description: Implements an exact decimal payload over *big.Rat. Decimal
//              takes part in operator dispatch through traits.Binary and
//              traits.Unary, mixes with Go ints and floats and converts to
//              Go scalars.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-16 v0.2.0: Immutable payload, operator hooks, correct half-even
//                      rounding, dropped pooling and financial formatting

package mathx

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
)

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds ties away from zero
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds ties to the nearest even digit
	RoundingModeHalfEven

	// RoundingModeHalfDown rounds ties toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

// MaxStringPlaces bounds the digits String prints for non-terminating values
const MaxStringPlaces = 28

// Decimal represents a decimal number with arbitrary precision. The zero
// value is 0. Decimals are immutable; every operation returns a new value.
type Decimal struct {
	value *big.Rat
}

func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// NewDecimal creates a new Decimal from a string representation.
// Supports formats like "123.45", "-67.89", "1e-3" and "1/2".
func NewDecimal(s string) (Decimal, error) {
	rat, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return Decimal{}, numerrors.InvalidConversion(numerrors.ModuleMathx, "decimal", s, nil)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a new Decimal from a string, panicking on error
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// NewDecimalFromFloat creates a new Decimal holding the exact binary value
// of f. NaN and infinities are rejected.
func NewDecimalFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, numerrors.InvalidConversion(numerrors.ModuleMathx, "decimal", f, nil)
	}
	return Decimal{value: new(big.Rat).SetFloat64(f)}, nil
}

// FromInteger creates a Decimal from any Go integer type
func FromInteger[T constraints.Integer](v T) Decimal {
	if uint64(v) > math.MaxInt64 && v > 0 {
		return Decimal{value: new(big.Rat).SetInt(new(big.Int).SetUint64(uint64(v)))}
	}
	return NewDecimalFromInt(int64(v))
}

// FromFloat creates a Decimal from any Go float type
func FromFloat[T constraints.Float](v T) (Decimal, error) {
	return NewDecimalFromFloat(float64(v))
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{value: new(big.Rat)}
}

// One returns a decimal representing one
func One() Decimal {
	return NewDecimalFromInt(1)
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Divide returns the quotient of d and other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, numerrors.DivisionByZero(numerrors.ModuleMathx, "a / b")
	}
	return Decimal{value: new(big.Rat).Quo(d.rat(), other.rat())}, nil
}

// QuoRem returns the quotient truncated toward zero and the remainder with
// the sign of d, such that q*other + r == d
func (d Decimal) QuoRem(other Decimal) (Decimal, Decimal, error) {
	quo, err := d.Divide(other)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}
	q := quo.Round(0, RoundingModeDown)
	r := d.Subtract(q.Multiply(other))
	return q, r, nil
}

// Abs returns the absolute value of d
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// IsZero returns true if d is zero
func (d Decimal) IsZero() bool {
	return d.rat().Sign() == 0
}

// IsInteger returns true if d has no fractional part
func (d Decimal) IsInteger() bool {
	return d.rat().IsInt()
}

// Sign returns -1, 0 or +1
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// Compare returns -1 if d < other, 0 if d == other and +1 if d > other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal returns true if d == other
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// LessThan returns true if d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// GreaterThan returns true if d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// Round rounds d to places decimal places using mode
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)

	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(scale))
	num, den := scaled.Num(), scaled.Denom()

	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() != 0 {
		// Compare 2|r| against the denominator to locate the tie.
		twice := new(big.Int).Abs(r)
		twice.Lsh(twice, 1)
		cmp := twice.Cmp(den)

		away := false
		switch mode {
		case RoundingModeHalfUp:
			away = cmp >= 0
		case RoundingModeHalfDown:
			away = cmp > 0
		case RoundingModeHalfEven:
			away = cmp > 0 || (cmp == 0 && q.Bit(0) == 1)
		case RoundingModeUp:
			away = true
		}
		if away {
			if num.Sign() < 0 {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
	}

	return Decimal{value: new(big.Rat).SetFrac(q, scale)}
}

// Truncate truncates the decimal to the specified number of decimal places
func (d Decimal) Truncate(places int) Decimal {
	return d.Round(places, RoundingModeDown)
}

// Pow returns d raised to an integer power
func (d Decimal) Pow(exp int64) (Decimal, error) {
	base := d
	if exp < 0 {
		inv, err := One().Divide(d)
		if err != nil {
			return Decimal{}, err
		}
		base, exp = inv, -exp
	}

	num := new(big.Int).Exp(base.rat().Num(), big.NewInt(exp), nil)
	den := new(big.Int).Exp(base.rat().Denom(), big.NewInt(exp), nil)
	return Decimal{value: new(big.Rat).SetFrac(num, den)}, nil
}

// String renders terminating decimals exactly and other values with up to
// MaxStringPlaces digits
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	places, exact := terminatingPlaces(r.Denom())
	if !exact || places > MaxStringPlaces {
		places = MaxStringPlaces
	}
	s := r.FloatString(places)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// terminatingPlaces returns the number of fractional digits of 1/den when
// den only has the prime factors 2 and 5
func terminatingPlaces(den *big.Int) (int, bool) {
	d := new(big.Int).Set(den)
	two, five := big.NewInt(2), big.NewInt(5)
	twos, fives := 0, 0
	m := new(big.Int)
	for d.Cmp(big.NewInt(1)) != 0 {
		switch {
		case m.Mod(d, two).Sign() == 0:
			d.Quo(d, two)
			twos++
		case m.Mod(d, five).Sign() == 0:
			d.Quo(d, five)
			fives++
		default:
			return 0, false
		}
	}
	return max(twos, fives), true
}

// GoString renders the decimal with a literal suffix, e.g. 1.25d
func (d Decimal) GoString() string {
	return d.String() + "d"
}

// StringFixed returns the string representation with a fixed number of
// decimal places, rounding half up
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, RoundingModeHalfUp).rat().FloatString(places)
}

// Float64 returns the nearest float64
func (d Decimal) Float64() (float64, error) {
	f, _ := d.rat().Float64()
	return f, nil
}

// Int returns the integer part of d, truncating toward zero
func (d Decimal) Int() (int, error) {
	i := new(big.Int).Quo(d.rat().Num(), d.rat().Denom())
	if !i.IsInt64() || i.Int64() > math.MaxInt || i.Int64() < math.MinInt {
		return 0, numerrors.Overflow(numerrors.ModuleMathx, "int(a)", d.String())
	}
	return int(i.Int64()), nil
}

// Complex128 returns d as a complex number with zero imaginary part
func (d Decimal) Complex128() (complex128, error) {
	f, err := d.Float64()
	return complex(f, 0), err
}

// AsDecimal converts a Decimal, Go integer or finite Go float to Decimal.
// ok is false for every other value.
func AsDecimal(v any) (Decimal, bool) {
	if d, isDec := v.(Decimal); isDec {
		return d, true
	}
	x, kind := Normalize(v)
	switch kind {
	case Int:
		return NewDecimalFromInt(int64(x.(int))), true
	case Float:
		d, err := NewDecimalFromFloat(x.(float64))
		return d, err == nil
	}
	return Decimal{}, false
}

// Binary implements traits.Binary. Floor division truncates toward zero and
// the remainder takes the sign of the dividend. Non-integral exponents are
// evaluated in float64.
func (d Decimal) Binary(op traits.Op, other any, reflected bool) (any, error) {
	o, ok := AsDecimal(other)
	if !ok {
		return nil, numerrors.ErrNotImplemented
	}
	a, b := d, o
	if reflected {
		a, b = o, d
	}

	switch op {
	case traits.OpAdd:
		return a.Add(b), nil
	case traits.OpSub:
		return a.Subtract(b), nil
	case traits.OpMul:
		return a.Multiply(b), nil
	case traits.OpTrueDiv:
		return a.Divide(b)
	case traits.OpFloorDiv:
		q, _, err := a.QuoRem(b)
		if err != nil {
			return nil, err
		}
		return q, nil
	case traits.OpMod:
		_, r, err := a.QuoRem(b)
		if err != nil {
			return nil, err
		}
		return r, nil
	case traits.OpPow:
		return a.power(b)
	case traits.OpEq:
		return a.Equal(b), nil
	case traits.OpNe:
		return !a.Equal(b), nil
	case traits.OpLt:
		return a.Compare(b) < 0, nil
	case traits.OpLe:
		return a.Compare(b) <= 0, nil
	case traits.OpGt:
		return a.Compare(b) > 0, nil
	case traits.OpGe:
		return a.Compare(b) >= 0, nil
	}
	return nil, numerrors.ErrNotImplemented
}

func (d Decimal) power(exp Decimal) (any, error) {
	if exp.IsInteger() && exp.rat().Num().IsInt64() {
		return d.Pow(exp.rat().Num().Int64())
	}
	base, _ := d.Float64()
	e, _ := exp.Float64()
	r, err := BinaryOp(traits.OpPow, base, e)
	if err != nil {
		return nil, err
	}
	if f, isFloat := r.(float64); isFloat {
		return NewDecimalFromFloat(f)
	}
	return r, nil
}

// Unary implements traits.Unary. Round returns an int using half-even
// rounding.
func (d Decimal) Unary(op traits.Op) (any, error) {
	switch op {
	case traits.OpAbs:
		return d.Abs(), nil
	case traits.OpPos:
		return d, nil
	case traits.OpNeg:
		return d.Neg(), nil
	case traits.OpRound:
		return d.Round(0, RoundingModeHalfEven).Int()
	}
	return nil, numerrors.ErrNotImplemented
}

// Format implements fmt.Formatter so %v prints the decimal text and %#v
// the literal form
func (d Decimal) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		fmt.Fprint(f, d.GoString())
	case verb == 'f' || verb == 'F':
		if p, ok := f.Precision(); ok {
			fmt.Fprint(f, d.StringFixed(p))
			return
		}
		fmt.Fprint(f, d.String())
	default:
		fmt.Fprint(f, d.String())
	}
}
