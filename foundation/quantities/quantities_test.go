// File: quantities_test.go
// Title: Quantity Type Tests
// Description: Exercises the shipped quantity types through Apply and their
//              methods, including reflected dispatch and rewrap failures.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16

package quantities

import (
	"slices"
	"testing"

	numerror "github.com/msto63/numerical/foundation/core/error"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/mixins"
	"github.com/msto63/numerical/foundation/core/operators"
	"github.com/msto63/numerical/foundation/core/protocols"
	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

// kelvin only accepts float64 payloads
type kelvin struct {
	mixins.Real[float64, kelvin]
}

func (kelvin) FromRaw(raw any) (kelvin, error) {
	f, err := quantity.Cast[float64]("kelvin", raw)
	if err != nil {
		return kelvin{}, err
	}
	return kelvin{mixins.NewReal[float64, kelvin](f)}, nil
}

// embeddedReal reuses Real by embedding and inherits Real's FromRaw
type embeddedReal struct {
	Real
}

func newKelvin(f float64) kelvin {
	k, _ := kelvin{}.FromRaw(f)
	return k
}

func truthy(t *testing.T, v any, err error) bool {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return arrayx.Truth(v)
}

func TestRealScenario(t *testing.T) {
	a, b := NewReal(2), NewReal(3)

	tests := []struct {
		name string
		op   *operators.Operator
		x, y any
		want Real
	}{
		{"a + b", operators.Add, a, b, NewReal(5)},
		{"a ** b", operators.Pow, a, b, NewReal(8)},
		{"b // a", operators.FloorDiv, b, a, NewReal(1)},
		{"b % a", operators.Mod, b, a, NewReal(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.op, tt.x, tt.y)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			r, ok := got.(Real)
			if !ok {
				t.Fatalf("Apply() = %T, want Real", got)
			}
			eq, err := r.Eq(tt.want)
			if !truthy(t, eq, err) {
				t.Errorf("Apply() = %v, want %v", r, tt.want)
			}
		})
	}

	lt, err := Apply(operators.Lt, a, b)
	if lt != true || err != nil {
		t.Errorf("a < b = %v, %v; want true", lt, err)
	}
}

func TestApplyIsTransparent(t *testing.T) {
	a, y := NewReal(2), 5
	ops := []*operators.Operator{
		operators.Add, operators.Sub, operators.Mul, operators.TrueDiv,
		operators.FloorDiv, operators.Mod, operators.Pow,
		operators.Eq, operators.Ne, operators.Lt, operators.Le, operators.Gt, operators.Ge,
	}
	for _, op := range ops {
		t.Run(op.Name(), func(t *testing.T) {
			want, _ := op.Call(2, y)
			got, err := Apply(op, a, y)
			if err != nil || quantity.Unwrap(got) != want {
				t.Errorf("Apply(a, y) = %v, %v; want %v", got, err, want)
			}

			want, _ = op.Call(y, 2)
			got, err = Apply(op, y, a)
			if err != nil || quantity.Unwrap(got) != want {
				t.Errorf("Apply(y, a) = %v, %v; want %v", got, err, want)
			}
		})
	}
}

func TestReflectedArithmetic(t *testing.T) {
	a := NewReal(2.5)
	for _, op := range []*operators.Operator{operators.Add, operators.Mul} {
		t.Run(op.Name(), func(t *testing.T) {
			left, err := Apply(op, 4, a)
			if err != nil {
				t.Fatalf("Apply(y, a) error = %v", err)
			}
			right, _ := Apply(op, a, 4)
			if _, ok := left.(Real); !ok {
				t.Errorf("Apply(y, a) = %T, want Real", left)
			}
			if quantity.Unwrap(left) != quantity.Unwrap(right) {
				t.Errorf("Apply(y, a) = %v, want %v", left, right)
			}
		})
	}
}

func TestPowWithModulus(t *testing.T) {
	a, b := NewReal(2), NewReal(3)

	got, err := Apply(operators.Pow, a, b, 5)
	if err != nil || quantity.Unwrap(got) != 3 {
		t.Errorf("pow(a, b, 5) = %v, %v; want 3", got, err)
	}

	// int has no methods, so a.RPow(2, 5) evaluates pow(2, 2, 5)
	got, err = Apply(operators.Pow, 2, a, 5)
	if err != nil || quantity.Unwrap(got) != 4 {
		t.Errorf("pow(2, a, 5) = %v, %v; want 4", got, err)
	}
}

func TestSubtypeIdentity(t *testing.T) {
	s1, s2 := newKelvin(1.5), newKelvin(2.5)

	got, err := Apply(operators.Add, s1, s2)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	k, ok := got.(kelvin)
	if !ok {
		t.Fatalf("Apply() = %T, want kelvin", got)
	}
	if k.Data() != 4 {
		t.Errorf("Data() = %v, want 4", k.Data())
	}

	neg, err := k.Neg()
	if err != nil || neg.Data() != -4 {
		t.Errorf("Neg() = %v, %v; want -4", neg, err)
	}
}

func TestConstructionErrorPropagates(t *testing.T) {
	// a negative base to a fractional power yields a complex payload
	_, err := newKelvin(-8).Pow(0.5)
	if !numerrors.IsConstruction(err) {
		t.Fatalf("Pow() error = %v, want construction error", err)
	}
	if !numerror.HasCode(err, numerror.CodeInvalidConversion) {
		t.Errorf("cause code missing: %v", err)
	}

	_, err = Decimal{}.FromRaw("abc")
	if !numerrors.IsConstruction(err) {
		t.Errorf("Decimal.FromRaw() error = %v, want construction error", err)
	}

	_, err = Real{}.FromRaw(nil)
	if !numerrors.IsConstruction(err) {
		t.Errorf("Real.FromRaw(nil) error = %v, want construction error", err)
	}
}

func TestPrimitiveErrorsPassThrough(t *testing.T) {
	_, err := Apply(operators.Add, NewReal("x"), 2)
	if !numerror.HasCode(err, numerror.CodeUnsupportedOperand) {
		t.Errorf("error = %v, want unsupported operand", err)
	}

	_, err = Apply(operators.TrueDiv, NewReal(1), 0)
	if !numerror.HasCode(err, numerror.CodeDivisionByZero) {
		t.Errorf("error = %v, want division by zero", err)
	}

	_, err = Apply(operators.Add, 1, "x")
	if !numerror.HasCode(err, numerror.CodeUnsupportedOperand) {
		t.Errorf("raw error = %v, want unsupported operand", err)
	}
}

func TestSequenceScenario(t *testing.T) {
	x := NewSequence(arrayx.FromFloats(2.1, 3.4))
	y, err := SequenceOf([]int{21, 34})
	if err != nil {
		t.Fatalf("SequenceOf() error = %v", err)
	}

	got, err := Apply(operators.Add, x, y)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	sum, ok := got.(Sequence)
	if !ok {
		t.Fatalf("Apply() = %T, want Sequence", got)
	}
	want := NewSequence(arrayx.FromFloats(23.1, 37.4))
	eq, err := sum.Eq(want)
	if err != nil || !arrayx.Truth(eq) {
		t.Errorf("x + y = %v, want %v", sum, want)
	}

	n, err := ApplyUnary(operators.Len, sum)
	if err != nil || n != 2 {
		t.Errorf("len() = %v, %v; want 2", n, err)
	}
	in, err := Apply(operators.Contains, sum, 37.4)
	if err != nil || in != true {
		t.Errorf("37.4 in sum = %v, %v; want true", in, err)
	}
	last, err := Apply(operators.GetItem, sum, -1)
	if err != nil || last != 37.4 {
		t.Errorf("sum[-1] = %v, %v; want 37.4", last, err)
	}
}

func TestValueScenario(t *testing.T) {
	v := NewValue(2.1)

	if f, err := v.Float64(); err != nil || f != 2.1 {
		t.Errorf("Float64() = %v, %v; want 2.1", f, err)
	}
	if i, err := v.Int(); err != nil || i != 2 {
		t.Errorf("Int() = %v, %v; want 2", i, err)
	}
	r, err := ApplyUnary(operators.Round, v)
	if err != nil {
		t.Fatalf("round() error = %v", err)
	}
	if _, ok := r.(Value); !ok {
		t.Fatalf("round() = %T, want Value", r)
	}
	eq, err := Apply(operators.Eq, r, NewValue(2.0))
	if err != nil || eq != true {
		t.Errorf("round(v) == Value(2.0) = %v, %v; want true", eq, err)
	}

	f, err := ApplyUnary(operators.Float, v)
	if err != nil || f != 2.1 {
		t.Errorf("float() = %v, %v; want 2.1", f, err)
	}
}

func TestDecimal(t *testing.T) {
	a, _ := ParseDecimal("0.1")
	b, _ := ParseDecimal("0.2")
	want, _ := ParseDecimal("0.3")

	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if eq, _ := sum.Eq(want); eq != true {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", sum)
	}

	got, err := Apply(operators.Add, 1, a)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	d, ok := got.(Decimal)
	if !ok {
		t.Fatalf("Apply() = %T, want Decimal", got)
	}
	if !d.Data().Equal(mathx.MustNewDecimal("1.1")) {
		t.Errorf("1 + a = %v, want 1.1", d)
	}
}

func TestCapabilities(t *testing.T) {
	realCaps := []protocols.Capability{
		protocols.CapOrderable, protocols.CapComparable, protocols.CapAdditive,
		protocols.CapMultiplicative, protocols.CapAlgebraic, protocols.CapComplex, protocols.CapReal,
	}
	tests := []struct {
		name string
		v    any
		want protocols.Capability
	}{
		{"real", NewReal(1), protocols.CapReal},
		{"value", NewValue(1), protocols.CapValue},
		{"sequence", NewSequence(arrayx.FromInts(1)), protocols.CapSequence},
		{"decimal", NewDecimal(mathx.One()), protocols.CapReal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !protocols.Satisfies(tt.v, tt.want) {
				t.Errorf("Satisfies(%s) = false, want true", tt.want)
			}
		})
	}

	if got := protocols.Capabilities(NewReal(1)); !slices.Equal(got, realCaps) {
		t.Errorf("Capabilities() = %v, want %v", got, realCaps)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v    any
		kind Kind
	}{
		{2, KindReal},
		{2.5, KindReal},
		{mathx.One(), KindDecimal},
		{[]float64{1, 2}, KindSequence},
		{arrayx.Arange(3), KindSequence},
		{NewSequence(arrayx.Arange(3)), KindSequence},
	}
	for _, tt := range tests {
		if got := Infer(tt.v); got != tt.kind {
			t.Errorf("Infer(%v) = %v, want %v", tt.v, got, tt.kind)
		}
		if _, err := Auto(tt.v); err != nil {
			t.Errorf("Auto(%v) error = %v", tt.v, err)
		}
	}

	d, err := Wrap(KindDecimal, "1.25")
	if err != nil {
		t.Fatalf("Wrap() error = %v", err)
	}
	if dec, ok := d.(Decimal); !ok || !dec.Data().Equal(mathx.MustNewDecimal("1.25")) {
		t.Errorf("Wrap() = %v, want 1.25", d)
	}

	if _, err := Wrap(KindSequence, "abc"); !numerrors.IsConstruction(err) {
		t.Errorf("Wrap(sequence, abc) error = %v, want construction error", err)
	}
	if _, err := ParseKind("VALUE"); err != nil {
		t.Errorf("ParseKind() error = %v", err)
	}
	if _, err := ParseKind("matrix"); !numerror.HasCode(err, numerror.CodeNotFound) {
		t.Errorf("ParseKind(matrix) error = %v, want not found", err)
	}
}

func TestEmbeddingKeepsEmbeddedType(t *testing.T) {
	e := embeddedReal{NewReal(1.5)}

	got, err := Apply(operators.Add, e, 1)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if _, ok := got.(Real); !ok {
		t.Errorf("Apply() = %T, want Real", got)
	}
	if protocols.Satisfies(e, protocols.CapReal) {
		t.Error("Satisfies(embeddedReal, real) = true, want false")
	}
	if !protocols.Satisfies(e, protocols.CapComparable) {
		t.Error("Satisfies(embeddedReal, comparable) = false, want true")
	}

	if !protocols.Satisfies(newKelvin(1.5), protocols.CapReal) {
		t.Error("Satisfies(kelvin, real) = false, want true")
	}
	sum, err := Apply(operators.Add, newKelvin(1.5), 1.0)
	if _, ok := sum.(kelvin); !ok || err != nil {
		t.Errorf("Apply() = %T, %v; want kelvin", sum, err)
	}
}
