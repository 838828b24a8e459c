// File: primitives_test.go
// Title: Primitive Operator Tests
// Description: Tests for scalar, container and payload dispatch of the
//              catalog primitives.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package operators

import (
	"iter"
	"reflect"
	"slices"
	"testing"

	numerror "github.com/msto63/numerical/foundation/core/error"
	"github.com/msto63/numerical/foundation/core/traits"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

func TestScalarPrimitives(t *testing.T) {
	tests := []struct {
		op   *Operator
		args []any
		want any
	}{
		{Add, []any{2, 3}, 5},
		{Sub, []any{2, 0.5}, 1.5},
		{Mul, []any{4, 3}, 12},
		{TrueDiv, []any{3, 2}, 1.5},
		{FloorDiv, []any{3, 2}, 1},
		{Mod, []any{3, 2}, 1},
		{Pow, []any{2, 3}, 8},
		{Pow, []any{3, 4, 5}, 1},
		{Pow, []any{2, 3, nil}, 8},
		{Lt, []any{2, 3}, true},
		{Ge, []any{2, 3}, false},
		{Eq, []any{2, 2.0}, true},
		{Ne, []any{2, 3}, true},
		{Abs, []any{-2}, 2},
		{Neg, []any{2.5}, -2.5},
		{Pos, []any{3}, 3},
		{Round, []any{2.5}, 2},
		{Round, []any{2.1}, 2},
		{Float, []any{2}, 2.0},
		{Int, []any{2.9}, 2},
		{Complex, []any{2.1}, complex(2.1, 0)},
	}
	for _, tt := range tests {
		got, err := tt.op.Call(tt.args...)
		if err != nil {
			t.Errorf("%v%v error = %v", tt.op, tt.args, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%v%v = %v (%T), want %v (%T)", tt.op, tt.args, got, got, tt.want, tt.want)
		}
	}
}

func TestPrimitiveErrors(t *testing.T) {
	tests := []struct {
		name string
		op   *Operator
		args []any
		code numerror.Code
	}{
		{"arity", Add, []any{1}, numerror.CodeArity},
		{"pow arity", Pow, []any{1}, numerror.CodeArity},
		{"unsupported", Add, []any{"a", 1}, numerror.CodeUnsupportedOperand},
		{"unordered", Lt, []any{[]int{1}, 1}, numerror.CodeUnsupportedOperand},
		{"division by zero", TrueDiv, []any{1, 0}, numerror.CodeDivisionByZero},
		{"len of number", Len, []any{3}, numerror.CodeUnsupportedOperand},
		{"index out of range", GetItem, []any{[]int{1, 2}, 2}, numerror.CodeIndexOutOfRange},
		{"missing key", GetItem, []any{map[string]int{"a": 1}, "b"}, numerror.CodeNotFound},
		{"array of strings", Array, []any{[]string{"a"}}, numerror.CodePayloadType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Call(tt.args...)
			if !numerror.HasCode(err, tt.code) {
				t.Errorf("%v%v error = %v, want code %s", tt.op, tt.args, err, tt.code)
			}
		})
	}
}

func TestUnsupportedMessage(t *testing.T) {
	_, err := Add.Call("a", 1)
	want := "unsupported operand type(s) for a + b: 'string' and 'int'"
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %q", err, want)
	}
}

func TestEqualityFallback(t *testing.T) {
	if got, _ := Eq.Call([]int{1, 2}, []int{1, 2}); got != true {
		t.Errorf("Eq(slices) = %v, want true", got)
	}
	if got, _ := Ne.Call("a", "b"); got != true {
		t.Errorf("Ne(strings) = %v, want true", got)
	}
	if got, _ := Lt.Call("a", "b"); got != true {
		t.Errorf("Lt(strings) = %v, want true", got)
	}
	if got, _ := Add.Call("a", "b"); got != "ab" {
		t.Errorf("Add(strings) = %v, want ab", got)
	}
}

func TestPayloadDispatch(t *testing.T) {
	d := mathx.MustNewDecimal("1.5")

	got, err := Add.Call(d, 2)
	if err != nil || got.(mathx.Decimal).String() != "3.5" {
		t.Errorf("Add(decimal, 2) = %v, %v", got, err)
	}
	got, err = Sub.Call(2, d)
	if err != nil || got.(mathx.Decimal).String() != "0.5" {
		t.Errorf("Sub(2, decimal) = %v, %v", got, err)
	}
	got, err = Lt.Call(1, d)
	if err != nil || got != true {
		t.Errorf("Lt(1, decimal) = %v, %v", got, err)
	}

	x := arrayx.FromFloats(2.1, 3.4)
	got, err = Add.Call(x, arrayx.FromInts(21, 34))
	if err != nil || got.(arrayx.Array).String() != "[23.1 37.4]" {
		t.Errorf("Add(array, array) = %v, %v", got, err)
	}
	got, err = Sub.Call(10, arrayx.FromInts(1, 2))
	if err != nil || got.(arrayx.Array).String() != "[9 8]" {
		t.Errorf("Sub(10, array) = %v, %v", got, err)
	}
	got, err = Gt.Call(2, arrayx.FromInts(1, 2, 3))
	if err != nil || got.(arrayx.Array).String() != "[true false false]" {
		t.Errorf("Gt(2, array) = %v, %v", got, err)
	}
	got, err = Neg.Call(x)
	if err != nil || got.(arrayx.Array).String() != "[-2.1 -3.4]" {
		t.Errorf("Neg(array) = %v, %v", got, err)
	}
	if _, err := Pow.Call(x, 2, 3); !numerror.HasCode(err, numerror.CodeUnsupportedOperand) {
		t.Errorf("Pow(array, 2, 3) error = %v", err)
	}
}

func collect(t *testing.T, v any, err error) []any {
	t.Helper()
	if err != nil {
		t.Fatalf("Iter() error = %v", err)
	}
	return slices.Collect(v.(iter.Seq[any]))
}

func TestContainerPrimitives(t *testing.T) {
	if n, err := Len.Call([]float64{1, 2, 3}); err != nil || n != 3 {
		t.Errorf("Len(slice) = %v, %v", n, err)
	}
	if n, err := Len.Call("héllo"); err != nil || n != 5 {
		t.Errorf("Len(string) = %v, %v", n, err)
	}
	if n, err := Len.Call(arrayx.Arange(4)); err != nil || n != 4 {
		t.Errorf("Len(array) = %v, %v", n, err)
	}

	containsTests := []struct {
		container, item any
		want            bool
	}{
		{[]int{1, 2, 3}, 2, true},
		{[]int{1, 2, 3}, 2.0, true},
		{[]int{1, 2, 3}, 4, false},
		{"numerical", "eric", true},
		{map[string]int{"a": 1}, "a", true},
		{map[string]int{"a": 1}, 1, false},
		{arrayx.FromFloats(0.1, 0.2), 0.2, true},
	}
	for _, tt := range containsTests {
		got, err := Contains.Call(tt.container, tt.item)
		if err != nil || got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, %v, want %v", tt.container, tt.item, got, err, tt.want)
		}
	}

	if v, err := GetItem.Call([]int{1, 2, 3}, -1); err != nil || v != 3 {
		t.Errorf("GetItem(slice, -1) = %v, %v", v, err)
	}
	if v, err := GetItem.Call([3]int{1, 2, 3}, traits.SpanStep(2, -4, -1)); err != nil || !reflect.DeepEqual(v, []int{3, 2, 1}) {
		t.Errorf("GetItem(array, 2:-4:-1) = %v, %v", v, err)
	}
	if v, err := GetItem.Call("numerical", traits.Span(0, 3)); err != nil || v != "num" {
		t.Errorf("GetItem(string, 0:3) = %v, %v", v, err)
	}
	if v, err := GetItem.Call(map[string]int{"a": 1}, "a"); err != nil || v != 1 {
		t.Errorf("GetItem(map, a) = %v, %v", v, err)
	}

	v, err := Iter.Call([]int{1, 2})
	if got := collect(t, v, err); !reflect.DeepEqual(got, []any{1, 2}) {
		t.Errorf("Iter(slice) = %v", got)
	}
	v, err = Iter.Call("ab")
	if got := collect(t, v, err); !reflect.DeepEqual(got, []any{"a", "b"}) {
		t.Errorf("Iter(string) = %v", got)
	}
	v, err = Iter.Call(arrayx.FromInts(4, 5))
	if got := collect(t, v, err); !reflect.DeepEqual(got, []any{4, 5}) {
		t.Errorf("Iter(array) = %v", got)
	}
	if _, err := Iter.Call(arrayx.Scalar(1, arrayx.Int)); err == nil {
		t.Error("Iter(0-d array) expected error")
	}
	if _, err := Iter.Call(1); !numerror.HasCode(err, numerror.CodeUnsupportedOperand) {
		t.Errorf("Iter(1) error = %v", err)
	}
}

func TestArrayConversion(t *testing.T) {
	got, err := Array.Call([]any{1, 2.5})
	if err != nil {
		t.Fatalf("Array() error = %v", err)
	}
	if a := got.(arrayx.Array); a.String() != "[1 2.5]" || a.DType() != arrayx.Float {
		t.Errorf("Array() = %v (%v)", a, a.DType())
	}
}
