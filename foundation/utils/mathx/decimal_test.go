// File: decimal_test.go
// Title: Decimal Payload Tests
// Description: Tests for decimal parsing, rounding, formatting and the
//              operator hooks used by dispatch.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16

package mathx

import (
	"errors"
	"fmt"
	"testing"

	numerror "github.com/msto63/numerical/foundation/core/error"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
)

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"123.45", "123.45", false},
		{"-67.89", "-67.89", false},
		{"100", "100", false},
		{"0.1", "0.1", false},
		{"1/2", "0.5", false},
		{"1/3", "0.3333333333333333333333333333", false},
		{" 2 ", "2", false},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := NewDecimal(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDecimal(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && d.String() != tt.expected {
				t.Errorf("NewDecimal(%q).String() = %q, want %q", tt.input, d.String(), tt.expected)
			}
		})
	}
}

func TestDecimalZeroValue(t *testing.T) {
	var d Decimal
	if !d.IsZero() || d.String() != "0" {
		t.Errorf("zero value = %q", d.String())
	}
	if got := d.Add(One()); got.String() != "1" {
		t.Errorf("zero + 1 = %v", got)
	}
}

func TestDecimalRound(t *testing.T) {
	tests := []struct {
		input  string
		places int
		mode   RoundingMode
		want   string
	}{
		{"2.345", 2, RoundingModeHalfUp, "2.35"},
		{"2.345", 2, RoundingModeHalfDown, "2.34"},
		{"2.345", 2, RoundingModeHalfEven, "2.34"},
		{"2.355", 2, RoundingModeHalfEven, "2.36"},
		{"-2.345", 2, RoundingModeHalfUp, "-2.35"},
		{"-2.5", 0, RoundingModeHalfEven, "-2"},
		{"2.301", 2, RoundingModeUp, "2.31"},
		{"-2.309", 2, RoundingModeDown, "-2.3"},
		{"7", 3, RoundingModeHalfUp, "7"},
	}

	for _, tt := range tests {
		got := MustNewDecimal(tt.input).Round(tt.places, tt.mode)
		if got.String() != tt.want {
			t.Errorf("Round(%s, %d, %v) = %s, want %s", tt.input, tt.places, tt.mode, got, tt.want)
		}
	}
}

func TestDecimalBinary(t *testing.T) {
	d := MustNewDecimal("1.25")

	tests := []struct {
		name      string
		op        traits.Op
		other     any
		reflected bool
		want      any
	}{
		{"add int", traits.OpAdd, 2, false, "3.25"},
		{"add float", traits.OpAdd, 0.5, false, "1.75"},
		{"reflected sub", traits.OpSub, 2, true, "0.75"},
		{"mul decimal", traits.OpMul, MustNewDecimal("4"), false, "5"},
		{"truediv", traits.OpTrueDiv, 5, false, "0.25"},
		{"floordiv truncates", traits.OpFloorDiv, MustNewDecimal("-0.5"), false, "-2"},
		{"mod sign of dividend", traits.OpMod, MustNewDecimal("-0.5"), false, "0.25"},
		{"pow int", traits.OpPow, 2, false, "1.5625"},
		{"reflected pow", traits.OpPow, 2, true, nil},
		{"lt", traits.OpLt, 2, false, true},
		{"reflected lt", traits.OpLt, 2, true, false},
		{"eq", traits.OpEq, 1.25, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Binary(tt.op, tt.other, tt.reflected)
			if err != nil {
				t.Fatalf("Binary() error = %v", err)
			}
			switch want := tt.want.(type) {
			case string:
				if fmt.Sprint(got) != want {
					t.Errorf("Binary(%v, %v) = %v, want %s", tt.op, tt.other, got, want)
				}
			case bool:
				if got != want {
					t.Errorf("Binary(%v, %v) = %v, want %v", tt.op, tt.other, got, want)
				}
			default:
				if _, ok := got.(Decimal); !ok {
					t.Errorf("Binary(%v, %v) = %T, want Decimal", tt.op, tt.other, got)
				}
			}
		})
	}
}

func TestDecimalBinaryNotImplemented(t *testing.T) {
	_, err := MustNewDecimal("1").Binary(traits.OpAdd, "x", false)
	if !errors.Is(err, numerrors.ErrNotImplemented) {
		t.Errorf("Binary(string) error = %v, want ErrNotImplemented", err)
	}
	_, err = MustNewDecimal("1").Binary(traits.OpTrueDiv, 0, false)
	if !numerror.HasCode(err, numerror.CodeDivisionByZero) {
		t.Errorf("Binary(/ 0) error = %v", err)
	}
}

func TestDecimalUnaryAndConversions(t *testing.T) {
	d := MustNewDecimal("-2.5")

	if got, _ := d.Unary(traits.OpAbs); fmt.Sprint(got) != "2.5" {
		t.Errorf("abs = %v", got)
	}
	if got, _ := d.Unary(traits.OpRound); got != -2 {
		t.Errorf("round = %v (%T), want -2", got, got)
	}
	if i, _ := d.Int(); i != -2 {
		t.Errorf("Int() = %d", i)
	}
	if f, _ := d.Float64(); f != -2.5 {
		t.Errorf("Float64() = %v", f)
	}
	if c, _ := d.Complex128(); c != complex(-2.5, 0) {
		t.Errorf("Complex128() = %v", c)
	}
}

func TestDecimalFormatting(t *testing.T) {
	d := MustNewDecimal("1.25")
	if got := fmt.Sprintf("%#v", d); got != "1.25d" {
		t.Errorf("%%#v = %q", got)
	}
	if got := fmt.Sprintf("%.3f", d); got != "1.250" {
		t.Errorf("%%.3f = %q", got)
	}
	if got := d.StringFixed(1); got != "1.3" {
		t.Errorf("StringFixed(1) = %q", got)
	}
}

func TestGenericConstructors(t *testing.T) {
	if got := FromInteger(uint8(200)); got.String() != "200" {
		t.Errorf("FromInteger(uint8) = %v", got)
	}
	if got := FromInteger(uint64(1 << 63)); got.String() != "9223372036854775808" {
		t.Errorf("FromInteger(uint64) = %v", got)
	}
	if got, err := FromFloat(float32(0.5)); err != nil || got.String() != "0.5" {
		t.Errorf("FromFloat(float32) = %v, %v", got, err)
	}
}

func ExampleDecimal_Binary() {
	price := MustNewDecimal("19.99")
	total, _ := price.Binary(traits.OpMul, 3, false)
	fmt.Println(total)
	// Output: 59.97
}
