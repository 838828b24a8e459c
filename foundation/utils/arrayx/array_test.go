// File: array_test.go
// Title: Array Payload Tests
// Description: Tests for construction, element-wise operators, indexing and
//              reductions of the N-d array payload.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16

package arrayx

import (
	stderrors "errors"
	"math"
	"slices"
	"testing"

	numerror "github.com/msto63/numerical/foundation/core/error"
	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

func mustFrom(t *testing.T, v any) Array {
	t.Helper()
	a, err := From(v)
	if err != nil {
		t.Fatalf("From(%v) error = %v", v, err)
	}
	return a
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		in    any
		shape []int
		dtype DType
		str   string
	}{
		{"int scalar", 3, nil, Int, "3"},
		{"float scalar", 2.5, nil, Float, "2.5"},
		{"bool scalar", true, nil, Bool, "true"},
		{"floats", []float64{0.1, 0.2}, []int{2}, Float, "[0.1 0.2]"},
		{"nested ints", [][]int{{1, 2}, {3, 4}}, []int{2, 2}, Int, "[[1 2] [3 4]]"},
		{"mixed", []any{1, 2.5}, []int{2}, Float, "[1 2.5]"},
		{"empty", []any{}, []int{0}, Float, "[]"},
		{"go array", [3]int8{1, 2, 3}, []int{3}, Int, "[1 2 3]"},
		{"decimal", mathx.MustNewDecimal("1.5"), nil, Float, "1.5"},
		{"nested array", []Array{FromInts(1, 2), FromInts(3, 4)}, []int{2, 2}, Int, "[[1 2] [3 4]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustFrom(t, tt.in)
			if !slices.Equal(a.Shape(), tt.shape) {
				t.Errorf("Shape() = %v, want %v", a.Shape(), tt.shape)
			}
			if a.DType() != tt.dtype {
				t.Errorf("DType() = %v, want %v", a.DType(), tt.dtype)
			}
			if a.String() != tt.str {
				t.Errorf("String() = %q, want %q", a.String(), tt.str)
			}
		})
	}
}

func TestFromRejects(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"string", "sequence"},
		{"string slice", []string{"1", "2"}},
		{"ragged depth", []any{[]int{1}, 2}},
		{"ragged leaf first", []any{1, []int{1}}},
		{"ragged length", [][]int{{1, 2}, {3}}},
		{"complex", []complex128{1i}},
		{"nil", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := From(tt.in)
			if !numerrors.IsPayloadType(err) {
				t.Errorf("From(%v) error = %v, want payload type error", tt.in, err)
			}
		})
	}
}

func TestNewAndReshape(t *testing.T) {
	if _, err := New([]int{2, 2}, []float64{1, 2, 3}, Int); !numerror.HasCode(err, numerror.CodeShapeMismatch) {
		t.Errorf("New() error = %v, want shape mismatch", err)
	}

	a, err := Arange(60).Reshape(3, 4, -1)
	if err != nil {
		t.Fatalf("Reshape() error = %v", err)
	}
	if !slices.Equal(a.Shape(), []int{3, 4, 5}) {
		t.Errorf("Shape() = %v, want [3 4 5]", a.Shape())
	}
	if v, _ := a.At(1, 2, 3); v != 33 {
		t.Errorf("At(1, 2, 3) = %v, want 33", v)
	}
	if _, err := a.Reshape(7, -1); err == nil {
		t.Error("Reshape(7, -1) expected error")
	}
	if got := a.Ravel().Shape(); !slices.Equal(got, []int{60}) {
		t.Errorf("Ravel().Shape() = %v", got)
	}
}

func TestBinary(t *testing.T) {
	tests := []struct {
		name      string
		op        traits.Op
		a         Array
		other     any
		reflected bool
		want      string
		dtype     DType
	}{
		{"scalar add", traits.OpAdd, FromInts(1, 2, 3), 2, false, "[3 4 5]", Int},
		{"float add", traits.OpAdd, FromInts(1, 2), 0.5, false, "[1.5 2.5]", Float},
		{"reflected sub", traits.OpSub, FromInts(1, 2), 10, true, "[9 8]", Int},
		{"truediv", traits.OpTrueDiv, FromInts(1, 2), 2, false, "[0.5 1]", Float},
		{"floordiv", traits.OpFloorDiv, FromInts(-7, 7), 2, false, "[-4 3]", Int},
		{"mod", traits.OpMod, FromInts(-7, 7), 2, false, "[1 1]", Int},
		{"int floordiv by zero", traits.OpFloorDiv, FromInts(1), 0, false, "[0]", Int},
		{"pow", traits.OpPow, FromInts(2, 3), 2, false, "[4 9]", Int},
		{"negative pow", traits.OpPow, FromInts(2), -1, false, "[0.5]", Float},
		{"element-wise", traits.OpMul, FromInts(1, 2), []int{3, 4}, false, "[3 8]", Int},
		{"row broadcast", traits.OpAdd, FromInts(10, 20), [][]int{{1, 2}, {3, 4}}, false, "[[11 22] [13 24]]", Int},
		{"column broadcast", traits.OpAdd, FromInts(10, 20), [][]int{{1}, {2}}, false, "[[11 21] [12 22]]", Int},
		{"bools add as ints", traits.OpAdd, FromBools(true, true), true, false, "[2 2]", Int},
		{"gt", traits.OpGt, FromInts(1, 2, 3), 1, false, "[false true true]", Bool},
		{"reflected lt", traits.OpLt, FromInts(1, 2, 3), 2, true, "[false false true]", Bool},
		{"eq", traits.OpEq, FromFloats(0.1, 0.2), 0.2, false, "[false true]", Bool},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Binary(tt.op, tt.other, tt.reflected)
			if err != nil {
				t.Fatalf("Binary() error = %v", err)
			}
			arr := got.(Array)
			if arr.String() != tt.want || arr.DType() != tt.dtype {
				t.Errorf("Binary() = %v (%v), want %v (%v)", arr, arr.DType(), tt.want, tt.dtype)
			}
		})
	}
}

func TestBinaryErrors(t *testing.T) {
	a := FromInts(1, 2)
	if _, err := a.Binary(traits.OpAdd, FromInts(1, 2, 3), false); !numerror.HasCode(err, numerror.CodeShapeMismatch) {
		t.Errorf("mismatched shapes error = %v", err)
	}
	if _, err := a.Binary(traits.OpAdd, "x", false); !stderrors.Is(err, numerrors.ErrNotImplemented) {
		t.Errorf("string operand error = %v, want ErrNotImplemented", err)
	}
	if _, err := a.Binary(traits.OpContains, 1, false); !numerror.HasCode(err, numerror.CodeUnsupportedOperand) {
		t.Errorf("non-arithmetic op error = %v", err)
	}

	got, err := FromFloats(1, -1, 0).Binary(traits.OpTrueDiv, 0, false)
	if err != nil {
		t.Fatalf("float division error = %v", err)
	}
	f := got.(Array).Floats()
	if !math.IsInf(f[0], 1) || !math.IsInf(f[1], -1) || !math.IsNaN(f[2]) {
		t.Errorf("float division by zero = %v, want [+Inf -Inf NaN]", f)
	}
}

func TestUnary(t *testing.T) {
	tests := []struct {
		op   traits.Op
		a    Array
		want string
	}{
		{traits.OpAbs, FromInts(-1, 2), "[1 2]"},
		{traits.OpNeg, FromFloats(1.5, -2), "[-1.5 2]"},
		{traits.OpPos, FromInts(3), "[3]"},
		{traits.OpRound, FromFloats(0.5, 1.5, 2.5), "[0 2 2]"},
	}
	for _, tt := range tests {
		got, err := tt.a.Unary(tt.op)
		if err != nil {
			t.Fatalf("Unary(%v) error = %v", tt.op, err)
		}
		if got.(Array).String() != tt.want {
			t.Errorf("Unary(%v) = %v, want %v", tt.op, got, tt.want)
		}
	}
	if _, err := FromInts(1).Unary(traits.OpLen); !stderrors.Is(err, numerrors.ErrNotImplemented) {
		t.Errorf("Unary(len) error = %v", err)
	}
}

func TestSequenceProtocol(t *testing.T) {
	grid := mustFrom(t, [][]int{{1, 2}, {3, 4}, {5, 6}})

	if n, err := grid.Len(); err != nil || n != 3 {
		t.Errorf("Len() = %d, %v, want 3", n, err)
	}
	if _, err := Scalar(1, Int).Len(); err == nil {
		t.Error("Len() of 0-d array expected error")
	}

	row, err := grid.Index(-1)
	if err != nil || row.(Array).String() != "[5 6]" {
		t.Errorf("Index(-1) = %v, %v", row, err)
	}
	part, err := grid.Index(traits.Span(0, 2))
	if err != nil || part.(Array).String() != "[[1 2] [3 4]]" {
		t.Errorf("Index(0:2) = %v, %v", part, err)
	}
	if v, err := grid.Index([]int{1, 0}); err != nil || v != 3 {
		t.Errorf("Index([1 0]) = %v, %v", v, err)
	}
	if v, err := FromFloats(0.1, 0.2).Index(1); err != nil || v != 0.2 {
		t.Errorf("Index(1) = %v, %v", v, err)
	}
	if _, err := grid.Index(3); !numerror.HasCode(err, numerror.CodeIndexOutOfRange) {
		t.Errorf("Index(3) error = %v", err)
	}
	if _, err := grid.Index("a"); err == nil {
		t.Error("Index(\"a\") expected error")
	}

	for _, tt := range []struct {
		v    any
		want bool
	}{{4, true}, {7, false}, {"x", false}, {[]int{5, 6}, true}} {
		if got, err := grid.Contains(tt.v); err != nil || got != tt.want {
			t.Errorf("Contains(%v) = %v, %v, want %v", tt.v, got, err, tt.want)
		}
	}

	var rows []string
	for r := range grid.All() {
		rows = append(rows, r.(Array).String())
	}
	if !slices.Equal(rows, []string{"[1 2]", "[3 4]", "[5 6]"}) {
		t.Errorf("All() = %v", rows)
	}
}

func TestScalarConversion(t *testing.T) {
	a := FromFloats(2.7)
	if f, err := a.Float64(); err != nil || f != 2.7 {
		t.Errorf("Float64() = %v, %v", f, err)
	}
	if i, err := a.Int(); err != nil || i != 2 {
		t.Errorf("Int() = %v, %v", i, err)
	}
	if c, err := a.Complex128(); err != nil || c != 2.7 {
		t.Errorf("Complex128() = %v, %v", c, err)
	}
	if _, err := FromInts(1, 2).Float64(); !numerror.HasCode(err, numerror.CodeInvalidConversion) {
		t.Errorf("Float64() of size-2 array error = %v", err)
	}
}

func TestReductions(t *testing.T) {
	grid := mustFrom(t, [][]int{{1, 3, 6}, {0, 0, 1}})
	d, err := Diff(grid)
	if err != nil || d.String() != "[[2 3] [0 1]]" {
		t.Errorf("Diff() = %v, %v", d, err)
	}
	if d, _ := Diff(FromInts(1)); !slices.Equal(d.Shape(), []int{0}) {
		t.Errorf("Diff() of single element shape = %v", d.Shape())
	}

	if v, _ := Min(grid); v != 0 {
		t.Errorf("Min() = %v", v)
	}
	if v, _ := Max(grid); v != 6 {
		t.Errorf("Max() = %v", v)
	}
	if v, _ := Max(FromFloats(1, math.NaN(), 3)); !math.IsNaN(v) {
		t.Errorf("Max() with NaN = %v", v)
	}
	if _, err := Min(FromFloats()); err == nil {
		t.Error("Min() of empty array expected error")
	}
	if i, _ := ArgMin(FromFloats(3, 1, 1)); i != 1 {
		t.Errorf("ArgMin() = %d, want 1", i)
	}

	if got := Unravel(33, []int{3, 4, 5}); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Unravel(33) = %v", got)
	}

	if !AllTrue(FromBools()) || AnyTrue(FromBools()) {
		t.Error("empty truth reductions")
	}
	if !Truth(FromInts(1, 2)) || Truth(FromInts(1, 0)) || Truth(0) || !Truth(2.5) {
		t.Error("Truth() mismatch")
	}

	if !ArrayEqual([]int{1, 2}, FromFloats(1, 2)) || ArrayEqual([]int{1, 2}, []int{1, 2, 3}) {
		t.Error("ArrayEqual() mismatch")
	}
	if ArrayEqual("ab", "ab") {
		t.Error("ArrayEqual() of strings should be false")
	}
}

func TestFloatKernels(t *testing.T) {
	grid := mustFrom(t, [][]float64{{1, 2.5}, {-4, 8}})
	col := mustFrom(t, [][]float64{{2}, {-2}})
	tests := []struct {
		op   traits.Op
		want string
	}{
		{traits.OpAdd, "[[3 4.5] [-6 6]]"},
		{traits.OpSub, "[[-1 0.5] [-2 10]]"},
		{traits.OpMul, "[[2 5] [8 -16]]"},
		{traits.OpTrueDiv, "[[0.5 1.25] [2 -4]]"},
	}
	for _, tt := range tests {
		got, err := Apply(tt.op, grid, col)
		if err != nil {
			t.Fatalf("Apply(%v) error = %v", tt.op, err)
		}
		if got.String() != tt.want {
			t.Errorf("Apply(%v) = %v, want %v", tt.op, got, tt.want)
		}
	}
	if got, _ := Apply(traits.OpAdd, grid, col); grid.String() != "[[1 2.5] [-4 8]]" || got.Size() != 4 {
		t.Errorf("Apply() modified its operand: %v", grid)
	}

	neg, err := grid.Unary(traits.OpNeg)
	if err != nil || neg.(Array).String() != "[[-1 -2.5] [4 -8]]" {
		t.Errorf("Unary(neg) = %v, %v", neg, err)
	}

	d, err := Diff(mustFrom(t, [][]float64{{0.5, 2, 1}, {3, 3, 3}}))
	if err != nil || d.String() != "[[1.5 -1] [0 0]]" {
		t.Errorf("Diff() = %v, %v", d, err)
	}
}

func TestExtremaWithNaN(t *testing.T) {
	nan := FromFloats(3, math.NaN(), -1, math.NaN())
	if v, _ := Min(nan); !math.IsNaN(v) {
		t.Errorf("Min() with NaN = %v, want NaN", v)
	}
	if i, _ := ArgMin(nan); i != 1 {
		t.Errorf("ArgMin() with NaN = %d, want 1", i)
	}
	if i, _ := ArgMin(FromFloats(4, -2, 7, -2)); i != 1 {
		t.Errorf("ArgMin() = %d, want 1", i)
	}
	if v, _ := Min(FromFloats(4, -2, 7)); v != -2 {
		t.Errorf("Min() = %v, want -2", v)
	}
	for name, fn := range map[string]func(Array) (float64, error){"Min": Min, "Max": Max} {
		if _, err := fn(FromFloats()); !numerror.HasCode(err, numerror.CodeInvalidInput) {
			t.Errorf("%s() of empty array error = %v", name, err)
		}
	}
	if _, err := ArgMin(FromFloats()); !numerror.HasCode(err, numerror.CodeInvalidInput) {
		t.Errorf("ArgMin() of empty array error = %v", err)
	}
	if !AnyTrue(FromFloats(0, math.NaN())) || AllTrue(FromFloats(1, 0)) {
		t.Error("truth reductions over floats")
	}
}
