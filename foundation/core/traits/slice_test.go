// File: slice_test.go
// Title: Slice Normalisation Tests
// Description: Tests slice resolution for negative, omitted and out-of-range bounds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package traits

import (
	"reflect"
	"testing"
)

func intp(i int) *int { return &i }

func TestSlicePositions(t *testing.T) {
	tests := []struct {
		name   string
		slice  Slice
		length int
		want   []int
	}{
		{"full", Slice{}, 4, []int{0, 1, 2, 3}},
		{"span", Span(1, 3), 5, []int{1, 2}},
		{"negative start", Slice{Start: intp(-2)}, 5, []int{3, 4}},
		{"stop beyond length", Span(2, 10), 4, []int{2, 3}},
		{"empty", Span(3, 1), 5, []int{}},
		{"step", SpanStep(0, 5, 2), 5, []int{0, 2, 4}},
		{"reverse", Slice{Step: intp(-1)}, 3, []int{2, 1, 0}},
		{"reverse bounded", SpanStep(4, 1, -2), 5, []int{4, 2}},
		{"reverse clamp", Slice{Start: intp(10), Step: intp(-3)}, 5, []int{4, 1}},
		{"very negative", Slice{Start: intp(-10), Stop: intp(2)}, 4, []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.slice.Positions(tt.length)
			if err != nil {
				t.Fatalf("Positions() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Positions(%d) = %v, want %v", tt.length, got, tt.want)
			}
		})
	}
}

func TestSliceZeroStep(t *testing.T) {
	if _, err := SpanStep(0, 3, 0).Positions(3); err == nil {
		t.Error("Positions() with zero step should fail")
	}
}

func TestSliceString(t *testing.T) {
	if got := Span(1, 3).String(); got != "1:3" {
		t.Errorf("String() = %q", got)
	}
	if got := (Slice{Step: intp(-1)}).String(); got != "::-1" {
		t.Errorf("String() = %q", got)
	}
}

func TestNormalizeIndex(t *testing.T) {
	tests := []struct {
		i, length, want int
		wantErr         bool
	}{
		{0, 3, 0, false},
		{-1, 3, 2, false},
		{3, 3, 0, true},
		{-4, 3, 0, true},
	}
	for _, tt := range tests {
		got, err := NormalizeIndex(tt.i, tt.length)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("NormalizeIndex(%d, %d) = %d, %v", tt.i, tt.length, got, err)
		}
	}
}

func TestOpReflect(t *testing.T) {
	pairs := map[Op]Op{OpLt: OpGt, OpLe: OpGe, OpGt: OpLt, OpGe: OpLe, OpEq: OpEq, OpAdd: OpAdd}
	for op, want := range pairs {
		if got := op.Reflect(); got != want {
			t.Errorf("%v.Reflect() = %v, want %v", op, got, want)
		}
	}
	if !OpNe.IsComparison() || OpAdd.IsComparison() {
		t.Error("IsComparison() mismatch")
	}
}
