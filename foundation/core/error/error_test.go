// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-16 v0.2.0: Chain-aware code lookup tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("StackTrace()[0].Function = %q, want the caller of New", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unsupported operand for %s", "a + b")
	if err.Error() != "unsupported operand for a + b" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap structured error",
			err:     New("division by zero").WithCode(CodeDivisionByZero),
			message: "a / b",
			wantMsg: "a / b: division by zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			var inner *Error
			if errors.As(tt.err, &inner) && wrapped.Code() != inner.Code() {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), inner.Code())
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("bad shape").
		WithCode(CodeShapeMismatch).
		WithOperation("a + b").
		WithDetail("left", "(2,)")

	outer := Wrap(inner, "evaluating expression")

	if outer.Operation() != "a + b" {
		t.Errorf("Operation() = %q, want %q", outer.Operation(), "a + b")
	}
	if outer.Details()["left"] != "(2,)" {
		t.Errorf("Details()[left] = %v, want (2,)", outer.Details()["left"])
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is() should find middle layer")
	}

	if !errors.Is(top, original) {
		t.Error("errors.Is() should find original error")
	}

	if root := top.RootCause(); root != original {
		t.Errorf("RootCause() = %v, want %v", root, original)
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}

	e := err.(*Error)
	if e.Details()["truncated"] != true {
		t.Errorf("expected truncated chain, got details %v", e.Details())
	}
}

func TestWithCode(t *testing.T) {
	err := New("test error").WithCode(CodeConstruction)

	if err.Code() != CodeConstruction {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeConstruction)
	}

	if err.Severity() != GetSeverityFromCode(CodeConstruction) {
		t.Errorf("Severity() = %v, want %v", err.Severity(), GetSeverityFromCode(CodeConstruction))
	}

	explicit := New("test error").WithSeverity(SeverityCritical).WithCode(CodePayloadType)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"left":  2,
		"right": "x",
	}

	err := New("test error").WithDetails(details).WithDetail("op", "a + b")

	got := err.Details()
	if len(got) != 3 {
		t.Errorf("Details() length = %d, want 3", len(got))
	}

	got["left"] = 99
	if err.Details()["left"] != 2 {
		t.Error("Details() must return a copy")
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"direct", New("x").WithCode(CodePayloadType), CodePayloadType, true},
		{"other code", New("x").WithCode(CodePayloadType), CodeConstruction, false},
		{"standard error", errors.New("x"), CodePayloadType, false},
		{"nil", nil, CodePayloadType, false},
		{"wrapped by fmt", fmt.Errorf("outer: %w", New("x").WithCode(CodeOverflow)), CodeOverflow, true},
		{"wrapped inner code", Wrap(New("x").WithCode(CodeOverflow), "outer").WithCode(CodeInternal), CodeOverflow, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCodeAndSeverity(t *testing.T) {
	err := fmt.Errorf("context: %w", New("x").WithCode(CodeDivisionByZero))

	if got := GetCode(err); got != CodeDivisionByZero {
		t.Errorf("GetCode() = %v, want %v", got, CodeDivisionByZero)
	}
	if got := GetSeverity(err); got != SeverityMedium {
		t.Errorf("GetSeverity() = %v, want %v", got, SeverityMedium)
	}
	if got := GetCode(errors.New("plain")); got != CodeUnknown {
		t.Errorf("GetCode(plain) = %v, want %v", got, CodeUnknown)
	}
}

func TestString(t *testing.T) {
	err := Wrap(errors.New("cause"), "failed").
		WithCode(CodeUnsupportedOperand).
		WithOperation("a + b").
		WithDetail("right", "string")

	s := err.String()
	for _, want := range []string{"Error: failed", "Code: UNSUPPORTED_OPERAND", "Operation: a + b", "right=string", "Cause: cause"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("bad operand").
		WithCode(CodeUnsupportedOperand).
		WithOperation("a < b").
		WithDetail("left", []int{1, 2})

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != "UNSUPPORTED_OPERAND" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "a < b" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	details := decoded["details"].(map[string]interface{})
	if details["left"] != "[1 2]" {
		t.Errorf("details.left = %v", details["left"])
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnsupportedOperand, "dispatch"},
		{CodePayloadType, "payload"},
		{CodeConstruction, "construction"},
		{CodeInvalidConfig, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeUnknown, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
			if !tt.code.IsValid() {
				t.Errorf("IsValid() = false for %s", tt.code)
			}
		})
	}

	if Code("BOGUS").IsValid() {
		t.Error("IsValid() = true for unknown code")
	}
}

func TestSeverity(t *testing.T) {
	if SeverityHigh.String() != "high" || Severity(42).String() != "unknown" {
		t.Error("unexpected severity strings")
	}
	if !SeverityCritical.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("unexpected ShouldAlert() results")
	}
	if GetSeverityFromCode(CodeInternal) != SeverityCritical {
		t.Error("internal errors must be critical")
	}
	if GetSeverityFromCode(CodePayloadType) != SeverityLow {
		t.Error("payload type errors must be low severity")
	}
}
