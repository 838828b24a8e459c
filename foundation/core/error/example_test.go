// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the numerical error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-16 v0.2.0: Examples for operator failures

package error

import (
	"errors"
	"fmt"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("unsupported operand types").
		WithCode(CodeUnsupportedOperand).
		WithOperation("a + b").
		WithDetail("left", "string")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: unsupported operand types
	// Code: UNSUPPORTED_OPERAND
	// Severity: medium
}

// ExampleWrap demonstrates wrapping a low-level failure
func ExampleWrap() {
	low := errors.New("strconv.ParseFloat: parsing \"x\": invalid syntax")

	err := Wrap(low, "cannot compute the monotonicity of data").
		WithCode(CodePayloadType).
		WithOperation("ismonotonic")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Cause kept:", errors.Is(err, low))

	// Output:
	// Error: cannot compute the monotonicity of data: strconv.ParseFloat: parsing "x": invalid syntax
	// Code: PAYLOAD_TYPE
	// Cause kept: true
}
