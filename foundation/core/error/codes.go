// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the numerical foundation.
//              Codes classify dispatch, payload, construction, configuration and
//              validation failures so callers can branch on them without parsing
//              messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced platform codes with numerical codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Operator dispatch
	CodeUnsupportedOperand Code = "UNSUPPORTED_OPERAND"
	CodeNotImplemented     Code = "NOT_IMPLEMENTED"
	CodeArity              Code = "ARITY"

	// Payload and arithmetic
	CodePayloadType       Code = "PAYLOAD_TYPE"
	CodeDivisionByZero    Code = "DIVISION_BY_ZERO"
	CodeOverflow          Code = "OVERFLOW"
	CodeIndexOutOfRange   Code = "INDEX_OUT_OF_RANGE"
	CodeShapeMismatch     Code = "SHAPE_MISMATCH"
	CodeInvalidConversion Code = "INVALID_CONVERSION"

	// Wrapper construction
	CodeConstruction Code = "CONSTRUCTION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeUnsupportedOperand, CodeNotImplemented, CodeArity,
		CodePayloadType, CodeDivisionByZero, CodeOverflow, CodeIndexOutOfRange,
		CodeShapeMismatch, CodeInvalidConversion,
		CodeConstruction,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnsupportedOperand, CodeNotImplemented, CodeArity:
		return "dispatch"
	case CodePayloadType, CodeDivisionByZero, CodeOverflow, CodeIndexOutOfRange,
		CodeShapeMismatch, CodeInvalidConversion:
		return "payload"
	case CodeConstruction:
		return "construction"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools
func (c Code) ExitCode() int {
	switch c.Category() {
	case "configuration":
		return 78
	case "validation":
		return 65
	case "dispatch", "payload", "construction":
		return 2
	default:
		return 1
	}
}
