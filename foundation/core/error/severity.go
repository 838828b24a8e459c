// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers and the
//              logger can tell expected input problems from internal faults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for numerical codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation without further impact
	SeverityMedium

	// SeverityHigh indicates a broken invariant or an unusable configuration
	SeverityHigh

	// SeverityCritical indicates an internal fault
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be surfaced prominently
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConstruction, CodeInvalidConfig, CodeMissingConfig, CodeConfigError:
		return SeverityHigh

	case CodeUnsupportedOperand, CodeNotImplemented, CodeArity,
		CodeDivisionByZero, CodeOverflow, CodeShapeMismatch:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodePayloadType, CodeIndexOutOfRange,
		CodeInvalidConversion, CodeValidationFailed, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
