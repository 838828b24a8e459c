// Package error provides structured error handling for the numerical foundation.
//
// Package: error
// Title: Numerical Error Handling Framework
// Description: This package implements a structured error type with codes,
//              severities, operation names, details and chained causes. Every
//              failure raised by payload primitives, wrapper constructors or the
//              configuration layer is an *Error, so callers can branch on codes
//              with HasCode while errors.Is/As keep working on the cause chain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Numerical error codes, chain-aware lookups
//
// Usage:
//
//	import numerror "github.com/msto63/numerical/foundation/core/error"
//
//	err := numerror.New("unsupported operand types").
//	  WithCode(numerror.CodeUnsupportedOperand).
//	  WithOperation("a + b").
//	  WithDetail("left", "string")
//
//	if numerror.HasCode(err, numerror.CodeUnsupportedOperand) {
//	  // handle dispatch failures
//	}
package error
