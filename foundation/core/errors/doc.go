// Package errors provides the standard error constructors for all numerical
// foundation modules.
//
// Package: errors
// Title: Standard Error Handling API for the Numerical Foundation
// Description: This package builds *error.Error values with consistent codes,
//              module and operation details for the failure classes of the
//              numerical stack: unsupported operands, payload type errors,
//              wrapper construction errors, arithmetic faults and configuration
//              problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-16 v0.2.0: Numerical failure classes
//
// Payload hooks signal "not for this operand pair" with ErrNotImplemented so
// the dispatcher can try the reflected form. Every other failure propagates to
// the caller unchanged; helpers such as PayloadType always keep the low-level
// cause in the chain.
package errors
