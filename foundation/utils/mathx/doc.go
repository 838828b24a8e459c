// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx supplies the scalar semantics behind the
//              primitive operators and an exact decimal payload.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Scalar payload semantics, Decimal as operator payload

// Package mathx provides scalar arithmetic for Go numbers and a Decimal payload.
//
// Scalar semantics
//
// BinaryOp and UnaryOp evaluate the catalog operations on Go numbers after
// promoting both operands to the wider of int, float64 and complex128:
//
//	mathx.BinaryOp(traits.OpAdd, 2, 3)        // 5 (int)
//	mathx.BinaryOp(traits.OpTrueDiv, 3, 2)    // 1.5
//	mathx.BinaryOp(traits.OpFloorDiv, -7, 2)  // -4
//	mathx.BinaryOp(traits.OpMod, -7, 2)       // 1
//	mathx.BinaryOp(traits.OpPow, 2, -1)       // 0.5
//	mathx.BinaryOp(traits.OpPow, 3, 4, 5)     // 1 (modular)
//	mathx.UnaryOp(traits.OpRound, 2.5)        // 2 (half to even, int result)
//
// Integer overflow and division by zero are reported as structured errors
// (codes OVERFLOW and DIVISION_BY_ZERO) rather than wrapping or producing
// infinities.
//
// Decimal
//
// Decimal is an immutable arbitrary-precision value over *big.Rat. It
// implements traits.Binary, traits.Unary and traits.Converter, so it can be
// wrapped in any quantity type and mixed with Go ints and floats:
//
//	d := mathx.MustNewDecimal("1.25")
//	sum, _ := d.Binary(traits.OpAdd, 2, false) // 3.25
//
// Floor division on decimals truncates toward zero and the remainder takes
// the sign of the dividend.
package mathx
