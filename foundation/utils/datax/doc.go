// Package datax provides data-inspection utilities for numeric payloads.
//
// Package: datax
// Title: Numeric Data Inspection
// Description: Predicates over numbers, arrays and wrapped quantities:
//              integrality, data types, monotonicity, equality, closeness and
//              nearest-value search. Wrapped operands are unwrapped first and
//              data that cannot be read as numeric arrays is reported as a
//              payload type error carrying the low-level cause.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	ok, err := datax.IsMonotonic([]int{1, 2, 3, 4}, datax.Increasing, true)
//	found, err := datax.FindNearest([]float64{0.1, 0.2, 0.3}, 0.25, datax.Lower)
//	// found.Index == []int{2}, found.Value == 0.3
package datax
