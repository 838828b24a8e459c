// Package protocols declares the capability interfaces of numerical
// quantities and a structural runtime check against them.
//
// Package: protocols
// Title: Capability Protocols
// Description: One interface per capability, composed by embedding as
//              Comparable ⊇ Orderable, Algebraic ⊇ Additive ∧ Multiplicative,
//              Complex ⊇ Algebraic and Real, Value, Sequence ⊇ Comparable ∧
//              Complex. Methods that produce a new quantity are generic over
//              the implementing type S. Satisfies checks a value against a
//              Capability by inspecting its method set, without requiring any
//              declaration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Prefer the interfaces as static constraints where the type is known:
//
//	func Double[S protocols.Additive[S]](s S) (S, error) { return s.Add(s) }
//
// and Satisfies where only a runtime check is possible:
//
//	if protocols.Satisfies(v, protocols.CapReal) { ... }
package protocols
