// Package mixins provides reusable implementations of the capability
// protocols for single-payload quantities.
//
// Package: mixins
// Title: Capability Mixins
// Description: Each mixin is a generic struct over the payload type T and
//              the concrete wrapper type S. Embedding a mixin in S gives S
//              the capability's methods, all built from quantity.Unary,
//              quantity.Binary, the catalog operators and quantity.Rewrap.
//              Composite mixins embed their parts next to a shared Base so
//              every part reads the same payload.
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
//	type Kelvin struct {
//	  mixins.Real[float64, Kelvin]
//	}
//
//	func NewKelvin(v float64) Kelvin {
//	  return Kelvin{mixins.NewReal[float64, Kelvin](v)}
//	}
//
//	func (Kelvin) FromRaw(raw any) (Kelvin, error) {
//	  v, err := quantity.Cast[float64]("Kelvin", raw)
//	  return NewKelvin(v), err
//	}
//
//	sum, err := NewKelvin(2).Add(NewKelvin(3)) // Kelvin(5)
package mixins
