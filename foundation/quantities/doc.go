// Package quantities provides the shipped numerical quantity types.
//
// Package: quantities
// Title: Numerical Quantity Types
// Description: Real, Value, Sequence and Decimal compose the capability
//              mixins over their payloads. Apply and ApplyUnary evaluate a
//              catalog operator on arbitrary operands the way an expression
//              would: the left operand's forward method first, then the right
//              operand's reflected method, then the raw primitive.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Documented own types
//
// Usage:
//
//	a, b := quantities.NewReal(2), quantities.NewReal(3)
//	sum, _ := a.Add(b)                               // Real(5)
//	r, _ := quantities.Apply(operators.Sub, 10, a)   // a.RSub(10) = Real(8)
//	ok := protocols.Satisfies(a, protocols.CapReal)  // true
//
// # Own types
//
// A type of one's own is built by composing a mixin with the type itself as
// S and giving it a FromRaw:
//
//	type Kelvin struct {
//		mixins.Real[float64, Kelvin]
//	}
//
//	func (Kelvin) FromRaw(raw any) (Kelvin, error) {
//		f, err := quantity.Cast[float64]("Kelvin", raw)
//		if err != nil {
//			return Kelvin{}, err
//		}
//		return Kelvin{mixins.NewReal[float64, Kelvin](f)}, nil
//	}
//
// Results of Kelvin's methods are Kelvin values. Embedding a shipped type,
// as in struct{ quantities.Real }, does not derive a new type: the promoted
// methods return Real, and the embedding type does not satisfy CapReal or
// any other capability whose methods return the receiver type.
package quantities
