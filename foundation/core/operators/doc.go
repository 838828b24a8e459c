// Package operators provides the primitive operator registry of the
// numerical foundation.
//
// Package: operators
// Title: Primitive Operator Registry
// Description: This package pairs each catalog operation (comparison,
//              arithmetic, exponentiation, absolute value, length, membership,
//              indexing, iteration and scalar conversion) with a symbolic name
//              and a primitive implementation. Handles are memoized per
//              (symbol, primitive) so they can serve as map keys and be
//              compared by pointer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Primitives never translate errors. Go number pairs follow mathx scalar
// semantics; any other operand pair is delegated to the payload's
// traits.Binary hook, first on the left operand and then in reflected form
// on the right operand.
//
// Usage:
//
//	sum, err := operators.Add.Call(2, 0.5) // 2.5
//	fmt.Println(operators.Add)             // a + b
//
//	op, err := operators.Default().Lookup("**")
//	r, err := op.Call(3, 4, 5) // pow with modulus: 1
package operators
