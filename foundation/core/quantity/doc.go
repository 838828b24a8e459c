// Package quantity provides the single-payload wrapper base, the
// unwrap-dispatch functions and result rewrapping.
//
// Package: quantity
// Title: Numerical Quantity Base
// Description: A Quantity wraps exactly one payload. Unary and Binary
//              substitute payloads for wrapped operands, call a catalog
//              operator and return its raw result. Rewrap builds the
//              receiver's own type from such a raw result through the
//              type's FromRaw constructor.
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
//	raw, err := quantity.Binary(operators.Add, q, 2) // payload(q) + 2
//	r, err := quantity.Rewrap[Real](raw, err)          // Real(raw)
package quantity
