// ============================================================================
// numerical - Numerische Größen und Operator-Protokolle
// ============================================================================
//
// Package:     calc
// Description: Display helpers for evaluation results
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package calc

import (
	"fmt"
	"iter"
	"reflect"
	"slices"

	"github.com/msto63/numerical/foundation/core/quantity"
)

// Collect materializes iteration results so they can be printed
func Collect(v any) any {
	if seq, ok := v.(iter.Seq[any]); ok {
		return slices.Collect(seq)
	}
	return v
}

// Format renders a result. Quantities use their payload text, or the
// constructor form when repr is set.
func Format(v any, repr bool) string {
	v = Collect(v)
	if q, ok := v.(quantity.Quantity); ok && quantity.IsQuantity(v) {
		if repr {
			return quantity.Repr(q)
		}
		return fmt.Sprint(q)
	}
	if repr {
		return fmt.Sprintf("%#v", v)
	}
	return fmt.Sprint(v)
}

// TypeLabel names the dynamic type of a result, e.g. "quantities.Real"
func TypeLabel(v any) string {
	if v == nil {
		return "nil"
	}
	if quantity.IsQuantity(v) {
		return quantity.TypeName(reflect.TypeOf(v))
	}
	return fmt.Sprintf("%T", v)
}
