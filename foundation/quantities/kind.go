// File: kind.go
// Title: Quantity Kinds
// Description: Names the shipped quantity types and wraps plain values into
//              them, either by explicit kind or by inspecting the value.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package quantities

import (
	"reflect"
	"strings"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/quantity"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

// Kind names a shipped quantity type
type Kind string

const (
	KindReal     Kind = "real"
	KindValue    Kind = "value"
	KindSequence Kind = "sequence"
	KindDecimal  Kind = "decimal"
)

// Kinds lists every shipped kind
func Kinds() []Kind {
	return []Kind{KindReal, KindValue, KindSequence, KindDecimal}
}

// ParseKind resolves a kind name case-insensitively
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", numerrors.NotFound(numerrors.ModuleQuantities, "kind", s)
}

// Wrap builds a quantity of the given kind around v. Values that are
// already quantities are unwrapped first.
func Wrap(kind Kind, v any) (quantity.Quantity, error) {
	v = quantity.Unwrap(v)
	switch kind {
	case KindReal:
		return Real{}.FromRaw(v)
	case KindValue:
		return Value{}.FromRaw(v)
	case KindSequence:
		return SequenceOf(v)
	case KindDecimal:
		if s, ok := v.(string); ok {
			return ParseDecimal(s)
		}
		return Decimal{}.FromRaw(v)
	}
	return nil, numerrors.NotFound(numerrors.ModuleQuantities, "kind", string(kind))
}

// Infer picks the kind Wrap would use for v by default: decimals become
// Decimal, arrays and slices Sequence, everything else Real.
func Infer(v any) Kind {
	v = quantity.Unwrap(v)
	switch v.(type) {
	case mathx.Decimal:
		return KindDecimal
	case arrayx.Array:
		return KindSequence
	}
	if v != nil {
		switch reflect.TypeOf(v).Kind() {
		case reflect.Slice, reflect.Array:
			return KindSequence
		}
	}
	return KindReal
}

// Auto wraps v in the kind Infer picks
func Auto(v any) (quantity.Quantity, error) {
	return Wrap(Infer(v), v)
}
