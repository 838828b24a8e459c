// File: dispatch.go
// Title: Unwrap-Dispatch and Rewrap
// Description: Substitutes payloads for wrapped operands before calling a
//              catalog operator, and rebuilds wrapper types from raw results.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Removed Rewrapped, methods call Rewrap directly

package quantity

import (
	"reflect"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/operators"
)

// IsQuantity reports whether v is a usable Quantity. Nil pointers are not.
func IsQuantity(v any) bool {
	if _, ok := v.(Quantity); !ok {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// Unwrap returns the payload of a Quantity and any other value unchanged
func Unwrap(v any) any {
	if IsQuantity(v) {
		return v.(Quantity).Payload()
	}
	return v
}

// Unary evaluates op on the unwrapped a. extra is forwarded unchanged and
// the primitive's raw result and error are returned untouched.
func Unary(op *operators.Operator, a any, extra ...any) (any, error) {
	args := append([]any{Unwrap(a)}, extra...)
	return op.Call(args...)
}

// Binary evaluates op on the unwrapped a and b. extra is forwarded
// unchanged and the primitive's raw result and error are returned untouched.
func Binary(op *operators.Operator, a, b any, extra ...any) (any, error) {
	args := append([]any{Unwrap(a), Unwrap(b)}, extra...)
	return op.Call(args...)
}

// Rewrapper is implemented by wrapper types that can be built from a raw
// operator result. FromRaw is called on the zero value of S and must not
// depend on receiver state.
type Rewrapper[S any] interface {
	FromRaw(raw any) (S, error)
}

// Rewrap builds an S from raw. A non-nil err is returned as is.
func Rewrap[S Rewrapper[S]](raw any, err error) (S, error) {
	var zero S
	if err != nil {
		return zero, err
	}
	return zero.FromRaw(raw)
}

// Cast asserts raw to T for typed FromRaw implementations. Failures are
// construction errors naming typeName.
func Cast[T any](typeName string, raw any) (T, error) {
	if v, ok := raw.(T); ok {
		return v, nil
	}
	var zero T
	cause := numerrors.InvalidConversion(numerrors.ModuleQuantity, reflect.TypeFor[T]().String(), raw, nil)
	return zero, numerrors.Construction(typeName, raw, cause)
}
