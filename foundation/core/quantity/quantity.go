// File: quantity.go
// Title: Quantity Interface and Object
// Description: Defines the Quantity contract, the Object payload holder and
//              the textual and debug representations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package quantity

import (
	"fmt"
	"path"
	"reflect"
	"strings"
)

// Quantity is implemented by every wrapper around a single payload
type Quantity interface {
	Payload() any
}

// Object holds exactly one payload. It is never modified after New.
type Object[T any] struct {
	data T
}

// New wraps data
func New[T any](data T) *Object[T] {
	return &Object[T]{data: data}
}

// Data returns the typed payload
func (o *Object[T]) Data() T {
	return o.data
}

// Payload returns the payload as any
func (o *Object[T]) Payload() any {
	return o.data
}

// String renders the payload's own textual form
func (o *Object[T]) String() string {
	return fmt.Sprint(o.data)
}

// Repr renders a constructor-style form with the qualified dynamic type
// name of q, e.g. quantities.Real(2)
func Repr(q Quantity) string {
	return ReprOf(reflect.TypeOf(q), q.Payload())
}

// ReprOf renders payload in constructor style under the name of t
func ReprOf(t reflect.Type, payload any) string {
	return fmt.Sprintf("%s(%v)", TypeName(t), payload)
}

// TypeName returns the package-qualified name of t without type arguments
func TypeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return t.String()
	}
	if pkg := t.PkgPath(); pkg != "" {
		return path.Base(pkg) + "." + name
	}
	return name
}
