// File: base.go
// Title: Shared Payload Base
// Description: Base holds the payload cell shared by every part of a
//              composite mixin and provides the Quantity contract.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package mixins

import (
	"fmt"
	"reflect"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/quantity"
)

// Base implements quantity.Quantity for the wrapper type S
type Base[T any, S quantity.Rewrapper[S]] struct {
	obj *quantity.Object[T]
}

func newBase[T any, S quantity.Rewrapper[S]](data T) Base[T, S] {
	return Base[T, S]{obj: quantity.New(data)}
}

// Data returns the typed payload
func (b Base[T, S]) Data() T {
	if b.obj == nil {
		var zero T
		return zero
	}
	return b.obj.Data()
}

// Payload returns the payload as any
func (b Base[T, S]) Payload() any {
	return b.Data()
}

// String renders the payload's textual form
func (b Base[T, S]) String() string {
	return fmt.Sprint(b.Payload())
}

// GoString renders the constructor-style form under the name of S
func (b Base[T, S]) GoString() string {
	return quantity.ReprOf(reflect.TypeFor[S](), b.Payload())
}

func rewrap[S quantity.Rewrapper[S]](raw any, err error) (S, error) {
	return quantity.Rewrap[S](raw, err)
}

// as asserts a raw conversion result to R
func as[R any](raw any, err error) (R, error) {
	var zero R
	if err != nil {
		return zero, err
	}
	r, ok := raw.(R)
	if !ok {
		return zero, numerrors.InvalidConversion(numerrors.ModuleMixins, reflect.TypeFor[R]().String(), raw, nil)
	}
	return r, nil
}
