// File: primitives.go
// Title: Primitive Operator Implementations
// Description: Implements the catalog primitives over Go numbers, strings,
//              slices, arrays and maps, and over payloads that provide the
//              traits hooks.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package operators

import (
	"cmp"
	"iter"
	"reflect"
	"strings"
	"unicode/utf8"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
	"github.com/msto63/numerical/foundation/utils/arrayx"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

const module = numerrors.ModuleOperators

func arity(op traits.Op, want int, args []any) error {
	if len(args) != want {
		return numerrors.Arity(module, op.Symbol(), want, len(args))
	}
	return nil
}

func unary(op traits.Op) Func {
	return func(args ...any) (any, error) {
		if err := arity(op, 1, args); err != nil {
			return nil, err
		}
		a := args[0]
		if mathx.IsNumber(a) {
			return mathx.UnaryOp(op, a)
		}
		if u, ok := a.(traits.Unary); ok {
			result, err := u.Unary(op)
			if !numerrors.IsNotImplemented(err) {
				return result, err
			}
		}
		return nil, numerrors.UnsupportedOperands(module, op.Symbol(), a)
	}
}

func binary(op traits.Op) Func {
	return func(args ...any) (any, error) {
		if err := arity(op, 2, args); err != nil {
			return nil, err
		}
		return dispatch(op, args[0], args[1])
	}
}

// pow accepts an optional third operand, the modulus. A nil modulus is
// the same as none.
func pow(args ...any) (any, error) {
	switch {
	case len(args) == 3 && args[2] == nil:
		args = args[:2]
	case len(args) != 2 && len(args) != 3:
		return nil, numerrors.Arity(module, traits.OpPow.Symbol(), 2, len(args))
	}
	return dispatch(traits.OpPow, args[0], args[1], args[2:]...)
}

// dispatch evaluates a op b. Number pairs use mathx; otherwise the left
// operand's hook runs first and the right operand's reflected hook second.
func dispatch(op traits.Op, a, b any, mod ...any) (any, error) {
	if mathx.IsNumber(a) && mathx.IsNumber(b) {
		return mathx.BinaryOp(op, a, b, mod...)
	}

	if len(mod) == 0 {
		if x, ok := a.(traits.Binary); ok {
			result, err := x.Binary(op, b, false)
			if !numerrors.IsNotImplemented(err) {
				return result, err
			}
		}
		if y, ok := b.(traits.Binary); ok {
			result, err := y.Binary(op, a, true)
			if !numerrors.IsNotImplemented(err) {
				return result, err
			}
		}
		if result, ok := stringOp(op, a, b); ok {
			return result, nil
		}
	}

	switch op {
	case traits.OpEq:
		return reflect.DeepEqual(a, b), nil
	case traits.OpNe:
		return !reflect.DeepEqual(a, b), nil
	}
	operands := append([]any{a, b}, mod...)
	return nil, numerrors.UnsupportedOperands(module, op.Symbol(), operands...)
}

func stringOp(op traits.Op, a, b any) (any, bool) {
	x, ok := a.(string)
	if !ok {
		return nil, false
	}
	y, ok := b.(string)
	if !ok {
		return nil, false
	}

	c := cmp.Compare(x, y)
	switch op {
	case traits.OpAdd:
		return x + y, true
	case traits.OpLt:
		return c < 0, true
	case traits.OpLe:
		return c <= 0, true
	case traits.OpGt:
		return c > 0, true
	case traits.OpGe:
		return c >= 0, true
	}
	return nil, false
}

func equal(a, b any) bool {
	result, err := dispatch(traits.OpEq, a, b)
	if err != nil {
		return false
	}
	return arrayx.Truth(result)
}

// contains reports whether item is in container
func contains(args ...any) (any, error) {
	if err := arity(traits.OpContains, 2, args); err != nil {
		return nil, err
	}
	container, item := args[0], args[1]

	if c, ok := container.(traits.Container); ok {
		return c.Contains(item)
	}
	if s, ok := container.(string); ok {
		sub, ok := item.(string)
		if !ok {
			return nil, numerrors.UnsupportedOperands(module, traits.OpContains.Symbol(), container, item)
		}
		return strings.Contains(s, sub), nil
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if equal(rv.Index(i).Interface(), item) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		k := reflect.ValueOf(item)
		if !k.IsValid() || !k.Type().AssignableTo(rv.Type().Key()) {
			return false, nil
		}
		return rv.MapIndex(k).IsValid(), nil
	}
	return nil, numerrors.UnsupportedOperands(module, traits.OpContains.Symbol(), container, item)
}

func length(args ...any) (any, error) {
	if err := arity(traits.OpLen, 1, args); err != nil {
		return nil, err
	}
	a := args[0]

	if s, ok := a.(traits.Sizer); ok {
		return s.Len()
	}
	if s, ok := a.(string); ok {
		return utf8.RuneCountInString(s), nil
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), nil
	}
	return nil, numerrors.UnsupportedOperands(module, traits.OpLen.Symbol(), a)
}

// iterate returns an iter.Seq[any]. Payloads that report a size must be
// sized; a zero-dimensional array is not iterable.
func iterate(args ...any) (any, error) {
	if err := arity(traits.OpIter, 1, args); err != nil {
		return nil, err
	}
	a := args[0]

	if it, ok := a.(traits.Iterable); ok {
		if s, ok := a.(traits.Sizer); ok {
			if _, err := s.Len(); err != nil {
				return nil, err
			}
		}
		return it.All(), nil
	}
	if s, ok := a.(string); ok {
		return iter.Seq[any](func(yield func(any) bool) {
			for _, r := range s {
				if !yield(string(r)) {
					return
				}
			}
		}), nil
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return iter.Seq[any](func(yield func(any) bool) {
			for i := 0; i < rv.Len(); i++ {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}), nil
	case reflect.Map:
		return iter.Seq[any](func(yield func(any) bool) {
			for _, k := range rv.MapKeys() {
				if !yield(k.Interface()) {
					return
				}
			}
		}), nil
	}
	return nil, numerrors.UnsupportedOperands(module, traits.OpIter.Symbol(), a)
}

// getitem indexes a by position, negative position or traits.Slice. Maps
// are indexed by key.
func getitem(args ...any) (any, error) {
	if err := arity(traits.OpGetItem, 2, args); err != nil {
		return nil, err
	}
	a, i := args[0], args[1]

	if x, ok := a.(traits.Indexer); ok {
		return x.Index(i)
	}

	rv := reflect.ValueOf(a)
	switch rv.Kind() {
	case reflect.Map:
		k := reflect.ValueOf(i)
		if k.IsValid() && k.Type().AssignableTo(rv.Type().Key()) {
			if v := rv.MapIndex(k); v.IsValid() {
				return v.Interface(), nil
			}
		}
		return nil, numerrors.NotFound(module, traits.OpGetItem.Symbol(), i)
	case reflect.String:
		return indexString(rv.String(), i)
	case reflect.Slice, reflect.Array:
		return indexSequence(rv, i)
	}
	return nil, numerrors.UnsupportedOperands(module, traits.OpGetItem.Symbol(), a, i)
}

func sliceOf(i any) (traits.Slice, bool) {
	switch s := i.(type) {
	case traits.Slice:
		return s, true
	case *traits.Slice:
		if s != nil {
			return *s, true
		}
	}
	return traits.Slice{}, false
}

func position(i any) (int, bool) {
	x, kind := mathx.Normalize(i)
	if kind != mathx.Int {
		return 0, false
	}
	return x.(int), true
}

func indexSequence(rv reflect.Value, i any) (any, error) {
	if s, ok := sliceOf(i); ok {
		positions, err := s.Positions(rv.Len())
		if err != nil {
			return nil, err
		}
		out := reflect.MakeSlice(reflect.SliceOf(rv.Type().Elem()), 0, len(positions))
		for _, p := range positions {
			out = reflect.Append(out, rv.Index(p))
		}
		return out.Interface(), nil
	}

	p, ok := position(i)
	if !ok {
		return nil, numerrors.InvalidInput(module, traits.OpGetItem.Symbol(), i, "integer or slice index")
	}
	pos, err := traits.NormalizeIndex(p, rv.Len())
	if err != nil {
		return nil, err
	}
	return rv.Index(pos).Interface(), nil
}

func indexString(s string, i any) (any, error) {
	runes := []rune(s)
	if sl, ok := sliceOf(i); ok {
		positions, err := sl.Positions(len(runes))
		if err != nil {
			return nil, err
		}
		var sb strings.Builder
		for _, p := range positions {
			sb.WriteRune(runes[p])
		}
		return sb.String(), nil
	}

	p, ok := position(i)
	if !ok {
		return nil, numerrors.InvalidInput(module, traits.OpGetItem.Symbol(), i, "integer or slice index")
	}
	pos, err := traits.NormalizeIndex(p, len(runes))
	if err != nil {
		return nil, err
	}
	return string(runes[pos]), nil
}

func toComplex(args ...any) (any, error) {
	if err := arity(traits.OpComplex, 1, args); err != nil {
		return nil, err
	}
	return mathx.ToComplex128(args[0])
}

func toFloat(args ...any) (any, error) {
	if err := arity(traits.OpFloat, 1, args); err != nil {
		return nil, err
	}
	return mathx.ToFloat64(args[0])
}

func toInt(args ...any) (any, error) {
	if err := arity(traits.OpInt, 1, args); err != nil {
		return nil, err
	}
	return mathx.ToInt(args[0])
}

func toArray(args ...any) (any, error) {
	if err := arity(traits.OpArray, 1, args); err != nil {
		return nil, err
	}
	return arrayx.From(args[0])
}
