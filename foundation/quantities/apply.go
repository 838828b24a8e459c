// File: apply.go
// Title: Expression Evaluation
// Description: Evaluates catalog operators on arbitrary operands through the
//              capability methods of wrapped quantities, falling back to the
//              raw primitives for plain values.
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

	"github.com/msto63/numerical/foundation/core/operators"
)

// forward and reflected method names per binary operator. Comparisons
// reflect onto their mirror image.
var binaryMethods = map[string][2]string{
	"add":      {"Add", "RAdd"},
	"sub":      {"Sub", "RSub"},
	"mul":      {"Mul", "RMul"},
	"truediv":  {"Div", "RDiv"},
	"floordiv": {"FloorDiv", "RFloorDiv"},
	"mod":      {"Mod", "RMod"},
	"pow":      {"Pow", "RPow"},
	"eq":       {"Eq", "Eq"},
	"ne":       {"Ne", "Ne"},
	"lt":       {"Lt", "Gt"},
	"le":       {"Le", "Ge"},
	"gt":       {"Gt", "Lt"},
	"ge":       {"Ge", "Le"},
	"contains": {"Contains", ""},
	"getitem":  {"GetItem", ""},
}

var unaryMethods = map[string]string{
	"abs":     "Abs",
	"pos":     "Pos",
	"neg":     "Neg",
	"round":   "Round",
	"len":     "Len",
	"iter":    "Iter",
	"array":   "Array",
	"complex": "Complex128",
	"float":   "Float64",
	"int":     "Int",
}

// Apply evaluates a binary operator the way an expression a <op> b would:
// a's forward method, then b's reflected method, then op itself. For
// contains, a is the container. extra carries the optional modulus of pow.
func Apply(op *operators.Operator, a, b any, extra ...any) (any, error) {
	names, known := binaryMethods[op.Name()]
	if known {
		if r, ok, err := call(a, names[0], append([]any{b}, extra...)); ok {
			return r, err
		}
		if names[1] != "" {
			if r, ok, err := call(b, names[1], append([]any{a}, extra...)); ok {
				return r, err
			}
		}
	}
	return op.Call(append([]any{a, b}, extra...)...)
}

// ApplyUnary evaluates a unary operator through a's method when it has one
func ApplyUnary(op *operators.Operator, a any) (any, error) {
	if name, known := unaryMethods[op.Name()]; known {
		if r, ok, err := call(a, name, nil); ok {
			return r, err
		}
	}
	return op.Call(a)
}

// call invokes recv.name(args...) when recv has a method of that name
// accepting args and returning (result, error) or error. ok is false when
// no such method exists.
func call(recv any, name string, args []any) (result any, ok bool, err error) {
	if recv == nil {
		return nil, false, nil
	}
	m := reflect.ValueOf(recv).MethodByName(name)
	if !m.IsValid() {
		return nil, false, nil
	}

	t := m.Type()
	if t.NumOut() == 0 || t.NumOut() > 2 || t.Out(t.NumOut()-1) != errorType {
		return nil, false, nil
	}
	in, fits := arguments(t, args)
	if !fits {
		return nil, false, nil
	}

	out := m.Call(in)
	if e, _ := out[len(out)-1].Interface().(error); e != nil {
		return nil, true, e
	}
	if len(out) == 1 {
		return nil, true, nil
	}
	return out[0].Interface(), true, nil
}

var errorType = reflect.TypeFor[error]()

func arguments(t reflect.Type, args []any) ([]reflect.Value, bool) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	if len(args) < fixed || (!t.IsVariadic() && len(args) > fixed) {
		return nil, false
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = t.In(i)
		} else {
			pt = t.In(fixed).Elem()
		}
		if arg == nil {
			switch pt.Kind() {
			case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
				in[i] = reflect.Zero(pt)
				continue
			}
			return nil, false
		}
		v := reflect.ValueOf(arg)
		if !v.Type().AssignableTo(pt) {
			return nil, false
		}
		in[i] = v
	}
	return in, true
}
