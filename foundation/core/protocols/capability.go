// File: capability.go
// Title: Runtime Capability Checks
// Description: Names each capability, its parents and its own method
//              signatures, and checks values against them by reflection.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package protocols

import (
	"iter"
	"reflect"
	"sort"
	"strings"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/utils/arrayx"
)

// Capability names a capability protocol
type Capability int

const (
	CapOrderable Capability = iota
	CapComparable
	CapAdditive
	CapMultiplicative
	CapAlgebraic
	CapComplex
	CapReal
	CapValue
	CapSequence
)

// All lists every capability in declaration order
var All = []Capability{
	CapOrderable, CapComparable, CapAdditive, CapMultiplicative,
	CapAlgebraic, CapComplex, CapReal, CapValue, CapSequence,
}

var capabilityNames = map[Capability]string{
	CapOrderable:      "orderable",
	CapComparable:     "comparable",
	CapAdditive:       "additive",
	CapMultiplicative: "multiplicative",
	CapAlgebraic:      "algebraic",
	CapComplex:        "complex",
	CapReal:           "real",
	CapValue:          "value",
	CapSequence:       "sequence",
}

// String returns the lower-case capability name
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCapability parses a capability name, ignoring case
func ParseCapability(s string) (Capability, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range capabilityNames {
		if n == name {
			return c, nil
		}
	}
	return 0, numerrors.NotFound(numerrors.ModuleMixins, "capability", s)
}

var parents = map[Capability][]Capability{
	CapComparable: {CapOrderable},
	CapAlgebraic:  {CapAdditive, CapMultiplicative},
	CapComplex:    {CapAlgebraic},
	CapReal:       {CapComparable, CapComplex},
	CapValue:      {CapComparable, CapComplex},
	CapSequence:   {CapComparable, CapComplex},
}

// Parents returns the capabilities c directly extends
func (c Capability) Parents() []Capability {
	return append([]Capability(nil), parents[c]...)
}

// Ancestors returns every capability c extends, directly or not
func (c Capability) Ancestors() []Capability {
	seen := make(map[Capability]bool)
	var walk func(Capability)
	walk = func(x Capability) {
		for _, p := range parents[x] {
			if !seen[p] {
				seen[p] = true
				walk(p)
			}
		}
	}
	walk(c)

	result := make([]Capability, 0, len(seen))
	for _, x := range All {
		if seen[x] {
			result = append(result, x)
		}
	}
	return result
}

// Includes reports whether c is other or extends it
func (c Capability) Includes(other Capability) bool {
	if c == other {
		return true
	}
	for _, a := range c.Ancestors() {
		if a == other {
			return true
		}
	}
	return false
}

// method describes one required signature. A nil result means the
// implementing type itself.
type method struct {
	name     string
	params   int
	variadic bool
	result   reflect.Type
}

var (
	anyType     = reflect.TypeFor[any]()
	errorType   = reflect.TypeFor[error]()
	boolResult  = reflect.TypeFor[bool]()
	intResult   = reflect.TypeFor[int]()
	floatResult = reflect.TypeFor[float64]()
	cmplxResult = reflect.TypeFor[complex128]()
	iterResult  = reflect.TypeFor[iter.Seq[any]]()
	arrayResult = reflect.TypeFor[arrayx.Array]()
)

func rewrapping(names ...string) []method {
	ms := make([]method, len(names))
	for i, n := range names {
		ms[i] = method{name: n, params: 1}
	}
	return ms
}

func comparing(names ...string) []method {
	ms := make([]method, len(names))
	for i, n := range names {
		ms[i] = method{name: n, params: 1, result: anyType}
	}
	return ms
}

var ownMethods = map[Capability][]method{
	CapOrderable:      comparing("Lt", "Le", "Gt", "Ge"),
	CapComparable:     comparing("Eq", "Ne"),
	CapAdditive:       rewrapping("Add", "RAdd", "Sub", "RSub"),
	CapMultiplicative: rewrapping("Mul", "RMul", "Div", "RDiv"),
	CapAlgebraic: {
		{name: "Pow", params: 1, variadic: true},
	},
	CapComplex: {
		{name: "Abs"}, {name: "Pos"}, {name: "Neg"},
	},
	CapReal: append(
		[]method{{name: "RPow", params: 1, variadic: true}},
		rewrapping("FloorDiv", "RFloorDiv", "Mod", "RMod")...,
	),
	CapValue: {
		{name: "Complex128", result: cmplxResult},
		{name: "Float64", result: floatResult},
		{name: "Int", result: intResult},
		{name: "Round"},
	},
	CapSequence: {
		{name: "Contains", params: 1, result: boolResult},
		{name: "Len", result: intResult},
		{name: "Iter", result: iterResult},
		{name: "GetItem", params: 1, result: anyType},
		{name: "Array", result: arrayResult},
	},
}

func (c Capability) closure() []method {
	var ms []method
	for _, a := range append(c.Ancestors(), c) {
		ms = append(ms, ownMethods[a]...)
	}
	return ms
}

// Methods returns the sorted names of every method c requires, inherited
// ones included
func (c Capability) Methods() []string {
	ms := c.closure()
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.name
	}
	sort.Strings(names)
	return names
}

// Satisfies reports whether v has every method c requires with the
// declared signature. Methods producing a quantity must return v's own
// type.
func Satisfies(v any, c Capability) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	for _, m := range c.closure() {
		if !m.matches(rv) {
			return false
		}
	}
	return true
}

// Capabilities lists every capability v satisfies
func Capabilities(v any) []Capability {
	var result []Capability
	for _, c := range All {
		if Satisfies(v, c) {
			result = append(result, c)
		}
	}
	return result
}

// HasMethod reports whether v exposes a method called name
func HasMethod(v any, name string) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).MethodByName(name).IsValid()
}

func (m method) matches(rv reflect.Value) bool {
	fn := rv.MethodByName(m.name)
	if !fn.IsValid() {
		return false
	}
	ft := fn.Type()

	in := m.params
	if m.variadic {
		in++
	}
	if ft.NumIn() != in || ft.IsVariadic() != m.variadic {
		return false
	}
	for i := 0; i < m.params; i++ {
		if ft.In(i) != anyType {
			return false
		}
	}
	if m.variadic && ft.In(m.params) != reflect.TypeFor[[]any]() {
		return false
	}

	want := m.result
	if want == nil {
		want = rv.Type()
	}
	return ft.NumOut() == 2 && ft.Out(0) == want && ft.Out(1) == errorType
}
