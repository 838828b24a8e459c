// File: array.go
// Title: N-dimensional Array Payload
// Description: A minimal dense N-d array used as the payload of sequence
//              quantities. Elements are stored as float64 in row-major order
//              with a logical dtype of bool, int or float.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package arrayx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

// DType is the logical element type of an Array
type DType int

const (
	Bool DType = iota
	Int
	Float
)

// String returns the dtype name
func (d DType) String() string {
	switch d {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// ParseDType parses a dtype name
func ParseDType(s string) (DType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool":
		return Bool, nil
	case "int", "integer":
		return Int, nil
	case "float", "floating":
		return Float, nil
	}
	return Float, numerrors.InvalidInput(numerrors.ModuleArrayx, "dtype", s, "bool, int or float")
}

// Array is an immutable dense N-d array. A zero-dimensional array holds a
// single element and has an empty shape.
type Array struct {
	data  []float64
	shape []int
	dtype DType
}

// New creates an array with the given shape over a copy of data
func New(shape []int, data []float64, dtype DType) (Array, error) {
	size := 1
	for _, n := range shape {
		if n < 0 {
			return Array{}, numerrors.InvalidInput(numerrors.ModuleArrayx, "new", shape, "non-negative dimensions")
		}
		size *= n
	}
	if size != len(data) {
		return Array{}, numerrors.ShapeMismatch(numerrors.ModuleArrayx, "new", shape, []int{len(data)})
	}
	return Array{
		data:  append([]float64(nil), data...),
		shape: append([]int{}, shape...),
		dtype: dtype,
	}, nil
}

// FromFloats creates a 1-d float array
func FromFloats(values ...float64) Array {
	return Array{data: append([]float64{}, values...), shape: []int{len(values)}, dtype: Float}
}

// FromInts creates a 1-d int array
func FromInts(values ...int) Array {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return Array{data: data, shape: []int{len(values)}, dtype: Int}
}

// FromBools creates a 1-d bool array
func FromBools(values ...bool) Array {
	data := make([]float64, len(values))
	for i, v := range values {
		if v {
			data[i] = 1
		}
	}
	return Array{data: data, shape: []int{len(values)}, dtype: Bool}
}

// FromNumbers creates a 1-d array from any Go integer or float slice
func FromNumbers[T constraints.Integer | constraints.Float](values []T) Array {
	dtype := Int
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		dtype = Float
	}
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return Array{data: data, shape: []int{len(values)}, dtype: dtype}
}

// Scalar creates a zero-dimensional array
func Scalar(v float64, dtype DType) Array {
	return Array{data: []float64{v}, shape: []int{}, dtype: dtype}
}

// Arange returns the ints 0..n-1
func Arange(n int) Array {
	if n < 0 {
		n = 0
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i)
	}
	return Array{data: data, shape: []int{n}, dtype: Int}
}

// From converts v to an Array. It accepts arrays, Go numbers, bools,
// traits.Converter values and arbitrarily nested slices or arrays of those.
// Strings, complex numbers and ragged nesting are rejected.
func From(v any) (Array, error) {
	switch x := v.(type) {
	case Array:
		return x, nil
	case *Array:
		if x != nil {
			return *x, nil
		}
	case []float64:
		return FromFloats(x...), nil
	case []int:
		return FromInts(x...), nil
	case []bool:
		return FromBools(x...), nil
	}

	b := &builder{leafDepth: -1}
	if err := b.collect(reflect.ValueOf(v), 0); err != nil {
		return Array{}, numerrors.PayloadType(numerrors.ModuleArrayx, "array", v, err)
	}
	return Array{data: b.data, shape: b.shape, dtype: b.dtype()}, nil
}

type builder struct {
	data      []float64
	shape     []int
	leafDepth int
	floats    int
	ints      int
	bools     int
}

func (b *builder) dtype() DType {
	switch {
	case b.floats > 0 || len(b.data) == 0:
		return Float
	case b.ints > 0:
		return Int
	default:
		return Bool
	}
}

func (b *builder) collect(rv reflect.Value, depth int) error {
	if !rv.IsValid() {
		return fmt.Errorf("nil element at depth %d", depth)
	}
	if rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("nil element at depth %d", depth)
		}
		return b.collect(rv.Elem(), depth)
	}

	if rv.CanInterface() {
		if arr, ok := rv.Interface().(Array); ok {
			return b.collectArray(arr, depth)
		}
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		if depth == len(b.shape) {
			if b.leafDepth >= 0 && depth >= b.leafDepth {
				return fmt.Errorf("inhomogeneous nesting at depth %d", depth)
			}
			b.shape = append(b.shape, n)
		} else if b.shape[depth] != n {
			return fmt.Errorf("inhomogeneous shape at depth %d: %d != %d", depth, n, b.shape[depth])
		}
		for i := 0; i < n; i++ {
			if err := b.collect(rv.Index(i), depth+1); err != nil {
				return err
			}
		}
		return nil
	case reflect.String:
		return fmt.Errorf("non-numeric element %q", rv.String())
	}

	return b.leaf(rv.Interface(), depth)
}

func (b *builder) collectArray(arr Array, depth int) error {
	for i, n := range arr.shape {
		d := depth + i
		if d == len(b.shape) {
			b.shape = append(b.shape, n)
		} else if b.shape[d] != n {
			return fmt.Errorf("inhomogeneous shape at depth %d: %d != %d", d, n, b.shape[d])
		}
	}
	if err := b.markLeafDepth(depth + len(arr.shape)); err != nil {
		return err
	}
	b.data = append(b.data, arr.data...)
	switch arr.dtype {
	case Float:
		b.floats++
	case Int:
		b.ints++
	default:
		b.bools++
	}
	return nil
}

func (b *builder) markLeafDepth(depth int) error {
	if b.leafDepth < 0 {
		if depth != len(b.shape) {
			return fmt.Errorf("inhomogeneous nesting at depth %d", depth)
		}
		b.leafDepth = depth
		return nil
	}
	if depth != b.leafDepth {
		return fmt.Errorf("inhomogeneous nesting at depth %d", depth)
	}
	return nil
}

func (b *builder) leaf(v any, depth int) error {
	if err := b.markLeafDepth(depth); err != nil {
		return err
	}

	if flag, ok := v.(bool); ok {
		b.bools++
		if flag {
			b.data = append(b.data, 1)
		} else {
			b.data = append(b.data, 0)
		}
		return nil
	}

	x, kind := mathx.Normalize(v)
	switch kind {
	case mathx.Int:
		b.ints++
		b.data = append(b.data, float64(x.(int)))
		return nil
	case mathx.Float:
		b.floats++
		b.data = append(b.data, x.(float64))
		return nil
	case mathx.Complex:
		return fmt.Errorf("complex element %v", v)
	}

	if c, ok := v.(traits.Converter); ok {
		f, err := c.Float64()
		if err != nil {
			return err
		}
		b.floats++
		b.data = append(b.data, f)
		return nil
	}
	return fmt.Errorf("non-numeric element %v (%T)", v, v)
}

// Shape returns a copy of the array shape
func (a Array) Shape() []int {
	return append([]int{}, a.shape...)
}

// NDim returns the number of dimensions
func (a Array) NDim() int {
	return len(a.shape)
}

// Size returns the number of elements
func (a Array) Size() int {
	return len(a.data)
}

// DType returns the logical element type
func (a Array) DType() DType {
	return a.dtype
}

// Floats returns a copy of the elements in row-major order
func (a Array) Floats() []float64 {
	return append([]float64{}, a.data...)
}

// Flat returns the element at flat position i as float64
func (a Array) Flat(i int) float64 {
	return a.data[i]
}

// FlatValue returns the element at flat position i as bool, int or float64
// according to the dtype
func (a Array) FlatValue(i int) any {
	return a.value(a.data[i])
}

func (a Array) value(f float64) any {
	switch a.dtype {
	case Bool:
		return f != 0
	case Int:
		return int(f)
	default:
		return f
	}
}

// At returns the element at the given multi-index
func (a Array) At(index ...int) (any, error) {
	if len(index) != len(a.shape) {
		return nil, numerrors.InvalidInput(numerrors.ModuleArrayx, "at", index, fmt.Sprintf("%d indices", len(a.shape)))
	}
	flat := 0
	for axis, i := range index {
		pos, err := traits.NormalizeIndex(i, a.shape[axis])
		if err != nil {
			return nil, err
		}
		flat = flat*a.shape[axis] + pos
	}
	return a.FlatValue(flat), nil
}

// AsType returns a copy with another dtype. Converting to Int truncates.
func (a Array) AsType(dtype DType) Array {
	out := Array{data: a.Floats(), shape: a.Shape(), dtype: dtype}
	for i, f := range out.data {
		switch dtype {
		case Bool:
			if f != 0 {
				out.data[i] = 1
			}
		case Int:
			out.data[i] = float64(int(f))
		}
	}
	return out
}

// Reshape returns the array with a new shape of the same size. One
// dimension may be -1 and is inferred.
func (a Array) Reshape(shape ...int) (Array, error) {
	shape = append([]int{}, shape...)
	infer, known := -1, 1
	for i, n := range shape {
		switch {
		case n == -1 && infer < 0:
			infer = i
		case n < 0:
			return Array{}, numerrors.InvalidInput(numerrors.ModuleArrayx, "reshape", shape, "at most one -1 and no other negative dimension")
		default:
			known *= n
		}
	}
	if infer >= 0 && known > 0 && a.Size()%known == 0 {
		shape[infer] = a.Size() / known
		known = a.Size()
	}
	if known != a.Size() || (infer >= 0 && shape[infer] < 0) {
		return Array{}, numerrors.ShapeMismatch(numerrors.ModuleArrayx, "reshape", a.shape, shape)
	}
	return Array{data: a.data, shape: shape, dtype: a.dtype}, nil
}

// Ravel returns the 1-d view of the elements
func (a Array) Ravel() Array {
	return Array{data: a.data, shape: []int{len(a.data)}, dtype: a.dtype}
}

// String renders the array in nested bracket notation, e.g. [[1 2] [3 4]]
func (a Array) String() string {
	if len(a.shape) == 0 {
		if len(a.data) == 0 {
			return "[]"
		}
		return a.format(a.data[0])
	}
	var sb strings.Builder
	a.write(&sb, 0, 0)
	return sb.String()
}

func (a Array) write(sb *strings.Builder, axis, offset int) int {
	sb.WriteByte('[')
	n := a.shape[axis]
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if axis == len(a.shape)-1 {
			sb.WriteString(a.format(a.data[offset]))
			offset++
		} else {
			offset = a.write(sb, axis+1, offset)
		}
	}
	sb.WriteByte(']')
	return offset
}

func (a Array) format(f float64) string {
	switch a.dtype {
	case Bool:
		return strconv.FormatBool(f != 0)
	case Int:
		return strconv.FormatInt(int64(f), 10)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

// GoString renders a constructor-style form, e.g. arrayx.Array([1 2], int)
func (a Array) GoString() string {
	return fmt.Sprintf("arrayx.Array(%s, %s)", a.String(), a.dtype)
}
