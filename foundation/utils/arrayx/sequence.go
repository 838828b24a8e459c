// File: sequence.go
// Title: Array Sequence Protocol
// Description: Sizing, membership, indexing, iteration and size-1 scalar
//              conversion for Array.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package arrayx

import (
	stderrors "errors"
	"iter"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
	"github.com/msto63/numerical/foundation/utils/mathx"
)

// Len returns the length of the first axis
func (a Array) Len() (int, error) {
	if len(a.shape) == 0 {
		return 0, numerrors.InvalidInput(numerrors.ModuleArrayx, "len(a)", a, "sized array")
	}
	return a.shape[0], nil
}

// Contains reports whether any element equals v. Array operands are
// compared element-wise with broadcasting.
func (a Array) Contains(v any) (bool, error) {
	eq, err := a.Binary(traits.OpEq, v, false)
	if stderrors.Is(err, numerrors.ErrNotImplemented) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return AnyTrue(eq.(Array)), nil
}

// Index returns the element or sub-array selected along the first axis. An
// int on a 1-d array yields a bool, int or float64 element; on an N-d array
// it yields an (N-1)-d Array. A traits.Slice always yields an Array. A
// []int selects a single element by full multi-index.
func (a Array) Index(i any) (any, error) {
	if len(a.shape) == 0 {
		return nil, numerrors.InvalidInput(numerrors.ModuleArrayx, "a[i]", i, "index into a sized array")
	}

	switch idx := i.(type) {
	case traits.Slice:
		return a.slice(idx)
	case *traits.Slice:
		if idx != nil {
			return a.slice(*idx)
		}
	case []int:
		return a.At(idx...)
	}

	x, kind := mathx.Normalize(i)
	if kind != mathx.Int {
		return nil, numerrors.InvalidInput(numerrors.ModuleArrayx, "a[i]", i, "int, slice or multi-index")
	}
	pos, err := traits.NormalizeIndex(x.(int), a.shape[0])
	if err != nil {
		return nil, err
	}
	return a.row(pos), nil
}

func (a Array) rowSize() int {
	size := 1
	for _, n := range a.shape[1:] {
		size *= n
	}
	return size
}

func (a Array) row(pos int) any {
	if len(a.shape) == 1 {
		return a.FlatValue(pos)
	}
	size := a.rowSize()
	return Array{
		data:  a.data[pos*size : (pos+1)*size],
		shape: append([]int{}, a.shape[1:]...),
		dtype: a.dtype,
	}
}

func (a Array) slice(s traits.Slice) (Array, error) {
	positions, err := s.Positions(a.shape[0])
	if err != nil {
		return Array{}, err
	}
	size := a.rowSize()
	data := make([]float64, 0, len(positions)*size)
	for _, p := range positions {
		data = append(data, a.data[p*size:(p+1)*size]...)
	}
	shape := append([]int{len(positions)}, a.shape[1:]...)
	return Array{data: data, shape: shape, dtype: a.dtype}, nil
}

// All yields the elements or sub-arrays along the first axis. A
// zero-dimensional array yields nothing.
func (a Array) All() iter.Seq[any] {
	return func(yield func(any) bool) {
		if len(a.shape) == 0 {
			return
		}
		for i := 0; i < a.shape[0]; i++ {
			if !yield(a.row(i)) {
				return
			}
		}
	}
}

func (a Array) single(target string) (float64, error) {
	if len(a.data) != 1 {
		return 0, numerrors.InvalidConversion(numerrors.ModuleArrayx, target, a, nil).
			WithDetail("reason", "only size-1 arrays can be converted to scalars")
	}
	return a.data[0], nil
}

// Float64 converts a size-1 array to float64
func (a Array) Float64() (float64, error) {
	return a.single("float")
}

// Int converts a size-1 array to int, truncating toward zero
func (a Array) Int() (int, error) {
	f, err := a.single("int")
	if err != nil {
		return 0, err
	}
	return mathx.ToInt(f)
}

// Complex128 converts a size-1 array to complex128
func (a Array) Complex128() (complex128, error) {
	f, err := a.single("complex")
	return complex(f, 0), err
}
