// File: reduce.go
// Title: Array Reductions
// Description: Truth reductions, differences along the last axis, extrema,
//              index unravelling and whole-array equality.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Reductions on gonum floats

package arrayx

import (
	"math"
	"slices"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"gonum.org/v1/gonum/floats"
)

// AllTrue reports whether every element is non-zero. It is true for an
// empty array.
func AllTrue(a Array) bool {
	return floats.Count(isZero, a.data) == 0
}

// AnyTrue reports whether at least one element is non-zero
func AnyTrue(a Array) bool {
	return floats.Count(isZero, a.data) < len(a.data)
}

func isZero(f float64) bool {
	return f == 0
}

// Truth evaluates v in a boolean context. Arrays are true when every
// element is true; numbers when non-zero; other values when non-nil.
func Truth(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case Array:
		return AllTrue(x)
	}
	if f, err := From(v); err == nil && f.NDim() == 0 {
		return AllTrue(f)
	}
	return true
}

// Diff returns the first discrete difference along the last axis
func Diff(a Array) (Array, error) {
	if len(a.shape) == 0 {
		return Array{}, numerrors.InvalidInput(numerrors.ModuleArrayx, "diff", a, "at least one dimension")
	}

	last := a.shape[len(a.shape)-1]
	width := max(last-1, 0)
	rows := 0
	if last > 0 {
		rows = len(a.data) / last
	}

	out := make([]float64, rows*width)
	for r := 0; r < rows; r++ {
		row := a.data[r*last : (r+1)*last]
		floats.SubTo(out[r*width:(r+1)*width], row[1:], row[:width])
	}

	shape := a.Shape()
	shape[len(shape)-1] = width
	return Array{data: out, shape: shape, dtype: max(a.dtype, Int)}, nil
}

// Min returns the smallest element. NaN propagates.
func Min(a Array) (float64, error) {
	if len(a.data) == 0 {
		return 0, numerrors.InvalidInput(numerrors.ModuleArrayx, "min", a, "non-empty array")
	}
	if floats.HasNaN(a.data) {
		return math.NaN(), nil
	}
	return floats.Min(a.data), nil
}

// Max returns the largest element. NaN propagates.
func Max(a Array) (float64, error) {
	if len(a.data) == 0 {
		return 0, numerrors.InvalidInput(numerrors.ModuleArrayx, "max", a, "non-empty array")
	}
	if floats.HasNaN(a.data) {
		return math.NaN(), nil
	}
	return floats.Max(a.data), nil
}

// ArgMin returns the flat index of the first smallest element. A NaN
// element wins over every number.
func ArgMin(a Array) (int, error) {
	if len(a.data) == 0 {
		return 0, numerrors.InvalidInput(numerrors.ModuleArrayx, "argmin", a, "non-empty array")
	}
	if i := slices.IndexFunc(a.data, math.IsNaN); i >= 0 {
		return i, nil
	}
	return floats.MinIdx(a.data), nil
}

// Unravel converts a flat row-major index into a multi-index for shape
func Unravel(flat int, shape []int) []int {
	index := make([]int, len(shape))
	for axis := len(shape) - 1; axis >= 0; axis-- {
		if shape[axis] == 0 {
			continue
		}
		index[axis] = flat % shape[axis]
		flat /= shape[axis]
	}
	return index
}

// ArrayEqual reports whether a and b convert to arrays of the same shape
// with equal elements. Values that do not convert are never equal.
func ArrayEqual(a, b any) bool {
	x, err := From(a)
	if err != nil {
		return false
	}
	y, err := From(b)
	if err != nil {
		return false
	}
	return slices.Equal(x.shape, y.shape) && floats.Equal(x.data, y.data)
}
