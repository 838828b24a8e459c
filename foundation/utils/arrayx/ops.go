// File: ops.go
// Title: Element-wise Array Operators
// Description: Implements traits.Binary and traits.Unary for Array with
//              trailing-axis broadcasting. Arithmetic follows IEEE 754,
//              so float division by zero yields infinities or NaN.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Arithmetic kernels on gonum floats

package arrayx

import (
	"math"
	"slices"

	numerrors "github.com/msto63/numerical/foundation/core/errors"
	"github.com/msto63/numerical/foundation/core/traits"
	"github.com/msto63/numerical/foundation/utils/mathx"
	"gonum.org/v1/gonum/floats"
)

// Binary implements traits.Binary. other is converted with From; values
// From rejects yield errors.ErrNotImplemented.
func (a Array) Binary(op traits.Op, other any, reflected bool) (any, error) {
	b, err := From(other)
	if err != nil {
		return nil, numerrors.ErrNotImplemented
	}
	if reflected {
		return Apply(op, b, a)
	}
	return Apply(op, a, b)
}

// Vector kernels for operators whose element rule does not depend on dtype
var vectorFuncs = map[traits.Op]func(dst, s, t []float64) []float64{
	traits.OpAdd:     floats.AddTo,
	traits.OpSub:     floats.SubTo,
	traits.OpMul:     floats.MulTo,
	traits.OpTrueDiv: floats.DivTo,
}

// Apply evaluates a binary catalog operation element-wise
func Apply(op traits.Op, x, y Array) (Array, error) {
	vector, isVector := vectorFuncs[op]
	fn, ok := binaryFuncs[op]
	if !ok && !isVector {
		return Array{}, numerrors.UnsupportedOperands(numerrors.ModuleArrayx, op.Symbol(), x, y)
	}

	shape, err := broadcastShape(op, x, y)
	if err != nil {
		return Array{}, err
	}

	dtype := resultDType(op, x, y)
	xs, ys := x.broadcastTo(shape), y.broadcastTo(shape)
	out := make([]float64, len(xs))
	if isVector {
		vector(out, xs, ys)
	} else {
		for i := range out {
			out[i] = fn(xs[i], ys[i], dtype)
		}
	}
	return Array{data: out, shape: shape, dtype: dtype}, nil
}

// broadcastShape aligns shapes from the trailing axis; each pair of
// dimensions must match or one of them must be 1.
func broadcastShape(op traits.Op, x, y Array) ([]int, error) {
	nd := max(len(x.shape), len(y.shape))
	shape := make([]int, nd)
	for i := range shape {
		dx, dy := dimFromEnd(x.shape, nd-i), dimFromEnd(y.shape, nd-i)
		switch {
		case dx == dy, dy == 1:
			shape[i] = dx
		case dx == 1:
			shape[i] = dy
		default:
			return nil, numerrors.ShapeMismatch(numerrors.ModuleArrayx, op.Symbol(), x.shape, y.shape)
		}
	}
	return shape, nil
}

func dimFromEnd(shape []int, k int) int {
	if k > len(shape) {
		return 1
	}
	return shape[len(shape)-k]
}

func (a Array) broadcastTo(shape []int) []float64 {
	if slices.Equal(a.shape, shape) {
		return a.data
	}
	size := 1
	for _, n := range shape {
		size *= n
	}
	offset := len(shape) - len(a.shape)
	out := make([]float64, size)
	for i := range out {
		src, stride, rem := 0, 1, i
		for axis := len(shape) - 1; axis >= offset; axis-- {
			idx := rem % shape[axis]
			rem /= shape[axis]
			n := a.shape[axis-offset]
			if n != 1 {
				src += idx * stride
			}
			stride *= n
		}
		out[i] = a.data[src]
	}
	return out
}

func resultDType(op traits.Op, x, y Array) DType {
	if op.IsComparison() {
		return Bool
	}
	dtype := max(x.dtype, y.dtype, Int)
	switch op {
	case traits.OpTrueDiv:
		return Float
	case traits.OpPow:
		if dtype == Int && slices.ContainsFunc(y.data, func(f float64) bool { return f < 0 }) {
			return Float
		}
	}
	return dtype
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Element kernels for the remaining operators
var binaryFuncs = map[traits.Op]func(a, b float64, dtype DType) float64{
	traits.OpFloorDiv: func(a, b float64, dtype DType) float64 {
		if b == 0 {
			if dtype == Int {
				return 0
			}
			return a / b
		}
		div, _ := mathx.FloorDivMod(a, b)
		return div
	},
	traits.OpMod: func(a, b float64, dtype DType) float64 {
		if b == 0 {
			if dtype == Int {
				return 0
			}
			return math.NaN()
		}
		_, mod := mathx.FloorDivMod(a, b)
		return mod
	},
	traits.OpPow: func(a, b float64, _ DType) float64 { return math.Pow(a, b) },
	traits.OpEq:  func(a, b float64, _ DType) float64 { return truth(a == b) },
	traits.OpNe:  func(a, b float64, _ DType) float64 { return truth(a != b) },
	traits.OpLt:  func(a, b float64, _ DType) float64 { return truth(a < b) },
	traits.OpLe:  func(a, b float64, _ DType) float64 { return truth(a <= b) },
	traits.OpGt:  func(a, b float64, _ DType) float64 { return truth(a > b) },
	traits.OpGe:  func(a, b float64, _ DType) float64 { return truth(a >= b) },
}

// Unary implements traits.Unary. Round uses round-half-to-even and keeps
// the dtype.
func (a Array) Unary(op traits.Op) (any, error) {
	out := make([]float64, len(a.data))
	switch op {
	case traits.OpAbs:
		mapTo(out, a.data, math.Abs)
	case traits.OpPos:
		copy(out, a.data)
	case traits.OpNeg:
		floats.ScaleTo(out, -1, a.data)
	case traits.OpRound:
		mapTo(out, a.data, math.RoundToEven)
	default:
		return nil, numerrors.ErrNotImplemented
	}
	return Array{data: out, shape: a.Shape(), dtype: max(a.dtype, Int)}, nil
}

func mapTo(dst, s []float64, fn func(float64) float64) {
	for i, f := range s {
		dst[i] = fn(f)
	}
}
