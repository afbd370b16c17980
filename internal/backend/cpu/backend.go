// Package cpu implements the whole-array primitives used by the vectorized
// softmax evaluator on top of gonum dense matrices.
//
// Every operation allocates its result and never mutates its inputs.
// Shape errors panic with a descriptive message, the same way gonum does.
package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/tensor"
)

// CPUBackend evaluates array operations on the host CPU.
type CPUBackend struct{}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{}
}

// broadcastOperand resolves operand b against x and returns an accessor
// that maps an (i, j) cell of x onto the matching cell of b.
//
// Only b may be broadcast; the result always has x's shape.
func broadcastOperand(op string, x, b mat.Matrix) func(i, j int) float64 {
	xShape := tensor.ShapeOf(x)
	bShape := tensor.ShapeOf(b)

	outShape, _, err := tensor.BroadcastShapes(xShape, bShape)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
	if !outShape.Equal(xShape) {
		panic(fmt.Sprintf("%s: operand %v would expand %v to %v", op, bShape, xShape, outShape))
	}

	rowBroadcast := bShape[0] == 1
	colBroadcast := bShape[1] == 1
	return func(i, j int) float64 {
		if rowBroadcast {
			i = 0
		}
		if colBroadcast {
			j = 0
		}
		return b.At(i, j)
	}
}

// SubBroadcast computes x - b with NumPy-style broadcasting of b.
//
// A column vector (N, 1) is subtracted from every column of an (N, C) x,
// a row vector (1, C) from every row.
func (cpu *CPUBackend) SubBroadcast(x, b mat.Matrix) *mat.Dense {
	at := broadcastOperand("sub", x, b)
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 {
		return v - at(i, j)
	}, x)
	return &out
}

// DivBroadcast computes x / b with NumPy-style broadcasting of b.
func (cpu *CPUBackend) DivBroadcast(x, b mat.Matrix) *mat.Dense {
	at := broadcastOperand("div", x, b)
	var out mat.Dense
	out.Apply(func(i, j int, v float64) float64 {
		return v / at(i, j)
	}, x)
	return &out
}

// SubScalar computes x - s for every element.
func (cpu *CPUBackend) SubScalar(x mat.Matrix, s float64) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 {
		return v - s
	}, x)
	return &out
}
