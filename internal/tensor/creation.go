package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Zeros allocates a zero-filled rows x cols matrix.
//
// Panics if the shape is not 2D or has a non-positive dimension, matching
// gonum's own refusal to build empty dense matrices.
func Zeros(shape Shape) *mat.Dense {
	if len(shape) != 2 {
		panic(fmt.Sprintf("zeros: expected 2D shape, got %v", shape))
	}
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return mat.NewDense(shape[0], shape[1], nil)
}

// ZerosLike allocates a zero-filled matrix with the same shape as m.
func ZerosLike(m mat.Matrix) *mat.Dense {
	return Zeros(ShapeOf(m))
}

// Contiguous returns a row-major copy of m's elements.
//
// The result never aliases m, so callers may mutate it freely.
func Contiguous(m mat.Matrix) []float64 {
	return mat.DenseCopyOf(m).RawMatrix().Data
}
