package cpu

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SumRows sums each row of x, producing an (N, 1) column vector.
//
// Equivalent to NumPy's x.sum(axis=1, keepdims=True).
func (cpu *CPUBackend) SumRows(x *mat.Dense) *mat.VecDense {
	rows, _ := x.Dims()
	result := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		result.SetVec(i, floats.Sum(x.RawRowView(i)))
	}
	return result
}

// MaxRows returns the maximum of each row of x as an (N, 1) column vector.
//
// Equivalent to NumPy's x.max(axis=1, keepdims=True).
func (cpu *CPUBackend) MaxRows(x *mat.Dense) *mat.VecDense {
	rows, _ := x.Dims()
	result := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		result.SetVec(i, floats.Max(x.RawRowView(i)))
	}
	return result
}

// Max returns the largest element of x.
func (cpu *CPUBackend) Max(x mat.Matrix) float64 {
	return mat.Max(x)
}

// Sum returns the sum of all elements of x.
func (cpu *CPUBackend) Sum(x mat.Matrix) float64 {
	return mat.Sum(x)
}
