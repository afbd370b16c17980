package cpu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Exp computes element-wise exponential: exp(x).
func (cpu *CPUBackend) Exp(x mat.Matrix) *mat.Dense {
	var result mat.Dense
	result.Apply(func(_, _ int, v float64) float64 {
		return math.Exp(v)
	}, x)
	return &result
}

// Log computes element-wise natural logarithm of a vector: ln(v).
//
// Zero maps to -Inf; negative inputs panic.
func (cpu *CPUBackend) Log(v mat.Vector) *mat.VecDense {
	n := v.Len()
	result := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x := v.AtVec(i)
		if x < 0 {
			panic(fmt.Sprintf("log: negative value at index %d: %f", i, x))
		}
		result.SetVec(i, math.Log(x))
	}
	return result
}
