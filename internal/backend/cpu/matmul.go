package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatMul performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
// The product is delegated to gonum, which dispatches to BLAS dgemm.
func (cpu *CPUBackend) MatMul(a, b mat.Matrix) *mat.Dense {
	m, k := a.Dims()
	kAlt, n := b.Dims()

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	var result mat.Dense
	result.Mul(a, b)
	return &result
}

// MatMulTransA computes aᵀ @ b without materializing the transpose.
func (cpu *CPUBackend) MatMulTransA(a, b mat.Matrix) *mat.Dense {
	return cpu.MatMul(a.T(), b)
}
