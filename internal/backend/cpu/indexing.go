package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gather picks one element per row: result[i] = x[i, idx[i]].
//
// Equivalent to NumPy's x[np.arange(N), idx]. Panics if len(idx) differs
// from the number of rows or an index is outside [0, cols).
func (cpu *CPUBackend) Gather(x mat.Matrix, idx []int) *mat.VecDense {
	rows, cols := x.Dims()
	if len(idx) != rows {
		panic(fmt.Sprintf("gather: %d indices for %d rows", len(idx), rows))
	}

	result := mat.NewVecDense(rows, nil)
	for i, j := range idx {
		if j < 0 || j >= cols {
			panic(fmt.Sprintf("gather: index %d out of range [0, %d) at row %d", j, cols, i))
		}
		result.SetVec(i, x.At(i, j))
	}
	return result
}

// OneHot builds an (len(idx), numClasses) indicator matrix with a single 1
// per row at column idx[i].
func (cpu *CPUBackend) OneHot(idx []int, numClasses int) *mat.Dense {
	if len(idx) == 0 || numClasses <= 0 {
		panic(fmt.Sprintf("onehot: invalid shape [%d,%d]", len(idx), numClasses))
	}

	result := mat.NewDense(len(idx), numClasses, nil)
	for i, j := range idx {
		if j < 0 || j >= numClasses {
			panic(fmt.Sprintf("onehot: index %d out of range [0, %d) at row %d", j, numClasses, i))
		}
		result.Set(i, j, 1)
	}
	return result
}
