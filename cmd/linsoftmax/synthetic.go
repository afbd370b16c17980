package main

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Minibatch is a synthetic classification problem.
type Minibatch struct {
	X *mat.Dense // [N, D], last column is the bias feature
	Y []int      // [N]
}

// SyntheticMinibatch draws n examples from c Gaussian blobs in d-1
// dimensions and appends a constant 1 feature (the bias trick), so a
// [d, c] weight matrix carries the class biases in its last row.
func SyntheticMinibatch(n, d, c int, rng *rand.Rand) *Minibatch {
	centers := make([][]float64, c)
	for k := range centers {
		centers[k] = make([]float64, d-1)
		for j := range centers[k] {
			centers[k][j] = 2 * rng.NormFloat64()
		}
	}

	x := mat.NewDense(n, d, nil)
	y := make([]int, n)
	for i := 0; i < n; i++ {
		label := rng.Intn(c)
		y[i] = label
		row := x.RawRowView(i)
		for j := 0; j < d-1; j++ {
			row[j] = centers[label][j] + rng.NormFloat64()
		}
		row[d-1] = 1
	}

	return &Minibatch{X: x, Y: y}
}
