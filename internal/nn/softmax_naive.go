package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/tensor"
)

// SoftmaxLossNaive computes the softmax (cross-entropy) loss of a linear
// classifier and its gradient with respect to the weights, using explicit
// loops over examples and classes.
//
// Inputs:
//   - w: weights, shape [D, C]
//   - x: minibatch, shape [N, D]
//   - y: labels, length N, y[i] in [0, C)
//   - reg: L2 regularization strength
//
// Returns the scalar loss and dW with the same shape as w.
//
// Per example i, with s the stabilized score row:
//
//	L_i   = -s[y_i] + log(Σ_j exp(s[j]))
//	dW_j += p_j * X[i]          for every class j
//	dW_yi -= X[i]
//
// where p_j = exp(s[j]) / Σ_k exp(s[k]). Loss and gradient are averaged
// over N before the regularization term is added.
//
// This is the reference implementation; prefer SoftmaxLossVectorized.
func SoftmaxLossNaive(w, x *mat.Dense, y []int, reg float64, opts ...Option) (float64, *mat.Dense) {
	checkCall("softmax naive", w, x, y)
	cfg := newLossConfig(opts)

	numTrain, dim := x.Dims()
	_, numClass := w.Dims()
	dW := tensor.ZerosLike(w)

	scores := make([][]float64, numTrain)
	for i := 0; i < numTrain; i++ {
		scores[i] = make([]float64, numClass)
		for j := 0; j < numClass; j++ {
			for k := 0; k < dim; k++ {
				scores[i][j] += x.At(i, k) * w.At(k, j)
			}
		}
	}

	globalMax := math.Inf(-1)
	if cfg.stabilization == GlobalMax {
		for i := 0; i < numTrain; i++ {
			for j := 0; j < numClass; j++ {
				globalMax = math.Max(globalMax, scores[i][j])
			}
		}
	}

	loss := 0.0
	for i := 0; i < numTrain; i++ {
		row := scores[i]

		shift := globalMax
		if cfg.stabilization == RowMax {
			shift = row[0]
			for j := 1; j < numClass; j++ {
				shift = math.Max(shift, row[j])
			}
		}

		sumExp := 0.0
		for j := 0; j < numClass; j++ {
			row[j] -= shift
			sumExp += math.Exp(row[j])
		}

		label := y[i]
		for j := 0; j < numClass; j++ {
			p := math.Exp(row[j]) / sumExp
			if j == label {
				p--
			}
			for k := 0; k < dim; k++ {
				dW.Set(k, j, dW.At(k, j)+p*x.At(i, k))
			}
		}

		loss += -row[label] + math.Log(sumExp)
	}

	loss /= float64(numTrain)
	dW.Scale(1/float64(numTrain), dW)

	return regularize(loss, dW, w, reg)
}
