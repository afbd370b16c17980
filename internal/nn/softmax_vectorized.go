package nn

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/backend/cpu"
)

// SoftmaxLossVectorized computes the same loss and gradient as
// SoftmaxLossNaive using whole-matrix operations only:
//
//	S    = X·W - shift
//	E    = exp(S)
//	loss = mean(log(rowsum(E)) - S[i, y_i])
//	P    = E / rowsum(E) - onehot(y)
//	dW   = Xᵀ·P / N
//
// followed by the same L2 term. Results agree with SoftmaxLossNaive to
// within floating-point rounding.
func SoftmaxLossVectorized(w, x *mat.Dense, y []int, reg float64, opts ...Option) (float64, *mat.Dense) {
	checkCall("softmax vectorized", w, x, y)
	cfg := newLossConfig(opts)
	backend := cpu.New()

	numTrain, _ := x.Dims()
	_, numClass := w.Dims()

	scores := stabilize(backend, backend.MatMul(x, w), cfg.stabilization)
	expScores := backend.Exp(scores)
	sumExp := backend.SumRows(expScores)

	var perExample mat.VecDense
	perExample.SubVec(backend.Log(sumExp), backend.Gather(scores, y))
	loss := backend.Sum(&perExample) / float64(numTrain)

	probs := backend.DivBroadcast(expScores, sumExp)
	probs.Sub(probs, backend.OneHot(y, numClass))

	dW := backend.MatMulTransA(x, probs)
	dW.Scale(1/float64(numTrain), dW)

	return regularize(loss, dW, w, reg)
}

// stabilize subtracts the configured max from the score matrix.
func stabilize(backend *cpu.CPUBackend, scores *mat.Dense, s Stabilization) *mat.Dense {
	if s == GlobalMax {
		return backend.SubScalar(scores, backend.Max(scores))
	}
	return backend.SubBroadcast(scores, backend.MaxRows(scores))
}
