package nn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/tensor"
)

// Zeros returns a [d, c] weight matrix filled with zeros.
//
// With zero weights every class scores the same, so the initial loss is
// exactly log(c).
func Zeros(d, c int) *mat.Dense {
	return tensor.Zeros(tensor.Shape{d, c})
}

// Randn returns a [d, c] weight matrix with entries scale * N(0, 1).
//
// A small scale (1e-4 is typical) keeps the initial loss close to log(c),
// which is a quick sanity check on a fresh classifier.
func Randn(d, c int, scale float64, rng *rand.Rand) *mat.Dense {
	w := tensor.Zeros(tensor.Shape{d, c})
	data := w.RawMatrix().Data
	for i := range data {
		data[i] = scale * rng.NormFloat64()
	}
	return w
}

// Xavier (Glorot) initialization for a [fanIn, fanOut] weight matrix.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
func Xavier(fanIn, fanOut int, rng *rand.Rand) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	w := tensor.Zeros(tensor.Shape{fanIn, fanOut})
	data := w.RawMatrix().Data
	for i := range data {
		data[i] = (rng.Float64()*2.0 - 1.0) * bound
	}
	return w
}
