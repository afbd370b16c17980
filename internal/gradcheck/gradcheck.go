// Package gradcheck compares analytic gradients against centered finite
// differences.
package gradcheck

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/parallel"
)

// DefaultStep is the finite-difference step h.
const DefaultStep = 1e-5

// Func evaluates a scalar loss at weights w.
//
// A Func must not modify w and must be safe for concurrent use when the
// Checker runs in parallel.
type Func func(w *mat.Dense) float64

// Sample is one checked coordinate of a sparse gradient check.
type Sample struct {
	Row, Col  int
	Numerical float64
	Analytic  float64
	RelError  float64
}

func (s Sample) String() string {
	return fmt.Sprintf("[%d,%d] numerical: %f analytic: %f, relative error: %e",
		s.Row, s.Col, s.Numerical, s.Analytic, s.RelError)
}

// Checker evaluates numerical gradients.
type Checker struct {
	Step     float64
	Parallel parallel.Config
}

// NewChecker returns a Checker with DefaultStep and CPU-count parallelism.
func NewChecker() *Checker {
	return &Checker{
		Step:     DefaultStep,
		Parallel: parallel.DefaultConfig(),
	}
}

// Numerical returns the centered-difference gradient of f at w:
//
//	g[i,j] = (f(w + h·e_ij) - f(w - h·e_ij)) / 2h
//
// Coordinates are independent, so they are spread across workers; each
// worker perturbs its own copy of w.
func (c *Checker) Numerical(f Func, w *mat.Dense) *mat.Dense {
	rows, cols := w.Dims()
	grad := mat.NewDense(rows, cols, nil)

	parallel.ForGrid(rows, cols, func(i, j int) {
		grad.Set(i, j, c.partial(f, w, i, j))
	}, c.Parallel)

	return grad
}

// Sparse checks numChecks randomly chosen coordinates of analytic against
// the numerical derivative of f at w.
func (c *Checker) Sparse(f Func, w *mat.Dense, analytic mat.Matrix, numChecks int, rng *rand.Rand) []Sample {
	if numChecks < 0 {
		panic(fmt.Sprintf("gradcheck: numChecks %d must be >= 0", numChecks))
	}
	rows, cols := w.Dims()
	if ar, ac := analytic.Dims(); ar != rows || ac != cols {
		panic(fmt.Sprintf("gradcheck: analytic gradient [%d,%d] does not match weights [%d,%d]", ar, ac, rows, cols))
	}

	samples := make([]Sample, numChecks)
	for k := range samples {
		samples[k].Row = rng.Intn(rows)
		samples[k].Col = rng.Intn(cols)
	}

	parallel.For(numChecks, func(k int) {
		s := &samples[k]
		s.Numerical = c.partial(f, w, s.Row, s.Col)
		s.Analytic = analytic.At(s.Row, s.Col)
		s.RelError = RelError(s.Numerical, s.Analytic)
	}, c.Parallel)

	return samples
}

func (c *Checker) partial(f Func, w *mat.Dense, i, j int) float64 {
	h := c.Step
	if h <= 0 {
		h = DefaultStep
	}

	shifted := mat.DenseCopyOf(w)
	old := shifted.At(i, j)

	shifted.Set(i, j, old+h)
	plus := f(shifted)
	shifted.Set(i, j, old-h)
	minus := f(shifted)

	return (plus - minus) / (2 * h)
}

// RelError returns |a - b| / max(1e-8, |a| + |b|).
func RelError(a, b float64) float64 {
	return math.Abs(a-b) / math.Max(1e-8, math.Abs(a)+math.Abs(b))
}

// MaxRelError returns the largest elementwise RelError between a and b.
// Panics if the shapes differ.
func MaxRelError(a, b mat.Matrix) float64 {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(fmt.Sprintf("gradcheck: shape mismatch [%d,%d] vs [%d,%d]", ar, ac, br, bc))
	}

	worst := 0.0
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			worst = math.Max(worst, RelError(a.At(i, j), b.At(i, j)))
		}
	}
	return worst
}
