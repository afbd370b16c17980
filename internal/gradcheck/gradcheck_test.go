package gradcheck

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/parallel"
)

// sumOfCubes is f(W) = Σ W³ with gradient 3W².
func sumOfCubes(w *mat.Dense) float64 {
	total := 0.0
	r, c := w.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := w.At(i, j)
			total += v * v * v
		}
	}
	return total
}

func TestNumerical_SumOfCubes(t *testing.T) {
	w := mat.NewDense(2, 3, []float64{1, -2, 0.5, 3, 0, -1})

	for name, cfg := range map[string]parallel.Config{
		"sequential": parallel.Sequential(),
		"parallel":   {Enabled: true, NumWorkers: 4, MinChunkSize: 1},
	} {
		t.Run(name, func(t *testing.T) {
			checker := &Checker{Step: 1e-5, Parallel: cfg}
			grad := checker.Numerical(sumOfCubes, w)

			for i := 0; i < 2; i++ {
				for j := 0; j < 3; j++ {
					v := w.At(i, j)
					assert.InDelta(t, 3*v*v, grad.At(i, j), 1e-6, "[%d,%d]", i, j)
				}
			}
		})
	}
}

func TestNumerical_DoesNotMutateWeights(t *testing.T) {
	w := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	before := mat.DenseCopyOf(w)

	NewChecker().Numerical(sumOfCubes, w)

	assert.True(t, mat.Equal(before, w))
}

func TestSparse(t *testing.T) {
	w := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	analytic := mat.NewDense(3, 3, nil)
	analytic.Apply(func(_, _ int, v float64) float64 { return 3 * v * v }, w)

	samples := NewChecker().Sparse(sumOfCubes, w, analytic, 10, rand.New(rand.NewSource(42)))

	require.Len(t, samples, 10)
	for _, s := range samples {
		assert.Equal(t, analytic.At(s.Row, s.Col), s.Analytic)
		assert.Less(t, s.RelError, 1e-7, s.String())
	}
}

func TestSparse_ShapeMismatch(t *testing.T) {
	w := mat.NewDense(2, 2, nil)
	assert.Panics(t, func() {
		NewChecker().Sparse(sumOfCubes, w, mat.NewDense(3, 2, nil), 1, rand.New(rand.NewSource(1)))
	})
}

func TestSparse_NegativeChecks(t *testing.T) {
	w := mat.NewDense(2, 2, nil)
	assert.PanicsWithValue(t, "gradcheck: numChecks -1 must be >= 0", func() {
		NewChecker().Sparse(sumOfCubes, w, mat.NewDense(2, 2, nil), -1, rand.New(rand.NewSource(1)))
	})
}

func TestSparse_ZeroChecks(t *testing.T) {
	w := mat.NewDense(2, 2, nil)
	samples := NewChecker().Sparse(sumOfCubes, w, mat.NewDense(2, 2, nil), 0, rand.New(rand.NewSource(1)))
	assert.Empty(t, samples)
}

func TestRelError(t *testing.T) {
	assert.Equal(t, 0.0, RelError(0, 0))
	assert.Equal(t, 0.0, RelError(1.5, 1.5))
	assert.InDelta(t, 1.0/3.0, RelError(1, 2), 1e-12)
	assert.InDelta(t, 1.0, RelError(1, -1), 1e-12)
	assert.False(t, math.IsNaN(RelError(1e-20, 0)))
}

func TestMaxRelError(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{1, 2, 3})
	b := mat.NewDense(1, 3, []float64{1, 2, 6})

	assert.InDelta(t, 1.0/3.0, MaxRelError(a, b), 1e-12)
	assert.Panics(t, func() { MaxRelError(a, mat.NewDense(3, 1, nil)) })
}
