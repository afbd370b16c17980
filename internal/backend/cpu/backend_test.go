package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestMatMul(t *testing.T) {
	backend := New()

	// [2,3] @ [3,2]
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

	result := backend.MatMul(a, b)

	want := mat.NewDense(2, 2, []float64{58, 64, 139, 154})
	assert.True(t, mat.Equal(want, result), "got %v", mat.Formatted(result))
}

func TestMatMul_ShapeMismatch(t *testing.T) {
	backend := New()
	a := mat.NewDense(2, 3, nil)
	b := mat.NewDense(2, 2, nil)

	assert.PanicsWithValue(t, "matmul: shape mismatch [2,3] @ [2,2]", func() {
		backend.MatMul(a, b)
	})
}

func TestMatMulTransA(t *testing.T) {
	backend := New()

	a := mat.NewDense(3, 2, []float64{1, 4, 2, 5, 3, 6}) // transpose of [[1,2,3],[4,5,6]]
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

	result := backend.MatMulTransA(a, b)

	want := mat.NewDense(2, 2, []float64{58, 64, 139, 154})
	assert.True(t, mat.Equal(want, result))
}

func TestExp(t *testing.T) {
	backend := New()
	x := mat.NewDense(1, 3, []float64{0, 1, -1})

	result := backend.Exp(x)

	assert.InDelta(t, 1.0, result.At(0, 0), 1e-12)
	assert.InDelta(t, math.E, result.At(0, 1), 1e-12)
	assert.InDelta(t, 1/math.E, result.At(0, 2), 1e-12)
	assert.Equal(t, 1.0, x.At(0, 1), "input must not be mutated")
}

func TestLog(t *testing.T) {
	backend := New()
	v := mat.NewVecDense(3, []float64{1, math.E, 0})

	result := backend.Log(v)

	assert.InDelta(t, 0.0, result.AtVec(0), 1e-12)
	assert.InDelta(t, 1.0, result.AtVec(1), 1e-12)
	assert.True(t, math.IsInf(result.AtVec(2), -1))

	assert.Panics(t, func() {
		backend.Log(mat.NewVecDense(1, []float64{-1}))
	})
}

func TestSumRowsAndMaxRows(t *testing.T) {
	backend := New()
	// Row 0: [1, 2, 3]
	// Row 1: [6, 5, 4]
	x := mat.NewDense(2, 3, []float64{1, 2, 3, 6, 5, 4})

	sums := backend.SumRows(x)
	assert.Equal(t, []float64{6, 15}, sums.RawVector().Data)

	maxes := backend.MaxRows(x)
	assert.Equal(t, []float64{3, 6}, maxes.RawVector().Data)

	assert.Equal(t, 6.0, backend.Max(x))
	assert.Equal(t, 21.0, backend.Sum(x))
}

func TestSubBroadcast_Column(t *testing.T) {
	backend := New()
	x := mat.NewDense(2, 3, []float64{1, 2, 3, 6, 5, 4})
	col := mat.NewVecDense(2, []float64{3, 6})

	result := backend.SubBroadcast(x, col)

	want := mat.NewDense(2, 3, []float64{-2, -1, 0, 0, -1, -2})
	assert.True(t, mat.Equal(want, result), "got %v", mat.Formatted(result))
}

func TestSubBroadcast_Row(t *testing.T) {
	backend := New()
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	row := mat.NewDense(1, 2, []float64{1, 2})

	result := backend.SubBroadcast(x, row)

	want := mat.NewDense(2, 2, []float64{0, 0, 2, 2})
	assert.True(t, mat.Equal(want, result))
}

func TestSubBroadcast_Incompatible(t *testing.T) {
	backend := New()
	x := mat.NewDense(2, 3, nil)

	assert.Panics(t, func() {
		backend.SubBroadcast(x, mat.NewVecDense(3, nil))
	})
	assert.Panics(t, func() {
		// Would expand x from [1,3] to [2,3].
		backend.SubBroadcast(mat.NewDense(1, 3, nil), mat.NewVecDense(2, nil))
	})
}

func TestDivBroadcast(t *testing.T) {
	backend := New()
	x := mat.NewDense(2, 2, []float64{2, 4, 9, 3})
	col := mat.NewVecDense(2, []float64{2, 3})

	result := backend.DivBroadcast(x, col)

	want := mat.NewDense(2, 2, []float64{1, 2, 3, 1})
	assert.True(t, mat.Equal(want, result))
}

func TestSubScalar(t *testing.T) {
	backend := New()
	x := mat.NewDense(1, 3, []float64{5, 6, 7})

	result := backend.SubScalar(x, 7)

	assert.Equal(t, []float64{-2, -1, 0}, result.RawMatrix().Data)
}

func TestGather(t *testing.T) {
	backend := New()
	x := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})

	result := backend.Gather(x, []int{1, 0, 1})

	assert.Equal(t, []float64{2, 3, 6}, result.RawVector().Data)
}

func TestGather_Invalid(t *testing.T) {
	backend := New()
	x := mat.NewDense(2, 2, nil)

	assert.Panics(t, func() { backend.Gather(x, []int{0}) })
	assert.Panics(t, func() { backend.Gather(x, []int{0, 2}) })
	assert.Panics(t, func() { backend.Gather(x, []int{-1, 0}) })
}

func TestOneHot(t *testing.T) {
	backend := New()

	result := backend.OneHot([]int{2, 0}, 3)

	want := mat.NewDense(2, 3, []float64{0, 0, 1, 1, 0, 0})
	assert.True(t, mat.Equal(want, result))

	assert.Panics(t, func() { backend.OneHot([]int{3}, 3) })
	assert.Panics(t, func() { backend.OneHot(nil, 3) })
}
