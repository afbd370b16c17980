package nn

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/tensor"
)

// Stabilization selects the constant subtracted from the score matrix
// before exponentiation.
//
// Softmax is invariant to adding a constant to every score of one example,
// so both policies produce the same loss and gradient in exact arithmetic.
// They differ only in how much headroom they leave against overflow and
// underflow.
type Stabilization int

const (
	// RowMax subtracts each example's own maximum score. Every row then has
	// a largest exponent of exactly 1, so the normalizer never underflows.
	RowMax Stabilization = iota

	// GlobalMax subtracts the single largest score in the whole batch.
	// Rows whose scores sit far below the batch maximum can underflow to a
	// zero normalizer; kept for reproducing results computed that way.
	GlobalMax
)

func (s Stabilization) String() string {
	switch s {
	case RowMax:
		return "row-max"
	case GlobalMax:
		return "global-max"
	default:
		return fmt.Sprintf("Stabilization(%d)", int(s))
	}
}

// ParseStabilization maps "row-max" or "global-max" onto a Stabilization.
func ParseStabilization(name string) (Stabilization, error) {
	switch name {
	case "row-max", "row":
		return RowMax, nil
	case "global-max", "global":
		return GlobalMax, nil
	default:
		return RowMax, fmt.Errorf("unknown stabilization %q (want row-max or global-max)", name)
	}
}

// Option configures a softmax loss evaluation.
type Option func(*lossConfig)

type lossConfig struct {
	stabilization Stabilization
}

// WithStabilization selects the max-subtraction policy.
func WithStabilization(s Stabilization) Option {
	return func(c *lossConfig) {
		c.stabilization = s
	}
}

func newLossConfig(opts []Option) lossConfig {
	cfg := lossConfig{stabilization: RowMax}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LossFunc is the signature shared by SoftmaxLossNaive and
// SoftmaxLossVectorized.
type LossFunc func(w, x *mat.Dense, y []int, reg float64, opts ...Option) (float64, *mat.Dense)

// Errors reported by CheckInputs.
var (
	ErrEmptyBatch    = errors.New("softmax: empty batch")
	ErrShapeMismatch = errors.New("softmax: shape mismatch")
	ErrLabelRange    = errors.New("softmax: label out of range")
	ErrNegativeReg   = errors.New("softmax: negative regularization strength")
)

// CheckInputs validates the shapes and labels of a softmax loss call.
//
// The evaluators do not call it themselves; malformed inputs make them
// panic instead. Use CheckInputs at a boundary where inputs come from
// outside the program.
func CheckInputs(w, x *mat.Dense, y []int, reg float64) error {
	if w == nil || x == nil || w.IsEmpty() || x.IsEmpty() {
		return ErrEmptyBatch
	}

	numTrain, dim := x.Dims()
	wDim, numClass := w.Dims()

	if dim != wDim {
		return fmt.Errorf("%w: X is %v but W is %v", ErrShapeMismatch, tensor.ShapeOf(x), tensor.ShapeOf(w))
	}
	if len(y) != numTrain {
		return fmt.Errorf("%w: %d labels for %d examples", ErrShapeMismatch, len(y), numTrain)
	}
	for i, label := range y {
		if label < 0 || label >= numClass {
			return fmt.Errorf("%w: y[%d] = %d, want [0, %d)", ErrLabelRange, i, label, numClass)
		}
	}
	if reg < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeReg, reg)
	}
	return nil
}

// regularize adds the L2 penalty to an already averaged loss and gradient:
//
//	loss += 0.5 * reg * Σ W²
//	dW   += reg * W
//
// reg = 0 keeps the same arithmetic with a zero multiplier.
func regularize(loss float64, dW, w *mat.Dense, reg float64) (float64, *mat.Dense) {
	weights := tensor.Contiguous(w)
	loss += 0.5 * reg * floats.Dot(weights, weights)

	grad := dW.RawMatrix().Data
	floats.AddScaled(grad, reg, weights)

	return loss, dW
}

// checkCall panics on inputs that cannot be evaluated at all.
// Label values are left to the evaluators' own bounds checks.
func checkCall(op string, w, x *mat.Dense, y []int) {
	numTrain, dim := x.Dims()
	wDim, numClass := w.Dims()
	if dim != wDim {
		panic(fmt.Sprintf("%s: shape mismatch X[%d,%d] W[%d,%d]", op, numTrain, dim, wDim, numClass))
	}
	if len(y) != numTrain {
		panic(fmt.Sprintf("%s: %d labels for %d examples", op, len(y), numTrain))
	}
}
