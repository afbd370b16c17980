// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/nn"
)

// Loss functions

// LossFunc is the signature shared by SoftmaxLossNaive and SoftmaxLossVectorized.
type LossFunc = nn.LossFunc

// SoftmaxLossNaive computes the softmax loss and gradient with explicit loops.
//
// Example:
//
//	loss, dW := nn.SoftmaxLossNaive(w, x, y, 0.1)
func SoftmaxLossNaive(w, x *mat.Dense, y []int, reg float64, opts ...Option) (float64, *mat.Dense) {
	return nn.SoftmaxLossNaive(w, x, y, reg, opts...)
}

// SoftmaxLossVectorized computes the softmax loss and gradient with
// whole-matrix operations.
//
// Example:
//
//	loss, dW := nn.SoftmaxLossVectorized(w, x, y, 0.1)
func SoftmaxLossVectorized(w, x *mat.Dense, y []int, reg float64, opts ...Option) (float64, *mat.Dense) {
	return nn.SoftmaxLossVectorized(w, x, y, reg, opts...)
}

// Options

// Option configures a softmax loss evaluation.
type Option = nn.Option

// Stabilization selects the constant subtracted from scores before exponentiation.
type Stabilization = nn.Stabilization

// Stabilization policies.
const (
	RowMax    = nn.RowMax
	GlobalMax = nn.GlobalMax
)

// WithStabilization selects the max-subtraction policy.
func WithStabilization(s Stabilization) Option {
	return nn.WithStabilization(s)
}

// ParseStabilization maps "row-max" or "global-max" onto a Stabilization.
func ParseStabilization(name string) (Stabilization, error) {
	return nn.ParseStabilization(name)
}

// Validation

// Errors reported by CheckInputs.
var (
	ErrEmptyBatch    = nn.ErrEmptyBatch
	ErrShapeMismatch = nn.ErrShapeMismatch
	ErrLabelRange    = nn.ErrLabelRange
	ErrNegativeReg   = nn.ErrNegativeReg
)

// CheckInputs validates the shapes and labels of a softmax loss call.
func CheckInputs(w, x *mat.Dense, y []int, reg float64) error {
	return nn.CheckInputs(w, x, y, reg)
}

// Initialization

// Zeros returns a [d, c] weight matrix filled with zeros.
func Zeros(d, c int) *mat.Dense {
	return nn.Zeros(d, c)
}

// Randn returns a [d, c] weight matrix with entries scale * N(0, 1).
func Randn(d, c int, scale float64, rng *rand.Rand) *mat.Dense {
	return nn.Randn(d, c, scale, rng)
}

// Xavier returns a [fanIn, fanOut] weight matrix with Glorot uniform entries.
func Xavier(fanIn, fanOut int, rng *rand.Rand) *mat.Dense {
	return nn.Xavier(fanIn, fanOut, rng)
}
