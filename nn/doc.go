// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn computes the softmax classification loss of a linear
// classifier and its gradient with respect to the weight matrix.
//
// # Overview
//
// Given weights W [D, C], a minibatch X [N, D], labels y (len N, values in
// [0, C)) and an L2 strength reg, both evaluators return
//
//	loss = mean_i(-log softmax(X[i]·W)[y_i]) + 0.5 * reg * Σ W²
//	dW   = Xᵀ·(P - onehot(y)) / N + reg * W
//
// where P holds the per-example softmax probabilities.
//
// Two implementations of the same contract are provided:
//   - SoftmaxLossNaive: explicit loops over examples and classes
//   - SoftmaxLossVectorized: whole-matrix operations only
//
// They agree to within floating-point rounding (relative error well
// below 1e-7).
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/linsoftmax/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(0))
//	    w := nn.Randn(3073, 10, 1e-4, rng)
//
//	    if err := nn.CheckInputs(w, x, y, 5e-6); err != nil {
//	        log.Fatal(err)
//	    }
//	    loss, dW := nn.SoftmaxLossVectorized(w, x, y, 5e-6)
//	}
//
// # Numerical Stability
//
// Scores are shifted by a maximum before exponentiation. The default,
// RowMax, subtracts each example's own maximum. GlobalMax subtracts the
// batch-wide maximum instead, reproducing results computed that way:
//
//	loss, dW := nn.SoftmaxLossNaive(w, x, y, reg, nn.WithStabilization(nn.GlobalMax))
//
// # Errors
//
// The evaluators panic on malformed inputs (mismatched shapes, labels out
// of range). CheckInputs reports the same conditions as errors that can
// be matched with errors.Is against ErrShapeMismatch, ErrLabelRange,
// ErrEmptyBatch and ErrNegativeReg.
package nn
