// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gradcheck compares analytic gradients against centered finite
// differences.
//
// Example:
//
//	f := func(w *mat.Dense) float64 {
//	    loss, _ := nn.SoftmaxLossVectorized(w, x, y, reg)
//	    return loss
//	}
//	_, dW := nn.SoftmaxLossVectorized(w, x, y, reg)
//	for _, s := range gradcheck.NewChecker().Sparse(f, w, dW, 10, rng) {
//	    fmt.Println(s)
//	}
package gradcheck

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/gradcheck"
)

// DefaultStep is the finite-difference step h.
const DefaultStep = gradcheck.DefaultStep

// Func evaluates a scalar loss at weights w.
type Func = gradcheck.Func

// Sample is one checked coordinate of a sparse gradient check.
type Sample = gradcheck.Sample

// Checker evaluates numerical gradients.
type Checker = gradcheck.Checker

// NewChecker returns a Checker with DefaultStep and CPU-count parallelism.
func NewChecker() *Checker {
	return gradcheck.NewChecker()
}

// RelError returns |a - b| / max(1e-8, |a| + |b|).
func RelError(a, b float64) float64 {
	return gradcheck.RelError(a, b)
}

// MaxRelError returns the largest elementwise RelError between a and b.
func MaxRelError(a, b mat.Matrix) float64 {
	return gradcheck.MaxRelError(a, b)
}
