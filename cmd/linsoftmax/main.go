// Package main provides the linsoftmax self-check CLI.
//
// The check command builds a synthetic minibatch, evaluates the naive and
// vectorized softmax losses on it, and reports how closely they agree with
// each other and with a numerical gradient.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/linsoftmax/internal/gradcheck"
	"github.com/born-ml/linsoftmax/internal/nn"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("linsoftmax: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("linsoftmax %s\n", version)
	case "check":
		if err := runCheck(os.Args[2:]); err != nil {
			log.Fatalf("check: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("linsoftmax - softmax loss and gradient for linear classifiers")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  check      Compare naive and vectorized evaluators on synthetic data")
}

type checkOptions struct {
	n, d, c       int
	reg           float64
	scale         float64
	seed          int64
	checks        int
	init          string
	stabilization nn.Stabilization
}

func parseCheckFlags(args []string) (*checkOptions, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	n := fs.Int("n", 500, "Number of examples in the minibatch")
	d := fs.Int("d", 65, "Feature dimension including the bias feature")
	c := fs.Int("c", 10, "Number of classes")
	reg := fs.Float64("reg", 5e-6, "L2 regularization strength")
	scale := fs.Float64("scale", 1e-4, "Standard deviation of the random initial weights")
	seed := fs.Int64("seed", 0, "PRNG seed")
	checks := fs.Int("checks", 10, "Number of sparse gradient-check coordinates")
	stab := fs.String("stabilization", "row-max", "Score shift policy: row-max or global-max")
	initName := fs.String("init", "randn", "Weight initialization: randn (scaled by -scale) or xavier")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	s, err := nn.ParseStabilization(*stab)
	if err != nil {
		return nil, err
	}
	if *n < 1 || *d < 2 || *c < 2 {
		return nil, fmt.Errorf("need n >= 1, d >= 2, c >= 2 (got n=%d d=%d c=%d)", *n, *d, *c)
	}
	if *checks < 0 {
		return nil, fmt.Errorf("need checks >= 0 (got %d)", *checks)
	}
	if *reg < 0 {
		return nil, fmt.Errorf("need reg >= 0 (got %g)", *reg)
	}
	if *initName != "randn" && *initName != "xavier" {
		return nil, fmt.Errorf("unknown init %q (want randn or xavier)", *initName)
	}

	return &checkOptions{
		n: *n, d: *d, c: *c,
		reg:           *reg,
		scale:         *scale,
		seed:          *seed,
		checks:        *checks,
		init:          *initName,
		stabilization: s,
	}, nil
}

func runCheck(args []string) error {
	opts, err := parseCheckFlags(args)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(opts.seed)) //nolint:gosec // Deterministic seed for reproducible checks
	batch := SyntheticMinibatch(opts.n, opts.d, opts.c, rng)
	w := initWeights(opts, rng)

	if err := nn.CheckInputs(w, batch.X, batch.Y, opts.reg); err != nil {
		return err
	}

	stab := nn.WithStabilization(opts.stabilization)
	fmt.Printf("N=%d D=%d C=%d reg=%g init=%s stabilization=%s\n\n",
		opts.n, opts.d, opts.c, opts.reg, opts.init, opts.stabilization)

	start := time.Now()
	lossNaive, gradNaive := nn.SoftmaxLossNaive(w, batch.X, batch.Y, opts.reg, stab)
	naiveTime := time.Since(start)
	fmt.Printf("naive loss: %e computed in %v\n", lossNaive, naiveTime)

	start = time.Now()
	lossVec, gradVec := nn.SoftmaxLossVectorized(w, batch.X, batch.Y, opts.reg, stab)
	vecTime := time.Since(start)
	fmt.Printf("vectorized loss: %e computed in %v\n", lossVec, vecTime)

	fmt.Printf("sanity check: loss should be close to -log(1/C) = %f\n\n", math.Log(float64(opts.c)))

	var diff mat.Dense
	diff.Sub(gradNaive, gradVec)
	fmt.Printf("Loss difference: %e\n", math.Abs(lossNaive-lossVec))
	fmt.Printf("Gradient difference: %e\n", mat.Norm(&diff, 2))
	fmt.Printf("Max relative gradient error: %e\n\n", gradcheck.MaxRelError(gradNaive, gradVec))

	f := func(shifted *mat.Dense) float64 {
		loss, _ := nn.SoftmaxLossVectorized(shifted, batch.X, batch.Y, opts.reg, stab)
		return loss
	}
	fmt.Println("Sparse gradient check (vectorized):")
	for _, s := range gradcheck.NewChecker().Sparse(f, w, gradVec, opts.checks, rng) {
		fmt.Println(s)
	}

	return nil
}

func initWeights(opts *checkOptions, rng *rand.Rand) *mat.Dense {
	if opts.init == "xavier" {
		return nn.Xavier(opts.d, opts.c, rng)
	}
	return nn.Randn(opts.d, opts.c, opts.scale, rng)
}
