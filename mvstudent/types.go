// Package mvstudent declares the Density contract, parameter options,
// sentinel errors and the shared linear-algebra helpers both density
// variants build on.
package mvstudent

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for density construction and evaluation.
var (
	// ErrNoData indicates PDF/LogPDF was invoked with no data.
	ErrNoData = errors.New("mvstudent: no data given")

	// ErrBadDim indicates a non-positive dimension was requested.
	ErrBadDim = errors.New("mvstudent: dimension must be positive")

	// ErrDimMismatch indicates a vector or matrix whose shape does not
	// match the density's dimension.
	ErrDimMismatch = errors.New("mvstudent: dimension mismatch")

	// ErrThetaLength indicates a flat parameter vector of the wrong length.
	ErrThetaLength = errors.New("mvstudent: wrong theta length")

	// ErrNotPosDef indicates a scale matrix whose Cholesky factorization
	// failed, so quadratic forms cannot be computed.
	ErrNotPosDef = errors.New("mvstudent: scale matrix is not positive definite")

	// ErrSkewNotAllowed indicates a skewness vector supplied to the
	// symmetric density.
	ErrSkewNotAllowed = errors.New("mvstudent: symmetric density takes no skewness vector")

	// ErrBadSize indicates a non-positive sample size passed to Rand.
	ErrBadSize = errors.New("mvstudent: sample size must be positive")
)

// defaultEta is the degrees-of-freedom default and optimizer start.
const defaultEta = 10.0

// Density is the capability contract every parametric density implements.
//
// A Density is a pure evaluator: observations are passed to every call and
// never stored. The only mutation is FromTheta, which replaces the free
// parameters wholesale; callers sharing one instance across goroutines must
// serialize FromTheta against evaluations themselves.
type Density interface {
	// Name returns a human-readable identifier of the density family.
	Name() string

	// Dim returns the dimensionality d of the density's support ℝ^d.
	Dim() int

	// PDF evaluates the density at each row of points (T×d) and returns
	// one non-negative value per row.
	PDF(points *mat.Dense) ([]float64, error)

	// LogPDF is PDF in log-space, the form likelihood maximization wants.
	LogPDF(points *mat.Dense) ([]float64, error)

	// FromTheta replaces all free parameters from a flat vector.
	FromTheta(theta []float64) error

	// Bounds returns one open box constraint per free parameter, in the
	// same order FromTheta consumes them.
	Bounds() []Bound

	// ThetaStart returns the default optimizer starting point; its length
	// always equals len(Bounds()).
	ThetaStart() []float64
}

// Bound is an open box constraint (Min, Max) on a single free parameter.
// ±Inf marks an unconstrained side.
type Bound struct {
	Min float64
	Max float64
}

// Unbounded returns the unconstrained bound (−Inf, +Inf).
func Unbounded() Bound {
	return Bound{Min: math.Inf(-1), Max: math.Inf(1)}
}

// config collects constructor parameters shared by both variants.
type config struct {
	eta   float64
	lam   []float64
	mu    []float64
	sigma *mat.SymDense
	src   rand.Source
}

func defaultConfig() config {
	return config{eta: defaultEta}
}

// Option configures a density before creation.
type Option func(*config)

// WithEta sets the degrees of freedom (default 10).
func WithEta(eta float64) Option {
	return func(c *config) { c.eta = eta }
}

// WithLam sets the skewness vector, one component per dimension.
// Only the skewed density accepts it.
func WithLam(lam ...float64) Option {
	return func(c *config) { c.lam = lam }
}

// WithMu sets an explicit location vector. When absent, the location is
// derived from eta and the skewness.
func WithMu(mu ...float64) Option {
	return func(c *config) { c.mu = mu }
}

// WithSigma sets an explicit scale matrix. When absent, the scale is
// derived from eta and the skewness. The matrix is copied.
func WithSigma(sigma *mat.SymDense) Option {
	return func(c *config) { c.sigma = sigma }
}

// WithSource injects the randomness source used by simulation. A nil
// source falls back to the global generator.
func WithSource(src rand.Source) Option {
	return func(c *config) { c.src = src }
}

// checkPoints validates an observation matrix against the density dimension.
func checkPoints(points *mat.Dense, ndim int) error {
	if points == nil {
		return ErrNoData
	}
	if _, c := points.Dims(); c != ndim {
		return ErrDimMismatch
	}
	return nil
}

// cloneVec returns a defensive copy of v, or nil for nil.
func cloneVec(v []float64) []float64 {
	if v == nil {
		return nil
	}
	return append([]float64(nil), v...)
}

// scaleFactor carries the Cholesky factorization of a scale matrix so that
// every quadratic form is a triangular solve, never an explicit inverse.
type scaleFactor struct {
	chol   mat.Cholesky
	logDet float64
}

// factorize decomposes sigma, failing fast when it is not positive definite.
func factorize(sigma *mat.SymDense) (*scaleFactor, error) {
	var f scaleFactor
	if ok := f.chol.Factorize(sigma); !ok {
		return nil, ErrNotPosDef
	}
	f.logDet = f.chol.LogDet()
	return &f, nil
}

// solve writes Σ⁻¹·b into dst.
func (f *scaleFactor) solve(dst, b []float64) error {
	v := mat.NewVecDense(len(dst), dst)
	if err := f.chol.SolveVecTo(v, mat.NewVecDense(len(b), b)); err != nil {
		return fmt.Errorf("mvstudent: scale solve: %w", err)
	}
	return nil
}

// symmetricLogPDF evaluates the zero-skew multivariate Student log-density
// for each row of points:
//
//	log f = lnΓ((η+d)/2) − lnΓ(η/2) − ½(d·ln(πη) + ln det Σ)
//	        − (η+d)/2 · ln(1 + Q/η)
//
// with Q the per-row Mahalanobis form against the factorized scale. Both
// the symmetric density and the skewed density's zero-skewness limit reduce
// to this form.
func symmetricLogPDF(points *mat.Dense, mu []float64, f *scaleFactor, eta float64) ([]float64, error) {
	ndim := len(mu)
	d := float64(ndim)
	nu := (eta + d) / 2

	lgNu, _ := math.Lgamma(nu)
	lgHalf, _ := math.Lgamma(eta / 2)
	logNorm := lgNu - lgHalf - 0.5*(d*math.Log(math.Pi*eta)+f.logDet)

	rows, _ := points.Dims()
	out := make([]float64, rows)
	diff := make([]float64, ndim)
	v := make([]float64, ndim)
	for t := 0; t < rows; t++ {
		for j := 0; j < ndim; j++ {
			diff[j] = points.At(t, j) - mu[j]
		}
		if err := f.solve(v, diff); err != nil {
			return nil, err
		}
		q := floats.Dot(diff, v)
		out[t] = logNorm - nu*math.Log1p(q/eta)
	}
	return out, nil
}

// expInPlace exponentiates log-densities into densities.
func expInPlace(logs []float64) []float64 {
	for i, v := range logs {
		logs[i] = math.Exp(v)
	}
	return logs
}
