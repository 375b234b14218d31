package mvstudent

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Student — symmetric multivariate Student-t density.
//
// Description:
//
//	The heavy-tailed elliptical density on ℝ^d with degrees of freedom η,
//	location μ and scale Σ:
//
//	  f(x) = [(πη)^d · det Σ]^(−1/2) · Γ((η+d)/2)/Γ(η/2)
//	         · [1 + Q/η]^(−(η+d)/2),   Q = (x−μ)ᵀ Σ⁻¹ (x−μ)
//
//	When μ/Σ are not supplied they are derived as μ = 0 and
//	Σ = (1 − 2/η)·I, which standardizes the density to unit covariance.
//	The derived scale is positive definite only for η > 2, the lower
//	bound Bounds() reports.
//
// Evaluation Outline:
//  1. Factorize Σ once per call (Cholesky); reject non-PD scales.
//  2. Per observation row, solve Σ·v = (x−μ) and take Q = (x−μ)·v.
//  3. Assemble the log-density with log-gamma terms, exponentiate last.
//
// The single free optimizer parameter is η.
type Student struct {
	ndim  int
	eta   float64
	mu    []float64     // nil: derived zero vector
	sigma *mat.SymDense // nil: derived (1−2/η)·I
}

var _ Density = (*Student)(nil)

// NewStudent creates a symmetric multivariate Student density on ℝ^ndim.
// Defaults: eta=10, derived mu and sigma. WithLam is rejected.
func NewStudent(ndim int, opts ...Option) (*Student, error) {
	if ndim < 1 {
		return nil, ErrBadDim
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lam != nil {
		return nil, ErrSkewNotAllowed
	}
	if cfg.mu != nil && len(cfg.mu) != ndim {
		return nil, ErrDimMismatch
	}
	if cfg.sigma != nil && cfg.sigma.SymmetricDim() != ndim {
		return nil, ErrDimMismatch
	}

	d := &Student{
		ndim: ndim,
		eta:  cfg.eta,
		mu:   cloneVec(cfg.mu),
	}
	if cfg.sigma != nil {
		d.sigma = mat.NewSymDense(ndim, nil)
		d.sigma.CopySym(cfg.sigma)
	}
	return d, nil
}

// Name identifies the density family.
func (d *Student) Name() string { return "Multivariate Student" }

// Dim returns the dimensionality of the support.
func (d *Student) Dim() int { return d.ndim }

// Eta returns the current degrees of freedom.
func (d *Student) Eta() float64 { return d.eta }

// ConstMu returns the location vector: the supplied mu, else zeros.
// The result always has length Dim().
func (d *Student) ConstMu() []float64 {
	mu := make([]float64, d.ndim)
	copy(mu, d.mu)
	return mu
}

// ConstSigma returns the scale matrix: the supplied sigma, else
// (1 − 2/η)·I. The derived branch needs η > 2 to stay positive definite.
func (d *Student) ConstSigma() *mat.SymDense {
	out := mat.NewSymDense(d.ndim, nil)
	if d.sigma != nil {
		out.CopySym(d.sigma)
		return out
	}
	s := 1 - 2/d.eta
	for i := 0; i < d.ndim; i++ {
		out.SetSym(i, i, s)
	}
	return out
}

// Bounds returns the single open constraint η ∈ (2, +Inf).
func (d *Student) Bounds() []Bound {
	return []Bound{{Min: 2, Max: math.Inf(1)}}
}

// ThetaStart returns the default optimizer starting point [10].
func (d *Student) ThetaStart() []float64 {
	return []float64{defaultEta}
}

// FromTheta replaces the free parameters wholesale: theta[0] → eta.
func (d *Student) FromTheta(theta []float64) error {
	if len(theta) != 1 {
		return ErrThetaLength
	}
	d.eta = theta[0]
	return nil
}

// LogPDF returns the log-density of each row of points (T×Dim()).
func (d *Student) LogPDF(points *mat.Dense) ([]float64, error) {
	if err := checkPoints(points, d.ndim); err != nil {
		return nil, err
	}
	f, err := factorize(d.ConstSigma())
	if err != nil {
		return nil, err
	}
	return symmetricLogPDF(points, d.ConstMu(), f, d.eta)
}

// PDF returns the density of each row of points (T×Dim()).
func (d *Student) PDF(points *mat.Dense) ([]float64, error) {
	logs, err := d.LogPDF(points)
	if err != nil {
		return nil, err
	}
	return expInPlace(logs), nil
}

// PDFAt evaluates the density at a single observation.
func (d *Student) PDFAt(x []float64) (float64, error) {
	if x == nil {
		return 0, ErrNoData
	}
	if len(x) != d.ndim {
		return 0, ErrDimMismatch
	}
	vals, err := d.PDF(mat.NewDense(1, d.ndim, cloneVec(x)))
	if err != nil {
		return 0, err
	}
	return vals[0], nil
}
