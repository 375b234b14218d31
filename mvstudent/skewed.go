package mvstudent

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/multidensity/specfun"
)

// SkewedStudent — skewed multivariate Student density of Demarta & McNeil.
//
// Description:
//
//	The generalized-hyperbolic skew-t density on ℝ^d with degrees of
//	freedom η and per-dimension skewness λ:
//
//	  f(x) = 2^(1−ν) / [(πη)^d · det Σ]^(1/2)
//	         · K_ν(κ) · κ^ν / Γ(η/2)
//	         · exp((Σ⁻¹(x−μ))·λ) · [1 + Q/η]^(−ν)
//
//	with ν = (η+d)/2, Q = (x−μ)ᵀ Σ⁻¹ (x−μ),
//	κ = sqrt((η + Q) · λᵀΣ⁻¹λ), and K_ν the modified Bessel function of
//	the second kind (specfun.BesselK).
//
//	Derived constants when μ/Σ are not supplied:
//
//	  μ = η/(2−η) · λ
//	  Σ = (1 − 2/η)·I − 2η/((η−2)(η−4)) · λλᵀ
//
//	chosen so the density is standardized (zero mean, unit covariance).
//	The derived Σ needs η > 4 to stay usable, the lower bound Bounds()
//	reports on η.
//
// Evaluation Outline:
//  1. Factorize Σ (Cholesky); reject non-PD scales.
//  2. Solve Σ·w = λ once; the skewness norm is λ·w.
//  3. Zero skewness norm takes the analytic κ→0 limit: the symmetric
//     Student formula. For nonzero norm with κ→0 (the Q→−η corner) no
//     special case applies and NaN may propagate.
//  4. Per row, solve Σ·v = (x−μ), take Q and κ, assemble the log-density
//     with the exponentially scaled Bessel term ln K̂_ν(κ) − κ.
//
// The free optimizer parameters are η followed by the d skewness
// components.
type SkewedStudent struct {
	ndim  int
	eta   float64
	lam   []float64
	mu    []float64     // nil: derived η/(2−η)·λ
	sigma *mat.SymDense // nil: derived from η and λ
	src   rand.Source
}

var _ Density = (*SkewedStudent)(nil)

// NewSkewedStudent creates a skewed multivariate Student density on ℝ^ndim.
// Defaults: eta=10, zero skewness, derived mu and sigma, global randomness.
func NewSkewedStudent(ndim int, opts ...Option) (*SkewedStudent, error) {
	if ndim < 1 {
		return nil, ErrBadDim
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lam != nil && len(cfg.lam) != ndim {
		return nil, ErrDimMismatch
	}
	if cfg.mu != nil && len(cfg.mu) != ndim {
		return nil, ErrDimMismatch
	}
	if cfg.sigma != nil && cfg.sigma.SymmetricDim() != ndim {
		return nil, ErrDimMismatch
	}

	lam := make([]float64, ndim)
	copy(lam, cfg.lam)
	d := &SkewedStudent{
		ndim: ndim,
		eta:  cfg.eta,
		lam:  lam,
		mu:   cloneVec(cfg.mu),
		src:  cfg.src,
	}
	if cfg.sigma != nil {
		d.sigma = mat.NewSymDense(ndim, nil)
		d.sigma.CopySym(cfg.sigma)
	}
	return d, nil
}

// Name identifies the density family.
func (d *SkewedStudent) Name() string { return "Demarta & McNeil" }

// Dim returns the dimensionality of the support.
func (d *SkewedStudent) Dim() int { return d.ndim }

// Eta returns the current degrees of freedom.
func (d *SkewedStudent) Eta() float64 { return d.eta }

// Lam returns a copy of the current skewness vector.
func (d *SkewedStudent) Lam() []float64 {
	return cloneVec(d.lam)
}

// ConstMu returns the location vector: the supplied mu, else η/(2−η)·λ.
// The derived branch is finite for η ≠ 2; the optimizer domain η > 4
// keeps it well clear of the pole.
func (d *SkewedStudent) ConstMu() []float64 {
	mu := make([]float64, d.ndim)
	if d.mu != nil {
		copy(mu, d.mu)
		return mu
	}
	c := d.eta / (2 - d.eta)
	for j, l := range d.lam {
		mu[j] = c * l
	}
	return mu
}

// ConstSigma returns the scale matrix: the supplied sigma, else
//
//	(1 − 2/η)·I − 2η/((η−2)(η−4)) · λλᵀ.
//
// The derived branch needs η > 4; large skewness can still push it out of
// positive definiteness, which evaluation reports as ErrNotPosDef.
func (d *SkewedStudent) ConstSigma() *mat.SymDense {
	out := mat.NewSymDense(d.ndim, nil)
	if d.sigma != nil {
		out.CopySym(d.sigma)
		return out
	}
	diag := 1 - 2/d.eta
	c := 2 * d.eta / ((d.eta - 2) * (d.eta - 4))
	for i := 0; i < d.ndim; i++ {
		for j := i; j < d.ndim; j++ {
			v := -c * d.lam[i] * d.lam[j]
			if i == j {
				v += diag
			}
			out.SetSym(i, j, v)
		}
	}
	return out
}

// Bounds returns η ∈ (4, +Inf) followed by one unbounded pair per
// skewness component.
func (d *SkewedStudent) Bounds() []Bound {
	bounds := make([]Bound, 0, d.ndim+1)
	bounds = append(bounds, Bound{Min: 4, Max: math.Inf(1)})
	for i := 0; i < d.ndim; i++ {
		bounds = append(bounds, Unbounded())
	}
	return bounds
}

// ThetaStart returns the default optimizer starting point: [10, 0, …, 0].
func (d *SkewedStudent) ThetaStart() []float64 {
	theta := make([]float64, d.ndim+1)
	theta[0] = defaultEta
	return theta
}

// FromTheta replaces all free parameters wholesale: element 0 → eta, the
// remaining Dim() elements → the skewness vector.
func (d *SkewedStudent) FromTheta(theta []float64) error {
	if len(theta) != d.ndim+1 {
		return ErrThetaLength
	}
	d.eta = theta[0]
	d.lam = cloneVec(theta[1:])
	return nil
}

// LogPDF returns the log-density of each row of points (T×Dim()).
func (d *SkewedStudent) LogPDF(points *mat.Dense) ([]float64, error) {
	if err := checkPoints(points, d.ndim); err != nil {
		return nil, err
	}
	f, err := factorize(d.ConstSigma())
	if err != nil {
		return nil, err
	}

	w := make([]float64, d.ndim)
	if err = f.solve(w, d.lam); err != nil {
		return nil, err
	}
	normLam := floats.Dot(d.lam, w)

	mu := d.ConstMu()
	if normLam == 0 {
		// Analytic κ→0 limit: K_ν(κ)·κ^ν → 2^(ν−1)·Γ(ν), which collapses
		// the closed form onto the symmetric Student density.
		return symmetricLogPDF(points, mu, f, d.eta)
	}

	dd := float64(d.ndim)
	nu := (d.eta + dd) / 2
	lgHalf, _ := math.Lgamma(d.eta / 2)
	logNorm := (1-nu)*math.Ln2 - 0.5*(dd*math.Log(math.Pi*d.eta)+f.logDet) - lgHalf

	rows, _ := points.Dims()
	out := make([]float64, rows)
	diff := make([]float64, d.ndim)
	v := make([]float64, d.ndim)
	for t := 0; t < rows; t++ {
		for j := 0; j < d.ndim; j++ {
			diff[j] = points.At(t, j) - mu[j]
		}
		if err = f.solve(v, diff); err != nil {
			return nil, err
		}
		q := floats.Dot(diff, v)
		kappa := math.Sqrt((d.eta + q) * normLam)
		out[t] = logNorm +
			math.Log(specfun.BesselKScaled(nu, kappa)) - kappa +
			nu*math.Log(kappa) +
			floats.Dot(v, d.lam) -
			nu*math.Log1p(q/d.eta)
	}
	return out, nil
}

// PDF returns the density of each row of points (T×Dim()).
func (d *SkewedStudent) PDF(points *mat.Dense) ([]float64, error) {
	logs, err := d.LogPDF(points)
	if err != nil {
		return nil, err
	}
	return expInPlace(logs), nil
}

// PDFAt evaluates the density at a single observation.
func (d *SkewedStudent) PDFAt(x []float64) (float64, error) {
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

// Rand simulates n random vectors via the normal-variance mixture:
//
//	W ~ InvGamma(η/2, η/2),  Z ~ N(0, ConstSigma()),
//	X = ConstMu() + λ·W + sqrt(W)·Z
//
// one W and one Z per sample. The result is an n×Dim() matrix. With the
// derived constants the samples are standardized: mean 0, covariance I,
// for η > 4 (second mixing moment) and finite only then.
func (d *SkewedStudent) Rand(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, ErrBadSize
	}
	normal, ok := distmv.NewNormal(make([]float64, d.ndim), d.ConstSigma(), d.src)
	if !ok {
		return nil, ErrNotPosDef
	}
	ig := distuv.InverseGamma{Alpha: d.eta / 2, Beta: d.eta / 2, Src: d.src}

	mu := d.ConstMu()
	out := mat.NewDense(n, d.ndim, nil)
	z := make([]float64, d.ndim)
	for t := 0; t < n; t++ {
		w := ig.Rand()
		normal.Rand(z)
		sw := math.Sqrt(w)
		row := out.RawRowView(t)
		for j := range row {
			row[j] = mu[j] + d.lam[j]*w + sw*z[j]
		}
	}
	return out, nil
}
