package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/multidensity/mvstudent"
)

// Sentinel errors for likelihood fitting.
var (
	// ErrNoData indicates a nil observation matrix.
	ErrNoData = errors.New("fit: no data given")

	// ErrBadStart indicates a starting point whose length does not match
	// the density's free-parameter count.
	ErrBadStart = errors.New("fit: starting point length does not match parameter count")
)

// Options configures MLE.
//
// Fields:
//   - Start    — optional starting theta; nil uses the density's
//     ThetaStart(). Length must match len(Bounds()).
//   - Settings — optional gonum optimize settings (iteration and
//     evaluation limits, convergence thresholds); nil uses defaults.
type Options struct {
	Start    []float64
	Settings *optimize.Settings
}

// DefaultOptions returns the zero configuration: ThetaStart and gonum
// defaults.
func DefaultOptions() Options {
	return Options{}
}

// Result is the outcome of a maximum-likelihood fit.
type Result struct {
	// Theta is the optimizer's best flat parameter vector.
	Theta []float64

	// LogLik is the attained sample log-likelihood at Theta.
	LogLik float64
}

// MLE fits d to the rows of points by maximizing the sample
// log-likelihood with Nelder–Mead.
//
// The density's Bounds() act as a hard barrier (−Inf likelihood outside),
// keeping every evaluation inside the open parameter domain. On success
// the density is left at the optimum via FromTheta.
func MLE(d mvstudent.Density, points *mat.Dense, opts *Options) (*Result, error) {
	if points == nil {
		return nil, ErrNoData
	}

	start := d.ThetaStart()
	var settings *optimize.Settings
	if opts != nil {
		if opts.Start != nil {
			if len(opts.Start) != len(start) {
				return nil, ErrBadStart
			}
			start = append([]float64(nil), opts.Start...)
		}
		settings = opts.Settings
	}
	bounds := d.Bounds()

	negLL := func(theta []float64) float64 {
		for i, b := range bounds {
			if theta[i] <= b.Min || theta[i] >= b.Max {
				return math.Inf(1)
			}
		}
		if err := d.FromTheta(theta); err != nil {
			return math.Inf(1)
		}
		logs, err := d.LogPDF(points)
		if err != nil {
			return math.Inf(1)
		}
		ll := floats.Sum(logs)
		if math.IsNaN(ll) {
			return math.Inf(1)
		}
		return -ll
	}

	problem := optimize.Problem{Func: negLL}
	result, err := optimize.Minimize(problem, start, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("fit: optimization failed: %w", err)
	}
	if err = d.FromTheta(result.X); err != nil {
		return nil, err
	}
	return &Result{Theta: result.X, LogLik: -result.F}, nil
}
