package fit_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/multidensity/fit"
	"github.com/katalvlaran/multidensity/mvstudent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// heavyTailSample draws a deterministic 1-d sample from a standardized
// Student distribution with the given degrees of freedom.
func heavyTailSample(t *testing.T, eta float64, n int) *mat.Dense {
	t.Helper()
	gen, err := mvstudent.NewSkewedStudent(1,
		mvstudent.WithEta(eta),
		mvstudent.WithSource(rand.NewPCG(5, 6)),
	)
	require.NoError(t, err)
	sample, err := gen.Rand(n)
	require.NoError(t, err)
	return sample
}

// logLik sums the log-density of d over points.
func logLik(t *testing.T, d mvstudent.Density, points *mat.Dense) float64 {
	t.Helper()
	logs, err := d.LogPDF(points)
	require.NoError(t, err)
	return floats.Sum(logs)
}

// TestMLE_ImprovesSymmetric fits the symmetric density's single free
// parameter and checks the likelihood never degrades from the start.
func TestMLE_ImprovesSymmetric(t *testing.T) {
	points := heavyTailSample(t, 6, 400)

	d, err := mvstudent.NewStudent(1)
	require.NoError(t, err)
	startLL := logLik(t, d, points)

	res, err := fit.MLE(d, points, nil)
	require.NoError(t, err)
	require.Len(t, res.Theta, 1)

	assert.GreaterOrEqual(t, res.LogLik, startLL-1e-8,
		"MLE must not end below the starting likelihood")
	assert.Greater(t, res.Theta[0], 2.0, "eta must respect its bound")
	assert.Equal(t, res.Theta[0], d.Eta(), "density must be left at the optimum")
}

// TestMLE_ImprovesSkewed runs the full eta-plus-skewness fit and checks
// bounds and likelihood improvement.
func TestMLE_ImprovesSkewed(t *testing.T) {
	points := heavyTailSample(t, 8, 400)

	d, err := mvstudent.NewSkewedStudent(1)
	require.NoError(t, err)
	startLL := logLik(t, d, points)

	res, err := fit.MLE(d, points, nil)
	require.NoError(t, err)
	require.Len(t, res.Theta, 2)

	assert.GreaterOrEqual(t, res.LogLik, startLL-1e-8)
	assert.Greater(t, res.Theta[0], 4.0, "eta must respect its bound")
	assert.Equal(t, res.Theta[1:], d.Lam(), "density must be left at the optimum")
}

// TestMLE_StartOverride verifies a caller-supplied starting point is used
// and validated.
func TestMLE_StartOverride(t *testing.T) {
	points := heavyTailSample(t, 6, 200)

	d, err := mvstudent.NewStudent(1)
	require.NoError(t, err)

	res, err := fit.MLE(d, points, &fit.Options{Start: []float64{8}})
	require.NoError(t, err)
	assert.Len(t, res.Theta, 1)

	_, err = fit.MLE(d, points, &fit.Options{Start: []float64{8, 0}})
	assert.ErrorIs(t, err, fit.ErrBadStart)
}

// TestMLE_NoData verifies the data guard.
func TestMLE_NoData(t *testing.T) {
	d, err := mvstudent.NewStudent(1)
	require.NoError(t, err)

	_, err = fit.MLE(d, nil, nil)
	assert.ErrorIs(t, err, fit.ErrNoData)
}
