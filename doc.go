// Package multidensity provides closed-form multivariate heavy-tailed
// probability densities for quantitative finance and statistics.
//
// 🚀 What is multidensity?
//
//	A compact numerical library around the multivariate Student family:
//		• Symmetric multivariate Student-t density (mvstudent.Student)
//		• Skewed generalized-hyperbolic Student density of
//		  Demarta & McNeil (mvstudent.SkewedStudent)
//		• Random-vector simulation via the inverse-gamma normal mixture
//		• Maximum-likelihood fitting on top of gonum/optimize (fit)
//		• Real-order modified Bessel K functions (specfun)
//
// ✨ Why choose multidensity?
//
//   - Closed forms only – every density value is a direct formula evaluation
//   - Numerically careful – Cholesky solves instead of explicit inverses,
//     log-space gamma ratios, exponentially scaled Bessel terms
//   - Pure evaluators – no hidden state; data is passed on every call
//   - gonum-native – *mat.Dense in, []float64 densities out
//
// Everything is organized under three subpackages:
//
//	mvstudent/ — the density variants and the shared Density contract
//	specfun/   — modified Bessel function of the second kind, real order
//	fit/       — MLE driver consuming Bounds/ThetaStart/FromTheta/LogPDF
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/multidensity
package multidensity
