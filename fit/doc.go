// Package fit estimates density parameters by maximum likelihood.
//
// 🚀 What is fit?
//
//	The optimization driver the density contract was shaped for: it
//	consumes Bounds, ThetaStart, FromTheta and LogPDF of any
//	mvstudent.Density and maximizes the sample log-likelihood with
//	gonum's derivative-free Nelder–Mead method.
//
// ⚙️ Usage:
//
//	d, _ := mvstudent.NewSkewedStudent(2)
//	res, err := fit.MLE(d, observations, nil)
//	if err != nil { ... }
//	// d now carries res.Theta; res.LogLik is the attained likelihood.
//
// Bounds are treated as a hard barrier: any simplex vertex outside the
// open boxes scores −Inf likelihood, so Nelder–Mead retreats into the
// domain instead of evaluating the density where its constants degenerate.
//
// The driver mutates the density through FromTheta on every objective
// evaluation; use a dedicated instance per concurrent fit.
package fit
