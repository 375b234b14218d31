// Package specfun provides the special functions the density formulas need
// and the standard library does not cover.
//
// 🚀 What is specfun?
//
//	Real-order modified Bessel functions of the second kind:
//		• BesselK(ν, x)       — K_ν(x) for any real order ν
//		• BesselKScaled(ν, x) — e^x·K_ν(x), overflow-free for large x
//
// The stdlib math package only carries integer-order J and Y Bessel
// functions; the skewed Student density needs K_ν at half-integer and
// generic real orders, so it is implemented here.
//
// ⚙️ Method:
//
//	Temme's power series on 0 < x < 2, Steed's continued fraction on
//	x ≥ 2, then upward recurrence in the order
//	K_{μ+1}(x) = K_{μ-1}(x) + (2μ/x)·K_μ(x),
//	which is numerically stable for K (the dominant solution grows).
//
// Domain: x < 0 → NaN, x = 0 → +Inf, K_{-ν} = K_ν.
package specfun
