package specfun

import "math"

// BesselK — modified Bessel function of the second kind, real order.
//
// Description:
//
//	K_ν(x) decays like sqrt(π/(2x))·e^(−x) for large x and blows up like
//	Γ(ν)/2·(2/x)^ν (or −ln(x/2) for ν=0) as x→0⁺. It appears in the
//	closed forms of the generalized hyperbolic family, including the
//	skewed multivariate Student density.
//
// Algorithm Outline:
//  1. Reduce the order: n = round(ν), μ = ν − n so that |μ| ≤ 1/2.
//  2. For x < 2, evaluate K_μ and K_{μ+1} with Temme's series.
//  3. For x ≥ 2, evaluate them with Steed's continued fraction (CF2).
//  4. Recur upward n times: K_{m+1} = K_{m−1} + (2m/x)·K_m.
//
// Upward recurrence is stable because K is the dominant (growing)
// solution of the recurrence in the order.
//
// Special cases:
//   - x < 0 or NaN arguments → NaN
//   - x = 0 → +Inf
//   - negative order → K_{−ν} = K_ν

const (
	eulerGamma = 0.5772156649015328606065120900824024

	besselEps   = 1e-16
	besselMaxIt = 10000

	// temmeCut splits the series region from the continued-fraction region.
	temmeCut = 2.0
)

// BesselK returns K_ν(x), the modified Bessel function of the second kind
// of real order ν at x > 0.
func BesselK(nu, x float64) float64 {
	return besselK(nu, x, false)
}

// BesselKScaled returns e^x·K_ν(x). The scaled form stays representable
// far beyond x ≈ 700, where K_ν itself underflows to zero.
func BesselKScaled(nu, x float64) float64 {
	return besselK(nu, x, true)
}

func besselK(nu, x float64, scaled bool) float64 {
	if math.IsNaN(nu) || math.IsNaN(x) || x < 0 {
		return math.NaN()
	}
	if x == 0 {
		return math.Inf(1)
	}
	if nu < 0 {
		nu = -nu
	}

	n := int(nu + 0.5)
	mu := nu - float64(n) // |mu| <= 1/2

	var kmu, kmu1 float64
	if x < temmeCut {
		kmu, kmu1 = temmeK(mu, x)
		if scaled {
			e := math.Exp(x)
			kmu *= e
			kmu1 *= e
		}
	} else {
		kmu, kmu1 = steedK(mu, x, scaled)
	}

	// Upward recurrence in the order: K_{m+1} = K_{m-1} + (2m/x)·K_m.
	xi2 := 2 / x
	for i := 1; i <= n; i++ {
		kmu, kmu1 = kmu1, kmu+(mu+float64(i))*xi2*kmu1
	}
	return kmu
}

// temmeK evaluates K_mu(x) and K_{mu+1}(x) for |mu| <= 1/2 and 0 < x < 2
// using Temme's series.
func temmeK(mu, x float64) (kmu, kmu1 float64) {
	x2 := 0.5 * x

	pimu := math.Pi * mu
	fact := 1.0
	if math.Abs(pimu) >= besselEps {
		fact = pimu / math.Sin(pimu)
	}
	d := -math.Log(x2)
	e := mu * d
	fact2 := 1.0
	if math.Abs(e) >= besselEps {
		fact2 = math.Sinh(e) / e
	}

	gam1, gam2, gampl, gammi := temmeGammas(mu)

	ff := fact * (gam1*math.Cosh(e) + gam2*fact2*d)
	sum := ff
	e = math.Exp(e)
	p := 0.5 * e / gampl
	q := 0.5 / (e * gammi)
	c := 1.0
	d = x2 * x2
	sum1 := p
	for i := 1; i <= besselMaxIt; i++ {
		fi := float64(i)
		ff = (fi*ff + p + q) / (fi*fi - mu*mu)
		c *= d / fi
		p /= fi - mu
		q /= fi + mu
		del := c * ff
		sum += del
		sum1 += c * (p - fi*ff)
		if math.Abs(del) < math.Abs(sum)*besselEps {
			break
		}
	}
	return sum, sum1 * 2 / x
}

// steedK evaluates K_mu(x) and K_{mu+1}(x) for |mu| <= 1/2 and x >= 2 with
// Steed's continued fraction CF2. When scaled is true the e^(−x) factor is
// omitted, yielding e^x·K.
func steedK(mu, x float64, scaled bool) (kmu, kmu1 float64) {
	b := 2 * (1 + x)
	d := 1 / b
	h := d
	delh := d
	q1 := 0.0
	q2 := 1.0
	a1 := 0.25 - mu*mu
	q := a1
	c := a1
	a := -a1
	s := 1 + q*delh
	for i := 2; i <= besselMaxIt; i++ {
		a -= 2 * float64(i-1)
		c = -a * c / float64(i)
		qnew := (q1 - b*q2) / a
		q1 = q2
		q2 = qnew
		q += c * qnew
		b += 2
		d = 1 / (b + a*d)
		delh = (b*d - 1) * delh
		h += delh
		dels := q * delh
		s += dels
		if math.Abs(dels/s) < besselEps {
			break
		}
	}
	h = a1 * h

	kmu = math.Sqrt(math.Pi/(2*x)) / s
	if !scaled {
		kmu *= math.Exp(-x)
	}
	kmu1 = kmu * (mu + x + 0.5 - h) / x
	return kmu, kmu1
}

// temmeGammas returns Temme's auxiliaries for |mu| <= 1/2:
// Γ1 = (1/Γ(1−μ) − 1/Γ(1+μ))/(2μ), Γ2 = (1/Γ(1−μ) + 1/Γ(1+μ))/2,
// together with 1/Γ(1+μ) and 1/Γ(1−μ).
func temmeGammas(mu float64) (gam1, gam2, gampl, gammi float64) {
	gampl = 1 / math.Gamma(1+mu)
	gammi = 1 / math.Gamma(1-mu)
	if math.Abs(mu) < 1e-6 {
		// Analytic limit of Γ1; avoids cancellation near integer orders.
		gam1 = -eulerGamma
	} else {
		gam1 = (gammi - gampl) / (2 * mu)
	}
	gam2 = (gammi + gampl) / 2
	return gam1, gam2, gampl, gammi
}
