package specfn

import "math"

// LegendreP returns the Legendre polynomial P_n(x) by the three-term
// recurrence (n+1)P_{n+1} = (2n+1)x·P_n − n·P_{n−1}.
func LegendreP(n int, x float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	pm, p := 1.0, x
	for k := 1; k < n; k++ {
		pm, p = p, ((2*float64(k)+1)*x*p-float64(k)*pm)/(float64(k)+1)
	}
	return p
}

// HermiteH returns the physicists' Hermite polynomial H_n(x) by
// H_{n+1} = 2x·H_n − 2n·H_{n−1}.
func HermiteH(n int, x float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	hm, h := 1.0, 2*x
	for k := 1; k < n; k++ {
		hm, h = h, 2*x*h-2*float64(k)*hm
	}
	return h
}

// LaguerreL returns the generalized Laguerre polynomial L_n^{(α)}(x) for
// α > −1, by (n+1)L_{n+1} = (2n+1+α−x)L_n − (n+α)L_{n−1}.
func LaguerreL(n int, alpha, x float64) float64 {
	if n < 0 || !(alpha > -1) {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	lm, l := 1.0, 1+alpha-x
	for k := 1; k < n; k++ {
		fk := float64(k)
		lm, l = l, ((2*fk+1+alpha-x)*l-(fk+alpha)*lm)/(fk+1)
	}
	return l
}

// JacobiP returns the Jacobi polynomial P_n^{(α,β)}(x) for α, β > −1,
// by the standard recurrence (Abramowitz & Stegun 22.7.1).
func JacobiP(n int, alpha, beta, x float64) float64 {
	if n < 0 || !(alpha > -1) || !(beta > -1) {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	pm := 1.0
	p := (alpha+beta+2)*x/2 + (alpha-beta)/2
	for k := 1; k < n; k++ {
		fk := float64(k)
		a1 := 2 * (fk + 1) * (fk + alpha + beta + 1) * (2*fk + alpha + beta)
		a2 := (2*fk + alpha + beta + 1) * (alpha*alpha - beta*beta)
		a3 := (2*fk + alpha + beta) * (2*fk + alpha + beta + 1) * (2*fk + alpha + beta + 2)
		a4 := 2 * (fk + alpha) * (fk + beta) * (2*fk + alpha + beta + 2)
		pm, p = p, ((a2+a3*x)*p-a4*pm)/a1
	}
	return p
}

// ChebyshevT returns the Chebyshev polynomial of the first kind T_n(x),
// by T_{n+1} = 2x·T_n − T_{n−1}.
func ChebyshevT(n int, x float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	tm, t := 1.0, x
	for k := 1; k < n; k++ {
		tm, t = t, 2*x*t-tm
	}
	return t
}

// ChebyshevU returns the Chebyshev polynomial of the second kind U_n(x),
// by U_{n+1} = 2x·U_n − U_{n−1}.
func ChebyshevU(n int, x float64) float64 {
	if n < 0 {
		return math.NaN()
	}
	if n == 0 {
		return 1
	}
	um, u := 1.0, 2*x
	for k := 1; k < n; k++ {
		um, u = u, 2*x*u-um
	}
	return u
}
