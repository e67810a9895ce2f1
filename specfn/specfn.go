package specfn

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Gamma returns Γ(x). Poles at non-positive integers yield ±Inf per the
// standard library's conventions; NaN input propagates.
func Gamma(x float64) float64 { return math.Gamma(x) }

// LogGamma returns ln|Γ(x)| together with the sign of Γ(x).
func LogGamma(x float64) (lg float64, sign int) { return math.Lgamma(x) }

// Digamma returns ψ(x), the logarithmic derivative of the gamma function.
func Digamma(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	return mathext.Digamma(x)
}

// Beta returns the complete beta function B(a, b) for a, b > 0.
func Beta(a, b float64) float64 {
	if !(a > 0) || !(b > 0) {
		return math.NaN()
	}
	return mathext.Beta(a, b)
}

// LogBeta returns ln B(a, b) for a, b > 0.
func LogBeta(a, b float64) float64 {
	if !(a > 0) || !(b > 0) {
		return math.NaN()
	}
	return mathext.Lbeta(a, b)
}

// GammaP returns the regularized lower incomplete gamma function
// P(a, x) = γ(a, x)/Γ(a) for a > 0, x ≥ 0.
func GammaP(a, x float64) float64 {
	if !(a > 0) || !(x >= 0) {
		return math.NaN()
	}
	return mathext.GammaIncReg(a, x)
}

// GammaQ returns the regularized upper incomplete gamma function
// Q(a, x) = 1 − P(a, x) for a > 0, x ≥ 0.
func GammaQ(a, x float64) float64 {
	if !(a > 0) || !(x >= 0) {
		return math.NaN()
	}
	return mathext.GammaIncRegComp(a, x)
}

// GammaPInv returns x such that GammaP(a, x) = p, for a > 0 and p ∈ [0, 1].
func GammaPInv(a, p float64) float64 {
	if !(a > 0) || !(p >= 0 && p <= 1) {
		return math.NaN()
	}
	return mathext.GammaIncRegInv(a, p)
}

// GammaQInv returns x such that GammaQ(a, x) = q, for a > 0 and q ∈ [0, 1].
func GammaQInv(a, q float64) float64 {
	if !(a > 0) || !(q >= 0 && q <= 1) {
		return math.NaN()
	}
	return mathext.GammaIncRegCompInv(a, q)
}

// BetaInc returns the regularized incomplete beta function I_x(a, b) for
// a, b > 0 and x ∈ [0, 1].
func BetaInc(a, b, x float64) float64 {
	if !(a > 0) || !(b > 0) || !(x >= 0 && x <= 1) {
		return math.NaN()
	}
	return mathext.RegIncBeta(a, b, x)
}

// BetaIncInv returns x such that BetaInc(a, b, x) = y, for a, b > 0 and
// y ∈ [0, 1].
func BetaIncInv(a, b, y float64) float64 {
	if !(a > 0) || !(b > 0) || !(y >= 0 && y <= 1) {
		return math.NaN()
	}
	return mathext.InvRegIncBeta(a, b, y)
}

// Erf returns the error function erf(x).
func Erf(x float64) float64 { return math.Erf(x) }

// Erfc returns the complementary error function erfc(x) = 1 − erf(x).
func Erfc(x float64) float64 { return math.Erfc(x) }

// ErfInv returns the inverse error function, defined for x ∈ [−1, 1].
func ErfInv(x float64) float64 { return math.Erfinv(x) }

// ErfcInv returns the inverse complementary error function, defined for
// x ∈ [0, 2].
func ErfcInv(x float64) float64 { return math.Erfcinv(x) }

// Zeta returns the Riemann zeta function ζ(s) for s > 1. The series
// diverges at s = 1 and the implementation does not analytically continue
// below it, so s ≤ 1 yields NaN.
func Zeta(s float64) float64 {
	if !(s > 1) {
		return math.NaN()
	}
	return mathext.Zeta(s, 1)
}

// EllipticK returns the complete elliptic integral of the first kind K(m),
// in the parameter convention m = k², for m ∈ [0, 1). K diverges as m → 1.
func EllipticK(m float64) float64 {
	if !(m >= 0) || !(m <= 1) {
		return math.NaN()
	}
	if m == 1 {
		return math.Inf(1)
	}
	return mathext.CompleteK(m)
}

// EllipticE returns the complete elliptic integral of the second kind E(m),
// in the parameter convention m = k², for m ∈ [0, 1].
func EllipticE(m float64) float64 {
	if !(m >= 0) || !(m <= 1) {
		return math.NaN()
	}
	return mathext.CompleteE(m)
}

// CarlsonRF returns Carlson's symmetric elliptic integral R_F(x, y, z) for
// non-negative arguments with at most one of them zero.
func CarlsonRF(x, y, z float64) float64 {
	if !(x >= 0) || !(y >= 0) || !(z >= 0) {
		return math.NaN()
	}
	zeros := 0
	for _, v := range [3]float64{x, y, z} {
		if v == 0 {
			zeros++
		}
	}
	if zeros > 1 {
		return math.NaN()
	}
	return mathext.EllipticRF(x, y, z)
}

// CarlsonRD returns Carlson's degenerate symmetric integral R_D(x, y, z)
// for x, y ≥ 0 with at most one of them zero, and z > 0.
func CarlsonRD(x, y, z float64) float64 {
	if !(x >= 0) || !(y >= 0) || !(z > 0) || (x == 0 && y == 0) {
		return math.NaN()
	}
	return mathext.EllipticRD(x, y, z)
}

// Probit returns the quantile of the standard normal distribution,
// Φ⁻¹(p), for p ∈ [0, 1]. The endpoints map to ∓Inf.
func Probit(p float64) float64 {
	if !(p >= 0 && p <= 1) {
		return math.NaN()
	}
	switch p {
	case 0:
		return math.Inf(-1)
	case 1:
		return math.Inf(1)
	}
	return mathext.NormalQuantile(p)
}

// Factorial returns n! as a float64. Exact through n = 22; larger values
// carry float64 rounding, overflowing to +Inf past n = 170.
func Factorial(n int) float64 {
	if n < 0 {
		return math.NaN()
	}
	return math.Gamma(float64(n) + 1)
}

// RisingFactorial returns the Pochhammer symbol x⁽ⁿ⁾ = x(x+1)···(x+n−1).
// A negative n applies the standard extension x⁽⁻ᵐ⁾ = 1/((x−1)···(x−m)).
// Evaluated as a product, so negative and zero x need no gamma-pole care.
func RisingFactorial(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	v := 1.0
	if n > 0 {
		for k := 0; k < n; k++ {
			v *= x + float64(k)
		}
		return v
	}
	for k := 1; k <= -n; k++ {
		v *= x - float64(k)
	}
	return 1 / v
}

// FallingFactorial returns x_(n) = x(x−1)···(x−n+1). A negative n applies
// the extension x_(−m) = 1/((x+1)···(x+m)).
func FallingFactorial(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	v := 1.0
	if n > 0 {
		for k := 0; k < n; k++ {
			v *= x - float64(k)
		}
		return v
	}
	for k := 1; k <= -n; k++ {
		v *= x + float64(k)
	}
	return 1 / v
}

// Binomial returns the binomial coefficient C(n, k). Out-of-range k yields
// zero, matching the combinatorial convention.
func Binomial(n, k int) float64 {
	if n < 0 {
		return math.NaN()
	}
	if k < 0 || k > n {
		return 0
	}
	ln, _ := math.Lgamma(float64(n) + 1)
	lk, _ := math.Lgamma(float64(k) + 1)
	lnk, _ := math.Lgamma(float64(n-k) + 1)
	v := math.Exp(ln - lk - lnk)
	if v < 1e15 {
		// Below 2⁵³ the result is an exact integer; snap off the
		// accumulated exp/log rounding.
		return math.Round(v)
	}
	return v
}
