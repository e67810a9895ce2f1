package specfn

import "math"

// Mathematical constants not provided by the standard library, to the full
// precision a float64 can hold. Values follow OEIS decimal expansions.
const (
	// EulerGamma is the Euler–Mascheroni constant γ.
	EulerGamma = 0.57721566490153286060651209008240243104
	// Catalan is Catalan's constant G = Σ (−1)ⁿ/(2n+1)².
	Catalan = 0.91596559417721901505460351493238411077
	// Apery is Apéry's constant ζ(3).
	Apery = 1.20205690315959428539973816151144999076
	// GoldenRatio is φ = (1+√5)/2.
	GoldenRatio = 1.61803398874989484820458683436563811772

	// HalfPi is π/2.
	HalfPi = math.Pi / 2
	// TwoPi is 2π.
	TwoPi = 2 * math.Pi
	// SqrtTwoPi is √(2π), the normal density normalizer.
	SqrtTwoPi = 2.50662827463100050241576528481104525301
	// LogSqrtTwoPi is ln √(2π), the Stirling series constant term.
	LogSqrtTwoPi = 0.91893853320467274178032973640561763986
)
