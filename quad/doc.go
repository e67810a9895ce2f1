// Package quad provides one-dimensional numerical integration over a closed
// catalog of quadrature rules: the fixed-node Gauss families (Legendre,
// Hermite, Laguerre, Jacobi), the embedded Gauss–Kronrod pairs, and the
// adaptive double-exponential rules (tanh-sinh, sinh-sinh, exp-sinh).
//
// 🚀 What is quad?
//
//	A caller picks a rule kind, a floating-point precision and a rule
//	configuration; the catalog builds an immutable Integrator; the caller
//	invokes it any number of times. Every call runs to completion on the
//	calling thread and returns a Result carrying the estimate, an error
//	estimate, the L1 norm, and the exact number of integrand evaluations.
//
// ✨ Key features:
//   - Eight rule kinds behind one Integrator interface
//   - Fixed tableaus computed once at construction (Golub–Welsch over the
//     rule's three-term recurrence; Kronrod extensions via Laurie's method)
//   - Adaptive double-exponential rules with a refinement budget and
//     tolerance; non-convergence is reported, never thrown
//   - Strict construction-time validation with distinct sentinel errors
//   - Total invocation contract: nil integrands, invalid bounds and
//     non-finite integrand values degrade to a canonical failure Result
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numath/quad"
//
//	ig, err := quad.New(quad.Float64, quad.LegendreOptions{Points: 30})
//	if err != nil {
//	  // ErrUnsupportedPointCount, ErrPrecisionUnavailable, ...
//	}
//	res := ig.IntegrateInterval(math.Sin, 0, math.Pi/2) // ≈ 1.0
//
// Domain conventions per kind:
//
//	GaussLegendre / GaussKronrod / GaussJacobi — canonical [-1,1]; arbitrary
//	  finite [a,b] via the affine change of variables.
//	GaussHermite  — (-∞,∞) with the weight e^{-x²} implicit in the rule.
//	GaussLaguerre — [0,∞) with the weight x^α·e^{-x} implicit in the rule.
//	TanhSinh      — arbitrary finite [a,b]; robust to endpoint singularities.
//	SinhSinh      — (-∞,∞).
//	ExpSinh       — [a,∞); only the lower bound is honored.
//
// Rules with fixed infinite support (Hermite, Laguerre, SinhSinh) ignore
// explicit bounds entirely: IntegrateInterval behaves exactly like Integrate.
// This mirrors the mathematical domain of the rule and is part of the
// documented contract, not an error.
//
// Concurrency: distinct Integrator values are fully independent. A single
// Integrator may be shared across goroutines provided the integrand itself is
// safe for concurrent invocation; all rule tables are read-only after
// construction and per-call state lives on the stack. There is no timeout or
// cancellation at this layer.
package quad
