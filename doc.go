// Package numath is a numerical toolkit for scientific Go: Gaussian and
// double-exponential quadrature, probability distributions, and special
// functions, each behind a small deterministic API.
//
// 🚀 What is numath?
//
//	A library that brings together:
//		• Quadrature: Gauss–Legendre, Gauss–Kronrod, Gauss–Hermite,
//		  Gauss–Laguerre, Gauss–Jacobi, tanh-sinh, sinh-sinh, exp-sinh
//		• A rule catalog: construct an integrator once, reuse it freely
//		• Distributions: fourteen named families resolved into vtables of
//		  density, CDF, quantile, hazard and moment closures
//		• Special functions: incomplete gamma/beta with inverses, zeta,
//		  elliptic integrals, orthogonal polynomials, probit
//		• A handle bridge for hosting the catalog behind an ABI-style
//		  boundary with total, never-panicking accessors
//
// ✨ Why choose numath?
//
//   - Deterministic – identical inputs produce identical results, always
//   - Total APIs – invalid input yields sentinel errors, canonical failure
//     records or NaN, never a crash
//   - Concurrency-clean – integrators and profiles are immutable after
//     construction and safe to share
//   - Grounded – node/weight tables derive from symmetric eigensolves, not
//     transcribed constants
//
// Everything is organized under four subpackages:
//
//	quad/   — quadrature rule catalog, integrators, results & errors
//	bridge/ — opaque-handle lifecycle over the quad catalog
//	dist/   — named-distribution registry over gonum's distuv kernels
//	specfn/ — special functions, orthogonal polynomials & constants
//
// 🎯 Quick start (30-point Gauss–Legendre):
//
//	ig, err := quad.New(quad.Float64, quad.LegendreOptions{Points: 30})
//	if err != nil {
//		log.Fatal(err)
//	}
//	res := ig.IntegrateInterval(math.Sin, 0, math.Pi)
//	fmt.Printf("∫ sin = %.12f (calls=%d)\n", res.Value, res.FunctionCalls)
//
// See each subpackage's doc.go for the full contract.
//
//	go get github.com/katalvlaran/numath
package numath
