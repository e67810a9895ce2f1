// Package quad core types: rule kinds, precisions, results and descriptions.
package quad

import "math"

// Func is a one-argument real integrand. A nil Func is valid everywhere in
// this package: every evaluation point yields 0 and no call is counted.
type Func func(float64) float64

// Kind enumerates the closed set of supported quadrature rules.
type Kind int

const (
	// GaussLegendre is the fixed-node Gauss–Legendre rule on [-1,1].
	GaussLegendre Kind = iota

	// GaussHermite is the fixed-node Gauss–Hermite rule on (-∞,∞) with the
	// weight e^{-x²} implicit in the rule.
	GaussHermite

	// GaussLaguerre is the fixed-node generalized Gauss–Laguerre rule on
	// [0,∞) with the weight x^α·e^{-x} implicit in the rule.
	GaussLaguerre

	// GaussJacobi is the fixed-node Gauss–Jacobi rule on [-1,1] with the
	// weight (1-x)^α·(1+x)^β implicit in the rule.
	GaussJacobi

	// GaussKronrod is the embedded Gauss–Kronrod pair on [-1,1]; the 2n+1
	// point extension supplies an error estimate against the n-point Gauss
	// sub-rule at no extra integrand evaluations.
	GaussKronrod

	// TanhSinh is the adaptive double-exponential rule for finite intervals,
	// robust to integrable endpoint singularities.
	TanhSinh

	// SinhSinh is the adaptive double-exponential rule for (-∞,∞).
	SinhSinh

	// ExpSinh is the adaptive double-exponential rule for [a,∞).
	ExpSinh
)

// kindNames is indexed by Kind. Keep in sync with the constant block above.
var kindNames = [...]string{
	GaussLegendre: "gauss-legendre",
	GaussHermite:  "gauss-hermite",
	GaussLaguerre: "gauss-laguerre",
	GaussJacobi:   "gauss-jacobi",
	GaussKronrod:  "gauss-kronrod",
	TanhSinh:      "tanh-sinh",
	SinhSinh:      "sinh-sinh",
	ExpSinh:       "exp-sinh",
}

// String returns the canonical lowercase rule name, or "unknown" for a value
// outside the enumeration.
func (k Kind) String() string {
	if k < GaussLegendre || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsAdaptive reports whether the rule refines its evaluation points at
// runtime. Fixed-node Gauss families and Gauss–Kronrod are non-adaptive.
func (k Kind) IsAdaptive() bool {
	return k == TanhSinh || k == SinhSinh || k == ExpSinh
}

// SupportsInfiniteBounds reports whether the rule's native domain is
// unbounded on at least one side.
func (k Kind) SupportsInfiniteBounds() bool {
	return k == GaussHermite || k == SinhSinh || k == ExpSinh
}

// Precision selects the floating-point representation used throughout an
// Integrator instance.
type Precision int

const (
	// Float64 evaluates in IEEE-754 double precision. This is the default.
	Float64 Precision = iota

	// Float32 evaluates in IEEE-754 single precision: tableaus are rounded
	// once at construction and every integrand evaluation and accumulation
	// is carried in float32.
	Float32

	// Float80 requests 80-bit extended precision. Go has no extended
	// floating type on any supported platform, so requesting Float80 always
	// fails construction with ErrPrecisionUnavailable. The constant exists
	// so that callers porting configurations from extended-precision hosts
	// receive a distinct, inspectable rejection instead of a silent
	// downgrade.
	Float80
)

// String returns the canonical precision name.
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Float80:
		return "float80"
	}
	return "unknown"
}

// UnknownPoints is reported by Describe for adaptive rules, whose evaluation
// point count is runtime-determined.
const UnknownPoints = -1

// Description is pure metadata about a constructed Integrator.
type Description struct {
	// Kind is the rule the Integrator was built with.
	Kind Kind

	// Points is the fixed evaluation point count, or UnknownPoints for
	// adaptive rules.
	Points int

	// IsAdaptive mirrors Kind.IsAdaptive.
	IsAdaptive bool

	// SupportsInfiniteBounds mirrors Kind.SupportsInfiniteBounds.
	SupportsInfiniteBounds bool

	// Precision is the floating-point representation in use.
	Precision Precision
}

// Result is the outcome of a single integration call.
//
// For fixed-node rules Iterations is 1 and FunctionCalls equals the rule's
// point count (0 when the integrand is nil). For adaptive rules Iterations is
// the number of refinement levels consumed and FunctionCalls accumulates the
// actual integrand invocations.
type Result struct {
	// Value is the integral estimate.
	Value float64

	// EstimatedError is the rule's own error estimate: |K-G| for
	// Gauss–Kronrod, the last inter-level difference for adaptive rules, and
	// 0 for plain Gauss rules, which carry no embedded estimate.
	EstimatedError float64

	// L1Norm estimates ∫|f| over the same domain.
	L1Norm float64

	// Iterations counts refinement levels (1 for fixed-node rules).
	Iterations int

	// FunctionCalls counts actual invocations of the integrand.
	FunctionCalls int

	// Converged reports whether the estimate met the rule's tolerance.
	// Fixed-node rules always converge by definition of the rule.
	Converged bool
}

// Failure returns the canonical failure Result
//
//	{Value: 0, EstimatedError: +Inf, L1Norm: 0, Iterations: 0, FunctionCalls: 0, Converged: false}
//
// used for invalid handles, invalid bounds, and any other totalized failure
// of an integrate entry point.
func Failure() Result {
	return Result{EstimatedError: math.Inf(1)}
}

// Integrator evaluates definite integrals with one fixed rule configuration.
//
// An Integrator is immutable after construction. It is safe for concurrent
// use by multiple goroutines provided the supplied integrand is.
type Integrator interface {
	// Integrate evaluates the integral over the rule's natural domain:
	// [-1,1] for Legendre/Jacobi/Kronrod/TanhSinh, (-∞,∞) for Hermite and
	// SinhSinh, [0,∞) for Laguerre and ExpSinh.
	Integrate(f Func) Result

	// IntegrateInterval evaluates the integral over [a,b] where the rule
	// honors bounds: Legendre/Jacobi/Kronrod map [-1,1] onto finite [a,b],
	// TanhSinh integrates literal finite [a,b], ExpSinh honors only the
	// lower bound (domain [a,∞)). Hermite, Laguerre and SinhSinh have fixed
	// support and ignore both bounds entirely, behaving exactly like
	// Integrate — a documented contract, not an error.
	IntegrateInterval(f Func, a, b float64) Result

	// Describe returns the Integrator's static metadata.
	Describe() Description

	// AbscissaWeights returns copies of the rule's node and weight tableaus
	// for fixed-node rules, or (nil, nil, false) for adaptive rules.
	AbscissaWeights() (nodes, weights []float64, ok bool)
}
