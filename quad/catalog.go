// Package quad rule catalog: maps (Precision, Config) to a constructed
// Integrator or a distinct, inspectable construction error.
package quad

import (
	"fmt"

	gquad "gonum.org/v1/gonum/integrate/quad"
)

// Supported point counts per fixed-node rule family. The sets are not
// arbitrary: they mirror the tableaus the backend generators are exercised
// and tested with, matching the catalogs numerical libraries conventionally
// ship for each family.
var (
	// SupportedLegendrePoints lists the Gauss–Legendre point counts the
	// catalog accepts.
	SupportedLegendrePoints = []int{7, 10, 15, 20, 25, 30, 40, 50, 60, 70, 80, 90, 100}

	// SupportedKronrodPoints lists the Gauss–Kronrod extension sizes (2n+1)
	// the catalog accepts.
	SupportedKronrodPoints = []int{15, 21, 31, 41, 51, 61}

	// SupportedHermitePoints lists the Gauss–Hermite point counts the
	// catalog accepts.
	SupportedHermitePoints = []int{10, 15, 20, 25, 30, 40, 50}

	// SupportedLaguerrePoints lists the Gauss–Laguerre point counts the
	// catalog accepts.
	SupportedLaguerrePoints = []int{10, 15, 20, 25, 30, 40, 50}

	// SupportedJacobiPoints lists the Gauss–Jacobi point counts the catalog
	// accepts.
	SupportedJacobiPoints = []int{10, 15, 20, 30, 50}
)

// New constructs an Integrator for the given precision and rule
// configuration.
//
// Construction is atomic: either a fully built Integrator is returned, or an
// error and no Integrator. Failures are distinguishable with errors.Is:
//
//   - ErrUnsupportedPointCount — Points outside the family's supported set
//   - ErrPrecisionUnavailable  — Float80 requested (no Go target has it)
//   - ErrInvalidParameter      — out-of-domain rule or precision parameter
//   - ErrBackendFailure        — tableau eigensolve failed
//
// A nil cfg is a programmer error and panics.
func New(p Precision, cfg Config) (Integrator, error) {
	if cfg == nil {
		panic("quad: nil rule configuration")
	}
	if err := checkPrecision(p); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	switch c := cfg.(type) {
	case LegendreOptions:
		return newLegendre(p, c.Points)
	case KronrodOptions:
		return newKronrod(p, c.Points)
	case HermiteOptions:
		return newHermite(p, c.Points)
	case LaguerreOptions:
		return newLaguerre(p, c.Points, c.Alpha)
	case JacobiOptions:
		return newJacobi(p, c.Points, c.Alpha, c.Beta)
	case TanhSinhOptions:
		return newDoubleExp(TanhSinh, p, c.MaxRefinements, c.Tolerance), nil
	case SinhSinhOptions:
		return newDoubleExp(SinhSinh, p, c.MaxRefinements, c.Tolerance), nil
	case ExpSinhOptions:
		return newDoubleExp(ExpSinh, p, c.MaxRefinements, c.Tolerance), nil
	}
	// Unreachable: Config is sealed.
	panic(fmt.Sprintf("quad: unknown rule configuration %T", cfg))
}

// checkPrecision resolves precision availability once, at the catalog, so the
// rule constructors never carry per-platform guards.
func checkPrecision(p Precision) error {
	switch p {
	case Float32, Float64:
		return nil
	case Float80:
		return fmt.Errorf("%w: float80 requires an 80-bit extended type", ErrPrecisionUnavailable)
	}
	return fmt.Errorf("%w: unknown precision %d", ErrInvalidParameter, int(p))
}

// newLegendre builds the Gauss–Legendre tableau with the backend's Legendre
// generator on the canonical interval.
func newLegendre(p Precision, points int) (Integrator, error) {
	nodes := make([]float64, points)
	weights := make([]float64, points)
	gquad.Legendre{}.FixedLocations(nodes, weights, -1, 1)
	return &fixedRule{
		kind:     GaussLegendre,
		prec:     p,
		mappable: true,
		nodes:    nodes,
		weights:  weights,
	}, nil
}

// newHermite builds the Gauss–Hermite tableau from the Hermite three-term
// recurrence (weight e^{-x²}, zeroth moment √π).
func newHermite(p Precision, points int) (Integrator, error) {
	diag, offsq := hermiteCoeffs(points)
	nodes, weights, err := golubWelsch(diag, offsq)
	if err != nil {
		return nil, err
	}
	return &fixedRule{
		kind:    GaussHermite,
		prec:    p,
		nodes:   nodes,
		weights: weights,
	}, nil
}

// newLaguerre builds the generalized Gauss–Laguerre tableau (weight
// x^α·e^{-x}, zeroth moment Γ(α+1)).
func newLaguerre(p Precision, points int, alpha float64) (Integrator, error) {
	diag, offsq := laguerreCoeffs(points, alpha)
	nodes, weights, err := golubWelsch(diag, offsq)
	if err != nil {
		return nil, err
	}
	return &fixedRule{
		kind:    GaussLaguerre,
		prec:    p,
		nodes:   nodes,
		weights: weights,
	}, nil
}

// newJacobi builds the Gauss–Jacobi tableau (weight (1-x)^α(1+x)^β, zeroth
// moment 2^{α+β+1}·B(α+1,β+1)).
func newJacobi(p Precision, points int, alpha, beta float64) (Integrator, error) {
	diag, offsq := jacobiCoeffs(points, alpha, beta)
	nodes, weights, err := golubWelsch(diag, offsq)
	if err != nil {
		return nil, err
	}
	return &fixedRule{
		kind:     GaussJacobi,
		prec:     p,
		mappable: true,
		nodes:    nodes,
		weights:  weights,
	}, nil
}
