// Package quad rule configurations: one closed variant per rule kind.
//
// The variant set is sealed — Config carries an unexported method — so the
// catalog can pattern-match exhaustively instead of dispatching through an
// open-ended hierarchy.
package quad

import (
	"fmt"
	"math"
)

// Default adaptive-rule parameters. Single source of truth for zero-value
// behavior of the Default*Options constructors.
const (
	// DefaultMaxRefinements bounds the level-doubling refinement loop of the
	// double-exponential rules.
	DefaultMaxRefinements = 10

	// DefaultTolerance is the relative convergence target of the
	// double-exponential rules.
	DefaultTolerance = 1e-9
)

// Config is the sealed per-kind rule configuration variant. Exactly one
// concrete type exists per Kind; pass it to New together with a Precision.
type Config interface {
	// Kind reports the rule kind the configuration belongs to.
	Kind() Kind

	validate() error
}

// LegendreOptions configures a Gauss–Legendre rule.
type LegendreOptions struct {
	// Points must be drawn from SupportedLegendrePoints.
	Points int
}

// KronrodOptions configures a Gauss–Kronrod rule. Points counts the full
// 2n+1-point Kronrod extension, not the embedded Gauss sub-rule.
type KronrodOptions struct {
	// Points must be drawn from SupportedKronrodPoints.
	Points int
}

// HermiteOptions configures a Gauss–Hermite rule.
type HermiteOptions struct {
	// Points must be drawn from SupportedHermitePoints.
	Points int
}

// LaguerreOptions configures a generalized Gauss–Laguerre rule with weight
// x^Alpha·e^{-x} on [0,∞).
type LaguerreOptions struct {
	// Points must be drawn from SupportedLaguerrePoints.
	Points int

	// Alpha is the generalized weight exponent; must be > -1. Zero selects
	// the classical Laguerre rule.
	Alpha float64
}

// JacobiOptions configures a Gauss–Jacobi rule with weight
// (1-x)^Alpha·(1+x)^Beta on [-1,1]. Both shape parameters must be > -1.
type JacobiOptions struct {
	// Points must be drawn from SupportedJacobiPoints.
	Points int

	Alpha float64
	Beta  float64
}

// TanhSinhOptions configures the adaptive tanh-sinh rule.
type TanhSinhOptions struct {
	// MaxRefinements bounds the level-doubling loop; must be ≥ 1.
	MaxRefinements int

	// Tolerance is the relative convergence target; must be finite and > 0.
	Tolerance float64
}

// SinhSinhOptions configures the adaptive sinh-sinh rule.
type SinhSinhOptions struct {
	MaxRefinements int
	Tolerance      float64
}

// ExpSinhOptions configures the adaptive exp-sinh rule.
type ExpSinhOptions struct {
	MaxRefinements int
	Tolerance      float64
}

// DefaultTanhSinhOptions returns the documented adaptive defaults.
func DefaultTanhSinhOptions() TanhSinhOptions {
	return TanhSinhOptions{MaxRefinements: DefaultMaxRefinements, Tolerance: DefaultTolerance}
}

// DefaultSinhSinhOptions returns the documented adaptive defaults.
func DefaultSinhSinhOptions() SinhSinhOptions {
	return SinhSinhOptions{MaxRefinements: DefaultMaxRefinements, Tolerance: DefaultTolerance}
}

// DefaultExpSinhOptions returns the documented adaptive defaults.
func DefaultExpSinhOptions() ExpSinhOptions {
	return ExpSinhOptions{MaxRefinements: DefaultMaxRefinements, Tolerance: DefaultTolerance}
}

// Kind implements Config.
func (LegendreOptions) Kind() Kind { return GaussLegendre }

// Kind implements Config.
func (KronrodOptions) Kind() Kind { return GaussKronrod }

// Kind implements Config.
func (HermiteOptions) Kind() Kind { return GaussHermite }

// Kind implements Config.
func (LaguerreOptions) Kind() Kind { return GaussLaguerre }

// Kind implements Config.
func (JacobiOptions) Kind() Kind { return GaussJacobi }

// Kind implements Config.
func (TanhSinhOptions) Kind() Kind { return TanhSinh }

// Kind implements Config.
func (SinhSinhOptions) Kind() Kind { return SinhSinh }

// Kind implements Config.
func (ExpSinhOptions) Kind() Kind { return ExpSinh }

func (o LegendreOptions) validate() error {
	return checkPoints(GaussLegendre, o.Points, SupportedLegendrePoints)
}

func (o KronrodOptions) validate() error {
	return checkPoints(GaussKronrod, o.Points, SupportedKronrodPoints)
}

func (o HermiteOptions) validate() error {
	return checkPoints(GaussHermite, o.Points, SupportedHermitePoints)
}

func (o LaguerreOptions) validate() error {
	if err := checkPoints(GaussLaguerre, o.Points, SupportedLaguerrePoints); err != nil {
		return err
	}
	if !(o.Alpha > -1) || math.IsInf(o.Alpha, 0) {
		return fmt.Errorf("%w: laguerre alpha %v must be finite and > -1", ErrInvalidParameter, o.Alpha)
	}
	return nil
}

func (o JacobiOptions) validate() error {
	if err := checkPoints(GaussJacobi, o.Points, SupportedJacobiPoints); err != nil {
		return err
	}
	if !(o.Alpha > -1) || math.IsInf(o.Alpha, 0) {
		return fmt.Errorf("%w: jacobi alpha %v must be finite and > -1", ErrInvalidParameter, o.Alpha)
	}
	if !(o.Beta > -1) || math.IsInf(o.Beta, 0) {
		return fmt.Errorf("%w: jacobi beta %v must be finite and > -1", ErrInvalidParameter, o.Beta)
	}
	return nil
}

func (o TanhSinhOptions) validate() error {
	return checkAdaptive(TanhSinh, o.MaxRefinements, o.Tolerance)
}

func (o SinhSinhOptions) validate() error {
	return checkAdaptive(SinhSinh, o.MaxRefinements, o.Tolerance)
}

func (o ExpSinhOptions) validate() error {
	return checkAdaptive(ExpSinh, o.MaxRefinements, o.Tolerance)
}

// checkPoints rejects point counts outside the family's supported set.
func checkPoints(k Kind, points int, supported []int) error {
	for _, p := range supported {
		if p == points {
			return nil
		}
	}
	return fmt.Errorf("%w: %s does not support %d points (supported: %v)",
		ErrUnsupportedPointCount, k, points, supported)
}

// checkAdaptive validates the shared double-exponential parameters.
func checkAdaptive(k Kind, refinements int, tol float64) error {
	if refinements < 1 {
		return fmt.Errorf("%w: %s max refinements %d must be ≥ 1", ErrInvalidParameter, k, refinements)
	}
	if !(tol > 0) || math.IsInf(tol, 0) || math.IsNaN(tol) {
		return fmt.Errorf("%w: %s tolerance %v must be finite and > 0", ErrInvalidParameter, k, tol)
	}
	return nil
}
