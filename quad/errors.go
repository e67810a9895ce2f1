package quad

import "errors"

// Sentinel errors returned by the rule catalog. All construction failures are
// distinguishable with errors.Is; no failure ever substitutes a default rule.
var (
	// ErrUnsupportedPointCount indicates a point count outside the rule
	// family's supported set. The sets mirror the tableaus the backend can
	// actually produce; see the Supported* variables in catalog.go.
	ErrUnsupportedPointCount = errors.New("quad: unsupported point count")

	// ErrPrecisionUnavailable indicates a precision the platform cannot
	// represent (Float80 on every Go target). It is deliberately distinct
	// from ErrInvalidParameter so callers can tell "this build lacks the
	// type" from "you picked a bad configuration".
	ErrPrecisionUnavailable = errors.New("quad: precision not available on this platform")

	// ErrInvalidParameter indicates a rule parameter outside its domain:
	// a non-positive or non-finite tolerance, a refinement budget below 1,
	// a Laguerre/Jacobi shape parameter ≤ -1, or an unknown Precision value.
	ErrInvalidParameter = errors.New("quad: invalid rule parameter")

	// ErrBackendFailure indicates that the tableau construction itself
	// failed (the symmetric-tridiagonal eigensolve did not converge).
	// Construction is atomic: no Integrator is produced.
	ErrBackendFailure = errors.New("quad: backend tableau construction failed")
)
