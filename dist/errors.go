package dist

import "errors"

var (
	// ErrUnknownDistribution is returned by Lookup when the requested name
	// matches no registered distribution or alias.
	ErrUnknownDistribution = errors.New("dist: unknown distribution")

	// ErrInvalidParameter is returned when a supplied parameter is outside
	// its distribution's domain, or when the parameter name itself is not
	// recognized by the distribution.
	ErrInvalidParameter = errors.New("dist: invalid parameter")

	// ErrMissingParameter is returned when a distribution requires a
	// parameter that has no default and the caller did not supply it.
	ErrMissingParameter = errors.New("dist: missing parameter")
)
