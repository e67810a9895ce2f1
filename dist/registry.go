package dist

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// paramSet wraps the caller's parameter map, tracking which names a builder
// consumed so leftovers can be rejected as unrecognized.
type paramSet struct {
	raw  map[string]float64
	seen map[string]struct{}
}

// get returns the named parameter or its default.
func (ps *paramSet) get(name string, def float64) float64 {
	ps.seen[name] = struct{}{}
	if v, ok := ps.raw[name]; ok {
		return v
	}
	return def
}

// need returns the named parameter or ErrMissingParameter.
func (ps *paramSet) need(name string) (float64, error) {
	ps.seen[name] = struct{}{}
	v, ok := ps.raw[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q is required", ErrMissingParameter, name)
	}
	return v, nil
}

// leftover returns an unconsumed parameter name, if any.
func (ps *paramSet) leftover() (string, bool) {
	for name := range ps.raw {
		if _, ok := ps.seen[name]; !ok {
			return name, true
		}
	}
	return "", false
}

// positive validates a strictly positive, finite parameter.
func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return fmt.Errorf("%w: %q must be positive and finite, got %v",
			ErrInvalidParameter, name, v)
	}
	return nil
}

// finite validates a finite parameter.
func finite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %q must be finite, got %v",
			ErrInvalidParameter, name, v)
	}
	return nil
}

// errOrder reports a pair of parameters that must be strictly ordered.
func errOrder(loName, hiName string, lo, hi float64) error {
	return fmt.Errorf("%w: %q must be less than %q, got %v >= %v",
		ErrInvalidParameter, loName, hiName, lo, hi)
}

// errIntegral reports a parameter that must be a non-negative integer.
func errIntegral(name string, v float64) error {
	return fmt.Errorf("%w: %q must be a non-negative integer, got %v",
		ErrInvalidParameter, name, v)
}

// errUnitInterval reports a parameter that must lie in [0, 1].
func errUnitInterval(name string, v float64) error {
	return fmt.Errorf("%w: %q must lie in [0, 1], got %v",
		ErrInvalidParameter, name, v)
}

// builders maps canonical names to profile constructors.
var builders = map[string]func(*paramSet) (*Profile, error){
	"normal":      buildNormal,
	"lognormal":   buildLogNormal,
	"exponential": buildExponential,
	"gamma":       buildGamma,
	"beta":        buildBeta,
	"chisquared":  buildChiSquared,
	"studentst":   buildStudentsT,
	"f":           buildF,
	"uniform":     buildUniform,
	"weibull":     buildWeibull,
	"laplace":     buildLaplace,
	"pareto":      buildPareto,
	"poisson":     buildPoisson,
	"binomial":    buildBinomial,
}

// aliases maps normalized alternate spellings to canonical names. Lookup
// normalizes by lowercasing and stripping separators, so "Chi-Squared",
// "chi_squared" and "chisquared" all resolve identically.
var aliases = map[string]string{
	"gaussian": "normal",
	"norm":     "normal",
	"lognorm":  "lognormal",
	"exp":      "exponential",
	"expon":    "exponential",
	"chisq":    "chisquared",
	"chi2":     "chisquared",
	"t":        "studentst",
	"studentt": "studentst",
	"fisher":   "f",
}

// normalize folds case and drops the separators aliases commonly vary on.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '\'':
			return -1
		}
		return r
	}, name)
}

// resolve maps a user-supplied name to its canonical builder key.
func resolve(name string) (string, bool) {
	key := normalize(name)
	if canon, ok := aliases[key]; ok {
		key = canon
	}
	_, ok := builders[key]
	return key, ok
}

// Lookup resolves a distribution by name and constructs its Profile from
// the supplied named parameters. A nil params map is treated as empty, so
// distributions whose parameters all have defaults need none.
//
// Errors wrap ErrUnknownDistribution, ErrMissingParameter or
// ErrInvalidParameter; the returned Profile is nil on any error.
func Lookup(name string, params map[string]float64) (*Profile, error) {
	canon, ok := resolve(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
	}
	ps := &paramSet{raw: params, seen: make(map[string]struct{})}
	p, err := builders[canon](ps)
	if err != nil {
		return nil, err
	}
	if name, extra := ps.leftover(); extra {
		return nil, fmt.Errorf("%w: %q is not a parameter of %s",
			ErrInvalidParameter, name, canon)
	}
	p.Name = canon
	return finish(p), nil
}

// Names returns the canonical distribution names in sorted order, without
// aliases.
func Names() []string {
	out := make([]string, 0, len(builders))
	for name := range builders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
