// Package dist resolves probability distributions by name into a Profile,
// a vtable of evaluation closures plus precomputed moments.
//
// A Profile is obtained from Lookup with a distribution name (aliases such
// as "gaussian" for "normal" are accepted, case-insensitively) and a map of
// named parameters. Parameters not supplied take their documented defaults;
// parameters a distribution requires but the caller omitted fail with
// ErrMissingParameter, and out-of-domain or unrecognized parameters fail
// with ErrInvalidParameter.
//
// Every field of a Profile is nullable: a nil function or moment pointer
// means the quantity has no closed form for that distribution (for example
// the quantile and hazard of discrete distributions, or the mean of a
// Student's t with ν ≤ 1). Callers check for nil rather than special-case
// distribution names.
//
// Density, CDF and moment kernels come from gonum's stat/distuv; quantiles
// and survival tails that distuv does not carry are derived through the
// specfn inverses of the regularized incomplete gamma and beta functions.
// Hazard, cumulative hazard and the complementary quantile are derived
// uniformly from the primary fields.
//
// Profiles are immutable after Lookup returns and safe for concurrent use.
package dist
