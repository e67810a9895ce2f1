// Package specfn exposes the special-function surface used across the
// module: gamma/beta families with their regularized incomplete forms,
// error-function inverses, zeta, complete elliptic integrals, the probit,
// combinatorics, and orthogonal polynomial evaluation.
//
// Every function is total over float64: out-of-domain input propagates
// IEEE-754 NaN (or the mathematically forced ±Inf) instead of panicking,
// including for backends that treat domain violations as programmer errors.
// That makes the surface safe to drive with unvalidated numeric input, e.g.
// parameters arriving through the dist registry or a host-language boundary.
//
// Evaluation is delegated: elementary transcendentals to the standard
// library, the regularized incomplete families, digamma, zeta, elliptic
// integrals and the normal quantile to gonum's mathext. Orthogonal
// polynomials are evaluated by their three-term recurrences, matching the
// families the quad catalog builds rules for.
package specfn
