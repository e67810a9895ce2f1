// Package quad adaptive double-exponential rules: tanh-sinh, sinh-sinh and
// exp-sinh.
//
// All three share one engine: a trapezoid sum over the transformed axis with
// level doubling. The change of variables maps the integration domain onto
// the real line with double-exponentially decaying integrand, so halving the
// step roughly doubles the number of correct digits; the inter-level
// difference is the error estimate. The refinement loop is the rules' own
// retry mechanism — when the budget runs out the best-effort estimate is
// returned with Converged=false, never a hard failure.
package quad

import "math"

const (
	// tanhSinhTMax bounds |t| where tanh((π/2)·sinh t) is within one ulp of
	// ±1 in double precision; past it every abscissa collapses onto an
	// endpoint.
	tanhSinhTMax = 3.2

	// unboundedTMax bounds |t| for the sinh-sinh and exp-sinh axes where the
	// transformed abscissa approaches the double-precision overflow
	// threshold.
	unboundedTMax = 6.7

	// deTermEps and deTinyRun control early termination of a level's tail:
	// a side of the axis is cut once deTinyRun consecutive contributions
	// fall below deTermEps of the accumulated L1 mass.
	deTermEps = 1e-16
	deTinyRun = 3

	// float32Tolerance floors the convergence target in Float32 mode; a
	// tighter target than single-precision resolution can never be met.
	float32Tolerance = 1e-6
)

// deRule implements the three adaptive kinds. Immutable after construction;
// per-call state lives on the stack.
type deRule struct {
	kind      Kind
	prec      Precision
	maxRefine int
	tol       float64
}

func newDoubleExp(k Kind, p Precision, maxRefine int, tol float64) Integrator {
	if p == Float32 && tol < float32Tolerance {
		tol = float32Tolerance
	}
	return &deRule{kind: k, prec: p, maxRefine: maxRefine, tol: tol}
}

// deTransform yields, for trapezoid parameter t, the abscissa u(t) on the
// rule's canonical domain and the positive weight u'(t).
type deTransform struct {
	point func(t float64) (u, w float64)
	tmax  float64
}

// tanhSinhTransform maps (-∞,∞) onto (-1,1): u = tanh((π/2)·sinh t).
var tanhSinhTransform = deTransform{
	point: func(t float64) (float64, float64) {
		q := math.Pi / 2 * math.Sinh(t)
		cq := math.Cosh(q)
		return math.Tanh(q), math.Pi / 2 * math.Cosh(t) / (cq * cq)
	},
	tmax: tanhSinhTMax,
}

// sinhSinhTransform maps (-∞,∞) onto (-∞,∞): u = sinh((π/2)·sinh t).
var sinhSinhTransform = deTransform{
	point: func(t float64) (float64, float64) {
		q := math.Pi / 2 * math.Sinh(t)
		return math.Sinh(q), math.Pi / 2 * math.Cosh(t) * math.Cosh(q)
	},
	tmax: unboundedTMax,
}

// expSinhTransform maps (-∞,∞) onto (0,∞): u = exp((π/2)·sinh t).
var expSinhTransform = deTransform{
	point: func(t float64) (float64, float64) {
		u := math.Exp(math.Pi / 2 * math.Sinh(t))
		return u, math.Pi / 2 * math.Cosh(t) * u
	},
	tmax: unboundedTMax,
}

func (r *deRule) Integrate(f Func) Result {
	switch r.kind {
	case TanhSinh:
		return r.IntegrateInterval(f, -1, 1)
	case ExpSinh:
		g, calls := r.prepare(f)
		return r.run(g, expSinhTransform, 1, calls)
	default: // SinhSinh
		g, calls := r.prepare(f)
		return r.run(g, sinhSinhTransform, 1, calls)
	}
}

// IntegrateInterval honors bounds per kind: TanhSinh integrates the literal
// finite [a,b]; ExpSinh integrates [a,∞) — the upper bound is ignored by the
// rule's mathematical domain; SinhSinh has fixed support (-∞,∞) and ignores
// both bounds.
func (r *deRule) IntegrateInterval(f Func, a, b float64) Result {
	switch r.kind {
	case TanhSinh:
		if !isFinite(a) || !isFinite(b) || a > b {
			return Failure()
		}
		if a == b {
			return Result{Iterations: 1, Converged: true}
		}
		g, calls := r.prepare(f)
		c, s := (a+b)/2, (b-a)/2
		mapped := func(u float64) float64 { return g(c + s*u) }
		return r.run(mapped, tanhSinhTransform, s, calls)
	case ExpSinh:
		if !isFinite(a) {
			return Failure()
		}
		g, calls := r.prepare(f)
		shifted := g
		if a != 0 {
			shifted = func(u float64) float64 { return g(u + a) }
		}
		return r.run(shifted, expSinhTransform, 1, calls)
	default: // SinhSinh: fixed support, bounds ignored.
		return r.Integrate(f)
	}
}

func (r *deRule) Describe() Description {
	return Description{
		Kind:                   r.kind,
		Points:                 UnknownPoints,
		IsAdaptive:             true,
		SupportsInfiniteBounds: r.kind.SupportsInfiniteBounds(),
		Precision:              r.prec,
	}
}

// AbscissaWeights reports no fixed tableau: adaptive point sets are
// runtime-determined.
func (r *deRule) AbscissaWeights() (nodes, weights []float64, ok bool) {
	return nil, nil, false
}

// prepare wraps the integrand with nil-totalization, call counting and the
// Float32 rounding of the evaluation pipeline.
func (r *deRule) prepare(f Func) (Func, *int) {
	calls := new(int)
	g := func(x float64) float64 {
		if f == nil {
			return 0
		}
		*calls++
		return f(x)
	}
	if r.prec == Float32 {
		inner := g
		g = func(x float64) float64 {
			return float64(float32(inner(float64(float32(x)))))
		}
	}
	return g, calls
}

// run executes the level-doubling trapezoid loop. Non-finite contributions
// (integrable endpoint singularities, transform overflow in the far tail)
// are dropped rather than propagated, keeping the invocation total.
func (r *deRule) run(g Func, tr deTransform, scale float64, calls *int) Result {
	term := func(t float64) (v, av float64) {
		u, w := tr.point(t)
		v = w * g(u)
		if !isFinite(v) {
			return 0, 0
		}
		return v, math.Abs(v)
	}

	// Level 0: plain trapezoid with h = 1 over t = 0, ±1, ±2, …
	h := 1.0
	sum, asum := term(0)
	for _, sgn := range [2]float64{1, -1} {
		tiny := 0
		for k := 1; float64(k)*h <= tr.tmax; k++ {
			v, av := term(sgn * float64(k) * h)
			sum += v
			asum += av
			if av <= deTermEps*asum {
				if tiny++; tiny >= deTinyRun {
					break
				}
			} else {
				tiny = 0
			}
		}
	}
	value := h * sum
	l1 := h * asum

	iterations := 1
	errEst := math.Inf(1)
	converged := false
	for m := 1; m <= r.maxRefine; m++ {
		h /= 2
		var add, addAbs float64
		for _, sgn := range [2]float64{1, -1} {
			tiny := 0
			for k := 0; ; k++ {
				t := float64(2*k+1) * h
				if t > tr.tmax {
					break
				}
				v, av := term(sgn * t)
				add += v
				addAbs += av
				if av <= deTermEps*(l1+addAbs) {
					if tiny++; tiny >= deTinyRun {
						break
					}
				} else {
					tiny = 0
				}
			}
		}
		prev := value
		value = value/2 + h*add
		l1 = l1/2 + h*addAbs
		iterations++
		errEst = math.Abs(value - prev)
		if errEst <= r.tol*math.Max(math.Abs(value), 1) {
			converged = true
			break
		}
	}

	return Result{
		Value:          scale * value,
		EstimatedError: math.Abs(scale) * errEst,
		L1Norm:         math.Abs(scale) * l1,
		Iterations:     iterations,
		FunctionCalls:  *calls,
		Converged:      converged,
	}
}
