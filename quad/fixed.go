// Package quad fixed-node rule evaluation.
package quad

import "math"

// floatT constrains the evaluation pipeline to the representable precisions.
type floatT interface {
	~float32 | ~float64
}

// fixedRule is the single implementation behind every fixed-node kind. The
// tableau lives on the rule's canonical domain and is read-only after
// construction; evaluation state lives on the stack, so a fixedRule is safe
// to share across goroutines whenever the integrand is.
type fixedRule struct {
	kind Kind
	prec Precision

	// mappable marks rules whose canonical [-1,1] domain maps onto finite
	// [a,b] by the affine change of variables (Legendre, Jacobi, Kronrod).
	// Non-mappable rules carry their weight function's support and ignore
	// explicit bounds.
	mappable bool

	nodes   []float64
	weights []float64

	// gaussWeights is non-nil only for Gauss–Kronrod: the embedded Gauss
	// weights, aligned with the odd-indexed Kronrod nodes.
	gaussWeights []float64
}

func (r *fixedRule) Integrate(f Func) Result {
	return r.eval(f, 1, 0)
}

func (r *fixedRule) IntegrateInterval(f Func, a, b float64) Result {
	if !r.mappable {
		// Fixed infinite support: bounds are meaningless and ignored.
		return r.Integrate(f)
	}
	if !isFinite(a) || !isFinite(b) || a > b {
		return Failure()
	}
	if a == b {
		return Result{Iterations: 1, Converged: true}
	}
	return r.eval(f, (b-a)/2, (a+b)/2)
}

func (r *fixedRule) Describe() Description {
	return Description{
		Kind:                   r.kind,
		Points:                 len(r.nodes),
		IsAdaptive:             false,
		SupportsInfiniteBounds: r.kind.SupportsInfiniteBounds(),
		Precision:              r.prec,
	}
}

func (r *fixedRule) AbscissaWeights() (nodes, weights []float64, ok bool) {
	nodes = make([]float64, len(r.nodes))
	weights = make([]float64, len(r.weights))
	copy(nodes, r.nodes)
	copy(weights, r.weights)
	return nodes, weights, true
}

// eval dispatches the quadrature sum on the configured precision.
func (r *fixedRule) eval(f Func, scale, shift float64) Result {
	var (
		val, errEst, l1 float64
		calls           int
	)
	switch r.prec {
	case Float32:
		val, errEst, l1, calls = fixedSum[float32](r.nodes, r.weights, r.gaussWeights, f, scale, shift)
	default:
		val, errEst, l1, calls = fixedSum[float64](r.nodes, r.weights, r.gaussWeights, f, scale, shift)
	}
	return Result{
		Value:          val,
		EstimatedError: errEst,
		L1Norm:         l1,
		Iterations:     1,
		FunctionCalls:  calls,
		Converged:      true,
	}
}

// fixedSum evaluates Σ wᵢ·f(shift + scale·xᵢ) scaled by the interval factor,
// accumulating entirely in F. When gaussW is non-nil the embedded Gauss
// sub-sum over the odd-indexed nodes supplies the error estimate without any
// additional integrand evaluations.
func fixedSum[F floatT](nodes, weights, gaussW []float64, f Func, scale, shift float64) (val, errEst, l1 float64, calls int) {
	var sum, asum, gsum F
	sc := F(scale)
	sh := F(shift)
	for i, x := range nodes {
		var y F
		if f != nil {
			y = F(f(float64(sh + sc*F(x))))
			calls++
		}
		w := F(weights[i])
		sum += w * y
		asum += absF(w * y)
		if gaussW != nil && i%2 == 1 {
			gsum += F(gaussW[i/2]) * y
		}
	}
	val = float64(sc * sum)
	l1 = math.Abs(float64(sc * asum))
	if gaussW != nil {
		errEst = math.Abs(float64(sc * (sum - gsum)))
	}
	return val, errEst, l1, calls
}

func absF[F floatT](v F) F {
	if v < 0 {
		return -v
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
