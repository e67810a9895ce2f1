package dist

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/numath/specfn"
)

// buildNormal constructs N(mu, sigma²). Parameters: mu (default 0),
// sigma (default 1, positive).
func buildNormal(ps *paramSet) (*Profile, error) {
	mu := ps.get("mu", 0)
	sigma := ps.get("sigma", 1)
	if err := finite("mu", mu); err != nil {
		return nil, err
	}
	if err := positive("sigma", sigma); err != nil {
		return nil, err
	}
	d := distuv.Normal{Mu: mu, Sigma: sigma}
	return &Profile{
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      d.CDF,
		Survival: d.Survival,
		Quantile: d.Quantile,

		Mean:           fp(mu),
		Variance:       fp(sigma * sigma),
		Mode:           fp(mu),
		Median:         fp(mu),
		Skewness:       fp(0),
		KurtosisExcess: fp(0),
		Entropy:        fp(0.5 * math.Log(2*math.Pi*math.E*sigma*sigma)),
	}, nil
}

// buildLogNormal constructs the log-normal whose logarithm is N(mu, sigma²).
// Parameters: mu (default 0), sigma (default 1, positive).
func buildLogNormal(ps *paramSet) (*Profile, error) {
	mu := ps.get("mu", 0)
	sigma := ps.get("sigma", 1)
	if err := finite("mu", mu); err != nil {
		return nil, err
	}
	if err := positive("sigma", sigma); err != nil {
		return nil, err
	}
	d := distuv.LogNormal{Mu: mu, Sigma: sigma}
	s2 := sigma * sigma
	es2 := math.Exp(s2)
	return &Profile{
		PDF:    d.Prob,
		LogPDF: d.LogProb,
		CDF:    d.CDF,
		Quantile: func(p float64) float64 {
			return math.Exp(mu + sigma*specfn.Probit(p))
		},

		Mean:           fp(math.Exp(mu + s2/2)),
		Variance:       fp((es2 - 1) * math.Exp(2*mu+s2)),
		Mode:           fp(math.Exp(mu - s2)),
		Median:         fp(math.Exp(mu)),
		Skewness:       fp((es2 + 2) * math.Sqrt(es2-1)),
		KurtosisExcess: fp(math.Exp(4*s2) + 2*math.Exp(3*s2) + 3*math.Exp(2*s2) - 6),
		Entropy:        fp(mu + 0.5 + math.Log(sigma*specfn.SqrtTwoPi)),
	}, nil
}

// buildExponential constructs Exp(rate). Parameters: rate (default 1,
// positive).
func buildExponential(ps *paramSet) (*Profile, error) {
	rate := ps.get("rate", 1)
	if err := positive("rate", rate); err != nil {
		return nil, err
	}
	d := distuv.Exponential{Rate: rate}
	return &Profile{
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      d.CDF,
		Survival: d.Survival,
		Quantile: d.Quantile,
		// Constant hazard is the defining property; bypass pdf/sf division.
		Hazard: func(x float64) float64 {
			if x < 0 {
				return 0
			}
			return rate
		},

		Mean:           fp(1 / rate),
		Variance:       fp(1 / (rate * rate)),
		Mode:           fp(0),
		Median:         fp(math.Ln2 / rate),
		Skewness:       fp(2),
		KurtosisExcess: fp(6),
		Entropy:        fp(1 - math.Log(rate)),
	}, nil
}

// buildGamma constructs Gamma(shape, rate). Parameters: shape (required,
// positive), rate (default 1, positive).
func buildGamma(ps *paramSet) (*Profile, error) {
	shape, err := ps.need("shape")
	if err != nil {
		return nil, err
	}
	rate := ps.get("rate", 1)
	if err := positive("shape", shape); err != nil {
		return nil, err
	}
	if err := positive("rate", rate); err != nil {
		return nil, err
	}
	d := distuv.Gamma{Alpha: shape, Beta: rate}
	p := &Profile{
		PDF:    d.Prob,
		LogPDF: d.LogProb,
		CDF:    d.CDF,
		Survival: func(x float64) float64 {
			if x <= 0 {
				return 1
			}
			return specfn.GammaQ(shape, rate*x)
		},
		Quantile: func(p float64) float64 {
			return specfn.GammaPInv(shape, p) / rate
		},

		Mean:           fp(shape / rate),
		Variance:       fp(shape / (rate * rate)),
		Skewness:       fp(2 / math.Sqrt(shape)),
		KurtosisExcess: fp(6 / shape),
	}
	if shape >= 1 {
		p.Mode = fp((shape - 1) / rate)
	}
	lg, _ := specfn.LogGamma(shape)
	p.Entropy = fp(shape - math.Log(rate) + lg + (1-shape)*specfn.Digamma(shape))
	return p, nil
}

// buildBeta constructs Beta(alpha, beta) on (0, 1). Parameters: alpha
// (default 1, positive), beta (default 1, positive).
func buildBeta(ps *paramSet) (*Profile, error) {
	alpha := ps.get("alpha", 1)
	beta := ps.get("beta", 1)
	if err := positive("alpha", alpha); err != nil {
		return nil, err
	}
	if err := positive("beta", beta); err != nil {
		return nil, err
	}
	d := distuv.Beta{Alpha: alpha, Beta: beta}
	ab := alpha + beta
	p := &Profile{
		PDF:    d.Prob,
		LogPDF: d.LogProb,
		CDF:    d.CDF,
		Quantile: func(p float64) float64 {
			return specfn.BetaIncInv(alpha, beta, p)
		},

		Mean:     fp(alpha / ab),
		Variance: fp(alpha * beta / (ab * ab * (ab + 1))),
		Skewness: fp(2 * (beta - alpha) * math.Sqrt(ab+1) /
			((ab + 2) * math.Sqrt(alpha*beta))),
		KurtosisExcess: fp(6 * ((alpha-beta)*(alpha-beta)*(ab+1) - alpha*beta*(ab+2)) /
			(alpha * beta * (ab + 2) * (ab + 3))),
		Entropy: fp(specfn.LogBeta(alpha, beta) -
			(alpha-1)*specfn.Digamma(alpha) -
			(beta-1)*specfn.Digamma(beta) +
			(ab-2)*specfn.Digamma(ab)),
	}
	if alpha > 1 && beta > 1 {
		p.Mode = fp((alpha - 1) / (ab - 2))
	}
	return p, nil
}

// buildChiSquared constructs χ²(k). Parameters: k (required, positive).
func buildChiSquared(ps *paramSet) (*Profile, error) {
	k, err := ps.need("k")
	if err != nil {
		return nil, err
	}
	if err := positive("k", k); err != nil {
		return nil, err
	}
	d := distuv.ChiSquared{K: k}
	lg, _ := specfn.LogGamma(k / 2)
	return &Profile{
		PDF:    d.Prob,
		LogPDF: d.LogProb,
		CDF:    d.CDF,
		Survival: func(x float64) float64 {
			if x <= 0 {
				return 1
			}
			return specfn.GammaQ(k/2, x/2)
		},
		Quantile: func(p float64) float64 {
			return 2 * specfn.GammaPInv(k/2, p)
		},

		Mean:           fp(k),
		Variance:       fp(2 * k),
		Mode:           fp(math.Max(k-2, 0)),
		Skewness:       fp(math.Sqrt(8 / k)),
		KurtosisExcess: fp(12 / k),
		Entropy:        fp(k/2 + math.Ln2 + lg + (1-k/2)*specfn.Digamma(k/2)),
	}, nil
}

// buildStudentsT constructs the location-scale Student's t. Parameters:
// nu (required, positive), mu (default 0), sigma (default 1, positive).
func buildStudentsT(ps *paramSet) (*Profile, error) {
	nu, err := ps.need("nu")
	if err != nil {
		return nil, err
	}
	mu := ps.get("mu", 0)
	sigma := ps.get("sigma", 1)
	if err := positive("nu", nu); err != nil {
		return nil, err
	}
	if err := finite("mu", mu); err != nil {
		return nil, err
	}
	if err := positive("sigma", sigma); err != nil {
		return nil, err
	}
	d := distuv.StudentsT{Mu: mu, Sigma: sigma, Nu: nu}
	cdf := d.CDF
	p := &Profile{
		PDF:    d.Prob,
		LogPDF: d.LogProb,
		CDF:    cdf,
		// Symmetry around mu gives the tail without a separate kernel.
		Survival: func(x float64) float64 { return cdf(2*mu - x) },
		Quantile: func(p float64) float64 {
			return mu + sigma*studentTQuantile(nu, p)
		},

		Mode:   fp(mu),
		Median: fp(mu),
	}
	if nu > 1 {
		p.Mean = fp(mu)
	}
	if nu > 2 {
		p.Variance = fp(sigma * sigma * nu / (nu - 2))
	}
	if nu > 3 {
		p.Skewness = fp(0)
	}
	if nu > 4 {
		p.KurtosisExcess = fp(6 / (nu - 4))
	}
	return p, nil
}

// studentTQuantile returns the standard Student's t quantile via the
// inverse regularized incomplete beta function.
func studentTQuantile(nu, p float64) float64 {
	switch {
	case p == 0.5:
		return 0
	case p < 0.5:
		return -studentTQuantile(nu, 1-p)
	}
	x := specfn.BetaIncInv(nu/2, 0.5, 2*(1-p))
	return math.Sqrt(nu * (1 - x) / x)
}

// buildF constructs Fisher's F(d1, d2). Parameters: d1, d2 (both required,
// positive).
func buildF(ps *paramSet) (*Profile, error) {
	d1, err := ps.need("d1")
	if err != nil {
		return nil, err
	}
	d2, err := ps.need("d2")
	if err != nil {
		return nil, err
	}
	if err := positive("d1", d1); err != nil {
		return nil, err
	}
	if err := positive("d2", d2); err != nil {
		return nil, err
	}
	d := distuv.F{D1: d1, D2: d2}
	p := &Profile{
		PDF:    d.Prob,
		LogPDF: d.LogProb,
		CDF:    d.CDF,
		Survival: func(x float64) float64 {
			if x <= 0 {
				return 1
			}
			return specfn.BetaInc(d2/2, d1/2, d2/(d2+d1*x))
		},
		Quantile: func(p float64) float64 {
			y := specfn.BetaIncInv(d1/2, d2/2, p)
			return d2 * y / (d1 * (1 - y))
		},
	}
	if d2 > 2 {
		p.Mean = fp(d2 / (d2 - 2))
	}
	if d1 > 2 {
		p.Mode = fp((d1 - 2) / d1 * d2 / (d2 + 2))
	}
	if d2 > 4 {
		p.Variance = fp(2 * d2 * d2 * (d1 + d2 - 2) /
			(d1 * (d2 - 2) * (d2 - 2) * (d2 - 4)))
	}
	if d2 > 6 {
		p.Skewness = fp((2*d1 + d2 - 2) * math.Sqrt(8*(d2-4)) /
			((d2 - 6) * math.Sqrt(d1*(d1+d2-2))))
	}
	return p, nil
}

// buildUniform constructs U(min, max). Parameters: min (default 0),
// max (default 1), min < max.
func buildUniform(ps *paramSet) (*Profile, error) {
	lo := ps.get("min", 0)
	hi := ps.get("max", 1)
	if err := finite("min", lo); err != nil {
		return nil, err
	}
	if err := finite("max", hi); err != nil {
		return nil, err
	}
	if lo >= hi {
		return nil, errOrder("min", "max", lo, hi)
	}
	d := distuv.Uniform{Min: lo, Max: hi}
	w := hi - lo
	return &Profile{
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      d.CDF,
		Survival: d.Survival,
		Quantile: d.Quantile,

		Mean:           fp((lo + hi) / 2),
		Variance:       fp(w * w / 12),
		Median:         fp((lo + hi) / 2),
		Skewness:       fp(0),
		KurtosisExcess: fp(-6.0 / 5),
		Entropy:        fp(math.Log(w)),
	}, nil
}

// buildWeibull constructs Weibull(shape, scale). Parameters: shape
// (default 1, positive), scale (default 1, positive). Shape 1 degenerates
// to the exponential with rate 1/scale.
func buildWeibull(ps *paramSet) (*Profile, error) {
	shape := ps.get("shape", 1)
	scale := ps.get("scale", 1)
	if err := positive("shape", shape); err != nil {
		return nil, err
	}
	if err := positive("scale", scale); err != nil {
		return nil, err
	}
	d := distuv.Weibull{K: shape, Lambda: scale}
	g1 := specfn.Gamma(1 + 1/shape)
	g2 := specfn.Gamma(1 + 2/shape)
	p := &Profile{
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      d.CDF,
		Survival: d.Survival,
		Quantile: d.Quantile,

		Mean:     fp(scale * g1),
		Variance: fp(scale * scale * (g2 - g1*g1)),
		Median:   fp(scale * math.Pow(math.Ln2, 1/shape)),
	}
	if shape > 1 {
		p.Mode = fp(scale * math.Pow((shape-1)/shape, 1/shape))
	} else {
		p.Mode = fp(0)
	}
	return p, nil
}

// buildLaplace constructs Laplace(mu, scale). Parameters: mu (default 0),
// scale (default 1, positive).
func buildLaplace(ps *paramSet) (*Profile, error) {
	mu := ps.get("mu", 0)
	scale := ps.get("scale", 1)
	if err := finite("mu", mu); err != nil {
		return nil, err
	}
	if err := positive("scale", scale); err != nil {
		return nil, err
	}
	d := distuv.Laplace{Mu: mu, Scale: scale}
	cdf := d.CDF
	return &Profile{
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      cdf,
		Survival: func(x float64) float64 { return cdf(2*mu - x) },
		Quantile: d.Quantile,

		Mean:           fp(mu),
		Variance:       fp(2 * scale * scale),
		Mode:           fp(mu),
		Median:         fp(mu),
		Skewness:       fp(0),
		KurtosisExcess: fp(3),
		Entropy:        fp(1 + math.Log(2*scale)),
	}, nil
}

// buildPareto constructs the type-I Pareto on [xm, ∞). Parameters: xm
// (default 1, positive), alpha (required, positive).
func buildPareto(ps *paramSet) (*Profile, error) {
	alpha, err := ps.need("alpha")
	if err != nil {
		return nil, err
	}
	xm := ps.get("xm", 1)
	if err := positive("alpha", alpha); err != nil {
		return nil, err
	}
	if err := positive("xm", xm); err != nil {
		return nil, err
	}
	d := distuv.Pareto{Xm: xm, Alpha: alpha}
	p := &Profile{
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      d.CDF,
		Survival: d.Survival,
		Quantile: func(p float64) float64 {
			return xm * math.Pow(1-p, -1/alpha)
		},
		// Direct tail form keeps precision for q near zero.
		QuantileComplement: func(q float64) float64 {
			return xm * math.Pow(q, -1/alpha)
		},

		Mode:   fp(xm),
		Median: fp(xm * math.Pow(2, 1/alpha)),
	}
	if alpha > 1 {
		p.Mean = fp(alpha * xm / (alpha - 1))
	}
	if alpha > 2 {
		p.Variance = fp(xm * xm * alpha / ((alpha - 1) * (alpha - 1) * (alpha - 2)))
	}
	if alpha > 3 {
		p.Skewness = fp(2 * (1 + alpha) / (alpha - 3) * math.Sqrt((alpha-2)/alpha))
	}
	p.Entropy = fp(math.Log(xm/alpha) + 1/alpha + 1)
	return p, nil
}

// buildPoisson constructs Poisson(lambda). Parameters: lambda (required,
// positive). Discrete: Quantile and Hazard stay nil.
func buildPoisson(ps *paramSet) (*Profile, error) {
	lambda, err := ps.need("lambda")
	if err != nil {
		return nil, err
	}
	if err := positive("lambda", lambda); err != nil {
		return nil, err
	}
	d := distuv.Poisson{Lambda: lambda}
	return &Profile{
		Discrete: true,
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      d.CDF,

		Mean:           fp(lambda),
		Variance:       fp(lambda),
		Mode:           fp(math.Floor(lambda)),
		Skewness:       fp(1 / math.Sqrt(lambda)),
		KurtosisExcess: fp(1 / lambda),
	}, nil
}

// buildBinomial constructs Binomial(n, p). Parameters: n (required,
// non-negative integer), p (default 0.5, in [0, 1]). Discrete: Quantile
// and Hazard stay nil.
func buildBinomial(ps *paramSet) (*Profile, error) {
	n, err := ps.need("n")
	if err != nil {
		return nil, err
	}
	prob := ps.get("p", 0.5)
	if n < 0 || n != math.Trunc(n) || math.IsInf(n, 1) {
		return nil, errIntegral("n", n)
	}
	if !(prob >= 0 && prob <= 1) {
		return nil, errUnitInterval("p", prob)
	}
	d := distuv.Binomial{N: n, P: prob}
	q := 1 - prob
	pr := &Profile{
		Discrete: true,
		PDF:      d.Prob,
		LogPDF:   d.LogProb,
		CDF:      d.CDF,

		Mean:     fp(n * prob),
		Variance: fp(n * prob * q),
		Mode:     fp(math.Floor((n + 1) * prob)),
	}
	if n > 0 && prob > 0 && prob < 1 {
		pr.Skewness = fp((q - prob) / math.Sqrt(n*prob*q))
		pr.KurtosisExcess = fp((1 - 6*prob*q) / (n * prob * q))
	}
	return pr, nil
}
