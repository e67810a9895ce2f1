package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numath/dist"
)

const tol = 1e-12

// TestLookup_AliasResolution maps every documented alias, in mixed case and
// separator style, onto its canonical profile.
func TestLookup_AliasResolution(t *testing.T) {
	cases := map[string]string{
		"normal":      "normal",
		"Gaussian":    "normal",
		"NORM":        "normal",
		"log-normal":  "lognormal",
		"LogNorm":     "lognormal",
		"exp":         "exponential",
		"expon":       "exponential",
		"chi-squared": "chisquared",
		"Chi_Squared": "chisquared",
		"chisq":       "chisquared",
		"chi2":        "chisquared",
		"t":           "studentst",
		"student-t":   "studentst",
		"Student's T": "studentst",
		"fisher":      "f",
	}
	params := map[string]map[string]float64{
		"chisquared": {"k": 3},
		"studentst":  {"nu": 5},
		"f":          {"d1": 4, "d2": 8},
	}
	for name, canon := range cases {
		p, err := dist.Lookup(name, params[canon])
		require.NoError(t, err, "alias %q must resolve", name)
		assert.Equal(t, canon, p.Name, "alias %q must yield canonical name", name)
	}
}

// TestLookup_UnknownDistribution demands the sentinel and a nil profile.
func TestLookup_UnknownDistribution(t *testing.T) {
	p, err := dist.Lookup("cauchy", nil)
	assert.ErrorIs(t, err, dist.ErrUnknownDistribution, "unregistered name must fail")
	assert.Nil(t, p, "no profile on failure")
}

// TestLookup_MissingParameter covers every distribution with a required
// parameter.
func TestLookup_MissingParameter(t *testing.T) {
	for _, name := range []string{"gamma", "chisquared", "studentst", "f",
		"pareto", "poisson", "binomial"} {
		p, err := dist.Lookup(name, nil)
		assert.ErrorIs(t, err, dist.ErrMissingParameter, "%s without params must fail", name)
		assert.Nil(t, p, "no profile on failure for %s", name)
	}
}

// TestLookup_InvalidParameter covers domain violations and unrecognized
// parameter names.
func TestLookup_InvalidParameter(t *testing.T) {
	cases := []struct {
		name   string
		params map[string]float64
	}{
		{"normal", map[string]float64{"sigma": 0}},
		{"normal", map[string]float64{"mu": math.Inf(1)}},
		{"normal", map[string]float64{"rate": 1}}, // not a normal parameter
		{"exponential", map[string]float64{"rate": -2}},
		{"gamma", map[string]float64{"shape": 2, "rate": math.NaN()}},
		{"uniform", map[string]float64{"min": 3, "max": 1}},
		{"binomial", map[string]float64{"n": 2.5}},
		{"binomial", map[string]float64{"n": 10, "p": 1.5}},
	}
	for _, tc := range cases {
		p, err := dist.Lookup(tc.name, tc.params)
		assert.ErrorIs(t, err, dist.ErrInvalidParameter,
			"%s with %v must fail", tc.name, tc.params)
		assert.Nil(t, p, "no profile on failure")
	}
}

// TestNormal_StandardValues pins the standard normal against textbook
// values and the derived-field identities.
func TestNormal_StandardValues(t *testing.T) {
	p, err := dist.Lookup("normal", nil)
	require.NoError(t, err)

	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), p.PDF(0), tol, "peak density")
	assert.InDelta(t, 0.5, p.CDF(0), tol, "median mass")
	assert.InDelta(t, 1.9599639845400545, p.Quantile(0.975), 1e-10, "97.5th percentile")
	assert.InDelta(t, p.Quantile(0.975), p.QuantileComplement(0.025), 1e-10,
		"complementary quantile identity")
	assert.InDelta(t, math.Ln2, p.CumulativeHazard(0), tol,
		"cumulative hazard at the median is ln 2")
	assert.InDelta(t, p.PDF(0.7)/p.Survival(0.7), p.Hazard(0.7), tol,
		"hazard must equal pdf/sf")

	require.NotNil(t, p.Mean)
	require.NotNil(t, p.Kurtosis)
	assert.Equal(t, 0.0, *p.Mean, "standard normal mean")
	assert.Equal(t, 3.0, *p.Kurtosis, "kurtosis derives from excess + 3")
}

// TestExponential_ConstantHazard pins the memoryless rate and the moments.
func TestExponential_ConstantHazard(t *testing.T) {
	p, err := dist.Lookup("exponential", map[string]float64{"rate": 2})
	require.NoError(t, err)

	assert.InDelta(t, 2*math.Exp(-2), p.PDF(1), tol, "density at x=1")
	assert.InDelta(t, 1-math.Exp(-2), p.CDF(1), tol, "mass at x=1")
	assert.Equal(t, 2.0, p.Hazard(0.3), "hazard is the rate everywhere")
	assert.Equal(t, 2.0, p.Hazard(17), "hazard is the rate everywhere")
	assert.InDelta(t, math.Ln2/2, *p.Median, tol, "median ln2/rate")
	assert.InDelta(t, 0.5, *p.Mean, tol, "mean 1/rate")
	assert.InDelta(t, 0.5, *p.StdDev, tol, "stddev 1/rate")
}

// TestGamma_QuantileRoundTrip drives the incomplete-gamma quantile against
// the forward CDF.
func TestGamma_QuantileRoundTrip(t *testing.T) {
	p, err := dist.Lookup("gamma", map[string]float64{"shape": 3, "rate": 2})
	require.NoError(t, err)

	assert.InDelta(t, 1.5, *p.Mean, tol, "mean shape/rate")
	assert.InDelta(t, 0.75, *p.Variance, tol, "variance shape/rate²")
	assert.InDelta(t, 1.0, *p.Mode, tol, "mode (shape−1)/rate")

	for _, prob := range []float64{0.05, 0.5, 0.99} {
		x := p.Quantile(prob)
		assert.InDelta(t, prob, p.CDF(x), 1e-10, "CDF(Quantile(%v))", prob)
	}
	x := 0.9
	assert.InDelta(t, 1.0, p.CDF(x)+p.Survival(x), tol, "CDF + SF must be 1")
}

// TestBeta_DensityAndMedian pins a hand-computed density and the
// quantile-derived median.
func TestBeta_DensityAndMedian(t *testing.T) {
	p, err := dist.Lookup("beta", map[string]float64{"alpha": 2, "beta": 5})
	require.NoError(t, err)

	// B(2,5) = 1/30, so f(0.3) = 30·0.3·0.7⁴.
	assert.InDelta(t, 30*0.3*math.Pow(0.7, 4), p.PDF(0.3), 1e-12, "density at 0.3")
	assert.InDelta(t, 2.0/7, *p.Mean, tol, "mean α/(α+β)")

	require.NotNil(t, p.Median, "median derives from the quantile")
	assert.InDelta(t, 0.5, p.CDF(*p.Median), 1e-10, "median splits the mass")
}

// TestStudentsT_CriticalValueAndSymmetry pins the classical two-sided 95%
// critical value for ν=5 and the symmetry identities.
func TestStudentsT_CriticalValueAndSymmetry(t *testing.T) {
	p, err := dist.Lookup("t", map[string]float64{"nu": 5})
	require.NoError(t, err)

	assert.InDelta(t, 2.5705818366147395, p.Quantile(0.975), 1e-8,
		"t(5) critical value")
	assert.InDelta(t, -p.Quantile(0.975), p.Quantile(0.025), 1e-8,
		"quantile antisymmetry")
	assert.InDelta(t, 0.5, p.CDF(0), tol, "symmetric about zero")
	assert.InDelta(t, p.CDF(-1.2), p.Survival(1.2), tol, "tail symmetry")

	for _, prob := range []float64{0.1, 0.6, 0.99} {
		assert.InDelta(t, prob, p.CDF(p.Quantile(prob)), 1e-9,
			"quantile round trip at %v", prob)
	}
}

// TestStudentsT_HeavyTailMomentsAbsent leaves undefined moments nil.
func TestStudentsT_HeavyTailMomentsAbsent(t *testing.T) {
	p, err := dist.Lookup("t", map[string]float64{"nu": 1})
	require.NoError(t, err)
	assert.Nil(t, p.Mean, "ν=1 has no mean")
	assert.Nil(t, p.Variance, "ν=1 has no variance")
	assert.Nil(t, p.StdDev, "no stddev without variance")
	assert.NotNil(t, p.Median, "median exists for every ν")
}

// TestF_TailAndQuantile exercises the incomplete-beta tail and quantile.
func TestF_TailAndQuantile(t *testing.T) {
	p, err := dist.Lookup("f", map[string]float64{"d1": 5, "d2": 10})
	require.NoError(t, err)

	x := 1.7
	assert.InDelta(t, 1.0, p.CDF(x)+p.Survival(x), 1e-12, "CDF + SF must be 1")
	for _, prob := range []float64{0.25, 0.8, 0.95} {
		assert.InDelta(t, prob, p.CDF(p.Quantile(prob)), 1e-9,
			"quantile round trip at %v", prob)
	}
	assert.InDelta(t, 10.0/8, *p.Mean, tol, "mean d2/(d2−2)")

	narrow, err := dist.Lookup("f", map[string]float64{"d1": 5, "d2": 2})
	require.NoError(t, err)
	assert.Nil(t, narrow.Mean, "d2≤2 has no mean")
}

// TestChiSquared_Moments pins the k-parameterized moments.
func TestChiSquared_Moments(t *testing.T) {
	p, err := dist.Lookup("chisq", map[string]float64{"k": 3})
	require.NoError(t, err)

	assert.Equal(t, 3.0, *p.Mean, "mean k")
	assert.Equal(t, 6.0, *p.Variance, "variance 2k")
	assert.Equal(t, 1.0, *p.Mode, "mode k−2")
	assert.InDelta(t, 0.9, p.CDF(p.Quantile(0.9)), 1e-10, "quantile round trip")
}

// TestUniform_FlatDensity checks the rectangle and its quantile line.
func TestUniform_FlatDensity(t *testing.T) {
	p, err := dist.Lookup("uniform", map[string]float64{"min": 2, "max": 6})
	require.NoError(t, err)

	assert.Equal(t, 0.25, p.PDF(3.7), "density 1/(max−min) inside")
	assert.Equal(t, 0.0, p.PDF(7), "density zero outside")
	assert.InDelta(t, 3.0, p.Quantile(0.25), tol, "linear quantile")
	assert.InDelta(t, math.Log(4), *p.Entropy, tol, "entropy ln(max−min)")
}

// TestWeibull_ClosedForms checks the scale-shape closed forms.
func TestWeibull_ClosedForms(t *testing.T) {
	p, err := dist.Lookup("weibull", map[string]float64{"shape": 2, "scale": 3})
	require.NoError(t, err)

	assert.InDelta(t, 1-math.Exp(-1), p.CDF(3), tol, "CDF at the scale")
	assert.InDelta(t, 3*math.Sqrt(math.Ln2), *p.Median, tol, "median closed form")
	assert.InDelta(t, p.PDF(2)/p.Survival(2), p.Hazard(2), tol,
		"hazard identity at x=2")
	assert.InDelta(t, -math.Log(p.Survival(2)), p.CumulativeHazard(2), tol,
		"cumulative hazard identity at x=2")
}

// TestLaplace_Symmetry checks the double-exponential center.
func TestLaplace_Symmetry(t *testing.T) {
	p, err := dist.Lookup("laplace", map[string]float64{"mu": 1, "scale": 0.5})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, p.CDF(1), tol, "half the mass sits below mu")
	assert.Equal(t, 1.0, *p.Median, "median mu")
	assert.Equal(t, 0.0, *p.Skewness, "symmetric")
	assert.InDelta(t, 0.5, *p.Variance, tol, "variance 2·scale²")
}

// TestPareto_PowerTail pins the survival power law and the direct
// complementary quantile.
func TestPareto_PowerTail(t *testing.T) {
	p, err := dist.Lookup("pareto", map[string]float64{"alpha": 3})
	require.NoError(t, err)

	assert.InDelta(t, 0.125, p.Survival(2), tol, "SF(2) = 2⁻³ with xm=1")
	assert.InDelta(t, 1.5, *p.Mean, tol, "mean αxm/(α−1)")
	q := 1e-9
	assert.InDelta(t, math.Pow(q, -1.0/3), p.QuantileComplement(q), 1e-6,
		"deep-tail complementary quantile")

	heavy, err := dist.Lookup("pareto", map[string]float64{"alpha": 0.5})
	require.NoError(t, err)
	assert.Nil(t, heavy.Mean, "α≤1 has no mean")
	assert.Nil(t, heavy.Variance, "α≤2 has no variance")
}

// TestPoisson_DiscreteContract checks the mass function and the nil fields
// the discrete contract requires.
func TestPoisson_DiscreteContract(t *testing.T) {
	p, err := dist.Lookup("poisson", map[string]float64{"lambda": 4})
	require.NoError(t, err)

	assert.True(t, p.Discrete, "counting-measure distribution")
	assert.InDelta(t, 8*math.Exp(-4), p.PDF(2), tol, "P(X=2) = e⁻⁴4²/2!")
	assert.Nil(t, p.Quantile, "discrete quantile stays nil")
	assert.Nil(t, p.Hazard, "discrete hazard stays nil")
	assert.NotNil(t, p.Survival, "survival derives from the CDF")
	assert.InDelta(t, 1-p.CDF(2), p.Survival(2), tol, "survival complement")
	assert.Equal(t, 4.0, *p.Mean, "mean lambda")
	assert.Equal(t, 4.0, *p.Variance, "variance lambda")
}

// TestBinomial_MassAndMoments pins a hand-computed mass point.
func TestBinomial_MassAndMoments(t *testing.T) {
	p, err := dist.Lookup("binomial", map[string]float64{"n": 10, "p": 0.3})
	require.NoError(t, err)

	want := 120 * math.Pow(0.3, 3) * math.Pow(0.7, 7)
	assert.InDelta(t, want, p.PDF(3), tol, "P(X=3) = C(10,3)·0.3³·0.7⁷")
	assert.InDelta(t, 3.0, *p.Mean, tol, "mean np")
	assert.InDelta(t, 2.1, *p.Variance, tol, "variance np(1−p)")
	assert.True(t, p.Discrete, "counting-measure distribution")
	assert.Nil(t, p.Quantile, "discrete quantile stays nil")
}

// TestNames_EnumeratesCanonicalSet checks the sorted canonical inventory.
func TestNames_EnumeratesCanonicalSet(t *testing.T) {
	want := []string{
		"beta", "binomial", "chisquared", "exponential", "f", "gamma",
		"laplace", "lognormal", "normal", "pareto", "poisson", "studentst",
		"uniform", "weibull",
	}
	assert.Equal(t, want, dist.Names(), "canonical names, sorted, no aliases")
}
