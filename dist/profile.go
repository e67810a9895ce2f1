package dist

import "math"

// Profile is the resolved form of a named distribution: evaluation closures
// over float64 plus precomputed moments. Any field may be nil, meaning the
// quantity has no closed form (or no meaning) for that distribution.
//
// For discrete distributions the function fields evaluate at real x by the
// usual conventions (PDF is the probability mass at integral x, CDF is the
// right-continuous step function); Quantile and Hazard are nil.
type Profile struct {
	// Name is the canonical distribution name, after alias resolution.
	Name string
	// Discrete reports whether the distribution is counting-measure based.
	Discrete bool

	PDF                func(x float64) float64
	LogPDF             func(x float64) float64
	CDF                func(x float64) float64
	Survival           func(x float64) float64
	Quantile           func(p float64) float64
	QuantileComplement func(q float64) float64
	Hazard             func(x float64) float64
	CumulativeHazard   func(x float64) float64

	Mean           *float64
	Variance       *float64
	StdDev         *float64
	Mode           *float64
	Median         *float64
	Skewness       *float64
	Kurtosis       *float64
	KurtosisExcess *float64
	Entropy        *float64
}

// fp boxes a moment value.
func fp(v float64) *float64 { return &v }

// finish derives the secondary fields a builder left nil from the primary
// ones: survival from CDF, the complementary quantile from the quantile,
// hazard and cumulative hazard from density and survival, and the
// straightforward moment completions. Builders override any of these by
// setting the field to a sharper closed form before finish runs.
func finish(p *Profile) *Profile {
	if p.Survival == nil && p.CDF != nil {
		cdf := p.CDF
		p.Survival = func(x float64) float64 { return 1 - cdf(x) }
	}
	if p.QuantileComplement == nil && p.Quantile != nil {
		quantile := p.Quantile
		p.QuantileComplement = func(q float64) float64 { return quantile(1 - q) }
	}
	if !p.Discrete && p.Hazard == nil && p.PDF != nil && p.Survival != nil {
		pdf, sf := p.PDF, p.Survival
		p.Hazard = func(x float64) float64 { return pdf(x) / sf(x) }
	}
	if p.CumulativeHazard == nil && p.Survival != nil {
		sf := p.Survival
		p.CumulativeHazard = func(x float64) float64 { return -math.Log(sf(x)) }
	}
	if p.StdDev == nil && p.Variance != nil {
		p.StdDev = fp(math.Sqrt(*p.Variance))
	}
	if p.Kurtosis == nil && p.KurtosisExcess != nil {
		p.Kurtosis = fp(*p.KurtosisExcess + 3)
	}
	if p.Median == nil && p.Quantile != nil {
		p.Median = fp(p.Quantile(0.5))
	}
	return p
}
