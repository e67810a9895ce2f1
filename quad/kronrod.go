// Package quad Gauss–Kronrod tableau construction.
//
// The Go backend ships no precomputed Kronrod tables, so the catalog derives
// them: Laurie's algorithm (Math. Comp. 66, 1997) extends the Legendre
// recurrence coefficients to the Jacobi–Kronrod matrix of the 2n+1 point
// rule, whose Golub–Welsch eigenproblem yields the Kronrod nodes and weights.
// The embedded n-point Gauss weights come from the ordinary Legendre Jacobi
// matrix; by the interlacing property the Gauss nodes coincide with the
// odd-indexed Kronrod nodes (ascending order), so the Gauss sub-sum reuses
// the Kronrod evaluations and FunctionCalls stays equal to the point count.
package quad

// kronrodExtension computes the 2n+1 Jacobi–Kronrod recurrence coefficients
// from floor(3n/2)+1 diagonal and ceil(3n/2)+1 squared off-diagonal
// coefficients of the underlying weight (offsq[0] = μ₀). Laurie's mixed-moment
// recursion, zero-based.
func kronrodExtension(n int, diag0, offsq0 []float64) (diag, offsq []float64) {
	diag = make([]float64, 2*n+1)
	offsq = make([]float64, 2*n+1)
	copy(diag, diag0[:3*n/2+1])
	copy(offsq, offsq0[:(3*n+1)/2+1])

	s := make([]float64, n/2+2)
	t := make([]float64, n/2+2)
	t[1] = offsq[n+1]
	for m := 0; m <= n-2; m++ {
		u := 0.0
		for k := (m + 1) / 2; k >= 0; k-- {
			l := m - k
			u += (diag[k+n+1]-diag[l])*t[k+1] + offsq[k+n+1]*s[k] - offsq[l]*s[k+1]
			s[k+1] = u
		}
		s, t = t, s
	}
	for j := n / 2; j >= 0; j-- {
		s[j+1] = s[j]
	}
	for m := n - 1; m <= 2*n-3; m++ {
		u := 0.0
		j := 0
		for k := m + 1 - n; k <= (m-1)/2; k++ {
			l := m - k
			j = n - 1 - l
			u += offsq[l]*s[j+2] - (diag[k+n+1]-diag[l])*t[j+1] - offsq[k+n+1]*s[j+1]
			s[j+1] = u
		}
		if k := (m + 1) / 2; m%2 == 0 {
			diag[k+n+1] = diag[k] + (s[j+1]-offsq[k+n+1]*s[j+2])/t[j+2]
		} else {
			offsq[k+n+1] = s[j+1] / s[j+2]
		}
		s, t = t, s
	}
	diag[2*n] = diag[n-1] - offsq[2*n]*s[1]/t[1]
	return diag, offsq
}

// newKronrod builds the embedded Gauss–Kronrod pair for the full extension
// size points = 2n+1.
func newKronrod(p Precision, points int) (Integrator, error) {
	n := (points - 1) / 2

	diag0, offsq0 := legendreCoeffs((3*n+1)/2 + 1)
	kdiag, koffsq := kronrodExtension(n, diag0, offsq0)
	nodes, weights, err := golubWelsch(kdiag, koffsq)
	if err != nil {
		return nil, err
	}

	gdiag, goffsq := legendreCoeffs(n)
	_, gaussWeights, err := golubWelsch(gdiag, goffsq)
	if err != nil {
		return nil, err
	}

	return &fixedRule{
		kind:         GaussKronrod,
		prec:         p,
		mappable:     true,
		nodes:        nodes,
		weights:      weights,
		gaussWeights: gaussWeights,
	}, nil
}
