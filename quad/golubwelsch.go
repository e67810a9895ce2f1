// Package quad tableau generation: Golub–Welsch nodes and weights from the
// three-term recurrence of each orthogonal polynomial family.
//
// Every fixed-node family is described by its Jacobi matrix — the symmetric
// tridiagonal matrix whose diagonal holds the recurrence coefficients a_k and
// whose off-diagonal holds √b_k. The quadrature nodes are its eigenvalues and
// the weights are μ₀·v₀² for the normalized eigenvectors v, where μ₀ is the
// zeroth moment of the weight function (Golub & Welsch, 1969).
package quad

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

// golubWelsch solves the symmetric tridiagonal eigenproblem for the family
// described by diag (a_0..a_{n-1}) and offsq (b_0..b_{n-1}), where offsq[0]
// carries the zeroth moment μ₀ and offsq[k], k ≥ 1, are the squared
// off-diagonal entries. Nodes are returned in ascending order.
func golubWelsch(diag, offsq []float64) (nodes, weights []float64, err error) {
	n := len(diag)
	mu0 := offsq[0]
	jm := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		jm.SetSym(i, i, diag[i])
		if i > 0 {
			jm.SetSym(i-1, i, math.Sqrt(offsq[i]))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(jm, true) {
		return nil, nil, ErrBackendFailure
	}
	nodes = eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)
	weights = make([]float64, n)
	for j := 0; j < n; j++ {
		v := vecs.At(0, j)
		weights[j] = mu0 * v * v
	}
	return nodes, weights, nil
}

// legendreCoeffs returns the first n Legendre recurrence coefficients:
// a_k = 0, b_0 = μ₀ = 2, b_k = k²/(4k²-1).
func legendreCoeffs(n int) (diag, offsq []float64) {
	diag = make([]float64, n)
	offsq = make([]float64, n)
	offsq[0] = 2
	for k := 1; k < n; k++ {
		fk := float64(k)
		offsq[k] = fk * fk / (4*fk*fk - 1)
	}
	return diag, offsq
}

// hermiteCoeffs returns the Hermite recurrence coefficients (weight e^{-x²}):
// a_k = 0, b_0 = μ₀ = √π, b_k = k/2.
func hermiteCoeffs(n int) (diag, offsq []float64) {
	diag = make([]float64, n)
	offsq = make([]float64, n)
	offsq[0] = math.Sqrt(math.Pi)
	for k := 1; k < n; k++ {
		offsq[k] = float64(k) / 2
	}
	return diag, offsq
}

// laguerreCoeffs returns the generalized Laguerre recurrence coefficients
// (weight x^α·e^{-x}): a_k = 2k+α+1, b_0 = μ₀ = Γ(α+1), b_k = k(k+α).
func laguerreCoeffs(n int, alpha float64) (diag, offsq []float64) {
	diag = make([]float64, n)
	offsq = make([]float64, n)
	offsq[0] = math.Gamma(alpha + 1)
	for k := 0; k < n; k++ {
		fk := float64(k)
		diag[k] = 2*fk + alpha + 1
		if k > 0 {
			offsq[k] = fk * (fk + alpha)
		}
	}
	return diag, offsq
}

// jacobiCoeffs returns the Jacobi recurrence coefficients (weight
// (1-x)^α·(1+x)^β) with μ₀ = 2^{α+β+1}·B(α+1,β+1).
func jacobiCoeffs(n int, alpha, beta float64) (diag, offsq []float64) {
	diag = make([]float64, n)
	offsq = make([]float64, n)
	ab := alpha + beta
	offsq[0] = math.Pow(2, ab+1) * mathext.Beta(alpha+1, beta+1)
	diag[0] = (beta - alpha) / (ab + 2)
	for k := 1; k < n; k++ {
		fk := float64(k)
		den := (2*fk + ab) * (2*fk + ab + 2)
		diag[k] = (beta*beta - alpha*alpha) / den
		if k == 1 {
			offsq[1] = 4 * (alpha + 1) * (beta + 1) /
				((ab + 2) * (ab + 2) * (ab + 3))
		} else {
			offsq[k] = 4 * fk * (fk + alpha) * (fk + beta) * (fk + ab) /
				((2*fk + ab) * (2*fk + ab) * (2*fk + ab + 1) * (2*fk + ab - 1))
		}
	}
	return diag, offsq
}
