package bridge_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numath/bridge"
	"github.com/katalvlaran/numath/quad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertCanonicalFailure pins the exact failure record
// {0, +Inf, 0, 0, 0, false} the ABI contract promises.
func assertCanonicalFailure(t *testing.T, res quad.Result) {
	t.Helper()
	assert.Equal(t, 0.0, res.Value)
	assert.True(t, math.IsInf(res.EstimatedError, 1))
	assert.Equal(t, 0.0, res.L1Norm)
	assert.Zero(t, res.Iterations)
	assert.Zero(t, res.FunctionCalls)
	assert.False(t, res.Converged)
}

// TestOpen_FailurePropagates: construction errors surface unchanged and no
// handle is issued.
func TestOpen_FailurePropagates(t *testing.T) {
	h, err := bridge.Open(quad.Float64, quad.LegendreOptions{Points: 13})
	assert.ErrorIs(t, err, quad.ErrUnsupportedPointCount)
	assert.Zero(t, h, "a failed Open never issues a handle")
	assert.False(t, bridge.Alive(h))

	h, err = bridge.Open(quad.Float80, quad.LegendreOptions{Points: 10})
	assert.ErrorIs(t, err, quad.ErrPrecisionUnavailable)
	assert.Zero(t, h)
}

// TestInvalidHandle_Totality: every entry point degrades to its documented
// default on a handle that never existed.
func TestInvalidHandle_Totality(t *testing.T) {
	const bogus = bridge.Handle(0xDEADBEEF)
	f := func(x float64) float64 { return x }

	assertCanonicalFailure(t, bridge.Integrate(bogus, f))
	assertCanonicalFailure(t, bridge.IntegrateInterval(bogus, f, 0, 1))
	assert.Equal(t, quad.GaussLegendre, bridge.KindOf(bogus), "documented silent default")
	assert.Equal(t, quad.Float64, bridge.PrecisionOf(bogus))
	assert.Zero(t, bridge.PointsOf(bogus))

	nodes := make([]float64, 64)
	weights := make([]float64, 64)
	assert.False(t, bridge.CopyAbscissaWeights(bogus, nodes, weights))
	assert.Equal(t, 0.0, nodes[0], "buffers stay untouched")
}

// TestHandle_Lifecycle: open, use, close, then observe the stale handle
// degrade instead of faulting.
func TestHandle_Lifecycle(t *testing.T) {
	h, err := bridge.Open(quad.Float64, quad.KronrodOptions{Points: 15})
	require.NoError(t, err)
	require.True(t, bridge.Alive(h))

	assert.Equal(t, quad.GaussKronrod, bridge.KindOf(h))
	assert.Equal(t, 15, bridge.PointsOf(h))
	assert.Equal(t, quad.Float64, bridge.PrecisionOf(h))

	res := bridge.IntegrateInterval(h, math.Cos, 0, 1)
	assert.InDelta(t, math.Sin(1), res.Value, 1e-12)

	bridge.Close(h)
	assert.False(t, bridge.Alive(h))
	assertCanonicalFailure(t, bridge.Integrate(h, math.Cos))

	// Double close is a no-op, not undefined behavior.
	assert.NotPanics(t, func() { bridge.Close(h) })
}

// TestHandles_DestructionOrderIndependence: N independent integrators, used
// once each, closed in arbitrary order — results computed before destruction
// are unaffected.
func TestHandles_DestructionOrderIndependence(t *testing.T) {
	const n = 6
	handles := make([]bridge.Handle, n)
	values := make([]float64, n)
	f := func(x float64) float64 { return x * x }

	for i := range handles {
		h, err := bridge.Open(quad.Float64, quad.LegendreOptions{Points: 10})
		require.NoError(t, err)
		handles[i] = h
		values[i] = bridge.IntegrateInterval(h, f, 0, 1).Value
	}
	for _, v := range values {
		assert.InDelta(t, 1.0/3, v, 1e-13, "no shared aliasing between instances")
	}

	// Close in a scrambled order.
	for _, i := range []int{3, 0, 5, 1, 4, 2} {
		bridge.Close(handles[i])
		assert.False(t, bridge.Alive(handles[i]))
	}
}

// TestCopyAbscissaWeights_CapacityGuard: short buffers are rejected without
// partial writes.
func TestCopyAbscissaWeights_CapacityGuard(t *testing.T) {
	h, err := bridge.Open(quad.Float64, quad.LegendreOptions{Points: 20})
	require.NoError(t, err)
	defer bridge.Close(h)

	short := make([]float64, 10)
	full := make([]float64, 20)
	assert.False(t, bridge.CopyAbscissaWeights(h, short, full), "node buffer too short")
	assert.False(t, bridge.CopyAbscissaWeights(h, full, short), "weight buffer too short")
	for _, v := range short {
		assert.Equal(t, 0.0, v, "no partial writes on failure")
	}

	nodes := make([]float64, 20)
	weights := make([]float64, 20)
	require.True(t, bridge.CopyAbscissaWeights(h, nodes, weights))
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	assert.InDelta(t, 2.0, sum, 1e-12)

	// Adaptive rules expose no tableau.
	ah, err := bridge.Open(quad.Float64, quad.DefaultTanhSinhOptions())
	require.NoError(t, err)
	defer bridge.Close(ah)
	assert.False(t, bridge.CopyAbscissaWeights(ah, nodes, weights))
	assert.Equal(t, quad.UnknownPoints, bridge.PointsOf(ah))
}
