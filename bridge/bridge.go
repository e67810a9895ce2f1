package bridge

import (
	"sync"

	"github.com/katalvlaran/numath/quad"
)

// Handle is an opaque reference to a registered integrator. The zero Handle
// is never valid.
type Handle uint64

// registry maps live handles to their integrators. Handles are never reused
// within a process, so a closed handle can only ever fail to resolve.
type registry struct {
	mu    sync.Mutex
	next  Handle
	table map[Handle]quad.Integrator
}

var reg = &registry{table: make(map[Handle]quad.Integrator)}

// Open constructs an integrator via the quad catalog and registers it. On
// construction failure the error is returned unchanged (errors.Is works
// against the quad sentinels) and no handle is issued — a failed Open can
// never produce a live handle.
func Open(p quad.Precision, cfg quad.Config) (Handle, error) {
	ig, err := quad.New(p, cfg)
	if err != nil {
		return 0, err
	}
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.next++
	h := reg.next
	reg.table[h] = ig
	return h, nil
}

// Close releases the integrator behind h. Closing an invalid or
// already-closed handle is a harmless no-op.
func Close(h Handle) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.table, h)
}

// Alive reports whether h currently resolves to an integrator.
func Alive(h Handle) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	_, ok := reg.table[h]
	return ok
}

// resolve looks a handle up without holding the lock across the integration
// call; integrators are immutable, so a resolved reference stays valid even
// if the handle is closed concurrently.
func resolve(h Handle) (quad.Integrator, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	ig, ok := reg.table[h]
	return ig, ok
}

// Integrate evaluates over the rule's natural domain; canonical failure
// Result on an invalid handle.
func Integrate(h Handle, f quad.Func) quad.Result {
	ig, ok := resolve(h)
	if !ok {
		return quad.Failure()
	}
	return ig.Integrate(f)
}

// IntegrateInterval evaluates over [a,b] with the per-kind bound semantics
// documented in package quad; canonical failure Result on an invalid handle.
func IntegrateInterval(h Handle, f quad.Func, a, b float64) quad.Result {
	ig, ok := resolve(h)
	if !ok {
		return quad.Failure()
	}
	return ig.IntegrateInterval(f, a, b)
}

// KindOf returns the rule kind, or GaussLegendre for an invalid handle.
// The default is a documented silent fallback; use Alive to distinguish.
func KindOf(h Handle) quad.Kind {
	ig, ok := resolve(h)
	if !ok {
		return quad.GaussLegendre
	}
	return ig.Describe().Kind
}

// PrecisionOf returns the configured precision, or Float64 for an invalid
// handle.
func PrecisionOf(h Handle) quad.Precision {
	ig, ok := resolve(h)
	if !ok {
		return quad.Float64
	}
	return ig.Describe().Precision
}

// PointsOf returns the fixed point count, quad.UnknownPoints for adaptive
// rules, and 0 for an invalid handle.
func PointsOf(h Handle) int {
	ig, ok := resolve(h)
	if !ok {
		return 0
	}
	return ig.Describe().Points
}

// CopyAbscissaWeights copies the fixed tableau behind h into the caller's
// buffers. It returns false — leaving both buffers untouched — when the
// handle is invalid, the rule has no fixed tableau, or either buffer is
// shorter than the point count. Partial writes never happen.
func CopyAbscissaWeights(h Handle, outNodes, outWeights []float64) bool {
	ig, ok := resolve(h)
	if !ok {
		return false
	}
	nodes, weights, ok := ig.AbscissaWeights()
	if !ok || len(outNodes) < len(nodes) || len(outWeights) < len(weights) {
		return false
	}
	copy(outNodes, nodes)
	copy(outWeights, weights)
	return true
}
