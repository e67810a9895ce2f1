// Package bridge exposes the quad catalog through opaque integer handles,
// the shape a foreign-function boundary needs when ordinary Go ownership is
// unavailable on the far side.
//
// 🚀 Why handles?
//
//	A host language embedding this library cannot hold a Go interface value.
//	It can hold an integer: Open returns one, every accessor validates it
//	before touching the integrator behind it, and Close releases it. The
//	registry design (rather than raw pointers) makes the classic
//	double-destroy and use-after-destroy faults unreachable: a stale handle
//	simply no longer resolves.
//
// Failure contract — every accessor is total:
//   - Integrate / IntegrateInterval on an invalid handle return the
//     canonical failure Result {0, +Inf, 0, 0, 0, false}.
//   - PointsOf returns 0, PrecisionOf returns Float64, KindOf returns
//     GaussLegendre. The KindOf default is a silent fallback, not an error
//     signal — callers who need liveness information must use Alive.
//   - Close on an unknown or already-closed handle is a no-op.
//
// ⚙️ Usage:
//
//	h, err := bridge.Open(quad.Float64, quad.KronrodOptions{Points: 21})
//	if err != nil { ... }
//	defer bridge.Close(h)
//
//	res := bridge.IntegrateInterval(h, f, 0, math.Pi)
//
// The registry is safe for concurrent use; see package quad for the
// concurrency contract of the integrators themselves.
package bridge
