package ecs

import "golang.org/x/sync/errgroup"

// ==============================================
// VectorOps - SIMD-friendly batch operators
// ==============================================
//
// These kernels walk a component's dense, contiguous span directly rather
// than going through the sparse-set Get/Set indirection, so the compiler
// has a straight-line loop it can vectorize. They operate on ComponentPool
// spans (Components()) or an Archetype Chunk's ComponentArray span
// interchangeably, since both resolve to a contiguous []T.

// UpdatePositions advances every Vector2 in positions by velocities scaled
// by dt. positions and velocities must be equal length (caller's
// responsibility: this mirrors a zipped SIMD kernel, not a safe API).
func UpdatePositions(positions []Vector2, velocities []Vector2, dt float64) {
	n := len(positions)
	i := 0
	for ; i+4 <= n; i += 4 {
		for k := 0; k < 4; k++ {
			positions[i+k].X += velocities[i+k].X * dt
			positions[i+k].Y += velocities[i+k].Y * dt
		}
	}
	for ; i < n; i++ {
		positions[i].X += velocities[i].X * dt
		positions[i].Y += velocities[i].Y * dt
	}
}

// ApplyGravity adds gravity*dt to the Y component of every velocity whose
// matching gravityScale is non-zero.
func ApplyGravity(velocities []Vector2, gravityScale []float64, gravity, dt float64) {
	n := len(velocities)
	for i := 0; i < n && i < len(gravityScale); i++ {
		if gravityScale[i] == 0 {
			continue
		}
		velocities[i].Y += gravity * gravityScale[i] * dt
	}
}

// ScaleVectors multiplies every vector in vectors by factor in place.
func ScaleVectors(vectors []Vector2, factor float64) {
	for i := range vectors {
		vectors[i].X *= factor
		vectors[i].Y *= factor
	}
}

// ApplyFriction exponentially decays every velocity toward zero by
// friction*dt per axis, clamping so friction never reverses direction.
func ApplyFriction(velocities []Vector2, friction []float64, dt float64) {
	n := len(velocities)
	for i := 0; i < n && i < len(friction); i++ {
		damp := friction[i] * dt
		if damp > 1 {
			damp = 1
		}
		velocities[i].X -= velocities[i].X * damp
		velocities[i].Y -= velocities[i].Y * damp
	}
}

// ParallelForEachChunk fans fn out across every chunk of archetype a using
// an errgroup worker pool, for callers processing enough entities per
// chunk (§4.4/§4.5's "opt-in parallel batch processing") that the
// goroutine overhead pays for itself. fn must only touch the data owned by
// its own chunk: chunks never overlap in memory, so this is safe, but the
// caller is responsible for not reaching into a sibling chunk.
func ParallelForEachChunk(a *Archetype, fn func(chunk *Chunk) error) error {
	var g errgroup.Group
	for _, chunk := range a.Chunks() {
		chunk := chunk
		g.Go(func() error {
			return fn(chunk)
		})
	}
	return g.Wait()
}
