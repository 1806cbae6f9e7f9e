package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox/particle"
)

// StepStats counts the constraint events which occurred during one call to
// Integrator.Advance.
type StepStats struct {
	// Contacts is the number of overlapping pairs which were separated.
	Contacts int
	// Impulses is the number of those contacts whose velocities changed.
	Impulses int
	// WallHits is the number of (particle, axis) wall contacts.
	WallHits int
}

// Kick updates every velocity with v <- v + (F/m) dt.
func Kick(ps *particle.Set, fs []r2.Vec, dt float64) {
	for i := range ps.Vs {
		ps.Vs[i] = r2.Add(ps.Vs[i], r2.Scale(dt/ps.Ms[i], fs[i]))
	}
}

// Drift updates every position with x <- x + v dt.
func Drift(ps *particle.Set, dt float64) {
	for i := range ps.Xs {
		ps.Xs[i] = r2.Add(ps.Xs[i], r2.Scale(dt, ps.Vs[i]))
	}
}

// Integrator advances a particle set through one semi-implicit Euler step
// and then enforces the collision and wall constraints.
type Integrator struct {
	Dt       float64
	Collider *Collider
	Boundary *Boundary
}

// Advance kicks every particle, then drifts every particle, then resolves
// pairwise overlaps, then reflects particles off the walls. fs holds the
// forces at the start of the step.
func (in *Integrator) Advance(ps *particle.Set, fs []r2.Vec) StepStats {
	Kick(ps, fs, in.Dt)
	Drift(ps, in.Dt)

	stats := StepStats{}
	if in.Collider != nil {
		stats.Contacts, stats.Impulses = in.Collider.Resolve(ps)
	}
	if in.Boundary != nil {
		stats.WallHits = in.Boundary.Resolve(ps)
	}
	return stats
}
