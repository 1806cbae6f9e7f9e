/*Package particle contains the particle state of a simulation and the routines
used to generate its initial conditions.

Particles are stored as parallel slices of positions, velocities, and masses.
*/
package particle

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Set is a fixed-size collection of circular particles which all share the
// same radius. A particle's index is its identity for the lifetime of the
// Set.
//
// Xs and Vs are updated in place by the physics passes. Ms must not be
// modified after the Set has been handed to a simulation.
type Set struct {
	Xs, Vs []r2.Vec
	Ms     []float64

	radius float64
}

// NewSet allocates a zeroed Set with n particles of the given radius.
func NewSet(n int, radius float64) *Set {
	return &Set{
		Xs:     make([]r2.Vec, n),
		Vs:     make([]r2.Vec, n),
		Ms:     make([]float64, n),
		radius: radius,
	}
}

// FromSlices wraps existing position, velocity and mass slices in a Set. The
// slices are not copied.
func FromSlices(xs, vs []r2.Vec, ms []float64, radius float64) (*Set, error) {
	if len(xs) != len(vs) || len(xs) != len(ms) {
		return nil, fmt.Errorf(
			"Position, velocity, and mass counts must match, but are %d, %d, "+
				"and %d.", len(xs), len(vs), len(ms),
		)
	}
	return &Set{Xs: xs, Vs: vs, Ms: ms, radius: radius}, nil
}

// Len returns the number of particles in the set.
func (ps *Set) Len() int { return len(ps.Xs) }

// Radius returns the radius shared by every particle.
func (ps *Set) Radius() float64 { return ps.radius }

// Copy returns a deep copy of ps.
func (ps *Set) Copy() *Set {
	out := NewSet(ps.Len(), ps.radius)
	ps.CopyInto(out)
	return out
}

// CopyInto overwrites the contents of out with the contents of ps. out must
// have the same length as ps.
func (ps *Set) CopyInto(out *Set) {
	if out.Len() != ps.Len() {
		panic(fmt.Sprintf(
			"Cannot copy a Set of length %d into a Set of length %d.",
			ps.Len(), out.Len(),
		))
	}
	copy(out.Xs, ps.Xs)
	copy(out.Vs, ps.Vs)
	copy(out.Ms, ps.Ms)
	out.radius = ps.radius
}
