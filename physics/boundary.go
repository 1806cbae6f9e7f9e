package physics

import (
	"math"

	"github.com/phil-mansfield/gravbox/particle"
)

// Boundary confines particles to the box [0, Size]^2 by reflecting them off
// its walls.
type Boundary struct {
	Size, Radius, Restitution float64
}

// Resolve clamps every particle whose edge has crossed a wall so that the
// edge is tangent to that wall, and sets the corresponding velocity
// component to point back into the box with its magnitude scaled by the
// restitution coefficient. Axes are handled independently. The number of
// (particle, axis) wall contacts is returned.
func (b *Boundary) Resolve(ps *particle.Set) int {
	hits := 0
	for i := range ps.Xs {
		if b.reflect(&ps.Xs[i].X, &ps.Vs[i].X) {
			hits++
		}
		if b.reflect(&ps.Xs[i].Y, &ps.Vs[i].Y) {
			hits++
		}
	}
	return hits
}

// reflect handles a single coordinate. The sign of the new velocity is
// forced rather than flipped so that a particle which is already moving
// inward keeps moving inward.
func (b *Boundary) reflect(x, v *float64) bool {
	if *x-b.Radius < 0 {
		*x = b.Radius
		*v = math.Abs(*v) * b.Restitution
		return true
	} else if *x+b.Radius > b.Size {
		*x = b.Size - b.Radius
		*v = -math.Abs(*v) * b.Restitution
		return true
	}
	return false
}
