/*Package physics contains the passes which make up a single simulation step:
softened gravity, semi-implicit Euler integration, pairwise collision
resolution, and reflection off the walls of the domain.

Every pass operates in place on a particle.Set.
*/
package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Gravity computes the net softened gravitational force on every particle.
// The softened pair force has magnitude G m_i m_j / (r^2 + eps^2) and points
// along the line between the two centers.
type Gravity struct {
	G, Softening float64

	workers    int
	workspaces []workspace
}

// NewGravity creates a force calculator which splits the pair loop across
// the given number of workers. Any value less than two results in a serial
// calculation.
func NewGravity(G, softening float64, workers int) *Gravity {
	if workers < 1 {
		workers = 1
	}
	return &Gravity{G: G, Softening: softening, workers: workers}
}

// Workers returns the number of goroutines used by Forces.
func (g *Gravity) Workers() int { return g.workers }

// pairForce returns the force exerted on the particle at xi by the particle
// at xj. Coincident particles exert no force on one another.
func (g *Gravity) pairForce(xi, xj r2.Vec, mi, mj float64) (r2.Vec, bool) {
	dx := r2.Sub(xj, xi)
	r2Mag := r2.Norm2(dx)
	if r2Mag == 0 {
		return r2.Vec{}, false
	}
	r := math.Sqrt(r2Mag)

	f := g.G * mi * mj / (r2Mag + g.Softening*g.Softening)
	return r2.Scale(f/r, dx), true
}

// Forces writes the net force on each particle into out, which must be the
// same length as xs. A Gravity which was not made by NewGravity computes
// forces serially. Each unordered pair is evaluated once and its force is
// applied to both members with opposite signs.
func (g *Gravity) Forces(xs []r2.Vec, ms []float64, out []r2.Vec) {
	if g.workers <= 1 {
		for i := range out {
			out[i] = r2.Vec{}
		}
		g.accumulate(xs, ms, out, 0, 1)
		return
	}

	g.parallelForces(xs, ms, out)
}

// accumulate adds the forces from every pair (i, j > i) to buf, where i
// starts at start and increases in steps of stride.
func (g *Gravity) accumulate(
	xs []r2.Vec, ms []float64, buf []r2.Vec, start, stride int,
) {
	for i := start; i < len(xs); i += stride {
		for j := i + 1; j < len(xs); j++ {
			f, ok := g.pairForce(xs[i], xs[j], ms[i], ms[j])
			if !ok {
				continue
			}
			buf[i] = r2.Add(buf[i], f)
			buf[j] = r2.Sub(buf[j], f)
		}
	}
}
