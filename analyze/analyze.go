/*Package analyze computes conserved quantities and constraint checks for
particle sets.
*/
package analyze

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox/particle"
)

// KineticEnergy returns sum(m v^2 / 2).
func KineticEnergy(ps *particle.Set) float64 {
	sum := 0.0
	for i := range ps.Vs {
		sum += 0.5 * ps.Ms[i] * r2.Norm2(ps.Vs[i])
	}
	return sum
}

// Momentum returns sum(m v).
func Momentum(ps *particle.Set) r2.Vec {
	p := r2.Vec{}
	for i := range ps.Vs {
		p = r2.Add(p, r2.Scale(ps.Ms[i], ps.Vs[i]))
	}
	return p
}

// TotalMass returns sum(m).
func TotalMass(ps *particle.Set) float64 {
	sum := 0.0
	for _, m := range ps.Ms {
		sum += m
	}
	return sum
}

// CenterOfMassVelocity returns the mass-weighted mean velocity.
func CenterOfMassVelocity(ps *particle.Set) r2.Vec {
	return r2.Scale(1/TotalMass(ps), Momentum(ps))
}

// MinSeparation returns the smallest center-to-center distance in the set
// and the indices of the pair which attains it. If the set has fewer than
// two particles, d is +Inf and i = j = -1.
func MinSeparation(ps *particle.Set) (d float64, i, j int) {
	d2 := math.Inf(+1)
	i, j = -1, -1
	for a := range ps.Xs {
		for b := a + 1; b < len(ps.Xs); b++ {
			r2Mag := r2.Norm2(r2.Sub(ps.Xs[b], ps.Xs[a]))
			if r2Mag < d2 {
				d2, i, j = r2Mag, a, b
			}
		}
	}
	return math.Sqrt(d2), i, j
}

// Contained returns true if every particle lies inside
// [radius, size - radius] along both axes.
func Contained(ps *particle.Set, size float64) bool {
	low, high := ps.Radius(), size-ps.Radius()
	for _, x := range ps.Xs {
		if x.X < low || x.X > high || x.Y < low || x.Y > high {
			return false
		}
	}
	return true
}
