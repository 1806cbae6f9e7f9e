package particle

import (
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// DefaultMaxAttempts is the number of candidate positions tried for each
	// particle before its placement is allowed to overlap its neighbors.
	DefaultMaxAttempts = 1000
	// DefaultMaxSpeed bounds each initial velocity component to
	// [-DefaultMaxSpeed, +DefaultMaxSpeed].
	DefaultMaxSpeed = 0.5
)

// Rand is a source of uniform random numbers in [0, 1). *rand.Rand from
// golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Float64() float64
}

// Initializer generates random, non-overlapping initial conditions inside
// the box [0, Size]^2.
type Initializer struct {
	N                int
	Size, Radius     float64
	MinMass, MaxMass float64

	// Optional. Zero values are replaced by DefaultMaxAttempts and
	// DefaultMaxSpeed.
	MaxAttempts int
	MaxSpeed    float64
}

func uniform(r Rand, low, high float64) float64 {
	return low + (high-low)*r.Float64()
}

// Populate creates a new Set. All masses are drawn first, then positions are
// placed one particle at a time in index order, then velocities are drawn.
//
// Each position is rejection sampled against the particles which have
// already been placed. If MaxAttempts candidates all overlap, the particle is
// placed at one more random position without any overlap check; relaxed
// counts how many times this happened.
func (in *Initializer) Populate(r Rand) (ps *Set, relaxed int) {
	maxAttempts := in.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	maxSpeed := in.MaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = DefaultMaxSpeed
	}

	ps = NewSet(in.N, in.Radius)

	for i := range ps.Ms {
		ps.Ms[i] = uniform(r, in.MinMass, in.MaxMass)
	}

	for i := range ps.Xs {
		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			x := in.samplePosition(r)
			if in.vacant(ps.Xs[:i], x) {
				ps.Xs[i] = x
				placed = true
				break
			}
		}

		if !placed {
			ps.Xs[i] = in.samplePosition(r)
			relaxed++
		}
	}

	for i := range ps.Vs {
		ps.Vs[i] = r2.Vec{
			X: uniform(r, -maxSpeed, maxSpeed),
			Y: uniform(r, -maxSpeed, maxSpeed),
		}
	}

	return ps, relaxed
}

func (in *Initializer) samplePosition(r Rand) r2.Vec {
	x := uniform(r, in.Radius, in.Size-in.Radius)
	y := uniform(r, in.Radius, in.Size-in.Radius)
	return r2.Vec{X: x, Y: y}
}

// vacant returns true if x is further than two radii from every point in
// placed.
func (in *Initializer) vacant(placed []r2.Vec, x r2.Vec) bool {
	minDist2 := 4 * in.Radius * in.Radius
	for _, p := range placed {
		if r2.Norm2(r2.Sub(p, x)) <= minDist2 {
			return false
		}
	}
	return true
}
