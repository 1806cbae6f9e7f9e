package gravbox

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/gravbox/particle"
	"github.com/phil-mansfield/gravbox/physics"
)

// ErrConfig is wrapped by every error returned from Config.CheckInit.
var ErrConfig = errors.New("invalid simulation configuration")

// Config holds the constants of a simulation. A Simulation copies its Config
// at construction, so later changes to the caller's value have no effect.
type Config struct {
	// Particle count and geometry.
	N                int
	DomainSize       float64
	Radius           float64
	MinMass, MaxMass float64

	// Physical constants.
	G           float64
	Dt          float64
	Softening   float64
	Restitution float64

	Seed uint64

	// Optional.
	Workers      int
	ImpulseModel physics.ImpulseModel
}

// DefaultConfig returns the parameters of the 100-particle gravity demo.
func DefaultConfig() Config {
	return Config{
		N:           100,
		DomainSize:  100,
		Radius:      0.5,
		MinMass:     1,
		MaxMass:     5,
		G:           1,
		Dt:          0.05,
		Softening:   0.5,
		Restitution: 1,
		Workers:     1,
	}
}

func configErr(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// CheckInit returns an error describing the first invalid field of con, or
// nil if con describes a runnable simulation.
func (con *Config) CheckInit() error {
	vals := []struct {
		name string
		x    float64
	}{
		{"DomainSize", con.DomainSize}, {"Radius", con.Radius},
		{"MinMass", con.MinMass}, {"MaxMass", con.MaxMass},
		{"G", con.G}, {"Dt", con.Dt},
		{"Softening", con.Softening}, {"Restitution", con.Restitution},
	}
	for _, v := range vals {
		if !finite(v.x) {
			return configErr("%s must be finite, but is %g.", v.name, v.x)
		}
	}

	switch {
	case con.N <= 0:
		return configErr("N must be positive, but is %d.", con.N)
	case con.DomainSize <= 0:
		return configErr(
			"DomainSize must be positive, but is %g.", con.DomainSize,
		)
	case con.Radius <= 0:
		return configErr("Radius must be positive, but is %g.", con.Radius)
	case 2*con.Radius >= con.DomainSize:
		return configErr(
			"Particle diameter %g does not fit inside a domain of size %g.",
			2*con.Radius, con.DomainSize,
		)
	case con.MinMass <= 0:
		return configErr("MinMass must be positive, but is %g.", con.MinMass)
	case con.MaxMass < con.MinMass:
		return configErr(
			"Mass range [%g, %g] is empty.", con.MinMass, con.MaxMass,
		)
	case con.Dt <= 0:
		return configErr("Dt must be positive, but is %g.", con.Dt)
	case con.Softening < 0:
		return configErr(
			"Softening must be non-negative, but is %g.", con.Softening,
		)
	case con.Restitution < 0 || con.Restitution > 1:
		return configErr(
			"Restitution must be in the range [0, 1], but is %g.",
			con.Restitution,
		)
	case con.Workers < 0:
		return configErr(
			"Workers must be non-negative, but is %d.", con.Workers,
		)
	case con.ImpulseModel >= physics.EndImpulseModel:
		return configErr("Unrecognized ImpulseModel, %s.", con.ImpulseModel)
	}

	return nil
}

// CheckSet returns an error describing the first particle in ps which could
// not have been produced under con: a count or radius which disagrees with
// con, a non-finite position or velocity, a position outside
// [Radius, DomainSize - Radius]^2, or a mass outside [MinMass, MaxMass].
func (con *Config) CheckSet(ps *particle.Set) error {
	if ps.Len() != con.N {
		return configErr(
			"Config expects %d particles, but the set contains %d.",
			con.N, ps.Len(),
		)
	} else if ps.Radius() != con.Radius {
		return configErr(
			"Config radius is %g, but the set's radius is %g.",
			con.Radius, ps.Radius(),
		)
	}

	low, high := con.Radius, con.DomainSize-con.Radius
	for i := range ps.Xs {
		x, v, m := ps.Xs[i], ps.Vs[i], ps.Ms[i]
		switch {
		case !finite(x.X) || !finite(x.Y):
			return configErr(
				"Particle %d has non-finite position (%g, %g).", i, x.X, x.Y,
			)
		case !finite(v.X) || !finite(v.Y):
			return configErr(
				"Particle %d has non-finite velocity (%g, %g).", i, v.X, v.Y,
			)
		case x.X < low || x.X > high || x.Y < low || x.Y > high:
			return configErr(
				"Particle %d at (%g, %g) must be in the range [%g, %g] "+
					"along both axes.", i, x.X, x.Y, low, high,
			)
		case !(m >= con.MinMass && m <= con.MaxMass):
			return configErr(
				"Particle %d has mass %g outside of the range [%g, %g].",
				i, m, con.MinMass, con.MaxMass,
			)
		}
	}
	return nil
}

// Intensity maps a mass onto [0, 1] using the configured mass range. If the
// range is a single value, Intensity returns 0.
func (con *Config) Intensity(m float64) float64 {
	if con.MaxMass == con.MinMass {
		return 0
	}
	return (m - con.MinMass) / (con.MaxMass - con.MinMass)
}
