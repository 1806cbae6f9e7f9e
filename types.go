package gravbox

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// State is the phase of a Simulation.
type State uint8

const (
	// Idle means no step is in progress and the particles may be read.
	Idle State = iota
	// Stepping means a step is mutating the particles.
	Stepping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Stepping:
		return "Stepping"
	}
	return "Unknown"
}

// Particle is a read-only copy of one particle's state.
type Particle struct {
	X, V r2.Vec
	Mass float64
}

// Snapshot is a copy of a Simulation's particles taken between steps. It is
// what a renderer should draw from.
type Snapshot struct {
	Step      int64
	Radius    float64
	Particles []Particle

	minMass, maxMass float64
}

// Intensity maps the mass of particle i onto [0, 1] linearly across the
// configured mass range.
func (snap *Snapshot) Intensity(i int) float64 {
	con := Config{MinMass: snap.minMass, MaxMass: snap.maxMass}
	return con.Intensity(snap.Particles[i].Mass)
}
