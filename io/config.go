package io

import (
	"fmt"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/gravbox"
	"github.com/phil-mansfield/gravbox/physics"
)

const (
	ExampleSimulationFile = `[Simulation]

#######################
# Required Parameters #
#######################

# Number of particles.
Particles = 100

# Width of the square domain. Particles live in [0, DomainSize]^2.
DomainSize = 100

# Radius shared by every particle.
Radius = 0.5

# Masses are drawn uniformly from [MinMass, MaxMass].
MinMass = 1
MaxMass = 5

# Gravitational constant, time step, and softening length.
G = 1
Dt = 0.05
Softening = 0.5

# Coefficient of restitution for particle-particle and particle-wall
# collisions. 1 is perfectly elastic.
Restitution = 1

# Number of steps to run.
Steps = 5000

#######################
# Optional Parameters #
#######################

# Seed for the random initial conditions. If not set, the current time is
# used.
# Seed = 1

# Restitution law used by particle-particle collisions. One of
# [Reference | Newton]. Default is Reference.
# ImpulseModel = Reference

# Number of goroutines used for the gravity pass. Default is 1.
# Workers = 4

# Log progress every LogInterval steps. Default is 500.
# LogInterval = 500

# Start from the particles in this file instead of random initial
# conditions. One particle per line with the columns: x y vx vy m.
# Particles must match the number of lines in the file.
# InitialConditions = path/to/particles.txt

# Write a plot of kinetic energy and momentum against step to this file.
# PlotFile = energy.png

# Output files which are useful for profiling and debugging.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type SimulationConfig struct {
	SharedConfig

	// Required
	Particles          int
	DomainSize, Radius float64
	MinMass, MaxMass   float64
	G, Dt, Softening   float64
	Restitution        float64
	Steps              int

	// Optional
	Seed              int64
	ImpulseModel      string
	Workers           int
	LogInterval       int
	InitialConditions string
	PlotFile          string
}

type SimulationWrapper struct {
	Simulation SimulationConfig
}

func DefaultSimulationWrapper() *SimulationWrapper {
	con := SimulationConfig{}
	con.Seed = -1
	con.Restitution = 1
	con.Workers = 1
	con.LogInterval = 500
	return &SimulationWrapper{con}
}

func (con *SimulationConfig) ValidParticles() bool {
	return con.Particles > 0
}
func (con *SimulationConfig) ValidSteps() bool {
	return con.Steps >= 0
}
func (con *SimulationConfig) ValidSeed() bool {
	return con.Seed >= 0
}
func (con *SimulationConfig) ValidInitialConditions() bool {
	return con.InitialConditions != ""
}
func (con *SimulationConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

// ReadSimulationConfig reads the [Simulation] section of the given file.
// Values which are not set keep the defaults of DefaultSimulationWrapper.
func ReadSimulationConfig(fname string) (*SimulationConfig, error) {
	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Simulation, nil
}

// ParseSimulationConfig is identical to ReadSimulationConfig, except that the
// configuration is given as a string.
func ParseSimulationConfig(str string) (*SimulationConfig, error) {
	wrap := DefaultSimulationWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	return &wrap.Simulation, nil
}

// Config converts the file representation into the simulation's runtime
// configuration. seed is used if the file does not set Seed. The result has
// already passed gravbox.Config.CheckInit.
func (con *SimulationConfig) Config(seed uint64) (gravbox.Config, error) {
	if !con.ValidParticles() {
		return gravbox.Config{}, fmt.Errorf(
			"Invalid/non-existent 'Particles' value, %d.", con.Particles,
		)
	} else if !con.ValidSteps() {
		return gravbox.Config{}, fmt.Errorf(
			"'Steps' must be non-negative, but is %d.", con.Steps,
		)
	}

	model, err := physics.ParseImpulseModel(con.ImpulseModel)
	if err != nil {
		return gravbox.Config{}, err
	}

	if con.ValidSeed() {
		seed = uint64(con.Seed)
	}

	out := gravbox.Config{
		N:            con.Particles,
		DomainSize:   con.DomainSize,
		Radius:       con.Radius,
		MinMass:      con.MinMass,
		MaxMass:      con.MaxMass,
		G:            con.G,
		Dt:           con.Dt,
		Softening:    con.Softening,
		Restitution:  con.Restitution,
		Seed:         seed,
		Workers:      con.Workers,
		ImpulseModel: model,
	}

	if err := out.CheckInit(); err != nil {
		return gravbox.Config{}, err
	}
	return out, nil
}
