/*Package gravbox simulates a fixed population of circular particles which
attract each other through softened Newtonian gravity, collide elastically,
and bounce off the walls of a square box.

A Simulation is advanced one fixed time step at a time with Step. Renderers
read its state between steps through Snapshot or View.
*/
package gravbox

import (
	"log"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox/analyze"
	"github.com/phil-mansfield/gravbox/particle"
	"github.com/phil-mansfield/gravbox/physics"
)

// Simulation owns a particle set and advances it through time.
type Simulation struct {
	mu    sync.RWMutex
	state State

	con Config
	ps  *particle.Set

	gravity *physics.Gravity
	integ   *physics.Integrator
	forces  []r2.Vec

	steps   int64
	stats   physics.StepStats
	relaxed int
	log     bool
}

// New creates a Simulation with random initial conditions drawn from a
// generator seeded with con.Seed.
func New(con Config) (*Simulation, error) {
	if err := con.CheckInit(); err != nil {
		return nil, err
	}

	gen := rand.New(rand.NewSource(con.Seed))
	initer := &particle.Initializer{
		N: con.N, Size: con.DomainSize, Radius: con.Radius,
		MinMass: con.MinMass, MaxMass: con.MaxMass,
	}
	ps, relaxed := initer.Populate(gen)

	sim := newSimulation(con, ps)
	sim.relaxed = relaxed
	return sim, nil
}

// NewFromSet creates a Simulation which starts from a copy of the given
// particles. Every particle must satisfy con.CheckSet.
func NewFromSet(con Config, ps *particle.Set) (*Simulation, error) {
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	if err := con.CheckSet(ps); err != nil {
		return nil, err
	}
	return newSimulation(con, ps.Copy()), nil
}

func newSimulation(con Config, ps *particle.Set) *Simulation {
	sim := &Simulation{con: con, ps: ps, state: Idle}

	sim.gravity = physics.NewGravity(con.G, con.Softening, con.Workers)
	sim.integ = &physics.Integrator{
		Dt: con.Dt,
		Collider: &physics.Collider{
			Radius: con.Radius, Restitution: con.Restitution,
			Model: con.ImpulseModel,
		},
		Boundary: &physics.Boundary{
			Size: con.DomainSize, Radius: con.Radius,
			Restitution: con.Restitution,
		},
	}
	sim.forces = make([]r2.Vec, ps.Len())

	return sim
}

// Relaxed returns the number of particles which the initializer had to place
// on top of other particles. It is always zero for NewFromSet.
func (sim *Simulation) Relaxed() int { return sim.relaxed }

// Log turns progress logging in Run on or off.
func (sim *Simulation) Log(flag bool) {
	sim.mu.Lock()
	sim.log = flag
	sim.mu.Unlock()
}

func (sim *Simulation) logf(format string, args ...interface{}) {
	sim.mu.RLock()
	flag := sim.log
	sim.mu.RUnlock()

	if flag {
		log.Printf(format, args...)
	}
}

// Step advances the simulation by exactly one time step: gravity, then a
// semi-implicit Euler update, then collisions, then walls. Readers are
// excluded until the step has completed.
func (sim *Simulation) Step() {
	sim.mu.Lock()
	defer sim.mu.Unlock()

	sim.state = Stepping

	sim.gravity.Forces(sim.ps.Xs, sim.ps.Ms, sim.forces)
	sim.stats = sim.integ.Advance(sim.ps, sim.forces)
	sim.steps++

	sim.state = Idle
}

// Run performs n steps. If logging is on, progress is logged every interval
// steps and after the final step. A non-positive interval logs only the
// final step.
func (sim *Simulation) Run(n, interval int) {
	sim.RunWith(n, interval, nil)
}

// RunWith is identical to Run, except that f, if non-nil, is called after
// every step. f is called without any lock held, so it may use Snapshot or
// View.
func (sim *Simulation) RunWith(n, interval int, f func()) {
	start := time.Now()
	contacts, hits := 0, 0

	for i := 1; i <= n; i++ {
		sim.Step()
		if f != nil {
			f()
		}

		stats := sim.LastStats()
		contacts += stats.Contacts
		hits += stats.WallHits

		if (interval > 0 && i%interval == 0) || i == n {
			sim.logProgress(i, n, contacts, hits, start)
			contacts, hits = 0, 0
		}
	}
}

func (sim *Simulation) logProgress(i, n, contacts, hits int, start time.Time) {
	sim.mu.RLock()
	flag := sim.log
	sim.mu.RUnlock()
	if !flag {
		return
	}

	var sep float64
	sim.View(func(ps *particle.Set) { sep, _, _ = analyze.MinSeparation(ps) })
	sim.logf(
		"Step %d/%d: %d contacts, %d wall hits, min separation %.4g, "+
			"%.3g s elapsed.",
		i, n, contacts, hits, sep, time.Since(start).Seconds(),
	)
}

// State returns the current phase of the simulation. Because Step holds an
// exclusive lock, callers outside of Step always observe Idle.
func (sim *Simulation) State() State {
	sim.mu.RLock()
	defer sim.mu.RUnlock()
	return sim.state
}

// Steps returns the number of completed steps.
func (sim *Simulation) Steps() int64 {
	sim.mu.RLock()
	defer sim.mu.RUnlock()
	return sim.steps
}

// LastStats returns the constraint counters from the most recent step.
func (sim *Simulation) LastStats() physics.StepStats {
	sim.mu.RLock()
	defer sim.mu.RUnlock()
	return sim.stats
}

// Config returns a copy of the simulation's configuration.
func (sim *Simulation) Config() Config { return sim.con }

// View calls f with the live particle set while holding a read lock. f must
// not modify the set or retain it after returning.
func (sim *Simulation) View(f func(ps *particle.Set)) {
	sim.mu.RLock()
	defer sim.mu.RUnlock()
	f(sim.ps)
}

// Snapshot returns a copy of the current particle state.
func (sim *Simulation) Snapshot() *Snapshot {
	sim.mu.RLock()
	defer sim.mu.RUnlock()

	snap := &Snapshot{
		Step:      sim.steps,
		Radius:    sim.ps.Radius(),
		Particles: make([]Particle, sim.ps.Len()),
		minMass:   sim.con.MinMass,
		maxMass:   sim.con.MaxMass,
	}
	for i := range snap.Particles {
		snap.Particles[i] = Particle{
			X: sim.ps.Xs[i], V: sim.ps.Vs[i], Mass: sim.ps.Ms[i],
		}
	}
	return snap
}
