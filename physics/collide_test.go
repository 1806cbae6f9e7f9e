package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox/analyze"
	"github.com/phil-mansfield/gravbox/particle"
)

func pair(x1, x2, v1, v2 r2.Vec, m1, m2, radius float64) *particle.Set {
	ps, err := particle.FromSlices(
		[]r2.Vec{x1, x2}, []r2.Vec{v1, v2}, []float64{m1, m2}, radius,
	)
	if err != nil {
		panic(err.Error())
	}
	return ps
}

func TestEqualMassExchange(t *testing.T) {
	ps := pair(
		r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10.75, Y: 10},
		r2.Vec{X: 3, Y: 0}, r2.Vec{X: -1, Y: 0},
		2, 2, 0.5,
	)
	c := &Collider{Radius: 0.5, Restitution: 1}

	touched, kicked := c.ResolvePair(ps, 0, 1)
	assert.True(t, touched)
	assert.True(t, kicked)

	assert.Equal(t, r2.Vec{X: -1, Y: 0}, ps.Vs[0])
	assert.Equal(t, r2.Vec{X: 3, Y: 0}, ps.Vs[1])
	assert.Equal(t, r2.Vec{X: 9.875, Y: 10}, ps.Xs[0])
	assert.Equal(t, r2.Vec{X: 10.875, Y: 10}, ps.Xs[1])
}

func TestOverlapElimination(t *testing.T) {
	tests := []struct {
		x1, x2 r2.Vec
	}{
		{r2.Vec{X: 5, Y: 5}, r2.Vec{X: 5.3, Y: 5.4}},
		{r2.Vec{X: 5, Y: 5}, r2.Vec{X: 4.01, Y: 5}},
		{r2.Vec{X: 1, Y: 2}, r2.Vec{X: 1, Y: 2.999}},
		{r2.Vec{X: 7, Y: 7}, r2.Vec{X: 7.0001, Y: 6.9999}},
	}

	for i, test := range tests {
		ps := pair(test.x1, test.x2, r2.Vec{}, r2.Vec{}, 1, 3, 0.5)
		c := &Collider{Radius: 0.5, Restitution: 1}
		touched, _ := c.ResolvePair(ps, 0, 1)
		require.True(t, touched, "case %d", i)

		d := r2.Norm(r2.Sub(ps.Xs[1], ps.Xs[0]))
		assert.InDelta(t, 1.0, d, 1e-12, "case %d", i)

		mid := r2.Scale(0.5, r2.Add(test.x1, test.x2))
		newMid := r2.Scale(0.5, r2.Add(ps.Xs[0], ps.Xs[1]))
		assert.InDelta(t, mid.X, newMid.X, 1e-12, "case %d", i)
		assert.InDelta(t, mid.Y, newMid.Y, 1e-12, "case %d", i)
	}
}

func TestSeparatingContact(t *testing.T) {
	v1, v2 := r2.Vec{X: -1, Y: 0.5}, r2.Vec{X: 1, Y: 2}
	ps := pair(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10.5, Y: 10}, v1, v2, 1, 2, 0.5)
	c := &Collider{Radius: 0.5, Restitution: 1}

	touched, kicked := c.ResolvePair(ps, 0, 1)
	assert.True(t, touched)
	assert.False(t, kicked)
	assert.Equal(t, v1, ps.Vs[0])
	assert.Equal(t, v2, ps.Vs[1])
	assert.Equal(t, r2.Vec{X: 9.75, Y: 10}, ps.Xs[0])
	assert.Equal(t, r2.Vec{X: 10.75, Y: 10}, ps.Xs[1])

	// Purely tangential motion has v_n = 0 and is also left alone.
	v1, v2 = r2.Vec{X: 0, Y: 1}, r2.Vec{X: 0, Y: -1}
	ps = pair(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10.5, Y: 10}, v1, v2, 1, 1, 0.5)
	_, kicked = c.ResolvePair(ps, 0, 1)
	assert.False(t, kicked)
	assert.Equal(t, v1, ps.Vs[0])
	assert.Equal(t, v2, ps.Vs[1])
}

func TestNoContact(t *testing.T) {
	x1, x2 := r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10, Y: 10}
	v1, v2 := r2.Vec{X: 1, Y: 0}, r2.Vec{X: -1, Y: 0}
	c := &Collider{Radius: 0.5, Restitution: 1}

	// Coincident centers have no collision normal and are skipped.
	ps := pair(x1, x2, v1, v2, 1, 1, 0.5)
	touched, _ := c.ResolvePair(ps, 0, 1)
	assert.False(t, touched)
	assert.Equal(t, x1, ps.Xs[0])
	assert.Equal(t, v1, ps.Vs[0])

	// Exactly touching particles are not overlapping.
	x2 = r2.Vec{X: 11, Y: 10}
	ps = pair(x1, x2, v1, v2, 1, 1, 0.5)
	touched, _ = c.ResolvePair(ps, 0, 1)
	assert.False(t, touched)
	assert.Equal(t, x2, ps.Xs[1])
	assert.Equal(t, v2, ps.Vs[1])
}

func TestMomentumConservation(t *testing.T) {
	for _, model := range []ImpulseModel{ReferenceImpulse, NewtonImpulse} {
		for _, e := range []float64{0, 0.3, 1} {
			ps := pair(
				r2.Vec{X: 20, Y: 20}, r2.Vec{X: 20.6, Y: 20.4},
				r2.Vec{X: 1.5, Y: 0.7}, r2.Vec{X: -0.2, Y: -0.9},
				1.3, 4.2, 0.5,
			)
			p0 := analyze.Momentum(ps)

			c := &Collider{Radius: 0.5, Restitution: e, Model: model}
			_, kicked := c.ResolvePair(ps, 0, 1)
			require.True(t, kicked)

			p1 := analyze.Momentum(ps)
			assert.InDelta(t, p0.X, p1.X, 1e-12, "%s, e = %g", model, e)
			assert.InDelta(t, p0.Y, p1.Y, 1e-12, "%s, e = %g", model, e)
		}
	}
}

func TestRestitutionLaws(t *testing.T) {
	relVn := func(ps *particle.Set) float64 {
		return ps.Vs[0].X - ps.Vs[1].X
	}
	newPair := func() *particle.Set {
		return pair(
			r2.Vec{X: 10, Y: 10}, r2.Vec{X: 10.75, Y: 10},
			r2.Vec{X: 1, Y: 0}, r2.Vec{X: -1, Y: 0},
			1, 1, 0.5,
		)
	}

	ps := newPair()
	c := &Collider{Radius: 0.5, Restitution: 0.5, Model: NewtonImpulse}
	c.ResolvePair(ps, 0, 1)
	assert.InDelta(t, -0.5*2, relVn(ps), 1e-12)

	// The reference law scales the full exchange by e, so at e = 0.5 the
	// pair ends up at rest relative to each other.
	ps = newPair()
	c = &Collider{Radius: 0.5, Restitution: 0.5, Model: ReferenceImpulse}
	c.ResolvePair(ps, 0, 1)
	assert.InDelta(t, 0, relVn(ps), 1e-12)

	// Both laws agree when e = 1.
	ref, newton := newPair(), newPair()
	(&Collider{Radius: 0.5, Restitution: 1}).ResolvePair(ref, 0, 1)
	(&Collider{Radius: 0.5, Restitution: 1, Model: NewtonImpulse}).
		ResolvePair(newton, 0, 1)
	assert.Equal(t, ref, newton)
}

func TestSequentialResolution(t *testing.T) {
	xs := []r2.Vec{{X: 10, Y: 10}, {X: 10.75, Y: 10}, {X: 11.5, Y: 10}}
	vs := make([]r2.Vec, 3)
	ms := []float64{1, 1, 1}
	ps, err := particle.FromSlices(xs, vs, ms, 0.5)
	require.NoError(t, err)

	c := &Collider{Radius: 0.5, Restitution: 1}
	contacts, impulses := c.Resolve(ps)

	assert.Equal(t, 2, contacts)
	assert.Equal(t, 0, impulses)

	// (0, 1) is separated first, (0, 2) no longer overlaps, and (1, 2) then
	// pushes particle 1 back towards particle 0.
	assert.Equal(t, 9.875, ps.Xs[0].X)
	assert.Equal(t, 10.6875, ps.Xs[1].X)
	assert.Equal(t, 11.6875, ps.Xs[2].X)
}

func TestParseImpulseModel(t *testing.T) {
	tests := []struct {
		name string
		m    ImpulseModel
		ok   bool
	}{
		{"", ReferenceImpulse, true},
		{"Reference", ReferenceImpulse, true},
		{" newton ", NewtonImpulse, true},
		{"NEWTON", NewtonImpulse, true},
		{"verlet", 0, false},
	}

	for _, test := range tests {
		m, err := ParseImpulseModel(test.name)
		if test.ok {
			assert.NoError(t, err, test.name)
			assert.Equal(t, test.m, m, test.name)
		} else {
			assert.Error(t, err, test.name)
		}
	}

	assert.Equal(t, "Newton", NewtonImpulse.String())
	assert.Equal(t, "ImpulseModel(9)", ImpulseModel(9).String())
}
