package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox/particle"
)

func TestBoundaryReflect(t *testing.T) {
	tests := []struct {
		x, v     r2.Vec
		e        float64
		wantX    r2.Vec
		wantV    r2.Vec
		wantHits int
	}{
		// Left wall, moving outward.
		{r2.Vec{X: -0.3, Y: 50}, r2.Vec{X: -2, Y: 1}, 0.8,
			r2.Vec{X: 0.5, Y: 50}, r2.Vec{X: 1.6, Y: 1}, 1},
		// Right wall, moving outward.
		{r2.Vec{X: 100.2, Y: 50}, r2.Vec{X: 3, Y: 0}, 0.8,
			r2.Vec{X: 99.5, Y: 50}, r2.Vec{X: -2.4, Y: 0}, 1},
		// A corner contact hits both axes.
		{r2.Vec{X: 99.9, Y: 0.1}, r2.Vec{X: 1, Y: -1}, 1,
			r2.Vec{X: 99.5, Y: 0.5}, r2.Vec{X: -1, Y: 1}, 2},
		// Past the wall but already moving inward: the sign is kept inward.
		{r2.Vec{X: 0.2, Y: 50}, r2.Vec{X: 1, Y: 0}, 0.5,
			r2.Vec{X: 0.5, Y: 50}, r2.Vec{X: 0.5, Y: 0}, 1},
		{r2.Vec{X: 50, Y: 99.8}, r2.Vec{X: 0, Y: -4}, 0.5,
			r2.Vec{X: 50, Y: 99.5}, r2.Vec{X: 0, Y: -2}, 1},
		// Exactly tangent particles are inside.
		{r2.Vec{X: 0.5, Y: 99.5}, r2.Vec{X: -1, Y: 1}, 0.5,
			r2.Vec{X: 0.5, Y: 99.5}, r2.Vec{X: -1, Y: 1}, 0},
	}

	for i, test := range tests {
		ps := particle.NewSet(1, 0.5)
		ps.Xs[0], ps.Vs[0], ps.Ms[0] = test.x, test.v, 1

		b := &Boundary{Size: 100, Radius: 0.5, Restitution: test.e}
		hits := b.Resolve(ps)

		assert.Equal(t, test.wantHits, hits, "case %d", i)
		assert.InDelta(t, test.wantX.X, ps.Xs[0].X, 1e-12, "case %d", i)
		assert.InDelta(t, test.wantX.Y, ps.Xs[0].Y, 1e-12, "case %d", i)
		assert.InDelta(t, test.wantV.X, ps.Vs[0].X, 1e-12, "case %d", i)
		assert.InDelta(t, test.wantV.Y, ps.Vs[0].Y, 1e-12, "case %d", i)
	}
}

func TestBoundaryContainment(t *testing.T) {
	ps := particle.NewSet(4, 1)
	ps.Xs = []r2.Vec{{X: -5, Y: 3}, {X: 12, Y: 12}, {X: 4, Y: 4}, {X: 9.5, Y: 0}}
	ps.Vs = []r2.Vec{{X: -1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: -3}}

	b := &Boundary{Size: 10, Radius: 1, Restitution: 1}
	b.Resolve(ps)

	for i, x := range ps.Xs {
		if x.X < 1 || x.X > 9 || x.Y < 1 || x.Y > 9 {
			t.Errorf("Particle %d is at %v after Resolve.", i, x)
		}
	}
	assert.Equal(t, r2.Vec{X: 4, Y: 4}, ps.Xs[2], "interior particle moved")
}
