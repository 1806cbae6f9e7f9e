package io

import (
	"fmt"

	"github.com/phil-mansfield/table"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox/particle"
)

// Column layout of initial-condition files.
const (
	xCol = iota
	yCol
	vxCol
	vyCol
	mCol
)

// ReadParticles reads a whitespace-separated initial-condition table with one
// particle per row and the columns x, y, vx, vy, and m. Every particle is
// given the specified radius. The particles are not checked against any
// configuration; gravbox.NewFromSet does that.
func ReadParticles(fname string, radius float64) (*particle.Set, error) {
	colIdxs := []int{xCol, yCol, vxCol, vyCol, mCol}
	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return nil, err
	}

	xs, ys, vxs, vys, ms := cols[0], cols[1], cols[2], cols[3], cols[4]
	n := len(xs)
	if n == 0 {
		return nil, fmt.Errorf("Initial condition file '%s' is empty.", fname)
	}

	ps := particle.NewSet(n, radius)
	for i := 0; i < n; i++ {
		ps.Xs[i] = r2.Vec{X: xs[i], Y: ys[i]}
		ps.Vs[i] = r2.Vec{X: vxs[i], Y: vys[i]}
		ps.Ms[i] = ms[i]
	}

	return ps, nil
}
