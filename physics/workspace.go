package physics

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// workspace is the private force buffer owned by a single worker during a
// parallel force pass. Workers never write to each other's buffers; the
// buffers are summed once every worker has finished.
type workspace struct {
	buf []r2.Vec
}

func (w *workspace) init(n int) {
	if cap(w.buf) < n {
		w.buf = make([]r2.Vec, n)
	}
	w.buf = w.buf[:n]
	for i := range w.buf {
		w.buf[i] = r2.Vec{}
	}
}

// add adds the workspace's forces to out.
func (w *workspace) add(out []r2.Vec) {
	for i := range out {
		out[i] = r2.Add(out[i], w.buf[i])
	}
}

func (g *Gravity) initWorkspaces(n int) {
	if len(g.workspaces) != g.workers {
		g.workspaces = make([]workspace, g.workers)
	}
	for id := range g.workspaces {
		g.workspaces[id].init(n)
	}
}

// chanAccumulate fills worker id's buffer and reports id on out. Rows are
// dealt round-robin: worker id handles i = id, id + workers, ...
func (g *Gravity) chanAccumulate(
	id int, xs []r2.Vec, ms []float64, out chan<- int,
) {
	g.accumulate(xs, ms, g.workspaces[id].buf, id, g.workers)
	out <- id
}

func (g *Gravity) parallelForces(xs []r2.Vec, ms []float64, out []r2.Vec) {
	g.initWorkspaces(len(xs))

	done := make(chan int, g.workers)
	for id := 0; id < g.workers-1; id++ {
		go g.chanAccumulate(id, xs, ms, done)
	}
	g.chanAccumulate(g.workers-1, xs, ms, done)

	for i := 0; i < g.workers; i++ {
		<-done
	}

	// Summing in worker order rather than arrival order keeps the result
	// independent of scheduling.
	for i := range out {
		out[i] = r2.Vec{}
	}
	for id := range g.workspaces {
		g.workspaces[id].add(out)
	}
}
