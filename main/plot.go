package main

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/phil-mansfield/gravbox"
	"github.com/phil-mansfield/gravbox/analyze"
	"github.com/phil-mansfield/gravbox/particle"
)

// recorder tracks conserved quantities over the course of a run.
type recorder struct {
	steps, kes, ps []float64
}

func newRecorder(n int) *recorder {
	return &recorder{
		steps: make([]float64, 0, n+1),
		kes:   make([]float64, 0, n+1),
		ps:    make([]float64, 0, n+1),
	}
}

func (rec *recorder) Record(sim *gravbox.Simulation) {
	step := sim.Steps()
	sim.View(func(ps *particle.Set) {
		rec.steps = append(rec.steps, float64(step))
		rec.kes = append(rec.kes, analyze.KineticEnergy(ps))
		rec.ps = append(rec.ps, r2.Norm(analyze.Momentum(ps)))
	})
}

func (rec *recorder) Plot(fname string) {
	plt.Reset()
	plt.Figure(plt.FigSize(8, 8))

	plt.Plot(rec.steps, rec.kes, "k", plt.LW(2))
	plt.Plot(rec.steps, rec.ps, "r", plt.LW(2))

	plt.Title(fmt.Sprintf(
		"Kinetic energy (black) and |momentum| (red), %d steps",
		len(rec.steps)-1,
	))
	plt.XLabel(`Step`, plt.FontSize(16))
	plt.YLabel(`$E_k$, $|p|$`, plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)

	plt.Execute()
}
