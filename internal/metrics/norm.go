package metrics

import (
	"math"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/qm"
)

// NormDrift tracks the worst deviation of total probability from 1 seen
// during a run. For Crank–Nicolson it stays at roundoff level regardless of
// timestep; growth signals a broken operator.
type NormDrift struct {
	name     string
	dx       float64
	maxDrift float64
	samples  int
}

func NewNormDrift(g *grid.Grid) *NormDrift {
	return &NormDrift{name: "norm_drift", dx: g.Dx}
}

func (n *NormDrift) Name() string { return n.name }

func (n *NormDrift) Observe(w qm.Wavefunction, t float64) {
	drift := math.Abs(w.Norm(n.dx) - 1)
	n.maxDrift = math.Max(n.maxDrift, drift)
	n.samples++
}

func (n *NormDrift) Value() float64 {
	return n.maxDrift
}

func (n *NormDrift) Reset() {
	n.maxDrift = 0
	n.samples = 0
}
