package metrics

import (
	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/qm"
)

// Transmission reports the probability found beyond a position threshold at
// the latest observation. With the threshold at the far edge of a barrier it
// measures the transmitted fraction of a packet.
type Transmission struct {
	name  string
	dx    float64
	start int
	value float64
}

func NewTransmission(g *grid.Grid, threshold float64) *Transmission {
	return &Transmission{name: "transmission", dx: g.Dx, start: g.Index(threshold)}
}

func (tr *Transmission) Name() string { return tr.name }

func (tr *Transmission) Observe(w qm.Wavefunction, t float64) {
	sum := 0.0
	for i := tr.start; i < len(w); i++ {
		re, im := real(w[i]), imag(w[i])
		sum += re*re + im*im
	}
	tr.value = sum * tr.dx
}

func (tr *Transmission) Value() float64 { return tr.value }

func (tr *Transmission) Reset()         { tr.value = 0 }
