package metrics

import (
	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/qm"
)

// Position reports the expectation value <x> at the latest observation.
type Position struct {
	name   string
	dx     float64
	points []float64
	value  float64
}

func NewPosition(g *grid.Grid) *Position {
	return &Position{name: "position", dx: g.Dx, points: g.Points}
}

func (p *Position) Name() string { return p.name }

func (p *Position) Observe(w qm.Wavefunction, t float64) {
	sum := 0.0
	for i, v := range w {
		re, im := real(v), imag(v)
		sum += (re*re + im*im) * p.points[i]
	}
	p.value = sum * p.dx
}

func (p *Position) Value() float64 { return p.value }

func (p *Position) Reset()         { p.value = 0 }
