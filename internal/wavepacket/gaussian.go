// Package wavepacket builds initial wavefunctions on a grid.
package wavepacket

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/qm"
)

// Gaussian describes a normalised Gaussian packet
// exp(-(x-Center)^2 / (4 Sigma^2)) * exp(i Momentum x).
type Gaussian struct {
	Center   float64
	Sigma    float64
	Momentum float64
}

func NewGaussian() *Gaussian {
	return &Gaussian{Center: 0.0, Sigma: 1.0, Momentum: 0.0}
}

func (p *Gaussian) Validate() error {
	if p.Sigma <= 0 {
		return fmt.Errorf("packet width must be positive, got %g", p.Sigma)
	}
	return nil
}

// Sample evaluates the packet on the grid and normalises it to unit
// probability. The packet should fit well inside the domain; a packet cut
// off by the boundary still normalises but leaks probability once propagated.
func (p *Gaussian) Sample(g *grid.Grid) (qm.Wavefunction, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	psi := make(qm.Wavefunction, g.Len())
	for i, x := range g.Points {
		d := x - p.Center
		env := math.Exp(-d * d / (4 * p.Sigma * p.Sigma))
		psi[i] = complex(env, 0) * cmplx.Exp(complex(0, p.Momentum*x))
	}
	if err := psi.Normalize(g.Dx); err != nil {
		return nil, fmt.Errorf("gaussian packet: %w", err)
	}
	return psi, nil
}

// FromEigenstate lifts a real stationary state into a complex wavefunction.
func FromEigenstate(state []float64) qm.Wavefunction {
	psi := make(qm.Wavefunction, len(state))
	for i, v := range state {
		psi[i] = complex(v, 0)
	}
	return psi
}

func (p *Gaussian) GetParams() map[string]float64 {
	return map[string]float64{"center": p.Center, "sigma": p.Sigma, "momentum": p.Momentum}
}

func (p *Gaussian) SetParam(name string, value float64) error {
	switch name {
	case "center":
		p.Center = value
	case "sigma":
		p.Sigma = value
	case "momentum":
		p.Momentum = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
