// Package hamiltonian discretizes the Schrödinger energy operator on a grid.
//
// The kinetic term uses the 3-point central-difference stencil, so the
// operator is a real symmetric tridiagonal matrix: diagonal entries
// 1/dx^2 + V(x_i), nearest-neighbour entries -1/(2 dx^2), with hbar = m = 1.
// Dirichlet boundaries (psi = 0 outside the grid) are implicit in the
// truncation of the stencil at the edges.
package hamiltonian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/potential"
)

// Hamiltonian is the discretized energy operator in tridiagonal form.
type Hamiltonian struct {
	Grid    *grid.Grid
	Diag    []float64
	OffDiag []float64
}

// Build constructs the operator for a 1D potential on a uniform grid.
func Build(g *grid.Grid, v potential.Potential) (*Hamiltonian, error) {
	if g == nil {
		return nil, fmt.Errorf("hamiltonian needs a grid")
	}
	if v == nil {
		return nil, fmt.Errorf("hamiltonian needs a potential")
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return build(g, v.Evaluate), nil
}

// BuildRadial constructs the operator for the radial equation with orbital
// angular momentum l, adding the centrifugal term l(l+1)/(2 r^2) to the
// diagonal. The grid must be radial so r = 0 is excluded.
func BuildRadial(g *grid.Grid, v potential.Potential, l int) (*Hamiltonian, error) {
	if g == nil {
		return nil, fmt.Errorf("hamiltonian needs a grid")
	}
	if !g.Radial {
		return nil, fmt.Errorf("radial hamiltonian needs a radial grid")
	}
	if v == nil {
		return nil, fmt.Errorf("hamiltonian needs a potential")
	}
	if l < 0 {
		return nil, fmt.Errorf("orbital angular momentum must be >= 0, got %d", l)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	cf := float64(l * (l + 1))
	return build(g, func(r float64) float64 {
		return v.Evaluate(r) + cf/(2*r*r)
	}), nil
}

func build(g *grid.Grid, v func(float64) float64) *Hamiltonian {
	n := g.Len()
	alpha := 1.0 / (2 * g.Dx * g.Dx)

	h := &Hamiltonian{
		Grid:    g,
		Diag:    make([]float64, n),
		OffDiag: make([]float64, n-1),
	}
	for i, x := range g.Points {
		h.Diag[i] = 2*alpha + v(x)
	}
	for i := range h.OffDiag {
		h.OffDiag[i] = -alpha
	}
	return h
}

// Dim returns the matrix dimension.
func (h *Hamiltonian) Dim() int { return len(h.Diag) }

// Sym returns the operator as a gonum symmetric banded matrix.
func (h *Hamiltonian) Sym() *mat.SymBandDense {
	n := len(h.Diag)
	data := make([]float64, n*2)
	for i := 0; i < n; i++ {
		data[i*2] = h.Diag[i]
		if i < n-1 {
			data[i*2+1] = h.OffDiag[i]
		}
	}
	return mat.NewSymBandDense(n, 1, data)
}

// Apply computes H psi for a real vector, used by hand-evaluated checks.
func (h *Hamiltonian) Apply(psi []float64) ([]float64, error) {
	n := len(h.Diag)
	if len(psi) != n {
		return nil, fmt.Errorf("state length %d does not match operator dimension %d", len(psi), n)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		s := h.Diag[i] * psi[i]
		if i > 0 {
			s += h.OffDiag[i-1] * psi[i-1]
		}
		if i < n-1 {
			s += h.OffDiag[i] * psi[i+1]
		}
		out[i] = s
	}
	return out, nil
}
