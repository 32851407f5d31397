// Package analysis derives momentum-space quantities from position-space
// wavefunctions.
package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/qm"
)

// MomentumDensity returns the momentum grid and the normalised probability
// density |phi(k)|^2, ordered by ascending k. The momentum resolution is
// 2 pi / (N dx), the reachable range +-pi/dx.
func MomentumDensity(w qm.Wavefunction, g *grid.Grid) ([]float64, []float64, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("momentum density needs a grid")
	}
	n := g.Len()
	if len(w) != n {
		return nil, nil, fmt.Errorf("state length %d does not match grid size %d", len(w), n)
	}

	fft := fourier.NewCmplxFFT(n)
	coeff := fft.Coefficients(nil, []complex128(w))

	ks := make([]float64, n)
	density := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		src := fft.UnshiftIdx(i)
		ks[i] = 2 * math.Pi * fft.Freq(src) / g.Dx
		re, im := real(coeff[src]), imag(coeff[src])
		density[i] = re*re + im*im
		total += density[i]
	}
	if total <= 0 {
		return nil, nil, fmt.Errorf("zero state has no momentum density")
	}
	for i := range density {
		density[i] /= total
	}
	return ks, density, nil
}

// DominantMomentum returns the k with the largest momentum density.
func DominantMomentum(w qm.Wavefunction, g *grid.Grid) (float64, error) {
	ks, density, err := MomentumDensity(w, g)
	if err != nil {
		return 0, err
	}
	best := 0
	for i, d := range density {
		if d > density[best] {
			best = i
		}
	}
	return ks[best], nil
}
