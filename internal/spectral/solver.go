// Package spectral computes stationary states by diagonalising the
// discretized Hamiltonian.
package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ahertz/qwave/internal/hamiltonian"
	"github.com/ahertz/qwave/internal/qm"
)

// Solve diagonalises H and returns all eigenpairs sorted ascending by energy.
// Eigenvectors are normalised to unit discrete probability (sum psi^2 dx = 1)
// and sign-fixed so the component of largest magnitude is positive, making
// repeated solves on the same input identical.
func Solve(h *hamiltonian.Hamiltonian) ([]qm.Eigenpair, error) {
	if h == nil {
		return nil, fmt.Errorf("solve needs a hamiltonian")
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(h.Sym(), true); !ok {
		return nil, fmt.Errorf("eigendecomposition failed to converge (n=%d)", h.Dim())
	}

	n := h.Dim()
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	dx := h.Grid.Dx
	pairs := make([]qm.Eigenpair, n)
	for j := 0; j < n; j++ {
		state := make([]float64, n)
		mat.Col(state, j, &vectors)
		if err := normalize(state, dx); err != nil {
			return nil, fmt.Errorf("state %d: %w", j, err)
		}
		fixSign(state)
		pairs[j] = qm.Eigenpair{Energy: values[j], State: state}
	}
	return pairs, nil
}

// SolveK returns the k lowest eigenpairs.
func SolveK(h *hamiltonian.Hamiltonian, k int) ([]qm.Eigenpair, error) {
	if k < 1 {
		return nil, fmt.Errorf("state count must be >= 1, got %d", k)
	}
	pairs, err := Solve(h)
	if err != nil {
		return nil, err
	}
	if k > len(pairs) {
		k = len(pairs)
	}
	return pairs[:k], nil
}

func normalize(state []float64, dx float64) error {
	sum := 0.0
	for _, v := range state {
		sum += v * v
	}
	sum *= dx
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return fmt.Errorf("degenerate eigenvector with norm %g", sum)
	}
	s := 1.0 / math.Sqrt(sum)
	for i := range state {
		state[i] *= s
	}
	return nil
}

func fixSign(state []float64) {
	peak := 0
	for i, v := range state {
		if math.Abs(v) > math.Abs(state[peak]) {
			peak = i
		}
	}
	if state[peak] < 0 {
		for i := range state {
			state[i] = -state[i]
		}
	}
}
