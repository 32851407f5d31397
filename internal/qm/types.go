package qm

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Wavefunction is a complex-valued state vector sampled on a grid.
type Wavefunction []complex128

func (w Wavefunction) Clone() Wavefunction {
	c := make(Wavefunction, len(w))
	copy(c, w)
	return c
}

func (w Wavefunction) IsValid() bool {
	for _, v := range w {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Norm returns the total probability sum |psi_i|^2 * dx.
func (w Wavefunction) Norm(dx float64) float64 {
	sum := 0.0
	for _, v := range w {
		re, im := real(v), imag(v)
		sum += re*re + im*im
	}
	return sum * dx
}

// Density returns |psi|^2 at every grid point.
func (w Wavefunction) Density() []float64 {
	d := make([]float64, len(w))
	for i, v := range w {
		re, im := real(v), imag(v)
		d[i] = re*re + im*im
	}
	return d
}

// Normalize scales the state in place to unit probability.
func (w Wavefunction) Normalize(dx float64) error {
	n := w.Norm(dx)
	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("cannot normalize state with norm %g", n)
	}
	s := complex(1.0/math.Sqrt(n), 0)
	for i := range w {
		w[i] *= s
	}
	return nil
}

// Eigenpair is one stationary solution of H psi = E psi.
type Eigenpair struct {
	Energy float64
	State  []float64
}

type Metric interface {
	Name() string
	Observe(w Wavefunction, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(w Wavefunction, t float64)
}

type SimError struct {
	Time    float64
	Step    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
