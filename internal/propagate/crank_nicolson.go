// Package propagate advances a wavefunction in time with the Crank–Nicolson
// scheme.
//
// Each step solves (I + i dt H / 2) psi' = (I - i dt H / 2) psi. Because H is
// tridiagonal the solve is a Thomas sweep, O(N) per step. The scheme is
// unconditionally stable and conserves the probability norm up to
// discretization error, which the run loop tracks as a metric.
package propagate

import (
	"context"
	"fmt"

	"github.com/ahertz/qwave/internal/hamiltonian"
	"github.com/ahertz/qwave/internal/qm"
)

func errSingular(i int) error {
	return fmt.Errorf("singular linear system at row %d", i)
}

// CrankNicolson holds the precomputed implicit and explicit half-step
// operators for a fixed Hamiltonian and timestep.
type CrankNicolson struct {
	h     *hamiltonian.Hamiltonian
	dt    float64
	aDiag []complex128
	aOff  []complex128
	bDiag []complex128
	bOff  []complex128
	rhs   []complex128
	cw    []complex128
	dw    []complex128
}

// NewCrankNicolson precomputes the stepping operators.
func NewCrankNicolson(h *hamiltonian.Hamiltonian, dt float64) (*CrankNicolson, error) {
	if h == nil {
		return nil, fmt.Errorf("propagator needs a hamiltonian")
	}
	if dt <= 0 {
		return nil, fmt.Errorf("timestep must be positive, got %g", dt)
	}
	n := h.Dim()
	cn := &CrankNicolson{
		h:     h,
		dt:    dt,
		aDiag: make([]complex128, n),
		aOff:  make([]complex128, n-1),
		bDiag: make([]complex128, n),
		bOff:  make([]complex128, n-1),
		rhs:   make([]complex128, n),
		cw:    make([]complex128, n),
		dw:    make([]complex128, n),
	}
	half := complex(0, dt/2)
	for i, d := range h.Diag {
		cn.aDiag[i] = 1 + half*complex(d, 0)
		cn.bDiag[i] = 1 - half*complex(d, 0)
	}
	for i, o := range h.OffDiag {
		cn.aOff[i] = half * complex(o, 0)
		cn.bOff[i] = -half * complex(o, 0)
	}
	return cn, nil
}

func (cn *CrankNicolson) Dt() float64 { return cn.dt }

// Step advances psi by one timestep, writing the result into out.
// psi and out may alias.
func (cn *CrankNicolson) Step(psi, out qm.Wavefunction) error {
	n := len(cn.aDiag)
	if len(psi) != n || len(out) != n {
		return fmt.Errorf("state length %d does not match operator dimension %d", len(psi), n)
	}
	for i := 0; i < n; i++ {
		s := cn.bDiag[i] * psi[i]
		if i > 0 {
			s += cn.bOff[i-1] * psi[i-1]
		}
		if i < n-1 {
			s += cn.bOff[i] * psi[i+1]
		}
		cn.rhs[i] = s
	}
	return solveTridiag(cn.aDiag, cn.aOff, cn.rhs, out, cn.cw, cn.dw)
}

// Config drives a propagation run.
type Config struct {
	Dt            float64
	Steps         int
	Stride        int // record every Stride-th frame; 1 records all
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{Dt: 0.005, Steps: 1000, Stride: 10, ValidateState: true}
}

// Result collects the recorded frames of a run.
type Result struct {
	Frames     []qm.Wavefunction
	Times      []float64
	Norms      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Propagator couples a Hamiltonian with metrics and observers, mirroring a
// plain simulation loop: observe, step, validate, record.
type Propagator struct {
	h         *hamiltonian.Hamiltonian
	metrics   []qm.Metric
	observers []qm.Observer
}

func New(h *hamiltonian.Hamiltonian) *Propagator {
	return &Propagator{h: h}
}

func (p *Propagator) AddMetric(m qm.Metric)     { p.metrics = append(p.metrics, m) }
func (p *Propagator) AddObserver(o qm.Observer) { p.observers = append(p.observers, o) }

// Run propagates psi0 for cfg.Steps timesteps. The initial state is not
// mutated. A numerical failure (singular solve, NaN state) aborts the run and
// is returned alongside the frames recorded so far.
func (p *Propagator) Run(ctx context.Context, psi0 qm.Wavefunction, cfg Config) (*Result, error) {
	if err := p.validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(psi0) != p.h.Dim() {
		return nil, fmt.Errorf("initial state length %d does not match grid size %d",
			len(psi0), p.h.Dim())
	}

	cn, err := NewCrankNicolson(p.h, cfg.Dt)
	if err != nil {
		return nil, err
	}

	for _, m := range p.metrics {
		m.Reset()
	}

	dx := p.h.Grid.Dx
	result := &Result{
		Frames:  make([]qm.Wavefunction, 0, cfg.Steps/cfg.Stride+2),
		Times:   make([]float64, 0, cfg.Steps/cfg.Stride+2),
		Norms:   make([]float64, 0, cfg.Steps/cfg.Stride+2),
		Metrics: make(map[string]float64),
	}

	psi := psi0.Clone()
	t := 0.0
	record := func() {
		result.Frames = append(result.Frames, psi.Clone())
		result.Times = append(result.Times, t)
		result.Norms = append(result.Norms, psi.Norm(dx))
	}
	record()

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		for _, m := range p.metrics {
			m.Observe(psi, t)
		}
		for _, obs := range p.observers {
			obs.OnStep(psi, t)
		}

		if err := cn.Step(psi, psi); err != nil {
			return result, qm.SimError{Time: t, Step: i, Message: err.Error()}
		}
		t += cfg.Dt
		result.StepsTaken++

		if cfg.ValidateState && !psi.IsValid() {
			return result, qm.SimError{Time: t, Step: i, Message: "invalid state (NaN/Inf)"}
		}

		if (i+1)%cfg.Stride == 0 || i == cfg.Steps-1 {
			record()
		}
	}

	for _, m := range p.metrics {
		m.Observe(psi, t)
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (p *Propagator) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Steps < 1 {
		return fmt.Errorf("step count must be >= 1, got %d", cfg.Steps)
	}
	if cfg.Stride < 1 {
		return fmt.Errorf("frame stride must be >= 1, got %d", cfg.Stride)
	}
	return nil
}
