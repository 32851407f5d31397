// Package potential provides the quantum systems available for simulation.
//
// Each potential is a pure function of position wrapped in a small struct,
// with constructor defaults and runtime-adjustable parameters:
//
//   - [Free]: zero potential
//   - [InfiniteWell]: hard-wall box
//   - [FiniteWell]: square well of finite depth
//   - [Barrier]: rectangular barrier (tunnelling)
//   - [Harmonic]: harmonic oscillator
//   - [Coulomb]: -1/r central potential (radial grids only)
//   - [DoubleWell]: two square wells separated by a barrier
//   - [SmoothDoubleWell]: quartic bistable potential
//
// All systems use natural units hbar = m = 1; the Coulomb potential is in
// hartree atomic units. Potentials with a closed-form spectrum implement
// [ReferenceSpectrum], used for validation against the numerical solver.
package potential

// Potential evaluates the potential energy at a single position.
// Implementations are stateless with respect to evaluation: the same
// input always yields the same value.
type Potential interface {
	Evaluate(x float64) float64
	Validate() error
}

// Configurable exposes runtime-adjustable shape parameters.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// ReferenceSpectrum yields the analytic energy of the level-th stationary
// state (level counts from 0 upward in ascending energy order).
type ReferenceSpectrum interface {
	ReferenceEnergy(level int) float64
}
