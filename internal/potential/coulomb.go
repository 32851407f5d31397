package potential

import "fmt"

// HartreeEV converts hartree energies to electron volts.
const HartreeEV = 27.211386245988

// Coulomb is the attractive -Z/r potential in hartree atomic units.
// It is only meaningful on radial grids, which exclude r = 0.
type Coulomb struct {
	Z float64
}

func NewCoulomb() *Coulomb {
	return &Coulomb{Z: 1.0}
}

func (c *Coulomb) Validate() error {
	if c.Z <= 0 {
		return fmt.Errorf("nuclear charge must be positive, got %g", c.Z)
	}
	return nil
}

func (c *Coulomb) Evaluate(r float64) float64 {
	return -c.Z / r
}

// ReferenceEnergy returns the Bohr spectrum -Z^2 / (2 n^2) hartree for the
// level-th s-state (principal quantum number n = level+1).
func (c *Coulomb) ReferenceEnergy(level int) float64 {
	n := float64(level + 1)
	return -c.Z * c.Z / (2 * n * n)
}

func (c *Coulomb) GetParams() map[string]float64 {
	return map[string]float64{"z": c.Z}
}

func (c *Coulomb) SetParam(name string, value float64) error {
	switch name {
	case "z":
		c.Z = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
