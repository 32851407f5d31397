package potential

import "fmt"

// Harmonic is the oscillator potential 0.5 * omega^2 * (x - center)^2.
type Harmonic struct {
	Omega  float64
	Center float64
}

func NewHarmonic() *Harmonic {
	return &Harmonic{Omega: 1.0, Center: 0.0}
}

func (h *Harmonic) Validate() error {
	if h.Omega <= 0 {
		return fmt.Errorf("oscillator frequency must be positive, got %g", h.Omega)
	}
	return nil
}

func (h *Harmonic) Evaluate(x float64) float64 {
	d := x - h.Center
	return 0.5 * h.Omega * h.Omega * d * d
}

// ReferenceEnergy returns the analytic spectrum omega * (level + 1/2).
func (h *Harmonic) ReferenceEnergy(level int) float64 {
	return h.Omega * (float64(level) + 0.5)
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"omega": h.Omega, "center": h.Center}
}

func (h *Harmonic) SetParam(name string, value float64) error {
	switch name {
	case "omega":
		h.Omega = value
	case "center":
		h.Center = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
