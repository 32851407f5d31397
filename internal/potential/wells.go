package potential

import (
	"fmt"
	"math"
)

// WallHeight approximates an infinite wall with a large finite value,
// keeping the discretized Hamiltonian well conditioned.
const WallHeight = 1e5

// InfiniteWell is a hard-wall box of the given width starting at Xmin.
type InfiniteWell struct {
	Width float64
	Xmin  float64
}

func NewInfiniteWell() *InfiniteWell {
	return &InfiniteWell{Width: 1.0, Xmin: 0.0}
}

func (w *InfiniteWell) Validate() error {
	if w.Width <= 0 {
		return fmt.Errorf("infinite well width must be positive, got %g", w.Width)
	}
	return nil
}

func (w *InfiniteWell) Evaluate(x float64) float64 {
	if x < w.Xmin || x > w.Xmin+w.Width {
		return WallHeight
	}
	return 0
}

// ReferenceEnergy returns the analytic box spectrum (level+1)^2 pi^2 / (2 L^2).
func (w *InfiniteWell) ReferenceEnergy(level int) float64 {
	n := float64(level + 1)
	return n * n * math.Pi * math.Pi / (2 * w.Width * w.Width)
}

func (w *InfiniteWell) GetParams() map[string]float64 {
	return map[string]float64{"width": w.Width, "xmin": w.Xmin}
}

func (w *InfiniteWell) SetParam(name string, value float64) error {
	switch name {
	case "width":
		w.Width = value
	case "xmin":
		w.Xmin = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// FiniteWell is a square well: zero inside [Xmin, Xmin+Width], V0 outside.
type FiniteWell struct {
	Width float64
	Xmin  float64
	V0    float64
}

func NewFiniteWell() *FiniteWell {
	return &FiniteWell{Width: 1.0, Xmin: 0.0, V0: 50.0}
}

func (w *FiniteWell) Validate() error {
	if w.Width <= 0 {
		return fmt.Errorf("finite well width must be positive, got %g", w.Width)
	}
	if w.V0 <= 0 {
		return fmt.Errorf("finite well depth must be positive, got %g", w.V0)
	}
	return nil
}

func (w *FiniteWell) Evaluate(x float64) float64 {
	if x < w.Xmin || x > w.Xmin+w.Width {
		return w.V0
	}
	return 0
}

func (w *FiniteWell) GetParams() map[string]float64 {
	return map[string]float64{"width": w.Width, "xmin": w.Xmin, "v0": w.V0}
}

func (w *FiniteWell) SetParam(name string, value float64) error {
	switch name {
	case "width":
		w.Width = value
	case "xmin":
		w.Xmin = value
	case "v0":
		w.V0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// DoubleWell is two square wells of equal width separated by a barrier of
// height V0 that also extends outside both wells.
type DoubleWell struct {
	Width float64
	Xmin1 float64
	Xmin2 float64
	V0    float64
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{Width: 1.0, Xmin1: -1.5, Xmin2: 0.5, V0: 40.0}
}

func (d *DoubleWell) Validate() error {
	if d.Width <= 0 {
		return fmt.Errorf("double well width must be positive, got %g", d.Width)
	}
	if d.V0 <= 0 {
		return fmt.Errorf("double well barrier height must be positive, got %g", d.V0)
	}
	if d.Xmin2 < d.Xmin1+d.Width {
		return fmt.Errorf("wells overlap: second well starts at %g before first ends at %g",
			d.Xmin2, d.Xmin1+d.Width)
	}
	return nil
}

func (d *DoubleWell) Evaluate(x float64) float64 {
	in1 := x >= d.Xmin1 && x <= d.Xmin1+d.Width
	in2 := x >= d.Xmin2 && x <= d.Xmin2+d.Width
	if in1 || in2 {
		return 0
	}
	return d.V0
}

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{
		"width": d.Width, "xmin1": d.Xmin1, "xmin2": d.Xmin2, "v0": d.V0,
	}
}

func (d *DoubleWell) SetParam(name string, value float64) error {
	switch name {
	case "width":
		d.Width = value
	case "xmin1":
		d.Xmin1 = value
	case "xmin2":
		d.Xmin2 = value
	case "v0":
		d.V0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// SmoothDoubleWell is the quartic bistable potential E0*(C*x^4 - x^2) + D.
type SmoothDoubleWell struct {
	E0 float64
	C  float64
	D  float64
}

func NewSmoothDoubleWell() *SmoothDoubleWell {
	return &SmoothDoubleWell{E0: 5.1, C: 0.085, D: 15.0}
}

func (s *SmoothDoubleWell) Validate() error {
	if s.E0 <= 0 || s.C <= 0 {
		return fmt.Errorf("smooth double well needs positive E0 and C, got E0=%g C=%g", s.E0, s.C)
	}
	return nil
}

func (s *SmoothDoubleWell) Evaluate(x float64) float64 {
	x2 := x * x
	return s.E0*(s.C*x2*x2-x2) + s.D
}

func (s *SmoothDoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"e0": s.E0, "c": s.C, "d": s.D}
}

func (s *SmoothDoubleWell) SetParam(name string, value float64) error {
	switch name {
	case "e0":
		s.E0 = value
	case "c":
		s.C = value
	case "d":
		s.D = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
