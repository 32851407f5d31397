package potential

import "fmt"

// Barrier is a rectangular barrier of height V0 on [Xmin, Xmin+Width].
type Barrier struct {
	Width float64
	Xmin  float64
	V0    float64
}

func NewBarrier() *Barrier {
	return &Barrier{Width: 1.0, Xmin: 0.0, V0: 1.0}
}

func (b *Barrier) Validate() error {
	if b.Width <= 0 {
		return fmt.Errorf("barrier width must be positive, got %g", b.Width)
	}
	if b.V0 <= 0 {
		return fmt.Errorf("barrier height must be positive, got %g", b.V0)
	}
	return nil
}

func (b *Barrier) Evaluate(x float64) float64 {
	if x >= b.Xmin && x <= b.Xmin+b.Width {
		return b.V0
	}
	return 0
}

func (b *Barrier) GetParams() map[string]float64 {
	return map[string]float64{"width": b.Width, "xmin": b.Xmin, "v0": b.V0}
}

func (b *Barrier) SetParam(name string, value float64) error {
	switch name {
	case "width":
		b.Width = value
	case "xmin":
		b.Xmin = value
	case "v0":
		b.V0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
