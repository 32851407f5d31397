package potential

import (
	"fmt"
	"sort"
)

var builders = map[string]func() Potential{
	"free":        func() Potential { return NewFree() },
	"well":        func() Potential { return NewInfiniteWell() },
	"finite_well": func() Potential { return NewFiniteWell() },
	"barrier":     func() Potential { return NewBarrier() },
	"harmonic":    func() Potential { return NewHarmonic() },
	"coulomb":     func() Potential { return NewCoulomb() },
	"double_well": func() Potential { return NewDoubleWell() },
	"smooth_well": func() Potential { return NewSmoothDoubleWell() },
}

// New builds the named potential with defaults, applies params, and validates.
func New(name string, params map[string]float64) (Potential, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown potential: %s (available: %v)", name, List())
	}
	p := build()
	if cfg, ok := p.(Configurable); ok {
		for k, v := range params {
			if err := cfg.SetParam(k, v); err != nil {
				return nil, fmt.Errorf("potential %s: %w", name, err)
			}
		}
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("potential %s: %w", name, err)
	}
	return p, nil
}

// List returns the registered potential names in stable order.
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
