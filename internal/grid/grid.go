package grid

import (
	"fmt"
	"math"
)

// Grid is an immutable uniform sampling of a 1D domain.
type Grid struct {
	Points []float64
	Dx     float64
	Min    float64
	Max    float64
	Radial bool
}

// New builds a uniform grid of n points spanning [min, max] inclusive.
func New(n int, min, max float64) (*Grid, error) {
	if n < 3 {
		return nil, fmt.Errorf("grid needs at least 3 points, got %d", n)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("grid bounds must be finite, got [%g, %g]", min, max)
	}
	if max <= min {
		return nil, fmt.Errorf("grid upper bound %g must exceed lower bound %g", max, min)
	}
	dx := (max - min) / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = min + float64(i)*dx
	}
	return &Grid{Points: pts, Dx: dx, Min: min, Max: max}, nil
}

// NewRadial builds a radial grid of n points on (0, rmax], starting at dr.
// The r=0 node is excluded so the Coulomb and centrifugal terms stay finite.
func NewRadial(n int, rmax float64) (*Grid, error) {
	if n < 3 {
		return nil, fmt.Errorf("radial grid needs at least 3 points, got %d", n)
	}
	if math.IsNaN(rmax) || math.IsInf(rmax, 0) || rmax <= 0 {
		return nil, fmt.Errorf("radial extent must be positive and finite, got %g", rmax)
	}
	dr := rmax / float64(n)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = float64(i+1) * dr
	}
	return &Grid{Points: pts, Dx: dr, Min: dr, Max: rmax, Radial: true}, nil
}

func (g *Grid) Len() int { return len(g.Points) }

// Index returns the index of the first grid point at or beyond x,
// or Len() if x lies past the upper bound.
func (g *Grid) Index(x float64) int {
	for i, p := range g.Points {
		if p >= x {
			return i
		}
	}
	return len(g.Points)
}
