package metrics

import (
	"math"
	"testing"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/qm"
)

func uniformState(n int, dx float64) qm.Wavefunction {
	w := make(qm.Wavefunction, n)
	amp := complex(math.Sqrt(1/(float64(n)*dx)), 0)
	for i := range w {
		w[i] = amp
	}
	return w
}

func TestNormDriftTracksWorstDeviation(t *testing.T) {
	g, err := grid.New(100, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewNormDrift(g)
	if m.Name() != "norm_drift" {
		t.Errorf("unexpected name %q", m.Name())
	}

	w := uniformState(g.Len(), g.Dx)
	m.Observe(w, 0)
	if m.Value() > 1e-12 {
		t.Errorf("normalised state should show no drift, got %g", m.Value())
	}

	// Scale amplitudes by sqrt(2): norm doubles, drift hits 1.
	for i := range w {
		w[i] *= complex(math.Sqrt2, 0)
	}
	m.Observe(w, 1)
	if math.Abs(m.Value()-1) > 1e-10 {
		t.Errorf("expected drift 1 after doubling the norm, got %g", m.Value())
	}

	// The metric keeps the worst value even when later samples recover.
	for i := range w {
		w[i] /= complex(math.Sqrt2, 0)
	}
	m.Observe(w, 2)
	if math.Abs(m.Value()-1) > 1e-10 {
		t.Errorf("drift must not shrink on recovery, got %g", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("reset should clear the drift, got %g", m.Value())
	}
}

func TestTransmissionSplitsProbability(t *testing.T) {
	g, err := grid.New(100, -1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := uniformState(g.Len(), g.Dx)

	m := NewTransmission(g, 0)
	m.Observe(w, 0)
	// Half of a uniform state sits beyond the midpoint.
	if math.Abs(m.Value()-0.5) > 0.02 {
		t.Errorf("expected about half the probability beyond 0, got %g", m.Value())
	}

	all := NewTransmission(g, -5)
	all.Observe(w, 0)
	if math.Abs(all.Value()-1) > 1e-10 {
		t.Errorf("threshold below the domain should capture everything, got %g", all.Value())
	}

	none := NewTransmission(g, 5)
	none.Observe(w, 0)
	if none.Value() != 0 {
		t.Errorf("threshold above the domain should capture nothing, got %g", none.Value())
	}
}

func TestPositionExpectation(t *testing.T) {
	g, err := grid.New(200, -1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := NewPosition(g)
	sym := uniformState(g.Len(), g.Dx)
	m.Observe(sym, 0)
	if math.Abs(m.Value()) > 1e-10 {
		t.Errorf("symmetric state should have <x>=0, got %g", m.Value())
	}

	// All probability on a single point pins <x> to that coordinate.
	spike := make(qm.Wavefunction, g.Len())
	idx := g.Index(0.5)
	spike[idx] = complex(math.Sqrt(1/g.Dx), 0)
	m.Observe(spike, 1)
	if math.Abs(m.Value()-g.Points[idx]) > 1e-10 {
		t.Errorf("expected <x>=%g for a point mass, got %g", g.Points[idx], m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("reset should clear the value, got %g", m.Value())
	}
}
