package analysis

import (
	"math"
	"testing"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/qm"
	"github.com/ahertz/qwave/internal/wavepacket"
)

func TestMomentumDensityPeaksAtPacketMomentum(t *testing.T) {
	g, err := grid.New(512, -20, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	packet := wavepacket.NewGaussian()
	packet.Sigma = 2
	packet.Momentum = 2
	psi, err := packet.Sample(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Peak within one momentum bin, dk = 2 pi / (N dx).
	k, err := DominantMomentum(psi, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dk := 2 * math.Pi / (float64(g.Len()) * g.Dx)
	if math.Abs(k-2) > dk {
		t.Errorf("expected dominant momentum near 2, got %g (bin %g)", k, dk)
	}
}

func TestMomentumDensityAtRest(t *testing.T) {
	g, err := grid.New(256, -10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	psi, err := wavepacket.NewGaussian().Sample(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k, err := DominantMomentum(psi, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(k) > 1e-10 {
		t.Errorf("packet at rest should peak at k=0, got %g", k)
	}
}

func TestMomentumDensityProperties(t *testing.T) {
	g, err := grid.New(128, -5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	packet := wavepacket.NewGaussian()
	packet.Momentum = 1
	psi, err := packet.Sample(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ks, density, err := MomentumDensity(psi, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ks) != g.Len() || len(density) != g.Len() {
		t.Fatalf("expected %d samples, got %d and %d", g.Len(), len(ks), len(density))
	}
	for i := 1; i < len(ks); i++ {
		if ks[i] <= ks[i-1] {
			t.Fatalf("momentum grid out of order at %d: %g <= %g", i, ks[i], ks[i-1])
		}
	}
	sum := 0.0
	for _, d := range density {
		if d < 0 {
			t.Fatal("density must be non-negative")
		}
		sum += d
	}
	if math.Abs(sum-1) > 1e-10 {
		t.Errorf("density should sum to 1, got %g", sum)
	}
}

func TestMomentumDensityValidation(t *testing.T) {
	g, err := grid.New(16, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := MomentumDensity(make(qm.Wavefunction, 8), g); err == nil {
		t.Error("expected error for mismatched length")
	}
	if _, _, err := MomentumDensity(make(qm.Wavefunction, 16), nil); err == nil {
		t.Error("expected error for nil grid")
	}
	if _, _, err := MomentumDensity(make(qm.Wavefunction, 16), g); err == nil {
		t.Error("expected error for zero state")
	}
}
