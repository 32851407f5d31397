package wavepacket

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/ahertz/qwave/internal/grid"
)

func TestGaussianSampleNormalized(t *testing.T) {
	g, err := grid.New(400, -10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	packet := NewGaussian()
	packet.Center = 1
	packet.Sigma = 0.8
	packet.Momentum = 2
	psi, err := packet.Sample(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(psi.Norm(g.Dx)-1) > 1e-12 {
		t.Errorf("sampled packet should have unit norm, got %g", psi.Norm(g.Dx))
	}
}

func TestGaussianPeaksAtCenter(t *testing.T) {
	g, err := grid.New(401, -10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	packet := NewGaussian()
	packet.Center = -3
	psi, err := packet.Sample(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	best := 0
	for i := range psi {
		if cmplx.Abs(psi[i]) > cmplx.Abs(psi[best]) {
			best = i
		}
	}
	if math.Abs(g.Points[best]+3) > g.Dx {
		t.Errorf("density peak at %g, expected near -3", g.Points[best])
	}
}

func TestGaussianAtRestIsReal(t *testing.T) {
	g, err := grid.New(100, -5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	psi, err := NewGaussian().Sample(g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range psi {
		if math.Abs(imag(v)) > 1e-15 {
			t.Fatalf("zero-momentum packet should be real, imag %g at %d", imag(v), i)
		}
	}
}

func TestGaussianValidation(t *testing.T) {
	g, err := grid.New(100, -5, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	packet := NewGaussian()
	packet.Sigma = 0
	if _, err := packet.Sample(g); err == nil {
		t.Error("expected error for zero width")
	}
	if err := packet.Validate(); err == nil {
		t.Error("expected validation error for zero width")
	}
}

func TestGaussianParams(t *testing.T) {
	packet := NewGaussian()
	if err := packet.SetParam("momentum", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if packet.Momentum != 3 {
		t.Errorf("param not applied, momentum=%g", packet.Momentum)
	}
	if err := packet.SetParam("bogus", 1); err == nil {
		t.Error("expected error for unknown param")
	}
	params := packet.GetParams()
	if params["momentum"] != 3 || params["sigma"] != 1 {
		t.Errorf("unexpected params %v", params)
	}
}

func TestFromEigenstate(t *testing.T) {
	state := []float64{0.5, -0.25, 1}
	psi := FromEigenstate(state)
	if len(psi) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(psi))
	}
	for i, v := range state {
		if real(psi[i]) != v || imag(psi[i]) != 0 {
			t.Errorf("sample %d: expected %g+0i, got %v", i, v, psi[i])
		}
	}
}
