package hamiltonian

import (
	"math"
	"testing"

	"github.com/ahertz/qwave/internal/grid"
	"github.com/ahertz/qwave/internal/potential"
)

func TestBuildStencil(t *testing.T) {
	// 3 points on [0,1]: dx=0.5, alpha=1/(2*0.25)=2.
	g, err := grid.New(3, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := Build(g, potential.NewFree())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, d := range h.Diag {
		if math.Abs(d-4) > 1e-12 {
			t.Errorf("diag[%d]: expected 2*alpha=4, got %g", i, d)
		}
	}
	for i, o := range h.OffDiag {
		if math.Abs(o+2) > 1e-12 {
			t.Errorf("offdiag[%d]: expected -alpha=-2, got %g", i, o)
		}
	}
}

func TestBuildAddsPotential(t *testing.T) {
	g, err := grid.New(5, -2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pot := potential.NewHarmonic()
	h, err := Build(g, pot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	alpha := 1 / (2 * g.Dx * g.Dx)
	for i, x := range g.Points {
		want := 2*alpha + pot.Evaluate(x)
		if math.Abs(h.Diag[i]-want) > 1e-12 {
			t.Errorf("diag[%d]: expected %g, got %g", i, want, h.Diag[i])
		}
	}
}

func TestBuildRejectsInvalid(t *testing.T) {
	g, err := grid.New(10, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := Build(nil, potential.NewFree()); err == nil {
		t.Error("expected error for nil grid")
	}
	if _, err := Build(g, nil); err == nil {
		t.Error("expected error for nil potential")
	}
	bad := potential.NewBarrier()
	bad.Width = -1
	if _, err := Build(g, bad); err == nil {
		t.Error("expected error for invalid potential")
	}
}

func TestBuildRadialCentrifugal(t *testing.T) {
	g, err := grid.NewRadial(100, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pot := potential.NewCoulomb()

	h0, err := BuildRadial(g, pot, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h1, err := BuildRadial(g, pot, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// l=1 adds l(l+1)/(2 r^2) = 1/r^2 to every diagonal entry.
	for i, r := range g.Points {
		want := h0.Diag[i] + 1/(r*r)
		if math.Abs(h1.Diag[i]-want) > 1e-9 {
			t.Errorf("diag[%d]: expected centrifugal shift, want %g got %g", i, want, h1.Diag[i])
		}
	}
}

func TestBuildRadialRejects(t *testing.T) {
	flat, err := grid.New(10, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := BuildRadial(flat, potential.NewCoulomb(), 0); err == nil {
		t.Error("expected error for non-radial grid")
	}

	g, err := grid.NewRadial(10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := BuildRadial(g, potential.NewCoulomb(), -1); err == nil {
		t.Error("expected error for negative angular momentum")
	}
}

func TestApplyMatchesHandEvaluation(t *testing.T) {
	g, err := grid.New(3, 0, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := Build(g, potential.NewFree())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// H * [0,1,0] = [-alpha, 2*alpha, -alpha] = [-2, 4, -2].
	out, err := h.Apply([]float64{0, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{-2, 4, -2}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-12 {
			t.Errorf("out[%d]: expected %g, got %g", i, want[i], out[i])
		}
	}

	if _, err := h.Apply([]float64{1, 2}); err == nil {
		t.Error("expected error for mismatched length")
	}
}

func TestSymRoundTrip(t *testing.T) {
	g, err := grid.New(4, 0, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h, err := Build(g, potential.NewHarmonic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := h.Sym()
	for i := 0; i < h.Dim(); i++ {
		if math.Abs(s.At(i, i)-h.Diag[i]) > 1e-12 {
			t.Errorf("At(%d,%d) does not match diag", i, i)
		}
		if i < h.Dim()-1 {
			if math.Abs(s.At(i, i+1)-h.OffDiag[i]) > 1e-12 {
				t.Errorf("At(%d,%d) does not match offdiag", i, i+1)
			}
			if math.Abs(s.At(i+1, i)-h.OffDiag[i]) > 1e-12 {
				t.Errorf("At(%d,%d) must be symmetric", i+1, i)
			}
		}
	}
}
