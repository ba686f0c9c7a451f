package scoring

import "testing"

func TestPatternConvergesToRepeatedSample(t *testing.T) {
	p := NewPatternStore()

	// Promedio inicial 0.5 y luego 50 muestras de 1.0 para el mismo contexto.
	p.Observe("session-1", map[string]float64{"depth": 0.5})
	for i := 0; i < 50; i++ {
		p.Observe("session-1", map[string]float64{"depth": 1.0})
	}

	avg, ok := p.Characteristic("session-1", "depth")
	if !ok {
		t.Fatalf("expected characteristic for session-1/depth")
	}
	if avg <= 0.95 {
		t.Fatalf("expected convergence above 0.95, got %v", avg)
	}
	if avg > 1.0 {
		t.Fatalf("average exceeded sample value: %v", avg)
	}
}

func TestPatternKeepsContextsSeparate(t *testing.T) {
	p := NewPatternStore()
	p.Observe("a", map[string]float64{"depth": 0.9})
	p.Observe("b", map[string]float64{"depth": 0.1})

	avgA, _ := p.Characteristic("a", "depth")
	avgB, _ := p.Characteristic("b", "depth")
	if avgA != 0.9 || avgB != 0.1 {
		t.Fatalf("contexts leaked into each other: a=%v b=%v", avgA, avgB)
	}

	if _, ok := p.Characteristic("a", "missing"); ok {
		t.Fatalf("did not expect characteristic for unknown dimension")
	}
	if _, ok := p.Characteristic("zzz", "depth"); ok {
		t.Fatalf("did not expect characteristic for unknown context")
	}
}
