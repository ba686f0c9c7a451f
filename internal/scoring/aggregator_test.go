package scoring

import (
	"math"
	"testing"
)

func TestAggregateClampsToUnitInterval(t *testing.T) {
	dims := []Dimension{{
		Name: "depth",
		Base: 0.3,
		Weights: map[string]float64{
			"p1": 0.2, "p2": 0.2, "p3": 0.2, "p4": 0.2, "p5": 0.2,
		},
	}}
	results := map[string]bool{"p1": true, "p2": true, "p3": true, "p4": true, "p5": true}

	scores := aggregate(dims, results)
	// 0.3 + 5*0.2 satura en 1.0, no 1.3 ni renormalizado.
	if scores["depth"] != 1.0 {
		t.Fatalf("expected saturation at 1.0, got %v", scores["depth"])
	}

	dims[0].Weights = map[string]float64{"neg": -0.9}
	scores = aggregate(dims, map[string]bool{"neg": true})
	if scores["depth"] != 0 {
		t.Fatalf("expected floor at 0, got %v", scores["depth"])
	}
}

func TestAggregateBaseExample(t *testing.T) {
	dims := []Dimension{{
		Name:    "depth",
		Base:    0.5,
		Weights: map[string]float64{"only": 0.3, "off": 0.4},
	}}
	scores := aggregate(dims, map[string]bool{"only": true})
	if math.Abs(scores["depth"]-0.8) > 1e-9 {
		t.Fatalf("expected 0.8, got %v", scores["depth"])
	}
}

func TestAggregateMonotonicEvidence(t *testing.T) {
	dims := []Dimension{{
		Name:    "depth",
		Base:    0.3,
		Weights: map[string]float64{"a": 0.2, "b": 0.25, "c": 0.3},
	}}

	prev := -1.0
	results := map[string]bool{}
	for _, pred := range []string{"a", "b", "c"} {
		results[pred] = true
		score := aggregate(dims, results)["depth"]
		if score < prev {
			t.Fatalf("adding evidence %q decreased score: %v -> %v", pred, prev, score)
		}
		if score < 0 || score > 1 {
			t.Fatalf("score out of range: %v", score)
		}
		prev = score
	}
}

func TestClamp01NaN(t *testing.T) {
	if got := clamp01(math.NaN()); got != 0 {
		t.Fatalf("expected NaN to clamp to 0, got %v", got)
	}
	if got := clamp01(math.Inf(1)); got != 1 {
		t.Fatalf("expected +Inf to clamp to 1, got %v", got)
	}
}
