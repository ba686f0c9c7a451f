package scoring

import "math/rand"

// Modos del scorer liminal: que tan cerca esta el usuario de un umbral de
// cambio y cuanta tierra tiene bajo los pies mientras lo cruza.
const (
	LiminalIntegrating = "integrating"
	LiminalCrossing    = "crossing"
	LiminalApproaching = "approaching"
	LiminalDormant     = "dormant"
)

// Dimensiones del scorer liminal.
const (
	DimLiminalIntensity   = "liminal_intensity"
	DimThresholdProximity = "threshold_proximity"
	DimGroundedness       = "groundedness"
)

const liminalHistoryCap = 50

// NewLiminalScorer arma el scorer de deteccion de umbrales. rng nil usa
// semilla por reloj.
func NewLiminalScorer(rng *rand.Rand) *Engine {
	return NewEngine(Config{
		Name:       "liminal",
		Predicates: liminalPredicates(),
		Dimensions: liminalDimensions(),
		Modes:      liminalModes(),
		Guidance:   liminalGuidance(),
		HistoryCap: liminalHistoryCap,
		Rand:       rng,
	})
}

func liminalPredicates() []Predicate {
	return []Predicate{
		keywordPredicate("transition_language", []string{
			"between", "threshold", "crossing", "edge of", "turning point",
			"on the verge", "doorway", "limbo", "in transition",
		}),
		keywordPredicate("identity_flux", []string{
			"not who i was", "becoming", "no longer", "new me", "old self",
			"losing myself", "who am i", "dont recognize myself",
		}),
		keywordPredicate("dream_content", []string{
			"dream", "dreamt", "dreamed", "nightmare", "woke up from",
		}),
		keywordPredicate("paradox_markers", []string{
			"both", "neither", "at the same time", "contradiction", "paradox",
		}),
		keywordPredicate("dissolution_markers", []string{
			"dissolve", "empty", "void", "nothing matters", "unreal", "floating",
			"falling apart",
		}),
		keywordPredicate("grounding_markers", []string{
			"routine", "walk", "slept", "cooked", "work", "home", "family",
			"garden", "cleaned",
		}),
		keywordPredicate("overwhelm_markers", []string{
			"too much", "cant handle", "scared", "panic", "overwhelmed",
			"drowning",
		}),
		fieldPredicate("high_arousal", "arousal", 0.7),
	}
}

func liminalDimensions() []Dimension {
	return []Dimension{
		{
			Name: DimLiminalIntensity,
			Base: 0.2,
			Weights: map[string]float64{
				"transition_language": 0.25,
				"identity_flux":       0.2,
				"dream_content":       0.15,
				"dissolution_markers": 0.15,
				"paradox_markers":     0.1,
			},
		},
		{
			Name: DimThresholdProximity,
			Base: 0.3,
			Weights: map[string]float64{
				"identity_flux":       0.25,
				"transition_language": 0.2,
				"high_arousal":        0.1,
				"grounding_markers":   -0.15,
			},
		},
		{
			Name: DimGroundedness,
			Base: 0.5,
			Weights: map[string]float64{
				"grounding_markers":   0.2,
				"dissolution_markers": -0.2,
				"overwhelm_markers":   -0.2,
			},
		},
	}
}

func liminalModes() []ModeRule {
	return []ModeRule{
		{Label: LiminalIntegrating, When: func(s map[string]float64) bool {
			return s[DimLiminalIntensity] >= 0.6 && s[DimGroundedness] >= 0.6
		}},
		{Label: LiminalCrossing, When: func(s map[string]float64) bool {
			return s[DimLiminalIntensity] >= 0.6
		}},
		{Label: LiminalApproaching, When: func(s map[string]float64) bool {
			return s[DimThresholdProximity] >= 0.5
		}},
		{Label: LiminalDormant},
	}
}

func liminalGuidance() []GuidanceRule {
	return []GuidanceRule{
		{
			When: func(_ string, s map[string]float64) bool { return s[DimGroundedness] < 0.3 },
			Variants: []string{
				"Before going further, come back to something solid. Feet on the floor, one slow breath, one ordinary task.",
			},
		},
		{
			When: func(_ string, s map[string]float64) bool { return s[DimLiminalIntensity] >= 0.7 },
			Variants: []string{
				"You are standing in a doorway between who you were and who you are becoming. You do not have to rush the crossing.",
				"The threshold is close. Let what is dissolving dissolve; what is essential will keep its shape.",
			},
		},
		{
			When: func(_ string, s map[string]float64) bool { return s[DimThresholdProximity] >= 0.5 },
			Variants: []string{
				"Something is shifting at the edge of your awareness. Name it gently, without deciding what it means yet.",
			},
		},
		{
			Variants: []string{
				"Nothing needs to change right now. Rest in the ordinary; thresholds announce themselves when they are ready.",
			},
		},
	}
}
