package scoring

import "math/rand"

// Modos del scorer de atencion. Conjunto cerrado; la clasificacion es una
// cascada ordenada donde gana la primera regla que matchea.
const (
	AttentionIntegrated    = "integrated"
	AttentionRightDominant = "right_dominant"
	AttentionLeftDominant  = "left_dominant"
	AttentionConflicted    = "conflicted"
)

// Dimensiones del scorer de atencion.
const (
	DimDepth       = "depth"
	DimPresencing  = "presencing"
	DimReceptivity = "receptivity"
	DimCoherence   = "coherence"
)

const attentionHistoryCap = 1000

// NewAttentionScorer arma el scorer de calidad de atencion: mide cuanta
// profundidad, presencia y apertura trae una entrada de diario. rng nil usa
// semilla por reloj.
func NewAttentionScorer(rng *rand.Rand) *Engine {
	return NewEngine(Config{
		Name:       "attention",
		Predicates: attentionPredicates(),
		Dimensions: attentionDimensions(),
		Modes:      attentionModes(),
		Guidance:   attentionGuidance(),
		HistoryCap: attentionHistoryCap,
		Rand:       rng,
	})
}

func attentionPredicates() []Predicate {
	return []Predicate{
		keywordPredicate("sensory_language", []string{
			"notice", "feel", "felt", "sense", "body", "breath",
			"warm", "cold", "tight", "chest", "shoulders", "stomach",
		}),
		keywordPredicate("present_moment", []string{
			"right now", "in this moment", "as i write", "here with",
			"at this very", "this morning i notice",
		}),
		keywordPredicate("embodied_awareness", []string{
			"grounded", "breathing", "heartbeat", "tension", "relaxed",
			"in my body", "physically",
		}),
		{
			Name: "reflective_question",
			Detect: func(in Input) bool {
				text := normalize(in.Text)
				if !containsAny(text, []string{"?"}) {
					return false
				}
				return containsAny(text, []string{"why", "what if", "how come", "i wonder", "what would"})
			},
		},
		keywordPredicate("metaphor_language", []string{
			"like a", "as if", "as though", "feels like", "reminds me of",
		}),
		keywordPredicate("abstract_analysis", []string{
			"because", "therefore", "the reason", "i think that", "logically",
			"i should", "i must", "the plan", "makes sense",
		}),
		keywordPredicate("rumination_loop", []string{
			"again and again", "over and over", "cant stop thinking",
			"keep thinking", "same thoughts", "spinning",
		}),
		keywordPredicate("openness_markers", []string{
			"maybe", "perhaps", "curious", "open to", "i could try",
			"what would happen", "willing to",
		}),
		keywordPredicate("avoidance_markers", []string{
			"whatever", "doesnt matter", "dont want to talk", "nothing to say",
			"forget it", "who cares",
		}),
		{
			Name: "rich_narrative",
			Detect: func(in Input) bool {
				return wordCount(in.Text) >= 60
			},
		},
		{
			Name: "terse_input",
			Detect: func(in Input) bool {
				n := wordCount(in.Text)
				return n > 0 && n <= 3
			},
		},
	}
}

// Constantes base y pesos por dimension. Son constantes de diseño, no
// derivadas; la saturacion se resuelve por clamp en el aggregator.
func attentionDimensions() []Dimension {
	return []Dimension{
		{
			Name: DimDepth,
			Base: 0.3,
			Weights: map[string]float64{
				"metaphor_language":   0.2,
				"reflective_question": 0.2,
				"rich_narrative":      0.15,
				"sensory_language":    0.1,
				"terse_input":         -0.2,
			},
		},
		{
			Name: DimPresencing,
			Base: 0.4,
			Weights: map[string]float64{
				"present_moment":     0.25,
				"sensory_language":   0.2,
				"embodied_awareness": 0.15,
				"rumination_loop":    -0.2,
			},
		},
		{
			Name: DimReceptivity,
			Base: 0.4,
			Weights: map[string]float64{
				"openness_markers":    0.25,
				"reflective_question": 0.15,
				"avoidance_markers":   -0.25,
				"terse_input":         -0.1,
			},
		},
		{
			Name: DimCoherence,
			Base: 0.5,
			Weights: map[string]float64{
				"abstract_analysis": 0.2,
				"rich_narrative":    0.1,
				"rumination_loop":   -0.2,
			},
		},
	}
}

func attentionModes() []ModeRule {
	return []ModeRule{
		{Label: AttentionIntegrated, When: func(s map[string]float64) bool {
			return s[DimPresencing] >= 0.6 && s[DimCoherence] >= 0.6
		}},
		{Label: AttentionRightDominant, When: func(s map[string]float64) bool {
			return s[DimPresencing] >= 0.6
		}},
		{Label: AttentionLeftDominant, When: func(s map[string]float64) bool {
			return s[DimCoherence] >= 0.6
		}},
		{Label: AttentionConflicted},
	}
}

func attentionGuidance() []GuidanceRule {
	return []GuidanceRule{
		{
			When: func(_ string, s map[string]float64) bool { return s[DimPresencing] >= 0.75 },
			Variants: []string{
				"You are writing from inside the moment itself. Stay with what your body already knows.",
				"There is real presence in these words. Let the stillness speak before you move on.",
			},
		},
		{
			When: func(_ string, s map[string]float64) bool { return s[DimDepth] >= 0.7 },
			Variants: []string{
				"Something deep is surfacing here. What image wants to carry it further?",
				"You have touched a deeper current. Follow the metaphor one more step.",
			},
		},
		{
			When: func(_ string, s map[string]float64) bool { return s[DimReceptivity] < 0.3 },
			Variants: []string{
				"No need to force anything open. Name one small thing you can still be curious about.",
			},
		},
		{
			When: func(_ string, s map[string]float64) bool { return s[DimCoherence] < 0.3 },
			Variants: []string{
				"The thoughts are circling. Put them down on one line each and let the page hold them.",
			},
		},
		{
			Variants: []string{
				"Whatever is here is welcome. What moves through you as you read your own words back?",
				"Every breath is a place to begin again. What wants your attention right now?",
			},
		},
	}
}
