package oracle

import "spiral-oracle/internal/domain"

// EarthAgent es el constructor: estabilidad, manifestacion, paciencia.
type EarthAgent struct{}

func (a *EarthAgent) Element() domain.Element {
	return domain.ElementEarth
}

func (a *EarthAgent) Respond(input string, ctx domain.UserContext) domain.OracleResponse {
	text := normalizeText(input)

	if containsAnyWord(text, []string{"scattered", "ungrounded", "anxious", "floating", "chaotic"}) {
		return a.grounding(ctx)
	}
	if containsAnyWord(text, []string{"manifest", "goal", "achieve", "build", "plan"}) {
		return a.manifestation(ctx)
	}
	if containsAnyWord(text, []string{"unstable", "insecure", "foundation", "security"}) {
		return a.stability(ctx)
	}

	entry, ok := earthPhases[ctx.CurrentPhase]
	if !ok {
		entry = earthDefault
	}
	return entry.response(domain.ElementEarth, ctx.CurrentPhase)
}

func (a *EarthAgent) InterpretSymbol(symbol string, ctx domain.UserContext) string {
	base := interpretWith(earthSymbols, symbol,
		"The %s carries earth's medicine. What does it teach about patience and growth?")
	switch ctx.CurrentPhase {
	case domain.PhaseInitiation:
		base += " Plant your seeds wisely in this beginning time."
	case domain.PhaseMastery:
		base += " Your roots run deep enough to support others now."
	}
	return base
}

func (a *EarthAgent) grounding(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementEarth,
		Phase:   ctx.CurrentPhase,
		Message: "Scattered one, the Earth is always beneath you, patient and unmoved. " +
			"Come down from the whirlwind: feet on soil, hands on something real. " +
			"Gravity is a kindness; let it hold you.",
		Archetype:        "Root-Tender",
		ReflectionPrompt: "What one physical act would bring you back to your body now?",
		Ritual: &domain.Ritual{
			Name: "Barefoot Return",
			Steps: []string{
				"Stand barefoot on the ground",
				"Feel the weight pour out of your shoulders into the earth",
				"Name one thing that is solid in your life",
				"Carry that solidity into your next task",
			},
		},
		Resonance: 0.75,
	}
}

func (a *EarthAgent) manifestation(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementEarth,
		Phase:   ctx.CurrentPhase,
		Message: "Builder, dreams become real the way mountains form: pressure, time, " +
			"layer upon layer. Choose one seed, plant it in actual soil - a date, a " +
			"first step, a phone call - and tend it daily.",
		Archetype:        "Manifestor",
		SymbolicImage:    "Hands pressing a seed into dark rich soil",
		ReflectionPrompt: "What is the very next physical step toward what you want?",
		Resonance:        0.8,
	}
}

func (a *EarthAgent) stability(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementEarth,
		Phase:   ctx.CurrentPhase,
		Message: "Foundation-Seeker, even mountains rest on shifting plates. Stability " +
			"is not the absence of movement but the depth of your roots. Tend the " +
			"basics: sleep, food, shelter, one trusted hand to hold.",
		Archetype:        "Foundation-Keeper",
		ReflectionPrompt: "Which basic need, honestly tended, would steady everything else?",
		Resonance:        0.75,
	}
}

var earthPhases = map[domain.SpiralPhase]phaseEntry{
	domain.PhaseInitiation: {
		message: "Seed-Planter, every great oak began as an acorn willing to be buried. " +
			"Your intention needs darkness and patience before it needs light.",
		archetype:        "Seed-Planter",
		reflectionPrompt: "What seed are you willing to tend for a full season?",
		resonance:        0.6,
		ritual: &domain.Ritual{
			Name:  "First Seed Ritual",
			Tools: []string{"A real seed", "Pot of soil", "Water"},
			Steps: []string{
				"Hold the seed and name your intention",
				"Plant it with deliberate care",
				"Water it as a daily promise",
			},
			Timing: "Waxing moon",
		},
	},
	domain.PhaseExploration: {
		message: "Soil-Tester, not every ground suits every seed. Try your roots in " +
			"different soils; notice where you draw nourishment and where you starve.",
		archetype:        "Soil-Tester",
		reflectionPrompt: "Which environments make you feel nourished, and which deplete you?",
		resonance:        0.65,
	},
	domain.PhaseChallenge: {
		message: "Root-Strengthener, the storm that bends you is thickening your trunk. " +
			"Hold your ground without rigidity; deep roots allow flexible branches.",
		archetype:        "Root-Strengthener",
		symbolicImage:    "Tree bending in wind, roots gripping stone",
		reflectionPrompt: "What is this pressure teaching your roots?",
		resonance:        0.75,
	},
	domain.PhaseTransformation: {
		message: "Composter, what falls from you is not waste but future fertility. " +
			"Let the old growth decay; it will feed what is coming.",
		archetype:        "Composter",
		symbolicImage:    "Autumn leaves becoming black fertile earth",
		reflectionPrompt: "What old structure can you let rot into nourishment?",
		resonance:        0.85,
	},
	domain.PhaseIntegration: {
		message: "Garden-Keeper, your plot is established now. The work shifts from " +
			"clearing to tending: small daily acts of care, repeated in season.",
		archetype:        "Garden-Keeper",
		reflectionPrompt: "What daily practice keeps your garden alive?",
		resonance:        0.8,
	},
	domain.PhaseMastery: {
		message: "Abundance-Sharer, your harvest exceeds your need. Earth's mastery is " +
			"generosity: feed others from your surplus and plant the next cycle together.",
		archetype:        "Abundance-Sharer",
		reflectionPrompt: "Who could be fed by what you have grown?",
		resonance:        0.85,
	},
	domain.PhaseTranscendence: {
		message: "Mountain-Being, you have become Earth itself: ancient, patient, " +
			"unshakable. Seasons pass across your slopes and you remain.",
		archetype:        "Mountain-Being",
		symbolicImage:    "Mountain holding sky and valley in stillness",
		reflectionPrompt: "What does patience look like measured in geological time?",
		resonance:        0.95,
	},
}

var earthDefault = phaseEntry{
	message: "The Earth Oracle stands beneath you. You are not separate from the " +
		"ground you walk on; your body is borrowed soil, and it knows how to grow things.",
	archetype:        "Earth-Voice",
	reflectionPrompt: "What in your life is quietly asking to be tended?",
	resonance:        0.65,
}

var earthSymbols = map[string]string{
	"mountain":   "Immovable strength rises within. What foundation are you building?",
	"cave":       "The womb of earth offers shelter. What needs protection as it grows?",
	"tree":       "Deep roots, tall growth. How balanced is your above and below?",
	"garden":     "You tend the soul's growth. What needs weeding or watering?",
	"stone":      "Ancient wisdom speaks. What enduring truth do you carry?",
	"earthquake": "Foundations shift for new stability. What old structures must fall?",
	"crystal":    "Earth's clarity formed under pressure. What clarity emerges from your challenges?",
	"soil":       "Fertile possibility awaits. What are you ready to plant?",
	"roots":      "Hidden support systems. What unseen forces nourish you?",
	"harvest":    "Time to reap what you've sown. What fruits has your patience grown?",
}
