package oracle

import "spiral-oracle/internal/domain"

// WaterAgent es el sanador: emocion, intuicion, flujo.
type WaterAgent struct{}

func (a *WaterAgent) Element() domain.Element {
	return domain.ElementWater
}

func (a *WaterAgent) Respond(input string, ctx domain.UserContext) domain.OracleResponse {
	text := normalizeText(input)

	if containsAnyWord(text, []string{"overwhelmed", "drowning", "flooded", "emotional"}) {
		return a.anchor(ctx)
	}
	if containsAnyWord(text, []string{"intuition", "psychic", "dreams", "visions", "knowing"}) {
		return a.deepenIntuition(ctx)
	}
	if containsAnyWord(text, []string{"heal", "hurt", "pain", "trauma", "wounded"}) {
		return a.healingWaters(ctx)
	}

	entry, ok := waterPhases[ctx.CurrentPhase]
	if !ok {
		entry = waterDefault
	}
	return entry.response(domain.ElementWater, ctx.CurrentPhase)
}

func (a *WaterAgent) InterpretSymbol(symbol string, ctx domain.UserContext) string {
	base := interpretWith(waterSymbols, symbol,
		"The %s flows with water's wisdom. What emotions does it stir?")
	switch ctx.CurrentPhase {
	case domain.PhaseTransformation:
		base += " Water supports your dissolution and rebirth."
	case domain.PhaseChallenge:
		base += " Let water teach you to flow around obstacles."
	}
	return base
}

func (a *WaterAgent) anchor(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementWater,
		Phase:   ctx.CurrentPhase,
		Message: "Overwhelmed one, when the waters rise too high, remember: you are " +
			"the vessel, not the flood. Find your anchor in breath, in ground, in " +
			"one small certainty. The wave passes; you remain.",
		Archetype:        "Anchor-Keeper",
		ReflectionPrompt: "What is one solid thing you can hold onto right now?",
		Ritual: &domain.Ritual{
			Name: "Emotional Anchoring",
			Steps: []string{
				"Place both feet flat on the ground",
				"Name five things you can see",
				"Take three slow breaths into the belly",
				"Say aloud: this feeling is weather, I am the sky",
			},
		},
		Resonance: 0.75,
	}
}

func (a *WaterAgent) deepenIntuition(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementWater,
		Phase:   ctx.CurrentPhase,
		Message: "Intuitive One, your inner waters carry ancient knowing. The images " +
			"and feelings that rise unbidden are messages from your depth. Do not " +
			"demand proof of them; record them and watch the patterns surface.",
		Archetype:        "Depth-Listener",
		ReflectionPrompt: "What has your intuition been whispering that your mind dismisses?",
		Resonance:        0.8,
	}
}

func (a *WaterAgent) healingWaters(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementWater,
		Phase:   ctx.CurrentPhase,
		Message: "Wounded Swimmer, Water knows how to heal. It cleanses, soothes, and " +
			"carries away what is done. Let your tears be holy water; grief moves " +
			"through you so it does not have to live in you.",
		Archetype:        "Healing-Spring",
		SymbolicImage:    "Clear spring washing over old stones",
		ReflectionPrompt: "What wound is ready to be washed, not hidden?",
		Resonance:        0.85,
	}
}

var waterPhases = map[domain.SpiralPhase]phaseEntry{
	domain.PhaseInitiation: {
		message: "Welcome, Soul-Swimmer. You stand at the edge of your emotional ocean. " +
			"You do not have to dive all at once; wade in, feel the temperature of your own depths.",
		archetype:        "Soul-Swimmer",
		reflectionPrompt: "What feeling have you been waiting for permission to feel?",
		resonance:        0.6,
		ritual: &domain.Ritual{
			Name:  "Sacred Spring Blessing",
			Tools: []string{"Bowl of water", "Sea salt", "Blue candle"},
			Steps: []string{
				"Fill a bowl with fresh water under moonlight",
				"Add three pinches of sea salt",
				"Gaze into the water and state your emotional intention",
				"Wash hands and face, feeling renewal",
			},
			Timing: "New moon or during rain",
		},
	},
	domain.PhaseExploration: {
		message: "Current-Rider, you explore the streams of feeling within. Follow " +
			"each one with curiosity; even the cold currents teach you the shape of your riverbed.",
		archetype:        "Current-Rider",
		reflectionPrompt: "Which emotion visits you most often, and what does it want?",
		resonance:        0.65,
	},
	domain.PhaseChallenge: {
		message: "Storm-Navigator, the waters churn with intensity now. You are not " +
			"drowning; you are learning to swim in deeper water than before.",
		archetype:        "Storm-Navigator",
		symbolicImage:    "Small boat riding tall waves under dark sky",
		reflectionPrompt: "What is this emotional storm asking you to release?",
		resonance:        0.75,
	},
	domain.PhaseTransformation: {
		message: "Shape-Shifter, you enter the sacred dissolution. Like salt in ocean, " +
			"the old form gives itself to the whole. What dissolves was never the essence.",
		archetype:        "Shape-Shifter",
		symbolicImage:    "Figure of salt dissolving into moonlit sea",
		reflectionPrompt: "What are you ready to let dissolve completely?",
		resonance:        0.9,
	},
	domain.PhaseIntegration: {
		message: "Flow-Finder, you discover your natural rhythm now. Not the forced " +
			"current of should, but the living water of your own pace.",
		archetype:        "Flow-Finder",
		reflectionPrompt: "Where does your life already flow without effort?",
		resonance:        0.8,
	},
	domain.PhaseMastery: {
		message: "Healing-Spring, your waters now carry medicine for others. You hold " +
			"space for feeling without being swept away by it.",
		archetype:        "Healing-Spring",
		reflectionPrompt: "Whose storm could your calm waters steady today?",
		resonance:        0.85,
	},
	domain.PhaseTranscendence: {
		message: "Ocean-Heart, you have become Water itself. Individual drop and " +
			"endless sea at once, you feel everything and cling to nothing.",
		archetype:        "Ocean-Heart",
		symbolicImage:    "Single drop merging with luminous ocean",
		reflectionPrompt: "What remains of you when the wave returns to the sea?",
		resonance:        0.95,
	},
}

var waterDefault = phaseEntry{
	message: "The Water Oracle flows to meet you. You are not separate from what " +
		"you feel; emotion is the water of the soul, and it always seeks its level.",
	archetype:        "Water-Voice",
	reflectionPrompt: "If this feeling were water, what kind of water would it be?",
	resonance:        0.65,
}

var waterSymbols = map[string]string{
	"ocean":     "The vast unconscious calls you. What emotions are you ready to explore?",
	"river":     "Life flows forward. Where are you resisting the current?",
	"rain":      "Emotional cleansing arrives. Let the tears fall.",
	"flood":     "Overwhelming emotions seek acknowledgment. Create space for feeling.",
	"ice":       "Frozen emotions await thawing. What needs to melt?",
	"waterfall": "Powerful release is available. Surrender to the flow.",
	"lake":      "Still waters reflect truth. What does your calm surface hide?",
	"tears":     "Sacred healing waters. Your grief is holy.",
	"swimming":  "You navigate emotional depths. Trust your ability to stay afloat.",
	"drowning":  "Emotional overwhelm signals need for support. Reach for help.",
}
