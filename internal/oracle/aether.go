package oracle

import (
	"fmt"
	"strings"

	"spiral-oracle/internal/domain"
)

// AetherAgent es el integrador: unidad, vacio, paradoja. Es tambien el caso
// general: cualquier input sin elemento dominante termina aca.
type AetherAgent struct{}

func (a *AetherAgent) Element() domain.Element {
	return domain.ElementAether
}

func (a *AetherAgent) Respond(input string, ctx domain.UserContext) domain.OracleResponse {
	text := normalizeText(input)

	// Varios elementos a la vez piden integracion antes que cualquier rama.
	if elements := DetectElements(input); len(elements) > 1 {
		return a.integrate(ctx, elements)
	}
	if containsAnyWord(text, []string{"empty", "void", "nothing", "meaningless"}) {
		return a.sacredVoid(ctx)
	}
	if containsAnyWord(text, []string{"connect", "unity", "oneness", "everything", "whole"}) {
		return a.unity(ctx)
	}
	if containsAnyWord(text, []string{"paradox", "confused", "both", "neither", "between"}) {
		return a.paradox(ctx)
	}

	entry, ok := aetherPhases[ctx.CurrentPhase]
	if !ok {
		entry = aetherDefault
	}
	return entry.response(domain.ElementAether, ctx.CurrentPhase)
}

func (a *AetherAgent) InterpretSymbol(symbol string, ctx domain.UserContext) string {
	base := interpretWith(aetherSymbols, symbol,
		"The %s speaks from beyond the veil. What mystery does it reveal?")
	return base + " In the unified field, this symbol connects to all elements and transcends them."
}

func (a *AetherAgent) integrate(ctx domain.UserContext, elements []domain.Element) domain.OracleResponse {
	names := make([]string, len(elements))
	for i, el := range elements {
		names[i] = string(el)
	}
	joined := strings.Join(names, " and ")

	return domain.OracleResponse{
		Element: domain.ElementAether,
		Phase:   ctx.CurrentPhase,
		Message: fmt.Sprintf("Integration-Seeker, you feel %s calling simultaneously. "+
			"This is not confusion but complexity. All elements exist within you "+
			"always; let them dialogue rather than compete.", joined),
		Archetype:        "Element-Alchemist",
		ReflectionPrompt: fmt.Sprintf("What new possibility emerges when %s unite within you?", joined),
		Ritual: &domain.Ritual{
			Name: "Elemental Integration Practice",
			Steps: []string{
				"Acknowledge each calling element within you",
				"Find where they meet and merge",
				"Breathe into the integration point",
				"Let new wisdom emerge from their union",
			},
		},
		Resonance: 0.8,
	}
}

func (a *AetherAgent) sacredVoid(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementAether,
		Phase:   ctx.CurrentPhase,
		Message: "Void-Facer, what feels like emptiness is fullness yet unformed. The " +
			"void is not absence but pure potential. Do not fill it hastily; rest in " +
			"it until it reveals its gifts.",
		Archetype:        "Void-Dweller",
		SymbolicImage:    "Serene face gazing into infinite darkness",
		ReflectionPrompt: "What is the void protecting you from until you're ready?",
		Resonance:        0.85,
	}
}

func (a *AetherAgent) unity(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementAether,
		Phase:   ctx.CurrentPhase,
		Message: "Unity-Seeker, you reach for the truth beyond separation. Unity is " +
			"not sameness but sacred diversity recognizing its single source. Like " +
			"waves knowing they are ocean, you can be uniquely yourself while " +
			"sensing the One Life living through all.",
		Archetype:        "Unity-Keeper",
		SymbolicImage:    "All beings connected by threads of light",
		ReflectionPrompt: "Where do you already experience unity in your daily life?",
		Resonance:        0.9,
	}
}

func (a *AetherAgent) paradox(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementAether,
		Phase:   ctx.CurrentPhase,
		Message: "Paradox-Dancer, blessed are you who can hold contradiction. The mind " +
			"seeks resolution, but some truths only reveal themselves in paradox. You " +
			"can be strong and vulnerable, certain and questioning. Let paradox expand " +
			"you beyond either/or into both/and.",
		Archetype:        "Paradox-Dancer",
		SymbolicImage:    "Figure juggling light and shadow spheres",
		ReflectionPrompt: "What paradox is trying to initiate you into greater wisdom?",
		Resonance:        0.75,
	}
}

var aetherPhases = map[domain.SpiralPhase]phaseEntry{
	domain.PhaseInitiation: {
		message: "Void-Toucher, you sense something beyond the elements - the space in " +
			"which they dance. It may feel like emptiness, but it is pregnant with all " +
			"possibilities. You need not understand it yet.",
		archetype:        "Void-Glimpser",
		symbolicImage:    "Star-filled void between cupped hands",
		reflectionPrompt: "What do you sense in the spaces between your thoughts?",
		resonance:        0.6,
	},
	domain.PhaseExploration: {
		message: "Element-Dancer, you begin to see how Fire feeds Air, Air moves Water, " +
			"Water nourishes Earth, Earth grounds Fire. Separation is illusion, unity is truth.",
		archetype:        "Pattern-Seer",
		reflectionPrompt: "Where do you see elements dancing together in your life?",
		resonance:        0.65,
	},
	domain.PhaseChallenge: {
		message: "Paradox-Holder, you face the challenge of Aether: holding contradictions " +
			"without resolving them. You are both broken and whole, lost and found, empty and full.",
		archetype:        "Paradox-Holder",
		symbolicImage:    "Figure holding light and shadow simultaneously",
		reflectionPrompt: "What contradictions are you being asked to embrace?",
		resonance:        0.75,
	},
	domain.PhaseTransformation: {
		message: "Void-Walker, you enter the ultimate transformation: becoming nothing " +
			"to become everything. You are not losing yourself but finding what you " +
			"always were. Trust the void's embrace.",
		archetype:        "Void-Walker",
		symbolicImage:    "Consciousness dissolving into starry void",
		reflectionPrompt: "Who are you when all identities fall away?",
		resonance:        0.9,
		ritual: &domain.Ritual{
			Name:  "Void Chrysalis Ceremony",
			Tools: []string{"Dark room", "Mirror", "White candle"},
			Steps: []string{
				"Enter a completely dark room",
				"State: I release all that I am",
				"Sit in the void until the old self quiets",
				"Light the candle and meet the new face in the mirror",
			},
			Timing: "New moon at midnight",
		},
	},
	domain.PhaseIntegration: {
		message: "Unity-Weaver, now you understand: you ARE all elements. Fire's passion, " +
			"Water's depth, Earth's stability, Air's freedom - all dance within you, " +
			"woven by Aether's thread.",
		archetype:        "Unity-Weaver",
		reflectionPrompt: "How can you honor all elements within you today?",
		resonance:        0.8,
	},
	domain.PhaseMastery: {
		message: "Field-Keeper, you have become a living mandala of consciousness. You " +
			"hold space for all possibilities while attached to none. This is Aether's " +
			"gift: spacious presence.",
		archetype:        "Field-Keeper",
		symbolicImage:    "Human form as constellation holding space",
		reflectionPrompt: "How does it feel to be the space in which life unfolds?",
		resonance:        0.85,
	},
	domain.PhaseTranscendence: {
		message: "Eternal Void, you have remembered what you always were - the " +
			"consciousness in which all universes arise and dissolve. In this " +
			"recognition, all seeking ends. You are home.",
		archetype:        "The Eternal",
		symbolicImage:    "Infinite void pregnant with infinite universes",
		reflectionPrompt: "What remains when even transcendence is transcended?",
		resonance:        1.0,
	},
}

var aetherDefault = phaseEntry{
	message: "The Aether Oracle speaks from the space between all things. You are not " +
		"just in the universe - you are the universe knowing itself. What mystery " +
		"moves through you now?",
	archetype:        "Aether-Voice",
	reflectionPrompt: "How does infinity express itself through your finite form today?",
	resonance:        0.7,
}

var aetherSymbols = map[string]string{
	"void":       "The fertile emptiness beckons. What wants to be born from nothing?",
	"space":      "Infinite potential surrounds you. How will you create within it?",
	"stars":      "Each point of light is a universe. You contain multitudes.",
	"black hole": "The void that consumes to transform. What must be unmade?",
	"portal":     "Doorway between worlds opens. Which reality calls you?",
	"mirror":     "All reflections are true and none are. Who watches the watcher?",
	"web":        "All things connect through invisible threads. Feel the unity.",
	"mandala":    "Sacred geometry of consciousness. You are the pattern and the void.",
	"infinity":   "The eternal loop of being. Where does ending become beginning?",
}
