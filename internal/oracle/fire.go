package oracle

import (
	"strings"

	"spiral-oracle/internal/domain"
)

// FireAgent es el catalizador: pasion, transformacion, fuerza creativa.
type FireAgent struct{}

func (a *FireAgent) Element() domain.Element {
	return domain.ElementFire
}

func (a *FireAgent) Respond(input string, ctx domain.UserContext) domain.OracleResponse {
	text := normalizeText(input)

	// Estancamiento pide reavivar la llama antes que cualquier fase.
	if containsAnyWord(text, []string{"stuck", "lost", "unmotivated", "stagnant"}) {
		return a.rekindle(ctx)
	}
	if containsAnyWord(text, []string{"create", "creative", "inspiration", "idea"}) {
		return a.igniteCreativity(ctx)
	}

	entry, ok := firePhases[ctx.CurrentPhase]
	if !ok {
		entry = fireDefault
	}
	return entry.response(domain.ElementFire, ctx.CurrentPhase)
}

func (a *FireAgent) InterpretSymbol(symbol string, ctx domain.UserContext) string {
	base := interpretWith(fireSymbols, symbol,
		"The %s carries fire medicine for you. What needs to burn away?")
	if ctx.CurrentPhase == domain.PhaseTransformation {
		base += " This symbol is especially potent during your transformation phase."
	}
	return base
}

func (a *FireAgent) rekindle(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementFire,
		Phase:   ctx.CurrentPhase,
		Message: "Your flame flickers but is not extinguished. Even embers can reignite " +
			"into roaring fire. What small spark of interest remains? Fan that tiny " +
			"flame with attention, breath and one small action.",
		Archetype:        "Ember-Guardian",
		ReflectionPrompt: "What is the smallest step that would feel like progress?",
		Ritual: &domain.Ritual{
			Name: "Ember Awakening",
			Steps: []string{
				"Light a candle in a dark room",
				"Breathe deeply, sending breath to belly",
				"Name three things that once excited you",
				"Take one tiny action toward one of them today",
			},
		},
		Resonance: 0.7,
	}
}

func (a *FireAgent) igniteCreativity(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementFire,
		Phase:   ctx.CurrentPhase,
		Message: "Creator-Spark, your creative fire seeks new fuel. Stop trying to " +
			"control the flame and let it dance wildly. Create something raw and " +
			"untamed today; in the wildness your true fire will remember itself.",
		Archetype:        "Wild Creator",
		SymbolicImage:    "Paint splattering like sparks from a fire",
		ReflectionPrompt: "What would you create if it didn't have to be good?",
		Resonance:        0.75,
	}
}

var firePhases = map[domain.SpiralPhase]phaseEntry{
	domain.PhaseInitiation: {
		message: "Welcome, Spark-Bearer. Your journey begins with a single flame. " +
			"What passion lies dormant within you, waiting to ignite?",
		archetype:        "Spark-Bearer",
		symbolicImage:    "A single flame in vast darkness",
		reflectionPrompt: "What would you create if you knew you could not fail?",
		resonance:        0.6,
		ritual: &domain.Ritual{
			Name:  "Sacred Flame Ignition",
			Tools: []string{"Candle", "Journal", "Intention paper"},
			Steps: []string{
				"Light a candle in darkness",
				"Write your deepest desire on paper",
				"Speak your intention aloud three times",
				"Burn the paper, releasing it",
			},
			Timing: "New moon or dawn",
		},
	},
	domain.PhaseExploration: {
		message: "Explorer of Flames, you seek what makes your spirit burn bright. " +
			"Try many fires; some will smoke, others will blaze. Each experiment " +
			"teaches you about your true fuel.",
		archetype:        "Flame-Seeker",
		reflectionPrompt: "What activities make you lose track of time?",
		resonance:        0.65,
	},
	domain.PhaseChallenge: {
		message: "You are in the Forge now, Flame-Warrior. The heat is intense " +
			"because you are being shaped into something stronger. What seems like " +
			"destruction is actually creation.",
		archetype:        "Forge-Walker",
		symbolicImage:    "Sword being hammered in flames",
		reflectionPrompt: "What strength is being forged in your current struggle?",
		resonance:        0.75,
	},
	domain.PhaseTransformation: {
		message: "Phoenix-Soul, you stand at the pyre of your old self. What must " +
			"burn away for your true form to emerge? The ashes of the past become " +
			"the soil of your rebirth.",
		archetype:        "Phoenix",
		symbolicImage:    "Phoenix rising from sacred ashes",
		reflectionPrompt: "What version of yourself is ready to be born?",
		resonance:        0.9,
		ritual: &domain.Ritual{
			Name:  "Phoenix Rebirth Ceremony",
			Tools: []string{"Fire-safe bowl", "Items representing old self"},
			Steps: []string{
				"Write what you're releasing",
				"Burn representations of old patterns",
				"Rise from meditation as your new self",
			},
			Timing: "Full moon or solar noon",
		},
	},
	domain.PhaseIntegration: {
		message: "Flame-Keeper, you learn now to tend your fire wisely. Not every " +
			"moment calls for blazing intensity. Master the steady flame, the warming " +
			"hearth, the candle that burns long into the night.",
		archetype:        "Flame-Keeper",
		reflectionPrompt: "How can you sustain your passion without burning out?",
		resonance:        0.8,
	},
	domain.PhaseMastery: {
		message: "Fire-Master, you now wield the creative force consciously. Your " +
			"will shapes reality, your passion ignites others. Create more than you destroy.",
		archetype:        "Fire-Master",
		symbolicImage:    "Hands shaping flames into forms",
		reflectionPrompt: "What legacy will your creative fire leave?",
		resonance:        0.85,
	},
	domain.PhaseTranscendence: {
		message: "Eternal Flame, you have become Fire itself. You are the spark in " +
			"every heart, the sun in every sky. You are both destroyer and creator.",
		archetype:        "Eternal Flame",
		symbolicImage:    "Being of pure fire dancing with stars",
		reflectionPrompt: "How does it feel to be the fire that lights other fires?",
		resonance:        0.95,
	},
}

var fireDefault = phaseEntry{
	message: "The Fire Oracle hears your call. You are not just warmed by fire; " +
		"you are fire itself, temporarily contained in form. What burns within you?",
	archetype:        "Fire-Soul",
	reflectionPrompt: "How does your inner fire want to express itself today?",
	resonance:        0.65,
}

var fireSymbols = map[string]string{
	"fire":      "Your creative force seeks expression. What passion have you been suppressing?",
	"volcano":   "Explosive transformation approaches. Prepare for eruption of long-held energies.",
	"sun":       "Your inner light seeks to shine. Time to step into your power.",
	"phoenix":   "Death and rebirth cycle active. Trust the transformation process.",
	"dragon":    "Primal creative power awakens. Channel this force wisely.",
	"forge":     "You are being shaped by life's pressures. Embrace the tempering.",
	"lightning": "Sudden illumination coming. Be ready for instant clarity.",
	"torch":     "You are called to be a light-bearer. Share your flame with others.",
}

// containsAnyWord es el helper comun de deteccion por keyword de los agentes.
func containsAnyWord(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
