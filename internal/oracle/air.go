package oracle

import "spiral-oracle/internal/domain"

// AirAgent es el mensajero: claridad mental, perspectiva, comunicacion.
type AirAgent struct{}

func (a *AirAgent) Element() domain.Element {
	return domain.ElementAir
}

func (a *AirAgent) Respond(input string, ctx domain.UserContext) domain.OracleResponse {
	text := normalizeText(input)

	if containsAnyWord(text, []string{"confused", "foggy", "cant think", "overthinking"}) {
		return a.clearFog(ctx)
	}
	if containsAnyWord(text, []string{"communicate", "say", "speak", "conversation", "express"}) {
		return a.communication(ctx)
	}
	if containsAnyWord(text, []string{"perspective", "see differently", "point of view", "bigger picture"}) {
		return a.newPerspective(ctx)
	}

	entry, ok := airPhases[ctx.CurrentPhase]
	if !ok {
		entry = airDefault
	}
	return entry.response(domain.ElementAir, ctx.CurrentPhase)
}

func (a *AirAgent) InterpretSymbol(symbol string, ctx domain.UserContext) string {
	base := interpretWith(airSymbols, symbol,
		"The %s rides on air's currents. What new perspective does it carry?")
	if ctx.CurrentPhase == domain.PhaseChallenge {
		base += " Let the mental storm clear before you decide what it means."
	}
	return base
}

func (a *AirAgent) clearFog(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementAir,
		Phase:   ctx.CurrentPhase,
		Message: "Fog-Caught Mind, when thoughts swirl like mist, remember: you are " +
			"the sky, not the weather. One clear thought is worth a thousand confused " +
			"ones. Return to simplicity.",
		Archetype:        "Clarity-Finder",
		ReflectionPrompt: "What one simple truth can anchor you right now?",
		Ritual: &domain.Ritual{
			Name: "Mental Fog Clearing",
			Steps: []string{
				"Stop all mental effort",
				"Take ten deep breaths, focusing only on air",
				"Write one simple true statement",
				"Build clarity from this single point",
			},
		},
		Resonance: 0.75,
	}
}

func (a *AirAgent) communication(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementAir,
		Phase:   ctx.CurrentPhase,
		Message: "Word-Seeker, Air carries messages between hearts and minds. First " +
			"listen to the silence between words, feel the truth wanting expression, " +
			"then let words arise from that silence. Speak from presence, not pressure.",
		Archetype:        "Truth-Speaker",
		SymbolicImage:    "Words as bridges between souls",
		ReflectionPrompt: "What truth have you been afraid to voice?",
		Resonance:        0.8,
	}
}

func (a *AirAgent) newPerspective(ctx domain.UserContext) domain.OracleResponse {
	return domain.OracleResponse{
		Element: domain.ElementAir,
		Phase:   ctx.CurrentPhase,
		Message: "Perspective-Seeker, Air's gift is the ability to rise and see from " +
			"new angles. Your current view is not wrong, merely limited. Imagine " +
			"yourself as an eagle circling higher; what was hidden at ground level?",
		Archetype:        "Vision-Shifter",
		SymbolicImage:    "Eagle's eye view revealing hidden patterns",
		ReflectionPrompt: "What would this situation look like from your highest self's perspective?",
		Resonance:        0.85,
	}
}

var airPhases = map[domain.SpiralPhase]phaseEntry{
	domain.PhaseInitiation: {
		message: "Wind-Catcher, you feel the first stirrings of mental liberation. " +
			"New ideas arrive like fresh breezes, clearing stale thought patterns. " +
			"Let your mind play in these currents of possibility.",
		archetype:        "Breeze-Rider",
		symbolicImage:    "Mind like open sky with first birds taking flight",
		reflectionPrompt: "What new thought wants to take wing in your life?",
		resonance:        0.65,
	},
	domain.PhaseExploration: {
		message: "Curiosity-Rider, you surf the currents of what-if and why-not. No " +
			"thought is too wild, no question too strange. Follow what makes your mind light up.",
		archetype:        "Wonder-Seeker",
		reflectionPrompt: "What question excites your mind most right now?",
		resonance:        0.7,
	},
	domain.PhaseChallenge: {
		message: "Storm-Rider, your mind churns with conflicting winds. This mental " +
			"tempest is not chaos, it is clearing. Let the storm rage; in its wake comes clarity.",
		archetype:        "Storm-Dancer",
		symbolicImage:    "Figure standing calm in center of swirling thoughts",
		reflectionPrompt: "What outdated belief is this mental storm clearing away?",
		resonance:        0.75,
	},
	domain.PhaseTransformation: {
		message: "Hollow Reed, you release attachment to your thoughts. Becoming empty, " +
			"you become full of sky. Ideas flow through you from a source unknown.",
		archetype:        "Hollow Reed",
		symbolicImage:    "Empty reed with cosmos breathing through it",
		reflectionPrompt: "What wants to speak through your emptiness?",
		resonance:        0.9,
	},
	domain.PhaseIntegration: {
		message: "Voice-Weaver, you have gathered winds from all directions. Now comes " +
			"synthesis: your mind becomes a meeting place where different truths dance.",
		archetype:        "Harmony-Maker",
		reflectionPrompt: "How can you honor all voices while speaking your truth?",
		resonance:        0.8,
	},
	domain.PhaseMastery: {
		message: "Wind-Speaker, your words carry the power to shift minds. You have " +
			"learned Air's mastery: saying much with little, creating space for others to think.",
		archetype:        "Wind-Master",
		symbolicImage:    "Words becoming birds carrying messages afar",
		reflectionPrompt: "What truth needs your clear voice to set it free?",
		resonance:        0.85,
	},
	domain.PhaseTranscendence: {
		message: "Sky-Being, you have become Air itself: infinite space in which all " +
			"thoughts arise and dissolve. You are the breath in all lungs, the space between all words.",
		archetype:        "Sky-Self",
		symbolicImage:    "Consciousness as infinite blue sky",
		reflectionPrompt: "What is it like to be the space in which thoughts play?",
		resonance:        0.95,
	},
}

var airDefault = phaseEntry{
	message: "The Air Oracle dances on currents of thought and breath. You are not " +
		"your thoughts; you are the space in which they arise.",
	archetype:        "Air-Dancer",
	reflectionPrompt: "How can you bring more spaciousness to your thinking today?",
	resonance:        0.7,
}

var airSymbols = map[string]string{
	"wind":    "Change is moving through your life. What does it want to carry away?",
	"bird":    "A message travels toward you. Keep your sky open to receive it.",
	"feather": "Lightness is available. What burden can you set down?",
	"storm":   "Conflicting thoughts clash before clearing. Do not decide in the middle of the storm.",
	"cloud":   "A passing mood obscures the view. The sky behind it is untouched.",
	"kite":    "Held by a thread, you can still dance with the wind. Tether your freedom wisely.",
	"breath":  "The most immediate doorway to presence. Follow it in and out.",
	"eagle":   "Rise above the details. The pattern is visible from altitude.",
}
