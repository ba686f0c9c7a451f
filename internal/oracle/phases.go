package oracle

import (
	"time"

	"spiral-oracle/internal/domain"
)

// TransitionCondition es una condicion ponderada sobre las señales reportadas
// para un usuario. Required bloquea la transicion si no se cumple.
type TransitionCondition struct {
	Name      string
	Check     func(signals map[string]float64) bool
	Weight    float64
	Required  bool
	Describes string
}

// PhaseGate define los requisitos para pasar de una fase a la siguiente.
type PhaseGate struct {
	From               domain.SpiralPhase
	To                 domain.SpiralPhase
	Conditions         []TransitionCondition
	MinimumDuration    time.Duration
	RitualRequired     bool
	ResonanceThreshold float64
}

// readinessThreshold es la fraccion ponderada de condiciones cumplidas que
// habilita la transicion ademas de las required.
const readinessThreshold = 0.7

const day = 24 * time.Hour

func signalAbove(key string, min float64) func(map[string]float64) bool {
	return func(s map[string]float64) bool { return s[key] > min }
}

func signalAtLeast(key string, min float64) func(map[string]float64) bool {
	return func(s map[string]float64) bool { return s[key] >= min }
}

// Gating evalua transiciones de fase y entrega guidance por fase.
type Gating struct {
	gates []PhaseGate
	now   func() time.Time
}

func NewGating() *Gating {
	return &Gating{gates: defaultGates(), now: time.Now}
}

func defaultGates() []PhaseGate {
	return []PhaseGate{
		{
			From: domain.PhaseInitiation, To: domain.PhaseExploration,
			Conditions: []TransitionCondition{
				{Name: "vision_clarified", Check: signalAbove("vision_clarity", 0.7), Weight: 2.0, Required: true,
					Describes: "User has clarified their vision or intention"},
				{Name: "first_action_taken", Check: signalAbove("actions_taken", 0), Weight: 1.5,
					Describes: "User has taken at least one concrete action"},
				{Name: "commitment_declared", Check: signalAbove("commitment_level", 0.6), Weight: 1.0,
					Describes: "User has declared commitment to their path"},
			},
			MinimumDuration: 3 * day,
			RitualRequired:  true,
		},
		{
			From: domain.PhaseExploration, To: domain.PhaseChallenge,
			Conditions: []TransitionCondition{
				{Name: "edges_found", Check: signalAtLeast("edges_encountered", 3), Weight: 1.5, Required: true,
					Describes: "User has encountered multiple edge experiences"},
				{Name: "patterns_recognized", Check: signalAtLeast("patterns_seen", 2), Weight: 1.0,
					Describes: "User recognizes recurring patterns"},
				{Name: "resistance_felt", Check: signalAbove("resistance_level", 0.5), Weight: 1.0,
					Describes: "User feels natural resistance to growth"},
			},
			MinimumDuration: 7 * day,
		},
		{
			From: domain.PhaseChallenge, To: domain.PhaseTransformation,
			Conditions: []TransitionCondition{
				{Name: "crisis_faced", Check: signalAbove("crisis_intensity", 0.8), Weight: 2.0, Required: true,
					Describes: "User has faced significant crisis or challenge"},
				{Name: "old_identity_released", Check: signalAbove("identity_fluidity", 0.7), Weight: 1.5,
					Describes: "User shows willingness to release old identity"},
				{Name: "surrender_achieved", Check: signalAbove("surrender_level", 0.6), Weight: 1.5,
					Describes: "User has surrendered to transformation process"},
			},
			MinimumDuration:    14 * day,
			RitualRequired:     true,
			ResonanceThreshold: 0.8,
		},
		{
			From: domain.PhaseTransformation, To: domain.PhaseIntegration,
			Conditions: []TransitionCondition{
				{Name: "rebirth_complete", Check: signalAtLeast("rebirth_markers", 3), Weight: 2.0, Required: true,
					Describes: "User shows clear signs of rebirth"},
				{Name: "new_identity_emerging", Check: signalAbove("new_identity_coherence", 0.6), Weight: 1.0,
					Describes: "New identity beginning to stabilize"},
				{Name: "gifts_recognized", Check: signalAbove("gifts_awareness", 0.5), Weight: 1.0,
					Describes: "User recognizes gifts from transformation"},
			},
			MinimumDuration: 7 * day,
		},
		{
			From: domain.PhaseIntegration, To: domain.PhaseMastery,
			Conditions: []TransitionCondition{
				{Name: "wisdom_embodied", Check: signalAbove("embodiment_level", 0.8), Weight: 1.5, Required: true,
					Describes: "User embodies learned wisdom consistently"},
				{Name: "teaching_impulse", Check: signalAbove("teaching_desire", 0.6), Weight: 1.0,
					Describes: "User feels called to share wisdom"},
				{Name: "stability_achieved", Check: signalAbove("life_stability", 0.7), Weight: 1.0,
					Describes: "User has achieved new stability"},
			},
			MinimumDuration: 21 * day,
		},
		{
			From: domain.PhaseMastery, To: domain.PhaseTranscendence,
			Conditions: []TransitionCondition{
				{Name: "ego_transcended", Check: signalAbove("ego_dissolution", 0.8), Weight: 2.0, Required: true,
					Describes: "User transcends personal ego regularly"},
				{Name: "unity_experienced", Check: signalAtLeast("unity_experiences", 3), Weight: 1.5,
					Describes: "Multiple unity consciousness experiences"},
				{Name: "service_embodied", Check: signalAbove("service_orientation", 0.9), Weight: 1.0,
					Describes: "Life oriented toward service"},
			},
			MinimumDuration:    28 * day,
			RitualRequired:     true,
			ResonanceThreshold: 0.9,
		},
		{
			// Cerrar la espiral arranca una nueva vuelta.
			From: domain.PhaseTranscendence, To: domain.PhaseInitiation,
			Conditions: []TransitionCondition{
				{Name: "cycle_complete", Check: signalAbove("completion_sense", 0.9), Weight: 1.0, Required: true,
					Describes: "Sense of cycle completion"},
				{Name: "new_calling", Check: signalAbove("new_vision_emerging", 0.5), Weight: 1.0,
					Describes: "New vision or calling emerging"},
			},
			MinimumDuration: 7 * day,
		},
	}
}

// CheckTransition devuelve la fase destino si el usuario esta listo para
// transicionar. Exige: duracion minima cumplida, todas las required, fraccion
// ponderada >= readinessThreshold y resonancia colectiva si el gate la pide.
func (g *Gating) CheckTransition(data *domain.UserPhaseData, signals map[string]float64) (domain.SpiralPhase, bool) {
	if data == nil {
		return "", false
	}

	var gate *PhaseGate
	for i := range g.gates {
		if g.gates[i].From == data.CurrentPhase {
			gate = &g.gates[i]
			break
		}
	}
	if gate == nil {
		return "", false
	}

	if g.now().Sub(data.PhaseEnteredAt) < gate.MinimumDuration {
		return "", false
	}

	requiredMet := true
	totalWeight := 0.0
	achievedWeight := 0.0
	for _, cond := range gate.Conditions {
		met := cond.Check != nil && cond.Check(signals)
		if met {
			achievedWeight += cond.Weight
		} else if cond.Required {
			requiredMet = false
		}
		totalWeight += cond.Weight
	}

	readiness := 0.0
	if totalWeight > 0 {
		readiness = achievedWeight / totalWeight
	}
	if !requiredMet || readiness < readinessThreshold {
		return "", false
	}
	if gate.ResonanceThreshold > 0 && signals["collective_resonance"] < gate.ResonanceThreshold {
		return "", false
	}
	return gate.To, true
}

// Transition aplica el cambio de fase sobre los datos del usuario y registra
// la vuelta de espiral cuando se cierra el ciclo.
func (g *Gating) Transition(data *domain.UserPhaseData, to domain.SpiralPhase, ritualDone bool) {
	if data == nil {
		return
	}
	now := g.now().UTC()
	data.PhaseHistory = append(data.PhaseHistory, domain.PhaseTransition{
		FromPhase:    data.CurrentPhase,
		ToPhase:      to,
		SpiralCount:  data.SpiralCount,
		RitualDone:   ritualDone,
		TransitionAt: now,
	})
	if data.CurrentPhase == domain.PhaseTranscendence && to == domain.PhaseInitiation {
		data.SpiralCount++
	}
	data.CurrentPhase = to
	data.PhaseEnteredAt = now
	data.PhaseResonance = 0.5
	data.UpdatedAt = now
}

// RecordBreakthrough anota un insight y sube la resonancia de fase (tope 1.0).
func (g *Gating) RecordBreakthrough(data *domain.UserPhaseData, note string) {
	if data == nil {
		return
	}
	now := g.now().UTC()
	data.Breakthroughs = append(data.Breakthroughs, domain.Breakthrough{
		Phase:      data.CurrentPhase,
		Note:       note,
		RecordedAt: now,
	})
	data.PhaseResonance += 0.1
	if data.PhaseResonance > 1.0 {
		data.PhaseResonance = 1.0
	}
	data.UpdatedAt = now
}

// Guidance devuelve la energia, practicas y afinidades elementales de la fase.
// Una fase desconocida cae en initiation.
func (g *Gating) Guidance(phase domain.SpiralPhase) domain.PhaseGuidance {
	pg, ok := phaseGuidanceTable[phase]
	if !ok {
		return phaseGuidanceTable[domain.PhaseInitiation]
	}
	return pg
}

var phaseGuidanceTable = map[domain.SpiralPhase]domain.PhaseGuidance{
	domain.PhaseInitiation: {
		Phase: domain.PhaseInitiation, Energy: "awakening", Focus: "vision_clarification",
		Challenges: []string{"confusion", "overwhelm", "doubt"},
		Gifts:      []string{"fresh_perspective", "beginner_mind", "enthusiasm"},
		Practices:  []string{"meditation", "journaling", "vision_boarding"},
		Archetypes: []string{"Innocent", "Seeker", "Fool", "Wonderer"},
		ElementAffinities: map[domain.Element]float64{
			domain.ElementFire: 0.8, domain.ElementAir: 0.7, domain.ElementWater: 0.5,
			domain.ElementEarth: 0.4, domain.ElementAether: 0.6,
		},
	},
	domain.PhaseExploration: {
		Phase: domain.PhaseExploration, Energy: "expansion", Focus: "experimentation",
		Challenges: []string{"distraction", "overwhelm", "impatience"},
		Gifts:      []string{"curiosity", "playfulness", "discovery"},
		Practices:  []string{"trying_new_things", "travel", "learning"},
		Archetypes: []string{"Explorer", "Student", "Adventurer", "Wanderer"},
		ElementAffinities: map[domain.Element]float64{
			domain.ElementAir: 0.9, domain.ElementFire: 0.7, domain.ElementWater: 0.6,
			domain.ElementEarth: 0.4, domain.ElementAether: 0.5,
		},
	},
	domain.PhaseChallenge: {
		Phase: domain.PhaseChallenge, Energy: "friction", Focus: "perseverance",
		Challenges: []string{"resistance", "fear", "old_patterns"},
		Gifts:      []string{"strength", "clarity", "determination"},
		Practices:  []string{"shadow_work", "therapy", "physical_training"},
		Archetypes: []string{"Warrior", "Challenger", "Shadow-Facer", "Tested One"},
		ElementAffinities: map[domain.Element]float64{
			domain.ElementEarth: 0.8, domain.ElementFire: 0.7, domain.ElementWater: 0.6,
			domain.ElementAir: 0.4, domain.ElementAether: 0.5,
		},
	},
	domain.PhaseTransformation: {
		Phase: domain.PhaseTransformation, Energy: "metamorphosis", Focus: "surrender",
		Challenges: []string{"death_of_old_self", "uncertainty", "void"},
		Gifts:      []string{"rebirth", "authenticity", "power"},
		Practices:  []string{"ritual", "fasting", "vision_quest"},
		Archetypes: []string{"Phoenix", "Shapeshifter", "Death-Walker", "Alchemist"},
		ElementAffinities: map[domain.Element]float64{
			domain.ElementFire: 0.9, domain.ElementWater: 0.8, domain.ElementAether: 0.7,
			domain.ElementEarth: 0.4, domain.ElementAir: 0.5,
		},
	},
	domain.PhaseIntegration: {
		Phase: domain.PhaseIntegration, Energy: "synthesis", Focus: "embodiment",
		Challenges: []string{"patience", "practice", "consistency"},
		Gifts:      []string{"wisdom", "balance", "groundedness"},
		Practices:  []string{"daily_rituals", "teaching", "creating"},
		Archetypes: []string{"Bridge-Builder", "Weaver", "Integrator", "Embodier"},
		ElementAffinities: map[domain.Element]float64{
			domain.ElementEarth: 0.9, domain.ElementWater: 0.7, domain.ElementAir: 0.6,
			domain.ElementFire: 0.5, domain.ElementAether: 0.6,
		},
	},
	domain.PhaseMastery: {
		Phase: domain.PhaseMastery, Energy: "flow", Focus: "service",
		Challenges: []string{"humility", "continued_growth", "teaching"},
		Gifts:      []string{"effortless_action", "wisdom", "magnetism"},
		Practices:  []string{"mentoring", "advanced_practices", "innovation"},
		Archetypes: []string{"Master", "Teacher", "Guide", "Sage"},
		ElementAffinities: map[domain.Element]float64{
			domain.ElementAether: 0.8, domain.ElementFire: 0.7, domain.ElementWater: 0.7,
			domain.ElementEarth: 0.7, domain.ElementAir: 0.7,
		},
	},
	domain.PhaseTranscendence: {
		Phase: domain.PhaseTranscendence, Energy: "unity", Focus: "being",
		Challenges: []string{"staying_grounded", "communication", "loneliness"},
		Gifts:      []string{"unity_consciousness", "peace", "presence"},
		Practices:  []string{"meditation", "service", "presence"},
		Archetypes: []string{"Mystic", "Oracle", "Void-Walker", "Unity-Keeper"},
		ElementAffinities: map[domain.Element]float64{
			domain.ElementAether: 1.0, domain.ElementFire: 0.6, domain.ElementWater: 0.6,
			domain.ElementEarth: 0.5, domain.ElementAir: 0.6,
		},
	},
}
