package domain

import "time"

// Element identifica el arquetipo elemental que responde al usuario.
type Element string

const (
	ElementFire   Element = "fire"
	ElementWater  Element = "water"
	ElementEarth  Element = "earth"
	ElementAir    Element = "air"
	ElementAether Element = "aether"
)

// AllElements lista los elementos en orden canonico.
var AllElements = []Element{ElementFire, ElementWater, ElementEarth, ElementAir, ElementAether}

// SpiralPhase representa la fase de crecimiento del usuario en la espiral.
type SpiralPhase string

const (
	PhaseInitiation     SpiralPhase = "initiation"
	PhaseExploration    SpiralPhase = "exploration"
	PhaseChallenge      SpiralPhase = "challenge"
	PhaseTransformation SpiralPhase = "transformation"
	PhaseIntegration    SpiralPhase = "integration"
	PhaseMastery        SpiralPhase = "mastery"
	PhaseTranscendence  SpiralPhase = "transcendence"
)

// Ritual describe una practica sugerida por un agente elemental.
type Ritual struct {
	Name   string   `json:"name"`
	Tools  []string `json:"tools,omitempty"`
	Steps  []string `json:"steps"`
	Timing string   `json:"timing,omitempty"`
}

// OracleResponse es la respuesta estructurada de un agente elemental.
type OracleResponse struct {
	Element          Element     `json:"element"`
	Phase            SpiralPhase `json:"phase"`
	Message          string      `json:"message"`
	Archetype        string      `json:"archetype,omitempty"`
	SymbolicImage    string      `json:"symbolic_image,omitempty"`
	ReflectionPrompt string      `json:"reflection_prompt,omitempty"`
	Ritual           *Ritual     `json:"ritual,omitempty"`
	Resonance        float64     `json:"resonance"`
}

// UserContext agrupa el estado del usuario que consumen los agentes.
type UserContext struct {
	CurrentPhase     SpiralPhase         `json:"current_phase"`
	ElementalBalance map[Element]float64 `json:"elemental_balance,omitempty"`
	RecentSymbols    []string            `json:"recent_symbols,omitempty"`
	Intention        string              `json:"intention,omitempty"`
	EmotionalState   string              `json:"emotional_state,omitempty"`
}

// PhaseTransition registra un cambio de fase ya aplicado.
type PhaseTransition struct {
	FromPhase    SpiralPhase `json:"from_phase"`
	ToPhase      SpiralPhase `json:"to_phase"`
	SpiralCount  int         `json:"spiral_count"`
	RitualDone   bool        `json:"ritual_done"`
	TransitionAt time.Time   `json:"transition_at"`
}

// Breakthrough guarda un momento de insight reportado por el usuario.
type Breakthrough struct {
	Phase      SpiralPhase `json:"phase"`
	Note       string      `json:"note"`
	RecordedAt time.Time   `json:"recorded_at"`
}

// UserPhaseData mantiene la progresion de fases de un usuario.
// PhaseHistory y Breakthroughs se persisten como JSON.
type UserPhaseData struct {
	UserID         string            `json:"user_id"`
	CurrentPhase   SpiralPhase       `json:"current_phase"`
	PhaseEnteredAt time.Time         `json:"phase_entered_at"`
	SpiralCount    int               `json:"spiral_count"`
	PhaseResonance float64           `json:"phase_resonance"`
	PhaseHistory   []PhaseTransition `json:"phase_history,omitempty"`
	Breakthroughs  []Breakthrough    `json:"breakthroughs,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// PhaseGuidance resume la energia y practicas recomendadas para una fase.
type PhaseGuidance struct {
	Phase             SpiralPhase         `json:"phase"`
	Energy            string              `json:"energy"`
	Focus             string              `json:"focus"`
	Challenges        []string            `json:"challenges"`
	Gifts             []string            `json:"gifts"`
	Practices         []string            `json:"practices"`
	Archetypes        []string            `json:"archetypes"`
	ElementAffinities map[Element]float64 `json:"element_affinities"`
}
