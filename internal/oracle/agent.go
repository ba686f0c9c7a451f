package oracle

import (
	"fmt"
	"strings"

	"spiral-oracle/internal/domain"
)

// Agent es la voz de un elemento: responde al input segun la fase del usuario
// e interpreta simbolos de sueños desde su perspectiva.
type Agent interface {
	Element() domain.Element
	Respond(input string, ctx domain.UserContext) domain.OracleResponse
	InterpretSymbol(symbol string, ctx domain.UserContext) string
}

// Registry mantiene los cinco agentes elementales y resuelve el agente
// apropiado para cada input. Un elemento desconocido cae en aether.
type Registry struct {
	agents map[domain.Element]Agent
}

func NewRegistry() *Registry {
	return &Registry{agents: map[domain.Element]Agent{
		domain.ElementFire:   &FireAgent{},
		domain.ElementWater:  &WaterAgent{},
		domain.ElementEarth:  &EarthAgent{},
		domain.ElementAir:    &AirAgent{},
		domain.ElementAether: &AetherAgent{},
	}}
}

// Agent devuelve el agente del elemento pedido, aether como fallback.
func (r *Registry) Agent(el domain.Element) Agent {
	if a, ok := r.agents[el]; ok {
		return a
	}
	return r.agents[domain.ElementAether]
}

// Respond rutea el input al elemento con mayor resonancia y delega.
func (r *Registry) Respond(input string, ctx domain.UserContext) domain.OracleResponse {
	return r.Agent(RouteElement(input)).Respond(input, ctx)
}

// phaseEntry es una respuesta pre-escrita de un agente para una fase.
type phaseEntry struct {
	message          string
	archetype        string
	symbolicImage    string
	reflectionPrompt string
	resonance        float64
	ritual           *domain.Ritual
}

func (e phaseEntry) response(el domain.Element, phase domain.SpiralPhase) domain.OracleResponse {
	return domain.OracleResponse{
		Element:          el,
		Phase:            phase,
		Message:          e.message,
		Archetype:        e.archetype,
		SymbolicImage:    e.symbolicImage,
		ReflectionPrompt: e.reflectionPrompt,
		Ritual:           e.ritual,
		Resonance:        e.resonance,
	}
}

// interpretWith busca el simbolo en la tabla del elemento; si no esta, arma
// la lectura generica del elemento para ese simbolo.
func interpretWith(table map[string]string, symbol, fallbackFormat string) string {
	key := strings.ToLower(strings.TrimSpace(symbol))
	if meaning, ok := table[key]; ok {
		return meaning
	}
	return fmt.Sprintf(fallbackFormat, symbol)
}
