package oracle

import (
	"strings"
	"testing"

	"spiral-oracle/internal/domain"
)

func TestFireAgentRekindle(t *testing.T) {
	agent := &FireAgent{}
	ctx := domain.UserContext{CurrentPhase: domain.PhaseExploration}

	resp := agent.Respond("I feel stuck lately, nothing moves", ctx)

	if resp.Element != domain.ElementFire {
		t.Fatalf("elemento %s, esperado fire", resp.Element)
	}
	if resp.Archetype != "Ember-Guardian" {
		t.Errorf("arquetipo %q, esperado Ember-Guardian", resp.Archetype)
	}
	if resp.Ritual == nil || resp.Ritual.Name != "Ember Awakening" {
		t.Errorf("el estancamiento debe incluir el ritual Ember Awakening, obtuvo %+v", resp.Ritual)
	}
	if resp.Phase != domain.PhaseExploration {
		t.Errorf("la respuesta debe conservar la fase del usuario, obtuvo %s", resp.Phase)
	}
}

func TestFireAgentPhaseTable(t *testing.T) {
	agent := &FireAgent{}
	ctx := domain.UserContext{CurrentPhase: domain.PhaseTransformation}

	resp := agent.Respond("the heat is intense right now", ctx)

	if resp.Archetype != "Phoenix" {
		t.Fatalf("fase transformation debe responder como Phoenix, obtuvo %q", resp.Archetype)
	}
	if resp.Ritual == nil {
		t.Error("la fase transformation incluye ritual de renacimiento")
	}
	if resp.Resonance != 0.9 {
		t.Errorf("resonancia %v, esperada 0.9", resp.Resonance)
	}
}

func TestFireAgentUnknownPhaseFallsBack(t *testing.T) {
	agent := &FireAgent{}
	resp := agent.Respond("just checking in", domain.UserContext{CurrentPhase: "limbo"})
	if resp.Archetype != "Fire-Soul" {
		t.Fatalf("fase desconocida debe usar la respuesta default, obtuvo %q", resp.Archetype)
	}
}

func TestFireAgentInterpretSymbol(t *testing.T) {
	agent := &FireAgent{}

	known := agent.InterpretSymbol("Phoenix", domain.UserContext{CurrentPhase: domain.PhaseIntegration})
	if !strings.Contains(known, "Death and rebirth cycle active") {
		t.Errorf("simbolo conocido debe usar la tabla, obtuvo %q", known)
	}

	inTransformation := agent.InterpretSymbol("phoenix", domain.UserContext{CurrentPhase: domain.PhaseTransformation})
	if !strings.Contains(inTransformation, "transformation phase") {
		t.Errorf("en transformation se agrega el sufijo de fase, obtuvo %q", inTransformation)
	}

	unknown := agent.InterpretSymbol("mirror", domain.UserContext{})
	if !strings.Contains(unknown, "mirror") || !strings.Contains(unknown, "fire medicine") {
		t.Errorf("simbolo desconocido debe usar la lectura generica, obtuvo %q", unknown)
	}
}

func TestAetherAgentIntegratesMultipleElements(t *testing.T) {
	agent := &AetherAgent{}
	resp := agent.Respond("fire and water flow inside me at once", domain.UserContext{CurrentPhase: domain.PhaseIntegration})

	if resp.Archetype != "Element-Alchemist" {
		t.Fatalf("multiples elementos deben pedir integracion, obtuvo %q", resp.Archetype)
	}
	if !strings.Contains(resp.Message, "fire") || !strings.Contains(resp.Message, "water") {
		t.Errorf("el mensaje de integracion nombra los elementos detectados, obtuvo %q", resp.Message)
	}
}

func TestRegistryRouting(t *testing.T) {
	reg := NewRegistry()
	ctx := domain.UserContext{CurrentPhase: domain.PhaseInitiation}

	resp := reg.Respond("Tears and grief flow through my heart", ctx)
	if resp.Element != domain.ElementWater {
		t.Fatalf("input de agua ruteo a %s", resp.Element)
	}

	resp = reg.Respond("", ctx)
	if resp.Element != domain.ElementAether {
		t.Fatalf("input vacio debe caer en aether, obtuvo %s", resp.Element)
	}
}

func TestRegistryUnknownElementFallsBackToAether(t *testing.T) {
	reg := NewRegistry()
	agent := reg.Agent("plasma")
	if agent.Element() != domain.ElementAether {
		t.Fatalf("elemento desconocido debe resolver a aether, obtuvo %s", agent.Element())
	}
}

func TestAllAgentsReportTheirElement(t *testing.T) {
	reg := NewRegistry()
	for _, el := range domain.AllElements {
		if got := reg.Agent(el).Element(); got != el {
			t.Errorf("agente de %s reporta %s", el, got)
		}
	}
}
